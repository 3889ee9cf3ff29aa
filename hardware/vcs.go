// This file is part of VM2600.
//
// VM2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VM2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VM2600.  If not, see <https://www.gnu.org/licenses/>.

package hardware

import (
	"github.com/BillySpelchan/VM2600/curated"
	"github.com/BillySpelchan/VM2600/hardware/cpu"
	"github.com/BillySpelchan/VM2600/hardware/memory/cpubus"
	"github.com/BillySpelchan/VM2600/hardware/tia"
	"github.com/BillySpelchan/VM2600/logger"
)

// CartridgeSize is the size of the cartridge address space.
const CartridgeSize = 4096

// CartridgeOrigin is the conventional origin of cartridge code.
const CartridgeOrigin = 0xf000

// BadCartridge is returned by Attach() for an image of an unsupported size.
const BadCartridge = "vcs: cartridge image must be 2048 or 4096 bytes (%d)"

// ColorClocksPerCycle is the number of TIA color clocks for every CPU cycle.
const ColorClocksPerCycle = 3

// ScanlineReceiver is implemented by types that want to receive the pixels
// of every completed scanline. The pixels are TIA color register values. The
// slice is reused and must not be retained.
type ScanlineReceiver interface {
	NewScanline(scanline int, pixels []uint8) error
}

// VCS struct is the main container for the emulated components of the VCS.
type VCS struct {
	CPU *cpu.CPU
	TIA *tia.TIA
	Mem *Memory

	// number of frames started, counted at the start of VSYNC
	Frame int

	// scanline within the current frame
	Scanline int

	// total scanlines completed
	Lines int

	tv    ScanlineReceiver
	vsync bool
	wsync bool
}

// NewVCS creates a new VCS. The ScanlineReceiver can be nil.
func NewVCS(tv ScanlineReceiver) *VCS {
	vcs := &VCS{tv: tv}
	vcs.TIA = tia.NewTIA()
	vcs.Mem = newMemory(vcs)
	vcs.CPU = cpu.NewCPU(vcs.Mem)
	return vcs
}

// AttachCartridge copies the image into the cartridge and resets the VCS. A
// 2K image is mirrored in both halves of the cartridge space.
func (vcs *VCS) AttachCartridge(data []uint8) error {
	switch len(data) {
	case CartridgeSize:
		copy(vcs.Mem.Cart[:], data)
	case CartridgeSize / 2:
		copy(vcs.Mem.Cart[:], data)
		copy(vcs.Mem.Cart[CartridgeSize/2:], data)
	default:
		return curated.Errorf(BadCartridge, len(data))
	}

	logger.Logf(logger.Allow, "vcs", "attached %d byte cartridge", len(data))

	vcs.Reset()

	return nil
}

// Reset the CPU and TIA and load the reset address into the IP. RAM and the
// cartridge are unchanged.
func (vcs *VCS) Reset() {
	vcs.CPU.Reset()
	vcs.TIA = tia.NewTIA()
	vcs.Frame = 0
	vcs.Scanline = 0
	vcs.Lines = 0
	vcs.vsync = false
	vcs.wsync = false
	vcs.CPU.LoadIPIndirect(cpubus.Reset)
}

// tick advances the TIA by a single color clock
func (vcs *VCS) tick() error {
	if !vcs.TIA.Tick() {
		return nil
	}

	vcs.Lines++

	if vcs.TIA.VSync() {
		if !vcs.vsync {
			vcs.Frame++
		}
		vcs.vsync = true
		vcs.Scanline = 0
		return nil
	}
	vcs.vsync = false

	if vcs.tv != nil {
		if err := vcs.tv.NewScanline(vcs.Scanline, vcs.TIA.Scanline[:]); err != nil {
			return err
		}
	}
	vcs.Scanline++

	return nil
}
