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
	"github.com/BillySpelchan/VM2600/logger"
)

// Memory is the VCS address space as seen by the CPU. Only the lower 13 bits
// of an address are connected:
//
//	A12 set                  cartridge
//	A12, A7 clear            TIA
//	A12, A9 clear, A7 set    RAM
//	A12 clear, A9 A7 set     PIA
//
// The PIA is not emulated. Reads return zero and writes are ignored.
type Memory struct {
	RAM  [128]uint8
	Cart [CartridgeSize]uint8

	vcs *VCS

	// PIA registers that have been written to. used to limit logging
	pia map[uint16]bool
}

func newMemory(vcs *VCS) *Memory {
	return &Memory{
		vcs: vcs,
		pia: make(map[uint16]bool),
	}
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	switch {
	case address&0x1000 == 0x1000:
		return mem.Cart[address&0x0fff]
	case address&0x0080 == 0x0000:
		return mem.vcs.TIA.Read(address)
	case address&0x0200 == 0x0000:
		return mem.RAM[address&0x007f]
	}
	return 0
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	switch {
	case address&0x1000 == 0x1000:
		logger.Logf(logger.Allow, "cartridge", "write to cartridge address %#04x ignored", address)
	case address&0x0080 == 0x0000:
		if address&0x3f == 0x02 {
			mem.vcs.wsync = true
		}
		mem.vcs.TIA.Write(address, data)
	case address&0x0200 == 0x0000:
		mem.RAM[address&0x007f] = data
	default:
		reg := address & 0x029f
		if !mem.pia[reg] {
			mem.pia[reg] = true
			logger.Logf(logger.Allow, "vcs", "PIA register %#04x not emulated", reg)
		}
	}
}
