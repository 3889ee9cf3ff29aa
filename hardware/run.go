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
)

// RunScanlines runs the emulation until at least another n scanlines have
// been completed. The instruction that completes the final scanline is run
// to completion, so the TIA will usually be part way through the next
// scanline.
func (vcs *VCS) RunScanlines(n int) error {
	target := vcs.Lines + n
	for vcs.Lines < target {
		if err := vcs.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunToBreak runs the emulation until the instruction at the IP is BRK. If
// limit is greater than zero the cpu.StepLimit error is returned after that
// many instructions.
func (vcs *VCS) RunToBreak(limit int) error {
	steps := 0
	for !vcs.CPU.AtBreak() {
		if limit > 0 && steps >= limit {
			return curated.Errorf(cpu.StepLimit, limit, vcs.CPU.State.IP)
		}
		if err := vcs.Step(); err != nil {
			return err
		}
		steps++
	}
	return nil
}
