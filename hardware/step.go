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

// Step the emulation one CPU instruction. The TIA is advanced by three color
// clocks for every cycle the instruction took and then, if the instruction
// wrote to WSYNC, until the end of the scanline.
func (vcs *VCS) Step() error {
	return vcs.CPU.ExecuteInstruction(vcs.videoCycles)
}

func (vcs *VCS) videoCycles(cycles int) error {
	for i := 0; i < cycles*ColorClocksPerCycle; i++ {
		if err := vcs.tick(); err != nil {
			return err
		}
	}

	if vcs.wsync {
		vcs.wsync = false
		for vcs.TIA.ColorClock != 0 {
			if err := vcs.tick(); err != nil {
				return err
			}
		}
	}

	return nil
}
