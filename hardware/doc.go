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

// Package hardware is the base package for the VCS emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The VCS type connects the CPU to the TIA, the 128 bytes of RAM and a 4K
// cartridge image. The CPU drives the emulation. After every instruction
// the TIA is advanced three color clocks for every CPU cycle the instruction
// took. A write to WSYNC holds the CPU until the TIA reaches the end of the
// current scanline.
//
// Completed scanlines are passed to a ScanlineReceiver. Scanlines drawn while
// VSYNC is on are not passed on and the scanline count is restarted, so the
// receiver sees the scanlines of each frame numbered from zero.
package hardware
