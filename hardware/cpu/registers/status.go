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

package registers

import "strings"

// Status is the special purpose register that stores the flags of the CPU.
// The value is stored exactly as it would be pushed onto the stack.
type Status uint8

// List of flags in the status register.
const (
	Carry            Status = 0x01
	Zero             Status = 0x02
	InterruptDisable Status = 0x04
	DecimalMode      Status = 0x08
	Break            Status = 0x10
	Unused           Status = 0x20
	Overflow         Status = 0x40
	Sign             Status = 0x80
)

// InitialStatus is the value of the status register after a reset.
const InitialStatus = Unused

// Is returns true if all the bits in flag are set.
func (sr Status) Is(flag Status) bool {
	return sr&flag == flag
}

// Set or clear the flag.
func (sr *Status) Set(flag Status, set bool) {
	if set {
		*sr |= flag
	} else {
		*sr &^= flag
	}
}

// SetZeroSign sets the zero and sign flags according to the value.
func (sr *Status) SetZeroSign(v uint8) {
	sr.Set(Zero, v == 0)
	sr.Set(Sign, v&0x80 == 0x80)
}

// Label returns the canonical name for the status register.
func (sr Status) Label() string {
	return "SR"
}

// String returns the flags as a string of letters. Upper case letters
// indicate that the flag is set.
//
//	sv-bdizc
func (sr Status) String() string {
	s := strings.Builder{}
	flag := func(f Status, r rune) {
		if sr.Is(f) {
			s.WriteRune(r - 'a' + 'A')
		} else {
			s.WriteRune(r)
		}
	}

	flag(Sign, 's')
	flag(Overflow, 'v')
	s.WriteRune('-')
	flag(Break, 'b')
	flag(DecimalMode, 'd')
	flag(InterruptDisable, 'i')
	flag(Zero, 'z')
	flag(Carry, 'c')

	return s.String()
}
