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

// Package cartridge implements the flat memory used to run programs produced
// by the assembler outside of the VCS. It is large enough to hold the 4K
// cartridge space plus the zero page, stack and any test data.
package cartridge

import (
	"fmt"
	"io"

	"github.com/BillySpelchan/VM2600/curated"
)

// Size of the Cartridge memory in bytes.
const Size = 0x6000

// Sentinel errors.
const (
	LoadRange = "cartridge: data of %d bytes at %#04x exceeds cartridge size"
)

// Cartridge is a flat block of memory. Every byte is initialised to the low
// byte of its address, which makes uninitialised reads easy to recognise.
// Addresses wrap at Size.
type Cartridge struct {
	mem [Size]uint8
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Reset()
	return cart
}

// Reset memory to the initial pattern.
func (cart *Cartridge) Reset() {
	for i := range cart.mem {
		cart.mem[i] = uint8(i)
	}
}

// Read implements the cpubus.Memory interface.
func (cart *Cartridge) Read(address uint16) uint8 {
	return cart.mem[int(address)%Size]
}

// Write implements the cpubus.Memory interface.
func (cart *Cartridge) Write(address uint16, data uint8) {
	cart.mem[int(address)%Size] = data
}

// Load copies data into memory starting at origin. Nothing is copied if the
// data does not fit.
func (cart *Cartridge) Load(origin int, data []uint8) error {
	if origin < 0 || origin+len(data) > Size {
		return curated.Errorf(LoadRange, len(data), origin)
	}
	copy(cart.mem[origin:], data)
	return nil
}

// Dump writes memory from start up to (but not including) end as lines of
// hex values, perLine values to a line. Each line is prefixed by the address
// of the first value.
//
//	0: a2, 00, 20, 0b
func (cart *Cartridge) Dump(w io.Writer, start int, end int, perLine int) {
	if perLine <= 0 {
		perLine = 16
	}

	col := 0
	for a := start; a < end; a++ {
		if col == 0 {
			fmt.Fprintf(w, "%x: ", a)
		}
		fmt.Fprintf(w, "%02x", cart.Read(uint16(a)))

		col++
		if col == perLine {
			fmt.Fprintln(w)
			col = 0
		} else if a < end-1 {
			fmt.Fprint(w, ", ")
		}
	}

	if col > 0 {
		fmt.Fprintln(w)
	}
}
