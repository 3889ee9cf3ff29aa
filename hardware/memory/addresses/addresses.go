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

package addresses

import "strings"

// ReadSymbols lists the readable addresses along with their canonical names.
var ReadSymbols = map[uint16]string{
	// TIA
	0x30: "CXM0P",
	0x31: "CXM1P",
	0x32: "CXP0FB",
	0x33: "CXP1FB",
	0x34: "CXM0FB",
	0x35: "CXM1FB",
	0x36: "CXBLPF",
	0x37: "CXPPMM",
	0x38: "INPT0",
	0x39: "INPT1",
	0x3a: "INPT2",
	0x3b: "INPT3",
	0x3c: "INPT4",
	0x3d: "INPT5",

	// PIA
	0x0280: "SWCHA",
	0x0281: "SWACNT",
	0x0282: "SWCHB",
	0x0283: "SWBCNT",
	0x0284: "INTIM",
	0x0285: "TIMINT",
}

// WriteSymbols lists the writable addresses along with their canonical names.
var WriteSymbols = map[uint16]string{
	// TIA
	0x00: "VSYNC",
	0x01: "VBLANK",
	0x02: "WSYNC",
	0x03: "RSYNC",
	0x04: "NUSIZ0",
	0x05: "NUSIZ1",
	0x06: "COLUP0",
	0x07: "COLUP1",
	0x08: "COLUPF",
	0x09: "COLUBK",
	0x0a: "CTRLPF",
	0x0b: "REFP0",
	0x0c: "REFP1",
	0x0d: "PF0",
	0x0e: "PF1",
	0x0f: "PF2",
	0x10: "RESP0",
	0x11: "RESP1",
	0x12: "RESM0",
	0x13: "RESM1",
	0x14: "RESBL",
	0x15: "AUDC0",
	0x16: "AUDC1",
	0x17: "AUDF0",
	0x18: "AUDF1",
	0x19: "AUDV0",
	0x1a: "AUDV1",
	0x1b: "GRP0",
	0x1c: "GRP1",
	0x1d: "ENAM0",
	0x1e: "ENAM1",
	0x1f: "ENABL",
	0x20: "HMP0",
	0x21: "HMP1",
	0x22: "HMM0",
	0x23: "HMM1",
	0x24: "HMBL",
	0x25: "VDELP0",
	0x26: "VDELP1",
	0x27: "VDELBL",
	0x28: "RESMP0",
	0x29: "RESMP1",
	0x2a: "HMOVE",
	0x2b: "HMCLR",
	0x2c: "CXCLR",

	// PIA
	0x0280: "SWCHA",
	0x0281: "SWACNT",
	0x0294: "TIM1T",
	0x0295: "TIM8T",
	0x0296: "TIM64T",
	0x0297: "TIM1024",
}

// the highest address in either table
const chipTop = 0x297

// Read and Write are sparse arrays of the canonical names, indexed by
// address. An empty string means the address is not readable (or writable).
var (
	Read  []string
	Write []string
)

// name to address lookup. names are stored in upper case
var (
	readIndex  map[string]uint16
	writeIndex map[string]uint16
)

func init() {
	Read = make([]string, chipTop+1)
	readIndex = make(map[string]uint16, len(ReadSymbols))
	for k, v := range ReadSymbols {
		Read[k] = v
		readIndex[v] = k
	}

	Write = make([]string, chipTop+1)
	writeIndex = make(map[string]uint16, len(WriteSymbols))
	for k, v := range WriteSymbols {
		Write[k] = v
		writeIndex[v] = k
	}
}

// LookupRead returns the address of the named read register. The name is not
// case sensitive.
func LookupRead(name string) (uint16, bool) {
	a, ok := readIndex[strings.ToUpper(name)]
	return a, ok
}

// LookupWrite returns the address of the named write register. The name is
// not case sensitive.
func LookupWrite(name string) (uint16, bool) {
	a, ok := writeIndex[strings.ToUpper(name)]
	return a, ok
}

// Symbols returns the write symbols as a map of name to address, suitable for
// predefining in an assembler. Read registers in the TIA address space are
// included when their name does not clash with a write register.
func Symbols() map[string]int {
	s := make(map[string]int, len(WriteSymbols)+len(ReadSymbols))
	for k, v := range ReadSymbols {
		s[v] = int(k)
	}
	for k, v := range WriteSymbols {
		s[v] = int(k)
	}
	return s
}
