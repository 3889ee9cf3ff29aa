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

package addresses_test

import (
	"testing"

	"github.com/BillySpelchan/VM2600/hardware/memory/addresses"
	"github.com/BillySpelchan/VM2600/test"
)

func TestLookup(t *testing.T) {
	a, ok := addresses.LookupWrite("colubk")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint16(0x09))

	a, ok = addresses.LookupRead("CXPPMM")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint16(0x37))

	_, ok = addresses.LookupWrite("CXPPMM")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, addresses.Write[0x2a], "HMOVE")
	test.ExpectEquality(t, addresses.Read[0x2a], "")
}

func TestSymbols(t *testing.T) {
	s := addresses.Symbols()
	test.ExpectEquality(t, s["WSYNC"], 0x02)
	test.ExpectEquality(t, s["CXM0P"], 0x30)

	// SWCHA is both readable and writable at the same address
	test.ExpectEquality(t, s["SWCHA"], 0x280)
}

func TestRegisterConstants(t *testing.T) {
	for _, r := range []uint16{addresses.VSYNC, addresses.WSYNC, addresses.PF0, addresses.RESBL, addresses.HMOVE, addresses.CXCLR} {
		a, ok := addresses.LookupWrite(addresses.Write[r])
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, a, r)
	}
	for _, r := range []uint16{addresses.CXM0P, addresses.CXPPMM, addresses.INPT5} {
		a, ok := addresses.LookupRead(addresses.Read[r])
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, a, r)
	}
}
