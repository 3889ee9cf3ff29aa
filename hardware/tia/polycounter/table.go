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

package polycounter

import (
	"fmt"
)

// the bit patterns of a 6 bit polycounter, in counting order
var table6bit []string

// the VCS only uses 6 bit polycounters but the same shift can be used to
// produce tables of any length.
func init() {
	mask := (1 << 6) - 1

	table6bit = make([]string, 1<<6)
	table6bit[0] = fmt.Sprintf("%06b", 0)

	var p int

	for i := 1; i < len(table6bit); i++ {
		p = ((p & (mask - 1)) >> 1) | (((p&1)^((p>>1)&1))^mask)<<5
		p &= mask
		table6bit[i] = fmt.Sprintf("%06b", p)
	}

	if table6bit[len(table6bit)-1] != table6bit[0] {
		panic("polycounter: 6 bit sequence did not loop")
	}

	// the final value is never reached by the VCS. it is the pattern that
	// triggers the reset
	table6bit[len(table6bit)-1] = fmt.Sprintf("%06b", mask)
}

// Clocks per step of the horizontal sync counter.
const HSyncClocks = 4

// HSync returns the bit pattern of the horizontal sync counter for the color
// clock.
func HSync(clock int) string {
	return table6bit[(clock/HSyncClocks)%len(table6bit)]
}
