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

// Mask for the value of an experimental counter.
const Mask = 0x1ff

// NumFormulas is the number of distinct formulas. One bit for each power of
// the counter from the second to the ninth.
const NumFormulas = 256

// Next returns the value following counter. The sum of the counter, one and
// every power of the counter selected by the formula is masked to nine bits.
// Bit zero of the formula selects the second power, bit one the third power
// and so on.
func Next(counter int, formula int) int {
	counter &= Mask
	result := counter + 1
	poly := counter
	for b := 0; b < 8; b++ {
		poly = (poly * counter) & Mask
		if formula&(1<<b) != 0 {
			result += poly
		}
	}
	return result & Mask
}

// RunLength returns the length of the cycle reached by a counter starting
// at zero. Values visited before the cycle is entered are not counted.
func RunLength(formula int) int {
	var seen [Mask + 1]int
	for i := range seen {
		seen[i] = -1
	}

	n := 0
	for step := 0; ; step++ {
		if seen[n] >= 0 {
			return step - seen[n]
		}
		seen[n] = step
		n = Next(n, formula)
	}
}

// LongRuns returns every formula with a run length of at least min, in
// ascending order.
func LongRuns(min int) []int {
	var runs []int
	for f := 0; f < NumFormulas; f++ {
		if RunLength(f) >= min {
			runs = append(runs, f)
		}
	}
	return runs
}
