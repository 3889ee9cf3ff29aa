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

// Package polycounter implements the polynomial counters found in the TIA.
// Described by Andrew Towers in the "Atari 2600 TIA Hardware Notes"
// (TIA_HW_Notes.txt), polynomial counters are a predictably performative way
// of counting in simple electronics.
//
// The TIA uses a 6-bit polycounter for the horizontal sync counter. One step
// of the counter is four color clocks, so a scanline is 57 steps. The
// emulation counts with ordinary integers but the equivalent polycounter bit
// pattern is available with HSync():
//
//	polycounter.HSync(clock)
//
// The package also contains tools for experimenting with counters built from
// a polynomial over a 9-bit value. A formula selects which powers of the
// counter, from the second to the ninth, are summed to produce the next
// value. Next() advances such a counter and RunLength() reports how many
// values the counter visits before repeating:
//
//	for _, f := range polycounter.LongRuns(256) {
//		fmt.Println(f, polycounter.RunLength(f))
//	}
package polycounter
