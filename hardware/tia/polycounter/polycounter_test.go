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

package polycounter_test

import (
	"testing"

	"github.com/BillySpelchan/VM2600/hardware/tia/polycounter"
	"github.com/BillySpelchan/VM2600/test"
)

func TestHSync(t *testing.T) {
	test.ExpectEquality(t, polycounter.HSync(0), "000000")
	test.ExpectEquality(t, polycounter.HSync(3), "000000")
	test.ExpectEquality(t, polycounter.HSync(4), "100000")
	test.ExpectEquality(t, polycounter.HSync(8), "110000")

	// the reset pattern
	test.ExpectEquality(t, polycounter.HSync(63*polycounter.HSyncClocks), "111111")
}

func TestNext(t *testing.T) {
	// the empty formula is an ordinary counter
	test.ExpectEquality(t, polycounter.Next(5, 0), 6)
	test.ExpectEquality(t, polycounter.Next(polycounter.Mask, 0), 0)

	// 2 + 2^2 + 1
	test.ExpectEquality(t, polycounter.Next(2, 1), 7)

	// 3 + 3^2 + 1
	test.ExpectEquality(t, polycounter.Next(3, 1), 13)

	// 3 + 3^3 + 1
	test.ExpectEquality(t, polycounter.Next(3, 2), 31)

	// 3 + 3^2 + 3^3 + 1
	test.ExpectEquality(t, polycounter.Next(3, 3), 40)

	// 16^3 is masked away
	test.ExpectEquality(t, polycounter.Next(16, 2), 17)

	// result is always in range
	for f := 0; f < polycounter.NumFormulas; f++ {
		for c := 0; c <= polycounter.Mask; c++ {
			n := polycounter.Next(c, f)
			test.DemandSuccess(t, n >= 0 && n <= polycounter.Mask)
		}
	}
}

func TestRunLength(t *testing.T) {
	test.ExpectEquality(t, polycounter.RunLength(0), polycounter.Mask+1)

	for f := 0; f < polycounter.NumFormulas; f++ {
		l := polycounter.RunLength(f)
		test.DemandSuccess(t, l > 0 && l <= polycounter.Mask+1)
	}
}

func TestLongRuns(t *testing.T) {
	test.ExpectEquality(t, len(polycounter.LongRuns(1)), polycounter.NumFormulas)

	runs := polycounter.LongRuns(polycounter.Mask + 1)
	test.DemandSuccess(t, len(runs) > 0)
	test.ExpectEquality(t, runs[0], 0)
	for _, f := range runs {
		test.ExpectEquality(t, polycounter.RunLength(f), polycounter.Mask+1)
	}
}
