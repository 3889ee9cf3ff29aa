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

package easyterm_test

import (
	"io"
	"os"
	"testing"

	"github.com/BillySpelchan/VM2600/terminal/easyterm"
	"github.com/BillySpelchan/VM2600/test"
)

func TestNotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer r.Close()

	pt, err := easyterm.NewTerminal(r, w)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, pt.Interactive())

	// mode changes are ignored
	test.ExpectSuccess(t, pt.CBreakMode())
	test.ExpectSuccess(t, pt.CanonicalMode())
	test.ExpectSuccess(t, pt.Flush())

	cols, rows := pt.Size()
	test.ExpectEquality(t, cols, easyterm.DefaultCols)
	test.ExpectEquality(t, rows, easyterm.DefaultRows)

	pt.Print("q%c", easyterm.KeySpace)
	w.Close()

	k, err := pt.ReadKey()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, 'q')
	k, err = pt.ReadKey()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, easyterm.KeySpace)

	_, err = pt.ReadKey()
	test.ExpectEquality(t, err, io.EOF)
}

func TestMissingFiles(t *testing.T) {
	_, err := easyterm.NewTerminal(nil, os.Stdout)
	test.ExpectFailure(t, err)
	_, err = easyterm.NewTerminal(os.Stdin, nil)
	test.ExpectFailure(t, err)
}
