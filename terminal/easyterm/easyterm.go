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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It wraps
// termios methods in functions with friendlier names and falls back to doing
// nothing when the input is not a terminal.
package easyterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// default geometry when the output is not a terminal
const (
	DefaultCols = 80
	DefaultRows = 24
)

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	// input is a terminal. if it is not then the mode functions do nothing
	interactive bool

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type.
func NewTerminal(input *os.File, output *os.File) (*Terminal, error) {
	if input == nil {
		return nil, fmt.Errorf("easyterm: terminal requires an input file")
	}
	if output == nil {
		return nil, fmt.Errorf("easyterm: terminal requires an output file")
	}

	pt := &Terminal{
		input:       input,
		output:      output,
		interactive: term.IsTerminal(int(input.Fd())),
	}

	if pt.interactive {
		if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
			return nil, fmt.Errorf("easyterm: %w", err)
		}
		pt.cbreakAttr = pt.canAttr
		termios.Cfmakecbreak(&pt.cbreakAttr)
	}

	return pt, nil
}

// Interactive returns true if the input is a terminal.
func (pt *Terminal) Interactive() bool {
	return pt.interactive
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	if !pt.interactive {
		return nil
	}
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode. Keys are available to ReadKey()
// as soon as they are pressed.
func (pt *Terminal) CBreakMode() error {
	if !pt.interactive {
		return nil
	}
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Flush makes sure the terminal's input buffer is empty.
func (pt *Terminal) Flush() error {
	if !pt.interactive {
		return nil
	}
	return termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH)
}

// Size returns the number of columns and rows of the output terminal.
func (pt *Terminal) Size() (int, int) {
	cols, rows, err := term.GetSize(int(pt.output.Fd()))
	if err != nil {
		return DefaultCols, DefaultRows
	}
	return cols, rows
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...any) {
	fmt.Fprintf(pt.output, s, a...)
}

// ReadKey waits for and returns a single byte from the input.
func (pt *Terminal) ReadKey() (byte, error) {
	var b [1]byte
	if _, err := pt.input.Read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}
