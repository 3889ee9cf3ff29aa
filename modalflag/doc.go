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

// Package modalflag wraps the flag package so that a command line can select
// a mode of operation, with each mode having its own set of flags.
//
// Arguments are given once with NewArgs(). Every call to Parse() consumes the
// flags for the current mode and, if sub-modes have been added, the mode
// selector that follows them:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("ASSEMBLE", "RUN", "DISASM")
//	md.AddDefaultSubMode("RUN")
//
//	p, err := md.Parse()
//	if p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "ASSEMBLE":
//		md.NewMode()
//		out := md.AddString("o", "", "output file")
//		p, err = md.Parse()
//		...
//	}
//
// Mode names are compared case-insensitively and are always reported in
// upper case. The sequence of selected modes is available with Path().
package modalflag
