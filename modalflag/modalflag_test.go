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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/BillySpelchan/VM2600/modalflag"
	"github.com/BillySpelchan/VM2600/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"a", "b"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "b")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-verbose", "-limit", "10", "-o", "out.bin", "prog.asm"})

	verbose := md.AddBool("verbose", false, "")
	limit := md.AddInt("limit", 0, "")
	out := md.AddString("o", "", "")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *verbose)
	test.ExpectEquality(t, *limit, 10)
	test.ExpectEquality(t, *out, "out.bin")
	test.ExpectEquality(t, md.GetArg(0), "prog.asm")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"asm", "-o", "out.bin", "prog.asm"})
	md.AddSubModes("RUN", "ASM")
	md.AddDefaultSubMode("RUN")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "ASM")

	md.NewMode()
	out := md.AddString("o", "", "")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *out, "out.bin")
	test.ExpectEquality(t, md.GetArg(0), "prog.asm")
	test.ExpectEquality(t, md.Path(), "ASM")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"prog.asm"})
	md.AddSubModes("ASM", "RUN")
	md.AddDefaultSubMode("RUN")

	_, _ = md.Parse()
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "prog.asm")

	// the default mode is also selected when a flag is not recognised by the
	// top level mode
	md.NewArgs([]string{"-trace", "prog.asm"})
	md.AddSubModes("ASM", "RUN")
	md.AddDefaultSubMode("RUN")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	trace := md.AddBool("trace", false, "")
	_, _ = md.Parse()
	test.ExpectSuccess(t, *trace)
	test.ExpectEquality(t, md.GetArg(0), "prog.asm")
}

func TestNestedModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"render", "pmg", "out.png"})
	md.AddSubModes("RUN", "RENDER")

	_, _ = md.Parse()
	test.ExpectEquality(t, md.Mode(), "RENDER")

	md.NewMode()
	md.AddSubModes("RAINBOW", "PMG", "PALETTE")
	_, _ = md.Parse()
	test.ExpectEquality(t, md.Mode(), "PMG")
	test.ExpectEquality(t, md.Path(), "RENDER/PMG")
	test.ExpectEquality(t, md.String(), "RENDER/PMG")
	test.ExpectEquality(t, md.GetArg(0), "out.png")
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("RUN", "ASM")
	md.AddBool("verbose", false, "verbose output")
	md.AdditionalHelp("extra help")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "Usage:\n"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "verbose output"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "available sub-modes: RUN, ASM"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "default: RUN"))
	test.ExpectSuccess(t, strings.HasSuffix(tw.String(), "extra help\n"))

	tw.Clear()
	md.NewArgs([]string{"-h"})
	_, _ = md.Parse()
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}
