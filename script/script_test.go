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

package script_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BillySpelchan/VM2600/curated"
	"github.com/BillySpelchan/VM2600/script"
	"github.com/BillySpelchan/VM2600/test"
)

func TestAssembleAndRun(t *testing.T) {
	tw := &test.CompareWriter{}
	scr := script.NewScript(tw)
	defer scr.Close()

	err := scr.RunString(`
status, errors = assemble({
	"LDA #$42",
	"LDX #$10",
	"STA $80",
	"BRK",
})
print(status, errors)
run(0)
expect(reg("A") == 0x42, "accumulator")
expect(reg("X") == 16)
expect(peek(0x80) == 0x42, "memory")
expect(check("Z", 0))
expect(reg("A") == 0, "deliberate failure")
`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, scr.Failures(), 1)
	test.ExpectEquality(t, scr.CPU().State.IP, 0x06)

	lines := tw.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "clean\t0")
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "FAIL: "))
	test.ExpectSuccess(t, strings.HasSuffix(lines[1], "deliberate failure"))
}

func TestAssembleErrors(t *testing.T) {
	tw := &test.CompareWriter{}
	scr := script.NewScript(tw)
	defer scr.Close()

	err := scr.RunString(`
status, errors = assemble("LDA #$01\nFOO #$02\nBRK")
expect(status == "line errors", status)
expect(errors == 1)
`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, scr.Failures(), 0)
}

func TestStep(t *testing.T) {
	tw := &test.CompareWriter{}
	scr := script.NewScript(tw)
	defer scr.Close()

	err := scr.RunString(`
assemble({"LDA #$80", "NOP", "BRK"})
print(step())
print(step())
poke(0x10, 0x99)
print(peek(0x10))
`)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, tw.Compare("LDA #$80\nNOP \n153\n"))
}

func TestTIA(t *testing.T) {
	tw := &test.CompareWriter{}
	scr := script.NewScript(tw)
	defer scr.Close()

	err := scr.RunString(`
tia("COLUBK", 0x1e)
tia("GRP0", 0xff)
tia(0x1c, 0xff)
local pixels = scanline()
expect(#pixels == 160, "scanline width")
expect(pixels[160] == 0x1e, "background")
expect(collisions("CXPPMM") == 0x80, "player collision")
expect(collisions(0x37) == 0x80, "player collision by address")
clock(100)
tia("RESP0", 0)
`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, scr.Failures(), 0)
}

func TestScriptErrors(t *testing.T) {
	scr := script.NewScript(&test.CompareWriter{})
	defer scr.Close()

	err := scr.RunString(`reg("Q")`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	test.ExpectFailure(t, scr.RunString(`tia("NOTAREG", 0)`))
	test.ExpectFailure(t, scr.RunString(`clock(500)`))
	test.ExpectFailure(t, scr.RunString(`this is not lua`))

	// a program that never reaches BRK
	scr.StepLimit = 100
	test.ExpectFailure(t, scr.RunString(`assemble({"loop: JMP loop"}) run(0)`))
}

func TestRunFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`print("hello")`), 0644))

	tw := &test.CompareWriter{}
	scr := script.NewScript(tw)
	defer scr.Close()

	test.ExpectSuccess(t, scr.RunFile(fn))
	test.ExpectSuccess(t, tw.Compare("hello\n"))

	test.ExpectFailure(t, scr.RunFile(filepath.Join(t.TempDir(), "missing.lua")))
}
