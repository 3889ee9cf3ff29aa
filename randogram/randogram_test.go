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

package randogram_test

import (
	"image/color"
	"testing"

	"github.com/BillySpelchan/VM2600/assembler"
	"github.com/BillySpelchan/VM2600/curated"
	"github.com/BillySpelchan/VM2600/hardware/cpu"
	"github.com/BillySpelchan/VM2600/hardware/cpu/instructions"
	"github.com/BillySpelchan/VM2600/hardware/memory/cartridge"
	"github.com/BillySpelchan/VM2600/randogram"
	"github.com/BillySpelchan/VM2600/test"
)

func TestCapture(t *testing.T) {
	asm := assembler.NewAssembler(instructions.Definitions())
	status := asm.AssembleProgram([]string{
		"LDX #$00",
		"loop: TXA",
		"NOP",
		"INX",
		"CPX #$04",
		"BNE loop",
		"BRK",
	})
	test.DemandEquality(t, status, assembler.Clean)

	mem := cartridge.NewCartridge()
	test.DemandSuccess(t, mem.Load(0, asm.CurrentBank().Bytes()))
	mc := cpu.NewCPU(mem)

	src, err := randogram.Capture(mc, mem, 0, 1000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, src.Captured, 4)
	for i := 0; i < 4; i++ {
		test.ExpectEquality(t, src.Next(), uint8(i))
	}
	test.ExpectEquality(t, src.Next(), 0)

	// the capture ends with the BRK at the IP
	test.ExpectEquality(t, mc.State.X, 4)
	test.ExpectSuccess(t, mc.AtBreak())
}

func TestCaptureLimit(t *testing.T) {
	asm := assembler.NewAssembler(instructions.Definitions())
	status := asm.AssembleProgram([]string{
		"loop: NOP",
		"JMP loop",
	})
	test.DemandEquality(t, status, assembler.Clean)

	mem := cartridge.NewCartridge()
	test.DemandSuccess(t, mem.Load(0, asm.CurrentBank().Bytes()))

	src, err := randogram.Capture(cpu.NewCPU(mem), mem, 0, 10)
	test.ExpectSuccess(t, curated.Is(err, cpu.StepLimit))
	test.ExpectEquality(t, src.Captured, 5)
}

func TestGenerate(t *testing.T) {
	var src randogram.Source
	for i := range src.Bytes {
		src.Bytes[i] = uint8(i % 4)
	}

	// pairs are (0,1) and (2,3)
	var rg randogram.Randogram
	rg.Generate(&src)
	test.ExpectEquality(t, rg.Grid[0][1], randogram.Pairs/2)
	test.ExpectEquality(t, rg.Grid[2][3], randogram.Pairs/2)
	test.ExpectEquality(t, rg.Grid[1][0], 0)

	img := rg.Image()
	test.ExpectEquality(t, img.GrayAt(0, 1), color.Gray{Y: 0})
	test.ExpectEquality(t, img.GrayAt(1, 0), color.Gray{Y: 255})

	rg.Clear()
	test.ExpectEquality(t, rg.Grid[0][1], 0)
}

func TestFill(t *testing.T) {
	var a, b randogram.Source
	a.Fill(1)
	b.Fill(1)
	test.ExpectEquality(t, a.Bytes, b.Bytes)

	// every point is counted once on average
	var rg randogram.Randogram
	rg.Generate(&a)
	sum := 0
	for x := range rg.Grid {
		for y := range rg.Grid[x] {
			sum += rg.Grid[x][y]
		}
	}
	test.ExpectEquality(t, sum, randogram.Pairs)
}
