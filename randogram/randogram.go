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

package randogram

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/BillySpelchan/VM2600/curated"
	"github.com/BillySpelchan/VM2600/hardware/cpu"
	"github.com/BillySpelchan/VM2600/hardware/memory/cpubus"
)

// BufferSize is the number of bytes in a Source.
const BufferSize = 65536

// Pairs is the number of points counted by Generate().
const Pairs = BufferSize / 2

// GridSize is the width and height of the randogram.
const GridSize = 256

// opcode of the NOP instruction
const nop = 0xea

// Source is a ring of bytes from which random values are read.
type Source struct {
	Bytes [BufferSize]uint8

	// number of bytes captured from a program
	Captured int

	idx int
}

// Capture runs the program at start until the instruction at the IP is BRK.
// The accumulator is stored in the next free byte of the Source every time
// the instruction at the IP is a NOP. The buffer wraps around when it is
// full.
//
// If limit is greater than zero the cpu.StepLimit error is returned after
// that many instructions.
func Capture(mc *cpu.CPU, mem cpubus.Memory, start uint16, limit int) (*Source, error) {
	src := &Source{}

	mc.State.IP = start

	steps := 0
	for {
		opcode := mem.Read(mc.State.IP)
		if opcode == 0x00 {
			break
		}

		if limit > 0 && steps >= limit {
			return src, curated.Errorf(cpu.StepLimit, limit, mc.State.IP)
		}

		if opcode == nop {
			src.Bytes[src.Captured%BufferSize] = mc.State.A
			src.Captured++
		}

		if err := mc.Step(); err != nil {
			return src, err
		}
		steps++
	}

	return src, nil
}

// Fill the source with values from the standard library's random number
// generator. Useful as a point of comparison.
func (src *Source) Fill(seed int64) {
	rnd := rand.New(rand.NewSource(seed))
	for i := range src.Bytes {
		src.Bytes[i] = uint8(rnd.Intn(256))
	}
	src.idx = 0
}

// Next returns the next byte, wrapping around at the end of the buffer.
func (src *Source) Next() uint8 {
	v := src.Bytes[src.idx]
	src.idx = (src.idx + 1) % BufferSize
	return v
}

// Randogram counts the pairs of values read from a Source.
type Randogram struct {
	Grid [GridSize][GridSize]int
}

// Clear all counts.
func (rg *Randogram) Clear() {
	rg.Grid = [GridSize][GridSize]int{}
}

// Generate reads Pairs pairs of values from the source. The first value of
// each pair is the x coordinate.
func (rg *Randogram) Generate(src *Source) {
	for n := 0; n < Pairs; n++ {
		x := src.Next()
		y := src.Next()
		rg.Grid[x][y]++
	}
}

// Image returns the randogram as a grey image. Points with no count are
// white and become darker the more often they are counted.
func (rg *Randogram) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, GridSize, GridSize))
	for x := 0; x < GridSize; x++ {
		for y := 0; y < GridSize; y++ {
			img.SetGray(x, y, color.Gray{Y: uint8(255 / (rg.Grid[x][y] + 1))})
		}
	}
	return img
}
