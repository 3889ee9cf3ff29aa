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

package video_test

import (
	"slices"
	"testing"

	"github.com/BillySpelchan/VM2600/hardware/tia/video"
	"github.com/BillySpelchan/VM2600/test"
)

// expectPixels checks that the sprite draws in exactly the expected columns
func expectPixels(t *testing.T, sp *video.Sprite, expected []int, tags ...any) {
	t.Helper()
	var drawn []int
	for c := 0; c < 160; c++ {
		if sp.IsPixelDrawn(c) {
			drawn = append(drawn, c)
		}
	}
	if !test.ExpectEquality(t, len(drawn), len(expected), tags...) {
		return
	}
	test.ExpectSuccess(t, slices.Equal(drawn, expected), append(tags, drawn)...)
}

func TestMissile(t *testing.T) {
	m := video.NewSprite(video.Missile0)
	m.Bits = 1
	m.X = 11
	expectPixels(t, m, []int{11}, "normal")

	m.SetScale(1)
	expectPixels(t, m, []int{11, 12}, "x2")

	m.SetScale(2)
	expectPixels(t, m, []int{11, 12, 13, 14}, "x4")

	m.SetScale(3)
	expectPixels(t, m, []int{11, 12, 13, 14, 15, 16, 17, 18}, "x8")

	m.Bits = 0
	expectPixels(t, m, []int{}, "disabled")
}

func TestPlayerGeometry(t *testing.T) {
	p := video.NewSprite(video.Player0)
	p.Bits = 0xa2
	p.X = 42

	expected := [8][]int{
		{42, 44, 48},
		{42, 44, 48, 58, 60, 64},
		{42, 44, 48, 74, 76, 80},
		{42, 44, 48, 58, 60, 64, 74, 76, 80},
		{42, 44, 48, 106, 108, 112},
		{42, 43, 46, 47, 54, 55},
		{42, 44, 48, 74, 76, 80, 106, 108, 112},
		{42, 43, 44, 45, 50, 51, 52, 53, 66, 67, 68, 69},
	}

	for i, g := range video.PlayerGeometry {
		p.SetGeometry(g)
		expectPixels(t, p, expected[i], "NUSIZ", i)
	}
}

func TestPlayerMirror(t *testing.T) {
	p := video.NewSprite(video.Player1)
	p.Bits = 0xa2
	p.X = 42
	p.Mirror = true
	p.SetGeometry(video.PlayerGeometry[6])
	expectPixels(t, p, []int{43, 47, 49, 75, 79, 81, 107, 111, 113})
}

func TestDelayed(t *testing.T) {
	p := video.NewSprite(video.Player0)
	p.Bits = 0xff
	p.Delayed = true
	expectPixels(t, p, []int{})
}

func TestMotion(t *testing.T) {
	b := video.NewSprite(video.Ball)
	b.X = 10

	b.SetMotion(0x70)
	test.ExpectEquality(t, b.Delta, 7)
	b.Move()
	test.ExpectEquality(t, b.X, 17)

	b.SetMotion(0x80)
	test.ExpectEquality(t, b.Delta, -8)
	b.Move()
	test.ExpectEquality(t, b.X, 9)

	// the low nibble is ignored
	b.SetMotion(0xf5)
	test.ExpectEquality(t, b.Delta, -1)

	// movement is clamped to the screen
	b.X = 3
	b.SetMotion(0x80)
	b.Move()
	test.ExpectEquality(t, b.X, 0)

	b.X = 155
	b.SetMotion(0x70)
	b.Move()
	test.ExpectEquality(t, b.X, 159)
}

func TestSpriteString(t *testing.T) {
	p := video.NewSprite(video.Player0)
	p.Bits = 0x81
	p.X = 5
	test.ExpectEquality(t, p.String(), "player0: x=5 bits=10000001 [1x 1 copies spacing 1]")
}
