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
	"testing"

	"github.com/BillySpelchan/VM2600/hardware/memory/addresses"
	"github.com/BillySpelchan/VM2600/hardware/tia/video"
	"github.com/BillySpelchan/VM2600/test"
)

func TestCollide(t *testing.T) {
	test.ExpectEquality(t, video.Collide(0), video.Collisions(0))
	test.ExpectEquality(t, video.Collide(video.ObjectPlayer0), video.Collisions(0))
	test.ExpectEquality(t, video.Collide(video.ObjectPlayer0|video.ObjectPlayer1), video.Player0Player1)

	all := video.Collide(0x3f)
	test.ExpectEquality(t, all, video.Collisions(0x7fff))
	test.ExpectEquality(t, all.String(), "PF-BL PF-P0 PF-M0 PF-P1 PF-M1 BL-P0 BL-M0 BL-P1 BL-M1 P0-M0 P0-P1 P0-M1 M0-P1 M0-M1 P1-M1")
	test.ExpectEquality(t, video.Collisions(0).String(), "none")

	c := video.Collide(video.ObjectBall | video.ObjectMissile0 | video.ObjectPlayfield)
	test.ExpectSuccess(t, c.Is(video.PlayfieldBall|video.BallMissile0|video.PlayfieldMissile0))
	test.ExpectFailure(t, c.Is(video.BallPlayer0))
}

func TestRegisters(t *testing.T) {
	c := video.Missile0Player1 | video.BallPlayer1 | video.PlayfieldBall
	test.ExpectEquality(t, c.Register(addresses.CXM0P), uint8(0x80))
	test.ExpectEquality(t, c.Register(addresses.CXP1FB), uint8(0x40))
	test.ExpectEquality(t, c.Register(addresses.CXBLPF), uint8(0x80))
	test.ExpectEquality(t, c.Register(addresses.CXPPMM), uint8(0x00))

	c = video.Player0Missile0 | video.Missile0Missile1 | video.Player0Player1
	test.ExpectEquality(t, c.Register(addresses.CXM0P), uint8(0x40))
	test.ExpectEquality(t, c.Register(addresses.CXPPMM), uint8(0xc0))

	// CXBLPF has no bit 6
	test.ExpectEquality(t, video.Collisions(0x7fff).Register(addresses.CXBLPF), uint8(0x80))

	// not a collision register
	test.ExpectEquality(t, video.Collisions(0x7fff).Register(addresses.INPT0), uint8(0x00))
}

func TestPalette(t *testing.T) {
	test.ExpectEquality(t, video.Color(0), video.Palette[0])
	test.ExpectEquality(t, video.Color(1), video.Palette[0])
	test.ExpectEquality(t, video.Color(0x0e), video.Palette[7])

	c := video.Color(0x40)
	test.ExpectEquality(t, c.R, uint8(0x88))
	test.ExpectEquality(t, c.G, uint8(0x00))
	test.ExpectEquality(t, c.A, uint8(0xff))
}
