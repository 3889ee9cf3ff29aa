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

package video

import (
	"strings"

	"github.com/BillySpelchan/VM2600/hardware/memory/addresses"
)

// Object is a set of the six objects that can take part in a collision.
type Object uint8

// List of valid objects.
const (
	ObjectPlayfield Object = 1 << iota
	ObjectBall
	ObjectPlayer0
	ObjectMissile0
	ObjectPlayer1
	ObjectMissile1
)

// Collisions is the accumulated set of pairwise collisions.
type Collisions uint16

// The fifteen possible collisions.
const (
	PlayfieldBall Collisions = 1 << iota
	PlayfieldPlayer0
	PlayfieldMissile0
	PlayfieldPlayer1
	PlayfieldMissile1
	BallPlayer0
	BallMissile0
	BallPlayer1
	BallMissile1
	Player0Missile0
	Player0Player1
	Player0Missile1
	Missile0Player1
	Missile0Missile1
	Player1Missile1
)

// the objects involved in each collision, in the same order as the
// collision bits
var pairs = [15][2]Object{
	{ObjectPlayfield, ObjectBall},
	{ObjectPlayfield, ObjectPlayer0},
	{ObjectPlayfield, ObjectMissile0},
	{ObjectPlayfield, ObjectPlayer1},
	{ObjectPlayfield, ObjectMissile1},
	{ObjectBall, ObjectPlayer0},
	{ObjectBall, ObjectMissile0},
	{ObjectBall, ObjectPlayer1},
	{ObjectBall, ObjectMissile1},
	{ObjectPlayer0, ObjectMissile0},
	{ObjectPlayer0, ObjectPlayer1},
	{ObjectPlayer0, ObjectMissile1},
	{ObjectMissile0, ObjectPlayer1},
	{ObjectMissile0, ObjectMissile1},
	{ObjectPlayer1, ObjectMissile1},
}

var pairNames = [15]string{
	"PF-BL", "PF-P0", "PF-M0", "PF-P1", "PF-M1",
	"BL-P0", "BL-M0", "BL-P1", "BL-M1",
	"P0-M0", "P0-P1", "P0-M1",
	"M0-P1", "M0-M1",
	"P1-M1",
}

// the collisions produced by every combination of objects
var collide [64]Collisions

func init() {
	for objs := range collide {
		for i, p := range pairs {
			if Object(objs)&p[0] != 0 && Object(objs)&p[1] != 0 {
				collide[objs] |= 1 << i
			}
		}
	}
}

// Collide returns the collisions that occur when all the objects in the set
// are drawn in the same pixel.
func Collide(objs Object) Collisions {
	return collide[objs&0x3f]
}

// Is returns true if all the collisions in c are present.
func (coll Collisions) Is(c Collisions) bool {
	return coll&c == c
}

func (coll Collisions) String() string {
	s := strings.Builder{}
	for i, n := range pairNames {
		if coll&(1<<i) != 0 {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(n)
		}
	}
	if s.Len() == 0 {
		return "none"
	}
	return s.String()
}

// the collisions reported in bit 7 and bit 6 of each collision register,
// indexed from CXM0P
var registerBits = [8][2]Collisions{
	{Missile0Player1, Player0Missile0},
	{Player0Missile1, Player1Missile1},
	{PlayfieldPlayer0, BallPlayer0},
	{PlayfieldPlayer1, BallPlayer1},
	{PlayfieldMissile0, BallMissile0},
	{PlayfieldMissile1, BallMissile1},
	{PlayfieldBall, 0},
	{Player0Player1, Missile0Missile1},
}

// Register returns the value of the collision register at the address. The
// address is one of CXM0P to CXPPMM. Any other address returns zero.
func (coll Collisions) Register(address uint16) uint8 {
	idx := int(address) - int(addresses.CXM0P)
	if idx < 0 || idx >= len(registerBits) {
		return 0
	}

	var v uint8
	if b := registerBits[idx][0]; coll&b != 0 {
		v |= 0x80
	}
	if b := registerBits[idx][1]; b != 0 && coll&b != 0 {
		v |= 0x40
	}
	return v
}
