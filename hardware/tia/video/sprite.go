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
	"fmt"
	"strings"
)

// SpriteID identifies one of the five moveable objects.
type SpriteID int

// List of valid SpriteIDs.
const (
	Player0 SpriteID = iota
	Player1
	Missile0
	Missile1
	Ball
	NumSprites
)

func (id SpriteID) String() string {
	switch id {
	case Player0:
		return "player0"
	case Player1:
		return "player1"
	case Missile0:
		return "missile0"
	case Missile1:
		return "missile1"
	case Ball:
		return "ball"
	}
	return "unknown sprite"
}

// DrawOrder is the order in which sprites are composited. A sprite later in
// the list is drawn over an earlier sprite.
var DrawOrder = [NumSprites]SpriteID{Ball, Player1, Missile1, Player0, Missile0}

// the largest horizontal position
const maxX = 159

// Geometry is the scale, number of copies and spacing of a sprite.
type Geometry struct {
	Scale   int
	Copies  int
	Spacing int
}

// PlayerGeometry lists the geometries selected by the lower three bits of the
// NUSIZx registers.
var PlayerGeometry = [8]Geometry{
	{1, 1, 1},
	{1, 2, 2},
	{1, 2, 4},
	{1, 3, 2},
	{1, 2, 8},
	{2, 1, 1},
	{1, 3, 4},
	{4, 1, 1},
}

// Sprite is a player, missile or ball.
type Sprite struct {
	ID SpriteID

	// horizontal position of the leftmost pixel
	X int

	// pending horizontal movement, applied by Move()
	Delta int

	// drawing pattern. only the lowest Size bits are used
	Bits uint8
	Size int

	Scale   int
	Copies  int
	Spacing int

	// pattern is read right-to-left when mirrored
	Mirror bool

	// a delayed sprite is not drawn
	Delayed bool

	// the object bit used for collision detection
	Mask Object
}

// NewSprite is the preferred method of initialisation for the Sprite type.
// Players have a size of eight. Missiles and the ball have a size of one.
func NewSprite(id SpriteID) *Sprite {
	sp := &Sprite{
		ID:      id,
		Size:    1,
		Scale:   1,
		Copies:  1,
		Spacing: 1,
	}

	switch id {
	case Player0:
		sp.Size = 8
		sp.Mask = ObjectPlayer0
	case Player1:
		sp.Size = 8
		sp.Mask = ObjectPlayer1
	case Missile0:
		sp.Mask = ObjectMissile0
	case Missile1:
		sp.Mask = ObjectMissile1
	case Ball:
		sp.Mask = ObjectBall
	}

	return sp
}

func (sp *Sprite) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "%s: x=%d bits=%0*b", sp.ID, sp.X, sp.Size, sp.Bits)
	if sp.Delta != 0 {
		fmt.Fprintf(&s, " delta=%d", sp.Delta)
	}
	fmt.Fprintf(&s, " [%dx %d copies spacing %d]", sp.Scale, sp.Copies, sp.Spacing)
	if sp.Mirror {
		s.WriteString(" mirrored")
	}
	if sp.Delayed {
		s.WriteString(" delayed")
	}
	return s.String()
}

// SetGeometry changes the scale, copies and spacing of the sprite.
func (sp *Sprite) SetGeometry(g Geometry) {
	sp.Scale = g.Scale
	sp.Copies = g.Copies
	sp.Spacing = g.Spacing
}

// SetScale selects a scale of 1, 2, 4 or 8 from the two bit value. Used for
// missiles and the ball.
func (sp *Sprite) SetScale(v uint8) {
	sp.Scale = 1 << (v & 0x03)
}

// SetMotion sets the pending movement from the high nibble of an HMxx
// register value. The nibble is a signed value in the range -8 to 7.
func (sp *Sprite) SetMotion(v uint8) {
	sp.Delta = int(int8(v&HMxxMask) >> 4)
}

// Move applies the pending movement. The position is clamped to the visible
// screen.
func (sp *Sprite) Move() {
	sp.X = min(max(sp.X+sp.Delta, 0), maxX)
}

// IsPixelDrawn returns true if the sprite draws a pixel in the column.
func (sp *Sprite) IsPixelDrawn(column int) bool {
	if column < sp.X || sp.Delayed {
		return false
	}

	width := sp.Size * sp.Scale
	for c := 0; c < sp.Copies; c++ {
		start := sp.X + c*width*sp.Spacing
		if column < start || column >= start+width {
			continue
		}

		pos := (column - start) / sp.Scale
		if !sp.Mirror {
			pos = sp.Size - 1 - pos
		}
		return sp.Bits&(1<<pos) != 0
	}

	return false
}
