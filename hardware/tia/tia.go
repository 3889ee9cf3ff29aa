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

package tia

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/BillySpelchan/VM2600/curated"
	"github.com/BillySpelchan/VM2600/hardware/memory/addresses"
	"github.com/BillySpelchan/VM2600/hardware/tia/polycounter"
	"github.com/BillySpelchan/VM2600/hardware/tia/video"
	"github.com/BillySpelchan/VM2600/logger"
)

// ClockRange is the error returned by RunToClock() for an invalid target.
const ClockRange = "tia: color clock target (%d) out of range"

// Scanline geometry in color clocks.
const (
	HorizontalBlank = 68
	ClocksPerLine   = 228
	VisiblePixels   = ClocksPerLine - HorizontalBlank
)

// TIA is the video part of the Television Interface Adaptor.
type TIA struct {
	// position on the current scanline, 0 to ClocksPerLine-1
	ColorClock int

	// the color register value of every visible pixel in the most recently
	// drawn scanline
	Scanline [VisiblePixels]uint8

	// color registers
	background uint8
	playfield  uint8
	player0    uint8
	player1    uint8

	// 20 bits of playfield, the leftmost pixel in bit 19
	pf uint32

	mirror   bool
	score    bool
	priority bool

	vsync  bool
	vblank bool

	sprites    [video.NumSprites]*video.Sprite
	collisions video.Collisions

	// missiles locked to their player with RESMPx
	locked [2]bool
}

// NewTIA is the preferred method of initialisation for the TIA type.
func NewTIA() *TIA {
	tia := &TIA{}
	for i := range tia.sprites {
		tia.sprites[i] = video.NewSprite(video.SpriteID(i))
	}
	return tia
}

func (tia *TIA) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "clock=%d hsync=%s pf=%05x", tia.ColorClock, polycounter.HSync(tia.ColorClock), tia.pf)
	if tia.mirror {
		s.WriteString(" mirror")
	}
	if tia.score {
		s.WriteString(" score")
	}
	if tia.priority {
		s.WriteString(" priority")
	}
	if tia.vblank {
		s.WriteString(" vblank")
	}
	fmt.Fprintf(&s, " cx=%s", tia.collisions)
	return s.String()
}

// ReversePlayfieldBits reverses the order of bits in the value.
func ReversePlayfieldBits(v uint8) uint8 {
	return bits.Reverse8(v)
}

// Sprite returns the sprite. Changes to the sprite affect subsequent pixels.
func (tia *TIA) Sprite(which video.SpriteID) *video.Sprite {
	return tia.sprites[which]
}

// Collisions returns the collisions accumulated since the last CXCLR.
func (tia *TIA) Collisions() video.Collisions {
	return tia.collisions
}

// Playfield returns the 20 bit playfield.
func (tia *TIA) Playfield() uint32 {
	return tia.pf
}

// VSync returns the state of the VSYNC signal.
func (tia *TIA) VSync() bool {
	return tia.vsync
}

// Read the register at the address. Only the lowest four bits of the address
// are significant.
func (tia *TIA) Read(address uint16) uint8 {
	reg := addresses.CXM0P + address&0x0f
	if reg <= addresses.CXPPMM {
		return tia.collisions.Register(reg)
	}
	return 0
}

// Write the value to the register at the address. Only the lowest six bits of
// the address are significant.
func (tia *TIA) Write(address uint16, value uint8) {
	reg := address & 0x3f

	switch reg {
	case addresses.VSYNC:
		tia.vsync = value&0x02 == 0x02
	case addresses.VBLANK:
		tia.vblank = value&video.VBLANKMask == video.VBLANKMask
	case addresses.WSYNC:
		// the CPU is halted by the bus
	case addresses.RSYNC:
		tia.ColorClock = 0

	case addresses.NUSIZ0:
		tia.nusiz(video.Player0, video.Missile0, value)
	case addresses.NUSIZ1:
		tia.nusiz(video.Player1, video.Missile1, value)

	case addresses.COLUP0:
		tia.player0 = value
	case addresses.COLUP1:
		tia.player1 = value
	case addresses.COLUPF:
		tia.playfield = value
	case addresses.COLUBK:
		tia.background = value

	case addresses.CTRLPF:
		tia.mirror = value&video.CTRLPFReflectedMask == video.CTRLPFReflectedMask
		tia.score = value&video.CTRLPFScoremodeMask == video.CTRLPFScoremodeMask
		tia.priority = value&video.CTRLPFPriorityMask == video.CTRLPFPriorityMask
		tia.sprites[video.Ball].SetScale((value & video.CTRLPFBallSizeMask) >> video.CTRLPFBallSizeShift)

	case addresses.REFP0:
		tia.sprites[video.Player0].Mirror = value&video.REFPxMask == video.REFPxMask
	case addresses.REFP1:
		tia.sprites[video.Player1].Mirror = value&video.REFPxMask == video.REFPxMask

	case addresses.PF0:
		tia.pf = (tia.pf & 0xffff) | uint32(ReversePlayfieldBits(value)&0x0f)<<16
	case addresses.PF1:
		tia.pf = (tia.pf & 0xf00ff) | uint32(value)<<8
	case addresses.PF2:
		tia.pf = (tia.pf & 0xfff00) | uint32(ReversePlayfieldBits(value))

	case addresses.RESP0:
		tia.reset(video.Player0)
	case addresses.RESP1:
		tia.reset(video.Player1)
	case addresses.RESM0:
		tia.reset(video.Missile0)
	case addresses.RESM1:
		tia.reset(video.Missile1)
	case addresses.RESBL:
		tia.reset(video.Ball)

	case addresses.AUDC0, addresses.AUDC1, addresses.AUDF0, addresses.AUDF1, addresses.AUDV0, addresses.AUDV1:

	case addresses.GRP0:
		tia.sprites[video.Player0].Bits = value
	case addresses.GRP1:
		tia.sprites[video.Player1].Bits = value

	case addresses.ENAM0:
		tia.enable(video.Missile0, value)
	case addresses.ENAM1:
		tia.enable(video.Missile1, value)
	case addresses.ENABL:
		tia.enable(video.Ball, value)

	case addresses.HMP0:
		tia.sprites[video.Player0].SetMotion(value)
	case addresses.HMP1:
		tia.sprites[video.Player1].SetMotion(value)
	case addresses.HMM0:
		tia.sprites[video.Missile0].SetMotion(value)
	case addresses.HMM1:
		tia.sprites[video.Missile1].SetMotion(value)
	case addresses.HMBL:
		tia.sprites[video.Ball].SetMotion(value)

	case addresses.VDELP0:
		tia.sprites[video.Player0].Delayed = value&video.VDELxxMask == video.VDELxxMask
	case addresses.VDELP1:
		tia.sprites[video.Player1].Delayed = value&video.VDELxxMask == video.VDELxxMask
	case addresses.VDELBL:
		tia.sprites[video.Ball].Delayed = value&video.VDELxxMask == video.VDELxxMask

	case addresses.RESMP0:
		tia.locked[0] = value&video.RESMPxMask == video.RESMPxMask
		tia.lockMissiles()
	case addresses.RESMP1:
		tia.locked[1] = value&video.RESMPxMask == video.RESMPxMask
		tia.lockMissiles()

	case addresses.HMOVE:
		for _, sp := range tia.sprites {
			sp.Move()
		}
		tia.lockMissiles()
	case addresses.HMCLR:
		for _, sp := range tia.sprites {
			sp.Delta = 0
		}
	case addresses.CXCLR:
		tia.collisions = 0

	default:
		logger.Logf(logger.Allow, "tia", "write to unused register %#02x (%#02x)", reg, value)
	}
}

func (tia *TIA) nusiz(player video.SpriteID, missile video.SpriteID, value uint8) {
	tia.sprites[player].SetGeometry(video.PlayerGeometry[value&video.NUSIZxCopiesMask])
	tia.sprites[missile].SetScale((value & video.NUSIZxSizeMask) >> video.NUSIZxSizeShift)
}

func (tia *TIA) enable(id video.SpriteID, value uint8) {
	if value&video.ENAxxMask == video.ENAxxMask {
		tia.sprites[id].Bits = 1
	} else {
		tia.sprites[id].Bits = 0
	}
}

// reset the sprite's position to the current column
func (tia *TIA) reset(id video.SpriteID) {
	tia.sprites[id].X = max(tia.ColorClock-HorizontalBlank, 0)
	tia.lockMissiles()
}

// a locked missile is kept at the centre of its player
func (tia *TIA) lockMissiles() {
	for i, l := range tia.locked {
		if !l {
			continue
		}
		p := tia.sprites[video.Player0+video.SpriteID(i)]
		m := tia.sprites[video.Missile0+video.SpriteID(i)]
		m.X = min(p.X+p.Size*p.Scale/2, VisiblePixels-1)
	}
}

// playfieldBit returns true if the playfield is set at the column
func (tia *TIA) playfieldBit(column int) bool {
	var pfCol int
	switch {
	case column < VisiblePixels/2:
		pfCol = column / 4
	case tia.mirror:
		pfCol = (VisiblePixels - 1 - column) / 4
	default:
		pfCol = (column - VisiblePixels/2) / 4
	}
	return tia.pf&(0x80000>>pfCol) != 0
}

func (tia *TIA) spriteColor(id video.SpriteID) uint8 {
	switch id {
	case video.Player0, video.Missile0:
		return tia.player0
	case video.Player1, video.Missile1:
		return tia.player1
	}
	return tia.playfield
}

// pixel composites the pixel at the column
func (tia *TIA) pixel(column int) uint8 {
	col := tia.background

	var objs video.Object

	pfOn := tia.playfieldBit(column)
	pfCol := tia.playfield
	if pfOn {
		objs |= video.ObjectPlayfield
		if tia.score {
			if column < VisiblePixels/2 {
				pfCol = tia.player0
			} else {
				pfCol = tia.player1
			}
		}
		if !tia.priority {
			col = pfCol
		}
	}

	for _, id := range video.DrawOrder {
		if (id == video.Missile0 && tia.locked[0]) || (id == video.Missile1 && tia.locked[1]) {
			continue
		}
		sp := tia.sprites[id]
		if sp.IsPixelDrawn(column) {
			objs |= sp.Mask
			col = tia.spriteColor(id)
		}
	}

	if pfOn && tia.priority {
		col = pfCol
	}

	tia.collisions |= video.Collide(objs)

	if tia.vblank {
		return 0
	}
	return col
}

// Tick advances the color clock by one, drawing a pixel if the clock is in
// the visible part of the scanline. Returns true when the scanline has been
// completed and the clock has returned to zero.
func (tia *TIA) Tick() bool {
	if column := tia.ColorClock - HorizontalBlank; column >= 0 {
		tia.Scanline[column] = tia.pixel(column)
	}

	tia.ColorClock++
	if tia.ColorClock >= ClocksPerLine {
		tia.ColorClock = 0
		return true
	}
	return false
}

// RenderScanline ticks the clock until the end of the current scanline.
func (tia *TIA) RenderScanline() {
	for !tia.Tick() {
	}
}

// RunToClock ticks the clock until it reaches the target. If the target is
// behind the current clock the rest of the current scanline is drawn first.
func (tia *TIA) RunToClock(target int) error {
	if target < 0 || target >= ClocksPerLine {
		return curated.Errorf(ClockRange, target)
	}
	for tia.ColorClock != target {
		tia.Tick()
	}
	return nil
}
