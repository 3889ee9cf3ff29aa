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

package main

import (
	"slices"

	"github.com/BillySpelchan/VM2600/hardware/memory/addresses"
	"github.com/BillySpelchan/VM2600/hardware/tia"
	"github.com/BillySpelchan/VM2600/logger"
	"github.com/BillySpelchan/VM2600/television/imagetv"
)

// a scene drives the TIA directly, one scanline at a time
type scene struct {
	scanlines int
	draw      func(tv *tia.TIA, imtv *imagetv.ImageTV) error
}

var scenes = map[string]scene{
	"rainbow": {scanlines: 256, draw: rainbow},
	"pmg":     {scanlines: 192, draw: pmg},
	"palette": {scanlines: 16 * paletteRowHeight, draw: palette},
}

func sceneNames() []string {
	names := make([]string, 0, len(scenes))
	for n := range scenes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// renderScene draws the named scene with a new TIA
func renderScene(name string) (*imagetv.ImageTV, error) {
	sc := scenes[name]
	imtv := imagetv.NewImageTV(sc.scanlines)
	if err := sc.draw(tia.NewTIA(), imtv); err != nil {
		return nil, err
	}
	return imtv, nil
}

func scanline(tv *tia.TIA, imtv *imagetv.ImageTV, y int) error {
	tv.RenderScanline()
	return imtv.NewScanline(y, tv.Scanline[:])
}

// every color value in turn as the background
func rainbow(tv *tia.TIA, imtv *imagetv.ImageTV) error {
	for y := 0; y < 256; y++ {
		tv.Write(addresses.COLUBK, uint8(y))
		if err := scanline(tv, imtv, y); err != nil {
			return err
		}
	}
	return nil
}

const (
	paletteRowHeight = 12
	paletteColWidth  = tia.VisiblePixels / 8
)

// the sixteen hues in rows and the eight luminances in columns. the
// background color is changed part way through each scanline
func palette(tv *tia.TIA, imtv *imagetv.ImageTV) error {
	for y := 0; y < 16*paletteRowHeight; y++ {
		hue := uint8(y/paletteRowHeight) << 4
		for lum := 0; lum < 8; lum++ {
			if err := tv.RunToClock(tia.HorizontalBlank + lum*paletteColWidth); err != nil {
				return err
			}
			tv.Write(addresses.COLUBK, hue|uint8(lum<<1))
		}
		if err := scanline(tv, imtv, y); err != nil {
			return err
		}
	}
	return nil
}

var invader = [8]uint8{
	0b00011000,
	0b00111100,
	0b01111110,
	0b11011011,
	0b11111111,
	0b00100100,
	0b01011010,
	0b10100101,
}

// players, missiles, ball and playfield together
func pmg(tv *tia.TIA, imtv *imagetv.ImageTV) error {
	tv.Write(addresses.COLUBK, 0x80)
	tv.Write(addresses.COLUPF, 0x2c)
	tv.Write(addresses.COLUP0, 0x1e)
	tv.Write(addresses.COLUP1, 0x44)

	// mirrored playfield and a ball four pixels wide
	tv.Write(addresses.CTRLPF, 0x21)

	// three close copies of player 0 with a missile two pixels wide. player 1
	// is quad width with a missile eight pixels wide
	tv.Write(addresses.NUSIZ0, 0x13)
	tv.Write(addresses.NUSIZ1, 0x37)

	// positions must be in ascending order
	positions := []struct {
		reg uint16
		x   int
	}{
		{addresses.RESP0, 16},
		{addresses.RESM0, 40},
		{addresses.RESBL, 78},
		{addresses.RESP1, 96},
		{addresses.RESM1, 140},
	}
	for _, p := range positions {
		if err := tv.RunToClock(tia.HorizontalBlank + p.x); err != nil {
			return err
		}
		tv.Write(p.reg, 0)
	}
	if err := scanline(tv, imtv, 0); err != nil {
		return err
	}

	// missiles drift towards each other
	tv.Write(addresses.HMM0, 0xf0)
	tv.Write(addresses.HMM1, 0x10)

	height := imtv.Frame().Bounds().Dy()
	for y := 1; y < height; y++ {
		// border at the top and bottom of the screen, edges everywhere else
		if y < 8 || y >= height-8 {
			tv.Write(addresses.PF0, 0xf0)
			tv.Write(addresses.PF1, 0xff)
			tv.Write(addresses.PF2, 0xff)
		} else {
			tv.Write(addresses.PF0, 0x10)
			tv.Write(addresses.PF1, 0x00)
			tv.Write(addresses.PF2, 0x00)
		}

		tv.Write(addresses.GRP0, 0)
		tv.Write(addresses.GRP1, 0)
		if y >= 24 && y < 56 {
			tv.Write(addresses.GRP0, invader[(y-24)/4])
		}
		if y >= 64 && y < 96 {
			tv.Write(addresses.GRP1, invader[(y-64)/4])
		}

		tv.Write(addresses.ENAM0, enable(y >= 100 && y < 160))
		tv.Write(addresses.ENAM1, enable(y >= 100 && y < 160))
		tv.Write(addresses.ENABL, enable(y >= 30 && y < 150))

		if y%4 == 0 && y >= 100 && y < 160 {
			tv.Write(addresses.HMOVE, 0)
		}

		if err := scanline(tv, imtv, y); err != nil {
			return err
		}
	}

	logger.Logf(logger.Allow, "tia", "pmg collisions: %s", tv.Collisions())

	return nil
}

func enable(on bool) uint8 {
	if on {
		return 0x02
	}
	return 0x00
}
