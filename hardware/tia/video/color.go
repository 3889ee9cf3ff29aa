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
	"image/color"
)

// Palette is the NTSC palette. Each entry is used for two consecutive color
// register values; the lowest bit of a color register value is ignored.
var Palette = [128]color.RGBA{
	// hue 0
	{0x00, 0x00, 0x00, 0xff}, {0x40, 0x40, 0x40, 0xff}, {0x6c, 0x6c, 0x6c, 0xff}, {0x90, 0x90, 0x90, 0xff},
	{0xb0, 0xb0, 0xb0, 0xff}, {0xc8, 0xc8, 0xc8, 0xff}, {0xdc, 0xdc, 0xdc, 0xff}, {0xec, 0xec, 0xec, 0xff},
	// hue 1
	{0x44, 0x44, 0x00, 0xff}, {0x64, 0x64, 0x10, 0xff}, {0x84, 0x84, 0x24, 0xff}, {0xa0, 0xa0, 0x34, 0xff},
	{0xb8, 0xb8, 0x40, 0xff}, {0xd0, 0xd0, 0x50, 0xff}, {0xe8, 0xe8, 0x5c, 0xff}, {0xfc, 0xfc, 0x68, 0xff},
	// hue 2
	{0x70, 0x28, 0x00, 0xff}, {0x84, 0x44, 0x14, 0xff}, {0x98, 0x5c, 0x28, 0xff}, {0xac, 0x78, 0x3c, 0xff},
	{0xbc, 0x8c, 0x4c, 0xff}, {0xcc, 0xa0, 0x5c, 0xff}, {0xdc, 0xb4, 0x68, 0xff}, {0xec, 0xc8, 0x78, 0xff},
	// hue 3
	{0x84, 0x18, 0x00, 0xff}, {0x98, 0x34, 0x18, 0xff}, {0xac, 0x50, 0x30, 0xff}, {0xc0, 0x68, 0x48, 0xff},
	{0xd0, 0x80, 0x5c, 0xff}, {0xe0, 0x94, 0x70, 0xff}, {0xec, 0xa8, 0x80, 0xff}, {0xfc, 0xbc, 0x94, 0xff},
	// hue 4
	{0x88, 0x00, 0x00, 0xff}, {0x9c, 0x20, 0x20, 0xff}, {0xb0, 0x3c, 0x3c, 0xff}, {0xc0, 0x58, 0x58, 0xff},
	{0xd0, 0x70, 0x70, 0xff}, {0xe0, 0x88, 0x88, 0xff}, {0xec, 0xa0, 0xa0, 0xff}, {0xfc, 0xb4, 0xb4, 0xff},
	// hue 5
	{0x78, 0x00, 0x5c, 0xff}, {0x8c, 0x20, 0x74, 0xff}, {0xa0, 0x3c, 0x88, 0xff}, {0xb0, 0x58, 0x9c, 0xff},
	{0xc0, 0x70, 0xb0, 0xff}, {0xd0, 0x84, 0xc0, 0xff}, {0xdc, 0x9c, 0xd0, 0xff}, {0xec, 0xb0, 0xe0, 0xff},
	// hue 6
	{0x48, 0x00, 0x78, 0xff}, {0x60, 0x20, 0x90, 0xff}, {0x78, 0x3c, 0xa4, 0xff}, {0x8c, 0x58, 0xb8, 0xff},
	{0xa0, 0x70, 0xcc, 0xff}, {0xb4, 0x84, 0xdc, 0xff}, {0xc4, 0x9c, 0xec, 0xff}, {0xd4, 0xb0, 0xfc, 0xff},
	// hue 7
	{0x14, 0x00, 0x84, 0xff}, {0x30, 0x20, 0x98, 0xff}, {0x4c, 0x3c, 0xac, 0xff}, {0x68, 0x58, 0xc0, 0xff},
	{0x7c, 0x70, 0xd0, 0xff}, {0x94, 0x88, 0xe0, 0xff}, {0xa8, 0xa0, 0xec, 0xff}, {0xbc, 0xb4, 0xfc, 0xff},
	// hue 8
	{0x00, 0x00, 0x88, 0xff}, {0x1c, 0x20, 0x9c, 0xff}, {0x38, 0x40, 0xb0, 0xff}, {0x50, 0x5c, 0xc0, 0xff},
	{0x68, 0x74, 0xd0, 0xff}, {0x7c, 0x8c, 0xe0, 0xff}, {0x90, 0xa4, 0xec, 0xff}, {0xa4, 0xb8, 0xfc, 0xff},
	// hue 9
	{0x00, 0x18, 0x7c, 0xff}, {0x1c, 0x38, 0x90, 0xff}, {0x38, 0x54, 0xa8, 0xff}, {0x50, 0x70, 0xbc, 0xff},
	{0x68, 0x88, 0xcc, 0xff}, {0x7c, 0x9c, 0xdc, 0xff}, {0x90, 0xb4, 0xec, 0xff}, {0xa4, 0xc8, 0xfc, 0xff},
	// hue 10
	{0x00, 0x2c, 0x5c, 0xff}, {0x1c, 0x4c, 0x78, 0xff}, {0x38, 0x68, 0x90, 0xff}, {0x50, 0x84, 0xac, 0xff},
	{0x68, 0x9c, 0xc0, 0xff}, {0x7c, 0xb4, 0xd4, 0xff}, {0x90, 0xcc, 0xe8, 0xff}, {0xa4, 0xe0, 0xfc, 0xff},
	// hue 11
	{0x00, 0x3c, 0x2c, 0xff}, {0x1c, 0x5c, 0x48, 0xff}, {0x38, 0x7c, 0x64, 0xff}, {0x50, 0x9c, 0x80, 0xff},
	{0x68, 0xb4, 0x94, 0xff}, {0x7c, 0xd0, 0xac, 0xff}, {0x90, 0xe4, 0xc0, 0xff}, {0xa4, 0xfc, 0xd4, 0xff},
	// hue 12
	{0x00, 0x3c, 0x00, 0xff}, {0x20, 0x5c, 0x20, 0xff}, {0x40, 0x7c, 0x40, 0xff}, {0x5c, 0x9c, 0x5c, 0xff},
	{0x74, 0xb4, 0x74, 0xff}, {0x8c, 0xd0, 0x8c, 0xff}, {0xa4, 0xe4, 0xa4, 0xff}, {0xb8, 0xfc, 0xb8, 0xff},
	// hue 13
	{0x14, 0x38, 0x00, 0xff}, {0x34, 0x5c, 0x1c, 0xff}, {0x50, 0x7c, 0x38, 0xff}, {0x6c, 0x98, 0x50, 0xff},
	{0x84, 0xb4, 0x68, 0xff}, {0x9c, 0xcc, 0x7c, 0xff}, {0xb4, 0xe4, 0x90, 0xff}, {0xc8, 0xfc, 0xa4, 0xff},
	// hue 14
	{0x2c, 0x30, 0x00, 0xff}, {0x4c, 0x50, 0x1c, 0xff}, {0x68, 0x70, 0x34, 0xff}, {0x84, 0x8c, 0x4c, 0xff},
	{0x9c, 0xa8, 0x64, 0xff}, {0xb4, 0xc0, 0x78, 0xff}, {0xcc, 0xd4, 0x88, 0xff}, {0xe0, 0xec, 0x9c, 0xff},
	// hue 15
	{0x44, 0x28, 0x00, 0xff}, {0x64, 0x48, 0x18, 0xff}, {0x84, 0x68, 0x30, 0xff}, {0xa0, 0x84, 0x44, 0xff},
	{0xb8, 0x9c, 0x58, 0xff}, {0xd0, 0xb4, 0x6c, 0xff}, {0xe8, 0xcc, 0x7c, 0xff}, {0xfc, 0xe0, 0x8c, 0xff},
}

// Color returns the palette entry for a color register value.
func Color(v uint8) color.RGBA {
	return Palette[v>>1]
}
