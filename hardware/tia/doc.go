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

// Package tia implements the video part of the Television Interface Adaptor.
// Audio registers are accepted and ignored.
//
// The TIA is driven by an artificial color clock. One scanline is 228 color
// clocks, of which the first 68 are the horizontal blank. Each call to Tick()
// advances the clock by one and, for the 160 visible clocks, composites one
// pixel into the Scanline buffer. The pixel is a color register value; use
// video.Color() to convert it to an RGB value.
//
// Register writes take effect immediately. The RESxx registers position a
// sprite at the current column, so the clock must be advanced to the desired
// position before the write. RunToClock() is useful for this:
//
//	tia := tia.NewTIA()
//	tia.RunToClock(100)
//	tia.Write(addresses.RESP0, 0)
//	tia.RenderScanline()
//
// Pixels are composited in a fixed order. The background is drawn first,
// followed by the playfield and then the sprites in the order given by
// video.DrawOrder. If the playfield has priority it is drawn after the
// sprites. Collisions between every pair of objects present in a pixel are
// accumulated until CXCLR is written.
package tia
