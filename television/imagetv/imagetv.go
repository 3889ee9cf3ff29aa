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

// Package imagetv receives scanlines from the TIA and saves them as PNG
// images.
package imagetv

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/BillySpelchan/VM2600/curated"
	"github.com/BillySpelchan/VM2600/hardware/tia"
	"github.com/BillySpelchan/VM2600/hardware/tia/video"
)

// Sentinel errors.
const (
	FileExists = "imagetv: image file (%s) already exists"
	SaveFailed = "imagetv: %v"
)

// PixelWidth is the width of a TIA pixel in relation to its height.
const PixelWidth = 2

// DefaultScanlines is the height of an NTSC frame without VSYNC.
const DefaultScanlines = 259

// height of the caption strip
const captionHeight = 16

// ImageTV implements the hardware.ScanlineReceiver interface. Scanlines are
// drawn into an image one pixel high. Scanlines outside the image are
// ignored.
type ImageTV struct {
	frame *image.NRGBA

	// the scale applied to the frame by Image(). a value of less than one is
	// treated as one
	Scale int

	// text drawn underneath the frame by Image(). no strip is added if the
	// caption is empty
	Caption string
}

// NewImageTV is the preferred method of initialisation for the ImageTV type.
func NewImageTV(scanlines int) *ImageTV {
	return &ImageTV{
		frame: image.NewNRGBA(image.Rect(0, 0, tia.VisiblePixels, scanlines)),
		Scale: 1,
	}
}

// NewScanline implements the hardware.ScanlineReceiver interface.
func (imtv *ImageTV) NewScanline(scanline int, pixels []uint8) error {
	if scanline < 0 || scanline >= imtv.frame.Bounds().Dy() {
		return nil
	}
	for x, p := range pixels {
		imtv.frame.Set(x, scanline, video.Color(p))
	}
	return nil
}

// Frame returns the unscaled frame.
func (imtv *ImageTV) Frame() *image.NRGBA {
	return imtv.frame
}

// Image returns the frame scaled and captioned.
func (imtv *ImageTV) Image() image.Image {
	return Scaled(imtv.frame, max(imtv.Scale, 1)*PixelWidth, max(imtv.Scale, 1), imtv.Caption)
}

// Save the scaled and captioned frame to a new PNG file.
func (imtv *ImageTV) Save(filename string) error {
	return Save(filename, imtv.Image())
}

// Scaled returns a copy of the image scaled by the horizontal and vertical
// factors with nearest neighbour sampling. If caption is not empty a strip
// is added to the bottom of the image with the caption written in it.
func Scaled(src image.Image, scaleX int, scaleY int, caption string) image.Image {
	sb := src.Bounds()
	r := image.Rect(0, 0, sb.Dx()*scaleX, sb.Dy()*scaleY)

	h := r.Dy()
	if caption != "" {
		h += captionHeight
	}
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), h))
	draw.NearestNeighbor.Scale(dst, r, src, sb, draw.Src, nil)

	if caption != "" {
		draw.Draw(dst, image.Rect(0, r.Dy(), r.Dx(), h), image.NewUniform(color.Black), image.Point{}, draw.Src)
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(color.White),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(2, r.Dy()+basicfont.Face7x13.Ascent+2),
		}
		d.DrawString(caption)
	}

	return dst
}

// Save the image to a new PNG file. An existing file will not be
// overwritten.
func Save(filename string, img image.Image) error {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return curated.Errorf(FileExists, filename)
		}
		return curated.Errorf(SaveFailed, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return curated.Errorf(SaveFailed, err)
	}

	return nil
}
