package iconmaker

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// borderWidth is the inset border thickness in pixels at 256x256.
const borderWidth = 8

// Placeholder palette.
var (
	borderColor   = color.RGBA{R: 0x16, G: 0x21, B: 0x3E, A: 0xFF}
	titleColor    = color.RGBA{R: 0xE9, G: 0x45, B: 0x60, A: 0xFF}
	subtitleColor = color.RGBA{R: 0x0F, G: 0x34, B: 0x60, A: 0xFF}
)

// Draw renders a size x size placeholder icon: a dark vertical gradient,
// an inset border, and centered title/subtitle text.
func Draw(size int, title, subtitle string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Gradient from dark to slightly lighter, bluish tint.
	for y := 0; y < size; y++ {
		shade := uint8(26 + y*40/size)
		rowColor := color.RGBA{R: shade, G: shade, B: shade + 20, A: 0xFF}

		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, rowColor)
		}
	}

	drawBorder(img, size, borderWidth*size/256)

	drawCentered(img, title, titleColor, size, size*35/100)
	drawCentered(img, subtitle, subtitleColor, size, size*60/100)

	return img
}

// Scale resamples src to a size x size icon using Catmull-Rom interpolation.
func Scale(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Over, nil)

	return dst
}

// drawBorder paints a solid frame of the given thickness along the edges.
func drawBorder(img *image.RGBA, size, thickness int) {
	if thickness < 1 {
		thickness = 1
	}

	uniform := image.NewUniform(borderColor)

	// Top, bottom, left, right strips.
	xdraw.Draw(img, image.Rect(0, 0, size, thickness), uniform, image.Point{}, xdraw.Src)
	xdraw.Draw(img, image.Rect(0, size-thickness, size, size), uniform, image.Point{}, xdraw.Src)
	xdraw.Draw(img, image.Rect(0, 0, thickness, size), uniform, image.Point{}, xdraw.Src)
	xdraw.Draw(img, image.Rect(size-thickness, 0, size, size), uniform, image.Point{}, xdraw.Src)
}

// drawCentered renders text horizontally centered with its baseline at y.
func drawCentered(img *image.RGBA, text string, c color.RGBA, size, y int) {
	if text == "" {
		return
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
	}

	width := drawer.MeasureString(text).Ceil()
	drawer.Dot = fixed.P((size-width)/2, y)
	drawer.DrawString(text)
}
