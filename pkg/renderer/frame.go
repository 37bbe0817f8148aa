package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// Frame holds the averaged linear color of every pixel, rows top to bottom
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the linear color at (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Set stores the linear color at (x, y)
func (f *Frame) Set(x, y int, c core.Vec3) {
	f.Pixels[y*f.Width+x] = c
}

// AverageLuminance returns the mean linear luminance over all pixels
func (f *Frame) AverageLuminance() float64 {
	if len(f.Pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range f.Pixels {
		total += c.Luminance()
	}
	return total / float64(len(f.Pixels))
}

// ToRGBA tone maps the frame into an 8-bit image
func (f *Frame) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, Vec3ToColor(f.At(x, y)))
		}
	}
	return img
}

// Vec3ToColor converts a linear color to RGBA with gamma 2 correction and clamping
func Vec3ToColor(colorVec core.Vec3) color.RGBA {
	// NaN from a degenerate path would otherwise survive the clamp
	if math.IsNaN(colorVec.X) || math.IsNaN(colorVec.Y) || math.IsNaN(colorVec.Z) {
		return color.RGBA{A: 255}
	}
	colorVec = colorVec.Clamp(0.0, 1.0).GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255.99 * colorVec.X),
		G: uint8(255.99 * colorVec.Y),
		B: uint8(255.99 * colorVec.Z),
		A: 255,
	}
}
