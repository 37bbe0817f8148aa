package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WritePPM writes the image as plain-text PPM (P3), rows top to bottom
func WritePPM(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B)
		}
	}
	return bw.Flush()
}

// WritePNG encodes the image as PNG
func WritePNG(w io.Writer, img *image.RGBA) error {
	return png.Encode(w, img)
}

// SaveImage writes the image to filename, choosing PPM for a .ppm extension and PNG otherwise
func SaveImage(filename string, img *image.RGBA) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(filename), ".ppm") {
		err = WritePPM(file, img)
	} else {
		err = WritePNG(file, img)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return file.Close()
}
