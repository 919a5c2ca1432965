// Package lcddump rasterizes the LCD controller's 2 KiB display RAM into a
// monochrome PNG snapshot for headless debugging, grounded on the teacher's
// own direct use of golang.org/x/image/colornames for its framebuffer
// overlay (nes/display.go) but repurposed here as a one-shot dump rather
// than a live front-end.
package lcddump

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/colornames"
)

// Width and Height describe the bit-addressable display raster: 2048 bytes
// at 8 pixels/byte lay out as 128 columns by 128 rows, matching the
// controller's 2048-byte RAM with no spare bytes.
const (
	Width  = 128
	Height = 128
)

// Render rasterizes ram (as returned by workslate's Lcd.RAM) into a 1-bit
// image, one set bit per lit pixel, MSB first within each byte.
func Render(ram [2048]byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			bitIndex := row*Width + col
			byteIndex := bitIndex / 8
			bit := 7 - uint(bitIndex%8)
			lit := ram[byteIndex]&(1<<bit) != 0
			c := colornames.White
			if lit {
				c = colornames.Black
			}
			img.Set(col, row, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return img
}

// Write renders ram and encodes it as a PNG to w.
func Write(w io.Writer, ram [2048]byte) error {
	return png.Encode(w, Render(ram))
}
