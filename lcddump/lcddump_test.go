package lcddump

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderSetsLitPixelsBlack(t *testing.T) {
	var ram [2048]byte
	ram[0] = 0x80 // top-left pixel set

	img := Render(ram)
	r, g, b, _ := img.At(0, 0).RGBA()
	require.Equal(t, uint32(0), r>>8)
	require.Equal(t, uint32(0), g>>8)
	require.Equal(t, uint32(0), b>>8)

	r, _, _, _ = img.At(1, 0).RGBA()
	require.Equal(t, uint32(255), r>>8, "adjacent clear bit stays white")
}

func TestWriteProducesValidPNG(t *testing.T) {
	var ram [2048]byte
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ram))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	require.Equal(t, Width, cfg.Width)
	require.Equal(t, Height, cfg.Height)
}
