package workslate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSystemRunStopsOnInvalidOpcode(t *testing.T) {
	sys := NewSystem(CPU6801, 0)
	img := make([]byte, 0x8000)
	img[0] = 0xFF // invalid opcode slot
	img[0x7FFE] = 0x80
	img[0x7FFF] = 0x00
	sys.LoadROM(3, img)
	sys.Reset()

	err := sys.Run(context.Background(), 0)
	require.Error(t, err)
}

func TestSystemRunRespectsCycleBudget(t *testing.T) {
	sys := NewSystem(CPU6801, 0)
	img := make([]byte, 0x8000)
	for i := range img {
		img[i] = 0x01 // NOP forever
	}
	img[0x7FFE] = 0x80
	img[0x7FFF] = 0x00
	sys.LoadROM(3, img)
	sys.Reset()

	err := sys.Run(context.Background(), 10)
	require.NoError(t, err)
	require.False(t, sys.CPU.Stopped())
}

func TestSystemRunHonorsContextCancellation(t *testing.T) {
	sys := NewSystem(CPU6801, 0)
	img := make([]byte, 0x8000)
	for i := range img {
		img[i] = 0x01
	}
	img[0x7FFE] = 0x80
	img[0x7FFF] = 0x00
	sys.LoadROM(3, img)
	sys.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := sys.Run(ctx, 0)
	require.ErrorIs(t, err, context.Canceled)
}

func TestKeyboardPowerOffClearsPort1Bit(t *testing.T) {
	sys := NewSystem(CPU6801, 0)
	sys.Bus.port1 |= 0x04
	sys.Bus.kbd.PowerOn = true
	sys.Bus.kbd.PushFrame(KeyFrame{PowerButton: true})
	sys.Bus.kbd.read()
	require.Equal(t, byte(0), sys.Bus.port1&0x04)
}
