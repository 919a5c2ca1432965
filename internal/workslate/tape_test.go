package workslate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTapePLARegistersStoreAndEcho(t *testing.T) {
	tp := newTape()
	tp.writeReg(addrTapePLA2C, 0x04)
	tp.writeReg(addrTapePLA2D, 0x10)

	require.Equal(t, byte(0x04), tp.readReg(addrTapePLA2C))
	require.Equal(t, byte(0x10), tp.readReg(addrTapePLA2D))
}

func TestTapePLAUnmappedRegisterReadsAllOnes(t *testing.T) {
	tp := newTape()
	require.Equal(t, byte(0xFF), tp.readReg(0x2E))
}

func TestTapePLA2DWriteThroughBusTriggersLCDClearOnPowerOffBit(t *testing.T) {
	bus := NewBus(0)
	bus.lcd.ram[0] = 0x7E
	bus.lcd.cursor = 5

	bus.Write(addrTapePLA2D, 0x40)

	require.Equal(t, byte(0x40), bus.tape.readReg(addrTapePLA2D))
	require.Equal(t, byte(0), bus.lcd.ram[0])
	require.Equal(t, uint16(0), bus.lcd.cursor)
}

func TestTapePLA2DWriteWithoutPowerOffBitLeavesLCDAlone(t *testing.T) {
	bus := NewBus(0)
	bus.lcd.ram[0] = 0x7E
	bus.lcd.cursor = 5

	bus.Write(addrTapePLA2D, 0x01)

	require.Equal(t, byte(0x7E), bus.lcd.ram[0])
	require.Equal(t, uint16(5), bus.lcd.cursor)
}
