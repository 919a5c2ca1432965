package workslate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLcdCursorSetAndWritePostIncrements is spec.md's own §8 property 9
// LCD scenario: CMD=0x0B DATA=0x00 CMD=0x0A DATA=0x05 CMD=0x0C DATA='X'
// places 'X' at display RAM[5] and leaves the cursor at 6.
func TestLcdCursorSetAndWritePostIncrements(t *testing.T) {
	bus := NewBus(0)

	bus.Write(addrLCDInstr, lcdCmdSetCursorHigh)
	bus.Write(addrLCDData, 0x00)
	bus.Write(addrLCDInstr, lcdCmdSetCursorLow)
	bus.Write(addrLCDData, 0x05)
	bus.Write(addrLCDInstr, lcdCmdWriteData)
	bus.Write(addrLCDData, 'X')

	ram := bus.lcd.RAM()
	require.Equal(t, byte('X'), ram[5])
	require.Equal(t, uint16(6), bus.lcd.Cursor())
}

func TestLcdSetModeDrivesShowCursorCallback(t *testing.T) {
	l := newLcd()
	var shown *bool
	l.ShowCursor = func(visible bool) { shown = &visible }

	l.writeInstr(lcdCmdSetMode)
	l.writeData(0x08)

	require.NotNil(t, shown)
	require.True(t, *shown)
	require.True(t, l.cursorShown)
}

func TestLcdSetAndClearBitTogglesWithoutDisturbingOtherBits(t *testing.T) {
	l := newLcd()
	l.writeInstr(lcdCmdSetBit)
	l.writeData(0) // set bit 0 at cursor 0, then advance
	l.cursor = 0
	l.writeInstr(lcdCmdSetBit)
	l.writeData(2) // set bit 2 at cursor 0

	require.Equal(t, byte(0x05), l.ram[0])

	l.cursor = 0
	l.writeInstr(lcdCmdClearBit)
	l.writeData(0)

	require.Equal(t, byte(0x04), l.ram[0])
}

func TestLcdReadDataReturnsPriorCellAndAdvancesPastIt(t *testing.T) {
	l := newLcd()
	l.ram[0] = 0xAB
	l.cursor = 1

	v := l.readData()

	require.Equal(t, byte(0xAB), v)
	require.Equal(t, uint16(2), l.cursor)
}

func TestLcdCursorWrapsAtRAMBoundary(t *testing.T) {
	l := newLcd()
	l.cursor = lcdRAMSize - 1

	l.writeInstr(lcdCmdWriteData)
	l.writeData('Z')

	require.Equal(t, byte('Z'), l.ram[lcdRAMSize-1])
	require.Equal(t, uint16(0), l.cursor, "cursor wraps around the 2 KiB display RAM")
}

func TestTapePLA2DPowerOffBitClearsLCD(t *testing.T) {
	bus := NewBus(0)
	bus.lcd.ram[10] = 0x42

	bus.Write(addrTapePLA2D, 0x40)

	ram := bus.lcd.RAM()
	require.Equal(t, byte(0), ram[10], "tape PLA power-off bit clears the LCD")
	require.Equal(t, uint16(0), bus.lcd.Cursor())
}
