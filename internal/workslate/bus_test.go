package workslate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimerOutputCompareRaisesIRQAndVectors(t *testing.T) {
	img := make([]byte, 0x8000)
	img[0] = 0x01 // NOP
	img[0x7FFE] = 0x80
	img[0x7FFF] = 0x00
	img[0x7FF4] = 0x93 // OCF vector hi
	img[0x7FF5] = 0x00 // OCF vector lo

	bus := NewBus(0)
	cpu := NewCPU(bus, CPU6801)
	bus.attachCPU(cpu)
	bus.LoadBank(3, img)
	cpu.Reset()
	cpu.setFlag(FlagI, false)

	bus.timer.EnableOCF()
	bus.timer.SetCounter(0xFFFE)
	bus.timer.SetOutputCompare(0xFFFF) // matches one tick from now

	for i := 0; i < 5 && cpu.PC != 0x9300; i++ {
		require.NoError(t, cpu.Step())
	}
	require.Equal(t, uint16(0x9300), cpu.PC, "output-compare interrupt should have vectored")
}

func TestKeyboardPowerButtonBypassesScanMatrix(t *testing.T) {
	bus := NewBus(0)
	cpu := NewCPU(bus, CPU6801)
	bus.attachCPU(cpu)

	resetCalled := false
	bus.kbd.OnReset = func() { resetCalled = true }
	bus.kbd.PowerOn = false

	bus.kbd.PushFrame(KeyFrame{PowerButton: true})
	v := bus.kbd.read()

	require.Equal(t, byte(0), v)
	require.True(t, resetCalled, "power button wakes the machine via a full reset")
	require.True(t, bus.kbd.PowerOn)
}

// TestKeyboardProbeRowLiteralScenario is §8 property 9's keyboard
// scenario: with the scan queue holding {probe=0x08, row=0x40}, probing
// with 0xFF or 0x08 returns 0x40 and probing with 0x04 returns 0x00.
func TestKeyboardProbeRowLiteralScenario(t *testing.T) {
	bus := NewBus(0)
	bus.kbd.PushFrame(KeyFrame{ProbeColumn: 0x08, ResponseRow: 0x40})

	bus.Write(addrKBD, 0xFF)
	require.Equal(t, byte(0x40), bus.Read(addrKBD))

	bus.Write(addrKBD, 0x08)
	require.Equal(t, byte(0x40), bus.Read(addrKBD))

	bus.Write(addrKBD, 0x04)
	require.Equal(t, byte(0x00), bus.Read(addrKBD))
}

func TestRAMReadWriteRoundTrips(t *testing.T) {
	bus := NewBus(0x100)
	bus.Write(0x0080, 0x42)
	require.Equal(t, byte(0x42), bus.Read(0x0080))
}

func TestUndecodedAddressFaultsTheBus(t *testing.T) {
	bus := NewBus(0x10) // small RAM so most of 0x0080-0x3FFF is undecoded
	bus.Read(0x3000)
	require.Error(t, bus.takeFault())
}
