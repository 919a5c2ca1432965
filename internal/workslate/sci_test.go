package workslate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSciReceiveFIFOArrivesAndRaisesIRQ(t *testing.T) {
	bus := NewBus(0)
	cpu := NewCPU(bus, CPU6801)
	bus.attachCPU(cpu)
	cpu.Reset()
	cpu.setFlag(FlagI, false)

	bus.sci.writeReg(addrTRCSR, trcsrRE|trcsrRIE, cpu)
	bus.sci.PushRx(0x42)
	bus.sci.advance(cpu)

	require.NotEqual(t, byte(0), bus.sci.trcsr&trcsrRDRF)
	require.True(t, cpu.irqMask[vecSCI])

	v := bus.sci.readReg(addrSCRDR, cpu)
	require.Equal(t, byte(0x42), v)
	require.Equal(t, byte(0), bus.sci.trcsr&trcsrRDRF, "reading the data register clears RDRF")
	require.False(t, cpu.irqMask[vecSCI], "reading the data register deasserts the SCI IRQ")
}

func TestSciSecondQueuedByteWaitsForInterCharacterDelay(t *testing.T) {
	bus := NewBus(0)
	cpu := NewCPU(bus, CPU6801)
	bus.attachCPU(cpu)

	bus.sci.PushRx(0x41)
	bus.sci.PushRx(0x42)
	bus.sci.advance(cpu) // first byte arrives with no delay

	v := bus.sci.readReg(addrSCRDR, cpu)
	require.Equal(t, byte(0x41), v)

	for i := 0; i < bus.sci.rxDelay; i++ {
		require.Equal(t, byte(0), bus.sci.trcsr&trcsrRDRF, "second byte must wait out the inter-character delay")
		bus.sci.advance(cpu)
	}
	bus.sci.advance(cpu)
	require.NotEqual(t, byte(0), bus.sci.trcsr&trcsrRDRF)
	require.Equal(t, byte(0x42), bus.sci.readReg(addrSCRDR, cpu))
}

func TestSciTransmitWritesThroughToOutputAndCanRaiseIRQ(t *testing.T) {
	bus := NewBus(0)
	cpu := NewCPU(bus, CPU6801)
	bus.attachCPU(cpu)
	cpu.Reset()

	sink := &sciRingSink{}
	bus.sci.SetOutput(sink)
	bus.sci.writeReg(addrTRCSR, trcsrTIE, cpu)

	bus.sci.writeReg(addrSCTDR, 'X', cpu)

	require.Equal(t, []byte{'X'}, sink.buf)
	require.True(t, cpu.irqMask[vecSCI])
}

func TestSciTRCSRWritePreservesReadOnlyStatusBits(t *testing.T) {
	bus := NewBus(0)
	cpu := NewCPU(bus, CPU6801)
	bus.attachCPU(cpu)

	bus.sci.trcsr = trcsrRDRF | trcsrORFE
	bus.sci.writeReg(addrTRCSR, trcsrRE|trcsrTE, cpu)

	require.Equal(t, byte(trcsrRDRF|trcsrORFE|trcsrRE|trcsrTE), bus.sci.trcsr)
}
