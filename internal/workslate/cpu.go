package workslate

import "fmt"

// CPUType selects the opcode set and CPX flag semantics.
type CPUType int

const (
	CPU6800 CPUType = iota
	CPU6801
)

// CPUState is the run state the trace/glue layer observes.
type CPUState int

const (
	StateRunning CPUState = iota
	StateStopped
	StateWait
	StateSleep
)

func (s CPUState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	case StateWait:
		return "wait"
	case StateSleep:
		return "sleep"
	default:
		return "unknown"
	}
}

// Interrupt vector addresses, little-endian 16-bit, high byte at the lower
// address.
const (
	vecSCI  uint16 = 0xFFF0
	vecTOF  uint16 = 0xFFF2
	vecOCF  uint16 = 0xFFF4
	vecICF  uint16 = 0xFFF6
	vecIRQ1 uint16 = 0xFFF8
	vecSWI  uint16 = 0xFFFA
	vecNMI  uint16 = 0xFFFC
	vecRST  uint16 = 0xFFFE
)

// maskableVectors lists the asserted-by-peripheral vectors in priority
// order, highest address (highest priority) first.
var maskableVectors = [...]uint16{vecIRQ1, vecICF, vecOCF, vecTOF, vecSCI}

// FaultError reports a halting condition: an invalid opcode or an
// undecoded bus access. CPU.Step returns it as is and System.Run wraps it;
// callers recover the kind with errors.As.
type FaultError struct {
	Kind string // "invalid-opcode" or "undecoded-address"
	PC   uint16
	Addr uint16 // opcode byte for invalid-opcode, faulting address otherwise
}

func (e *FaultError) Error() string {
	if e.Kind == "invalid-opcode" {
		return fmt.Sprintf("Invalid opcode=$%02x at $%04x", e.Addr, e.PC)
	}
	return fmt.Sprintf("Undecoded address $%04x at $%04x", e.Addr, e.PC)
}

type instruction struct {
	name    string
	mode    AddrMode
	exec    func(c *CPU)
	is6801  bool // valid only on 6801/6303
	invalid bool // unassigned opcode slot
}

// CPU is a Motorola 6800/6801(6303) register file and execution engine
// wired to a Bus. It owns no peripheral state directly; every access to
// memory-mapped registers crosses the Bus.
type CPU struct {
	A, B   byte
	X      uint16
	PC, SP uint16
	cc     byte

	cpuType CPUType
	state   CPUState
	bus     *Bus

	irqMask   map[uint16]bool
	nmiLatch  bool
	swiWarned bool

	decode [256]instruction

	// Per-instruction scratch used to build the trace entry; reset each
	// Step and populated by fetch8/resolveAddress/fetchOperand8/16.
	curLen         int
	traceEA        uint16
	traceHasEA     bool
	traceData      uint16
	traceDataWidth int

	Trace *Trace

	Fault error // set and latched when state becomes StateStopped from a fault
}

// NewCPU builds the 6800/6801 decode table and returns an unreset CPU.
// Callers must call Reset before stepping.
func NewCPU(bus *Bus, cpuType CPUType) *CPU {
	c := &CPU{
		bus:     bus,
		cpuType: cpuType,
		irqMask: make(map[uint16]bool, 8),
		Trace:   NewTrace(),
	}
	c.buildDecodeTable()
	return c
}

// D is the 16-bit alias of A:B (A high, B low), valid on 6801+.
func (c *CPU) D() uint16 {
	return uint16(c.A)<<8 | uint16(c.B)
}

func (c *CPU) setD(v uint16) {
	c.A = byte(v >> 8)
	c.B = byte(v)
}

// Reset re-initializes registers, clears the interrupt mask, and vectors
// through RST.
func (c *CPU) Reset() {
	c.A, c.B = 0, 0
	c.X = 0
	c.cc = 0
	c.setFlag(FlagI, true)
	c.irqMask = make(map[uint16]bool, 8)
	c.nmiLatch = false
	c.state = StateRunning
	c.Fault = nil
	c.SP = 0x00FF
	c.PC = c.readVector(vecRST)
}

func (c *CPU) readVector(vec uint16) uint16 {
	hi := c.bus.ReadRaw(vec)
	lo := c.bus.ReadRaw(vec + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// AssertIRQ marks vec pending. Peripherals call this when their interrupt
// condition becomes true.
func (c *CPU) AssertIRQ(vec uint16) { c.irqMask[vec] = true }

// DeassertIRQ clears vec. Peripherals call this when the guest reads or
// clears the status register that was asserting it.
func (c *CPU) DeassertIRQ(vec uint16) { delete(c.irqMask, vec) }

// AssertNMI latches a non-maskable interrupt request.
func (c *CPU) AssertNMI() { c.nmiLatch = true }

func (c *CPU) highestActiveVector() (uint16, bool) {
	for _, v := range maskableVectors {
		if c.irqMask[v] {
			return v, true
		}
	}
	return 0, false
}

func (c *CPU) anyIRQAsserted() bool {
	_, ok := c.highestActiveVector()
	return ok || c.nmiLatch
}

// State reports the current run state (for the glue layer / diagnostics).
func (c *CPU) State() CPUState { return c.state }

// Stopped reports whether the CPU halted on a fault, breakpoint, or
// external stop.
func (c *CPU) Stopped() bool { return c.state == StateStopped }

func (c *CPU) fetch8() byte {
	v := c.bus.Read(c.PC)
	c.PC++
	c.curLen++
	return v
}

func (c *CPU) fetch16() uint16 {
	hi := c.fetch8()
	lo := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) push8(v byte) {
	c.bus.Write(c.SP, v)
	c.SP--
}

func (c *CPU) pull8() byte {
	c.SP++
	return c.bus.Read(c.SP)
}

func (c *CPU) push16(v uint16) {
	c.push8(byte(v))
	c.push8(byte(v >> 8))
}

func (c *CPU) pull16() uint16 {
	hi := c.pull8()
	lo := c.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

// pushContext stacks PC, X, A, B, flags in that order (§4.2 subroutine and
// interrupt discipline) and is shared by WAI and interrupt entry.
func (c *CPU) pushContext() {
	c.push16(c.PC)
	c.push16(c.X)
	c.push8(c.A)
	c.push8(c.B)
	c.push8(c.cc)
}

func (c *CPU) pullContext() {
	c.cc = c.pull8()
	c.B = c.pull8()
	c.A = c.pull8()
	c.X = c.pull16()
	c.PC = c.pull16()
}

func (c *CPU) enterInterrupt(vec uint16) {
	c.pushContext()
	c.setFlag(FlagI, true)
	c.PC = c.readVector(vec)
}

// Step executes exactly one instruction (or, in Sleep/Wait, idles one
// implicit cycle), sampling interrupts first per §4.2's priority order:
// NMI, then the highest asserted maskable IRQ with I=0. A Step that takes
// an interrupt stacks the context, loads PC from the vector and returns;
// the handler's first instruction runs on the next Step.
func (c *CPU) Step() error {
	if c.state == StateStopped {
		return c.Fault
	}

	switch c.state {
	case StateSleep:
		c.bus.tick()
		if c.anyIRQAsserted() {
			if c.nmiLatch {
				c.nmiLatch = false
				c.enterInterrupt(vecNMI)
			} else if vec, ok := c.highestActiveVector(); ok {
				c.enterInterrupt(vec)
			}
			c.state = StateRunning
		}
		return nil
	case StateWait:
		c.bus.tick()
		if c.anyIRQAsserted() {
			if c.nmiLatch {
				c.nmiLatch = false
				c.PC = c.readVector(vecNMI)
			} else if vec, ok := c.highestActiveVector(); ok {
				c.PC = c.readVector(vec)
			}
			c.setFlag(FlagI, true)
			c.state = StateRunning
		}
		return nil
	}

	if c.nmiLatch {
		c.nmiLatch = false
		c.enterInterrupt(vecNMI)
		return nil
	} else if vec, ok := c.highestActiveVector(); ok && !c.getFlag(FlagI) {
		c.enterInterrupt(vec)
		return nil
	}

	c.curLen = 0
	c.traceHasEA = false
	c.traceDataWidth = 0
	opcode := c.fetch8()
	inst := c.decode[opcode]
	if inst.invalid || (inst.is6801 && c.cpuType == CPU6800) {
		c.Fault = &FaultError{Kind: "invalid-opcode", PC: c.PC - 1, Addr: uint16(opcode)}
		c.state = StateStopped
		return c.Fault
	}

	entry := c.Trace.begin(c)
	inst.exec(c)
	c.Trace.commit(entry, c, inst.name)

	if busFault := c.bus.takeFault(); busFault != nil {
		c.Fault = busFault
		c.state = StateStopped
		return c.Fault
	}
	return nil
}

// Halt marks the CPU stopped without a fault (breakpoint / external stop).
func (c *CPU) Halt() {
	if c.state != StateStopped {
		c.state = StateStopped
	}
}
