package workslate

import "log"

func (c *CPU) opNOP() {}

func (c *CPU) opLSRD() {
	d := c.D()
	carry := d & 1
	f := d >> 1
	c.flagsNZ16(f)
	c.setFlag(FlagN, false)
	c.setFlag(FlagC, carry != 0)
	c.setFlag(FlagV, c.getFlag(FlagN) != (carry != 0))
	c.setD(f)
}

func (c *CPU) opASLD() {
	d := c.D()
	carry := d >> 15
	f := d << 1
	c.flagsNZ16(f)
	c.setFlag(FlagC, carry != 0)
	c.setFlag(FlagV, c.getFlag(FlagN) != (carry != 0))
	c.setD(f)
}

// opTAP loads the condition codes from A. Bits 6-7 of A are dropped;
// opTPA reports them as 1.
func (c *CPU) opTAP() {
	c.cc = c.A & 0x3F
}

func (c *CPU) opTPA() {
	c.A = c.cc | 0xC0
}

func (c *CPU) opINX() {
	c.X++
	c.setFlag(FlagZ, c.X == 0)
}

func (c *CPU) opDEX() {
	c.X--
	c.setFlag(FlagZ, c.X == 0)
}

func (c *CPU) opCLV() { c.setFlag(FlagV, false) }
func (c *CPU) opSEV() { c.setFlag(FlagV, true) }
func (c *CPU) opCLC() { c.setFlag(FlagC, false) }
func (c *CPU) opSEC() { c.setFlag(FlagC, true) }
func (c *CPU) opCLI() { c.setFlag(FlagI, false) }
func (c *CPU) opSEI() { c.setFlag(FlagI, true) }

func (c *CPU) opSBA() {
	f := c.A - c.B
	c.subFlags8(c.A, c.B, f)
	c.A = f
}

func (c *CPU) opCBA() {
	f := c.A - c.B
	c.subFlags8(c.A, c.B, f)
}

func (c *CPU) opTAB() {
	c.B = c.A
	c.logicFlags8(c.B)
}

func (c *CPU) opTBA() {
	c.A = c.B
	c.logicFlags8(c.A)
}

// opDAA adjusts A to valid packed BCD after an ADD/ADC/ABA. It only ever
// sets C, never clears it, and never touches H; the original
// implementation also does not define V afterward, so we leave it alone.
func (c *CPU) opDAA() {
	a := c.A
	if c.getFlag(FlagH) || a&0x0F >= 0x0A {
		if a >= 0xFA {
			c.setFlag(FlagC, true)
		}
		a += 0x06
	}
	if c.getFlag(FlagC) || a&0xF0 >= 0xA0 {
		a += 0x60
		c.setFlag(FlagC, true)
	}
	c.flagsNZ8(a)
	c.A = a
}

func (c *CPU) opABA() {
	f := c.A + c.B
	c.addFlags8(c.A, c.B, f)
	c.A = f
}

// Branch condition codes, matching the opcode's low nibble ordering
// (0x20-0x2F).
func (c *CPU) condBRA() bool { return true }
func (c *CPU) condBRN() bool { return false }
func (c *CPU) condBHI() bool { return !(c.getFlag(FlagC) || c.getFlag(FlagZ)) }
func (c *CPU) condBLS() bool { return c.getFlag(FlagC) || c.getFlag(FlagZ) }
func (c *CPU) condBCC() bool { return !c.getFlag(FlagC) }
func (c *CPU) condBCS() bool { return c.getFlag(FlagC) }
func (c *CPU) condBNE() bool { return !c.getFlag(FlagZ) }
func (c *CPU) condBEQ() bool { return c.getFlag(FlagZ) }
func (c *CPU) condBVC() bool { return !c.getFlag(FlagV) }
func (c *CPU) condBVS() bool { return c.getFlag(FlagV) }
func (c *CPU) condBPL() bool { return !c.getFlag(FlagN) }
func (c *CPU) condBMI() bool { return c.getFlag(FlagN) }
func (c *CPU) condBGE() bool { return c.getFlag(FlagN) == c.getFlag(FlagV) }
func (c *CPU) condBLT() bool { return c.getFlag(FlagN) != c.getFlag(FlagV) }
func (c *CPU) condBGT() bool {
	return !c.getFlag(FlagZ) && c.getFlag(FlagN) == c.getFlag(FlagV)
}
func (c *CPU) condBLE() bool {
	return c.getFlag(FlagZ) || c.getFlag(FlagN) != c.getFlag(FlagV)
}

// branch computes the relative target unconditionally (so it's always
// traced) and jumps only when take is true.
func (c *CPU) branch(take bool) {
	target := c.resolveAddress(amRelative)
	if take {
		c.PC = target
	}
}

func (c *CPU) opTSX()  { c.X = c.SP + 1 }
func (c *CPU) opINS()  { c.SP++ }
func (c *CPU) opPULA() { c.A = c.pull8() }
func (c *CPU) opPULB() { c.B = c.pull8() }
func (c *CPU) opDES()  { c.SP-- }
func (c *CPU) opTXS()  { c.SP = c.X - 1 }
func (c *CPU) opPSHA() { c.push8(c.A) }
func (c *CPU) opPSHB() { c.push8(c.B) }
func (c *CPU) opPULX() { c.X = c.pull16() }
func (c *CPU) opRTS()  { c.PC = c.pull16() }
func (c *CPU) opABX()  { c.X += uint16(c.B) }
func (c *CPU) opPSHX() { c.push16(c.X) }

// opMUL multiplies A by B as unsigned 8-bit operands into the 16-bit
// product D=A:B and sets C from bit 7 of the low byte, i.e. the new B.
func (c *CPU) opMUL() {
	product := uint16(c.A) * uint16(c.B)
	c.setD(product)
	c.setFlag(FlagC, c.B&0x80 != 0)
}

// opWAI stacks the full machine context immediately (so an interrupt can
// be serviced with the stack already loaded) and parks the CPU in
// StateWait; Step's StateWait branch resumes it.
func (c *CPU) opWAI() {
	c.pushContext()
	c.state = StateWait
}

// opSLP parks the CPU in StateSleep until any interrupt is asserted.
func (c *CPU) opSLP() {
	c.state = StateSleep
}

// opSWI pushes full context and vectors through SWI. Real Workslate
// firmware never issues SWI deliberately, so this is logged as a
// diagnostic warning rather than treated as fatal.
func (c *CPU) opSWI() {
	at := c.PC - 1
	c.pushContext()
	c.setFlag(FlagI, true)
	c.PC = c.readVector(vecSWI)
	c.swiWarned = true
	log.Printf("workslate: SWI at %#04x (firmware never issues this deliberately)", at)
}

// opRTI restores the full machine context from the stack. If it leaves
// the interrupt mask set, that's logged as a diagnostic warning: normal
// interrupt handlers are expected to return with interrupts enabled.
func (c *CPU) opRTI() {
	at := c.PC - 1
	c.pullContext()
	if c.getFlag(FlagI) {
		c.swiWarned = true
		log.Printf("workslate: RTI at %#04x returned with I set (interrupts left masked)", at)
	}
}
