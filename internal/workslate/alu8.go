package workslate

// 8-bit accumulator ALU operations, keyed by the low nibble shared across
// the immediate/direct/indexed/extended opcode rows (0x8x-0xBx for A,
// 0xCx-0xFx for B).
const (
	aluSUB = 0x00
	aluCMP = 0x01
	aluSBC = 0x02
	aluAND = 0x04
	aluBIT = 0x05
	aluLDA = 0x06
	aluSTA = 0x07
	aluEOR = 0x08
	aluADC = 0x09
	aluORA = 0x0A
	aluADD = 0x0B
)

func (c *CPU) carryBit() byte {
	if c.getFlag(FlagC) {
		return 1
	}
	return 0
}

// execALU8 performs one 8-bit accumulator operation against a memory or
// immediate operand addressed by mode, on A (useB=false) or B (useB=true).
func (c *CPU) execALU8(mode AddrMode, useB bool, op byte) {
	a := c.A
	if useB {
		a = c.B
	}

	if op == aluSTA {
		ea := c.resolveAddress(mode)
		c.logicFlags8(a)
		c.bus.Write(ea, a)
		c.traceData = uint16(a)
		c.traceDataWidth = 1
		return
	}

	b := c.fetchOperand8(mode)

	var f byte
	store := false
	switch op {
	case aluSUB:
		f = a - b
		c.subFlags8(a, b, f)
		store = true
	case aluCMP:
		f = a - b
		c.subFlags8(a, b, f)
	case aluSBC:
		f = a - b - c.carryBit()
		c.subFlags8(a, b, f)
		store = true
	case aluAND:
		f = a & b
		c.logicFlags8(f)
		store = true
	case aluBIT:
		f = a & b
		c.logicFlags8(f)
	case aluLDA:
		f = b
		c.logicFlags8(f)
		store = true
	case aluEOR:
		f = a ^ b
		c.logicFlags8(f)
		store = true
	case aluADC:
		f = a + b + c.carryBit()
		c.addFlags8(a, b, f)
		store = true
	case aluORA:
		f = a | b
		c.logicFlags8(f)
		store = true
	case aluADD:
		f = a + b
		c.addFlags8(a, b, f)
		store = true
	}

	if store {
		if useB {
			c.B = f
		} else {
			c.A = f
		}
	}
}
