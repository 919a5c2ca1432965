package workslate

// Read-modify-write operations, keyed by the low nibble shared across
// the A/B/indexed/extended opcode rows (0x40-0x7F). JMP (0x0E) is
// address-only and has its own entry point, opJMP.
const (
	rmwNEG = 0x00
	rmwCOM = 0x03
	rmwLSR = 0x04
	rmwROR = 0x06
	rmwASR = 0x07
	rmwASL = 0x08
	rmwROL = 0x09
	rmwDEC = 0x0A
	rmwINC = 0x0C
	rmwTST = 0x0D
	rmwCLR = 0x0F
)

// rmwTarget abstracts over "the A register", "the B register", or "the
// byte at an effective address" so execRMW can share one flag/op
// implementation across all four addressing forms.
type rmwTarget struct {
	get func() byte
	set func(byte)
}

func (c *CPU) rmwAccA() rmwTarget {
	return rmwTarget{
		get: func() byte { return c.A },
		set: func(v byte) { c.A = v },
	}
}

func (c *CPU) rmwAccB() rmwTarget {
	return rmwTarget{
		get: func() byte { return c.B },
		set: func(v byte) { c.B = v },
	}
}

func (c *CPU) rmwMem(mode AddrMode) rmwTarget {
	ea := c.resolveAddress(mode)
	return rmwTarget{
		get: func() byte { return c.bus.Read(ea) },
		set: func(v byte) { c.bus.Write(ea, v) },
	}
}

func (c *CPU) execRMW(t rmwTarget, op byte) {
	b := t.get()
	c.traceData = uint16(b)
	c.traceDataWidth = 1

	var f byte
	write := true
	switch op {
	case rmwNEG:
		f = -b
		overflow := (b & f) >> 7 & 1
		c.flagsNZ8(f)
		c.setFlag(FlagV, overflow != 0)
		c.setFlag(FlagC, f == 0)
	case rmwCOM:
		f = ^b
		c.setFlag(FlagC, true)
		c.flagsNZ8(f)
		c.setFlag(FlagV, false)
	case rmwLSR:
		carry := b & 1
		f = b >> 1
		c.setFlag(FlagN, false)
		c.setFlag(FlagZ, f == 0)
		c.setFlag(FlagC, carry != 0)
		c.setFlag(FlagV, carry != 0)
	case rmwROR:
		carry := b & 1
		f = (b >> 1) | (c.carryBit() << 7)
		c.setFlag(FlagC, carry != 0)
		c.flagsNZ8(f)
		c.setFlag(FlagV, c.getFlag(FlagN) != (carry != 0))
	case rmwASR:
		carry := b & 1
		f = (b >> 1) | (b & 0x80)
		c.setFlag(FlagC, carry != 0)
		c.flagsNZ8(f)
		c.setFlag(FlagV, c.getFlag(FlagN) != (carry != 0))
	case rmwASL:
		carry := b >> 7
		f = b << 1
		c.setFlag(FlagC, carry != 0)
		c.flagsNZ8(f)
		c.setFlag(FlagV, c.getFlag(FlagN) != (carry != 0))
	case rmwROL:
		carry := b >> 7
		f = (b << 1) | c.carryBit()
		c.setFlag(FlagC, carry != 0)
		c.flagsNZ8(f)
		c.setFlag(FlagV, c.getFlag(FlagN) != (carry != 0))
	case rmwDEC:
		f = b - 1
		overflow := (^f & b) >> 7 & 1
		c.flagsNZ8(f)
		c.setFlag(FlagV, overflow != 0)
	case rmwINC:
		f = b + 1
		overflow := (f &^ b) >> 7 & 1
		c.flagsNZ8(f)
		c.setFlag(FlagV, overflow != 0)
	case rmwTST:
		f = b
		c.flagsNZ8(f)
		c.setFlag(FlagV, false)
		c.setFlag(FlagC, false)
		write = false
	case rmwCLR:
		f = 0
		c.setFlag(FlagN, false)
		c.setFlag(FlagZ, true)
		c.setFlag(FlagV, false)
		c.setFlag(FlagC, false)
	}

	if write {
		t.set(f)
	}
}

// opJMP is address-only: it never reads the target byte.
func (c *CPU) opJMP(mode AddrMode) {
	ea := c.resolveAddress(mode)
	c.PC = ea
}
