package workslate

// opCPX compares X against a 16-bit operand. On the 6800 this famously
// only derives N/V from the high-byte subtraction and never touches C;
// the 6801 path does a full 16-bit compare. Both compute Z from the full
// 16-bit difference.
func (c *CPU) opCPX(mode AddrMode) {
	w := c.fetchOperand16(mode)
	fw := c.X - w
	c.setFlag(FlagZ, fw == 0)

	if c.cpuType == CPU6800 {
		hiA := byte(c.X >> 8)
		hiB := byte(w >> 8)
		hiF := hiA - hiB
		c.setFlag(FlagN, hiF&0x80 != 0)
		overflow := (((hiA ^ hiB) & (hiF ^ hiA)) >> 7) & 1
		c.setFlag(FlagV, overflow != 0)
		return
	}
	c.subFlags16(c.X, w, fw)
}

// opBSR branches to subroutine relative to the following instruction,
// pushing the return address.
func (c *CPU) opBSR() {
	target := c.resolveAddress(amRelative)
	c.push16(c.PC)
	c.PC = target
}

// opJSR is shared by the indexed/extended forms (and, on the 6801, the
// direct form at 0x9D).
func (c *CPU) opJSR(mode AddrMode) {
	target := c.resolveAddress(mode)
	c.push16(c.PC)
	c.PC = target
}

func (c *CPU) opLDS(mode AddrMode) {
	v := c.fetchOperand16(mode)
	c.SP = v
	c.flagsNZ16(v)
	c.setFlag(FlagV, false)
}

// opSTS is a store, so it can't delegate to resolveAddress for immediate
// mode (there is no address to compute for a load-style immediate
// operand). On real hardware STS immediate writes through the two operand
// bytes themselves, in the instruction stream right after the opcode
// (_examples/original_source/src/sim6800.c's IMM2() ea, reused by mwrite2)
// — self-modifying, and inert here since ROM writes are ignored.
func (c *CPU) opSTS(mode AddrMode) {
	var ea uint16
	if mode == amImmediate16 {
		ea = c.PC
		c.PC += 2
		c.curLen += 2
		c.traceEA = ea
		c.traceHasEA = true
	} else {
		ea = c.resolveAddress(mode)
	}
	c.bus.Write(ea, byte(c.SP>>8))
	c.bus.Write(ea+1, byte(c.SP))
	c.flagsNZ16(c.SP)
	c.setFlag(FlagV, false)
	c.traceData = c.SP
	c.traceDataWidth = 2
}

func (c *CPU) opLDX(mode AddrMode) {
	v := c.fetchOperand16(mode)
	c.X = v
	c.flagsNZ16(v)
	c.setFlag(FlagV, false)
}

func (c *CPU) opSTX(mode AddrMode) {
	ea := c.resolveAddress(mode)
	c.bus.Write(ea, byte(c.X>>8))
	c.bus.Write(ea+1, byte(c.X))
	c.flagsNZ16(c.X)
	c.setFlag(FlagV, false)
	c.traceData = c.X
	c.traceDataWidth = 2
}

// opLDD/opSTD/opADDD/opSUBD are 6801-only; gated by the decode table's
// is6801 flag, not by a cpuType check here.

func (c *CPU) opLDD(mode AddrMode) {
	v := c.fetchOperand16(mode)
	c.setD(v)
	c.flagsNZ16(v)
	c.setFlag(FlagV, false)
}

func (c *CPU) opSTD(mode AddrMode) {
	ea := c.resolveAddress(mode)
	d := c.D()
	c.bus.Write(ea, byte(d>>8))
	c.bus.Write(ea+1, byte(d))
	c.flagsNZ16(d)
	c.setFlag(FlagV, false)
	c.traceData = d
	c.traceDataWidth = 2
}

func (c *CPU) opADDD(mode AddrMode) {
	w := c.fetchOperand16(mode)
	d := c.D()
	f := d + w
	c.addFlags16(d, w, f)
	c.setD(f)
}

func (c *CPU) opSUBD(mode AddrMode) {
	w := c.fetchOperand16(mode)
	d := c.D()
	f := d - w
	c.subFlags16(d, w, f)
	c.setD(f)
}
