package workslate

// buildDecodeTable populates the 256-entry opcode table. Invalid/unassigned
// slots are left with invalid:true so Step faults on them. Opcodes marked
// is6801 are only valid when cpuType is CPU6801; on a 6800 they fault the
// same as a truly unassigned slot.
func (c *CPU) buildDecodeTable() {
	d := &c.decode

	reg := func(op byte, name string, mode AddrMode, fn func(c *CPU), is6801 bool) {
		d[op] = instruction{name: name, mode: mode, exec: fn, is6801: is6801}
	}

	// --- 8-bit ALU on A: IMM/DIR/IDX/EXT rows at 0x8x/0x9x/0xAx/0xBx ---
	aluRowA := []struct {
		name string
		op   byte
	}{
		{"SUBA", aluSUB}, {"CMPA", aluCMP}, {"SBCA", aluSBC},
		{"ANDA", aluAND}, {"BITA", aluBIT}, {"LDAA", aluLDA}, {"STAA", aluSTA},
		{"EORA", aluEOR}, {"ADCA", aluADC}, {"ORAA", aluORA}, {"ADDA", aluADD},
	}
	aluRowModes := []struct {
		base byte
		mode AddrMode
	}{
		{0x80, amImmediate8}, {0x90, amDirect}, {0xA0, amIndexed}, {0xB0, amExtended},
	}
	for _, row := range aluRowModes {
		for _, a := range aluRowA {
			op := a.op
			opcode := row.base | op
			// STAA has no immediate form.
			if row.mode == amImmediate8 && op == aluSTA {
				continue
			}
			mode, useB, aop := row.mode, false, op
			reg(opcode, a.name, mode, func(c *CPU) { c.execALU8(mode, useB, aop) }, false)
		}
	}

	// --- 8-bit ALU on B: 0xCx/0xDx/0xEx/0xFx ---
	aluRowB := []struct {
		name string
		op   byte
	}{
		{"SUBB", aluSUB}, {"CMPB", aluCMP}, {"SBCB", aluSBC},
		{"ANDB", aluAND}, {"BITB", aluBIT}, {"LDAB", aluLDA}, {"STAB", aluSTA},
		{"EORB", aluEOR}, {"ADCB", aluADC}, {"ORAB", aluORA}, {"ADDB", aluADD},
	}
	bRowModes := []struct {
		base byte
		mode AddrMode
	}{
		{0xC0, amImmediate8}, {0xD0, amDirect}, {0xE0, amIndexed}, {0xF0, amExtended},
	}
	for _, row := range bRowModes {
		for _, b := range aluRowB {
			op := b.op
			opcode := row.base | op
			if row.mode == amImmediate8 && op == aluSTA {
				continue
			}
			mode, bop := row.mode, op
			reg(opcode, b.name, mode, func(c *CPU) { c.execALU8(mode, true, bop) }, false)
		}
	}

	// --- 16-bit group, low nibbles 0xC-0xF, across all four rows ---
	sixteenModes := []struct {
		base byte
		mode AddrMode
	}{
		{0x80, amImmediate16}, {0x90, amDirect}, {0xA0, amIndexed}, {0xB0, amExtended},
	}
	for _, row := range sixteenModes {
		mode := row.mode
		reg(row.base|0x0C, "CPX", mode, func(c *CPU) { c.opCPX(mode) }, false)
		reg(row.base|0x0E, "LDS", mode, func(c *CPU) { c.opLDS(mode) }, false)
		reg(row.base|0x0F, "STS", mode, func(c *CPU) { c.opSTS(mode) }, false)
		reg(row.base|0x03, "SUBD", mode, func(c *CPU) { c.opSUBD(mode) }, true)
	}
	// A-row-only 16-bit slots: BSR (0x8D, replaces CPX's sibling slot),
	// JSR indexed/extended (0xAD/0xBD), LDX/STX.
	reg(0x8D, "BSR", amRelative, func(c *CPU) { c.opBSR() }, false)
	reg(0xAD, "JSR", amIndexed, func(c *CPU) { c.opJSR(amIndexed) }, false)
	reg(0xBD, "JSR", amExtended, func(c *CPU) { c.opJSR(amExtended) }, false)
	reg(0x9D, "JSR", amDirect, func(c *CPU) { c.opJSR(amDirect) }, true)
	ldxModes := []struct {
		base byte
		mode AddrMode
	}{
		{0xCE, amImmediate16}, {0xDE, amDirect}, {0xEE, amIndexed}, {0xFE, amExtended},
	}
	for _, row := range ldxModes {
		mode := row.mode
		reg(row.base, "LDX", mode, func(c *CPU) { c.opLDX(mode) }, false)
	}
	stxModes := []struct {
		base byte
		mode AddrMode
	}{
		{0xDF, amDirect}, {0xEF, amIndexed}, {0xFF, amExtended},
	}
	for _, row := range stxModes {
		mode := row.mode
		reg(row.base, "STX", mode, func(c *CPU) { c.opSTX(mode) }, false)
	}
	// 6801 D-accumulator loads/stores/arithmetic.
	reg(0xCC, "LDD", amImmediate16, func(c *CPU) { c.opLDD(amImmediate16) }, true)
	reg(0xDC, "LDD", amDirect, func(c *CPU) { c.opLDD(amDirect) }, true)
	reg(0xEC, "LDD", amIndexed, func(c *CPU) { c.opLDD(amIndexed) }, true)
	reg(0xFC, "LDD", amExtended, func(c *CPU) { c.opLDD(amExtended) }, true)
	reg(0xDD, "STD", amDirect, func(c *CPU) { c.opSTD(amDirect) }, true)
	reg(0xED, "STD", amIndexed, func(c *CPU) { c.opSTD(amIndexed) }, true)
	reg(0xFD, "STD", amExtended, func(c *CPU) { c.opSTD(amExtended) }, true)
	reg(0xC3, "ADDD", amImmediate16, func(c *CPU) { c.opADDD(amImmediate16) }, true)
	reg(0xD3, "ADDD", amDirect, func(c *CPU) { c.opADDD(amDirect) }, true)
	reg(0xE3, "ADDD", amIndexed, func(c *CPU) { c.opADDD(amIndexed) }, true)
	reg(0xF3, "ADDD", amExtended, func(c *CPU) { c.opADDD(amExtended) }, true)

	// --- Read-modify-write family: A (0x4x), B (0x5x), indexed (0x6x),
	// extended (0x7x) ---
	rmwOps := []struct {
		name string
		op   byte
	}{
		{"NEG", rmwNEG}, {"COM", rmwCOM}, {"LSR", rmwLSR}, {"ROR", rmwROR},
		{"ASR", rmwASR}, {"ASL", rmwASL}, {"ROL", rmwROL}, {"DEC", rmwDEC},
		{"INC", rmwINC}, {"TST", rmwTST}, {"CLR", rmwCLR},
	}
	for _, r := range rmwOps {
		op := r.op
		reg(0x40|op, r.name+"A", amInherent, func(c *CPU) { c.execRMW(c.rmwAccA(), op) }, false)
		reg(0x50|op, r.name+"B", amInherent, func(c *CPU) { c.execRMW(c.rmwAccB(), op) }, false)
		reg(0x60|op, r.name, amIndexed, func(c *CPU) { c.execRMW(c.rmwMem(amIndexed), op) }, false)
		reg(0x70|op, r.name, amExtended, func(c *CPU) { c.execRMW(c.rmwMem(amExtended), op) }, false)
	}
	reg(0x6E, "JMP", amIndexed, func(c *CPU) { c.opJMP(amIndexed) }, false)
	reg(0x7E, "JMP", amExtended, func(c *CPU) { c.opJMP(amExtended) }, false)

	// --- Inherent/misc (0x00-0x1F) ---
	reg(0x01, "NOP", amInherent, func(c *CPU) { c.opNOP() }, false)
	reg(0x04, "LSRD", amInherent, func(c *CPU) { c.opLSRD() }, true)
	reg(0x05, "ASLD", amInherent, func(c *CPU) { c.opASLD() }, true)
	reg(0x06, "TAP", amInherent, func(c *CPU) { c.opTAP() }, false)
	reg(0x07, "TPA", amInherent, func(c *CPU) { c.opTPA() }, false)
	reg(0x08, "INX", amInherent, func(c *CPU) { c.opINX() }, false)
	reg(0x09, "DEX", amInherent, func(c *CPU) { c.opDEX() }, false)
	reg(0x0A, "CLV", amInherent, func(c *CPU) { c.opCLV() }, false)
	reg(0x0B, "SEV", amInherent, func(c *CPU) { c.opSEV() }, false)
	reg(0x0C, "CLC", amInherent, func(c *CPU) { c.opCLC() }, false)
	reg(0x0D, "SEC", amInherent, func(c *CPU) { c.opSEC() }, false)
	reg(0x0E, "CLI", amInherent, func(c *CPU) { c.opCLI() }, false)
	reg(0x0F, "SEI", amInherent, func(c *CPU) { c.opSEI() }, false)
	reg(0x10, "SBA", amInherent, func(c *CPU) { c.opSBA() }, false)
	reg(0x11, "CBA", amInherent, func(c *CPU) { c.opCBA() }, false)
	reg(0x16, "TAB", amInherent, func(c *CPU) { c.opTAB() }, false)
	reg(0x17, "TBA", amInherent, func(c *CPU) { c.opTBA() }, false)
	reg(0x19, "DAA", amInherent, func(c *CPU) { c.opDAA() }, false)
	reg(0x1A, "SLP", amInherent, func(c *CPU) { c.opSLP() }, true)
	reg(0x1B, "ABA", amInherent, func(c *CPU) { c.opABA() }, false)

	// --- Branches (0x20-0x2F) ---
	branches := []struct {
		name string
		cond func(c *CPU) bool
	}{
		{"BRA", (*CPU).condBRA}, {"BRN", (*CPU).condBRN}, {"BHI", (*CPU).condBHI},
		{"BLS", (*CPU).condBLS}, {"BCC", (*CPU).condBCC}, {"BCS", (*CPU).condBCS},
		{"BNE", (*CPU).condBNE}, {"BEQ", (*CPU).condBEQ}, {"BVC", (*CPU).condBVC},
		{"BVS", (*CPU).condBVS}, {"BPL", (*CPU).condBPL}, {"BMI", (*CPU).condBMI},
		{"BGE", (*CPU).condBGE}, {"BLT", (*CPU).condBLT}, {"BGT", (*CPU).condBGT},
		{"BLE", (*CPU).condBLE},
	}
	for i, br := range branches {
		opcode := byte(0x20 + i)
		cond := br.cond
		is6801 := opcode == 0x21 // BRN
		reg(opcode, br.name, amRelative, func(c *CPU) { c.branch(cond(c)) }, is6801)
	}

	// --- Stack/inherent (0x30-0x3F) ---
	reg(0x30, "TSX", amInherent, func(c *CPU) { c.opTSX() }, false)
	reg(0x31, "INS", amInherent, func(c *CPU) { c.opINS() }, false)
	reg(0x32, "PULA", amInherent, func(c *CPU) { c.opPULA() }, false)
	reg(0x33, "PULB", amInherent, func(c *CPU) { c.opPULB() }, false)
	reg(0x34, "DES", amInherent, func(c *CPU) { c.opDES() }, false)
	reg(0x35, "TXS", amInherent, func(c *CPU) { c.opTXS() }, false)
	reg(0x36, "PSHA", amInherent, func(c *CPU) { c.opPSHA() }, false)
	reg(0x37, "PSHB", amInherent, func(c *CPU) { c.opPSHB() }, false)
	reg(0x38, "PULX", amInherent, func(c *CPU) { c.opPULX() }, true)
	reg(0x39, "RTS", amInherent, func(c *CPU) { c.opRTS() }, false)
	reg(0x3A, "ABX", amInherent, func(c *CPU) { c.opABX() }, true)
	reg(0x3B, "RTI", amInherent, func(c *CPU) { c.opRTI() }, false)
	reg(0x3C, "PSHX", amInherent, func(c *CPU) { c.opPSHX() }, true)
	reg(0x3D, "MUL", amInherent, func(c *CPU) { c.opMUL() }, true)
	reg(0x3E, "WAI", amInherent, func(c *CPU) { c.opWAI() }, false)
	reg(0x3F, "SWI", amInherent, func(c *CPU) { c.opSWI() }, false)

	// Anything still zero-valued is an unassigned opcode slot.
	for i := range d {
		if d[i].exec == nil {
			d[i] = instruction{invalid: true}
		}
	}
}
