package asm

import "testing"

func assembleLines(t *testing.T, a *Assembler, lines []string) {
	t.Helper()
	for _, l := range lines {
		if _, err := a.Assemble(l); err != nil {
			t.Fatalf("line %q: %v", l, err)
		}
	}
}

func TestForwardReferenceFixup(t *testing.T) {
	a := NewAssembler(CPU6801)
	a.SetAddr(0x1000)

	// DATA is unresolved at the point LDA DATA is parsed, so it can't take
	// the direct form no matter how small its eventual value turns out to
	// be: assembleOperand only allows direct when the symbol is already
	// resolved (sym == nil) and under 256. An unresolved forward reference
	// always goes extended, with a 2-byte EXT16 fixup applied once DATA is
	// defined.
	assembleLines(t, a, []string{
		"        LDA  DATA",
		"DATA    FCB  42",
	})

	mem := a.Mem()
	if mem[0x1000] != 0xB6 {
		t.Fatalf("LDA extended opcode = %02X, want B6", mem[0x1000])
	}
	if mem[0x1001] != 0x10 || mem[0x1002] != 0x03 {
		t.Fatalf("LDA operand = %02X%02X, want 1003", mem[0x1001], mem[0x1002])
	}

	sym := a.findSymbol("DATA")
	if !sym.Valid || sym.Value != 0x1003 {
		t.Fatalf("DATA = %v valid=%v, want 1003/true", sym.Value, sym.Valid)
	}
}

func TestExt16FixupOnForwardImmediate(t *testing.T) {
	a := NewAssembler(CPU6801)
	a.SetAddr(0x2000)
	assembleLines(t, a, []string{
		"        LDX  #TARGET",
		"TARGET  NOP",
	})
	mem := a.Mem()
	if mem[0x2000] != 0xCE {
		t.Fatalf("LDX immediate opcode = %02X, want CE", mem[0x2000])
	}
	got := uint16(mem[0x2001])<<8 | uint16(mem[0x2002])
	if got != 0x2003 {
		t.Fatalf("LDX #TARGET resolved to %04X, want 2003", got)
	}
}

func TestDir8FixupOnIndexedOffset(t *testing.T) {
	a := NewAssembler(CPU6801)
	a.SetAddr(0x3000)
	assembleLines(t, a, []string{
		"OFS     EQU  4",
		"        LDAA OFS,X",
	})
	mem := a.Mem()
	if mem[0x3000] != 0xA6 {
		t.Fatalf("LDAA indexed opcode = %02X, want A6", mem[0x3000])
	}
	if mem[0x3001] != 4 {
		t.Fatalf("LDAA ,X offset = %d, want 4", mem[0x3001])
	}
}

func TestRel8FixupOnBackwardBranch(t *testing.T) {
	a := NewAssembler(CPU6801)
	a.SetAddr(0x4000)
	assembleLines(t, a, []string{
		"LOOP    DEC  COUNT",
		"        BNE  LOOP",
		"COUNT   FCB  0",
	})
	mem := a.Mem()
	// BNE is at 0x4003, opcode+offset at 0x4004; LOOP=0x4000.
	// offset = LOOP - (0x4004+1) = 0x4000-0x4005 = -5 = 0xFB.
	if mem[0x4003] != 0x26 {
		t.Fatalf("BNE opcode = %02X, want 26", mem[0x4003])
	}
	if mem[0x4004] != 0xFB {
		t.Fatalf("BNE offset = %02X, want FB", mem[0x4004])
	}
}

func TestRMWHasNoDirectAddressingForm(t *testing.T) {
	a := NewAssembler(CPU6801)
	a.SetAddr(0x5000)
	assembleLines(t, a, []string{
		"DATA    EQU  10",
		"        NEG  DATA",
	})
	mem := a.Mem()
	// NEG direct does not exist: a small resolved value must still fall
	// through to the extended (3-byte) encoding, opcode 0x40+0x30=0x70.
	if mem[0x5000] != 0x70 {
		t.Fatalf("NEG opcode = %02X, want 70 (extended, no direct form)", mem[0x5000])
	}
	got := uint16(mem[0x5001])<<8 | uint16(mem[0x5002])
	if got != 10 {
		t.Fatalf("NEG operand = %04X, want 000A", got)
	}
}

func TestBareAccumulatorSuffixDefaultsToA(t *testing.T) {
	a := NewAssembler(CPU6801)
	a.SetAddr(0x6000)
	if _, err := a.Assemble("        LDA  #5"); err != nil {
		t.Fatal(err)
	}
	mem := a.Mem()
	if mem[0x6000] != 0x86 || mem[0x6001] != 5 {
		t.Fatalf("LDA #5 = %02X %02X, want 86 05", mem[0x6000], mem[0x6001])
	}
}

func TestAccumulatorBSuffix(t *testing.T) {
	a := NewAssembler(CPU6801)
	a.SetAddr(0x6100)
	assembleLines(t, a, []string{
		"        LDAB #9",
		"DATA    FCB  0",
	})
	mem := a.Mem()
	if mem[0x6100] != 0xC6 || mem[0x6101] != 9 {
		t.Fatalf("LDAB #9 = %02X %02X, want C6 09", mem[0x6100], mem[0x6101])
	}
}

func TestDuplicateSymbolIsNonFatal(t *testing.T) {
	a := NewAssembler(CPU6801)
	a.SetAddr(0x7000)
	if _, err := a.Assemble("X       EQU  1"); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Assemble("X       EQU  2"); err == nil {
		t.Fatal("expected duplicate-symbol error")
	}
	sym := a.findSymbol("X")
	if sym.Value != 1 {
		t.Fatalf("duplicate redefinition overwrote original value: got %d, want 1", sym.Value)
	}
}

func TestBare6800RejectsPSHX(t *testing.T) {
	a := NewAssembler(CPU6800)
	if _, err := a.Assemble("        PSHX"); err == nil {
		t.Fatal("PSHX is 6801-only, expected unknown-mnemonic error on CPU6800")
	}
}
