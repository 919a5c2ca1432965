// Package asm implements the single-pass 6800/6801 assembler: one source
// line in, the new assembly cursor out, symbols resolved as they're defined
// and any still-pending reference recorded as a fixup against the output
// buffer (§4.9).
package asm

import (
	"fmt"
	"sort"
	"strings"
)

// CPUType selects which instruction table entries are visible.
type CPUType int

const (
	CPU6800 CPUType = iota
	CPU6801
)

// Assembler holds the output image, the cursor, and the symbol table across
// a sequence of Assemble calls.
type Assembler struct {
	mem     []byte
	symbols map[string]*Symbol
	cpu     CPUType
	addr    uint16

	// Lower, when true, folds label/symbol names to a single case before
	// lookup (the CLI's --lower flag); mnemonics are always matched
	// case-insensitively regardless.
	Lower bool
}

// NewAssembler returns an assembler with a full 64 KiB output image and an
// empty symbol table, cursor at 0.
func NewAssembler(cpu CPUType) *Assembler {
	return &Assembler{
		mem:     make([]byte, 0x10000),
		symbols: make(map[string]*Symbol),
		cpu:     cpu,
	}
}

// Addr returns the current assembly cursor.
func (a *Assembler) Addr() uint16 { return a.addr }

// SetAddr forces the cursor, equivalent to an ORG.
func (a *Assembler) SetAddr(addr uint16) { a.addr = addr }

// Mem exposes the assembled output image.
func (a *Assembler) Mem() []byte { return a.mem }

func (a *Assembler) foldName(name string) string {
	if a.Lower {
		return strings.ToLower(name)
	}
	return name
}

func (a *Assembler) findSymbol(name string) *Symbol {
	key := a.foldName(name)
	if sy, ok := a.symbols[key]; ok {
		return sy
	}
	sy := &Symbol{Name: name}
	a.symbols[key] = sy
	return sy
}

// Symbols returns a defensive, name-sorted snapshot of the symbol table
// (grounded on the source's show_syms), for post-assembly inspection.
func (a *Assembler) Symbols() []Symbol {
	out := make([]Symbol, 0, len(a.symbols))
	for _, sy := range a.symbols {
		out = append(out, Symbol{Name: sy.Name, Valid: sy.Valid, Value: sy.Value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (a *Assembler) addFixup(sy *Symbol, addr uint16, kind FixupKind, offset int) {
	sy.fixups = append(sy.fixups, Fixup{Addr: addr, Kind: kind, Offset: offset})
}

// setSymbol assigns val to sy and resolves every pending fixup against it.
// A symbol that is already valid is left unchanged, and an error describing
// the duplicate definition is returned (matching §7: printed, not fatal).
func (a *Assembler) setSymbol(sy *Symbol, val uint16) error {
	if sy == nil {
		return nil
	}
	if sy.Valid {
		return fmt.Errorf("symbol %q already defined as %04X", sy.Name, sy.Value)
	}
	sy.Valid = true
	sy.Value = val
	for _, fx := range sy.fixups {
		switch fx.Kind {
		case FixupExt16:
			v := uint16(int(val) + fx.Offset)
			a.mem[fx.Addr] = byte(v >> 8)
			a.mem[fx.Addr+1] = byte(v)
		case FixupDir8:
			a.mem[fx.Addr] = byte(int(val) + fx.Offset)
		case FixupRel8:
			a.mem[fx.Addr] = byte(int(val) + fx.Offset - int(fx.Addr) - 1)
		}
	}
	sy.fixups = nil
	return nil
}

// parseVal parses a decimal literal, '*' (current address), or a symbol
// reference with an optional +N/-N offset (§9 Open Question c: expression
// support stops there, intentionally). sym is non-nil only when the value
// is an unresolved symbol reference still awaiting a fixup.
func (a *Assembler) parseVal(sc *scanner, addr uint16) (operand int, sym *Symbol, ok bool) {
	if v, matched := sc.dec(); matched {
		return v, nil, true
	}
	w, matched := sc.word()
	if !matched {
		return 0, nil, false
	}
	if w == "*" {
		operand = int(addr)
	} else {
		sym = a.findSymbol(w)
		operand = int(sym.Value)
		if sym.Valid {
			sym = nil
		}
	}
	if c := sc.peek(); c == '+' || c == '-' {
		sc.i++
		if ofst, matched := sc.dec(); matched {
			if c == '+' {
				operand += ofst
			} else {
				operand -= ofst
			}
		}
	}
	return operand, sym, true
}

func lookup(mnemonic string, cpu CPUType) (tableEntry, bool) {
	lower := strings.ToLower(mnemonic)
	found, ok := tableEntry{}, false
	for _, e := range mnemonicTable {
		if e.mnemonic == lower && (!e.is6801 || cpu == CPU6801) {
			found, ok = e, true
		}
	}
	return found, ok
}

// accSuffix reports whether the byte at sc.i (if any) is a lone 'a'/'b'
// accumulator suffix token, matching the source's single-char-then-
// boundary check used by ACC/ACC1/RMW/ACCB operand syntax.
func accSuffix(sc *scanner) (isB bool, matched bool) {
	c := sc.peek()
	if (c != 'a' && c != 'A') && (c != 'b' && c != 'B') {
		return false, false
	}
	if !singleWordToken(sc.peekAt(1)) {
		return false, false
	}
	isB = c == 'b' || c == 'B'
	sc.i++
	return isB, true
}

// Assemble assembles one source line against the current cursor and symbol
// table, returning the new cursor. Parse errors are returned as values and
// do not move the cursor past what was already emitted for this line (§7:
// reported, not fatal, so callers should log and continue to the next
// line).
func (a *Assembler) Assemble(line string) (uint16, error) {
	if len(line) == 0 || line[0] == '*' {
		return a.addr, nil
	}

	sc := newScanner(line)
	labelAddr := a.addr
	var labelSym *Symbol

	if !singleWordToken(line[0]) {
		if w, ok := sc.word(); ok {
			labelSym = a.findSymbol(w)
		}
		sc.skipWS()
	} else {
		sc.skipWS()
	}

	mnemonic, ok := sc.word()
	if !ok {
		if labelSym != nil {
			return a.addr, a.setSymbol(labelSym, labelAddr)
		}
		return a.addr, fmt.Errorf("expected mnemonic")
	}

	entry, ok := lookup(mnemonic, a.cpu)
	if !ok {
		return a.addr, fmt.Errorf("unknown mnemonic %q", mnemonic)
	}
	opcode := entry.opcode
	typ := entry.typ

	sc.skipWS()

	finish := func() (uint16, error) {
		if labelSym != nil {
			return a.addr, a.setSymbol(labelSym, labelAddr)
		}
		return a.addr, nil
	}

	switch typ {
	case opIGN:
		return finish()
	case opNONE:
		a.emit8(opcode)
		return finish()
	case opRM:
		return a.assembleOperand(sc, opcode, typ, entry.storeOnl, finish)
	case opACC1:
		if isB, hasAcc := accSuffix(sc); hasAcc && isB {
			opcode += 0x40
		}
		sc.skipWS()
		return a.assembleOperand(sc, opcode, opRM, entry.storeOnl, finish)
	case opRMW:
		if isB, hasAcc := accSuffix(sc); hasAcc {
			if isB {
				a.emit8(opcode + 0x10)
			} else {
				a.emit8(opcode)
			}
			return finish()
		}
		return a.assembleOperand(sc, opcode, typ, entry.storeOnl, finish)
	case opIDX, opACCD:
		return a.assembleOperand(sc, opcode, typ, entry.storeOnl, finish)
	case opREL:
		return a.assembleOperand(sc, opcode, typ, false, finish)
	case opFCB:
		if err := a.assembleFCB(sc); err != nil {
			return a.addr, err
		}
		return finish()
	case opFDB:
		if err := a.assembleFDB(sc); err != nil {
			return a.addr, err
		}
		return finish()
	case opRMB:
		operand, sym, matched := a.parseVal(sc, a.addr)
		if !matched {
			return a.addr, fmt.Errorf("rmb requires a resolved count")
		}
		if sym != nil {
			return a.addr, fmt.Errorf("resolved symbol required for rmb")
		}
		a.addr += uint16(operand)
		return finish()
	case opEQU:
		operand, sym, matched := a.parseVal(sc, a.addr)
		if !matched {
			return a.addr, fmt.Errorf("equ requires an operand")
		}
		if sym != nil {
			return a.addr, fmt.Errorf("resolved symbol required for equ")
		}
		if labelSym == nil {
			return a.addr, fmt.Errorf("label required for equ")
		}
		return a.addr, a.setSymbol(labelSym, uint16(operand))
	case opORG:
		operand, sym, matched := a.parseVal(sc, a.addr)
		if !matched {
			return a.addr, fmt.Errorf("org requires an operand")
		}
		if sym != nil {
			return a.addr, fmt.Errorf("resolved symbol required for org")
		}
		a.addr = uint16(operand)
		labelAddr = a.addr
		return finish()
	}
	return a.addr, fmt.Errorf("unhandled operand type for %q", mnemonic)
}

func (a *Assembler) emit8(v byte) {
	a.mem[a.addr] = v
	a.addr++
}

// assembleOperand handles the shared RM/RMW/IDX/ACCD/REL operand grammar:
// '#' immediate, bare/zero indexed ("X" or "0,X"), "expr,X" indexed, a
// direct/extended address, or (REL only) a branch target.
func (a *Assembler) assembleOperand(sc *scanner, opcode byte, typ operandType, storeOnly bool, finish func() (uint16, error)) (uint16, error) {
	if sc.peek() == '#' && typ != opRMW && !storeOnly {
		sc.i++
		operand, sym, ok := a.parseVal(sc, a.addr)
		if !ok {
			return a.addr, fmt.Errorf("missing number or label after #")
		}
		switch typ {
		case opRM:
			a.emit8(opcode)
			if sym != nil {
				a.addFixup(sym, a.addr, FixupDir8, operand)
			}
			a.emit8(byte(operand))
		case opIDX, opACCD:
			a.emit8(opcode)
			if sym != nil {
				a.addFixup(sym, a.addr, FixupExt16, operand)
			}
			a.emit8(byte(operand >> 8))
			a.emit8(byte(operand))
		default:
			return a.addr, fmt.Errorf("invalid operand")
		}
		return finish()
	}

	// "stupid syntax" alias: a bare X/x means 0,X.
	if c := sc.peek(); (c == 'x' || c == 'X') && singleWordToken(sc.peekAt(1)) {
		sc.i++
		return a.emitIndexed(opcode, typ, 0, nil, finish)
	}

	operand, sym, ok := a.parseVal(sc, a.addr)
	if !ok {
		if typ == opNONE {
			a.emit8(opcode)
			return finish()
		}
		return a.addr, fmt.Errorf("operand required")
	}

	if sc.peek() == ',' && (sc.peekAt(1) == 'x' || sc.peekAt(1) == 'X') {
		sc.i += 2
		return a.emitIndexed(opcode, typ, operand, sym, finish)
	}

	if typ == opREL {
		a.emit8(opcode)
		if sym != nil {
			a.addFixup(sym, a.addr, FixupRel8, operand)
			a.emit8(0)
		} else {
			a.emit8(byte(operand - int(a.addr) - 1))
		}
		return finish()
	}

	allowsDirect := typ == opRM || typ == opIDX || typ == opACCD
	if allowsDirect && sym == nil && operand >= 0 && operand < 256 {
		a.emit8(opcode + 0x10)
		a.emit8(byte(operand))
		return finish()
	}

	a.emit8(opcode + 0x30)
	if sym != nil {
		a.addFixup(sym, a.addr, FixupExt16, operand)
	}
	a.emit8(byte(operand >> 8))
	a.emit8(byte(operand))
	return finish()
}

func (a *Assembler) emitIndexed(opcode byte, typ operandType, operand int, sym *Symbol, finish func() (uint16, error)) (uint16, error) {
	a.emit8(opcode + 0x20)
	if sym != nil {
		a.addFixup(sym, a.addr, FixupDir8, operand)
	}
	a.emit8(byte(operand))
	return finish()
}

func (a *Assembler) assembleFCB(sc *scanner) error {
	for {
		if c := sc.peek(); c == '"' || c == '/' {
			delim := c
			sc.i++
			for sc.peek() != 0 && sc.peek() != delim {
				a.emit8(sc.s[sc.i])
				sc.i++
			}
			if sc.peek() == delim {
				sc.i++
			}
		} else {
			operand, sym, ok := a.parseVal(sc, a.addr)
			if !ok {
				a.emit8(0)
			} else if sym != nil {
				a.addFixup(sym, a.addr, FixupDir8, operand)
				a.emit8(0)
			} else {
				a.emit8(byte(operand))
			}
		}
		sc.skipWS()
		if sc.peek() == ',' {
			sc.i++
			sc.skipWS()
			continue
		}
		return nil
	}
}

func (a *Assembler) assembleFDB(sc *scanner) error {
	operand, sym, ok := a.parseVal(sc, a.addr)
	if !ok {
		return fmt.Errorf("value missing")
	}
	for {
		if sym != nil {
			a.addFixup(sym, a.addr, FixupExt16, operand)
			a.emit8(0)
			a.emit8(0)
		} else {
			a.emit8(byte(operand >> 8))
			a.emit8(byte(operand))
		}
		sc.skipWS()
		if sc.peek() != ',' {
			return nil
		}
		sc.i++
		sc.skipWS()
		operand, sym, ok = a.parseVal(sc, a.addr)
		if !ok {
			operand, sym = 0, nil
		}
	}
}
