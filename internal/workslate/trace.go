package workslate

import (
	"fmt"

	"github.com/maushammer/workslate-sim/internal/factsfile"
)

const traceDepth = 128 // power of two, for cheap ring indexing

// TraceEntry is a snapshot of machine state around one executed
// instruction, enough to render a post-mortem disassembly line (§4.10).
type TraceEntry struct {
	valid bool

	pc   uint16 // address of the opcode byte
	bank int
	sp   uint16
	x    uint16
	a, b byte
	cc   byte

	insn [3]byte
	len  int

	hasEA bool
	ea    uint16

	dataWidth int // 0 none, 1 byte, 2 word
	data      uint16

	mnemonic string

	subroutineCall bool // BSR/JSR, marked with '>' by FormatLine
}

// Trace is a fixed-size ring buffer of the most recently executed
// instructions, used for post-mortem diagnostics after a fault or
// breakpoint.
type Trace struct {
	entries [traceDepth]TraceEntry
	next    int
	filled  bool
}

func NewTrace() *Trace {
	return &Trace{}
}

// begin snapshots pre-execution state and reserves the next ring slot.
// The instruction's exec function may still mutate c (including
// c.traceEA/traceData via resolveAddress/fetchOperand8/16); commit folds
// those in afterward.
func (t *Trace) begin(c *CPU) *TraceEntry {
	e := &t.entries[t.next]
	*e = TraceEntry{
		valid: true,
		pc:    c.PC - 1,
		bank:  c.bus.currentBank(),
		sp:    c.SP,
		x:     c.X,
		a:     c.A,
		b:     c.B,
		cc:    c.cc,
	}
	return e
}

// commit folds in the post-execution addressing/operand scratch that
// begin couldn't know yet, snapshots the raw instruction bytes, and
// advances the ring.
func (t *Trace) commit(e *TraceEntry, c *CPU, mnemonic string) {
	e.mnemonic = mnemonic
	e.hasEA = c.traceHasEA
	e.ea = c.traceEA
	e.dataWidth = c.traceDataWidth
	e.data = c.traceData

	n := c.curLen
	if n > len(e.insn) {
		n = len(e.insn)
	}
	e.len = c.curLen
	for i := 0; i < n; i++ {
		e.insn[i] = c.bus.ReadRaw(e.pc + uint16(i))
	}

	switch mnemonic {
	case "BSR", "JSR":
		e.subroutineCall = true
	}

	t.next = (t.next + 1) % traceDepth
	if t.next == 0 {
		t.filled = true
	}
}

// Entries returns the recorded entries in chronological order, oldest
// first. The slice is a copy; callers may retain it freely.
func (t *Trace) Entries() []TraceEntry {
	var out []TraceEntry
	if t.filled {
		for i := 0; i < traceDepth; i++ {
			idx := (t.next + i) % traceDepth
			if t.entries[idx].valid {
				out = append(out, t.entries[idx])
			}
		}
		return out
	}
	for i := 0; i < t.next; i++ {
		if t.entries[i].valid {
			out = append(out, t.entries[i])
		}
	}
	return out
}

func flagLetter(cc byte, bit Flag, ch string) string {
	if cc&byte(bit) != 0 {
		return ch
	}
	return "-"
}

// FormatLine renders one trace entry in the column layout used by the
// diagnostic dump: a sequence marker, registers, flags, the fetched
// bytes, the mnemonic, and (when the instruction addressed memory) the
// effective address and the data moved. A ROM image run via the "run"
// subcommand carries no assembler symbol table of its own, so facts is
// consulted for every instruction address and effective address that has
// an entry, per §6's "consults the facts file when an instruction address
// has no user-defined symbol" — facts may be nil.
func FormatLine(seq int, e TraceEntry, facts factsfile.Table) string {
	marker := " "
	if e.subroutineCall {
		marker = ">"
	}

	flags := flagLetter(e.cc, FlagH, "H") +
		flagLetter(e.cc, FlagI, "I") +
		flagLetter(e.cc, FlagN, "N") +
		flagLetter(e.cc, FlagZ, "Z") +
		flagLetter(e.cc, FlagV, "V") +
		flagLetter(e.cc, FlagC, "C")

	bytesStr := ""
	for i := 0; i < e.len && i < len(e.insn); i++ {
		bytesStr += fmt.Sprintf("%02X ", e.insn[i])
	}

	line := fmt.Sprintf("%s%010d BANK=%d PC=%04X A=%02X B=%02X X=%04X SP=%04X %s  %-9s%-6s",
		marker, seq, e.bank, e.pc, e.a, e.b, e.x, e.sp, flags, bytesStr, e.mnemonic)

	if fact, ok := facts.Lookup(e.pc); ok && fact.Label != "" {
		line += fmt.Sprintf(" ; %s", fact.Label)
	}

	if e.hasEA {
		line += fmt.Sprintf(" EA=%04X", e.ea)
		if fact, ok := facts.Lookup(e.ea); ok && fact.Label != "" {
			line += fmt.Sprintf(" (%s)", fact.Label)
		}
	}
	switch e.dataWidth {
	case 1:
		line += fmt.Sprintf(" D=%02X", byte(e.data))
	case 2:
		line += fmt.Sprintf(" D=%04X", e.data)
	}
	return line
}
