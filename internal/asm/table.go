package asm

// operandType tags how an instruction's operand field is parsed and how its
// addressing-mode opcode offset is derived, mirroring the source's type
// taxonomy (RM/RMW/REL/IDX/ACCD plus the pseudo-op kinds).
type operandType int

const (
	opRM    operandType = iota // explicit accX + #imm8/dir8/idx/ext, no suffix parsing
	opACC1                     // optional accumulator suffix (default A) + #imm8/dir8/idx/ext
	opRMW                      // inherent-A/B or idx/ext, no immediate
	opREL                      // relative branch
	opIDX                      // 16-bit #imm16/dir8/idx/ext (CPX/LDS/STS/LDX/STX)
	opACCD                     // 16-bit D-accumulator family, 6801-only
	opNONE                     // inherent, no operand
	opFCB                      // FCB/FCC
	opFDB                      // FDB
	opEQU
	opRMB
	opORG
	opIGN // END/MON/OPT/NAM/TTL/SPC/PAGE
)

const storeOnly = 1 << 6 // instruction never accepts '#' immediate syntax

type tableEntry struct {
	mnemonic string
	opcode   byte
	typ      operandType
	storeOnl bool
	is6801   bool // requires CPU6801 to match
}

// mnemonicTable is the one-line assembler's instruction table, grounded on
// the real assembler's own table[] (mnemonic, base opcode, operand type,
// minimum CPU). Entries are matched case-insensitively and in order, the
// last matching (mnemonic, cpu<=cputype) entry wins — which is why the 6801
// jsr entry (with its direct form) must come after its 6800 counterpart.
var mnemonicTable = []tableEntry{
	{"lda", 0x86, opACC1, false, false},
	{"sta", 0x87, opACC1, true, false},
	{"ora", 0x8a, opACC1, false, false},

	{"suba", 0x80, opRM, false, false},
	{"cmpa", 0x81, opRM, false, false},
	{"sbca", 0x82, opRM, false, false},
	{"anda", 0x84, opRM, false, false},
	{"bita", 0x85, opRM, false, false},
	{"ldaa", 0x86, opRM, false, false},
	{"staa", 0x87, opRM, true, false},
	{"eora", 0x88, opRM, false, false},
	{"adca", 0x89, opRM, false, false},
	{"oraa", 0x8a, opRM, false, false},
	{"adda", 0x8b, opRM, false, false},

	{"subb", 0xc0, opRM, false, false},
	{"cmpb", 0xc1, opRM, false, false},
	{"sbcb", 0xc2, opRM, false, false},
	{"andb", 0xc4, opRM, false, false},
	{"bitb", 0xc5, opRM, false, false},
	{"ldb", 0xc6, opRM, false, false},
	{"stb", 0xc7, opRM, true, false},
	{"ldab", 0xc6, opRM, false, false},
	{"stab", 0xc7, opRM, true, false},
	{"eorb", 0xc8, opRM, false, false},
	{"adcb", 0xc9, opRM, false, false},
	{"orb", 0xca, opRM, false, false},
	{"orab", 0xca, opRM, false, false},
	{"addb", 0xcb, opRM, false, false},

	{"subd", 0x83, opACCD, false, true},
	{"addd", 0xc3, opACCD, false, true},
	{"ldd", 0xcc, opACCD, false, true},
	{"std", 0xcd, opACCD, true, true},

	{"cpx", 0x8c, opIDX, false, false},
	{"bsr", 0x8d, opREL, false, false},
	{"lds", 0x8e, opIDX, false, false},
	{"sts", 0x8f, opIDX, true, false},
	{"jsr", 0x8d, opRMW, false, false},
	{"jsr", 0x8d, opIDX, true, true}, // must come after the 6800 entry
	{"ldx", 0xce, opIDX, false, false},
	{"stx", 0xcf, opIDX, true, false},

	{"neg", 0x40, opRMW, false, false},
	{"com", 0x43, opRMW, false, false},
	{"lsr", 0x44, opRMW, false, false},
	{"ror", 0x46, opRMW, false, false},
	{"asr", 0x47, opRMW, false, false},
	{"asl", 0x48, opRMW, false, false},
	{"lsl", 0x48, opRMW, false, false},
	{"rol", 0x49, opRMW, false, false},
	{"dec", 0x4a, opRMW, false, false},
	{"inc", 0x4c, opRMW, false, false},
	{"tst", 0x4d, opRMW, false, false},
	{"jmp", 0x4e, opRMW, false, false},
	{"clr", 0x4f, opRMW, false, false},

	{"nega", 0x40, opNONE, false, false},
	{"coma", 0x43, opNONE, false, false},
	{"lsra", 0x44, opNONE, false, false},
	{"rora", 0x46, opNONE, false, false},
	{"asra", 0x47, opNONE, false, false},
	{"asla", 0x48, opNONE, false, false},
	{"lsla", 0x48, opNONE, false, false},
	{"rola", 0x49, opNONE, false, false},
	{"deca", 0x4a, opNONE, false, false},
	{"inca", 0x4c, opNONE, false, false},
	{"tsta", 0x4d, opNONE, false, false},
	{"clra", 0x4f, opNONE, false, false},

	{"negb", 0x50, opNONE, false, false},
	{"comb", 0x53, opNONE, false, false},
	{"lsrb", 0x54, opNONE, false, false},
	{"rorb", 0x56, opNONE, false, false},
	{"asrb", 0x57, opNONE, false, false},
	{"aslb", 0x58, opNONE, false, false},
	{"lslb", 0x58, opNONE, false, false},
	{"rolb", 0x59, opNONE, false, false},
	{"decb", 0x5a, opNONE, false, false},
	{"incb", 0x5c, opNONE, false, false},
	{"tstb", 0x5d, opNONE, false, false},
	{"clrb", 0x5f, opNONE, false, false},

	{"nop", 0x01, opNONE, false, false},
	{"lsrd", 0x04, opNONE, false, true},
	{"asld", 0x05, opNONE, false, true},
	{"lsld", 0x05, opNONE, false, true},
	{"tap", 0x06, opNONE, false, false},
	{"tpa", 0x07, opNONE, false, false},
	{"inx", 0x08, opNONE, false, false},
	{"dex", 0x09, opNONE, false, false},
	{"clv", 0x0a, opNONE, false, false},
	{"sev", 0x0b, opNONE, false, false},
	{"clc", 0x0c, opNONE, false, false},
	{"sec", 0x0d, opNONE, false, false},
	{"cli", 0x0e, opNONE, false, false},
	{"sei", 0x0f, opNONE, false, false},
	{"sba", 0x10, opNONE, false, false},
	{"cba", 0x11, opNONE, false, false},
	{"tab", 0x16, opNONE, false, false},
	{"tba", 0x17, opNONE, false, false},
	{"daa", 0x19, opNONE, false, false},
	{"slp", 0x1a, opNONE, false, true},
	{"aba", 0x1b, opNONE, false, false},

	{"bra", 0x20, opREL, false, false},
	{"brn", 0x21, opREL, false, true},
	{"bhi", 0x22, opREL, false, false},
	{"bls", 0x23, opREL, false, false},
	{"bcc", 0x24, opREL, false, false},
	{"bhs", 0x24, opREL, false, false},
	{"bcs", 0x25, opREL, false, false},
	{"blo", 0x25, opREL, false, false},
	{"bne", 0x26, opREL, false, false},
	{"beq", 0x27, opREL, false, false},
	{"bvc", 0x28, opREL, false, false},
	{"bvs", 0x29, opREL, false, false},
	{"bpl", 0x2a, opREL, false, false},
	{"bmi", 0x2b, opREL, false, false},
	{"bge", 0x2c, opREL, false, false},
	{"blt", 0x2d, opREL, false, false},
	{"bgt", 0x2e, opREL, false, false},
	{"ble", 0x2f, opREL, false, false},

	{"tsx", 0x30, opNONE, false, false},
	{"ins", 0x31, opNONE, false, false},
	{"pula", 0x32, opNONE, false, false},
	{"pulb", 0x33, opNONE, false, false},
	{"des", 0x34, opNONE, false, false},
	{"txs", 0x35, opNONE, false, false},
	{"psha", 0x36, opNONE, false, false},
	{"pshb", 0x37, opNONE, false, false},
	{"pulx", 0x38, opNONE, false, true},
	{"rts", 0x39, opNONE, false, false},
	{"abx", 0x3a, opNONE, false, true},
	{"rti", 0x3b, opNONE, false, false},
	{"pshx", 0x3c, opNONE, false, true},
	{"mul", 0x3d, opNONE, false, true},
	{"wai", 0x3e, opNONE, false, false},
	{"swi", 0x3f, opNONE, false, false},

	{"fcb", 0, opFCB, false, false},
	{"fcc", 0, opFCB, false, false},
	{"fdb", 0, opFDB, false, false},
	{"equ", 0, opEQU, false, false},
	{"rmb", 0, opRMB, false, false},
	{"org", 0, opORG, false, false},

	{"end", 0, opIGN, false, false},
	{"mon", 0, opIGN, false, false},
	{"opt", 0, opIGN, false, false},
	{"nam", 0, opIGN, false, false},
	{"ttl", 0, opIGN, false, false},
	{"spc", 0, opIGN, false, false},
	{"page", 0, opIGN, false, false},
}
