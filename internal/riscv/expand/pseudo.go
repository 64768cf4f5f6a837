package expand

import (
	"github.com/keurnel/riscv-asm/internal/riscv/arch"
	"github.com/keurnel/riscv-asm/internal/riscv/token"
)

// body builds an instruction-only token slice for a pseudo-instruction
// expansion. Lines are not meaningful for synthesized tokens.
func body(insns ...token.Instruction) []token.Emittable {
	out := make([]token.Emittable, len(insns))
	for i, ins := range insns {
		out[i] = ins
	}
	return out
}

// reg builds a literal fixed-register operand (e.g. the x0 in `neg rd,
// rs1` expanding to `sub rd, x0, rs1`). Unlike imm, its name is never a
// formal parameter and so must resolve to an actual register up front:
// left as an Identifier, it would pass through spliceBody's
// formal-name substitution untouched and reach the encoder as an
// unresolved symbol instead of a register.
func reg(name string) token.Operand {
	bank, idx, err := arch.ResolveRegister(name)
	if err != nil {
		panic("expand: pseudo table names unknown register " + name)
	}
	return token.RValueOperand{Value: token.Register{Bank: bank, Index: idx}}
}

func relo(fn, sym string) token.Operand {
	return token.RelocationFn{Fn: fn, Symbol: token.Identifier{Name: sym}}
}

func imm(name string) token.Operand { return token.RValueOperand{Value: token.Identifier{Name: name}} }

// pseudoEntry is a pseudo-instruction's formal-parameter list and
// pre-lexed body.
type pseudoEntry struct {
	Formals []string
	Body    []token.Emittable
}

// pseudoTable is the canonical pseudo-instruction set from spec.md §4.2,
// grounded on original_source/src/asm.rs's PSEUDO_INSTRUCTIONS map. Each
// body is expressed directly as Go-constructed tokens rather than
// re-lexed text, since the body shapes are fixed and small.
var pseudoTable = map[string]pseudoEntry{
	"nop": {nil, body(token.Instruction{Mnemonic: "addi", Operands: []token.Operand{reg("x0"), reg("x0"), token.RValueOperand{Value: token.Immediate{Value: 0}}}})},

	"mv": {[]string{"rd", "rs"}, body(token.Instruction{Mnemonic: "addi", Operands: []token.Operand{imm("rd"), imm("rs"), token.RValueOperand{Value: token.Immediate{Value: 0}}}})},

	"not": {[]string{"rd", "rs1"}, body(token.Instruction{Mnemonic: "xori", Operands: []token.Operand{imm("rd"), imm("rs1"), token.RValueOperand{Value: token.Immediate{Value: -1}}}})},

	"neg": {[]string{"rd", "rs1"}, body(token.Instruction{Mnemonic: "sub", Operands: []token.Operand{imm("rd"), reg("x0"), imm("rs1")}})},

	"negw": {[]string{"rd", "rs1"}, body(token.Instruction{Mnemonic: "subw", Operands: []token.Operand{imm("rd"), reg("x0"), imm("rs1")}})},

	"sext.w": {[]string{"rd", "rs1"}, body(token.Instruction{Mnemonic: "addiw", Operands: []token.Operand{imm("rd"), imm("rs1"), token.RValueOperand{Value: token.Immediate{Value: 0}}}})},

	"seqz": {[]string{"rd", "rs1"}, body(token.Instruction{Mnemonic: "sltiu", Operands: []token.Operand{imm("rd"), imm("rs1"), token.RValueOperand{Value: token.Immediate{Value: 1}}}})},

	"snez": {[]string{"rd", "rs1"}, body(token.Instruction{Mnemonic: "sltu", Operands: []token.Operand{imm("rd"), reg("x0"), imm("rs1")}})},

	"sltz": {[]string{"rd", "rs1"}, body(token.Instruction{Mnemonic: "slt", Operands: []token.Operand{imm("rd"), imm("rs1"), reg("x0")}})},

	"sgtz": {[]string{"rd", "rs1"}, body(token.Instruction{Mnemonic: "slt", Operands: []token.Operand{imm("rd"), reg("x0"), imm("rs1")}})},

	"fmv.s":  {[]string{"rd", "rs"}, body(token.Instruction{Mnemonic: "fsgnj.s", Operands: []token.Operand{imm("rd"), imm("rs"), imm("rs")}})},
	"fabs.s": {[]string{"rd", "rs"}, body(token.Instruction{Mnemonic: "fsgnjx.s", Operands: []token.Operand{imm("rd"), imm("rs"), imm("rs")}})},
	"fneg.s": {[]string{"rd", "rs"}, body(token.Instruction{Mnemonic: "fsgnjn.s", Operands: []token.Operand{imm("rd"), imm("rs"), imm("rs")}})},
	"fmv.d":  {[]string{"rd", "rs"}, body(token.Instruction{Mnemonic: "fsgnj.d", Operands: []token.Operand{imm("rd"), imm("rs"), imm("rs")}})},
	"fabs.d": {[]string{"rd", "rs"}, body(token.Instruction{Mnemonic: "fsgnjx.d", Operands: []token.Operand{imm("rd"), imm("rs"), imm("rs")}})},
	"fneg.d": {[]string{"rd", "rs"}, body(token.Instruction{Mnemonic: "fsgnjn.d", Operands: []token.Operand{imm("rd"), imm("rs"), imm("rs")}})},

	"beqz": {[]string{"rs1", "offset"}, body(token.Instruction{Mnemonic: "beq", Operands: []token.Operand{imm("rs1"), reg("x0"), imm("offset")}})},
	"bnez": {[]string{"rs1", "offset"}, body(token.Instruction{Mnemonic: "bne", Operands: []token.Operand{imm("rs1"), reg("x0"), imm("offset")}})},
	"blez": {[]string{"rs1", "offset"}, body(token.Instruction{Mnemonic: "bge", Operands: []token.Operand{reg("x0"), imm("rs1"), imm("offset")}})},
	"bgez": {[]string{"rs1", "offset"}, body(token.Instruction{Mnemonic: "bge", Operands: []token.Operand{imm("rs1"), reg("x0"), imm("offset")}})},
	"bltz": {[]string{"rs1", "offset"}, body(token.Instruction{Mnemonic: "blt", Operands: []token.Operand{imm("rs1"), reg("x0"), imm("offset")}})},
	"bgtz": {[]string{"rs1", "offset"}, body(token.Instruction{Mnemonic: "blt", Operands: []token.Operand{reg("x0"), imm("rs1"), imm("offset")}})},

	"bgt":  {[]string{"rs1", "rs2", "offset"}, body(token.Instruction{Mnemonic: "blt", Operands: []token.Operand{imm("rs2"), imm("rs1"), imm("offset")}})},
	"ble":  {[]string{"rs1", "rs2", "offset"}, body(token.Instruction{Mnemonic: "bge", Operands: []token.Operand{imm("rs2"), imm("rs1"), imm("offset")}})},
	"bgtu": {[]string{"rs1", "rs2", "offset"}, body(token.Instruction{Mnemonic: "bltu", Operands: []token.Operand{imm("rs2"), imm("rs1"), imm("offset")}})},
	"bleu": {[]string{"rs1", "rs2", "offset"}, body(token.Instruction{Mnemonic: "bgeu", Operands: []token.Operand{imm("rs2"), imm("rs1"), imm("offset")}})},

	"j":   {[]string{"offset"}, body(token.Instruction{Mnemonic: "jal", Operands: []token.Operand{reg("x0"), imm("offset")}})},
	"jr":  {[]string{"offset"}, body(token.Instruction{Mnemonic: "jal", Operands: []token.Operand{reg("x1"), imm("offset")}})},
	"ret": {nil, body(token.Instruction{Mnemonic: "jalr", Operands: []token.Operand{reg("x0"), token.Address{Base: token.Register{Bank: 'x', Index: 1}, Offset: token.Immediate{Value: 0}}}})},

	"li.16": {[]string{"rd", "imm"}, body(token.Instruction{Mnemonic: "addi", Operands: []token.Operand{imm("rd"), reg("x0"), imm("imm")}})},

	"li.32": {[]string{"rd", "imm"}, body(
		token.Instruction{Mnemonic: "lui", Operands: []token.Operand{imm("rd"), relo("%hi", "imm")}},
		token.Instruction{Mnemonic: "addi", Operands: []token.Operand{imm("rd"), imm("rd"), relo("%lo", "imm")}},
	)},

	// A 64-bit constant that doesn't fit li.32's lui+addi pair adds a
	// further lui+addi pair (%highest/%higher) one level out in the same
	// %hi/%lo rounding chain, slides it into place with slli 32, then
	// reapplies %hi/%lo for the low bits. Matches
	// original_source/src/asm.rs's PSEUDO_INSTRUCTIONS entry for "li.64"
	// literally (five instructions, shift amount 32); see DESIGN.md for
	// the %highest/%higher/%hi/%lo arithmetic and its limits.
	"li.64": {[]string{"rd", "imm"}, body(
		token.Instruction{Mnemonic: "lui", Operands: []token.Operand{imm("rd"), relo("%highest", "imm")}},
		token.Instruction{Mnemonic: "addi", Operands: []token.Operand{imm("rd"), imm("rd"), relo("%higher", "imm")}},
		token.Instruction{Mnemonic: "slli", Operands: []token.Operand{imm("rd"), imm("rd"), token.RValueOperand{Value: token.Immediate{Value: 32}}}},
		token.Instruction{Mnemonic: "addi", Operands: []token.Operand{imm("rd"), imm("rd"), relo("%hi", "imm")}},
		token.Instruction{Mnemonic: "addi", Operands: []token.Operand{imm("rd"), imm("rd"), relo("%lo", "imm")}},
	)},

	"la.16": {[]string{"rd", "sym"}, body(
		token.Instruction{Mnemonic: "auipc", Operands: []token.Operand{imm("rd"), relo("%pcrel_hi", "sym")}},
		token.Instruction{Mnemonic: "addi", Operands: []token.Operand{imm("rd"), imm("rd"), relo("%pcrel_lo", "sym")}},
	)},

	"la.32": {[]string{"rd", "sym"}, body(
		token.Instruction{Mnemonic: "lui", Operands: []token.Operand{imm("rd"), relo("%hi", "sym")}},
		token.Instruction{Mnemonic: "addi", Operands: []token.Operand{imm("rd"), imm("rd"), relo("%lo", "sym")}},
	)},

	"la.64": {[]string{"rd", "sym"}, body(
		token.Instruction{Mnemonic: "lui", Operands: []token.Operand{imm("rd"), relo("%highest", "sym")}},
		token.Instruction{Mnemonic: "addi", Operands: []token.Operand{imm("rd"), imm("rd"), relo("%higher", "sym")}},
		token.Instruction{Mnemonic: "slli", Operands: []token.Operand{imm("rd"), imm("rd"), token.RValueOperand{Value: token.Immediate{Value: 32}}}},
		token.Instruction{Mnemonic: "addi", Operands: []token.Operand{imm("rd"), imm("rd"), relo("%hi", "sym")}},
		token.Instruction{Mnemonic: "addi", Operands: []token.Operand{imm("rd"), imm("rd"), relo("%lo", "sym")}},
	)},
}

// HasPseudo reports whether m names a pseudo-instruction.
func HasPseudo(m string) bool {
	_, ok := pseudoTable[m]
	return ok
}
