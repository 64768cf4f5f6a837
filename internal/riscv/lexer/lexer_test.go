package lexer

import (
	"testing"

	"github.com/keurnel/riscv-asm/internal/riscv/token"
)

// TestOperandShapes checks spec §8 scenario 2: `lw a2, -8(sp)` lexes to
// Instruction("lw", [Register('x',12), Address(Register('x',2), Immediate(-8))]).
func TestOperandShapes(t *testing.T) {
	toks, err := Lex("lw a2, -8(sp)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 {
		t.Fatalf("expected 1 token, got %d", len(toks))
	}
	et, ok := toks[0].(token.EmittableToken)
	if !ok {
		t.Fatalf("expected an EmittableToken, got %T", toks[0])
	}
	ins, ok := et.Emittable.(token.Instruction)
	if !ok {
		t.Fatalf("expected an Instruction, got %T", et.Emittable)
	}
	if ins.Mnemonic != "lw" || len(ins.Operands) != 2 {
		t.Fatalf("unexpected instruction shape: %+v", ins)
	}

	rd, ok := token.AsRValue(ins.Operands[0])
	if !ok {
		t.Fatalf("operand 1 is not an RValue: %+v", ins.Operands[0])
	}
	reg, ok := rd.(token.Register)
	if !ok || reg.Bank != 'x' || reg.Index != 12 {
		t.Fatalf("operand 1 = %+v, want Register(x,12)", rd)
	}

	addr, ok := ins.Operands[1].(token.Address)
	if !ok {
		t.Fatalf("operand 2 is not an Address: %+v", ins.Operands[1])
	}
	base, ok := addr.Base.(token.Register)
	if !ok || base.Bank != 'x' || base.Index != 2 {
		t.Fatalf("address base = %+v, want Register(x,2)", addr.Base)
	}
	offset, ok := addr.Offset.(token.Immediate)
	if !ok || offset.Value != -8 {
		t.Fatalf("address offset = %+v, want Immediate(-8)", addr.Offset)
	}
}

// TestRelocationCapture checks spec §8 scenario 3: `auipc t0, %hi(function_addr)`
// lexes to an instruction whose second operand is RelocationFn("%hi", Identifier("function_addr")).
func TestRelocationCapture(t *testing.T) {
	toks, err := Lex("auipc t0, %hi(function_addr)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	et := toks[0].(token.EmittableToken)
	ins := et.Emittable.(token.Instruction)
	reloc, ok := ins.Operands[1].(token.RelocationFn)
	if !ok {
		t.Fatalf("operand 2 is not a RelocationFn: %+v", ins.Operands[1])
	}
	if reloc.Fn != "%hi" {
		t.Fatalf("reloc.Fn = %q, want %%hi", reloc.Fn)
	}
	sym, ok := reloc.Symbol.(token.Identifier)
	if !ok || sym.Name != "function_addr" {
		t.Fatalf("reloc.Symbol = %+v, want Identifier(function_addr)", reloc.Symbol)
	}
}

func TestLabelAndComment(t *testing.T) {
	toks, err := Lex("loop: # a comment\n  addi x0, x0, 0\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("expected label + instruction, got %d tokens", len(toks))
	}
	lbl, ok := toks[0].(token.Label)
	if !ok || lbl.Name != "loop" {
		t.Fatalf("expected Label(loop), got %+v", toks[0])
	}
}
