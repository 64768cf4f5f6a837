package encode

import (
	"testing"

	"github.com/keurnel/riscv-asm/internal/riscv/token"
)

func reg(idx uint8) token.Operand {
	return token.RValueOperand{Value: token.Register{Bank: 'x', Index: idx}}
}

func immOp(v int64) token.Operand {
	return token.RValueOperand{Value: token.Immediate{Value: v}}
}

// TestGoldenEncodings checks the round-trip laws from spec §8.
func TestGoldenEncodings(t *testing.T) {
	cases := []struct {
		name string
		ins  token.Instruction
		want uint32
	}{
		{"addi x5, x6, 255", token.Instruction{Mnemonic: "addi", Operands: []token.Operand{reg(5), reg(6), immOp(255)}}, 0x0ff30293},
		{"mul x0, x1, x2", token.Instruction{Mnemonic: "mul", Operands: []token.Operand{reg(0), reg(1), reg(2)}}, 0x02208033},
		{"add x0, x0, x2", token.Instruction{Mnemonic: "add", Operands: []token.Operand{reg(0), reg(0), reg(2)}}, 0x00200033},
		{"sub x0, x0, x0", token.Instruction{Mnemonic: "sub", Operands: []token.Operand{reg(0), reg(0), reg(0)}}, 0x40000033},
		{"addi x0, x0, 0", token.Instruction{Mnemonic: "addi", Operands: []token.Operand{reg(0), reg(0), immOp(0)}}, 0x00000013},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Encode(tc.ins, 64)
			if err != nil {
				t.Fatalf("Encode(%s): unexpected error: %v", tc.name, err)
			}
			if got.Word != tc.want {
				t.Errorf("Encode(%s) = 0x%08x, want 0x%08x", tc.name, got.Word, tc.want)
			}
		})
	}
}

// TestShamtBounds checks the shamt-width scenario from spec §8.6: slli
// with shamt 32 is out of range on RV32 but valid on RV64.
func TestShamtBounds(t *testing.T) {
	ins := token.Instruction{Mnemonic: "slli", Operands: []token.Operand{reg(1), reg(2), immOp(32)}}

	if _, err := Encode(ins, 32); err == nil {
		t.Fatal("expected Operands error for shamt 32 on RV32, got none")
	} else if e, ok := err.(*Error); !ok || e.Kind != Operands {
		t.Fatalf("expected Operands error kind, got %v", err)
	}

	if _, err := Encode(ins, 64); err != nil {
		t.Fatalf("expected shamt 32 to be valid on RV64, got error: %v", err)
	}
}

// TestShiftSubtypeBit checks that the arithmetic/logical distinguishing
// bit lands at imm[10] (0x400), set only for srai, not at a position
// derived from the shamt field width.
func TestShiftSubtypeBit(t *testing.T) {
	cases := []struct {
		name string
		ins  token.Instruction
		want uint32
	}{
		{"srli x5, x6, 3", token.Instruction{Mnemonic: "srli", Operands: []token.Operand{reg(5), reg(6), immOp(3)}}, 0x00335293},
		{"srai x5, x6, 3", token.Instruction{Mnemonic: "srai", Operands: []token.Operand{reg(5), reg(6), immOp(3)}}, 0x40335293},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Encode(tc.ins, 64)
			if err != nil {
				t.Fatalf("Encode(%s): unexpected error: %v", tc.name, err)
			}
			if got.Word != tc.want {
				t.Errorf("Encode(%s) = 0x%08x, want 0x%08x", tc.name, got.Word, tc.want)
			}
		})
	}
}

// TestFenceI checks the zero-operand ZiFencei instruction, which would
// otherwise fall into the 3-operand plain OP-IMM path and always fail.
func TestFenceI(t *testing.T) {
	got, err := Encode(token.Instruction{Mnemonic: "fence.i"}, 64)
	if err != nil {
		t.Fatalf("Encode(fence.i): unexpected error: %v", err)
	}
	if want := uint32(0x0000100f); got.Word != want {
		t.Errorf("Encode(fence.i) = 0x%08x, want 0x%08x", got.Word, want)
	}

	if _, err := Encode(token.Instruction{Mnemonic: "fence.i", Operands: []token.Operand{reg(1)}}, 64); err == nil {
		t.Fatal("expected an Operands error for fence.i with an operand")
	}
}

func TestUnknownMnemonic(t *testing.T) {
	_, err := Encode(token.Instruction{Mnemonic: "frobnicate"}, 64)
	if err == nil {
		t.Fatal("expected an error for an unknown mnemonic")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != Mnemonic {
		t.Fatalf("expected Mnemonic error kind, got %v", err)
	}
}

func TestR4NotYetImplemented(t *testing.T) {
	_, err := Encode(token.Instruction{Mnemonic: "fmadd.s", Operands: []token.Operand{reg(1), reg(2), reg(3), reg(4)}}, 64)
	if err == nil {
		t.Fatal("expected a Format error for R4 instructions")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != Format {
		t.Fatalf("expected Format error kind, got %v", err)
	}
}
