package riscv

import (
	"testing"

	"github.com/keurnel/riscv-asm/internal/riscvconfig"
)

func words(t *testing.T, binary_ []byte) []uint32 {
	t.Helper()
	if len(binary_)%4 != 0 {
		t.Fatalf("binary length %d is not a multiple of 4", len(binary_))
	}
	out := make([]uint32, len(binary_)/4)
	for i := range out {
		out[i] = bytesToWord(binary_[i*4 : i*4+4])
	}
	return out
}

func bytesToWord(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// TestMacroExpansionScenario is spec §8 end-to-end scenario 1.
func TestMacroExpansionScenario(t *testing.T) {
	src := `
.macro mult_nop_add x, y, z
  mul x, y, z
  nop
  add x, x, z
  addi x, x, 0xff
  neg x, x
  nop
.endm
  mult_nop_add x0, x1, x2
  nop
`
	obj, err := Assemble(src, riscvconfig.Default(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint32{0x02208033, 0x00000013, 0x00200033, 0x0ff00013, 0x40000033, 0x00000013, 0x00000013}
	got := words(t, obj.Binary)
	if len(got) != len(want) {
		t.Fatalf("got %d words, want %d: %x", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = 0x%08x, want 0x%08x", i, got[i], want[i])
		}
	}
}

// TestReservedNameRejection is spec §8 end-to-end scenario 4.
func TestReservedNameRejection(t *testing.T) {
	src := `
.macro add x, y
  nop
.endm
`
	if _, err := Assemble(src, riscvconfig.Default(), nil); err == nil {
		t.Fatal("expected an error for a macro named after a reserved mnemonic")
	}
}

// TestWidthDispatch is spec §8 end-to-end scenario 5 (the 16- and 32-bit
// cases; the 64-bit five-instruction form is covered by TestLiWidth64).
func TestWidthDispatch(t *testing.T) {
	obj, err := Assemble("li a0, 0x100\n", riscvconfig.Default(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(obj.Binary) != 4 {
		t.Fatalf("expected a single instruction, got %d bytes", len(obj.Binary))
	}

	obj2, err := Assemble("li a0, 0x12345\n", riscvconfig.Default(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(obj2.Binary) != 8 {
		t.Fatalf("expected a two-instruction lui/addi sequence, got %d bytes", len(obj2.Binary))
	}
	want := []uint32{0x00012537, 0x34550513}
	got := words(t, obj2.Binary)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = 0x%08x, want 0x%08x", i, got[i], want[i])
		}
	}
}

func TestLiWidth64(t *testing.T) {
	obj, err := Assemble("li a0, 0x100000000\n", riscvconfig.Default(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(obj.Binary) != 20 {
		t.Fatalf("expected a five-instruction sequence (20 bytes), got %d bytes", len(obj.Binary))
	}
	got := words(t, obj.Binary)
	// lui, addi, slli, addi, addi: opcode field of each instruction word.
	opcodes := []uint32{0b0110111, 0b0010011, 0b0010011, 0b0010011, 0b0010011}
	for i, want := range opcodes {
		if got[i]&0x7F != want {
			t.Errorf("instruction %d opcode = 0x%02x, want 0x%02x", i, got[i]&0x7F, want)
		}
	}
	// the third instruction is the slli rd, rd, 32 that separates the
	// highest/higher pair from the hi/lo pair.
	shamt := (got[2] >> 20) & 0x7F
	if shamt != 32 {
		t.Errorf("slli shamt = %d, want 32", shamt)
	}
}

// TestLiWidth64NoOverflow is the maintainer-reported regression: a
// constant above 2^44 (0x123456789ABC0 is about 2^48) overflows the lui %highest field under a
// two-level hi20/lo12 chain for %highest/%higher; the three-level chain
// keeps it in range. hi20 applied three times to 0x123456789ABC0 is
// 0x1234 (fits 20 bits); applied twice it is 0x1234568 (does not).
func TestLiWidth64NoOverflow(t *testing.T) {
	obj, err := Assemble("li a0, 0x123456789ABC0\n", riscvconfig.Default(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := words(t, obj.Binary)
	wantHighest := int32(0x1234)
	highest := int32(got[0]) >> 12
	if highest != wantHighest {
		t.Fatalf("%%highest = 0x%x, want 0x%x (three-level hi20/lo12 chain)", highest, wantHighest)
	}
}

// TestEquResolution checks that a `.equ`-defined name is substituted
// with its literal value before encoding, both as a bare operand and as
// the symbol inside a relocation function.
func TestEquResolution(t *testing.T) {
	src := ".equ OFFSET, 127\n.equ BASE, 0x12345\n  addi sp, x0, OFFSET\n  lui a0, %hi(BASE)\n"
	obj, err := Assemble(src, riscvconfig.Default(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(obj.Relocations) != 0 {
		t.Fatalf("expected no relocations (OFFSET/BASE resolve to constants), got %d", len(obj.Relocations))
	}
	got := words(t, obj.Binary)
	addiImm := (got[0] >> 20) & 0xFFF
	if addiImm != 127 {
		t.Errorf("addi imm = %d, want 127", addiImm)
	}
	luiImm := got[1] >> 12
	if luiImm != 0x12 {
		t.Errorf("lui %%hi(BASE) = 0x%x, want 0x12", luiImm)
	}
}

func TestLabelSymbolTable(t *testing.T) {
	src := "start:\n  nop\n  nop\nend:\n"
	obj, err := Assemble(src, riscvconfig.Default(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if off, ok := obj.Symbols["start"]; !ok || off != 0 {
		t.Errorf("start offset = %d, ok=%v, want 0", off, ok)
	}
	if off, ok := obj.Symbols["end"]; !ok || off != 8 {
		t.Errorf("end offset = %d, ok=%v, want 8", off, ok)
	}
}

func TestDuplicateLabel(t *testing.T) {
	src := "start:\n  nop\nstart:\n  nop\n"
	if _, err := Assemble(src, riscvconfig.Default(), nil); err == nil {
		t.Fatal("expected a duplicate-label error")
	}
}
