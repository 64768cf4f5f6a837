package arch_test

import (
	"testing"

	"github.com/keurnel/riscv-asm/internal/riscv/arch"
	"github.com/keurnel/riscv-asm/internal/riscv/expand"
)

// TestMnemonicsDisjointFromPseudoTable backs spec.md §8's disjointness
// invariant (a macro or pseudo name may never collide with a real ISA
// mnemonic): every name arch.Mnemonics() reports must be absent from
// the pseudo-instruction table, since drainMacros relies on exactly
// this to reject a user macro named after either.
func TestMnemonicsDisjointFromPseudoTable(t *testing.T) {
	for _, m := range arch.Mnemonics() {
		if expand.HasPseudo(m) {
			t.Errorf("mnemonic %q is also registered as a pseudo-instruction", m)
		}
	}
}
