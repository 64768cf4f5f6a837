// Package riscv is the top-level assembler: it wires the lexer, the
// macro/pseudo expander, and the encoder/object accumulator into the
// single entry point spec §6 names: assemble(text) -> Object | Error.
package riscv

import (
	"fmt"

	"github.com/keurnel/riscv-asm/internal/debugcontext"
	"github.com/keurnel/riscv-asm/internal/riscv/expand"
	"github.com/keurnel/riscv-asm/internal/riscv/lexer"
	"github.com/keurnel/riscv-asm/internal/riscv/object"
	"github.com/keurnel/riscv-asm/internal/riscvconfig"
)

// Assemble runs the full pipeline over source text and returns the
// resulting Object, or the first error raised by any stage (lexer,
// expander, or encoder/object). trace, if non-nil, receives a phase
// transition entry for each stage — the assembler's own answer to
// structured logging (see internal/debugcontext).
func Assemble(source string, cfg riscvconfig.Config, trace *debugcontext.DebugContext) (*object.Object, error) {
	expand.DefaultLaWidth = cfg.LaDefaultWidth

	if trace != nil {
		trace.SetPhase("lexing")
		trace.Trace(trace.Loc(0, 0), "entering phase lexing")
	}
	tokens, err := lexer.Lex(source)
	if err != nil {
		if trace != nil {
			trace.Error(trace.Loc(0, 0), err.Error())
		}
		return nil, fmt.Errorf("lexing failed: %w", err)
	}

	if trace != nil {
		trace.SetPhase("expanding")
		trace.Trace(trace.Loc(0, 0), "entering phase expanding")
	}
	expanded, err := expand.Expand(tokens)
	if err != nil {
		if trace != nil {
			trace.Error(trace.Loc(0, 0), err.Error())
		}
		return nil, fmt.Errorf("macro/pseudo expansion failed: %w", err)
	}

	if trace != nil {
		trace.SetPhase("encoding")
		trace.Trace(trace.Loc(0, 0), "entering phase encoding")
	}
	obj := object.New()
	if err := object.Build(obj, expanded, cfg.XLEN); err != nil {
		if trace != nil {
			trace.Error(trace.Loc(0, 0), err.Error())
		}
		return nil, fmt.Errorf("encoding failed: %w", err)
	}

	return obj, nil
}
