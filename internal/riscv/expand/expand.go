package expand

import (
	"fmt"

	"github.com/keurnel/riscv-asm/internal/riscv/arch"
	"github.com/keurnel/riscv-asm/internal/riscv/token"
)

// Error is the expander's single error kind: Syntax, per spec §7
// (unclosed macro, reserved-keyword collision, wrong arity, li on a
// non-immediate). la on a bare symbol is not an error: it takes
// DefaultLaWidth.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("expander syntax error at line %d: %s", e.Line, e.Msg)
}

func errf(line int, format string, args ...any) error {
	return &Error{Line: line, Msg: fmt.Sprintf(format, args...)}
}

type userMacro struct {
	Formals []string
	Body    []token.Emittable
}

// Expand runs the expansion stages over a lexer token stream: resolve
// `.equ` constants, drain user macros, rewrite li/la width, then splice
// pseudo and macro bodies until only primitive ISA instructions and
// data remain.
func Expand(tokens []token.Token) ([]token.Token, error) {
	tokens = resolveEqu(tokens)
	tokens, macros, err := drainMacros(tokens)
	if err != nil {
		return nil, err
	}
	tokens, err = selectWidths(tokens)
	if err != nil {
		return nil, err
	}
	return splice(tokens, macros)
}

// resolveEqu substitutes every `.equ NAME, VALUE`-defined name with its
// literal value wherever it appears as an operand (bare, or as the
// symbol inside a relocation function), then drops the `.equ` tokens
// themselves — by the time macro/pseudo expansion runs there is nothing
// left for them to do, since the name has already become an Immediate.
func resolveEqu(tokens []token.Token) []token.Token {
	consts := map[string]int64{}
	for _, t := range tokens {
		if dt, ok := t.(token.DirectiveToken); ok {
			if eq, ok := dt.Directive.(token.EquDirective); ok {
				consts[eq.Name] = eq.Value
			}
		}
	}
	if len(consts) == 0 {
		return tokens
	}

	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if dt, ok := t.(token.DirectiveToken); ok {
			if _, ok := dt.Directive.(token.EquDirective); ok {
				continue
			}
		}
		et, ok := t.(token.EmittableToken)
		if !ok {
			out = append(out, t)
			continue
		}
		ins, ok := et.Emittable.(token.Instruction)
		if !ok {
			out = append(out, t)
			continue
		}
		operands := make([]token.Operand, len(ins.Operands))
		for i, op := range ins.Operands {
			operands[i] = substituteEqu(op, consts)
		}
		out = append(out, token.EmittableToken{Line: et.Line, Emittable: token.Instruction{
			Mnemonic: ins.Mnemonic,
			Operands: operands,
			Line:     ins.Line,
		}})
	}
	return out
}

func substituteEqu(op token.Operand, consts map[string]int64) token.Operand {
	switch v := op.(type) {
	case token.RelocationFn:
		if id, ok := v.Symbol.(token.Identifier); ok {
			if val, ok := consts[id.Name]; ok {
				return token.RelocationFn{Fn: v.Fn, Symbol: token.Immediate{Value: val}}
			}
		}
		return op
	default:
		if id, ok := token.AsIdentifier(op); ok {
			if val, ok := consts[id.Name]; ok {
				return token.RValueOperand{Value: token.Immediate{Value: val}}
			}
		}
		return op
	}
}

// drainMacros scans the stream for Directive::Macro ranges, validates name
// disjointness with the ISA and pseudo tables, locates the matching endm,
// and removes the range (draining in reverse order to keep indices
// stable), collecting each body into a dictionary.
func drainMacros(tokens []token.Token) ([]token.Token, map[string]userMacro, error) {
	macros := map[string]userMacro{}
	type drainRange struct{ start, end int }
	var ranges []drainRange

	for i := 0; i < len(tokens); i++ {
		dt, ok := tokens[i].(token.DirectiveToken)
		if !ok {
			continue
		}
		md, ok := dt.Directive.(token.MacroDirective)
		if !ok {
			continue
		}
		if arch.Has(md.Name) || HasPseudo(md.Name) {
			return nil, nil, errf(dt.Line, "macro name %q collides with a reserved mnemonic", md.Name)
		}
		end := -1
		for j := i + 1; j < len(tokens); j++ {
			djt, ok := tokens[j].(token.DirectiveToken)
			if !ok {
				continue
			}
			if m, ok := djt.Directive.(token.Marker); ok && m.Name == "endm" {
				end = j
				break
			}
		}
		if end == -1 {
			return nil, nil, errf(dt.Line, "unclosed macro %q: missing .endm", md.Name)
		}

		var body []token.Emittable
		for k := i + 1; k < end; k++ {
			et, ok := tokens[k].(token.EmittableToken)
			if !ok {
				return nil, nil, errf(dt.Line, "macro %q body may only contain instructions", md.Name)
			}
			body = append(body, et.Emittable)
		}
		macros[md.Name] = userMacro{Formals: md.Params, Body: body}
		ranges = append(ranges, drainRange{i, end})
		i = end
	}

	for k := len(ranges) - 1; k >= 0; k-- {
		r := ranges[k]
		tokens = append(tokens[:r.start], tokens[r.end+1:]...)
	}
	return tokens, macros, nil
}

// selectWidths rewrites bare-immediate li/la mnemonics into li.16/32/64 or
// la.16/32/64 per spec §4.2 Stage 2, ahead of dictionary consultation.
func selectWidths(tokens []token.Token) ([]token.Token, error) {
	out := make([]token.Token, len(tokens))
	copy(out, tokens)
	for i, t := range out {
		et, ok := t.(token.EmittableToken)
		if !ok {
			continue
		}
		ins, ok := et.Emittable.(token.Instruction)
		if !ok || (ins.Mnemonic != "li" && ins.Mnemonic != "la") || len(ins.Operands) != 2 {
			continue
		}
		width, err := widthFor(ins, et.Line)
		if err != nil {
			return nil, err
		}
		ins.Mnemonic = fmt.Sprintf("%s.%d", ins.Mnemonic, width)
		out[i] = token.EmittableToken{Line: et.Line, Emittable: ins}
	}
	return out, nil
}

func widthFor(ins token.Instruction, line int) (int, error) {
	second := ins.Operands[1]
	if ins.Mnemonic == "li" {
		rv, ok := token.AsRValue(second)
		if !ok {
			return 0, errf(line, "li requires an immediate operand")
		}
		immVal, ok := rv.(token.Immediate)
		if !ok {
			return 0, errf(line, "li requires an immediate operand, not a symbol")
		}
		return widthOf(immVal.Value), nil
	}
	// la: a bare immediate participates the same way; a bare symbol defers
	// to the configured default width (spec §9 open question), resolved by
	// the caller passing a default-substituted width via DefaultLaWidth.
	if rv, ok := token.AsRValue(second); ok {
		if immVal, ok := rv.(token.Immediate); ok {
			return widthOf(immVal.Value), nil
		}
	}
	return DefaultLaWidth, nil
}

func widthOf(v int64) int {
	switch {
	case v >= -32768 && v <= 32767:
		return 16
	case v >= -(1<<31) && v <= (1<<31)-1:
		return 32
	default:
		return 64
	}
}

// DefaultLaWidth resolves the open question in spec §9: the width for
// `la rd, symbol` when the operand is a bare symbol with nothing to
// measure. It is a package variable rather than a constant so that
// riscv.Assemble can set it from the riscvconfig.Config it is given
// before each assembly begins; the pipeline itself remains single-threaded and
// sequential (spec §5), so no synchronisation is needed.
var DefaultLaWidth = 32

// splice walks the stream and replaces each Instruction token whose
// mnemonic matches the pseudo table or the user-macro dictionary with its
// expanded body, substituting formal parameters by position. A macro body
// may itself call a pseudo-instruction (the end-to-end macro-expansion
// scenario's `neg` inside `.macro`), so a macro expansion's resulting
// instructions get one further pseudo-table pass; pseudo bodies are
// primitive by construction and are not themselves re-scanned, and a
// macro body calling another macro is not re-expanded, matching spec
// §4.2's "nested pseudo/macro calls within bodies are not re-expanded"
// for anything beyond this one designed exception.
func splice(tokens []token.Token, macros map[string]userMacro) ([]token.Token, error) {
	var out []token.Token
	for _, t := range tokens {
		et, ok := t.(token.EmittableToken)
		if !ok {
			out = append(out, t)
			continue
		}
		ins, ok := et.Emittable.(token.Instruction)
		if !ok {
			out = append(out, t)
			continue
		}

		if entry, ok := pseudoTable[ins.Mnemonic]; ok {
			expanded, err := spliceBody(entry.Formals, entry.Body, ins, et.Line)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)
			continue
		}
		if entry, ok := macros[ins.Mnemonic]; ok {
			expanded, err := spliceBody(entry.Formals, entry.Body, ins, et.Line)
			if err != nil {
				return nil, err
			}
			expanded, err = expandPseudoWithin(expanded)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// expandPseudoWithin applies one further pseudo-table pass to a macro's
// already-spliced body, so a macro body may call a pseudo-instruction.
func expandPseudoWithin(tokens []token.Token) ([]token.Token, error) {
	var out []token.Token
	for _, t := range tokens {
		et, ok := t.(token.EmittableToken)
		if !ok {
			out = append(out, t)
			continue
		}
		ins, ok := et.Emittable.(token.Instruction)
		if !ok {
			out = append(out, t)
			continue
		}
		entry, ok := pseudoTable[ins.Mnemonic]
		if !ok {
			out = append(out, t)
			continue
		}
		expanded, err := spliceBody(entry.Formals, entry.Body, ins, et.Line)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

// substituteFormal replaces a body operand that names a formal parameter
// with the caller's matching argument. The formal name can appear either
// as a bare identifier operand (`imm("rd")`) or inside a relocation
// function's symbol (`%hi(imm)` in li.32/li.64/la.*'s bodies); both are
// rewritten, since leaving the latter untouched would carry the formal's
// own name through as if it were the literal symbol to relocate against.
func substituteFormal(op token.Operand, formalIndex map[string]int, args []token.Operand) token.Operand {
	switch v := op.(type) {
	case token.RelocationFn:
		if id, ok := v.Symbol.(token.Identifier); ok {
			if idx, isFormal := formalIndex[id.Name]; isFormal {
				if rv, ok := token.AsRValue(args[idx]); ok {
					return token.RelocationFn{Fn: v.Fn, Symbol: rv}
				}
			}
		}
		return op
	default:
		if id, ok := token.AsIdentifier(op); ok {
			if idx, isFormal := formalIndex[id.Name]; isFormal {
				return args[idx]
			}
		}
		return op
	}
}

func spliceBody(formals []string, body []token.Emittable, call token.Instruction, line int) ([]token.Token, error) {
	if len(call.Operands) != len(formals) {
		return nil, errf(line, "%q expects %d operands, got %d", call.Mnemonic, len(formals), len(call.Operands))
	}
	formalIndex := make(map[string]int, len(formals))
	for i, f := range formals {
		formalIndex[f] = i
	}

	out := make([]token.Token, len(body))
	for i, emittable := range body {
		bodyIns, ok := emittable.(token.Instruction)
		if !ok {
			out[i] = token.EmittableToken{Line: line, Emittable: emittable}
			continue
		}
		substituted := make([]token.Operand, len(bodyIns.Operands))
		for j, op := range bodyIns.Operands {
			substituted[j] = substituteFormal(op, formalIndex, call.Operands)
		}
		out[i] = token.EmittableToken{Line: line, Emittable: token.Instruction{
			Mnemonic: bodyIns.Mnemonic,
			Operands: substituted,
			Line:     line,
		}}
	}
	return out, nil
}
