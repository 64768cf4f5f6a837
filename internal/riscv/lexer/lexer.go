// Package lexer turns raw RISC-V assembly text into an ordered token
// stream of labels, directives, and emittables. It is grounded on
// original_source/src/lexer.rs: the same line-cleansing pipeline and
// regex-driven operand classification, adapted to Go's regexp package and
// to this project's token sum types.
package lexer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/keurnel/riscv-asm/internal/riscv/arch"
	"github.com/keurnel/riscv-asm/internal/riscv/token"
)

// ErrorKind distinguishes the two lexer error classes named in spec §7.
type ErrorKind int

const (
	Syntax ErrorKind = iota
	Parsing
)

// Error is the lexer's error sum type.
type Error struct {
	Kind ErrorKind
	Line int
	Msg  string
}

func (e *Error) Error() string {
	kind := "syntax"
	if e.Kind == Parsing {
		kind = "parsing"
	}
	return fmt.Sprintf("lexer %s error at line %d: %s", kind, e.Line, e.Msg)
}

func syntaxErr(line int, format string, args ...any) error {
	return &Error{Kind: Syntax, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func parsingErr(line int, format string, args ...any) error {
	return &Error{Kind: Parsing, Line: line, Msg: fmt.Sprintf(format, args...)}
}

var (
	labelRegex       = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*):`)
	registerRegex    = regexp.MustCompile(`^(x[0-9]+|f[0-9]+|zero|ra|sp|gp|tp|t[0-6]|s(?:[0-9]|1[01])|fp|a[0-7]|f[ast][0-9]+|ft1[01]|fs1[01])$`)
	relativeAddress  = regexp.MustCompile(`^(-?\w*)\(([A-Za-z_][A-Za-z0-9_]*)\)$`)
	relocationRegex  = regexp.MustCompile(`^%((?:pc|tp)?rel_)?(hi|lo|higher|highest|add)\(([^)]+)\)$`)
	signedLiteral    = regexp.MustCompile(`^-?(0x[0-9a-fA-F]+|0b[01]+|[0-9]+)$`)
	identifierRegex  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)
	stringLiteral    = regexp.MustCompile(`^"(.*)"$`)
)

// Lex runs the full lexer pipeline over source text and returns the token
// stream, or the first error encountered.
func Lex(source string) ([]token.Token, error) {
	var out []token.Token
	for i, raw := range strings.Split(source, "\n") {
		lineNo := i + 1
		line := stripComment(raw)
		for _, logical := range splitLabels(line) {
			logical = strings.TrimSpace(logical)
			if logical == "" {
				continue
			}
			tok, err := classify(logical, lineNo)
			if err != nil {
				return nil, err
			}
			if tok != nil {
				out = append(out, tok)
			}
		}
	}
	return out, nil
}

// stripComment removes everything from the first unquoted '#' to end of
// line.
func stripComment(line string) string {
	inString := false
	for i, c := range line {
		if c == '"' {
			inString = !inString
		}
		if c == '#' && !inString {
			return line[:i]
		}
	}
	return line
}

// splitLabels splits a line such as `foo: bar: addi x0, x0, 0` into its
// constituent logical lines `foo:`, `bar:`, `addi x0, x0, 0`. A colon
// terminates a label; multiple labels may share one physical line.
func splitLabels(line string) []string {
	var parts []string
	rest := line
	for {
		trimmed := strings.TrimLeft(rest, " \t")
		loc := labelRegex.FindStringSubmatchIndex(trimmed)
		if loc == nil {
			break
		}
		parts = append(parts, trimmed[loc[2]:loc[3]]+":")
		rest = trimmed[loc[1]:]
	}
	if strings.TrimSpace(rest) != "" {
		parts = append(parts, rest)
	}
	return parts
}

func classify(logical string, lineNo int) (token.Token, error) {
	if m := labelRegex.FindStringSubmatch(logical); m != nil && strings.TrimSpace(logical) == m[1]+":" {
		return token.Label{Name: m[1], Line: lineNo}, nil
	}
	if strings.HasPrefix(logical, ".") {
		return classifyDirective(logical, lineNo)
	}
	return classifyInstruction(logical, lineNo)
}

func splitFields(s string) (string, string) {
	s = strings.TrimSpace(s)
	idx := strings.IndexAny(s, " \t")
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx+1:])
}

func splitComma(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func classifyDirective(logical string, lineNo int) (token.Token, error) {
	name, rest := splitFields(logical)
	name = strings.TrimPrefix(name, ".")

	switch name {
	case "global", "globl", "local":
		vis := token.VisibilityGlobal
		if name == "local" {
			vis = token.VisibilityLocal
		}
		if rest == "" {
			return nil, syntaxErr(lineNo, "%s requires a symbol name", name)
		}
		return token.DirectiveToken{Line: lineNo, Directive: token.VisibilityDirective{Visibility: vis, Name: rest}}, nil

	case "equ":
		parts := strings.SplitN(rest, ",", 2)
		if len(parts) != 2 {
			return nil, syntaxErr(lineNo, ".equ requires NAME, VALUE")
		}
		val, err := parseInteger(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, parsingErr(lineNo, "bad .equ value: %v", err)
		}
		return token.DirectiveToken{Line: lineNo, Directive: token.EquDirective{Name: strings.TrimSpace(parts[0]), Value: val}}, nil

	case "macro":
		mname, margs := splitFields(rest)
		var params []string
		for _, a := range splitComma(margs) {
			if a != "" {
				params = append(params, a)
			}
		}
		return token.DirectiveToken{Line: lineNo, Directive: token.MacroDirective{Name: mname, Params: params}}, nil

	case "endm":
		return token.DirectiveToken{Line: lineNo, Directive: token.Marker{Name: "endm"}}, nil

	case "align", "p2align":
		kind := token.AlignBytes
		if name == "p2align" {
			kind = token.AlignPow2
		}
		args := splitComma(rest)
		if len(args) < 1 || len(args) > 3 {
			return nil, syntaxErr(lineNo, "%s requires 1-3 arguments", name)
		}
		n, err := parseOrZero(args, 0)
		if err != nil {
			return nil, parsingErr(lineNo, "%v", err)
		}
		pad, err := parseOrZero(args, 1)
		if err != nil {
			return nil, parsingErr(lineNo, "%v", err)
		}
		maxpad, err := parseOrZero(args, 2)
		if err != nil {
			return nil, parsingErr(lineNo, "%v", err)
		}
		return token.DirectiveToken{Line: lineNo, Directive: token.AlignDirective{Kind: kind, N: n, Pad: pad, MaxPad: maxpad}}, nil

	case "section":
		parts := strings.SplitN(rest, ",", 2)
		secName := strings.TrimSpace(parts[0])
		var flags token.SectionFlags
		if len(parts) == 2 {
			fm := stringLiteral.FindStringSubmatch(strings.TrimSpace(parts[1]))
			if fm == nil {
				return nil, syntaxErr(lineNo, ".section flags must be quoted")
			}
			for _, c := range fm[1] {
				switch c {
				case 'a':
					flags |= token.Allocate
				case 'w':
					flags |= token.Write
				case 'x':
					flags |= token.Execute
				case 'm':
					flags |= token.Merge
				case 's':
					flags |= token.String
				case 'g':
					flags |= token.Group
				case 't':
					flags |= token.TLS
				default:
					return nil, syntaxErr(lineNo, "unknown section flag %q", string(c))
				}
			}
		}
		return token.DirectiveToken{Line: lineNo, Directive: token.SectionDirective{Name: secName, Flags: flags}}, nil

	case "text", "init", "fini":
		return token.DirectiveToken{Line: lineNo, Directive: token.SectionDirective{Name: name, Flags: token.Execute}}, nil
	case "bss", "sbss", "rodata":
		return token.DirectiveToken{Line: lineNo, Directive: token.SectionDirective{Name: name, Flags: token.Allocate}}, nil
	case "data", "sdata":
		return token.DirectiveToken{Line: lineNo, Directive: token.SectionDirective{Name: name, Flags: token.Allocate | token.Write}}, nil

	case "byte", "half", "word", "dword":
		width := map[string]token.DataWidth{"byte": token.WidthByte, "half": token.WidthHalf, "word": token.WidthWord, "dword": token.WidthDword}[name]
		var elems []token.RValue
		for _, operand := range splitComma(rest) {
			elems = append(elems, parseDataElement(operand))
		}
		return token.EmittableToken{Line: lineNo, Emittable: token.Data{Width: width, Elements: elems}}, nil

	case "string", "asciz":
		m := stringLiteral.FindStringSubmatch(strings.TrimSpace(rest))
		if m == nil {
			return nil, syntaxErr(lineNo, "%s requires a quoted string", name)
		}
		return token.EmittableToken{Line: lineNo, Emittable: token.StringData{Text: m[1]}}, nil

	case "zero":
		n, err := parseInteger(strings.TrimSpace(rest))
		if err != nil {
			return nil, parsingErr(lineNo, "bad .zero count: %v", err)
		}
		elems := make([]token.RValue, n)
		for i := range elems {
			elems[i] = token.Immediate{Value: 0}
		}
		return token.EmittableToken{Line: lineNo, Emittable: token.Data{Width: token.WidthByte, Elements: elems}}, nil
	}

	return nil, parsingErr(lineNo, "unknown directive %q", "."+name)
}

func parseOrZero(args []string, idx int) (int64, error) {
	if idx >= len(args) || args[idx] == "" {
		return 0, nil
	}
	return parseInteger(args[idx])
}

func parseDataElement(s string) token.RValue {
	if v, err := parseInteger(s); err == nil {
		return token.Immediate{Value: v}
	}
	return token.Identifier{Name: s}
}

func classifyInstruction(logical string, lineNo int) (token.Token, error) {
	mnemonic, rest := splitFields(logical)
	var operands []token.Operand
	for _, raw := range splitComma(rest) {
		if raw == "" {
			continue
		}
		op, err := classifyOperand(raw, lineNo)
		if err != nil {
			return nil, err
		}
		operands = append(operands, op)
	}
	return token.EmittableToken{Line: lineNo, Emittable: token.Instruction{Mnemonic: mnemonic, Operands: operands, Line: lineNo}}, nil
}

// classifyOperand picks an operand shape by priority: register, base+offset
// address, relocation function, signed literal, identifier.
func classifyOperand(raw string, lineNo int) (token.Operand, error) {
	if registerRegex.MatchString(raw) {
		bank, idx, err := arch.ResolveRegister(raw)
		if err != nil {
			return nil, syntaxErr(lineNo, "%v", err)
		}
		return token.RValueOperand{Value: token.Register{Bank: bank, Index: idx}}, nil
	}
	if m := relativeAddress.FindStringSubmatch(raw); m != nil {
		var offset token.RValue = token.Immediate{Value: 0}
		if m[1] != "" {
			v, err := parseInteger(m[1])
			if err != nil {
				return nil, parsingErr(lineNo, "bad address offset %q: %v", m[1], err)
			}
			offset = token.Immediate{Value: v}
		}
		base, err := resolveRef(m[2], lineNo)
		if err != nil {
			return nil, err
		}
		return token.Address{Base: base, Offset: offset}, nil
	}
	if m := relocationRegex.FindStringSubmatch(raw); m != nil {
		fnName := "%" + m[1] + m[2]
		sym := strings.TrimSpace(m[3])
		if !identifierRegex.MatchString(sym) {
			return nil, syntaxErr(lineNo, "relocation function requires an identifier, got %q", sym)
		}
		return token.RelocationFn{Fn: fnName, Symbol: token.Identifier{Name: sym}}, nil
	}
	if signedLiteral.MatchString(raw) {
		v, err := parseInteger(raw)
		if err != nil {
			return nil, parsingErr(lineNo, "bad integer literal %q: %v", raw, err)
		}
		return token.RValueOperand{Value: token.Immediate{Value: v}}, nil
	}
	if identifierRegex.MatchString(raw) {
		return token.RValueOperand{Value: token.Identifier{Name: raw}}, nil
	}
	return nil, syntaxErr(lineNo, "unrecognised operand %q", raw)
}

func resolveRef(name string, lineNo int) (token.RValue, error) {
	if registerRegex.MatchString(name) {
		bank, idx, err := arch.ResolveRegister(name)
		if err != nil {
			return nil, syntaxErr(lineNo, "%v", err)
		}
		return token.Register{Bank: bank, Index: idx}, nil
	}
	if identifierRegex.MatchString(name) {
		return token.Identifier{Name: name}, nil
	}
	return nil, syntaxErr(lineNo, "expected register or identifier inside address, got %q", name)
}

// parseInteger parses a decimal, 0x-hex, or 0b-binary literal, with an
// optional leading '-'.
func parseInteger(s string) (int64, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var v int64
	var err error
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err = strconv.ParseInt(s[2:], 16, 64)
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		v, err = strconv.ParseInt(s[2:], 2, 64)
	default:
		v, err = strconv.ParseInt(s, 10, 64)
	}
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return v, nil
}
