// Package object accumulates the assembler's output: a flat byte buffer,
// a symbol table mapping label names to byte offsets, and a list of
// deferred relocations. Grounded on original_source/src/asm.rs's Object
// struct, extended per spec §4.4 to also insert labels and emit data
// directives — the source's own process_binary only ever encodes
// Instruction tokens into the buffer and never touches the symbol table
// or data emittables, even though its own Object carries a symbols field.
package object

import (
	"encoding/binary"
	"fmt"

	"github.com/keurnel/riscv-asm/internal/riscv/encode"
	"github.com/keurnel/riscv-asm/internal/riscv/token"
)

// Relocation records a deferred patch: the original token whose operand
// referenced an unresolved symbol, and the byte offset at which it was
// encoded with a zeroed field.
type Relocation struct {
	Token  token.Emittable
	Offset int
}

// Object is the assembler's output boundary handed off to a linker,
// matching spec §6 exactly.
type Object struct {
	Binary      []byte
	Symbols     map[string]int
	Relocations []Relocation
}

// New returns an empty Object ready to be built in pipeline order.
func New() *Object {
	return &Object{Symbols: map[string]int{}}
}

// Error reports a duplicate label definition. Encoder errors are surfaced
// from Encode unchanged, and a data element that is neither an immediate
// nor an identifier is rejected with a plain error.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return e.Msg }

// Build walks an expanded token stream and appends to obj in order:
// labels insert symbol-table entries, data emittables append their
// little-endian bytes, and instructions are encoded to four bytes each,
// recording a relocation when the encoder reports a symbolic operand.
func Build(obj *Object, tokens []token.Token, xlen int) error {
	for _, t := range tokens {
		switch tok := t.(type) {
		case token.Label:
			if _, exists := obj.Symbols[tok.Name]; exists {
				return &Error{Msg: fmt.Sprintf("duplicate label %q", tok.Name)}
			}
			obj.Symbols[tok.Name] = len(obj.Binary)

		case token.DirectiveToken:
			// Directives (section/align/visibility) affect assembler
			// state external to this boundary (spec places section
			// layout and linking out of scope); nothing to emit here.
			// .equ never reaches this stage: internal/riscv/expand
			// resolves it to literal immediates before object.Build runs.

		case token.EmittableToken:
			switch em := tok.Emittable.(type) {
			case token.Instruction:
				result, err := encode.Encode(em, xlen)
				if err != nil {
					return err
				}
				offset := len(obj.Binary)
				obj.Binary = binary.LittleEndian.AppendUint32(obj.Binary, result.Word)
				if result.Symbolic {
					obj.Relocations = append(obj.Relocations, Relocation{Token: em, Offset: offset})
				}

			case token.Data:
				for _, elem := range em.Elements {
					offset := len(obj.Binary)
					v, symbolic, err := dataValue(elem)
					if err != nil {
						return err
					}
					obj.Binary = appendWidth(obj.Binary, em.Width, v)
					if symbolic {
						obj.Relocations = append(obj.Relocations, Relocation{Token: em, Offset: offset})
					}
				}

			case token.StringData:
				obj.Binary = append(obj.Binary, []byte(em.Text)...)
				obj.Binary = append(obj.Binary, 0)
			}
		}
	}
	return nil
}

func dataValue(rv token.RValue) (int64, bool, error) {
	switch v := rv.(type) {
	case token.Immediate:
		return v.Value, false, nil
	case token.Identifier:
		return 0, true, nil
	default:
		return 0, false, fmt.Errorf("data element must be an immediate or identifier")
	}
}

func appendWidth(buf []byte, width token.DataWidth, v int64) []byte {
	switch width {
	case token.WidthByte:
		return append(buf, byte(v))
	case token.WidthHalf:
		return binary.LittleEndian.AppendUint16(buf, uint16(v))
	case token.WidthWord:
		return binary.LittleEndian.AppendUint32(buf, uint32(v))
	case token.WidthDword:
		return binary.LittleEndian.AppendUint64(buf, uint64(v))
	default:
		return append(buf, byte(v))
	}
}
