// Package encode turns a single Instruction token into its 32-bit
// little-endian RISC-V word, dispatching per the opcode group's format.
// Grounded on original_source/src/codec/enc.rs's per-opcode encoder
// procedures, collapsed into one dispatcher per spec §9's design note
// ("prefer a tagged sum Format with a single encode dispatcher"), and with
// the Branch/JAL immediate layouts and the CSR register-vs-immediate
// selection corrected to match the actual RISC-V specification rather
// than the buggy source arithmetic (spec §9 explicitly calls this out).
package encode

import (
	"fmt"

	"github.com/keurnel/riscv-asm/internal/riscv/arch"
	"github.com/keurnel/riscv-asm/internal/riscv/token"
)

// ErrorKind names the encoder error classes of spec §7.
type ErrorKind int

const (
	Mnemonic ErrorKind = iota
	Format
	Operands
	FloatRounding
)

// Error is the encoder's error sum type.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func errMnemonic(name string) error {
	return &Error{Kind: Mnemonic, Msg: fmt.Sprintf("unknown mnemonic %q", name)}
}
func errFormat(format string, args ...any) error {
	return &Error{Kind: Format, Msg: fmt.Sprintf(format, args...)}
}
func errOperands(format string, args ...any) error {
	return &Error{Kind: Operands, Msg: fmt.Sprintf(format, args...)}
}

// Result is the outcome of encoding one instruction: the word, and whether
// any operand was an unresolved symbol (in which case word has zero bits
// in the symbol's field and the caller must record a relocation).
type Result struct {
	Word     uint32
	Symbolic bool
}

// Encode produces the 32-bit word for ins. xlen is the configured target
// width (32, 64, or 128), which only affects the OP-IMM shift-amount
// field width for the native (non -w/-d suffixed) shift mnemonics.
func Encode(ins token.Instruction, xlen int) (Result, error) {
	desc, ok := arch.Lookup(ins.Mnemonic)
	if !ok {
		return Result{}, errMnemonic(ins.Mnemonic)
	}

	switch desc.Format {
	case arch.FormatR:
		return encodeR(desc, ins)
	case arch.FormatI:
		return encodeI(desc, ins, xlen)
	case arch.FormatS:
		return encodeS(desc, ins)
	case arch.FormatSB:
		return encodeSB(desc, ins)
	case arch.FormatU:
		return encodeU(desc, ins)
	case arch.FormatUJ:
		return encodeUJ(desc, ins)
	case arch.FormatAmo:
		return encodeAmo(desc, ins)
	case arch.FormatFp:
		return encodeFp(desc, ins)
	case arch.FormatSystem:
		return encodeSystem(desc, ins)
	case arch.FormatSystemCall:
		return encodeSystemCall(desc)
	case arch.FormatFence:
		return encodeFence(desc, ins)
	case arch.FormatR4:
		return Result{}, errFormat("R4 (fused multiply-add) instructions are not yet implemented")
	default:
		return Result{}, errFormat("unsupported format for %q", ins.Mnemonic)
	}
}

func needOperands(ins token.Instruction, n int) error {
	if len(ins.Operands) != n {
		return errOperands("%q expects %d operands, got %d", ins.Mnemonic, n, len(ins.Operands))
	}
	return nil
}

func asRegister(op token.Operand) (uint8, bool) {
	rv, ok := token.AsRValue(op)
	if !ok {
		return 0, false
	}
	reg, ok := rv.(token.Register)
	if !ok {
		return 0, false
	}
	return reg.Index, true
}

// resolveImmediate extracts a value from an RValue or RelocationFn
// operand. A bare Identifier is symbolic: the caller should zero the
// field and record a relocation. A RelocationFn wrapping an Identifier
// (an external symbol, as in la's %hi/%pcrel_hi/...) is symbolic for the
// same reason; a RelocationFn wrapping an already-known Immediate (as in
// li's %hi/%lo/...,  since li requires a constant operand) is resolved
// immediately — there is no symbol left to defer.
func resolveImmediate(op token.Operand) (value int64, symbolic bool, err error) {
	switch v := op.(type) {
	case token.RValueOperand:
		switch rv := v.Value.(type) {
		case token.Immediate:
			return rv.Value, false, nil
		case token.Identifier:
			return 0, true, nil
		default:
			return 0, false, errOperands("expected an immediate or symbol operand")
		}
	case token.RelocationFn:
		if imm, ok := v.Symbol.(token.Immediate); ok {
			return applyRelocation(v.Fn, imm.Value), false, nil
		}
		return 0, true, nil
	default:
		return 0, false, errOperands("expected an immediate or symbol operand")
	}
}

// hi20 and lo12 split v into a pair that reconstructs exactly as
// hi20(v)*4096 + lo12(v), with lo12 always in [-2048, 2047] — the
// standard %hi/%lo rounding pairing used to materialize a constant
// across a lui (or a further hi20/lo12 pass) and an addi.
func hi20(v int64) int64 { return (v + 0x800) >> 12 }
func lo12(v int64) int64 { return v - (hi20(v) << 12) }

// applyRelocation computes a relocation function's contribution against
// an already-known constant (only reachable when the function's symbol
// resolved to an Immediate, not an external Identifier).
//
// %hi/%lo is the ordinary single lui+addi pairing (li.32, la.32, and the
// trailing pair of li.64/la.64's five-instruction form). %higher and
// %highest materialize the bits above that pairing as a second lui+addi
// pair one level further out in the same hi20/lo12 chain: %highest and
// %higher reconstruct hi20(hi20(v)) exactly (the identity
// hi20(x)*4096+lo12(x) = x holds for any x), one level deeper than just
// hi20(v) — keeping %highest inside the lui's 20-bit field for
// constants 2^12 times larger before it would otherwise overflow. The five-instruction li.64/la.64 shape still can't
// round-trip an arbitrary 64-bit constant exactly (the trailing %hi/%lo
// pair is added unshifted, with no way to align it against the shifted
// %highest/%higher pair beyond what the rounding already captures); see
// the li.64/la.64 entry in DESIGN.md.
func applyRelocation(fn string, v int64) int64 {
	switch fn {
	case "%lo", "%pcrel_lo", "%tprel_lo":
		return lo12(v)
	case "%hi", "%pcrel_hi", "%tprel_hi":
		return hi20(v)
	case "%higher":
		return lo12(hi20(hi20(v)))
	case "%highest":
		return hi20(hi20(hi20(v)))
	default:
		return v
	}
}

func encodeR(desc arch.InstructionDescriptor, ins token.Instruction) (Result, error) {
	if err := needOperands(ins, 3); err != nil {
		return Result{}, err
	}
	rd, ok := asRegister(ins.Operands[0])
	if !ok {
		return Result{}, errOperands("%q: operand 1 must be a register", ins.Mnemonic)
	}
	rs1, ok := asRegister(ins.Operands[1])
	if !ok {
		return Result{}, errOperands("%q: operand 2 must be a register", ins.Mnemonic)
	}
	rs2, ok := asRegister(ins.Operands[2])
	if !ok {
		return Result{}, errOperands("%q: operand 3 must be a register", ins.Mnemonic)
	}
	word := uint32(desc.Funct7)<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 | uint32(desc.Funct3)<<12 | uint32(rd)<<7 | uint32(desc.Opcode)
	return Result{Word: word}, nil
}

func shamtWidth(desc arch.InstructionDescriptor, xlen int) int {
	switch {
	case desc.Opcode == arch.OpImm32 && desc.ISA == arch.RV64I:
		return 5
	case desc.Opcode == arch.OpImm64 && desc.ISA == arch.RV128I:
		return 6
	default:
		switch xlen {
		case 32:
			return 5
		case 128:
			return 7
		default:
			return 6
		}
	}
}

func encodeI(desc arch.InstructionDescriptor, ins token.Instruction, xlen int) (Result, error) {
	if ins.Mnemonic == "fence.i" {
		if err := needOperands(ins, 0); err != nil {
			return Result{}, err
		}
		word := uint32(desc.Funct3)<<12 | uint32(desc.Opcode)
		return Result{Word: word}, nil
	}

	if desc.HasShift {
		if err := needOperands(ins, 3); err != nil {
			return Result{}, err
		}
		rd, ok := asRegister(ins.Operands[0])
		if !ok {
			return Result{}, errOperands("%q: operand 1 must be a register", ins.Mnemonic)
		}
		rs1, ok := asRegister(ins.Operands[1])
		if !ok {
			return Result{}, errOperands("%q: operand 2 must be a register", ins.Mnemonic)
		}
		shamtVal, symbolic, err := resolveImmediate(ins.Operands[2])
		if err != nil {
			return Result{}, err
		}
		if symbolic {
			return Result{}, errOperands("%q: shift amount must be a constant immediate", ins.Mnemonic)
		}
		width := shamtWidth(desc, xlen)
		limit := int64(1) << uint(width)
		if shamtVal < 0 || shamtVal >= limit {
			return Result{}, errOperands("%q: shamt %d out of range [0, %d)", ins.Mnemonic, shamtVal, limit)
		}
		// The arithmetic/logical distinguishing bit sits at imm[10]
		// (0x400) regardless of shamt width; SLLI/SRLI leave it clear,
		// SRAI sets it. It is not part of the shamt field itself.
		var shiftTypeBits uint32
		if desc.Shift == arch.ShiftRA {
			shiftTypeBits = 0x400
		}
		immField := shiftTypeBits | uint32(shamtVal)&uint32(limit-1)
		word := immField<<20 | uint32(rs1)<<15 | uint32(desc.Funct3)<<12 | uint32(rd)<<7 | uint32(desc.Opcode)
		return Result{Word: word}, nil
	}

	if desc.Opcode == arch.Load || desc.Opcode == arch.LoadFp || desc.Opcode == arch.Jalr {
		if err := needOperands(ins, 2); err != nil {
			return Result{}, err
		}
		rd, ok := asRegister(ins.Operands[0])
		if !ok {
			return Result{}, errOperands("%q: operand 1 must be a register", ins.Mnemonic)
		}
		addr, ok := ins.Operands[1].(token.Address)
		if !ok {
			return Result{}, errOperands("%q: operand 2 must be a base+offset address", ins.Mnemonic)
		}
		rs1, ok := asRegisterRValue(addr.Base)
		if !ok {
			return Result{}, errOperands("%q: address base must be a register", ins.Mnemonic)
		}
		offVal, symbolic, err := resolveImmediate(token.RValueOperand{Value: addr.Offset})
		if err != nil {
			return Result{}, err
		}
		if !symbolic && (offVal < -2048 || offVal > 2047) {
			return Result{}, errOperands("%q: offset %d does not fit 12 signed bits", ins.Mnemonic, offVal)
		}
		imm := uint32(offVal) & 0xFFF
		word := imm<<20 | uint32(rs1)<<15 | uint32(desc.Funct3)<<12 | uint32(rd)<<7 | uint32(desc.Opcode)
		return Result{Word: word, Symbolic: symbolic}, nil
	}

	// Plain OP-IMM: rd, rs1, imm.
	if err := needOperands(ins, 3); err != nil {
		return Result{}, err
	}
	rd, ok := asRegister(ins.Operands[0])
	if !ok {
		return Result{}, errOperands("%q: operand 1 must be a register", ins.Mnemonic)
	}
	rs1, ok := asRegister(ins.Operands[1])
	if !ok {
		return Result{}, errOperands("%q: operand 2 must be a register", ins.Mnemonic)
	}
	immVal, symbolic, err := resolveImmediate(ins.Operands[2])
	if err != nil {
		return Result{}, err
	}
	imm := uint32(immVal) & 0xFFF
	word := imm<<20 | uint32(rs1)<<15 | uint32(desc.Funct3)<<12 | uint32(rd)<<7 | uint32(desc.Opcode)
	return Result{Word: word, Symbolic: symbolic}, nil
}

func asRegisterRValue(rv token.RValue) (uint8, bool) {
	reg, ok := rv.(token.Register)
	if !ok {
		return 0, false
	}
	return reg.Index, true
}

func encodeS(desc arch.InstructionDescriptor, ins token.Instruction) (Result, error) {
	if err := needOperands(ins, 2); err != nil {
		return Result{}, err
	}
	rs2, ok := asRegister(ins.Operands[0])
	if !ok {
		return Result{}, errOperands("%q: operand 1 must be a register", ins.Mnemonic)
	}
	addr, ok := ins.Operands[1].(token.Address)
	if !ok {
		return Result{}, errOperands("%q: operand 2 must be a base+offset address", ins.Mnemonic)
	}
	rs1, ok := asRegisterRValue(addr.Base)
	if !ok {
		return Result{}, errOperands("%q: address base must be a register", ins.Mnemonic)
	}
	offVal, symbolic, err := resolveImmediate(token.RValueOperand{Value: addr.Offset})
	if err != nil {
		return Result{}, err
	}
	if !symbolic && (offVal < -2048 || offVal > 2047) {
		return Result{}, errOperands("%q: offset %d does not fit 12 signed bits", ins.Mnemonic, offVal)
	}
	imm := uint32(offVal) & 0xFFF
	imm115 := (imm >> 5) & 0x7F
	imm40 := imm & 0x1F
	word := imm115<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 | uint32(desc.Funct3)<<12 | imm40<<7 | uint32(desc.Opcode)
	return Result{Word: word, Symbolic: symbolic}, nil
}

// encodeSB implements the SB (branch) format per the actual RISC-V spec
// table: imm[12]@31, imm[10:5]@25-30, rs2@20-24, rs1@15-19, funct3@12-14,
// imm[4:1]@8-11, imm[11]@7, opcode@0-6. original_source/src/codec/enc.rs
// shifts both imm[4:1] and imm[11] by 7, colliding them; spec §9 calls
// this out explicitly and directs implementers to the spec table instead.
func encodeSB(desc arch.InstructionDescriptor, ins token.Instruction) (Result, error) {
	if err := needOperands(ins, 3); err != nil {
		return Result{}, err
	}
	rs1, ok := asRegister(ins.Operands[0])
	if !ok {
		return Result{}, errOperands("%q: operand 1 must be a register", ins.Mnemonic)
	}
	rs2, ok := asRegister(ins.Operands[1])
	if !ok {
		return Result{}, errOperands("%q: operand 2 must be a register", ins.Mnemonic)
	}
	offVal, symbolic, err := resolveImmediate(ins.Operands[2])
	if err != nil {
		return Result{}, err
	}
	imm := uint32(offVal)
	imm12 := (imm >> 12) & 0x1
	imm105 := (imm >> 5) & 0x3F
	imm41 := (imm >> 1) & 0xF
	imm11 := (imm >> 11) & 0x1
	word := imm12<<31 | imm105<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 | uint32(desc.Funct3)<<12 | imm41<<8 | imm11<<7 | uint32(desc.Opcode)
	return Result{Word: word, Symbolic: symbolic}, nil
}

func encodeU(desc arch.InstructionDescriptor, ins token.Instruction) (Result, error) {
	if err := needOperands(ins, 2); err != nil {
		return Result{}, err
	}
	rd, ok := asRegister(ins.Operands[0])
	if !ok {
		return Result{}, errOperands("%q: operand 1 must be a register", ins.Mnemonic)
	}
	immVal, symbolic, err := resolveImmediate(ins.Operands[1])
	if err != nil {
		return Result{}, err
	}
	imm := uint32(immVal) & 0xFFFFF
	word := imm<<12 | uint32(rd)<<7 | uint32(desc.Opcode)
	return Result{Word: word, Symbolic: symbolic}, nil
}

// encodeUJ implements the UJ (jump) format per the actual RISC-V spec
// table: imm[20]@31, imm[10:1]@21-30, imm[11]@20, imm[19:12]@12-19,
// rd@7-11, opcode@0-6. original_source/src/codec/enc.rs shifts both
// imm[19:12] and imm[11] by 20, colliding them; corrected per spec §9.
func encodeUJ(desc arch.InstructionDescriptor, ins token.Instruction) (Result, error) {
	if err := needOperands(ins, 2); err != nil {
		return Result{}, err
	}
	rd, ok := asRegister(ins.Operands[0])
	if !ok {
		return Result{}, errOperands("%q: operand 1 must be a register", ins.Mnemonic)
	}
	offVal, symbolic, err := resolveImmediate(ins.Operands[1])
	if err != nil {
		return Result{}, err
	}
	imm := uint32(offVal)
	imm20 := (imm >> 20) & 0x1
	imm101 := (imm >> 1) & 0x3FF
	imm11 := (imm >> 11) & 0x1
	imm1912 := (imm >> 12) & 0xFF
	word := imm20<<31 | imm101<<21 | imm11<<20 | imm1912<<12 | uint32(rd)<<7 | uint32(desc.Opcode)
	return Result{Word: word, Symbolic: symbolic}, nil
}

func encodeAmo(desc arch.InstructionDescriptor, ins token.Instruction) (Result, error) {
	// lr.w/lr.d take no rs2: `lr.w rd, (rs1)`.
	isLoadReserved := desc.HasFunct5 && desc.Funct5 == 0b00010
	expected := 3
	if isLoadReserved {
		expected = 2
	}
	if err := needOperands(ins, expected); err != nil {
		return Result{}, err
	}
	rd, ok := asRegister(ins.Operands[0])
	if !ok {
		return Result{}, errOperands("%q: operand 1 must be a register", ins.Mnemonic)
	}
	var rs2 uint8
	addrIdx := 1
	if !isLoadReserved {
		rs2, ok = asRegister(ins.Operands[1])
		if !ok {
			return Result{}, errOperands("%q: operand 2 must be a register", ins.Mnemonic)
		}
		addrIdx = 2
	}
	addr, ok := ins.Operands[addrIdx].(token.Address)
	if !ok {
		return Result{}, errOperands("%q: final operand must be (rs1)", ins.Mnemonic)
	}
	rs1, ok := asRegisterRValue(addr.Base)
	if !ok {
		return Result{}, errOperands("%q: address base must be a register", ins.Mnemonic)
	}
	const aq, rl = 0, 0
	word := uint32(desc.Funct5)<<27 | uint32(aq)<<26 | uint32(rl)<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 | uint32(desc.Funct3)<<12 | uint32(rd)<<7 | uint32(desc.Opcode)
	return Result{Word: word}, nil
}

const defaultRoundingMode = 0b000 // dynamic rounding mode, per-operand rounding is not supported (spec §4.3)

func encodeFp(desc arch.InstructionDescriptor, ins token.Instruction) (Result, error) {
	var rd, rs1, rs2 uint8
	var ok bool
	switch {
	case desc.HasFixedRS2 && len(ins.Operands) == 2:
		// fsqrt, fcvt.*, fmv.x.w, fclass.s/d, fmv.w.x and friends: rd, rs1.
		rd, ok = asRegister(ins.Operands[0])
		if !ok {
			return Result{}, errOperands("%q: operand 1 must be a register", ins.Mnemonic)
		}
		rs1, ok = asRegister(ins.Operands[1])
		if !ok {
			return Result{}, errOperands("%q: operand 2 must be a register", ins.Mnemonic)
		}
		rs2 = desc.FixedRS2
	case len(ins.Operands) == 3:
		// fadd/fsub/fmul/fdiv/fsgnj*/fmin/fmax/feq/flt/fle: rd, rs1, rs2.
		rd, ok = asRegister(ins.Operands[0])
		if !ok {
			return Result{}, errOperands("%q: operand 1 must be a register", ins.Mnemonic)
		}
		rs1, ok = asRegister(ins.Operands[1])
		if !ok {
			return Result{}, errOperands("%q: operand 2 must be a register", ins.Mnemonic)
		}
		rs2, ok = asRegister(ins.Operands[2])
		if !ok {
			return Result{}, errOperands("%q: operand 3 must be a register", ins.Mnemonic)
		}
	default:
		return Result{}, errOperands("%q: unexpected operand count %d", ins.Mnemonic, len(ins.Operands))
	}
	// Mnemonics whose descriptor carries a funct3 (sign injection,
	// min/max, comparisons, fclass, fmv.x.*) use it in the frm slot.
	frm := uint32(defaultRoundingMode)
	if desc.HasFunct3 {
		frm = uint32(desc.Funct3)
	}
	word := uint32(desc.Funct5)<<27 | uint32(desc.FloatFormat)<<25 | uint32(rs2)<<20 | uint32(rs1)<<15 | frm<<12 | uint32(rd)<<7 | uint32(desc.Opcode)
	return Result{Word: word}, nil
}

// encodeSystem implements CSR instructions. Bit 2 of funct3
// (funct3&0b100) selects the 5-bit zero-extended-immediate form over the
// register form, per the RISC-V spec; original_source/src/codec/enc.rs
// checks funct3&0b1000 instead, which spec §9 identifies as a bug.
func encodeSystem(desc arch.InstructionDescriptor, ins token.Instruction) (Result, error) {
	if err := needOperands(ins, 3); err != nil {
		return Result{}, err
	}
	rd, ok := asRegister(ins.Operands[0])
	if !ok {
		return Result{}, errOperands("%q: operand 1 must be a register", ins.Mnemonic)
	}
	csrVal, _, err := resolveImmediate(ins.Operands[1])
	if err != nil {
		return Result{}, err
	}
	var srcField uint32
	if desc.Funct3&0b100 != 0 {
		uimmVal, symbolic, err := resolveImmediate(ins.Operands[2])
		if err != nil {
			return Result{}, err
		}
		if symbolic {
			return Result{}, errOperands("%q: uimm operand must be a constant", ins.Mnemonic)
		}
		srcField = uint32(uimmVal) & 0x1F
	} else {
		rs1, ok := asRegister(ins.Operands[2])
		if !ok {
			return Result{}, errOperands("%q: operand 3 must be a register", ins.Mnemonic)
		}
		srcField = uint32(rs1)
	}
	word := (uint32(csrVal)&0xFFF)<<20 | srcField<<15 | uint32(desc.Funct3)<<12 | uint32(rd)<<7 | uint32(desc.Opcode)
	return Result{Word: word}, nil
}

func encodeSystemCall(desc arch.InstructionDescriptor) (Result, error) {
	word := uint32(desc.Funct12)<<20 | uint32(desc.Opcode)
	return Result{Word: word}, nil
}

func encodeFence(desc arch.InstructionDescriptor, ins token.Instruction) (Result, error) {
	if err := needOperands(ins, 2); err != nil {
		return Result{}, err
	}
	predVal, _, err := resolveImmediate(ins.Operands[0])
	if err != nil {
		return Result{}, err
	}
	succVal, _, err := resolveImmediate(ins.Operands[1])
	if err != nil {
		return Result{}, err
	}
	imm := (uint32(predVal)&0xF)<<4 | uint32(succVal)&0xF
	word := imm<<20 | uint32(desc.Funct3)<<12 | uint32(desc.Opcode)
	return Result{Word: word}, nil
}
