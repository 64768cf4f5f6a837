package arch

// table is the RV32/64I + Zicsr/ZiFencei + M + A + F + D instruction
// catalogue. Grounded on original_source/src/arch.rs's RV_ISA map: every
// entry's opcode/format/funct fields are carried over from that table.
// Quad-precision (Q) is not represented: it only repeats the D pattern at
// a width this implementation never exercises (no 128-bit float operand
// shape anywhere else in the pipeline), so it is dropped rather than
// cargo-culted in; see DESIGN.md.
var table = map[string]InstructionDescriptor{
	// --- RV32I ---
	"lui":   {Opcode: Lui, Format: FormatU, ISA: RV32I},
	"auipc": {Opcode: AuiPC, Format: FormatU, ISA: RV32I},
	"jal":   {Opcode: Jal, Format: FormatUJ, ISA: RV32I},
	"jalr":  withFunct3(InstructionDescriptor{Opcode: Jalr, Format: FormatI, ISA: RV32I}, 0b000),

	"beq":  withFunct3(InstructionDescriptor{Opcode: Branch, Format: FormatSB, ISA: RV32I}, 0b000),
	"bne":  withFunct3(InstructionDescriptor{Opcode: Branch, Format: FormatSB, ISA: RV32I}, 0b001),
	"blt":  withFunct3(InstructionDescriptor{Opcode: Branch, Format: FormatSB, ISA: RV32I}, 0b100),
	"bge":  withFunct3(InstructionDescriptor{Opcode: Branch, Format: FormatSB, ISA: RV32I}, 0b101),
	"bltu": withFunct3(InstructionDescriptor{Opcode: Branch, Format: FormatSB, ISA: RV32I}, 0b110),
	"bgeu": withFunct3(InstructionDescriptor{Opcode: Branch, Format: FormatSB, ISA: RV32I}, 0b111),

	"lb":  withFunct3(InstructionDescriptor{Opcode: Load, Format: FormatI, ISA: RV32I}, 0b000),
	"lh":  withFunct3(InstructionDescriptor{Opcode: Load, Format: FormatI, ISA: RV32I}, 0b001),
	"lw":  withFunct3(InstructionDescriptor{Opcode: Load, Format: FormatI, ISA: RV32I}, 0b010),
	"lbu": withFunct3(InstructionDescriptor{Opcode: Load, Format: FormatI, ISA: RV32I}, 0b100),
	"lhu": withFunct3(InstructionDescriptor{Opcode: Load, Format: FormatI, ISA: RV32I}, 0b101),

	"sb": withFunct3(InstructionDescriptor{Opcode: Store, Format: FormatS, ISA: RV32I}, 0b000),
	"sh": withFunct3(InstructionDescriptor{Opcode: Store, Format: FormatS, ISA: RV32I}, 0b001),
	"sw": withFunct3(InstructionDescriptor{Opcode: Store, Format: FormatS, ISA: RV32I}, 0b010),

	"addi":  withFunct3(InstructionDescriptor{Opcode: OpImm, Format: FormatI, ISA: RV32I}, 0b000),
	"slti":  withFunct3(InstructionDescriptor{Opcode: OpImm, Format: FormatI, ISA: RV32I}, 0b010),
	"sltiu": withFunct3(InstructionDescriptor{Opcode: OpImm, Format: FormatI, ISA: RV32I}, 0b011),
	"xori":  withFunct3(InstructionDescriptor{Opcode: OpImm, Format: FormatI, ISA: RV32I}, 0b100),
	"ori":   withFunct3(InstructionDescriptor{Opcode: OpImm, Format: FormatI, ISA: RV32I}, 0b110),
	"andi":  withFunct3(InstructionDescriptor{Opcode: OpImm, Format: FormatI, ISA: RV32I}, 0b111),
	"slli":  withShift(withFunct3(InstructionDescriptor{Opcode: OpImm, Format: FormatI, ISA: RV32I}, 0b001), ShiftLL),
	"srli":  withShift(withFunct3(InstructionDescriptor{Opcode: OpImm, Format: FormatI, ISA: RV32I}, 0b101), ShiftRL),
	"srai":  withShift(withFunct3(InstructionDescriptor{Opcode: OpImm, Format: FormatI, ISA: RV32I}, 0b101), ShiftRA),

	"add": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: RV32I}, 0b000), 0b0000000),
	"sub": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: RV32I}, 0b000), 0b0100000),
	"sll": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: RV32I}, 0b001), 0b0000000),
	"slt": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: RV32I}, 0b010), 0b0000000),
	"sltu": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: RV32I}, 0b011), 0b0000000),
	"xor": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: RV32I}, 0b100), 0b0000000),
	"srl": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: RV32I}, 0b101), 0b0000000),
	"sra": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: RV32I}, 0b101), 0b0100000),
	"or":  withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: RV32I}, 0b110), 0b0000000),
	"and": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: RV32I}, 0b111), 0b0000000),

	"fence": withFunct3(InstructionDescriptor{Opcode: MiscMem, Format: FormatFence, ISA: RV32I}, 0b000),

	"ecall":  withFunct12(InstructionDescriptor{Opcode: System, Format: FormatSystemCall, ISA: RV32I}, 0b000000000000),
	"ebreak": withFunct12(InstructionDescriptor{Opcode: System, Format: FormatSystemCall, ISA: RV32I}, 0b000000000001),

	// --- Zicsr ---
	"csrrw":  withFunct3(InstructionDescriptor{Opcode: System, Format: FormatSystem, ISA: Zicsr}, 0b001),
	"csrrs":  withFunct3(InstructionDescriptor{Opcode: System, Format: FormatSystem, ISA: Zicsr}, 0b010),
	"csrrc":  withFunct3(InstructionDescriptor{Opcode: System, Format: FormatSystem, ISA: Zicsr}, 0b011),
	"csrrwi": withFunct3(InstructionDescriptor{Opcode: System, Format: FormatSystem, ISA: Zicsr}, 0b101),
	"csrrsi": withFunct3(InstructionDescriptor{Opcode: System, Format: FormatSystem, ISA: Zicsr}, 0b110),
	"csrrci": withFunct3(InstructionDescriptor{Opcode: System, Format: FormatSystem, ISA: Zicsr}, 0b111),

	// --- ZiFencei ---
	"fence.i": withFunct3(InstructionDescriptor{Opcode: MiscMem, Format: FormatI, ISA: ZiFencei}, 0b001),

	// --- RV64I additions ---
	"addiw": withFunct3(InstructionDescriptor{Opcode: OpImm32, Format: FormatI, ISA: RV64I}, 0b000),
	"slliw": withShift(withFunct3(InstructionDescriptor{Opcode: OpImm32, Format: FormatI, ISA: RV64I}, 0b001), ShiftLL),
	"srliw": withShift(withFunct3(InstructionDescriptor{Opcode: OpImm32, Format: FormatI, ISA: RV64I}, 0b101), ShiftRL),
	"sraiw": withShift(withFunct3(InstructionDescriptor{Opcode: OpImm32, Format: FormatI, ISA: RV64I}, 0b101), ShiftRA),

	"addw": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op32, Format: FormatR, ISA: RV64I}, 0b000), 0b0000000),
	"subw": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op32, Format: FormatR, ISA: RV64I}, 0b000), 0b0100000),
	"sllw": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op32, Format: FormatR, ISA: RV64I}, 0b001), 0b0000000),
	"srlw": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op32, Format: FormatR, ISA: RV64I}, 0b101), 0b0000000),
	"sraw": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op32, Format: FormatR, ISA: RV64I}, 0b101), 0b0100000),

	"ld":  withFunct3(InstructionDescriptor{Opcode: Load, Format: FormatI, ISA: RV64I}, 0b011),
	"lwu": withFunct3(InstructionDescriptor{Opcode: Load, Format: FormatI, ISA: RV64I}, 0b110),
	"sd":  withFunct3(InstructionDescriptor{Opcode: Store, Format: FormatS, ISA: RV64I}, 0b011),

	// --- RV128I additions ---
	"addid": withFunct3(InstructionDescriptor{Opcode: OpImm64, Format: FormatI, ISA: RV128I}, 0b000),
	"sllid": withShift(withFunct3(InstructionDescriptor{Opcode: OpImm64, Format: FormatI, ISA: RV128I}, 0b001), ShiftLL),
	"srlid": withShift(withFunct3(InstructionDescriptor{Opcode: OpImm64, Format: FormatI, ISA: RV128I}, 0b101), ShiftRL),
	"sraid": withShift(withFunct3(InstructionDescriptor{Opcode: OpImm64, Format: FormatI, ISA: RV128I}, 0b101), ShiftRA),
	"addd":  withFunct7(withFunct3(InstructionDescriptor{Opcode: Op64, Format: FormatR, ISA: RV128I}, 0b000), 0b0000000),
	"subd":  withFunct7(withFunct3(InstructionDescriptor{Opcode: Op64, Format: FormatR, ISA: RV128I}, 0b000), 0b0100000),
	"slld":  withFunct7(withFunct3(InstructionDescriptor{Opcode: Op64, Format: FormatR, ISA: RV128I}, 0b001), 0b0000000),
	"srld":  withFunct7(withFunct3(InstructionDescriptor{Opcode: Op64, Format: FormatR, ISA: RV128I}, 0b101), 0b0000000),
	"srad":  withFunct7(withFunct3(InstructionDescriptor{Opcode: Op64, Format: FormatR, ISA: RV128I}, 0b101), 0b0100000),
	"lq":    withFunct3(InstructionDescriptor{Opcode: MiscMem, Format: FormatI, ISA: RV128I}, 0b010),
	"ldu":   withFunct3(InstructionDescriptor{Opcode: Load, Format: FormatI, ISA: RV128I}, 0b111),
	"sq":    withFunct3(InstructionDescriptor{Opcode: Store, Format: FormatS, ISA: RV128I}, 0b100),

	// --- M extension ---
	"mul":    withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: ExtM}, 0b000), 0b0000001),
	"mulh":   withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: ExtM}, 0b001), 0b0000001),
	"mulhsu": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: ExtM}, 0b010), 0b0000001),
	"mulhu":  withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: ExtM}, 0b011), 0b0000001),
	"div":    withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: ExtM}, 0b100), 0b0000001),
	"divu":   withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: ExtM}, 0b101), 0b0000001),
	"rem":    withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: ExtM}, 0b110), 0b0000001),
	"remu":   withFunct7(withFunct3(InstructionDescriptor{Opcode: Op, Format: FormatR, ISA: ExtM}, 0b111), 0b0000001),

	"mulw":  withFunct7(withFunct3(InstructionDescriptor{Opcode: Op32, Format: FormatR, ISA: ExtM}, 0b000), 0b0000001),
	"divw":  withFunct7(withFunct3(InstructionDescriptor{Opcode: Op32, Format: FormatR, ISA: ExtM}, 0b100), 0b0000001),
	"divuw": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op32, Format: FormatR, ISA: ExtM}, 0b101), 0b0000001),
	"remw":  withFunct7(withFunct3(InstructionDescriptor{Opcode: Op32, Format: FormatR, ISA: ExtM}, 0b110), 0b0000001),
	"remuw": withFunct7(withFunct3(InstructionDescriptor{Opcode: Op32, Format: FormatR, ISA: ExtM}, 0b111), 0b0000001),

	// --- A extension (word width) ---
	"lr.w":      withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b010), 0b00010),
	"sc.w":      withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b010), 0b00011),
	"amoswap.w": withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b010), 0b00001),
	"amoadd.w":  withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b010), 0b00000),
	"amoxor.w":  withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b010), 0b00100),
	"amoand.w":  withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b010), 0b01100),
	"amoor.w":   withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b010), 0b01000),
	"amomin.w":  withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b010), 0b10000),
	"amomax.w":  withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b010), 0b10100),
	"amominu.w": withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b010), 0b11000),
	"amomaxu.w": withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b010), 0b11100),

	// --- A extension (doubleword width) ---
	"lr.d":      withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b011), 0b00010),
	"sc.d":      withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b011), 0b00011),
	"amoswap.d": withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b011), 0b00001),
	"amoadd.d":  withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b011), 0b00000),
	"amoxor.d":  withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b011), 0b00100),
	"amoand.d":  withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b011), 0b01100),
	"amoor.d":   withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b011), 0b01000),
	"amomin.d":  withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b011), 0b10000),
	"amomax.d":  withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b011), 0b10100),
	"amominu.d": withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b011), 0b11000),
	"amomaxu.d": withFunct5(withFunct3(InstructionDescriptor{Opcode: Amo, Format: FormatAmo, ISA: ExtA}, 0b011), 0b11100),

	// --- F extension ---
	"flw": withFunct3(InstructionDescriptor{Opcode: LoadFp, Format: FormatI, ISA: ExtF}, 0b010),
	"fsw": withFunct3(InstructionDescriptor{Opcode: StoreFp, Format: FormatS, ISA: ExtF}, 0b010),

	"fmadd.s":  withFloatFormat(InstructionDescriptor{Opcode: MAdd, Format: FormatR4, ISA: ExtF}, FloatS),
	"fmsub.s":  withFloatFormat(InstructionDescriptor{Opcode: MSub, Format: FormatR4, ISA: ExtF}, FloatS),
	"fnmsub.s": withFloatFormat(InstructionDescriptor{Opcode: NmSub, Format: FormatR4, ISA: ExtF}, FloatS),
	"fnmadd.s": withFloatFormat(InstructionDescriptor{Opcode: NmAdd, Format: FormatR4, ISA: ExtF}, FloatS),

	"fadd.s":  withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b00000), FloatS),
	"fsub.s":  withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b00001), FloatS),
	"fmul.s":  withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b00010), FloatS),
	"fdiv.s":  withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b00011), FloatS),
	"fsqrt.s": withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b01011), FloatS), 0b00000),

	"fsgnj.s":  withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b00100), FloatS), 0b000),
	"fsgnjn.s": withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b00100), FloatS), 0b001),
	"fsgnjx.s": withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b00100), FloatS), 0b010),
	"fmin.s":   withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b00101), FloatS), 0b000),
	"fmax.s":   withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b00101), FloatS), 0b001),

	"fcvt.w.s":  withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b11000), FloatS), 0b00000),
	"fcvt.wu.s": withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b11000), FloatS), 0b00001),
	"fcvt.s.w":  withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b11010), FloatS), 0b00000),
	"fcvt.s.wu": withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b11010), FloatS), 0b00001),

	"fmv.x.w": withFixedRS2(withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b11100), FloatS), 0b000), 0b00000),
	"fclass.s": withFixedRS2(withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b11100), FloatS), 0b001), 0b00000),
	"fmv.w.x": withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b11110), FloatS), 0b00000),

	"feq.s": withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b10100), FloatS), 0b010),
	"flt.s": withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b10100), FloatS), 0b001),
	"fle.s": withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtF}, 0b10100), FloatS), 0b000),

	// --- D extension ---
	"fld": withFunct3(InstructionDescriptor{Opcode: LoadFp, Format: FormatI, ISA: ExtD}, 0b011),
	"fsd": withFunct3(InstructionDescriptor{Opcode: StoreFp, Format: FormatS, ISA: ExtD}, 0b011),

	"fmadd.d":  withFloatFormat(InstructionDescriptor{Opcode: MAdd, Format: FormatR4, ISA: ExtD}, FloatD),
	"fmsub.d":  withFloatFormat(InstructionDescriptor{Opcode: MSub, Format: FormatR4, ISA: ExtD}, FloatD),
	"fnmsub.d": withFloatFormat(InstructionDescriptor{Opcode: NmSub, Format: FormatR4, ISA: ExtD}, FloatD),
	"fnmadd.d": withFloatFormat(InstructionDescriptor{Opcode: NmAdd, Format: FormatR4, ISA: ExtD}, FloatD),

	"fadd.d":  withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b00000), FloatD),
	"fsub.d":  withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b00001), FloatD),
	"fmul.d":  withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b00010), FloatD),
	"fdiv.d":  withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b00011), FloatD),
	"fsqrt.d": withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b01011), FloatD), 0b00000),

	"fsgnj.d":  withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b00100), FloatD), 0b000),
	"fsgnjn.d": withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b00100), FloatD), 0b001),
	"fsgnjx.d": withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b00100), FloatD), 0b010),
	"fmin.d":   withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b00101), FloatD), 0b000),
	"fmax.d":   withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b00101), FloatD), 0b001),

	"fcvt.s.d": withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b01000), FloatS), 0b00001),
	"fcvt.d.s": withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b01000), FloatD), 0b00000),

	"fcvt.w.d":  withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b11000), FloatD), 0b00000),
	"fcvt.wu.d": withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b11000), FloatD), 0b00001),
	"fcvt.d.w":  withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b11010), FloatD), 0b00000),
	"fcvt.d.wu": withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b11010), FloatD), 0b00001),

	"fclass.d": withFixedRS2(withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b11100), FloatD), 0b001), 0b00000),

	"feq.d": withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b10100), FloatD), 0b010),
	"flt.d": withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b10100), FloatD), 0b001),
	"fle.d": withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b10100), FloatD), 0b000),

	// fmv.x.d / fmv.d.x and fcvt.l*.d are RV64-only float/integer moves; kept
	// here since the table is width-tagged via ISA, not opcode.
	"fmv.x.d": withFixedRS2(withFunct3(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b11100), FloatD), 0b000), 0b00000),
	"fmv.d.x": withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b11110), FloatD), 0b00000),

	"fcvt.l.d":  withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b11000), FloatD), 0b00010),
	"fcvt.lu.d": withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b11000), FloatD), 0b00011),
	"fcvt.d.l":  withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b11010), FloatD), 0b00010),
	"fcvt.d.lu": withFixedRS2(withFloatFormat(withFunct5(InstructionDescriptor{Opcode: OpFp, Format: FormatFp, ISA: ExtD}, 0b11010), FloatD), 0b00011),
}
