package wasmgen

// Opcode mnemonics, trimmed from wippyai-wasm-runtime's
// wat/internal/opcode.table to exactly the instructions the conversion
// engine (component C) and expression lowerer (component F) emit: control,
// local access, constants, the four arithmetic/bitwise op families, and the
// cross-type conversion instructions. No control-flow (block/loop/br/if),
// call, or memory instructions exist yet — §4.E's body compiler only
// lowers a single top-level return statement per function.
const (
	opUnreachable byte = 0x00
	opEnd         byte = 0x0B

	opLocalGet byte = 0x20

	opI32Const byte = 0x41
	opI64Const byte = 0x42
	opF32Const byte = 0x43
	opF64Const byte = 0x44

	opI32Add   byte = 0x6A
	opI32Sub   byte = 0x6B
	opI32Mul   byte = 0x6C
	opI32DivS  byte = 0x6D
	opI32DivU  byte = 0x6E
	opI32RemS  byte = 0x6F
	opI32RemU  byte = 0x70
	opI32And   byte = 0x71
	opI32Or    byte = 0x72
	opI32Xor   byte = 0x73
	opI32Shl   byte = 0x74
	opI32ShrS  byte = 0x75
	opI32ShrU  byte = 0x76

	opI64Add  byte = 0x7C
	opI64Sub  byte = 0x7D
	opI64Mul  byte = 0x7E
	opI64DivS byte = 0x7F
	opI64DivU byte = 0x80
	opI64RemS byte = 0x81
	opI64RemU byte = 0x82
	opI64And  byte = 0x83
	opI64Or   byte = 0x84
	opI64Xor  byte = 0x85
	opI64Shl  byte = 0x86
	opI64ShrS byte = 0x87
	opI64ShrU byte = 0x88

	opF32Add byte = 0x92
	opF32Sub byte = 0x93
	opF32Mul byte = 0x94
	opF32Div byte = 0x95

	opF64Add byte = 0xA0
	opF64Sub byte = 0xA1
	opF64Mul byte = 0xA2
	opF64Div byte = 0xA3

	opI32WrapI64     byte = 0xA7
	opI32TruncF32S   byte = 0xA8
	opI32TruncF32U   byte = 0xA9
	opI32TruncF64S   byte = 0xAA
	opI32TruncF64U   byte = 0xAB
	opI64ExtendI32S  byte = 0xAC
	opI64ExtendI32U  byte = 0xAD
	opI64TruncF32S   byte = 0xAE
	opI64TruncF32U   byte = 0xAF
	opI64TruncF64S   byte = 0xB0
	opI64TruncF64U   byte = 0xB1
	opF32ConvertI32S byte = 0xB2
	opF32ConvertI32U byte = 0xB3
	opF32ConvertI64S byte = 0xB4
	opF32ConvertI64U byte = 0xB5
	opF32DemoteF64   byte = 0xB6
	opF64ConvertI32S byte = 0xB7
	opF64ConvertI32U byte = 0xB8
	opF64ConvertI64S byte = 0xB9
	opF64ConvertI64U byte = 0xBA
	opF64PromoteF32  byte = 0xBB
)
