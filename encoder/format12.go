package encoder

import (
	"fmt"

	"github.com/aokblast/sicxeasm/parser"
)

// encodeFormatOne writes the opcode into the high byte of a 3-byte
// field, padded right with zero bytes.
func encodeFormatOne(opcode byte) string {
	code := uint32(opcode) << 16
	return fmt.Sprintf("%06X", code)
}

// encodeFormatTwo packs opcode and both register operands into 4 hex
// digits: opcode<<8 | r1<<4 | r2.
func encodeFormatTwo(opcode byte, expr *parser.Expression) (string, error) {
	if expr.Operand.Kind != parser.OperandLiteral || expr.Operand.Literal.Kind != parser.LiteralRegisterPair {
		return "", invalidExpression(expr.Pos, "format-2 operand must be a register pair")
	}
	lit := expr.Operand.Literal
	code := uint32(opcode)<<8 | uint32(lit.RegisterOne)<<4 | uint32(lit.RegisterTwo)
	return fmt.Sprintf("%04X", code), nil
}
