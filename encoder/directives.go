package encoder

import (
	"fmt"
	"strings"

	"github.com/aokblast/sicxeasm/parser"
)

// encodeByte emits the object code for a BYTE directive: a 2-hex-digit
// zero-padded byte for an integer literal, or the uppercase hex
// encoding of each character of a string literal.
func encodeByte(expr *parser.Expression) (string, error) {
	lit := expr.Operand.Literal
	switch lit.Kind {
	case parser.LiteralInteger:
		return fmt.Sprintf("%02X", uint8(lit.Integer)), nil
	case parser.LiteralByteString:
		var b strings.Builder
		for i := 0; i < len(lit.ByteString); i++ {
			fmt.Fprintf(&b, "%02X", lit.ByteString[i])
		}
		return b.String(), nil
	default:
		return "", invalidExpression(expr.Pos, "BYTE operand must be an integer or a character string")
	}
}

// encodeWord emits 4 hex digits of a signed integer for a WORD
// directive, not the 6 a strict SIC/XE emitter would store.
func encodeWord(expr *parser.Expression) (string, error) {
	if expr.Operand.Literal.Kind != parser.LiteralInteger {
		return "", invalidExpression(expr.Pos, "WORD operand must be an integer")
	}
	return fmt.Sprintf("%04X", uint16(expr.Operand.Literal.Integer)), nil
}

// resolveBase resolves a BASE directive's symbol operand and returns
// the new base-register value. BASE emits no object code.
func resolveBase(expr *parser.Expression, symbols *parser.SymbolTable) (uint32, error) {
	if expr.Operand.Kind != parser.OperandSymbol {
		return 0, invalidExpression(expr.Pos, "BASE operand must be a symbol")
	}
	addr, ok := symbols.Lookup(expr.Operand.Symbol)
	if !ok {
		return 0, undefinedSymbol(expr.Pos, expr.Operand.Symbol)
	}
	return addr, nil
}
