package encoder

import (
	"fmt"

	"github.com/aokblast/sicxeasm/parser"
)

// displacementPolicy implements the format-3 symbol-operand addressing
// decision: prefer PC-relative, fall back to base-relative, otherwise
// report failure rather than silently writing the absolute address.
func displacementPolicy(target, pc uint32, base *uint32) (int64, parser.Flag, bool) {
	d := int64(target) - int64(pc)
	if d >= -2048 && d <= 2047 {
		return d, parser.FlagP, true
	}
	if base != nil {
		d2 := int64(target) - int64(*base)
		if d2 >= 0 && d2 <= 4095 {
			return d2, parser.FlagB, true
		}
	}
	return 0, 0, false
}

// encodeFormatThreeFour produces the 6- or 8-hex-digit object code for
// a format-3/4 mnemonic. pc is the address of the
// instruction following expr, already advanced past expr's length.
func encodeFormatThreeFour(opcode byte, expr *parser.Expression, pc uint32, base *uint32, symbols *parser.SymbolTable) (string, error) {
	opcodeMasked := uint32(opcode) &^ 0x03
	flags := expr.Flags

	var addr uint32

	switch expr.Operand.Kind {
	case parser.OperandSymbol:
		target, ok := symbols.Lookup(expr.Operand.Symbol)
		if !ok {
			return "", undefinedSymbol(expr.Pos, expr.Operand.Symbol)
		}
		if flags.IsSet(parser.FlagE) {
			addr = target & 0xFFFFF
		} else {
			d, flag, found := displacementPolicy(target, pc, base)
			if !found {
				return "", displacementOutOfRange(expr.Pos, expr.Operand.Symbol)
			}
			flags.Set(flag)
			addr = uint32(d) & 0xFFF
		}

	case parser.OperandLiteral:
		if expr.Operand.Literal.Kind != parser.LiteralInteger {
			return "", invalidExpression(expr.Pos, "format-3/4 literal operand must be an integer")
		}
		num := uint32(expr.Operand.Literal.Integer)
		if flags.IsSet(parser.FlagE) {
			addr = num & 0xFFFFF
		} else {
			addr = num & 0xFFF
		}

	default:
		return "", invalidExpression(expr.Pos, "format-3/4 instruction requires an operand")
	}

	// Persist the resolved flag word so downstream consumers (the
	// linter's unused-BASE check) can observe which addressing mode the
	// encoder actually chose.
	expr.Flags = flags

	if flags.IsSet(parser.FlagE) {
		code := opcodeMasked<<24 | uint32(flags.Value())<<20 | addr
		return fmt.Sprintf("%08X", code), nil
	}

	code := opcodeMasked<<16 | uint32(flags.Value())<<12 | addr
	return fmt.Sprintf("%06X", code), nil
}
