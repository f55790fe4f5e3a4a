package encoder

import "github.com/aokblast/sicxeasm/parser"

// Encoder is the second pass: it walks the resolved expression list and
// produces per-expression object code, tracking the running base
// register across BASE directives.
type Encoder struct {
	symbols *parser.SymbolTable
	base    *uint32
}

// NewEncoder creates an encoder bound to a first-pass symbol table.
func NewEncoder(symbols *parser.SymbolTable) *Encoder {
	return &Encoder{symbols: symbols}
}

// EncodeProgram encodes every expression except the leading START and
// trailing END, in order. RESB, RESW and BASE yield the empty string.
// The returned slice is aligned with expressions[1:len(expressions)-1].
func (e *Encoder) EncodeProgram(expressions []*parser.Expression, startAddr uint32) ([]string, error) {
	if len(expressions) < 2 {
		return nil, nil
	}

	results := make([]string, 0, len(expressions)-2)
	addr := startAddr

	for i, expr := range expressions {
		if i == 0 {
			addr += uint32(expr.Len())
			continue
		}
		if i == len(expressions)-1 {
			break
		}

		pc := addr + uint32(expr.Len())

		hex, err := e.encode(expr, pc)
		if err != nil {
			return nil, err
		}
		results = append(results, hex)

		addr = pc
	}

	return results, nil
}

// encode produces one expression's object code. pc is the address of
// the instruction following expr.
func (e *Encoder) encode(expr *parser.Expression, pc uint32) (string, error) {
	if expr.Command.Kind == parser.CommandDirective {
		switch expr.Command.Directive {
		case parser.DirResb, parser.DirResw:
			return "", nil
		case parser.DirByte:
			return encodeByte(expr)
		case parser.DirWord:
			return encodeWord(expr)
		case parser.DirBase:
			addr, err := resolveBase(expr, e.symbols)
			if err != nil {
				return "", err
			}
			e.base = &addr
			return "", nil
		default:
			return "", invalidExpression(expr.Pos, "START/END directive cannot appear in the body of a program")
		}
	}

	mnemonic := expr.Command.Mnemonic
	switch mnemonic.Format {
	case parser.FormatOne:
		return encodeFormatOne(mnemonic.Opcode), nil
	case parser.FormatTwo:
		return encodeFormatTwo(mnemonic.Opcode, expr)
	case parser.FormatThreeFour:
		return encodeFormatThreeFour(mnemonic.Opcode, expr, pc, e.base, e.symbols)
	default:
		return "", invalidExpression(expr.Pos, "unknown instruction format")
	}
}
