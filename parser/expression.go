package parser

import "fmt"

// OperandKind distinguishes the two Operand shapes.
type OperandKind int

const (
	OperandLiteral OperandKind = iota
	OperandSymbol
)

// Operand is the tagged union {literal, symbol-name}.
type Operand struct {
	Kind    OperandKind
	Literal Literal
	Symbol  string
}

// Expression is one source line parsed into (optional label, command,
// optional operand, addressing-mode flags).
type Expression struct {
	Pos Position

	Label     string
	HasLabel  bool
	LabelText string

	Command     Command
	CommandText string

	Operand     Operand
	HasOperand  bool
	OperandText string

	Flags Flags
}

// BuildExpression applies the positional line grammar to one
// line's classified tokens and validates operand shape against the
// command's format.
func BuildExpression(pos Position, tokens []Token, flags Flags) (*Expression, error) {
	expr := &Expression{Pos: pos, Flags: flags}

	switch len(tokens) {
	case 1:
		if tokens[0].Kind != TokenCommand {
			return nil, NewError(pos, ErrorStructural, "a single-token line must be a command")
		}
		setCommand(expr, tokens[0])

	case 2:
		switch tokens[0].Kind {
		case TokenSymbol:
			setLabel(expr, tokens[0])
		case TokenCommand:
			setCommand(expr, tokens[0])
		default:
			return nil, NewError(pos, ErrorStructural, "first token of a two-token line must be a symbol or a command")
		}

		switch tokens[1].Kind {
		case TokenCommand:
			if expr.CommandText != "" {
				return nil, NewError(pos, ErrorStructural, "too many commands on one line")
			}
			setCommand(expr, tokens[1])
		case TokenSymbol:
			setOperandSymbol(expr, tokens[1])
		case TokenLiteral:
			setOperandLiteral(expr, tokens[1])
		}

	case 3:
		if tokens[0].Kind != TokenSymbol {
			return nil, NewError(pos, ErrorStructural, "first token of a three-token line must be a symbol")
		}
		setLabel(expr, tokens[0])

		if tokens[1].Kind != TokenCommand {
			return nil, NewError(pos, ErrorStructural, "second token of a three-token line must be a command")
		}
		setCommand(expr, tokens[1])

		switch tokens[2].Kind {
		case TokenLiteral:
			setOperandLiteral(expr, tokens[2])
		case TokenSymbol:
			setOperandSymbol(expr, tokens[2])
		default:
			return nil, NewError(pos, ErrorStructural, "third token of a three-token line must be an operand")
		}

	default:
		return nil, NewError(pos, ErrorStructural, "too many tokens in one expression")
	}

	if expr.CommandText == "" {
		return nil, NewError(pos, ErrorStructural, "expression has no command")
	}

	// Simple-addressing convention: a format-3/4 mnemonic with neither
	// N nor I set gets both.
	if expr.Command.Kind == CommandMnemonic && expr.Command.Mnemonic.Format == FormatThreeFour {
		if !expr.Flags.IsSet(FlagN) && !expr.Flags.IsSet(FlagI) {
			expr.Flags.Set(FlagN)
			expr.Flags.Set(FlagI)
		}
	}

	if err := validateExpression(expr); err != nil {
		return nil, err
	}

	return expr, nil
}

func setLabel(e *Expression, tok Token) {
	e.HasLabel = true
	e.Label = tok.Symbol
	e.LabelText = tok.Text
}

func setCommand(e *Expression, tok Token) {
	e.Command = tok.Command
	e.CommandText = tok.Text
}

func setOperandSymbol(e *Expression, tok Token) {
	e.HasOperand = true
	e.Operand = Operand{Kind: OperandSymbol, Symbol: tok.Symbol}
	e.OperandText = tok.Text
}

func setOperandLiteral(e *Expression, tok Token) {
	e.HasOperand = true
	e.Operand = Operand{Kind: OperandLiteral, Literal: tok.Literal}
	e.OperandText = tok.Text
}

// validateExpression checks the format-specific operand shape rules
// of each directive and instruction format.
func validateExpression(e *Expression) error {
	if e.Command.Kind == CommandDirective {
		switch e.Command.Directive {
		case DirStart, DirByte, DirWord, DirResb, DirResw:
			if !e.HasLabel || !e.HasOperand {
				return NewError(e.Pos, ErrorStructural, "directive requires both a label and an operand")
			}
			if e.Command.Directive == DirByte {
				if e.Operand.Kind == OperandLiteral && e.Operand.Literal.Kind == LiteralRegisterPair {
					return NewError(e.Pos, ErrorStructural, "BYTE operand must not be a register pair")
				}
				return nil
			}
			if e.Operand.Kind != OperandLiteral || e.Operand.Literal.Kind != LiteralInteger {
				return NewError(e.Pos, ErrorStructural, "directive operand must be an integer literal")
			}
			return nil

		case DirEnd, DirBase:
			if e.HasLabel {
				return NewError(e.Pos, ErrorStructural, "END/BASE directive must have no label")
			}
			return nil
		}
		return NewError(e.Pos, ErrorStructural, "unknown directive")
	}

	switch e.Command.Mnemonic.Format {
	case FormatOne:
		if e.Flags.Value() != 0 || e.HasOperand {
			return NewError(e.Pos, ErrorStructural, "format-1 instruction takes no operand and no addressing flags")
		}
		return nil

	case FormatTwo:
		if e.Flags.Value() != 0 || !e.HasOperand {
			return NewError(e.Pos, ErrorStructural, "format-2 instruction requires an operand and no addressing flags")
		}
		if e.Operand.Kind != OperandLiteral || e.Operand.Literal.Kind != LiteralRegisterPair {
			return NewError(e.Pos, ErrorStructural, "format-2 operand must be a register pair")
		}
		return nil

	case FormatThreeFour:
		if !e.HasOperand {
			return NewError(e.Pos, ErrorStructural, "format-3/4 instruction requires an operand")
		}
		if e.Operand.Kind == OperandLiteral && e.Operand.Literal.Kind == LiteralRegisterPair {
			return NewError(e.Pos, ErrorStructural, "format-3/4 operand must not be a register pair")
		}
		return nil
	}

	return fmt.Errorf("unknown instruction format")
}

// Len computes the expression's byte length.
func (e *Expression) Len() int {
	if e.Command.Kind == CommandMnemonic {
		n := e.Command.Mnemonic.Format.Len()
		if e.Flags.IsSet(FlagE) {
			n++
		}
		return n
	}

	switch e.Command.Directive {
	case DirResb:
		return e.Command.Directive.Len() * intOperand(e)
	case DirResw:
		return e.Command.Directive.Len() * intOperand(e)
	case DirByte:
		if e.Operand.Kind == OperandLiteral && e.Operand.Literal.Kind == LiteralByteString {
			return len(e.Operand.Literal.ByteString)
		}
		return e.Command.Directive.Len()
	default:
		return e.Command.Directive.Len()
	}
}

func intOperand(e *Expression) int {
	if e.Operand.Kind == OperandLiteral && e.Operand.Literal.Kind == LiteralInteger {
		return int(e.Operand.Literal.Integer)
	}
	return 0
}
