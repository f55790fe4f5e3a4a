package parser

import (
	"errors"
	"fmt"
	"strconv"
)

// Program is the parsed, first-pass-resolved form of a source file: an
// ordered expression list plus the symbol table and header facts first
// pass computes from it.
type Program struct {
	Expressions []*Expression
	SymbolTable *SymbolTable

	ProgramName  string
	StartAddress uint32
	Length       uint32
}

// ParseLines runs the lexer, classifier and expression builder over
// every source line. A blank line tokenizes to zero lexemes, which the
// expression builder rejects: there is no comment or blank-line syntax
// beyond what the tokenizer naturally discards, and an empty lexeme
// sequence is not naturally discarded.
func ParseLines(lines []string, filename string) ([]*Expression, error) {
	expressions := make([]*Expression, 0, len(lines))

	for i, line := range lines {
		lineNo := i + 1
		lexemes := NewLexer(filename, lineNo).Lex(line)

		pos := Position{filename, lineNo, 1}

		tokens, flags, err := Classify(lexemes)
		if err != nil {
			var perr *Error
			if errors.As(err, &perr) {
				perr.Pos = pos
				perr.Context = line
				return nil, perr
			}
			return nil, NewErrorWithContext(pos, ErrorLexical, err.Error(), line)
		}

		expr, err := BuildExpression(pos, tokens, flags)
		if err != nil {
			return nil, err
		}
		expressions = append(expressions, expr)
	}

	return expressions, nil
}

// startAddressFromLexeme parses the START operand once, from its
// original lexeme text, as hexadecimal. It is never decoded as decimal
// and re-parsed.
func startAddressFromLexeme(expr *Expression) (uint32, error) {
	addr, err := strconv.ParseUint(expr.OperandText, 16, 32)
	if err != nil {
		return 0, NewError(expr.Pos, ErrorStructural, fmt.Sprintf("START operand %q is not a valid hexadecimal address", expr.OperandText))
	}
	return uint32(addr), nil
}

// FirstPass resolves the symbol table and total program length. It
// assumes expressions[0] is the START directive.
func FirstPass(expressions []*Expression) (*SymbolTable, uint32, uint32, error) {
	if len(expressions) == 0 {
		return nil, 0, 0, NewError(Position{}, ErrorStructural, "empty program")
	}

	start := expressions[0]
	if start.Command.Kind != CommandDirective || start.Command.Directive != DirStart {
		return nil, 0, 0, NewError(start.Pos, ErrorStructural, "program must begin with a START directive")
	}

	startAddr, err := startAddressFromLexeme(start)
	if err != nil {
		return nil, 0, 0, err
	}

	symbols := NewSymbolTable()
	addr := startAddr

	for _, expr := range expressions {
		if expr.HasLabel {
			if err := symbols.Define(expr.Pos, expr.Label, addr); err != nil {
				return nil, 0, 0, err
			}
		}
		addr += uint32(expr.Len())
	}

	return symbols, startAddr, addr - startAddr, nil
}

// ParseProgram runs lexing, classification, expression building and
// first pass over a whole source file.
func ParseProgram(lines []string, filename string) (*Program, error) {
	expressions, err := ParseLines(lines, filename)
	if err != nil {
		return nil, err
	}

	symbols, startAddr, length, err := FirstPass(expressions)
	if err != nil {
		return nil, err
	}

	last := expressions[len(expressions)-1]
	if last.Command.Kind != CommandDirective || last.Command.Directive != DirEnd {
		return nil, NewError(last.Pos, ErrorStructural, "program must end with an END directive")
	}

	return &Program{
		Expressions:  expressions,
		SymbolTable:  symbols,
		ProgramName:  expressions[0].Label,
		StartAddress: startAddr,
		Length:       length,
	}, nil
}
