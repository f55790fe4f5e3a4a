package tools

import (
	"strings"

	"github.com/aokblast/sicxeasm/parser"
)

// Columns are the canonical tab stops the formatter aligns to.
type Columns struct {
	Label   int
	Operate int
	Operand int
}

// DefaultColumns is the formatter's default layout: labels at column 0,
// commands at column 9, operands at column 18.
func DefaultColumns() Columns {
	return Columns{Label: 0, Operate: 9, Operand: 18}
}

// Format re-lexes each line and rewrites it at canonical column
// positions. It performs no validation or assembly; a line that would
// fail to parse is laid out the same way, with any lexemes past the
// operand column joined by single spaces. Blank lines stay empty.
func Format(lines []string) []string {
	return FormatWithColumns(lines, DefaultColumns())
}

// FormatWithColumns is Format with an explicit column layout.
func FormatWithColumns(lines []string, cols Columns) []string {
	out := make([]string, len(lines))

	for i, line := range lines {
		lexemes := parser.LexLine(line)
		if len(lexemes) == 0 {
			out[i] = ""
			continue
		}
		out[i] = formatLine(lexemes, cols)
	}

	return out
}

func formatLine(lexemes []string, cols Columns) string {
	var b strings.Builder

	if isCommandLexeme(lexemes[0]) {
		padTo(&b, cols.Operate)
		b.WriteString(lexemes[0])
		if len(lexemes) >= 2 {
			padTo(&b, cols.Operand)
			b.WriteString(strings.Join(lexemes[1:], " "))
		}
		return b.String()
	}

	padTo(&b, cols.Label)
	b.WriteString(lexemes[0])
	if len(lexemes) >= 2 {
		padTo(&b, cols.Operate)
		b.WriteString(lexemes[1])
	}
	if len(lexemes) >= 3 {
		padTo(&b, cols.Operand)
		b.WriteString(strings.Join(lexemes[2:], " "))
	}

	return b.String()
}

// isCommandLexeme reports whether s names a mnemonic or directive,
// ignoring a leading format-4 '+' decorator.
func isCommandLexeme(s string) bool {
	body := strings.TrimPrefix(s, "+")
	_, ok := parser.Commands[body]
	return ok
}

func padTo(b *strings.Builder, col int) {
	for b.Len() < col {
		b.WriteByte(' ')
	}
}
