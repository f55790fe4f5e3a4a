package listing

import (
	"fmt"
	"strings"

	"github.com/aokblast/sicxeasm/parser"
)

// Row is one listing line: line number, address, label/operate/operand
// columns, and the object code for the expression.
type Row struct {
	Line    int
	Address uint32
	Label   string
	Operate string
	Operand string
	Opcode  string
	Source  string
}

// Options controls listing column rendering.
type Options struct {
	AddressWidth int
	ShowSource   bool
}

// DefaultOptions mirrors config.DefaultConfig's listing knobs.
func DefaultOptions() Options {
	return Options{AddressWidth: 8, ShowSource: true}
}

// BuildRows walks program's expressions in address order and pairs each
// with its encoded object code (hexCodes, aligned with the body slice
// expressions[1:len-1]) and, optionally, its raw source line.
func BuildRows(program *parser.Program, hexCodes []string, sourceLines []string) []Row {
	rows := make([]Row, 0, len(program.Expressions))
	addr := program.StartAddress
	last := len(program.Expressions) - 1

	for i, expr := range program.Expressions {
		row := Row{
			Line:    expr.Pos.Line,
			Address: addr,
			Label:   expr.Label,
			Operate: expr.CommandText,
			Operand: expr.OperandText,
		}
		if i > 0 && i < last {
			row.Opcode = hexCodes[i-1]
		}
		if sourceLines != nil && i < len(sourceLines) {
			row.Source = sourceLines[i]
		}
		rows = append(rows, row)
		addr += uint32(expr.Len())
	}

	return rows
}

// FormatRows renders rows as a header line followed by one fixed-width
// line per row.
func FormatRows(rows []Row, opts Options) []string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatHeader(opts))

	for _, row := range rows {
		lines = append(lines, formatRow(row, opts))
	}

	return lines
}

func formatHeader(opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%4s %*s %12s %12s %12s %s", "line", opts.AddressWidth, "address", "label", "operate", "operand", "opcode")
	if opts.ShowSource {
		b.WriteString(" source")
	}
	return b.String()
}

func formatRow(row Row, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%4d %0*X %12s %12s %12s %s", row.Line, opts.AddressWidth, row.Address, row.Label, row.Operate, row.Operand, row.Opcode)
	if opts.ShowSource {
		fmt.Fprintf(&b, " %s", row.Source)
	}
	return b.String()
}
