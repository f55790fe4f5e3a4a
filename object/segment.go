package object

import (
	"strings"

	"github.com/aokblast/sicxeasm/parser"
)

// DefaultBudget is the maximum byte length of a Text record. A
// configured override must never exceed this.
const DefaultBudget = 0x1D

func isReserve(expr *parser.Expression) bool {
	return expr.Command.Kind == parser.CommandDirective &&
		(expr.Command.Directive == parser.DirResb || expr.Command.Directive == parser.DirResw)
}

// Segment groups the body expressions (excluding the leading START and
// trailing END) into Text records, subject to budget and mandatory
// breaks at RESB/RESW. hexCodes must be aligned with
// expressions, index for index, as returned by encoder.EncodeProgram.
func Segment(expressions []*parser.Expression, hexCodes []string, startAddr uint32, budget int) []Text {
	var texts []Text

	addr := startAddr
	var curStart uint32
	var curCode strings.Builder
	hasContent := false

	for i, expr := range expressions {
		length := uint32(expr.Len())

		if hasContent && int(addr-curStart)+int(length) > budget {
			texts = append(texts, Text{StartAddress: curStart, Length: addr - curStart, Code: curCode.String()})
			curCode.Reset()
			hasContent = false
		}

		if isReserve(expr) {
			if hasContent {
				texts = append(texts, Text{StartAddress: curStart, Length: addr - curStart, Code: curCode.String()})
				curCode.Reset()
				hasContent = false
			}
		} else {
			if !hasContent {
				curStart = addr
			}
			hasContent = true
			curCode.WriteString(hexCodes[i])
		}

		addr += length
	}

	if hasContent {
		texts = append(texts, Text{StartAddress: curStart, Length: addr - curStart, Code: curCode.String()})
	}

	return texts
}
