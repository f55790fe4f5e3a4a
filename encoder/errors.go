package encoder

import "github.com/aokblast/sicxeasm/parser"

// undefinedSymbol builds the *resolution* failure for a name with no
// entry in the symbol table.
func undefinedSymbol(pos parser.Position, name string) error {
	return parser.NewError(pos, parser.ErrorUndefinedSymbol, "undefined symbol: "+name)
}

// displacementOutOfRange builds the *encoding* failure for a format-3
// symbol operand that fits neither PC-relative nor base-relative range.
// Such an operand is fatal; it is never silently encoded as a truncated
// absolute address.
func displacementOutOfRange(pos parser.Position, name string) error {
	return parser.NewError(pos, parser.ErrorEncoding, "displacement out of range for symbol: "+name)
}

func invalidExpression(pos parser.Position, message string) error {
	return parser.NewError(pos, parser.ErrorEncoding, message)
}
