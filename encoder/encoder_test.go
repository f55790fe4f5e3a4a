package encoder

import (
	"testing"

	"github.com/aokblast/sicxeasm/parser"
)

func encodeLines(t *testing.T, lines []string) (*parser.Program, []string) {
	t.Helper()
	program, err := parser.ParseProgram(lines, "t.asm")
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	enc := NewEncoder(program.SymbolTable)
	hexCodes, err := enc.EncodeProgram(program.Expressions, program.StartAddress)
	if err != nil {
		t.Fatalf("EncodeProgram: %v", err)
	}
	return program, hexCodes
}

func TestEncodeHeaderOnlyProgram(t *testing.T) {
	_, hexCodes := encodeLines(t, []string{
		"COPY START 1000",
		"END COPY",
	})
	if len(hexCodes) != 0 {
		t.Errorf("expected no body object code, got %v", hexCodes)
	}
}

func TestEncodeFormatOneRSUB(t *testing.T) {
	_, hexCodes := encodeLines(t, []string{
		"COPY START 1000",
		"FIRST RSUB",
		"END FIRST",
	})
	if len(hexCodes) != 1 || hexCodes[0] != "4C0000" {
		t.Errorf("got %v, want [4C0000]", hexCodes)
	}
}

func TestEncodeFormatTwoCOMPR(t *testing.T) {
	_, hexCodes := encodeLines(t, []string{
		"COPY START 1000",
		"FIRST COMPR A,B",
		"END FIRST",
	})
	if len(hexCodes) != 1 || hexCodes[0] != "A003" {
		t.Errorf("got %v, want [A003]", hexCodes)
	}
}

func TestEncodeFormatThreePCRelative(t *testing.T) {
	_, hexCodes := encodeLines(t, []string{
		"COPY START 1000",
		"FIRST LDA ALPHA",
		"ALPHA RESW 1",
		"END FIRST",
	})
	if len(hexCodes) != 2 {
		t.Fatalf("expected 2 body codes, got %v", hexCodes)
	}
	if hexCodes[0] != "032000" {
		t.Errorf("got %q, want 032000 (LDA ALPHA, zero PC-relative displacement)", hexCodes[0])
	}
	if hexCodes[1] != "" {
		t.Errorf("RESW should produce no object code, got %q", hexCodes[1])
	}
}

func TestEncodeFormatFourExtended(t *testing.T) {
	_, hexCodes := encodeLines(t, []string{
		"COPY START 1000",
		"FIRST +LDT #4096",
		"END FIRST",
	})
	if len(hexCodes) != 1 || hexCodes[0] != "75101000" {
		t.Errorf("got %v, want [75101000]", hexCodes)
	}
}

func TestEncodeFormatThreeLiteralDisplacement(t *testing.T) {
	_, hexCodes := encodeLines(t, []string{
		"COPY START 1000",
		"FIRST LDT #4096",
		"END FIRST",
	})
	if len(hexCodes) != 1 || hexCodes[0] != "750000" {
		t.Errorf("got %v, want [750000] (12-bit immediate masks 4096 down to 0)", hexCodes)
	}
}

func TestEncodeByteDirective(t *testing.T) {
	_, hexCodes := encodeLines(t, []string{
		"COPY START 1000",
		"STR BYTE C'ABC'",
		"END STR",
	})
	if len(hexCodes) != 1 || hexCodes[0] != "414243" {
		t.Errorf("got %v, want [414243]", hexCodes)
	}
}

func TestEncodeDisplacementOutOfRangeIsFatal(t *testing.T) {
	lines := []string{
		"COPY START 1000",
		"FIRST LDA FAR",
		"PAD RESB 5000",
		"FAR RESW 1",
		"END FIRST",
	}

	program, err := parser.ParseProgram(lines, "t.asm")
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	enc := NewEncoder(program.SymbolTable)
	_, err = enc.EncodeProgram(program.Expressions, program.StartAddress)
	if err == nil {
		t.Fatal("expected a displacement-out-of-range error, got nil")
	}
	perr, ok := err.(*parser.Error)
	if !ok || perr.Kind != parser.ErrorEncoding {
		t.Errorf("expected ErrorEncoding, got %+v", err)
	}
}
