package service

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/aokblast/sicxeasm/config"
	"github.com/aokblast/sicxeasm/encoder"
	"github.com/aokblast/sicxeasm/listing"
	"github.com/aokblast/sicxeasm/object"
	"github.com/aokblast/sicxeasm/parser"
)

var debugLog *log.Logger

func init() {
	if os.Getenv("SICXEASM_DEBUG") != "" {
		debugLog = log.New(os.Stderr, "ASSEMBLE: ", log.Ltime|log.Lmicroseconds)
	} else {
		debugLog = log.New(io.Discard, "", 0)
	}
}

// Result is the complete output of one translation run: the resolved
// program, its object records, and the rows of a rendered listing.
type Result struct {
	Program *parser.Program
	Header  object.Header
	Texts   []object.Text
	End     object.End
	Listing []listing.Row
}

// ProgressFunc is called once per body expression, in source order,
// after the encoder has produced the object code of the whole program.
type ProgressFunc func(line int, address uint32, hex string)

// Assemble runs the full pipeline (lex, classify, build, first pass,
// encode, segment, render) over source, which holds the complete text
// of one source file named filename for diagnostics.
func Assemble(source []byte, filename string, cfg *config.Config, onProgress ProgressFunc) (*Result, error) {
	lines, err := parser.ReadLinesFrom(bytes.NewReader(source))
	if err != nil {
		return nil, parser.NewError(parser.Position{Filename: filename}, parser.ErrorIO, err.Error())
	}

	program, err := parser.ParseProgram(lines, filename)
	if err != nil {
		return nil, err
	}
	debugLog.Printf("parsed %s: %d expressions, %d symbols", filename, len(program.Expressions), program.SymbolTable.Len())

	enc := encoder.NewEncoder(program.SymbolTable)
	hexCodes, err := enc.EncodeProgram(program.Expressions, program.StartAddress)
	if err != nil {
		return nil, err
	}

	reportProgress(program, hexCodes, onProgress)

	body := program.Expressions[1 : len(program.Expressions)-1]
	budget := object.DefaultBudget
	if cfg != nil {
		budget = cfg.Assembler.TextRecordBudget
	}
	texts := object.Segment(body, hexCodes, program.StartAddress, budget)

	end, err := endRecord(program)
	if err != nil {
		return nil, err
	}

	header := object.Header{
		ProgramName:  program.ProgramName,
		StartAddress: program.StartAddress,
		Length:       program.Length,
	}

	rows := listing.BuildRows(program, hexCodes, lines)

	return &Result{
		Program: program,
		Header:  header,
		Texts:   texts,
		End:     end,
		Listing: rows,
	}, nil
}

// reportProgress replays the same address walk the encoder used and
// invokes onProgress for each body expression, in order.
func reportProgress(program *parser.Program, hexCodes []string, onProgress ProgressFunc) {
	if onProgress == nil {
		return
	}

	addr := program.StartAddress
	last := len(program.Expressions) - 1

	for i, expr := range program.Expressions {
		length := uint32(expr.Len())
		if i == 0 {
			addr += length
			continue
		}
		if i == last {
			break
		}
		onProgress(expr.Pos.Line, addr, hexCodes[i-1])
		addr += length
	}
}

func endRecord(program *parser.Program) (object.End, error) {
	last := program.Expressions[len(program.Expressions)-1]
	addr, ok := program.SymbolTable.Lookup(last.Operand.Symbol)
	if !ok {
		return object.End{}, parser.NewError(last.Pos, parser.ErrorUndefinedSymbol, "undefined symbol: "+last.Operand.Symbol)
	}
	return object.End{EntryAddress: addr}, nil
}
