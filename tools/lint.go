package tools

import (
	"fmt"

	"github.com/aokblast/sicxeasm/parser"
)

// Level is the severity of an Issue.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Issue is a single lint finding, never fatal to assembly.
type Issue struct {
	Level   Level
	Line    int
	Message string
	Code    string
}

func (i Issue) String() string {
	return fmt.Sprintf("line %d: %s: %s [%s]", i.Line, i.Level, i.Message, i.Code)
}

// Lint runs style checks over an already-parsed program: unused
// symbols, a BASE directive with no format-3 base-relative reference
// after it, and a label that shadows a mnemonic or directive name.
func Lint(program *parser.Program) []Issue {
	var issues []Issue

	issues = append(issues, checkUnusedSymbols(program)...)
	issues = append(issues, checkUnusedBase(program)...)
	issues = append(issues, checkShadowedLabels(program)...)

	return issues
}

func checkUnusedSymbols(program *parser.Program) []Issue {
	referenced := make(map[string]bool)
	for _, expr := range program.Expressions {
		if expr.HasOperand && expr.Operand.Kind == parser.OperandSymbol {
			referenced[expr.Operand.Symbol] = true
		}
	}

	var issues []Issue
	for _, expr := range program.Expressions {
		if !expr.HasLabel {
			continue
		}
		if !referenced[expr.Label] {
			issues = append(issues, Issue{
				Level:   LevelInfo,
				Line:    expr.Pos.Line,
				Message: fmt.Sprintf("symbol %q is never referenced", expr.Label),
				Code:    "UNUSED_SYMBOL",
			})
		}
	}
	return issues
}

func checkUnusedBase(program *parser.Program) []Issue {
	var issues []Issue

	baseLine := -1
	usedSinceBase := false

	for _, expr := range program.Expressions {
		if expr.Command.Kind == parser.CommandDirective && expr.Command.Directive == parser.DirBase {
			if baseLine >= 0 && !usedSinceBase {
				issues = append(issues, Issue{
					Level:   LevelWarning,
					Line:    baseLine,
					Message: "BASE directive is never used by a base-relative reference before being replaced",
					Code:    "UNUSED_BASE",
				})
			}
			baseLine = expr.Pos.Line
			usedSinceBase = false
			continue
		}
		if baseLine >= 0 && expr.Flags.IsSet(parser.FlagB) {
			usedSinceBase = true
		}
	}

	if baseLine >= 0 && !usedSinceBase {
		issues = append(issues, Issue{
			Level:   LevelWarning,
			Line:    baseLine,
			Message: "BASE directive is never used by a base-relative reference",
			Code:    "UNUSED_BASE",
		})
	}

	return issues
}

func checkShadowedLabels(program *parser.Program) []Issue {
	var issues []Issue
	for _, expr := range program.Expressions {
		if !expr.HasLabel {
			continue
		}
		if _, isMnemonic := parser.Commands[expr.Label]; isMnemonic {
			issues = append(issues, Issue{
				Level:   LevelWarning,
				Line:    expr.Pos.Line,
				Message: fmt.Sprintf("label %q shadows a mnemonic or directive name", expr.Label),
				Code:    "LABEL_SHADOWS_COMMAND",
			})
		}
	}
	return issues
}
