package parser

import "testing"

func TestClassifySimple(t *testing.T) {
	tokens, flags, err := Classify([]string{"ALPHA", "LDA", "BETA"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	if tokens[0].Kind != TokenSymbol || tokens[0].Symbol != "ALPHA" {
		t.Errorf("unexpected first token: %+v", tokens[0])
	}
	if tokens[1].Kind != TokenCommand {
		t.Errorf("unexpected second token: %+v", tokens[1])
	}
	if tokens[2].Kind != TokenSymbol || tokens[2].Symbol != "BETA" {
		t.Errorf("unexpected third token: %+v", tokens[2])
	}
	if flags.Value() != 0 {
		t.Errorf("expected no flags set, got %#x", flags.Value())
	}
}

func TestClassifyExtendedFormat(t *testing.T) {
	tokens, flags, err := Classify([]string{"+LDT", "#4096"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !flags.IsSet(FlagE) {
		t.Error("expected the extended (E) flag to be set")
	}
	if !flags.IsSet(FlagI) {
		t.Error("expected the immediate (I) flag to be set")
	}
	if tokens[1].Kind != TokenLiteral || tokens[1].Literal.Integer != 4096 {
		t.Errorf("unexpected literal token: %+v", tokens[1])
	}
}

func TestClassifyIndexed(t *testing.T) {
	_, flags, err := Classify([]string{"LDA", "BETA,X"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !flags.IsSet(FlagX) {
		t.Error("expected the indexed (X) flag to be set")
	}
}

func TestClassifyDirectiveRejectsFormat4Prefix(t *testing.T) {
	if _, _, err := Classify([]string{"+START", "1000"}); err == nil {
		t.Error("expected an error: a directive cannot take the + prefix")
	}
}

func TestClassifyPrefixAndSuffixConflict(t *testing.T) {
	if _, _, err := Classify([]string{"LDA", "@BETA,X"}); err == nil {
		t.Error("expected an error: a token cannot combine a prefix and a suffix decorator")
	}
}

func TestFlagsValidity(t *testing.T) {
	var f Flags
	f.Set(FlagP)
	f.Set(FlagB)
	if f.IsValid() {
		t.Error("expected P and B to be mutually exclusive")
	}
}

func TestFlagsValue(t *testing.T) {
	var f Flags
	f.Set(FlagN)
	f.Set(FlagI)
	if f.Value() != 0x30 {
		t.Errorf("got %#x, want 0x30", f.Value())
	}
}
