package vtscreen

import (
	"bytes"
	"testing"
)

func TestParseText(t *testing.T) {
	tokens := Parse([]byte("hello"))

	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if tokens[0].Kind != TokenText {
		t.Errorf("expected text token, got %v", tokens[0].Kind)
	}
	if string(tokens[0].Raw) != "hello" {
		t.Errorf("expected 'hello', got %q", tokens[0].Raw)
	}
}

func TestParseCSI(t *testing.T) {
	tokens := Parse([]byte("\x1b[1;31;44m"))

	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	tok := tokens[0]
	if tok.Kind != TokenCSI {
		t.Fatalf("expected CSI token, got %v", tok.Kind)
	}
	if tok.Command != 'm' {
		t.Errorf("expected command 'm', got %q", tok.Command)
	}
	if tok.Params != "1;31;44" {
		t.Errorf("expected params '1;31;44', got %q", tok.Params)
	}
}

func TestParseCSIPrivateParams(t *testing.T) {
	tokens := Parse([]byte("\x1b[?25l"))

	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if tokens[0].Command != 'l' {
		t.Errorf("expected command 'l', got %q", tokens[0].Command)
	}
	if tokens[0].Params != "?25" {
		t.Errorf("expected params '?25', got %q", tokens[0].Params)
	}
}

func TestParseCSIIntermediates(t *testing.T) {
	tokens := Parse([]byte("\x1b[4 q"))

	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if tokens[0].Kind != TokenCSI {
		t.Fatalf("expected CSI token, got %v", tokens[0].Kind)
	}
	if tokens[0].Command != 'q' {
		t.Errorf("expected command 'q', got %q", tokens[0].Command)
	}
}

func TestParseMixed(t *testing.T) {
	tokens := Parse([]byte("a\x1b[2Jb"))

	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	if tokens[0].Kind != TokenText || string(tokens[0].Raw) != "a" {
		t.Errorf("unexpected first token: %+v", tokens[0])
	}
	if tokens[1].Kind != TokenCSI || tokens[1].Command != 'J' || tokens[1].Params != "2" {
		t.Errorf("unexpected second token: %+v", tokens[1])
	}
	if tokens[2].Kind != TokenText || string(tokens[2].Raw) != "b" {
		t.Errorf("unexpected third token: %+v", tokens[2])
	}
}

func TestParseOSCTerminators(t *testing.T) {
	for _, input := range []string{
		"\x1b]0;title\x07",
		"\x1b]10;?\x1b\\",
		"\x1b]2;x\x9c",
	} {
		tokens := Parse([]byte(input))
		if len(tokens) != 1 {
			t.Fatalf("%q: expected 1 token, got %d", input, len(tokens))
		}
		if tokens[0].Kind != TokenOSC {
			t.Errorf("%q: expected OSC token, got %v", input, tokens[0].Kind)
		}
		if string(tokens[0].Raw) != input {
			t.Errorf("%q: raw mismatch: %q", input, tokens[0].Raw)
		}
	}
}

func TestParseCharsetEsc(t *testing.T) {
	tokens := Parse([]byte("\x1b(B\x1b)0\x1b#8"))

	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != TokenCharsetEsc {
			t.Errorf("token %d: expected charset escape, got %v", i, tok.Kind)
		}
		if len(tok.Raw) != 3 {
			t.Errorf("token %d: expected 3 raw bytes, got %d", i, len(tok.Raw))
		}
	}
}

func TestParseSimpleEsc(t *testing.T) {
	tokens := Parse([]byte("\x1b7\x1b8\x1bM"))

	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	want := []byte{'7', '8', 'M'}
	for i, tok := range tokens {
		if tok.Kind != TokenSimpleEsc {
			t.Errorf("token %d: expected simple escape, got %v", i, tok.Kind)
		}
		if tok.Command != want[i] {
			t.Errorf("token %d: expected command %q, got %q", i, want[i], tok.Command)
		}
	}
}

func TestParseUnknownEscape(t *testing.T) {
	tokens := Parse([]byte("\x1b~x"))

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Kind != TokenInvalid || string(tokens[0].Raw) != "\x1b" {
		t.Errorf("expected lone-ESC invalid token, got %+v", tokens[0])
	}
	if tokens[1].Kind != TokenText || string(tokens[1].Raw) != "~x" {
		t.Errorf("expected text '~x', got %+v", tokens[1])
	}
}

func TestParseTruncated(t *testing.T) {
	for _, input := range []string{
		"\x1b",
		"\x1b[",
		"\x1b[12",
		"\x1b[12;",
		"\x1b]0;unterminated",
		"\x1b(",
	} {
		tokens := Parse([]byte(input))
		if len(tokens) != 1 {
			t.Fatalf("%q: expected 1 token, got %d", input, len(tokens))
		}
		if tokens[0].Kind != TokenInvalid {
			t.Errorf("%q: expected invalid token, got %v", input, tokens[0].Kind)
		}
		if string(tokens[0].Raw) != input {
			t.Errorf("%q: raw mismatch: %q", input, tokens[0].Raw)
		}
	}
}

func TestParseLossless(t *testing.T) {
	inputs := []string{
		"plain text only",
		"Hello, \x1b[1;32mWorld!\x1b[0m",
		"\x1b]0;title\x07\x1b[2J\x1b[H\x1b7mid\x1b8",
		"\x1b[12",
		"bad\x1b~escape\x1b",
		"\x1b(Bcharset\x1b[38;5;196mred",
	}
	for _, input := range inputs {
		var got bytes.Buffer
		for _, tok := range Parse([]byte(input)) {
			got.Write(tok.Raw)
		}
		if got.String() != input {
			t.Errorf("round trip mismatch: %q -> %q", input, got.String())
		}
	}
}

func TestParseNeverCombinesTextRuns(t *testing.T) {
	tokens := Parse([]byte("a\x1bZb"))

	// ESC Z is a simple escape; the text on either side stays separate.
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	if tokens[0].Kind != TokenText || tokens[2].Kind != TokenText {
		t.Errorf("expected text tokens around the escape")
	}
}
