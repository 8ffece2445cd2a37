package vtscreen

import "bytes"

const esc = 0x1b

// simpleEscCommands is the set of single-byte escape commands recognized
// after a bare ESC. Anything else makes the ESC invalid on its own.
var simpleEscCommands = [256]bool{
	'7': true, '8': true, 'c': true, 'D': true, 'E': true, 'H': true,
	'M': true, 'N': true, 'O': true, 'Z': true, '=': true, '>': true,
	'<': true, '1': true, '2': true, 's': true, 'u': true,
}

// Parse tokenizes a byte stream of printable text and ANSI escape sequences
// in a single pass. The stream is treated as complete: an escape truncated at
// the end of data yields a TokenInvalid holding whatever was consumed, never
// a resumable partial state.
//
// Parse never fails. Malformed sequences become TokenInvalid tokens and
// scanning continues with the next byte.
func Parse(data []byte) []Token {
	var tokens []Token
	for i := 0; i < len(data); {
		if data[i] != esc {
			end := bytes.IndexByte(data[i:], esc)
			if end < 0 {
				end = len(data) - i
			}
			tokens = append(tokens, Token{Kind: TokenText, Raw: data[i : i+end]})
			i += end
			continue
		}
		tok, n := parseEscape(data[i:])
		tokens = append(tokens, tok)
		i += n
	}
	return tokens
}

// parseEscape parses one escape sequence starting at an ESC byte and returns
// the token plus the number of bytes consumed (always >= 1).
func parseEscape(data []byte) (Token, int) {
	if len(data) < 2 {
		return Token{Kind: TokenInvalid, Raw: data[:1]}, 1
	}
	switch b := data[1]; {
	case b == '[':
		return parseCSI(data)
	case b == ']':
		return parseOSC(data)
	case b == '(' || b == ')' || b == '#':
		if len(data) < 3 {
			return Token{Kind: TokenInvalid, Raw: data[:2]}, 2
		}
		return Token{Kind: TokenCharsetEsc, Raw: data[:3]}, 3
	case simpleEscCommands[b]:
		return Token{Kind: TokenSimpleEsc, Command: b, Raw: data[:2]}, 2
	default:
		// Unknown escape: report the lone ESC and rescan from the next byte.
		return Token{Kind: TokenInvalid, Raw: data[:1]}, 1
	}
}

// parseCSI parses ESC '[' parameter bytes (0x30-0x3F), intermediate bytes
// (0x20-0x2F) and a final byte (0x40-0x7E).
func parseCSI(data []byte) (Token, int) {
	i := 2
	for i < len(data) && data[i] >= 0x30 && data[i] <= 0x3f {
		i++
	}
	paramEnd := i
	for i < len(data) && data[i] >= 0x20 && data[i] <= 0x2f {
		i++
	}
	if i >= len(data) {
		return Token{Kind: TokenInvalid, Raw: data}, len(data)
	}
	if final := data[i]; final >= 0x40 && final <= 0x7e {
		return Token{
			Kind:    TokenCSI,
			Command: final,
			Params:  string(data[2:paramEnd]),
			Raw:     data[:i+1],
		}, i + 1
	}
	// A byte that can neither extend nor finish the sequence. Report what
	// was consumed and rescan from the offending byte.
	return Token{Kind: TokenInvalid, Raw: data[:i]}, i
}

// parseOSC parses ESC ']' up to and including a BEL (0x07), ST (0x9C) or
// ESC '\' terminator.
func parseOSC(data []byte) (Token, int) {
	for i := 2; i < len(data); i++ {
		switch {
		case data[i] == 0x07 || data[i] == 0x9c:
			return Token{Kind: TokenOSC, Raw: data[:i+1]}, i + 1
		case data[i] == esc && i+1 < len(data) && data[i+1] == '\\':
			return Token{Kind: TokenOSC, Raw: data[:i+2]}, i + 2
		}
	}
	return Token{Kind: TokenInvalid, Raw: data}, len(data)
}
