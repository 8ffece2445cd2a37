package vtscreen

// TokenKind identifies the shape of one parsed unit of terminal input.
type TokenKind int

const (
	// TokenText is a maximal run of bytes containing no ESC (0x1B).
	TokenText TokenKind = iota
	// TokenCSI is a Control Sequence Introducer sequence (ESC '[').
	TokenCSI
	// TokenOSC is an Operating System Command sequence (ESC ']').
	// The screen consumes these without interpreting them.
	TokenOSC
	// TokenSimpleEsc is a single-byte escape such as ESC 7 or ESC 8.
	TokenSimpleEsc
	// TokenCharsetEsc is a charset selection escape: ESC '(', ')' or '#'
	// followed by one byte. Consumed without interpretation.
	TokenCharsetEsc
	// TokenInvalid is a prefix that began like an escape but was malformed
	// or truncated. Downstream it is treated as text, minus the leading ESC.
	TokenInvalid
)

// Token is one tokenized unit of terminal input.
//
// Raw always holds the exact input bytes: concatenating Raw over the tokens
// of Parse(data) reproduces data. Tokens alias the input slice and are only
// valid while the caller keeps it unmodified.
type Token struct {
	Kind TokenKind

	// Command is the final byte of a CSI sequence ('A', 'm', ...) or the
	// command byte of a simple escape ('7', '8', ...). Zero otherwise.
	Command byte

	// Params is the uninterpreted parameter-byte string of a CSI sequence,
	// e.g. "1;31;44" for ESC[1;31;44m. Empty otherwise.
	Params string

	// Raw is the exact byte run this token was parsed from.
	Raw []byte
}
