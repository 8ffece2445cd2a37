package vtscreen

import "io"

// QueryResponder receives the reply bytes for terminal queries (cursor
// position reports, foreground/background color queries). Typically the
// writer feeding the sub-program's input. When no responder is set, replies
// are silently dropped.
type QueryResponder = io.Writer

// NoopResponder discards all query replies.
type NoopResponder struct{}

func (NoopResponder) Write(p []byte) (int, error) {
	return len(p), nil
}

var _ QueryResponder = NoopResponder{}
