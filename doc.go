// Package vtscreen provides a virtual terminal renderer: an in-memory
// character grid that ingests ANSI escape sequences and renders back the
// minimal byte stream needed to reproduce it on a real terminal.
//
// The point is composition. A host TUI can feed each sub-program's output
// into its own [Screen], so a sub-program's "clear screen" only clears its
// own panel, and then paint the real terminal at frame rates by writing only
// what changed.
//
// # Quick Start
//
// Create a screen, write ANSI bytes to it, render it anywhere:
//
//	scr := vtscreen.New(80, 24)
//	scr.WriteString("\x1b[1;32mready\x1b[0m $ ")
//	os.Stdout.Write(scr.Render())
//
// [Screen.Render] produces a relative-positioned frame (DECSC/DECRC plus
// cursor-down, never \r or \n), so the output can be embedded at any cursor
// position: a popup, a panel, a split.
//
// # Differential updates
//
// Every row mutation bumps a monotonic sequence counter. Capture a
// checkpoint and rewrite only the rows that changed since:
//
//	os.Stdout.Write(scr.Render())
//	seq := scr.LastRenderedSeq()
//	scr.WriteString("\x1b[2;1Hprogress: 42%")
//	os.Stdout.Write(scr.RenderSince(seq)) // rewrites row 2 only
//
// For cell-level diffing, project the viewport into a [CellBuffer] and cycle
// it once per frame:
//
//	buf := scr.Snapshot()
//	os.Stdout.Write(buf.DiffRender(0, 0)) // first frame paints everything
//	for eachFrame {
//	    buf.SwapBuffers()
//	    buf.Reload(scr)
//	    os.Stdout.Write(buf.DiffRender(0, 0)) // changed cells only
//	}
//
// Cursor motion in the diff uses the shortest available sequence
// ([CursorTracker]) and styles change through minimal SGR deltas
// ([StyleTracker]).
//
// # Queries
//
// Cursor-position (DSR) and color queries are answered through an optional
// [QueryResponder]:
//
//	scr := vtscreen.New(80, 24, vtscreen.WithQueryResponder(ptyInput))
//
// Without a responder, queries are silently dropped.
//
// # Scope
//
// The screen models printable text, cursor motion, wrapping, scrolling,
// erasure, SGR styling and cursor save/restore. OSC sequences, charset
// selection and terminal modes are parsed and consumed but not interpreted.
// There is no alternate screen buffer and no input handling.
package vtscreen
