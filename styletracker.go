package vtscreen

import "strconv"

// StyleTracker tracks the active style of a real terminal and emits the
// minimal SGR sequence that brings it to a target style.
type StyleTracker struct {
	cur Style
}

// NewStyleTracker creates a tracker whose terminal is at the default style.
func NewStyleTracker() *StyleTracker {
	return &StyleTracker{}
}

// Current returns the tracked style.
func (t *StyleTracker) Current() Style {
	return t.cur
}

// Transition returns the SGR sequence that changes the terminal's active
// style to target, possibly empty, and updates the tracked state.
//
// A full reset is emitted when any decoration must turn off, or when an
// extended color must give way to a basic or default one; otherwise the
// delta is incremental.
func (t *StyleTracker) Transition(target Style) []byte {
	if target == t.cur {
		return nil
	}

	turnedOff := t.cur.Flags &^ target.Flags
	needReset := turnedOff != 0 ||
		(t.cur.FgExt != nil && target.FgExt == nil) ||
		(t.cur.BgExt != nil && target.BgExt == nil)

	var codes []int
	if needReset {
		codes = append(codes, 0)
		codes = appendFlagCodes(codes, target.Flags)
		codes = appendFgCodes(codes, target, false)
		codes = appendBgCodes(codes, target, false)
	} else {
		codes = appendFlagCodes(codes, target.Flags&^t.cur.Flags)
		if target.FgBasic != t.cur.FgBasic || target.FgExt != t.cur.FgExt {
			codes = appendFgCodes(codes, target, true)
		}
		if target.BgBasic != t.cur.BgBasic || target.BgExt != t.cur.BgExt {
			codes = appendBgCodes(codes, target, true)
		}
	}
	t.cur = target

	if len(codes) == 0 {
		return nil
	}
	return sgrSequence(codes)
}

// appendFlagCodes appends the decoration code (1-9) for every set bit.
func appendFlagCodes(codes []int, flags StyleFlags) []int {
	for code := 1; code <= 9; code++ {
		if flags&flagForCode(code) != 0 {
			codes = append(codes, code)
		}
	}
	return codes
}

// appendFgCodes appends the foreground selection: extended color first if
// present, else the basic code. When explicitDefault is true an unset
// foreground emits 39 (needed on incremental transitions; after a reset the
// default is already in effect).
func appendFgCodes(codes []int, st Style, explicitDefault bool) []int {
	switch {
	case st.FgExt != nil:
		codes = append(codes, 38)
		codes = st.FgExt.sgrParams(codes)
	case st.FgBasic != 0:
		codes = append(codes, st.FgBasic)
	case explicitDefault:
		codes = append(codes, 39)
	}
	return codes
}

// appendBgCodes is the background counterpart of appendFgCodes.
func appendBgCodes(codes []int, st Style, explicitDefault bool) []int {
	switch {
	case st.BgExt != nil:
		codes = append(codes, 48)
		codes = st.BgExt.sgrParams(codes)
	case st.BgBasic != 0:
		codes = append(codes, st.BgBasic)
	case explicitDefault:
		codes = append(codes, 49)
	}
	return codes
}

// sgrSequence wraps numeric codes as ESC[<c1>;<c2>;...m.
func sgrSequence(codes []int) []byte {
	seq := []byte{esc, '['}
	for i, c := range codes {
		if i > 0 {
			seq = append(seq, ';')
		}
		seq = strconv.AppendInt(seq, int64(c), 10)
	}
	return append(seq, 'm')
}
