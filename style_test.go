package vtscreen

import "testing"

func TestApplySGRBasic(t *testing.T) {
	var st Style
	st.applySGR([]int{1, 31})

	if st.Flags != StyleBold {
		t.Errorf("expected bold flag, got %b", st.Flags)
	}
	if st.FgBasic != 31 {
		t.Errorf("expected fg 31, got %d", st.FgBasic)
	}
}

func TestApplySGRReset(t *testing.T) {
	var st Style
	st.applySGR([]int{1, 4, 31, 44})
	st.applySGR([]int{0})

	if !st.IsZero() {
		t.Errorf("expected default style after reset, got %+v", st)
	}
}

func TestApplySGRClearCodes(t *testing.T) {
	var st Style
	st.applySGR([]int{1, 2, 3, 4})

	st.applySGR([]int{22})
	if st.Flags&(StyleBold|StyleDim) != 0 {
		t.Errorf("expected 22 to clear bold and dim, got %b", st.Flags)
	}
	if st.Flags&StyleItalic == 0 || st.Flags&StyleUnderline == 0 {
		t.Errorf("expected italic and underline to survive, got %b", st.Flags)
	}

	st.applySGR([]int{23, 24})
	if st.Flags != 0 {
		t.Errorf("expected no flags, got %b", st.Flags)
	}
}

func TestApplySGRBrightColors(t *testing.T) {
	var st Style
	st.applySGR([]int{90, 107})

	if st.FgBasic != 90 {
		t.Errorf("expected fg 90, got %d", st.FgBasic)
	}
	if st.BgBasic != 107 {
		t.Errorf("expected bg 107, got %d", st.BgBasic)
	}
}

func TestApplySGRDefaultColors(t *testing.T) {
	var st Style
	st.applySGR([]int{31, 41})
	st.applySGR([]int{39, 49})

	if st.HasFg() || st.HasBg() {
		t.Errorf("expected colors cleared, got %+v", st)
	}
}

func TestApplySGRPalette256(t *testing.T) {
	var st Style
	st.applySGR([]int{31})
	st.applySGR([]int{38, 5, 196})

	if st.FgBasic != 0 {
		t.Errorf("expected basic fg cleared, got %d", st.FgBasic)
	}
	if st.FgExt != Palette256(196) {
		t.Errorf("expected palette fg 196, got %v", st.FgExt)
	}
}

func TestApplySGRTruecolor(t *testing.T) {
	var st Style
	st.applySGR([]int{48, 2, 10, 20, 30})

	if st.BgExt != (RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("expected RGB bg, got %v", st.BgExt)
	}
	if st.BgBasic != 0 {
		t.Errorf("expected basic bg cleared, got %d", st.BgBasic)
	}
}

func TestApplySGRExtThenBasic(t *testing.T) {
	var st Style
	st.applySGR([]int{38, 5, 100})
	st.applySGR([]int{34})

	if st.FgExt != nil {
		t.Errorf("expected extended fg cleared by basic code, got %v", st.FgExt)
	}
	if st.FgBasic != 34 {
		t.Errorf("expected fg 34, got %d", st.FgBasic)
	}
}

func TestApplySGRUnknownIgnored(t *testing.T) {
	var st Style
	st.applySGR([]int{31, 77, 44})

	if st.FgBasic != 31 || st.BgBasic != 44 {
		t.Errorf("expected unknown code skipped, got %+v", st)
	}
}

func TestApplySGRMalformedExt(t *testing.T) {
	var st Style
	st.applySGR([]int{38, 7})

	if st.FgExt != nil {
		t.Errorf("expected malformed 38 ignored, got %v", st.FgExt)
	}
}

func TestSplitCodes(t *testing.T) {
	got := splitCodes("1;;31")
	want := []int{1, 0, 31}
	if len(got) != len(want) {
		t.Fatalf("expected %d codes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("code %d: expected %d, got %d", i, want[i], got[i])
		}
	}

	if splitCodes("") != nil {
		t.Errorf("expected no codes for empty params")
	}
}
