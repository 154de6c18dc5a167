package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},
		{10, 10, true},  // top-left corner
		{29, 29, true},  // last cell
		{30, 30, false}, // one past bottom-right
		{5, 15, false},
		{15, 5, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 30)
	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 40 {
		t.Errorf("Bottom() = %d, expected 40", r.Bottom())
	}
}

func TestRectInsetCentered(t *testing.T) {
	r := NewRect(0, 0, 20, 10)

	if got := r.Inset(1); got != NewRect(1, 1, 18, 8) {
		t.Errorf("Inset(1) = %+v", got)
	}
	if got := r.Inset(8); got.H != 0 {
		t.Errorf("Inset(8).H = %d, expected 0", got.H)
	}
	if got := r.Centered(10, 4); got != NewRect(5, 3, 10, 4) {
		t.Errorf("Centered(10, 4) = %+v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		want    Color
		wantErr bool
	}{
		{"red", ColorRed, false},
		{" Bright_Cyan ", ColorBrightCyan, false},
		{"purple", ColorMagenta, false},
		{"grey", ColorGray, false},
		{"", ColorDefault, false},
		{"chartreuse", ColorDefault, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.name)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v; want %v (err %v)", tt.name, got, err, tt.want, tt.wantErr)
		}
	}
	if ColorOrange.String() != "orange" {
		t.Errorf("ColorOrange.String() = %q", ColorOrange.String())
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}
	f.Set(ActionRight)
	f.Set(ActionNone)
	f.Set(ActionSelect)

	if len(f.Actions) != 2 || f.Actions[0] != ActionRight || f.Actions[1] != ActionSelect {
		t.Errorf("Actions = %v", f.Actions)
	}
	if !f.Has(ActionSelect) || f.Has(ActionHint) {
		t.Error("Has() mismatch")
	}
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
}

func TestActionDeltas(t *testing.T) {
	if dr, dc := ActionSwipeLeft.CursorDelta(); dr != 0 || dc != -1 {
		t.Errorf("SwipeLeft delta = %d,%d", dr, dc)
	}
	if dr, dc := ActionDown.CursorDelta(); dr != 1 || dc != 0 {
		t.Errorf("Down delta = %d,%d", dr, dc)
	}
	if !ActionSwipeUp.IsSwipe() || ActionUp.IsSwipe() {
		t.Error("IsSwipe mismatch")
	}
	if ActionHint.String() != "Hint" || Action(99).String() != "Unknown" {
		t.Error("String mismatch")
	}
}
