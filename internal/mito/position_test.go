package mito

import (
	"errors"
	"testing"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Position
		wantErr bool
	}{
		{"reference residue", "3107", Pos(3107), false},
		{"first insertion", "3107.01", Ins(3107, 1), false},
		{"bare fraction digit", "100.2", Ins(100, 2), false},
		{"two-digit ordinal", "951.12", Ins(951, 12), false},
		{"position one", "1", Pos(1), false},

		{"zero", "0", Position{}, true},
		{"negative", "-5", Position{}, true},
		{"zero ordinal", "3107.00", Position{}, true},
		{"negative ordinal", "3107.-1", Position{}, true},
		{"not a number", "abc", Position{}, true},
		{"empty", "", Position{}, true},
		{"trailing dot", "3107.", Position{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePosition(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePosition(%q) = %v, want error", tt.input, got)
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("ParsePosition(%q) error = %T, want *ValidationError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePosition(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePosition(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{Pos(3107), "3107"},
		{Ins(3107, 1), "3107.01"},
		{Ins(100, 12), "100.12"},
	}
	for _, tt := range tests {
		if got := tt.pos.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.pos, got, tt.want)
		}
	}
}

func TestPositionLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want bool
	}{
		{"anchor order", Pos(5), Pos(6), true},
		{"insertion after its anchor", Pos(5), Ins(5, 1), true},
		{"insertion before next residue", Ins(5, 99), Pos(6), true},
		{"insertion ordinal order", Ins(5, 1), Ins(5, 2), true},
		{"equal", Pos(5), Pos(5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("%v.Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNormalizeBounds(t *testing.T) {
	w := window{start: 11, end: 40, refLen: 100}

	start, end, err := w.normalizeBounds()
	if err != nil || start != 11 || end != 40 {
		t.Errorf("no bounds: got (%d, %d, %v), want (11, 40, nil)", start, end, err)
	}

	start, end, err = w.normalizeBounds(23)
	if err != nil || start != 23 || end != 23 {
		t.Errorf("one bound: got (%d, %d, %v), want (23, 23, nil)", start, end, err)
	}

	start, end, err = w.normalizeBounds(23, 31)
	if err != nil || start != 23 || end != 31 {
		t.Errorf("two bounds: got (%d, %d, %v), want (23, 31, nil)", start, end, err)
	}

	if _, _, err = w.normalizeBounds(1, 2, 3); err == nil {
		t.Error("three bounds: want error")
	}
}

func TestWindowValidate(t *testing.T) {
	linear := window{start: 11, end: 40, refLen: 100}
	wrapped := window{start: 16024, end: 576, refLen: 16569}
	genome := window{start: 1, end: 16569, refLen: 16569, wrapping: true}

	tests := []struct {
		name       string
		w          window
		start, end int
		wantBounds bool
		wantValid  bool
	}{
		{"linear in range", linear, 11, 40, false, false},
		{"linear single", linear, 25, 25, false, false},
		{"linear below", linear, 10, 40, true, false},
		{"linear above", linear, 11, 41, true, false},
		{"linear inverted", linear, 30, 20, true, false},
		{"linear zero start", linear, 0, 20, false, true},
		{"linear negative end", linear, 11, -3, false, true},

		{"wrapped tail", wrapped, 16100, 16500, false, false},
		{"wrapped head", wrapped, 100, 500, false, false},
		{"wrapped across origin", wrapped, 16500, 300, false, false},
		{"wrapped inside gap", wrapped, 1000, 16500, true, false},
		{"wrapped past reference", wrapped, 16570, 300, true, false},

		{"genome ordered", genome, 100, 105, false, false},
		{"genome across origin", genome, 16567, 6, false, false},
		{"genome past reference", genome, 16570, 6, true, false},
		{"genome zero", genome, 0, 6, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.w.validate(tt.start, tt.end)
			switch {
			case tt.wantBounds:
				var berr *BoundsError
				if !errors.As(err, &berr) {
					t.Errorf("validate(%d, %d) = %v, want *BoundsError", tt.start, tt.end, err)
				}
			case tt.wantValid:
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("validate(%d, %d) = %v, want *ValidationError", tt.start, tt.end, err)
				}
			default:
				if err != nil {
					t.Errorf("validate(%d, %d) = %v, want nil", tt.start, tt.end, err)
				}
			}
		})
	}
}

func TestWindowSpan(t *testing.T) {
	tests := []struct {
		name string
		w    window
		want int
	}{
		{"linear", window{start: 11, end: 40, refLen: 100}, 30},
		{"full genome", window{start: 1, end: 16569, refLen: 16569}, 16569},
		{"across origin", window{start: 16024, end: 576, refLen: 16569}, 1122},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.span(); got != tt.want {
				t.Errorf("span() = %d, want %d", got, tt.want)
			}
		})
	}
}
