package dictionary

import (
	"testing"
)

func TestDigitPatternNotation(t *testing.T) {
	tests := []struct {
		accent string
		want   int
	}{
		{"", 0},
		{"-", 0},
		{"0", 0},
		{"2", 2},
		{"H00", 0},
		{"L02", 2},
		{"H01", 2},
		{"H100", 1},
		{"HHL", 0},
	}
	notation := DigitPatternNotation{}
	for _, tt := range tests {
		got, err := notation.AccentCore(tt.accent)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", tt.accent, err)
			continue
		}
		if got != tt.want {
			t.Errorf("invalid result: %s. want = %d, got = %d", tt.accent, tt.want, got)
		}
	}
}

func TestKeihanCoreNotation(t *testing.T) {
	tests := []struct {
		accent string
		want   int
	}{
		{"", 0},
		{"-", 0},
		{"3", 3},
		{"HH", 1},
		{"LL", 0},
		{"HHL", 2},
		{"LLH", 2},
		{"H0", 1},
		{"L0", 0},
		{"H01", 1},
		{"L02", 2},
		{"L2/H0", 2},
	}
	notation := KeihanCoreNotation{}
	for _, tt := range tests {
		got, err := notation.AccentCore(tt.accent)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", tt.accent, err)
			continue
		}
		if got != tt.want {
			t.Errorf("invalid result: %s. want = %d, got = %d", tt.accent, tt.want, got)
		}
	}
}

func TestAccentNotationErrors(t *testing.T) {
	for _, notation := range []AccentNotation{DigitPatternNotation{}, KeihanCoreNotation{}} {
		for _, accent := range []string{"-1", "x", "H0x", "1.5", "高"} {
			_, err := notation.AccentCore(accent)
			if err == nil {
				t.Errorf("%s: %s: expected an error", notation.Name(), accent)
			}
		}
	}
}

func TestAccentNotationByName(t *testing.T) {
	n, err := AccentNotationByName("keihan")
	if err != nil || n.Name() != "keihan" {
		t.Errorf("invalid result. want = keihan, got = %v (%v)", n, err)
	}
	n, err = AccentNotationByName("")
	if err != nil || n.Name() != "digits" {
		t.Errorf("invalid result. want = digits, got = %v (%v)", n, err)
	}
	_, err = AccentNotationByName("tokyo")
	if err == nil {
		t.Errorf("expected an error for an unknown notation")
	}
}
