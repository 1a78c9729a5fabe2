package dictionary

import (
	"testing"
)

func TestMoraCount(t *testing.T) {
	tests := []struct {
		reading string
		want    int
	}{
		{"", 0},
		{"はな", 2},
		{"あめ", 2},
		{"きょう", 2},
		{"がっこう", 4},
		{"ラーメン", 4},
		{"シャッター", 4},
		{"ｶﾞｯｺｳ", 4},
		{"ファイル", 3},
		{"ょ", 1},
	}
	for _, tt := range tests {
		if got := MoraCount(tt.reading); got != tt.want {
			t.Errorf("invalid result: %s. want = %d, got = %d", tt.reading, tt.want, got)
		}
	}
}

func TestToKatakana(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"はな", "ハナ"},
		{"きょう", "キョウ"},
		{"ゔぁいおりん", "ヴァイオリン"},
		{"ｶﾅ", "カナ"},
		{"カナ", "カナ"},
		{"abc", "abc"},
		{"雨", "雨"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ToKatakana(tt.s); got != tt.want {
			t.Errorf("invalid result: %s. want = %s, got = %s", tt.s, tt.want, got)
		}
	}
}
