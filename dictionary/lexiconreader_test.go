package dictionary

import (
	"io"
	"strings"
	"testing"
)

func TestLexiconReader_Decode(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{`abc`, `abc`},
		{`あ`, `あ`},
		{`xあy`, `xあy`},
		{`\u{1F600}`, "\U0001F600"},
		{`\u{3042}\u{3044}`, `あい`},
		{`\u30`, `\u30`},
		{`\u{}`, `\u{}`},
		{`\u{110000}`, `\u{110000}`},
		{`\uZZZZ`, `\uZZZZ`},
		{`\`, `\`},
	}
	r := newLexiconReader(strings.NewReader(""), ',', true, false)
	for _, tt := range tests {
		if got := string(r.decode([]byte(tt.field))); got != tt.want {
			t.Errorf("invalid result: %s. want = %q, got = %q", tt.field, tt.want, got)
		}
	}
}

func TestLexiconReader_ReadRecord(t *testing.T) {
	input := "a,b,c\n" +
		"# comment\n" +
		"a,,\n" +
		"\"\",\"x\"y,z\n"
	r := newLexiconReader(strings.NewReader(input), ',', false, true)
	want := [][]string{
		{"a", "b", "c"},
		{"a", "", ""},
		{"", "xy", "z"},
	}
	wantLines := []int{1, 3, 4}
	var buf []string
	for i := 0; ; i++ {
		cols, err := r.readRecord(buf)
		if err == io.EOF {
			if i != len(want) {
				t.Errorf("invalid result. want = %d records, got = %d", len(want), i)
			}
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if strings.Join(cols, "|") != strings.Join(want[i], "|") {
			t.Errorf("invalid result. want = %q, got = %q", want[i], cols)
		}
		if r.numLine != wantLines[i] {
			t.Errorf("invalid line. want = %d, got = %d", wantLines[i], r.numLine)
		}
		buf = cols
	}
}

func TestLexiconReader_Comments(t *testing.T) {
	input := "#あ,1\n\n# note\nはな,2\n"
	tests := []struct {
		comments bool
		want     []string
	}{
		{false, []string{"#あ", "# note", "はな"}},
		{true, []string{"はな"}},
	}
	for _, tt := range tests {
		r := newLexiconReader(strings.NewReader(input), ',', false, tt.comments)
		var got []string
		for {
			cols, err := r.readRecord(nil)
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			got = append(got, cols[0])
		}
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("invalid result: comments %v. want = %q, got = %q", tt.comments, tt.want, got)
		}
	}
}

func TestLexiconRowReader_InvalidFormat(t *testing.T) {
	lr := NewLexiconRowReader(strings.NewReader("はな,0,0,1,名詞,一般,*,*,*,*,はな,はな,はな,0\nはな,0,0\n"))
	_, err := lr.Next()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	_, err = lr.Next()
	if err == nil {
		t.Fatalf("expected an error for a short row")
	}
	want := "invalid format: columns length must be 14, got 3: at line 2"
	if err.Error() != want {
		t.Errorf("invalid result. want = %s, got = %s", want, err)
	}
}
