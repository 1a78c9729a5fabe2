package dictionary

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func loadAll(t *testing.T, input string, config *LoaderConfig) ([]*SourceEntry, error) {
	t.Helper()
	loader := NewEntryLoader(strings.NewReader(input), config)
	var entries []*SourceEntry
	for {
		e, err := loader.Next()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)
	}
}

func TestEntryLoader_Positional(t *testing.T) {
	input := "# surface,reading,accent,pos,baseForm\n" +
		"はな,はな,0,名,鼻\n" +
		"\n" +
		"あめ,あめ,2\r\n" +
		"はし,はし,1,,橋\n"
	entries, err := loadAll(t, input, &LoaderConfig{Comments: true})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := []SourceEntry{
		{Surface: "はな", Reading: "はな", AccentCore: 0, Pos: "名", BaseForm: "鼻", Line: 2},
		{Surface: "あめ", Reading: "あめ", AccentCore: 2, Line: 4},
		{Surface: "はし", Reading: "はし", AccentCore: 1, BaseForm: "橋", Line: 5},
	}
	if len(entries) != len(want) {
		t.Fatalf("invalid result. want = %d entries, got = %d", len(want), len(entries))
	}
	for i, e := range entries {
		if *e != want[i] {
			t.Errorf("invalid result. want = %+v, got = %+v", want[i], *e)
		}
	}
}

func TestEntryLoader_Header(t *testing.T) {
	input := "\ufeffword,original,pos,accent,note,source\n" +
		"あめ,雨,名,L02,,前田\n" +
		"ええ,,感,H0,,\n" +
		"おおきに,,感,-,礼,\n"
	loader := NewEntryLoader(strings.NewReader(input), nil)
	e, err := loader.Next()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !loader.HasHeader() {
		t.Errorf("header was not detected")
	}
	want := SourceEntry{Surface: "あめ", Reading: "あめ", AccentCore: 2, Pos: "名", BaseForm: "雨", Line: 2}
	if *e != want {
		t.Errorf("invalid result. want = %+v, got = %+v", want, *e)
	}
	e, err = loader.Next()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if e.AccentCore != 0 || e.BaseForm != "" || e.Reading != "ええ" {
		t.Errorf("invalid result: %+v", *e)
	}
	e, err = loader.Next()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if e.Surface != "おおきに" || e.AccentCore != 0 {
		t.Errorf("invalid result: %+v", *e)
	}
	_, err = loader.Next()
	if err != io.EOF {
		t.Errorf("invalid result. want = EOF, got = %v", err)
	}
}

func TestEntryLoader_HeadwordNamedLikeColumn(t *testing.T) {
	tests := []struct {
		input string
		want  []SourceEntry
	}{
		{
			"word,わーど,1\nあめ,あめ,2\n",
			[]SourceEntry{
				{Surface: "word", Reading: "わーど", AccentCore: 1, Line: 1},
				{Surface: "あめ", Reading: "あめ", AccentCore: 2, Line: 2},
			},
		},
		{
			"surface,reading,pos\nあめ,あめ,2\n",
			nil,
		},
		{
			"word,accent,furigana\nあめ,あめ,2\n",
			nil,
		},
	}
	for _, tt := range tests {
		loader := NewEntryLoader(strings.NewReader(tt.input), nil)
		var entries []SourceEntry
		var err error
		for {
			var e *SourceEntry
			e, err = loader.Next()
			if err != nil {
				break
			}
			entries = append(entries, *e)
		}
		if loader.HasHeader() {
			t.Errorf("invalid result: %q was taken as a header", tt.input)
		}
		if tt.want == nil {
			// read positionally, the column names are not a valid entry
			if err == io.EOF {
				t.Errorf("invalid result: %q loaded without error", tt.input)
			}
			continue
		}
		if err != io.EOF {
			t.Fatalf("unexpected error: %s", err)
		}
		if len(entries) != len(tt.want) {
			t.Fatalf("invalid result. want = %d entries, got = %d", len(tt.want), len(entries))
		}
		for i := range entries {
			if entries[i] != tt.want[i] {
				t.Errorf("invalid result. want = %+v, got = %+v", tt.want[i], entries[i])
			}
		}
	}
}

func TestEntryLoader_HashSurface(t *testing.T) {
	input := "#あ,あ,1\nはな,はな,0\n# x,えっくす,0\n"
	entries, err := loadAll(t, input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := []string{"#あ", "はな", "# x"}
	if len(entries) != len(want) {
		t.Fatalf("invalid result. want = %d entries, got = %d", len(want), len(entries))
	}
	for i, e := range entries {
		if e.Surface != want[i] || e.Line != i+1 {
			t.Errorf("invalid result. want = %s at line %d, got = %s at line %d", want[i], i+1, e.Surface, e.Line)
		}
	}

	entries, err = loadAll(t, input, &LoaderConfig{Comments: true})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(entries) != 1 || entries[0].Surface != "はな" {
		t.Errorf("invalid result. want = はな only, got = %+v", entries)
	}
}

func TestEntryLoader_Quoted(t *testing.T) {
	input := "\"は,な\",はな,0\n" +
		"\"say \"\"hi\"\"\",はい,1\n" +
		"\"two\nlines\",に,0\n" +
		"あめ,あめ,2\n"
	entries, err := loadAll(t, input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	wantSurfaces := []string{"は,な", "say \"hi\"", "two\nlines", "あめ"}
	wantLines := []int{1, 2, 3, 5}
	if len(entries) != len(wantSurfaces) {
		t.Fatalf("invalid result. want = %d entries, got = %d", len(wantSurfaces), len(entries))
	}
	for i, e := range entries {
		if e.Surface != wantSurfaces[i] {
			t.Errorf("invalid result. want = %q, got = %q", wantSurfaces[i], e.Surface)
		}
		if e.Line != wantLines[i] {
			t.Errorf("invalid line. want = %d, got = %d", wantLines[i], e.Line)
		}
	}
}

func TestEntryLoader_Delimiter(t *testing.T) {
	entries, err := loadAll(t, "は,な\tはな\t1\n", &LoaderConfig{Delimiter: '\t'})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(entries) != 1 || entries[0].Surface != "は,な" || entries[0].AccentCore != 1 {
		t.Errorf("invalid result: %+v", entries)
	}
}

func TestEntryLoader_UnicodeEscape(t *testing.T) {
	config := &LoaderConfig{UnicodeEscape: true}
	entries, err := loadAll(t, `は\u{306A},はな,0`+"\n", config)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(entries) != 1 || entries[0].Surface != "はな" || entries[0].Reading != "はな" {
		t.Errorf("invalid result: %+v", entries)
	}

	entries, err = loadAll(t, `は\u{306A},はな,0`+"\n", nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if entries[0].Surface != `は\u{306A}` {
		t.Errorf("escapes must be kept when disabled: %q", entries[0].Surface)
	}
}

func TestEntryLoader_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		line  int
	}{
		{"empty surface", ",はな,0\n", ErrMalformedEntry, 1},
		{"empty reading", "はな,,0\n", ErrMalformedEntry, 1},
		{"missing accent", "はな,はな\n", ErrMalformedEntry, 1},
		{"negative accent", "はな,はな,0\nあめ,あめ,-1\n", ErrInvalidAccentIndex, 2},
		{"non-numeric accent", "はな,はな,x\n", ErrInvalidAccentIndex, 1},
		{"accent beyond morae", "はな,はな,3\n", ErrInvalidAccentIndex, 1},
		{"unterminated quote", "\"はな,はな,0\n", ErrMalformedEntry, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadAll(t, tt.input, nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("invalid result. want = %v, got = %v", tt.want, err)
			}
			var ee *EntryError
			if !errors.As(err, &ee) {
				t.Fatalf("error does not identify the entry: %v", err)
			}
			if ee.Line != tt.line {
				t.Errorf("invalid line. want = %d, got = %d", tt.line, ee.Line)
			}
		})
	}
}

func TestEntryLoader_StopsAtFirstError(t *testing.T) {
	entries, err := loadAll(t, "はな,はな,0\nあめ,あめ,-1\nはし,はし,1\n", nil)
	if !errors.Is(err, ErrInvalidAccentIndex) {
		t.Fatalf("invalid result. want = %v, got = %v", ErrInvalidAccentIndex, err)
	}
	if len(entries) != 1 {
		t.Errorf("invalid result. want = 1 entry before the error, got = %d", len(entries))
	}
}

func TestEntryError_Message(t *testing.T) {
	_, err := loadAll(t, "はな,はな,3\n", nil)
	want := `accent core 3 exceeds 2 morae of "はな": invalid accent index: surface "はな" at line 1`
	if err == nil || err.Error() != want {
		t.Errorf("invalid result. want = %s, got = %v", want, err)
	}
}
