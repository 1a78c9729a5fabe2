package dictionary

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

const alternativeSeparator = "・"

// VoicevoxRow is one line of a VOICEVOX user dictionary:
// surface,accent core,katakana reading,priority.
type VoicevoxRow struct {
	Surface    string
	AccentCore int
	Reading    string
	Priority   int
	// Line is the source line of the entry, not written out.
	Line int
}

func (row *VoicevoxRow) Fields() []string {
	return []string{
		row.Surface,
		strconv.Itoa(row.AccentCore),
		row.Reading,
		strconv.Itoa(row.Priority),
	}
}

// IsAffix reports whether a headword is a bound form (-さん) or a bare
// alternative marker, which VOICEVOX cannot register.
func IsAffix(word string) bool {
	return strings.HasPrefix(word, "-") || strings.HasPrefix(word, alternativeSeparator)
}

// FirstAlternative returns the part of s before the first "・".
func FirstAlternative(s string) string {
	if i := strings.Index(s, alternativeSeparator); i >= 0 {
		return s[:i]
	}
	return s
}

// NewVoicevoxRow derives a row from entry. ok is false when the entry has
// no pronounceable reading.
func NewVoicevoxRow(entry *SourceEntry, priority int) (row *VoicevoxRow, ok bool) {
	reading := ToKatakana(FirstAlternative(entry.Reading))
	if MoraCount(reading) == 0 {
		return nil, false
	}
	surface := entry.BaseForm
	if surface == "" {
		surface = entry.Surface
	}
	return &VoicevoxRow{
		Surface:    FirstAlternative(surface),
		AccentCore: entry.AccentCore,
		Reading:    reading,
		Priority:   priority,
		Line:       entry.Line,
	}, true
}

// VoicevoxWriter writes VoicevoxRow values as comma-separated records.
type VoicevoxWriter struct {
	w       *csv.Writer
	NumRows int
}

func NewVoicevoxWriter(output io.Writer) *VoicevoxWriter {
	return &VoicevoxWriter{
		w: csv.NewWriter(output),
	}
}

func (vw *VoicevoxWriter) Write(row *VoicevoxRow) error {
	fields := row.Fields()
	for _, f := range fields {
		if !utf8.ValidString(f) {
			return &EntryError{Err: ErrEncoding, Line: row.Line, Surface: row.Surface, Detail: "invalid UTF-8 sequence"}
		}
	}
	err := vw.w.Write(fields)
	if err != nil {
		return err
	}
	vw.NumRows++
	return nil
}

func (vw *VoicevoxWriter) Flush() error {
	vw.w.Flush()
	return vw.w.Error()
}
