package dictionary

import (
	"encoding/csv"
	"io"
	"unicode/utf8"
)

// PronunciationFunc derives the pronunciation column from a reading.
type PronunciationFunc func(reading string) string

// IdentityPronunciation returns the reading unchanged.
func IdentityPronunciation(reading string) string {
	return reading
}

// EmitterConfig holds the values a row takes when the source entry does
// not model them.
type EmitterConfig struct {
	LeftId        int
	RightId       int
	Cost          int
	PosTable      *PosTable
	Pronunciation PronunciationFunc
}

// DefaultEmitterConfig returns context ids 0, cost 1, the standard labels
// and the reading as pronunciation.
func DefaultEmitterConfig() *EmitterConfig {
	return &EmitterConfig{
		LeftId:        0,
		RightId:       0,
		Cost:          1,
		PosTable:      NewDefaultPosTable(),
		Pronunciation: IdentityPronunciation,
	}
}

// RowEmitter maps entries to lexicon rows and writes one line per entry in
// call order.
type RowEmitter struct {
	config *EmitterConfig
	w      *csv.Writer
	// NumRows counts the lines written so far.
	NumRows int
}

func NewRowEmitter(output io.Writer, config *EmitterConfig) *RowEmitter {
	if config == nil {
		config = DefaultEmitterConfig()
	}
	w := csv.NewWriter(output)
	w.UseCRLF = false
	return &RowEmitter{
		config: config,
		w:      w,
	}
}

// Row maps entry to its lexicon row. It does not write anything.
func (e *RowEmitter) Row(entry *SourceEntry) (*LexiconRow, error) {
	pronounce := e.config.Pronunciation
	if pronounce == nil {
		pronounce = IdentityPronunciation
	}
	baseForm := entry.BaseForm
	if baseForm == "" {
		baseForm = entry.Surface
	}
	row := &LexiconRow{
		Surface:         entry.Surface,
		LeftId:          e.config.LeftId,
		RightId:         e.config.RightId,
		Cost:            e.config.Cost,
		Pos:             e.config.PosTable.Lookup(entry.Pos),
		ConjugationType: Unused,
		ConjugationForm: Unused,
		BaseForm:        baseForm,
		Reading:         entry.Reading,
		Pronunciation:   pronounce(entry.Reading),
		AccentCore:      entry.AccentCore,
	}
	for _, f := range row.Fields() {
		if !utf8.ValidString(f) {
			return nil, &EntryError{
				Err:     ErrEncoding,
				Line:    entry.Line,
				Surface: entry.Surface,
				Detail:  "invalid UTF-8 sequence",
			}
		}
	}
	return row, nil
}

// Emit writes the row for entry. Fields holding a comma, a quote or a line
// break are quoted.
func (e *RowEmitter) Emit(entry *SourceEntry) error {
	row, err := e.Row(entry)
	if err != nil {
		return err
	}
	err = e.w.Write(row.Fields())
	if err != nil {
		return err
	}
	e.NumRows++
	return nil
}

func (e *RowEmitter) Flush() error {
	e.w.Flush()
	return e.w.Error()
}
