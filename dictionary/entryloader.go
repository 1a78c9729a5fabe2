package dictionary

import (
	"io"
	"strings"
)

// SourceEntry is one record of the accent dictionary.
type SourceEntry struct {
	Surface    string
	Reading    string
	AccentCore int
	// Pos is the raw classification label, empty when the source has none.
	Pos string
	// BaseForm is the explicit dictionary form, empty when not supplied.
	BaseForm string
	Line     int
}

// Validate checks the required fields and the accent bound.
func (e *SourceEntry) Validate() error {
	if e.Surface == "" {
		return malformed(e.Line, e.Surface, "surface is empty")
	}
	if e.Reading == "" {
		return malformed(e.Line, e.Surface, "reading is empty")
	}
	if e.AccentCore < 0 {
		return invalidAccent(e.Line, e.Surface, "accent core %d is negative", e.AccentCore)
	}
	if n := MoraCount(e.Reading); e.AccentCore > n {
		return invalidAccent(e.Line, e.Surface, "accent core %d exceeds %d morae of %q", e.AccentCore, n, e.Reading)
	}
	return nil
}

// LoaderConfig controls how an EntryLoader splits and decodes records.
type LoaderConfig struct {
	// Delimiter separates fields, ',' when zero.
	Delimiter byte
	// Notation decodes the accent column, DigitPatternNotation when nil.
	Notation AccentNotation
	// UnicodeEscape enables \uXXXX escapes in fields.
	UnicodeEscape bool
	// Comments skips lines starting with '#'. When false such lines are
	// entries like any other.
	Comments bool
}

const (
	colSurface = iota
	colReading
	colAccent
	colPos
	colBaseForm
	numColumns
)

// positional layout: surface,reading,accent[,pos[,baseForm]]
var positionalColumns = [numColumns]int{0, 1, 2, 3, 4}

var headerNames = map[string]int{
	"word":       colSurface,
	"surface":    colSurface,
	"reading":    colReading,
	"accent":     colAccent,
	"accentcore": colAccent,
	"pos":        colPos,
	"original":   colBaseForm,
	"baseform":   colBaseForm,
}

// columns the dialect dictionary carries that have no place in a lexicon row
var ignoredHeaderNames = map[string]bool{
	"note":     true,
	"notes":    true,
	"comment":  true,
	"source":   true,
	"meaning":  true,
	"example":  true,
	"examples": true,
	"region":   true,
	"id":       true,
}

// EntryLoader streams SourceEntry values from an accent dictionary. It
// reads one record per call and cannot be rewound.
type EntryLoader struct {
	r         *lexiconReader
	notation  AccentNotation
	columns   [numColumns]int
	started   bool
	header    bool
	recordBuf []string
}

func NewEntryLoader(input io.Reader, config *LoaderConfig) *EntryLoader {
	if config == nil {
		config = &LoaderConfig{}
	}
	notation := config.Notation
	if notation == nil {
		notation = DigitPatternNotation{}
	}
	return &EntryLoader{
		r:        newLexiconReader(input, config.Delimiter, config.UnicodeEscape, config.Comments),
		notation: notation,
		columns:  positionalColumns,
	}
}

// HasHeader reports whether the input started with a column header. It is
// only meaningful after the first call to Next.
func (l *EntryLoader) HasHeader() bool {
	return l.header
}

// Next returns the next entry, or io.EOF when the input is exhausted.
func (l *EntryLoader) Next() (*SourceEntry, error) {
	cols, err := l.r.readRecord(l.recordBuf)
	if err != nil {
		return nil, err
	}
	l.recordBuf = cols

	if !l.started {
		l.started = true
		if l.parseHeader(cols) {
			cols, err = l.r.readRecord(l.recordBuf)
			if err != nil {
				return nil, err
			}
			l.recordBuf = cols
		}
	}
	return l.entry(cols, l.r.numLine)
}

// parseHeader reports whether cols is a column header. Every non-empty
// cell must be a column name and both the surface and the accent columns
// must be named; anything else is the first entry of a positional file.
func (l *EntryLoader) parseHeader(cols []string) bool {
	columns := [numColumns]int{-1, -1, -1, -1, -1}
	for i, cell := range cols {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name == "" || ignoredHeaderNames[name] {
			continue
		}
		c, ok := headerNames[name]
		if !ok {
			return false
		}
		if columns[c] < 0 {
			columns[c] = i
		}
	}
	if columns[colSurface] < 0 || columns[colAccent] < 0 {
		return false
	}
	l.header = true
	l.columns = columns
	return true
}

func (l *EntryLoader) column(cols []string, c int) (string, bool) {
	i := l.columns[c]
	if i < 0 || i >= len(cols) {
		return "", false
	}
	return strings.TrimSpace(cols[i]), true
}

func (l *EntryLoader) entry(cols []string, line int) (*SourceEntry, error) {
	surface, ok := l.column(cols, colSurface)
	if !ok || surface == "" {
		return nil, malformed(line, "", "surface is missing")
	}
	reading, ok := l.column(cols, colReading)
	if !ok && l.header && l.columns[colReading] < 0 {
		// the dialect dictionary writes headwords in kana
		reading, ok = surface, true
	}
	if !ok || reading == "" {
		return nil, malformed(line, surface, "reading is missing")
	}
	accent, ok := l.column(cols, colAccent)
	if !ok {
		return nil, malformed(line, surface, "accent is missing")
	}
	core, err := l.notation.AccentCore(accent)
	if err != nil {
		return nil, invalidAccent(line, surface, "%s", err)
	}
	pos, _ := l.column(cols, colPos)
	baseForm, _ := l.column(cols, colBaseForm)

	e := &SourceEntry{
		Surface:    surface,
		Reading:    reading,
		AccentCore: core,
		Pos:        pos,
		BaseForm:   baseForm,
		Line:       line,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}
