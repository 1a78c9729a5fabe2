package dictionary

import (
	"fmt"
	"io"
	"strconv"
)

const (
	// NumberOfColumns is the arity of a lexicon row.
	NumberOfColumns = 14
	// Unused marks an inapplicable column.
	Unused = "*"
)

// LexiconRow is one line of the analyzer lexicon, in column order.
type LexiconRow struct {
	Surface         string
	LeftId          int
	RightId         int
	Cost            int
	Pos             PosTiers
	ConjugationType string
	ConjugationForm string
	BaseForm        string
	Reading         string
	Pronunciation   string
	AccentCore      int
}

// Fields returns the 14 columns in output order.
func (row *LexiconRow) Fields() []string {
	return []string{
		row.Surface,
		strconv.Itoa(row.LeftId),
		strconv.Itoa(row.RightId),
		strconv.Itoa(row.Cost),
		row.Pos[0],
		row.Pos[1],
		row.Pos[2],
		row.Pos[3],
		row.ConjugationType,
		row.ConjugationForm,
		row.BaseForm,
		row.Reading,
		row.Pronunciation,
		strconv.Itoa(row.AccentCore),
	}
}

// ParseLexiconRow is the inverse of Fields.
func ParseLexiconRow(cols []string) (*LexiconRow, error) {
	if len(cols) != NumberOfColumns {
		return nil, fmt.Errorf("columns length must be %d, got %d", NumberOfColumns, len(cols))
	}
	var (
		ints [3]int
		err  error
	)
	for i := range ints {
		ints[i], err = strconv.Atoi(cols[i+1])
		if err != nil {
			return nil, fmt.Errorf("%s: column %d", err, i+1)
		}
	}
	accent, err := strconv.Atoi(cols[13])
	if err != nil {
		return nil, fmt.Errorf("%s: column 13", err)
	}
	return &LexiconRow{
		Surface:         cols[0],
		LeftId:          ints[0],
		RightId:         ints[1],
		Cost:            ints[2],
		Pos:             PosTiers{cols[4], cols[5], cols[6], cols[7]},
		ConjugationType: cols[8],
		ConjugationForm: cols[9],
		BaseForm:        cols[10],
		Reading:         cols[11],
		Pronunciation:   cols[12],
		AccentCore:      accent,
	}, nil
}

// LexiconRowReader reads back a lexicon written by RowEmitter.
type LexiconRowReader struct {
	r         *lexiconReader
	recordBuf []string
}

func NewLexiconRowReader(input io.Reader) *LexiconRowReader {
	return &LexiconRowReader{
		r: newLexiconReader(input, ',', false, false),
	}
}

// Next returns the next row, or io.EOF at the end of the input.
func (lr *LexiconRowReader) Next() (*LexiconRow, error) {
	cols, err := lr.r.readRecord(lr.recordBuf)
	if err != nil {
		return nil, err
	}
	lr.recordBuf = cols
	row, err := ParseLexiconRow(cols)
	if err != nil {
		return nil, fmt.Errorf("invalid format: %s: at line %d", err, lr.r.numLine)
	}
	return row, nil
}

// NumLine is the line the last row started on.
func (lr *LexiconRowReader) NumLine() int {
	return lr.r.numLine
}
