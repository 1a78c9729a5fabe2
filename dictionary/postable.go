package dictionary

import (
	"fmt"
	"io"
	"strings"
)

// PosTiers is the part-of-speech column group of a lexicon row.
type PosTiers [4]string

var GenericPos = PosTiers{"名詞", "一般", "*", "*"}

var defaultPosLabels = []struct {
	label string
	tiers PosTiers
}{
	{"名", PosTiers{"名詞", "一般", "*", "*"}},
	{"動", PosTiers{"動詞", "自立", "*", "*"}},
	{"形", PosTiers{"形容詞", "自立", "*", "*"}},
	{"副", PosTiers{"副詞", "一般", "*", "*"}},
	{"連語", PosTiers{"名詞", "一般", "*", "*"}},
	{"感", PosTiers{"感動詞", "*", "*", "*"}},
	{"接続", PosTiers{"接続詞", "*", "*", "*"}},
	{"助", PosTiers{"助詞", "*", "*", "*"}},
}

// PosTable resolves the short classification labels of the accent
// dictionary into part-of-speech tiers. Labels are kept in insertion order.
type PosTable struct {
	table    []string
	contains map[string]PosTiers
}

func NewPosTable() *PosTable {
	return &PosTable{
		contains: map[string]PosTiers{},
	}
}

// NewDefaultPosTable returns a table holding the dictionary's standard labels.
func NewDefaultPosTable() *PosTable {
	pt := NewPosTable()
	for _, l := range defaultPosLabels {
		tiers := l.tiers
		pt.Set(l.label, tiers[:]...)
	}
	return pt
}

// Set registers label. Missing tiers are filled with "*".
func (pt *PosTable) Set(label string, tiers ...string) {
	var t PosTiers
	for i := range t {
		if i < len(tiers) && tiers[i] != "" {
			t[i] = tiers[i]
		} else {
			t[i] = "*"
		}
	}
	if _, ok := pt.contains[label]; !ok {
		pt.table = append(pt.table, label)
	}
	pt.contains[label] = t
}

// Lookup returns the tiers for label, or GenericPos for an empty or
// unknown label.
func (pt *PosTable) Lookup(label string) PosTiers {
	if pt == nil {
		return GenericPos
	}
	t, ok := pt.contains[strings.TrimSpace(label)]
	if !ok {
		return GenericPos
	}
	return t
}

func (pt *PosTable) Labels() []string {
	return append([]string(nil), pt.table...)
}

func (t PosTiers) String() string {
	return strings.Join(t[:], ",")
}

// ReadPosTable adds the records of a label table to pt. Each record is
// label,pos[,sub1[,sub2[,sub3]]].
func (pt *PosTable) ReadPosTable(input io.Reader) error {
	var recordBuf []string
	r := newLexiconReader(input, ',', false, true)
	for {
		cols, err := r.readRecord(recordBuf)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		recordBuf = cols
		if len(cols) < 2 || len(cols) > 5 {
			return fmt.Errorf("invalid format: columns length must be 2 to 5: at line %d", r.numLine)
		}
		label := strings.TrimSpace(cols[0])
		if label == "" {
			return fmt.Errorf("label is empty at line %d", r.numLine)
		}
		pt.Set(label, cols[1:]...)
	}
}
