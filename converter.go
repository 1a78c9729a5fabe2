package kansaiaccent

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/nullponull/kansai-accent-dictionary/dictionary"
)

// Stats counts what a conversion read and wrote.
type Stats struct {
	Entries    int
	Rows       int
	Skipped    int
	Duplicates int
}

// Converter streams an accent dictionary into one of the output lexicon
// formats. Entries are converted one at a time in input order, and the
// first bad entry aborts the run.
type Converter struct {
	loaderConfig  *dictionary.LoaderConfig
	emitterConfig *dictionary.EmitterConfig
	priority      int
}

// NewConverter builds a converter from settings, or from the embedded
// defaults when settings is nil.
func NewConverter(settings *SettingsJSON) (*Converter, error) {
	if settings == nil {
		var err error
		settings, err = LoadDefaultSettings()
		if err != nil {
			return nil, err
		}
	}
	bc := settings.GetBaseConfig()

	notation, err := dictionary.AccentNotationByName(bc.AccentNotation)
	if err != nil {
		return nil, err
	}
	if len(bc.Delimiter) != 1 {
		return nil, fmt.Errorf("delimiter must be a single byte: %q", bc.Delimiter)
	}

	postable, err := settings.GetPosTable()
	if err != nil {
		return nil, err
	}

	plugins, err := settings.GetPronunciationPluginArray(DefMakePronunciationPlugin)
	if err != nil {
		return nil, err
	}
	for _, p := range plugins {
		err := p.SetUp()
		if err != nil {
			return nil, err
		}
	}

	return &Converter{
		loaderConfig: &dictionary.LoaderConfig{
			Delimiter:     bc.Delimiter[0],
			Notation:      notation,
			UnicodeEscape: bc.UnicodeEscape,
			Comments:      bc.Comments,
		},
		emitterConfig: &dictionary.EmitterConfig{
			LeftId:        bc.LeftId,
			RightId:       bc.RightId,
			Cost:          bc.Cost,
			PosTable:      postable,
			Pronunciation: PronunciationChain(plugins),
		},
		priority: bc.Priority,
	}, nil
}

// ConvertMecab writes one 14-column lexicon row per entry of input.
func (c *Converter) ConvertMecab(input io.Reader, output io.Writer) (*Stats, error) {
	stats := &Stats{}
	loader := dictionary.NewEntryLoader(input, c.loaderConfig)
	emitter := dictionary.NewRowEmitter(output, c.emitterConfig)
	for {
		entry, err := loader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, err
		}
		stats.Entries++
		err = emitter.Emit(entry)
		if err != nil {
			return stats, err
		}
	}
	err := emitter.Flush()
	stats.Rows = emitter.NumRows
	return stats, err
}

// ConvertVoicevox writes a VOICEVOX user dictionary. Affixes, entries
// without a reading and repeated surface/reading pairs are skipped.
func (c *Converter) ConvertVoicevox(input io.Reader, output io.Writer) (*Stats, error) {
	stats := &Stats{}
	seen := hashset.New()
	loader := dictionary.NewEntryLoader(input, c.loaderConfig)
	w := dictionary.NewVoicevoxWriter(output)
	for {
		entry, err := loader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, err
		}
		stats.Entries++
		if dictionary.IsAffix(entry.Surface) {
			stats.Skipped++
			continue
		}
		row, ok := dictionary.NewVoicevoxRow(entry, c.priority)
		if !ok {
			stats.Skipped++
			continue
		}
		if n := dictionary.MoraCount(row.Reading); row.AccentCore > n {
			return stats, &dictionary.EntryError{
				Err:     dictionary.ErrInvalidAccentIndex,
				Line:    entry.Line,
				Surface: entry.Surface,
				Detail:  fmt.Sprintf("accent core %d exceeds %d morae of %q", row.AccentCore, n, row.Reading),
			}
		}
		key := row.Surface + "\t" + row.Reading
		if seen.Contains(key) {
			stats.Duplicates++
			continue
		}
		seen.Add(key)
		err = w.Write(row)
		if err != nil {
			return stats, err
		}
	}
	err := w.Flush()
	stats.Rows = w.NumRows
	return stats, err
}
