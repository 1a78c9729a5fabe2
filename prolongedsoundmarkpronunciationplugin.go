package kansaiaccent

import (
	"fmt"
	"strings"
)

type ProlongedSoundMarkPronunciationPluginConfig struct {
	ProlongedSoundMarks *[]string
	ReplacementSymbol   *string
}

// ProlongedSoundMarkPronunciationPlugin collapses a run of two or more
// prolonged sound marks (ーー, 〜〜) into a single replacement symbol.
type ProlongedSoundMarkPronunciationPlugin struct {
	config                *ProlongedSoundMarkPronunciationPluginConfig
	prolongedSoundMarkMap map[rune]bool
	replacementSymbol     string
}

func NewProlongedSoundMarkPronunciationPlugin(config *ProlongedSoundMarkPronunciationPluginConfig) *ProlongedSoundMarkPronunciationPlugin {
	if config == nil {
		config = &ProlongedSoundMarkPronunciationPluginConfig{}
	}
	return &ProlongedSoundMarkPronunciationPlugin{
		config:                config,
		prolongedSoundMarkMap: map[rune]bool{},
	}
}

func (p *ProlongedSoundMarkPronunciationPlugin) GetConfigStruct() interface{} {
	if p.config == nil {
		p.config = &ProlongedSoundMarkPronunciationPluginConfig{}
	}
	return p.config
}

func (p *ProlongedSoundMarkPronunciationPlugin) SetUp() error {
	if p.config.ProlongedSoundMarks == nil || len(*p.config.ProlongedSoundMarks) == 0 {
		return fmt.Errorf("ProlongedSoundMarkPronunciationPlugin: prolongedSoundMarks is not specified")
	}
	if p.config.ReplacementSymbol == nil {
		return fmt.Errorf("ProlongedSoundMarkPronunciationPlugin: replacementSymbol is not specified")
	}
	if p.prolongedSoundMarkMap == nil {
		p.prolongedSoundMarkMap = map[rune]bool{}
	}
	for _, s := range *p.config.ProlongedSoundMarks {
		runes := []rune(s)
		if len(runes) > 0 {
			p.prolongedSoundMarkMap[runes[0]] = true
		}
	}
	p.replacementSymbol = *p.config.ReplacementSymbol
	p.config = nil
	return nil
}

func (p *ProlongedSoundMarkPronunciationPlugin) Rewrite(reading string) string {
	var b strings.Builder
	markRun := 0
	var lastMark rune
	endRun := func() {
		switch {
		case markRun == 1:
			b.WriteRune(lastMark)
		case markRun > 1:
			b.WriteString(p.replacementSymbol)
		}
		markRun = 0
	}
	for _, r := range reading {
		if p.prolongedSoundMarkMap[r] {
			markRun++
			lastMark = r
			continue
		}
		endRun()
		b.WriteRune(r)
	}
	endRun()
	return b.String()
}
