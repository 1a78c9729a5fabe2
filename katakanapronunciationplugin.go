package kansaiaccent

import (
	"github.com/nullponull/kansai-accent-dictionary/dictionary"
)

// KatakanaPronunciationPlugin writes the pronunciation in katakana, the
// script the analyzer's own dictionaries use for that column.
type KatakanaPronunciationPlugin struct {
	config *struct{}
}

func NewKatakanaPronunciationPlugin() *KatakanaPronunciationPlugin {
	return &KatakanaPronunciationPlugin{}
}

func (p *KatakanaPronunciationPlugin) GetConfigStruct() interface{} {
	if p.config == nil {
		p.config = &struct{}{}
	}
	return p.config
}

func (p *KatakanaPronunciationPlugin) SetUp() error {
	p.config = nil
	return nil
}

func (p *KatakanaPronunciationPlugin) Rewrite(reading string) string {
	return dictionary.ToKatakana(reading)
}
