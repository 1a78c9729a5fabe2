package kansaiaccent

import (
	"github.com/nullponull/kansai-accent-dictionary/dictionary"
)

type Settings interface {
	GetBaseConfig() *BaseConfig
}

type BaseConfig struct {
	LeftId         int
	RightId        int
	Cost           int
	Priority       int
	AccentNotation string
	UnicodeEscape  bool
	Comments       bool
	Delimiter      string
	PosTable       map[string][]string
	PosTableFile   string
}

type Plugin interface {
	GetConfigStruct() interface{}
}

// PronunciationPlugin rewrites the reading of an entry into the
// pronunciation column. Plugins run in the order they are configured.
type PronunciationPlugin interface {
	Plugin
	SetUp() error
	Rewrite(reading string) string
}

type MakePronunciationPluginFunc func(n string) PronunciationPlugin

func DefMakePronunciationPlugin(k string) PronunciationPlugin {
	switch k {
	case "KatakanaPronunciationPlugin", "katakana":
		return NewKatakanaPronunciationPlugin()
	case "NormalizePronunciationPlugin", "normalize":
		return NewNormalizePronunciationPlugin(nil)
	case "ProlongedSoundMarkPronunciationPlugin", "prolongedSoundMark":
		return NewProlongedSoundMarkPronunciationPlugin(nil)
	}
	return nil
}

// PronunciationChain composes plugins into one transform. An empty chain
// is the identity.
func PronunciationChain(plugins []PronunciationPlugin) dictionary.PronunciationFunc {
	if len(plugins) == 0 {
		return dictionary.IdentityPronunciation
	}
	return func(reading string) string {
		for _, p := range plugins {
			reading = p.Rewrite(reading)
		}
		return reading
	}
}
