package kansaiaccent

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

type NormalizePronunciationPluginConfig struct {
	IgnoreNormalize *[]string
}

// NormalizePronunciationPlugin lower-cases and NFKC-normalizes the
// reading: half-width kana become full-width, full-width latin becomes
// ASCII. Characters listed in ignoreNormalize are left alone.
type NormalizePronunciationPlugin struct {
	config             *NormalizePronunciationPluginConfig
	ignoreNormalizeMap map[rune]bool
}

func NewNormalizePronunciationPlugin(config *NormalizePronunciationPluginConfig) *NormalizePronunciationPlugin {
	if config == nil {
		config = &NormalizePronunciationPluginConfig{}
	}
	return &NormalizePronunciationPlugin{
		config:             config,
		ignoreNormalizeMap: map[rune]bool{},
	}
}

func (p *NormalizePronunciationPlugin) GetConfigStruct() interface{} {
	if p.config == nil {
		p.config = &NormalizePronunciationPluginConfig{}
	}
	return p.config
}

func (p *NormalizePronunciationPlugin) SetUp() error {
	if p.ignoreNormalizeMap == nil {
		p.ignoreNormalizeMap = map[rune]bool{}
	}
	if p.config != nil && p.config.IgnoreNormalize != nil {
		for _, s := range *p.config.IgnoreNormalize {
			for _, r := range s {
				p.ignoreNormalizeMap[r] = true
			}
		}
	}
	p.config = nil
	return nil
}

func (p *NormalizePronunciationPlugin) Rewrite(reading string) string {
	var (
		b   strings.Builder
		run []rune
	)
	flush := func() {
		if len(run) > 0 {
			b.WriteString(norm.NFKC.String(string(run)))
			run = run[:0]
		}
	}
	for _, r := range reading {
		if p.ignoreNormalizeMap[r] {
			flush()
			b.WriteRune(r)
			continue
		}
		run = append(run, unicode.ToLower(r))
	}
	flush()
	return b.String()
}
