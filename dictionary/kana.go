package dictionary

import (
	"strings"

	"golang.org/x/text/width"
)

const (
	hiraganaStart = 'ぁ'
	hiraganaEnd   = 'ゖ'
	kanaOffset    = 'ァ' - 'ぁ'
)

// small kana that attach to the preceding mora
var smallKana = map[rune]bool{
	'ゃ': true, 'ゅ': true, 'ょ': true, 'ぁ': true, 'ぃ': true, 'ぅ': true, 'ぇ': true, 'ぉ': true, 'ゎ': true,
	'ャ': true, 'ュ': true, 'ョ': true, 'ァ': true, 'ィ': true, 'ゥ': true, 'ェ': true, 'ォ': true, 'ヮ': true,
}

// voiced sound marks left behind by widening half-width katakana
var soundMarks = map[rune]bool{
	'\u3099': true, '\u309A': true, '゛': true, '゜': true,
}

// widenHalfwidth maps half-width katakana to full-width. Other
// characters, ASCII included, are left as they are.
func widenHalfwidth(s string) string {
	return strings.Map(func(r rune) rune {
		p := width.LookupRune(r)
		if p.Kind() == width.EastAsianHalfwidth && p.Wide() != 0 {
			return p.Wide()
		}
		return r
	}, s)
}

// ToKatakana converts hiragana to katakana. Half-width katakana is widened
// first so that ｶﾅ and カナ produce the same result.
func ToKatakana(s string) string {
	s = widenHalfwidth(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= hiraganaStart && r <= hiraganaEnd:
			r += kanaOffset
		case r == 'ゝ' || r == 'ゞ':
			r += kanaOffset
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MoraCount returns the number of morae in a kana reading. Small ya/yu/yo
// and small vowels merge into the preceding mora; the geminate mark, the
// prolonged sound mark and the moraic nasal count as one mora each.
func MoraCount(reading string) int {
	count := 0
	first := true
	for _, r := range widenHalfwidth(reading) {
		if soundMarks[r] {
			continue
		}
		if smallKana[r] && !first {
			continue
		}
		first = false
		count++
	}
	return count
}
