package dictionary

import (
	"errors"
	"strconv"
	"strings"
)

var errAccentNotation = errors.New("unknown accent notation")

// AccentNotation decodes the accent column of the source dictionary into
// an accent core (1-indexed mora of the pitch fall, 0 for none).
type AccentNotation interface {
	Name() string
	AccentCore(s string) (int, error)
}

// AccentNotationByName returns the notation registered under name.
func AccentNotationByName(name string) (AccentNotation, error) {
	switch name {
	case "", "digits", "DigitPatternNotation":
		return DigitPatternNotation{}, nil
	case "keihan", "KeihanCoreNotation":
		return KeihanCoreNotation{}, nil
	}
	return nil, errors.New(name + ": " + errAccentNotation.Error())
}

// parsePlain handles the forms shared by every notation. ok is false when s
// needs a notation specific decoder.
func parsePlain(s string) (core int, ok bool, err error) {
	if s == "" || s == "-" {
		return 0, true, nil
	}
	if s[0] == '-' || s[0] == '+' || isDigits(s) {
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, true, err
		}
		if i < 0 {
			return 0, true, errors.New("negative accent core " + s)
		}
		return i, true, nil
	}
	return 0, false, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isHL(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != 'H' && s[i] != 'L' {
			return false
		}
	}
	return true
}

// DigitPatternNotation reads an onset mark followed by one digit per mora
// (H00, L02). The core is the position of the last non-zero digit.
type DigitPatternNotation struct{}

func (DigitPatternNotation) Name() string {
	return "digits"
}

func (DigitPatternNotation) AccentCore(s string) (int, error) {
	s = strings.TrimSpace(s)
	core, ok, err := parsePlain(s)
	if ok {
		return core, err
	}
	if isHL(s) {
		return 0, nil
	}
	if (s[0] == 'H' || s[0] == 'L') && isDigits(s[1:]) {
		nucleus := 0
		for i, c := range s[1:] {
			if c != '0' {
				nucleus = i + 1
			}
		}
		return nucleus, nil
	}
	return 0, errors.New("unrecognized accent " + strconv.Quote(s))
}

// KeihanCoreNotation reads high/low register patterns (HHL, LLH) and
// onset-plus-core forms (H1, L02). Only the first of several
// slash-separated alternatives is used.
type KeihanCoreNotation struct{}

func (KeihanCoreNotation) Name() string {
	return "keihan"
}

func (KeihanCoreNotation) AccentCore(s string) (int, error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	core, ok, err := parsePlain(s)
	if ok {
		return core, err
	}
	if isHL(s) {
		if s[0] == 'H' {
			if i := strings.IndexByte(s, 'L'); i >= 0 {
				return i, nil
			}
			return 1, nil
		}
		if i := strings.IndexByte(s, 'H'); i >= 0 {
			return i, nil
		}
		return 0, nil
	}
	if (s[0] == 'H' || s[0] == 'L') && isDigits(s[1:]) {
		nucleus, err := strconv.Atoi(s[1:])
		if err != nil {
			return 0, err
		}
		if nucleus == 0 && s[0] == 'H' {
			return 1, nil
		}
		return nucleus, nil
	}
	return 0, errors.New("unrecognized accent " + strconv.Quote(s))
}
