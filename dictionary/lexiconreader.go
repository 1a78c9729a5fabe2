package dictionary

import (
	"bytes"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/nullponull/kansai-accent-dictionary/internal/lnreader"
)

// lexiconReader splits delimited records. Fields may be double-quoted, a
// doubled quote stands for a literal one and a quoted field may continue
// on the following lines. Lines starting with '#' are records unless
// comments is set.
type lexiconReader struct {
	r             *lnreader.LineNumberReader
	delimiter     byte
	unicodeEscape bool
	comments      bool
	quoted        []byte
	fieldBuffer   []byte
	numLine       int
}

func newLexiconReader(r io.Reader, delimiter byte, unicodeEscape bool, comments bool) *lexiconReader {
	if delimiter == 0 {
		delimiter = ','
	}
	return &lexiconReader{
		r:             lnreader.NewLineNumberReader(r),
		delimiter:     delimiter,
		unicodeEscape: unicodeEscape,
		comments:      comments,
	}
}

// readLine returns the first line of the next record. Blank lines are
// always skipped.
func (r *lexiconReader) readLine() ([]byte, error) {
	for {
		line, err := r.r.ReadLine()
		if err != nil {
			return nil, err
		}
		if lnreader.IsEmptyLine(line) {
			continue
		}
		if r.comments && lnreader.IsSkipLine(line) {
			continue
		}
		return line, nil
	}
}

// readRecord returns the fields of the next record. numLine is set to the
// line the record starts on.
func (r *lexiconReader) readRecord(dst []string) ([]string, error) {
	line, err := r.readLine()
	if err != nil {
		return nil, err
	}
	r.numLine = r.r.NumLine

	dst = dst[:0]
	for {
		if len(line) == 0 || line[0] != '"' {
			i := bytes.IndexByte(line, r.delimiter)
			field := line
			if i >= 0 {
				field = line[:i]
			}
			dst = append(dst, r.field(field))
			if i < 0 {
				return dst, nil
			}
			line = line[i+1:]
			continue
		}

		r.quoted = r.quoted[:0]
		line = line[1:]
		for {
			i := bytes.IndexByte(line, '"')
			if i < 0 {
				r.quoted = append(r.quoted, line...)
				r.quoted = append(r.quoted, '\n')
				line, err = r.r.ReadLine()
				if err == io.EOF {
					return nil, malformed(r.numLine, "", "unterminated quoted field")
				}
				if err != nil {
					return nil, err
				}
				continue
			}
			r.quoted = append(r.quoted, line[:i]...)
			line = line[i+1:]
			if len(line) > 0 && line[0] == '"' {
				r.quoted = append(r.quoted, '"')
				line = line[1:]
				continue
			}
			break
		}
		// text between a closing quote and the next delimiter is kept
		i := bytes.IndexByte(line, r.delimiter)
		rest := line
		if i >= 0 {
			rest = line[:i]
		}
		r.quoted = append(r.quoted, rest...)
		dst = append(dst, r.field(r.quoted))
		if i < 0 {
			return dst, nil
		}
		line = line[i+1:]
	}
}

func (r *lexiconReader) field(b []byte) string {
	if r.unicodeEscape {
		b = r.decode(b)
	}
	return string(b)
}

// decode expands \uXXXX and \u{X...} escapes. Malformed escapes are copied
// through unchanged.
func (r *lexiconReader) decode(s []byte) []byte {
	if bytes.Index(s, []byte(`\u`)) < 0 {
		return s
	}
	r.fieldBuffer = r.fieldBuffer[:0]
	for len(s) > 0 {
		i := bytes.Index(s, []byte(`\u`))
		if i < 0 {
			break
		}
		r.fieldBuffer = append(r.fieldBuffer, s[:i]...)
		s = s[i:]
		rc, n := parseEscape(s)
		if n == 0 {
			r.fieldBuffer = append(r.fieldBuffer, s[:2]...)
			s = s[2:]
			continue
		}
		r.fieldBuffer = utf8.AppendRune(r.fieldBuffer, rc)
		s = s[n:]
	}
	return append(r.fieldBuffer, s...)
}

// parseEscape decodes the escape at the head of s and reports how many
// bytes it consumed, 0 if it is not a valid escape.
func parseEscape(s []byte) (rune, int) {
	var hex []byte
	n := 0
	if len(s) > 2 && s[2] == '{' {
		end := bytes.IndexByte(s, '}')
		if end < 0 {
			return 0, 0
		}
		hex = s[3:end]
		n = end + 1
	} else {
		if len(s) < 6 {
			return 0, 0
		}
		hex = s[2:6]
		n = 6
	}
	if len(hex) == 0 || len(hex) > 6 {
		return 0, 0
	}
	v, err := strconv.ParseUint(string(hex), 16, 32)
	if err != nil || v > utf8.MaxRune {
		return 0, 0
	}
	return rune(v), n
}
