// Package lnreader reads newline-terminated records and counts the lines
// consumed so that errors can point at the offending line.
package lnreader

import (
	"bufio"
	"bytes"
	"io"
)

var bom = []byte{0xef, 0xbb, 0xbf}

type LineNumberReader struct {
	r         *bufio.Reader
	rawBuffer []byte
	NumLine   int
}

func NewLineNumberReader(r io.Reader) *LineNumberReader {
	return &LineNumberReader{
		r: bufio.NewReader(r),
	}
}

// ReadLine returns the next line without its "\n" or "\r\n" terminator.
// The slice is only valid until the next call. A byte order mark at the
// beginning of the input is dropped.
func (r *LineNumberReader) ReadLine() ([]byte, error) {
	line, err := r.r.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		r.rawBuffer = append(r.rawBuffer[:0], line...)
		for err == bufio.ErrBufferFull {
			line, err = r.r.ReadSlice('\n')
			r.rawBuffer = append(r.rawBuffer, line...)
		}
		line = r.rawBuffer
	}
	if len(line) > 0 && err == io.EOF {
		err = nil
	} else if err == nil {
		line = bytes.TrimSuffix(line[:len(line)-1], []byte{'\r'})
	}
	if err != nil {
		return nil, err
	}
	if r.NumLine == 0 {
		line = bytes.TrimPrefix(line, bom)
	}
	r.NumLine++
	return line, nil
}

// IsSkipLine reports whether l is blank or a '#' comment.
func IsSkipLine(l []byte) bool {
	return (len(l) > 0 && l[0] == '#') || IsEmptyLine(l)
}

func IsEmptyLine(l []byte) bool {
	return len(bytes.Trim(l, " \t\r\n")) == 0
}
