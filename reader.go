package jodd

import (
	"bufio"
	"errors"
	"io"
)

var (
	ErrLineTooLong = errors.New("line too long")
)

// LineReader reads one wire line at a time, with the terminator stripped.
type LineReader interface {
	ReadLine() ([]byte, error)
}

// Reader is the input seam for parsing: line-oriented header text plus
// raw body characters from the same stream.
type Reader interface {
	LineReader
	io.Reader
}

type BufferedReader struct {
	*bufio.Reader
}

func NewReader(r io.Reader) *BufferedReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &BufferedReader{Reader: br}
}

func (r *BufferedReader) ReadLine() ([]byte, error) {
	tmp, isPrefix, err := r.Reader.ReadLine()
	if err != nil {
		return nil, err
	}

	// NOTE: tmp references to inner buffer in bufio.Reader.
	//       must copy from tmp byte slice to own buffer
	line := make([]byte, len(tmp))
	copy(line, tmp)

	if !isPrefix {
		return line, nil
	}

	// read continued lines
	for i := 0; i < 10; i++ {
		tmp, isPrefix, err := r.Reader.ReadLine()
		if err != nil {
			return nil, err
		}
		line = append(line, tmp...)
		if !isPrefix {
			return line, nil
		}
	}

	return line, ErrLineTooLong
}
