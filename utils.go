package jodd

import (
	"bytes"
	"io"
)

func parseStartLine(line []byte) ([]byte, []byte, []byte, bool) {
	parts := bytes.SplitN(line, []byte(" "), 3)
	if len(parts) != 3 {
		return nil, nil, nil, false
	}

	return parts[0], parts[1], parts[2], true
}

func isBlankLine(line []byte) bool {
	return len(bytes.TrimSpace(line)) == 0
}

func writeAll(w io.Writer, bs ...[]byte) (int64, error) {
	var t int64

	for _, b := range bs {
		for len(b) > 0 {
			n, err := w.Write(b)
			if n > 0 {
				b = b[n:]
				t += int64(n)
			}
			if err != nil {
				return t, err
			}
		}
	}

	return t, nil
}
