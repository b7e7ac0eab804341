package jodd

import (
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

// wireEncoding is the fixed single-byte encoding used for all raw body
// storage and stream I/O, independent of any declared charset.
var wireEncoding encoding.Encoding = charmap.ISO8859_1

// lookupCharset resolves a declared charset name. Unknown or empty
// names fall back to the wire encoding.
func lookupCharset(name string) encoding.Encoding {
	if name == "" {
		return wireEncoding
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		Logger().Debug("unknown charset, using wire encoding",
			zap.String("charset", name))
		return wireEncoding
	}

	return enc
}

func encodeText(s string, enc encoding.Encoding) ([]byte, error) {
	return enc.NewEncoder().Bytes([]byte(s))
}

func decodeText(b []byte, enc encoding.Encoding) (string, error) {
	d, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// encodeWire converts a string of wire characters to bytes. Fails only
// when the string holds characters outside the wire encoding.
func encodeWire(s string) ([]byte, error) {
	return encodeText(s, wireEncoding)
}

// decodeWire converts raw bytes to wire characters. Every byte maps to
// a character in ISO-8859-1, so this never fails.
func decodeWire(b []byte) string {
	s, _ := decodeText(b, wireEncoding)
	return s
}

// convertCharset re-encodes s from one charset to another. On any
// conversion failure the input is returned unchanged.
func convertCharset(s string, from, to encoding.Encoding) string {
	if from == to {
		return s
	}

	b, err := encodeText(s, from)
	if err != nil {
		return s
	}

	out, err := decodeText(b, to)
	if err != nil {
		return s
	}

	return out
}
