package jodd

import (
	"testing"
)

func TestConvertCharset(t *testing.T) {
	utf8 := lookupCharset("UTF-8")

	// UTF-8 "é" is C3 A9, which reads as "Ã©" in the wire encoding
	if got := convertCharset("é", utf8, wireEncoding); got != "Ã©" {
		t.Fatalf("convertCharset to wire = %q", got)
	}
	if got := convertCharset("Ã©", wireEncoding, utf8); got != "é" {
		t.Fatalf("convertCharset from wire = %q", got)
	}
}

func TestConvertCharsetSameEncoding(t *testing.T) {
	if got := convertCharset("abc", wireEncoding, wireEncoding); got != "abc" {
		t.Fatalf("got %q, want %q", got, "abc")
	}
}

func TestLookupCharsetFallback(t *testing.T) {
	if lookupCharset("") != wireEncoding {
		t.Fatal("empty charset must resolve to the wire encoding")
	}
	if lookupCharset("no-such-charset") != wireEncoding {
		t.Fatal("unknown charset must fall back to the wire encoding")
	}
}

func TestWireEncodingRoundTrip(t *testing.T) {
	raw := []byte{0x00, 0x41, 0x7F, 0x80, 0xA9, 0xFF}

	s := decodeWire(raw)
	back, err := encodeWire(s)
	if err != nil {
		t.Fatal(err)
	}

	if string(back) != string(raw) {
		t.Fatalf("got % x, want % x", back, raw)
	}
}

func TestEncodeWireFailure(t *testing.T) {
	// CJK characters have no ISO-8859-1 representation
	if _, err := encodeWire("漢"); err == nil {
		t.Fatal("expected encoding failure")
	}
}
