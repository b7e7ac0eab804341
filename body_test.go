package jodd

import (
	"bytes"
	"testing"
)

func TestSetBodyClearsForm(t *testing.T) {
	m := &Message{}

	m.SetFormText("a", "1")
	m.SetBody("x")

	if m.Form() != nil {
		t.Fatal("expected form discarded after SetBody")
	}
	if got := m.Body(); got != "x" {
		t.Fatalf("Body() = %q", got)
	}
}

func TestSetBodySetsContentLength(t *testing.T) {
	m := &Message{}

	m.SetBody("hello")

	if got := m.ContentLength(); got != "5" {
		t.Fatalf("ContentLength() = %q, want %q", got, "5")
	}
	if _, ok := m.Headers().Get(HeaderContentType); ok {
		t.Fatal("SetBody must not set Content-Type")
	}
}

func TestSetBodyText(t *testing.T) {
	m := &Message{}

	m.SetBodyText("héllo", "text/plain", "UTF-8")

	// raw body holds the UTF-8 bytes as wire characters
	if got := m.ContentLength(); got != "6" {
		t.Fatalf("ContentLength() = %q, want %q", got, "6")
	}
	if got := m.ContentType(); got != "text/plain;charset=UTF-8" {
		t.Fatalf("ContentType() = %q", got)
	}
	if got := m.BodyText(); got != "héllo" {
		t.Fatalf("BodyText() = %q, want %q", got, "héllo")
	}
	if got := m.BodyBytes(); !bytes.Equal(got, []byte("héllo")) {
		t.Fatalf("BodyBytes() = % x", got)
	}
}

func TestSetBodyTextDefaults(t *testing.T) {
	m := &Message{}

	m.SetBodyText("hi", "", "")

	if got := m.MediaType(); got != DefaultBodyMediaType {
		t.Fatalf("MediaType() = %q, want %q", got, DefaultBodyMediaType)
	}
	if got := m.Charset(); got != DefaultBodyEncoding {
		t.Fatalf("Charset() = %q, want %q", got, DefaultBodyEncoding)
	}
}

func TestSetBodyBytes(t *testing.T) {
	m := &Message{}

	m.SetBodyBytes([]byte{0x68, 0x69, 0xE9}, "text/plain;charset=ISO-8859-1")

	if got := m.Body(); got != "hié" {
		t.Fatalf("Body() = %q", got)
	}
	if got := m.Charset(); got != "ISO-8859-1" {
		t.Fatalf("Charset() = %q", got)
	}
	if got := m.BodyBytes(); !bytes.Equal(got, []byte{0x68, 0x69, 0xE9}) {
		t.Fatalf("BodyBytes() = % x", got)
	}
}

func TestBodyTextWithoutCharset(t *testing.T) {
	m := &Message{}

	m.SetBody("raw stuff")

	if got := m.BodyText(); got != "raw stuff" {
		t.Fatalf("BodyText() = %q", got)
	}
}

func TestBodyBytesUnset(t *testing.T) {
	m := &Message{}

	if got := m.BodyBytes(); got != nil {
		t.Fatalf("BodyBytes() = %v, want nil", got)
	}
	if m.HasBody() {
		t.Fatal("HasBody() = true on fresh message")
	}
}
