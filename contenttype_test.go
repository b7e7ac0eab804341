package jodd

import (
	"testing"
)

func TestContentTypeConsistency(t *testing.T) {
	tests := []struct {
		mediaType string
		charset   string
		want      string
	}{
		{"text/plain", "UTF-8", "text/plain;charset=UTF-8"},
		{"text/html", "", "text/html"},
		{"application/json", "windows-1250", "application/json;charset=windows-1250"},
	}

	for _, tt := range tests {
		m := &Message{}
		m.SetContentTypeParts(tt.mediaType, tt.charset)

		if got := m.MediaType(); got != tt.mediaType {
			t.Errorf("MediaType() = %q, want %q", got, tt.mediaType)
		}
		if got := m.Charset(); got != tt.charset {
			t.Errorf("Charset() = %q, want %q", got, tt.charset)
		}
		if got := m.ContentType(); got != tt.want {
			t.Errorf("ContentType() = %q, want %q", got, tt.want)
		}
	}
}

func TestSetContentTypeParses(t *testing.T) {
	m := &Message{}

	m.SetHeader("Content-Type", "application/json; charset=UTF-8")

	if got := m.MediaType(); got != "application/json" {
		t.Fatalf("MediaType() = %q", got)
	}
	if got := m.Charset(); got != "UTF-8" {
		t.Fatalf("Charset() = %q", got)
	}
}

func TestSetCharsetKeepsMediaType(t *testing.T) {
	m := &Message{}

	m.SetContentTypeParts("text/plain", "UTF-8")
	m.SetCharset("ISO-8859-2")

	if got := m.ContentType(); got != "text/plain;charset=ISO-8859-2" {
		t.Fatalf("ContentType() = %q", got)
	}
}

func TestSetCharsetEmptyRemoves(t *testing.T) {
	m := &Message{}

	m.SetContentTypeParts("text/plain", "UTF-8")
	m.SetCharset("")

	if got := m.ContentType(); got != "text/plain" {
		t.Fatalf("ContentType() = %q", got)
	}
	if got := m.Charset(); got != "" {
		t.Fatalf("Charset() = %q, want empty", got)
	}
}

func TestSetMediaTypeKeepsCharset(t *testing.T) {
	m := &Message{}

	m.SetContentTypeParts("text/plain", "UTF-8")
	m.SetMediaType("text/html")

	if got := m.ContentType(); got != "text/html;charset=UTF-8" {
		t.Fatalf("ContentType() = %q", got)
	}
}

func TestSetCharsetWithoutMediaType(t *testing.T) {
	m := &Message{}

	m.SetCharset("UTF-8")

	if _, ok := m.Headers().Get(HeaderContentType); ok {
		t.Fatal("no Content-Type header expected without a media type")
	}
	if got := m.Charset(); got != "UTF-8" {
		t.Fatalf("Charset() = %q", got)
	}

	// the recorded charset surfaces once a media type is set
	m.SetMediaType("text/plain")

	if got := m.ContentType(); got != "text/plain;charset=UTF-8" {
		t.Fatalf("ContentType() = %q", got)
	}
}

func TestSetMediaTypeEmptyIsNoop(t *testing.T) {
	m := &Message{}

	m.SetContentTypeParts("text/plain", "UTF-8")
	m.SetMediaType("")

	if got := m.MediaType(); got != "text/plain" {
		t.Fatalf("MediaType() = %q", got)
	}
}

func TestContentTypeExtraParamsLost(t *testing.T) {
	// component-level rebuilds only emit media type and charset
	m := &Message{}

	m.SetContentType("multipart/form-data; boundary=xyz")
	m.SetCharset("UTF-8")

	if got := m.ContentType(); got != "multipart/form-data;charset=UTF-8" {
		t.Fatalf("ContentType() = %q", got)
	}
}

func TestContentTypeParam(t *testing.T) {
	tests := []struct {
		value string
		param string
		want  string
	}{
		{"multipart/form-data; boundary=xyz", "boundary", "xyz"},
		{`multipart/form-data; boundary="quoted"`, "boundary", "quoted"},
		{"text/html; charset=UTF-8", "charset", "UTF-8"},
		{"text/html;CHARSET=UTF-8", "charset", "UTF-8"},
		{"text/html", "charset", ""},
	}

	for _, tt := range tests {
		if got := contentTypeParam(tt.value, tt.param); got != tt.want {
			t.Errorf("contentTypeParam(%q, %q) = %q, want %q",
				tt.value, tt.param, got, tt.want)
		}
	}
}
