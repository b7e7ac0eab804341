package jodd

import (
	"strings"
)

// MediaType returns the media type, as defined by the Content-Type
// header. Empty means not set.
func (m *Message) MediaType() string {
	return m.mediaType
}

// Charset returns the charset, as defined by the Content-Type header.
// Empty means not set, indicating the wire encoding (ISO-8859-1).
func (m *Message) Charset() string {
	return m.charset
}

// ContentType returns the full Content-Type header value.
func (m *Message) ContentType() string {
	return m.Header(HeaderContentType)
}

// SetContentType sets the full Content-Type header. Both media type and
// charset are re-extracted from the value.
func (m *Message) SetContentType(contentType string) *Message {
	return m.SetHeader(HeaderContentType, contentType)
}

// SetMediaType replaces the media type and keeps the current charset.
// An empty value changes nothing.
func (m *Message) SetMediaType(mediaType string) *Message {
	return m.SetContentTypeParts(mediaType, "")
}

// SetCharset replaces the charset and keeps the current media type.
// An empty value removes the charset parameter from the header.
func (m *Message) SetCharset(charset string) *Message {
	m.charset = ""
	return m.SetContentTypeParts("", charset)
}

// SetContentTypeParts rebuilds the Content-Type header from its media
// type and charset components. An empty argument keeps the current
// value of that component. While no media type is known the components
// are only recorded; the header is written once one is set.
//
// Important: any other Content-Type parameters are lost by the rebuild.
func (m *Message) SetContentTypeParts(mediaType, charset string) *Message {
	if mediaType == "" {
		mediaType = m.mediaType
	} else {
		m.mediaType = mediaType
	}

	if charset == "" {
		charset = m.charset
	} else {
		m.charset = charset
	}

	if mediaType == "" {
		return m
	}

	contentType := mediaType
	if charset != "" {
		contentType += ";charset=" + charset
	}

	m.hdrs().set(HeaderContentType, contentType)
	return m
}

// parseContentType repopulates the media type and charset fields from a
// Content-Type header value.
func (m *Message) parseContentType(value string) {
	m.mediaType = extractMediaType(value)
	m.charset = contentTypeParam(value, "charset")
}

func extractMediaType(value string) string {
	if i := strings.IndexByte(value, ';'); i != -1 {
		value = value[:i]
	}
	return strings.TrimSpace(value)
}

// contentTypeParam returns the named parameter of a Content-Type value,
// or empty when absent. Quotes around the value are stripped.
func contentTypeParam(value, name string) string {
	params := strings.Split(value, ";")
	for _, p := range params[1:] {
		p = strings.TrimSpace(p)
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(k), name) {
			return strings.Trim(strings.TrimSpace(v), `"`)
		}
	}
	return ""
}
