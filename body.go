package jodd

import (
	"unicode/utf8"
)

// Body returns the raw body as received or set, always in wire-encoding
// characters. For text content converted by charset, use BodyText.
func (m *Message) Body() string {
	return m.body
}

// HasBody reports whether a body was ever set or parsed.
func (m *Message) HasBody() bool {
	return m.hasBody
}

// BodyBytes returns the raw body bytes. Returns nil when no body is set
// or the body holds characters outside the wire encoding; encoding
// failure is deliberately silent, by contract.
func (m *Message) BodyBytes() []byte {
	if !m.hasBody {
		return nil
	}

	b, err := encodeWire(m.body)
	if err != nil {
		return nil
	}

	return b
}

// BodyText returns the body converted from the wire encoding to the
// charset of the Content-Type header. Without a charset the raw body is
// returned unchanged.
func (m *Message) BodyText() string {
	if m.charset != "" {
		return convertCharset(m.body, wireEncoding, lookupCharset(m.charset))
	}
	return m.Body()
}

// SetBody sets the raw body and discards all form parameters.
// Important: the body is stored verbatim, in wire-encoding characters.
// Content-Length is set to the character count; Content-Type is not
// touched and is expected from the caller.
func (m *Message) SetBody(body string) *Message {
	m.body = body
	m.hasBody = true
	m.form = nil
	m.SetContentLength(utf8.RuneCountInString(body))
	return m
}

// SetBodyText converts text from the given charset into the wire
// encoding, sets the Content-Type header from the media type and
// charset, and stores the result as the raw body. Empty mediaType or
// charset fall back to DefaultBodyMediaType and DefaultBodyEncoding.
func (m *Message) SetBodyText(body, mediaType, charset string) *Message {
	if mediaType == "" {
		mediaType = DefaultBodyMediaType
	}
	if charset == "" {
		charset = DefaultBodyEncoding
	}

	raw := convertCharset(body, lookupCharset(charset), wireEncoding)
	m.SetContentTypeParts(mediaType, charset)
	return m.SetBody(raw)
}

// SetBodyBytes decodes content using the wire encoding, sets the full
// Content-Type header, and stores the result as the raw body.
func (m *Message) SetBodyBytes(content []byte, contentType string) *Message {
	m.SetContentType(contentType)
	return m.SetBody(decodeWire(content))
}
