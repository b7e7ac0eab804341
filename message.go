// Package jodd models a single HTTP/1.x message as a mutable,
// serializable object: header storage, content-type negotiation, raw
// and text body handling, form parameters, and conversion to and from
// the wire format.
package jodd

import (
	"strconv"
	"strings"
	"time"
)

const defaultHTTPVersion = "HTTP/1.1"

const httpDateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// Message is the shared core of Request and Response. The zero value is
// ready to use. A message is owned by exactly one goroutine at a time;
// it is not safe for concurrent mutation.
type Message struct {
	httpVersion string
	headers     *Headers
	form        *Form
	body        string
	hasBody     bool

	mediaType    string
	charset      string
	formEncoding string
}

func (m *Message) hdrs() *Headers {
	if m.headers == nil {
		m.headers = newHeaders()
	}
	return m.headers
}

// HTTPVersion returns the protocol version string, "HTTP/1.1" by
// default.
func (m *Message) HTTPVersion() string {
	if m.httpVersion == "" {
		return defaultHTTPVersion
	}
	return m.httpVersion
}

// SetHTTPVersion sets the protocol version string. Must be formed like
// "HTTP/1.1".
func (m *Message) SetHTTPVersion(version string) *Message {
	m.httpVersion = version
	return m
}

// Headers exposes the header store for iteration and lookups.
func (m *Message) Headers() *Headers {
	return m.hdrs()
}

// Header returns the value of a header, or empty when not present.
func (m *Message) Header(name string) string {
	v, _ := m.hdrs().Get(name)
	return v
}

// SetHeader sets a header. An existing value is overwritten and its
// position kept. A Content-Type value additionally repopulates the
// media type and charset.
func (m *Message) SetHeader(name, value string) *Message {
	key := normalizeHeaderName(name)
	value = strings.TrimSpace(value)

	if key == "content-type" {
		m.parseContentType(value)
	}

	m.hdrs().set(key, value)
	return m
}

// SetHeaderInt sets an integer value as a header.
func (m *Message) SetHeaderInt(name string, value int) *Message {
	m.hdrs().set(name, strconv.Itoa(value))
	return m
}

// SetHeaderDate sets a timestamp as an HTTP-date header value.
func (m *Message) SetHeaderDate(name string, value time.Time) *Message {
	m.hdrs().set(name, value.UTC().Format(httpDateFormat))
	return m
}

// RemoveHeader removes a header.
func (m *Message) RemoveHeader(name string) *Message {
	m.hdrs().del(name)
	return m
}

// ContentLength returns the Content-Length header value, or empty when
// not set.
func (m *Message) ContentLength() string {
	return m.Header(HeaderContentLength)
}

// SetContentLength sets the Content-Length header.
func (m *Message) SetContentLength(length int) *Message {
	return m.SetHeaderInt(HeaderContentLength, length)
}

// ContentEncoding returns the Content-Encoding header value. The value
// is stored verbatim; no decompression happens at this layer.
func (m *Message) ContentEncoding() string {
	return m.Header(HeaderContentEncoding)
}

// AcceptEncoding returns the Accept-Encoding header value.
func (m *Message) AcceptEncoding() string {
	return m.Header(HeaderAcceptEncoding)
}

// SetAcceptEncoding sets the Accept-Encoding header.
func (m *Message) SetAcceptEncoding(encodings string) *Message {
	return m.SetHeader(HeaderAcceptEncoding, encodings)
}

// SetFormEncoding overrides the encoding for form parameters. The
// default is copied from DefaultFormEncoding. A set charset takes
// precedence over this value.
func (m *Message) SetFormEncoding(encoding string) *Message {
	m.formEncoding = encoding
	return m
}

func (m *Message) formEnc() string {
	if m.formEncoding == "" {
		return DefaultFormEncoding
	}
	return m.formEncoding
}
