package jodd

import (
	"strings"
)

const (
	HeaderAcceptEncoding   = "Accept-Encoding"
	HeaderContentType      = "Content-Type"
	HeaderContentLength    = "Content-Length"
	HeaderContentEncoding  = "Content-Encoding"
	HeaderTransferEncoding = "Transfer-Encoding"
	HeaderHost             = "Host"
	HeaderETag             = "ETag"
)

/* Data structure in Headers struct
* names (insertion order)   * values
  [0] "host"          <----> "example.com"
  [1] "content-type"  <----> "text/html;charset=UTF-8"

  Re-setting an existing name keeps its slot in names.
*/

// Headers is an ordered, case-insensitive, single-value header store.
// Names are normalized (trimmed, lowercased) and values trimmed before
// storage. Writing through the store directly never triggers content
// negotiation; that side effect belongs to Message.SetHeader.
type Headers struct {
	names  []string
	values map[string]string
}

func newHeaders() *Headers {
	return &Headers{
		values: make(map[string]string),
	}
}

func normalizeHeaderName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (h *Headers) Get(name string) (string, bool) {
	if h == nil {
		return "", false
	}

	v, ok := h.values[normalizeHeaderName(name)]
	return v, ok
}

// Names returns header names in insertion order.
func (h *Headers) Names() []string {
	if h == nil {
		return nil
	}

	names := make([]string, len(h.names))
	copy(names, h.names)

	return names
}

func (h *Headers) Len() int {
	if h == nil {
		return 0
	}
	return len(h.names)
}

// set stores a header without side effects. Existing names keep their
// original position; last write wins.
func (h *Headers) set(name, value string) {
	key := normalizeHeaderName(name)
	if _, ok := h.values[key]; !ok {
		h.names = append(h.names, key)
	}
	h.values[key] = strings.TrimSpace(value)
}

func (h *Headers) del(name string) {
	key := normalizeHeaderName(name)
	if _, ok := h.values[key]; !ok {
		return
	}

	delete(h.values, key)
	for i, n := range h.names {
		if n == key {
			h.names = append(h.names[:i], h.names[i+1:]...)
			break
		}
	}
}
