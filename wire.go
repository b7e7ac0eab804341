package jodd

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	crlf = "\r\n"

	maxHeaderLines = 200
)

// ---------------------------------------------------------------- serialization

// formString materializes the form into a body string and sets the
// matching Content-Type and Content-Length headers. An absent or empty
// form yields an empty string and no header changes.
func (m *Message) formString() (string, error) {
	if m.form == nil || m.form.Len() == 0 {
		return "", nil
	}

	if !m.form.isMultipart() {
		enc := m.charset
		if enc == "" {
			enc = m.formEnc()
		}

		query := m.form.encodeQuery(lookupCharset(enc))

		m.SetContentTypeParts("application/x-www-form-urlencoded", "")
		m.SetContentLength(len(query))

		return query, nil
	}

	return m.buildMultipart()
}

// render produces the full wire text: start line, headers in insertion
// order, blank line, body. A non-empty form is materialized first, so
// it wins over any stale raw body.
func (m *Message) render(startLine string) (string, error) {
	body := m.body
	if m.form != nil && m.form.Len() > 0 {
		s, err := m.formString()
		if err != nil {
			return "", err
		}
		body = s
	}

	var b strings.Builder
	b.WriteString(startLine)
	b.WriteString(crlf)

	h := m.hdrs()
	for _, name := range h.names {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(h.values[name])
		b.WriteString(crlf)
	}

	b.WriteString(crlf)
	b.WriteString(body)

	return b.String(), nil
}

// toBytes encodes the rendered message with the wire encoding. Returns
// nil on render or encoding failure; the failure is deliberately
// silent, by contract.
func (m *Message) toBytes(startLine string) []byte {
	s, err := m.render(startLine)
	if err != nil {
		Logger().Debug("rendering message failed", zap.Error(err))
		return nil
	}

	raw, err := encodeWire(s)
	if err != nil {
		Logger().Debug("encoding message failed", zap.Error(err))
		return nil
	}

	return raw
}

// writeTo writes the rendered message and flushes when the sink
// supports it. I/O failures are wrapped and surfaced.
func (m *Message) writeTo(w io.Writer, startLine string) (int64, error) {
	s, err := m.render(startLine)
	if err != nil {
		return 0, err
	}

	raw, err := encodeWire(s)
	if err != nil {
		return 0, NewErrorFrom("encoding message failed", err)
	}

	n, err := writeAll(w, raw)
	if err != nil {
		return n, NewErrorFrom("writing message failed", err)
	}

	if f, ok := w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return n, NewErrorFrom("flushing message failed", err)
		}
	}

	Logger().Debug("message written", zap.Int64("bytes", n))

	return n, nil
}

// ---------------------------------------------------------------- parsing

func (m *Message) readFrom(r Reader) error {
	if err := m.readHeaders(r); err != nil {
		return err
	}
	return m.readBody(r)
}

// readHeaders reads header lines until a blank line. Every parsed
// header goes through SetHeader, so Content-Type negotiation triggers
// as usual.
func (m *Message) readHeaders(lr LineReader) error {
	for i := 0; i < maxHeaderLines; i++ {
		line, err := lr.ReadLine()
		if err != nil {
			return NewErrorFrom("reading header line failed", err)
		}

		if isBlankLine(line) {
			Logger().Debug("headers parsed", zap.Int("count", m.hdrs().Len()))
			return nil
		}

		idx := bytes.IndexByte(line, ':')
		if idx == -1 {
			return NewErrorFrom(fmt.Sprintf("invalid header line %q", line),
				ErrMalformedHeader)
		}

		m.SetHeader(string(line[:idx]), string(line[idx+1:]))
	}

	return ErrTooManyHeaders
}

// readBody frames and reads the body, then decodes it into form
// parameters when the media type indicates a form. Framing order:
// Content-Length, chunked Transfer-Encoding, connection-close
// (HTTP/1.0 only), none.
func (m *Message) readBody(r Reader) error {
	var bodyString string
	hasBody := false

	if cl, ok := m.hdrs().Get(HeaderContentLength); ok {
		length, err := strconv.Atoi(cl)
		if err != nil || length < 0 {
			return NewErrorFrom("invalid Content-Length "+cl, err)
		}

		buf := make([]byte, length)
		if _, err := io.ReadFull(r, buf); err != nil {
			return NewErrorFrom("reading sized body failed", err)
		}

		bodyString = decodeWire(buf)
		hasBody = true
	} else if te, ok := m.hdrs().Get(HeaderTransferEncoding); ok && strings.EqualFold(te, "chunked") {
		s, err := readChunkedBody(r)
		if err != nil {
			return err
		}

		bodyString = s
		hasBody = true
	} else if m.HTTPVersion() == "HTTP/1.0" {
		// in HTTP 1.0 body ends when stream closes
		buf, err := io.ReadAll(r)
		if err != nil {
			return NewErrorFrom("reading body failed", err)
		}

		bodyString = decodeWire(buf)
		hasBody = true
	}

	if !hasBody {
		m.body = ""
		m.hasBody = false
		m.form = nil
		return nil
	}

	m.body = bodyString
	m.hasBody = true

	enc := lookupCharset(m.charset)

	mediaType := strings.ToLower(m.mediaType)
	Logger().Debug("body read",
		zap.Int("chars", utf8.RuneCountInString(bodyString)),
		zap.String("mediaType", mediaType))

	switch mediaType {
	case "application/x-www-form-urlencoded":
		m.form = parseQuery(bodyString, enc)

	case "multipart/form-data":
		raw, err := encodeWire(bodyString)
		if err != nil {
			return NewErrorFrom("encoding multipart body failed", err)
		}

		boundary := contentTypeParam(m.ContentType(), "boundary")
		form, err := parseMultipartForm(raw, boundary, enc)
		if err != nil {
			return err
		}

		m.form = form

	default:
		// body is simple content
		m.form = nil
	}

	return nil
}

// readChunkedBody decodes chunked transfer framing: hex chunk-size
// lines, chunk data, a terminator line per chunk, ended by a zero size
// or a blank line.
func readChunkedBody(r Reader) (string, error) {
	var buf bytes.Buffer

	for {
		line, err := r.ReadLine()
		if err != nil {
			return "", NewErrorFrom("reading chunk size failed: "+err.Error(),
				ErrChunkedDecode)
		}

		if isBlankLine(line) {
			break
		}

		size, err := parseChunkSize(line)
		if err != nil {
			return "", NewErrorFrom(fmt.Sprintf("invalid chunk size %q", line),
				ErrChunkedDecode)
		}

		if size == 0 {
			// consume the body terminator line so the stream is
			// positioned past the body; the stream may end right here
			if _, err := r.ReadLine(); err != nil && err != io.EOF {
				return "", NewErrorFrom("reading chunked body terminator failed: "+err.Error(),
					ErrChunkedDecode)
			}
			break
		}

		chunk := make([]byte, size)
		if _, err := io.ReadFull(r, chunk); err != nil {
			return "", NewErrorFrom("reading chunk data failed: "+err.Error(),
				ErrChunkedDecode)
		}
		buf.Write(chunk)

		// consume the terminator before the next chunk-size line
		if _, err := r.ReadLine(); err != nil {
			return "", NewErrorFrom("reading chunk terminator failed: "+err.Error(),
				ErrChunkedDecode)
		}
	}

	return decodeWire(buf.Bytes()), nil
}

func parseChunkSize(line []byte) (uint64, error) {
	s := line
	if i := bytes.IndexByte(s, ';'); i != -1 {
		// drop chunk-ext
		s = s[:i]
	}

	return strconv.ParseUint(string(bytes.TrimSpace(s)), 16, 64)
}
