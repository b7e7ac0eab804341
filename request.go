package jodd

import (
	"errors"
	"io"
	"strings"
)

var (
	ErrMalformedRequestLine = errors.New("malformed request line")
)

// Request is the request variant of Message.
type Request struct {
	Message

	Method string
	Target string
}

func NewRequest(method, target string) *Request {
	return &Request{
		Method: method,
		Target: target,
	}
}

func (req *Request) startLine() string {
	return strings.Join([]string{req.Method, req.Target, req.HTTPVersion()}, " ")
}

// Render produces the full wire text of the request. A non-empty form
// is materialized into the body first.
func (req *Request) Render() (string, error) {
	return req.render(req.startLine())
}

// Bytes returns the wire bytes of the request, or nil on failure.
func (req *Request) Bytes() []byte {
	return req.toBytes(req.startLine())
}

// WriteTo writes the request to w and flushes it when supported.
func (req *Request) WriteTo(w io.Writer) (int64, error) {
	return req.writeTo(w, req.startLine())
}

// ReadRequest parses a request from r: request line, headers, body.
func ReadRequest(r Reader) (*Request, error) {
	line, err := r.ReadLine()
	if err != nil {
		return nil, err
	}

	method, target, version, ok := parseStartLine(line)
	if !ok {
		return nil, ErrMalformedRequestLine
	}

	req := &Request{
		Method: string(method),
		Target: string(target),
	}
	req.SetHTTPVersion(string(version))

	if err := req.readFrom(r); err != nil {
		return nil, err
	}

	return req, nil
}
