package jodd

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

var (
	ErrMalformedStatusLine = errors.New("malformed status line")
)

var statusText = map[int]string{
	200: "OK",
	201: "Created",
	204: "No Content",
	301: "Moved Permanently",
	302: "Found",
	304: "Not Modified",
	400: "Bad Request",
	401: "Unauthorized",
	403: "Forbidden",
	404: "Not Found",
	500: "Internal Server Error",
	502: "Bad Gateway",
	503: "Service Unavailable",
}

// Response is the response variant of Message.
type Response struct {
	Message

	StatusCode   int
	ReasonPhrase string
}

func NewResponse(statusCode int) *Response {
	return &Response{
		StatusCode:   statusCode,
		ReasonPhrase: statusText[statusCode],
	}
}

func (res *Response) startLine() string {
	return strings.Join([]string{
		res.HTTPVersion(),
		strconv.Itoa(res.StatusCode),
		res.ReasonPhrase,
	}, " ")
}

// Render produces the full wire text of the response. A non-empty form
// is materialized into the body first.
func (res *Response) Render() (string, error) {
	return res.render(res.startLine())
}

// Bytes returns the wire bytes of the response, or nil on failure.
func (res *Response) Bytes() []byte {
	return res.toBytes(res.startLine())
}

// WriteTo writes the response to w and flushes it when supported.
func (res *Response) WriteTo(w io.Writer) (int64, error) {
	return res.writeTo(w, res.startLine())
}

// ReadResponse parses a response from r: status line, headers, body.
func ReadResponse(r Reader) (*Response, error) {
	line, err := r.ReadLine()
	if err != nil {
		return nil, err
	}

	version, code, reason, ok := parseStartLine(line)
	if !ok {
		return nil, ErrMalformedStatusLine
	}

	statusCode, err := strconv.Atoi(string(code))
	if err != nil {
		return nil, ErrMalformedStatusLine
	}

	res := &Response{
		StatusCode:   statusCode,
		ReasonPhrase: string(reason),
	}
	res.SetHTTPVersion(string(version))

	if err := res.readFrom(r); err != nil {
		return nil, err
	}

	return res, nil
}
