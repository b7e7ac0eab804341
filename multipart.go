package jodd

import (
	"bytes"
	"io"
	"math/rand"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

const boundaryAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomBoundary generates a multipart boundary token: ten dashes plus
// a random alphanumeric suffix. Successive calls produce different
// tokens.
func randomBoundary() string {
	b := make([]byte, 10)
	for i := range b {
		b[i] = boundaryAlphabet[rand.Intn(len(boundaryAlphabet))]
	}

	return strings.Repeat("-", 10) + string(b)
}

// buildMultipart assembles the multipart/form-data payload for the
// form, in parameter insertion order, and sets the Content-Type and
// Content-Length headers. Array values emit one part per element, all
// sharing the same name; receivers rely on this framing for symmetry
// with the parser.
func (m *Message) buildMultipart() (string, error) {
	boundary := randomBoundary()

	var b strings.Builder
	form := m.form

	for _, name := range form.names {
		switch v := form.values[name].(type) {
		case Text:
			writeTextPart(&b, boundary, name, string(v))
		case TextList:
			for _, s := range v {
				writeTextPart(&b, boundary, name, s)
			}
		case File:
			if err := writeFilePart(&b, boundary, name, v.FileRef); err != nil {
				return "", err
			}
		case FileList:
			for _, f := range v {
				if err := writeFilePart(&b, boundary, name, f); err != nil {
					return "", err
				}
			}
		}
	}

	b.WriteString("--")
	b.WriteString(boundary)
	b.WriteString("--")

	payload := b.String()

	m.SetContentType("multipart/form-data; boundary=" + boundary)
	m.SetContentLength(utf8.RuneCountInString(payload))

	return payload, nil
}

func writeTextPart(b *strings.Builder, boundary, name, value string) {
	b.WriteString("--")
	b.WriteString(boundary)
	b.WriteString(crlf)
	b.WriteString(`Content-Disposition: form-data; name="`)
	b.WriteString(name)
	b.WriteString(`"`)
	b.WriteString(crlf)
	b.WriteString(crlf)
	b.WriteString(value)
	b.WriteString(crlf)
}

func writeFilePart(b *strings.Builder, boundary, name string, file FileRef) error {
	fileName := filepath.Base(file.FileName())

	mimeType := mime.TypeByExtension(filepath.Ext(fileName))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	content, err := file.Content()
	if err != nil {
		return NewErrorFrom("reading form file "+fileName+" failed", err)
	}

	b.WriteString("--")
	b.WriteString(boundary)
	b.WriteString(crlf)
	b.WriteString(`Content-Disposition: form-data; name="`)
	b.WriteString(name)
	b.WriteString(`"; filename="`)
	b.WriteString(fileName)
	b.WriteString(`"`)
	b.WriteString(crlf)
	b.WriteString(HeaderContentType + ": ")
	b.WriteString(mimeType)
	b.WriteString(crlf)
	b.WriteString("Content-Transfer-Encoding: binary")
	b.WriteString(crlf)
	b.WriteString(crlf)
	b.WriteString(decodeWire(content))
	b.WriteString(crlf)

	return nil
}

// parseMultipartForm runs a multipart stream parser over body and
// yields the named parameters: text parts decoded in the given
// encoding, file parts kept as in-memory uploads. Repeated names
// accumulate into arrays.
func parseMultipartForm(body []byte, boundary string, enc encoding.Encoding) (*Form, error) {
	if boundary == "" {
		return nil, NewErrorFrom("missing multipart boundary", ErrMultipartParse)
	}

	f := newForm()
	mr := multipart.NewReader(bytes.NewReader(body), boundary)

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, NewErrorFrom("reading multipart part failed: "+err.Error(),
				ErrMultipartParse)
		}

		data, err := io.ReadAll(part)
		if err != nil {
			return nil, NewErrorFrom("reading multipart part body failed: "+err.Error(),
				ErrMultipartParse)
		}

		if fileName := part.FileName(); fileName != "" {
			f.addFile(part.FormName(), &FileUpload{
				Name:        fileName,
				ContentType: part.Header.Get(HeaderContentType),
				Data:        data,
			})
			continue
		}

		value, err := decodeText(data, enc)
		if err != nil {
			value = string(data)
		}
		f.add(part.FormName(), value)
	}

	return f, nil
}
