package jodd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
)

// FormValue is a form parameter value: exactly one of Text, TextList,
// File, or FileList. The set is closed, so every value has a multipart
// encoding by construction.
type FormValue interface {
	formValue()
}

type Text string

type TextList []string

// File is a single file-backed form value.
type File struct {
	FileRef
}

type FileList []FileRef

func (Text) formValue()     {}
func (TextList) formValue() {}
func (File) formValue()     {}
func (FileList) formValue() {}

// FileRef supplies named byte content for multipart file parts.
type FileRef interface {
	FileName() string
	Content() ([]byte, error)
}

// LocalFile references a file on disk by path.
type LocalFile string

func (f LocalFile) FileName() string {
	return filepath.Base(string(f))
}

func (f LocalFile) Content() ([]byte, error) {
	return os.ReadFile(string(f))
}

// FileUpload is an in-memory file, as produced by multipart parsing.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f *FileUpload) FileName() string {
	return f.Name
}

func (f *FileUpload) Content() ([]byte, error) {
	return f.Data, nil
}

// Form is an ordered name to value mapping of form parameters. Setting
// an existing name overwrites its value and keeps its position, same
// semantics as the header store.
type Form struct {
	names  []string
	values map[string]FormValue
}

func newForm() *Form {
	return &Form{
		values: make(map[string]FormValue),
	}
}

func (f *Form) Get(name string) (FormValue, bool) {
	if f == nil {
		return nil, false
	}

	v, ok := f.values[name]
	return v, ok
}

// Names returns parameter names in insertion order.
func (f *Form) Names() []string {
	if f == nil {
		return nil
	}

	names := make([]string, len(f.names))
	copy(names, f.names)

	return names
}

func (f *Form) Len() int {
	if f == nil {
		return 0
	}
	return len(f.names)
}

func (f *Form) set(name string, value FormValue) {
	if _, ok := f.values[name]; !ok {
		f.names = append(f.names, name)
	}
	f.values[name] = value
}

// add accumulates a text value under name: a second value turns the
// entry into a TextList, further values append. Used by the parse path.
func (f *Form) add(name, value string) {
	switch v := f.values[name].(type) {
	case Text:
		f.set(name, TextList{string(v), value})
	case TextList:
		f.set(name, append(v, value))
	default:
		f.set(name, Text(value))
	}
}

// addFile accumulates a file value under name, same shape as add.
func (f *Form) addFile(name string, file FileRef) {
	switch v := f.values[name].(type) {
	case File:
		f.set(name, FileList{v.FileRef, file})
	case FileList:
		f.set(name, append(v, file))
	default:
		f.set(name, File{file})
	}
}

// isMultipart reports whether any parameter holds file content.
func (f *Form) isMultipart() bool {
	for _, name := range f.names {
		switch f.values[name].(type) {
		case Text, TextList:
		default:
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------- message form API

func (m *Message) ensureForm() *Form {
	if m.form == nil {
		m.form = newForm()
	}
	return m.form
}

// Form returns the form parameters, or nil when none are set.
func (m *Message) Form() *Form {
	return m.form
}

// SetFormText sets a text form parameter.
func (m *Message) SetFormText(name, value string) *Message {
	m.ensureForm().set(name, Text(value))
	return m
}

// SetFormTexts sets a text-array form parameter.
func (m *Message) SetFormTexts(name string, values []string) *Message {
	m.ensureForm().set(name, TextList(values))
	return m
}

// SetFormFile sets a file form parameter.
func (m *Message) SetFormFile(name string, file FileRef) *Message {
	m.ensureForm().set(name, File{file})
	return m
}

// SetFormFiles sets a file-array form parameter.
func (m *Message) SetFormFiles(name string, files []FileRef) *Message {
	m.ensureForm().set(name, FileList(files))
	return m
}

// SetForm sets a form parameter from a dynamically typed value.
// Accepted types are string, []string, FileRef, []FileRef and the
// FormValue kinds themselves; anything else fails with
// ErrUnsupportedParameter.
func (m *Message) SetForm(name string, value any) error {
	v, err := coerceFormValue(value)
	if err != nil {
		return err
	}

	m.ensureForm().set(name, v)
	return nil
}

// SetFormPairs sets many form parameters at once, given as alternating
// name, value arguments.
func (m *Message) SetFormPairs(pairs ...any) error {
	if len(pairs)%2 != 0 {
		return NewError("odd number of form pair arguments")
	}

	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			return NewError(fmt.Sprintf("form name is not a string: %v", pairs[i]))
		}
		if err := m.SetForm(name, pairs[i+1]); err != nil {
			return err
		}
	}

	return nil
}

// SetFormMap sets many form parameters at once.
func (m *Message) SetFormMap(values map[string]any) error {
	for name, value := range values {
		if err := m.SetForm(name, value); err != nil {
			return err
		}
	}
	return nil
}

func coerceFormValue(value any) (FormValue, error) {
	switch v := value.(type) {
	case FormValue:
		return v, nil
	case string:
		return Text(v), nil
	case []string:
		return TextList(v), nil
	case FileRef:
		return File{v}, nil
	case []FileRef:
		return FileList(v), nil
	}

	return nil, NewErrorFrom(
		fmt.Sprintf("unsupported parameter type: %T", value),
		ErrUnsupportedParameter)
}

// ---------------------------------------------------------------- urlencoded

// encodeQuery serializes text parameters as
// application/x-www-form-urlencoded, escaping in the given encoding.
// Only called for non-multipart forms.
func (f *Form) encodeQuery(enc encoding.Encoding) string {
	var b strings.Builder

	for _, name := range f.names {
		switch v := f.values[name].(type) {
		case Text:
			appendQueryPair(&b, name, string(v), enc)
		case TextList:
			for _, s := range v {
				appendQueryPair(&b, name, s, enc)
			}
		}
	}

	return b.String()
}

func appendQueryPair(b *strings.Builder, name, value string, enc encoding.Encoding) {
	if b.Len() > 0 {
		b.WriteByte('&')
	}
	b.WriteString(urlEncode(name, enc))
	b.WriteByte('=')
	b.WriteString(urlEncode(value, enc))
}

// parseQuery decodes an urlencoded body into a form. Repeated names
// accumulate into text arrays.
func parseQuery(query string, enc encoding.Encoding) *Form {
	f := newForm()

	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		f.add(urlDecode(name, enc), urlDecode(value, enc))
	}

	return f
}

const upperhex = "0123456789ABCDEF"

func isUnreservedQueryByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_' || c == '.' || c == '*'
}

// urlEncode percent-escapes s byte-wise in the given encoding. The
// stdlib escaper is UTF-8 only, so escaping runs over the encoded
// bytes directly.
func urlEncode(s string, enc encoding.Encoding) string {
	raw, err := encodeText(s, enc)
	if err != nil {
		raw = []byte(s)
	}

	var b strings.Builder
	for _, c := range raw {
		switch {
		case c == ' ':
			b.WriteByte('+')
		case isUnreservedQueryByte(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		}
	}

	return b.String()
}

func urlDecode(s string, enc encoding.Encoding) string {
	raw := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '+':
			raw = append(raw, ' ')
		case s[i] == '%' && i+2 < len(s):
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if !ok1 || !ok2 {
				raw = append(raw, s[i])
				continue
			}
			raw = append(raw, hi<<4|lo)
			i += 2
		default:
			raw = append(raw, s[i])
		}
	}

	out, err := decodeText(raw, enc)
	if err != nil {
		return string(raw)
	}

	return out
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
