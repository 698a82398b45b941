package dataset

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
)

// Upload is an uploaded byte stream with the filename the client sent.
type Upload struct {
	Filename string
	Data     io.Reader
}

// Reader parses one tabular format into a table.
type Reader interface {
	Read(name string, data []byte) (*Table, error)
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(name string, data []byte) (*Table, error)

func (f ReaderFunc) Read(name string, data []byte) (*Table, error) {
	return f(name, data)
}

// readers is the extension allow-list. Order is the order formats are
// named to users.
var readers = []struct {
	ext    string
	reader Reader
}{
	{"csv", ReaderFunc(readCSV)},
	{"xlsx", ReaderFunc(readXLSX)},
	{"xls", ReaderFunc(readXLS)},
}

// SupportedFormats returns the accepted extensions without dots.
func SupportedFormats() []string {
	out := make([]string, len(readers))
	for i, r := range readers {
		out[i] = r.ext
	}
	return out
}

// Extension returns the lower-cased text after the filename's last dot,
// or "" when there is none.
func Extension(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	i := strings.LastIndex(base, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(base[i+1:])
}

func readerFor(ext string) (Reader, bool) {
	for _, r := range readers {
		if r.ext == ext {
			return r.reader, true
		}
	}
	return nil, false
}

// Ingest turns an upload into a table.
//
// A nil upload means no file was chosen and yields (nil, nil). An extension
// outside the allow-list yields *UnsupportedFormatError without reading the
// stream. Any reader failure yields *ParseError.
func Ingest(up *Upload) (*Table, error) {
	if up == nil {
		return nil, nil
	}

	ext := Extension(up.Filename)
	reader, ok := readerFor(ext)
	if !ok {
		return nil, &UnsupportedFormatError{Filename: up.Filename, Extension: ext}
	}

	var data []byte
	if up.Data != nil {
		var err error
		data, err = io.ReadAll(up.Data)
		if err != nil {
			return nil, &ParseError{Format: ext, Err: fmt.Errorf("read upload: %w", err)}
		}
	}

	return parse(reader, ext, path.Base(up.Filename), data)
}

// IngestBytes is Ingest over an in-memory payload.
func IngestBytes(filename string, data []byte) (*Table, error) {
	return Ingest(&Upload{Filename: filename, Data: bytes.NewReader(data)})
}

// parse runs the reader and converts both errors and panics into ParseError.
// Binary workbook readers can panic on malformed input.
func parse(reader Reader, ext, name string, data []byte) (t *Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			t = nil
			err = &ParseError{Format: ext, Err: fmt.Errorf("malformed %s file: %v", ext, r)}
		}
	}()

	t, err = reader.Read(name, data)
	if err != nil {
		return nil, &ParseError{Format: ext, Err: err}
	}
	return t, nil
}
