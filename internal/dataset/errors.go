package dataset

import (
	"fmt"
	"strings"
)

// UnsupportedFormatError is returned when the upload's extension is not in
// the allow-list. No read of the stream has happened when it is returned.
type UnsupportedFormatError struct {
	Filename  string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return "Unsupported file format. Please upload a CSV or Excel file."
}

// Allowed lists the accepted extensions, for messages that name them.
func (e *UnsupportedFormatError) Allowed() string {
	return strings.Join(SupportedFormats(), ", ")
}

// ParseError wraps any failure of the underlying reader. The reader's
// message is kept as-is.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
