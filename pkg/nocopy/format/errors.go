package format

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrDifferentInOutFormats indicates the input path has another file
// extension than the output path. The CLI never issues both paths at once,
// the check still rejects the combination before any I/O happens.
var ErrDifferentInOutFormats = errors.New(
	"file extension of the input file does not match the one of the output file")

// ErrParseNotSupported indicates the selected format cannot be loaded, only
// written.
var ErrParseNotSupported = errors.New("parsing is not supported for this format")

// UnknownFormatError is returned when a format name given by the user
// matches no known format.
type UnknownFormatError struct {
	Value string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("format %q is not supported by this application", e.Value)
}

// NotAscertainableError is returned when no format could be determined for a
// file path.
type NotAscertainableError struct {
	Path string
}

func (e *NotAscertainableError) Error() string {
	return fmt.Sprintf("file %q with extension %q is not supported", e.Path, filepath.Ext(e.Path))
}

// StdStreamError is returned when data should be read from stdin or written
// to stdout for a format that does not support standard streams.
type StdStreamError struct {
	Format string
	Output bool
}

func (e *StdStreamError) Error() string {
	if e.Output {
		return fmt.Sprintf("%s does not support the output of data using stdout, specify an output path", e.Format)
	}
	return fmt.Sprintf("%s does not support the input of data using stdin, specify an input path", e.Format)
}

// ParseError wraps a format-specific parse failure. Parsing is
// all-or-nothing, a ParseError means no records were produced.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse input as %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
