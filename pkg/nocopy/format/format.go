// Package format implements the load/save abstraction over the supported
// file formats: JSON, YAML, CSV, and xlsx spreadsheets.
//
// A Codec turns raw bytes into a record list and back. The active codec for
// an operation is selected by Resolve, either from an explicit format name
// or from a file extension. File binds a codec to an input or output path
// (or the standard streams) and performs the actual I/O.
package format

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/72nd/nocopy-go/pkg/nocopy/record"
)

// Codec is one supported serialization format. Implementations are
// stateless, per-call configuration travels in Options.
type Codec interface {
	// Name returns the canonical lowercase format name used in user-facing
	// resolution and error messages.
	Name() string
	// Extensions returns the recognized file extensions, lowercase with a
	// leading dot.
	Extensions() []string
	// SupportsStreams reports whether the format may be read from stdin and
	// written to stdout when no path is given.
	SupportsStreams() bool
	// Parse decodes raw bytes into a record list. Parsing is all-or-nothing:
	// on malformed input a ParseError is returned and no records.
	Parse(raw []byte) (record.List, error)
	// Dump encodes a record list. The result is deterministic for a given
	// list and option set.
	Dump(records record.List, opts Options) ([]byte, error)
}

// Codec instances, one per supported format.
var (
	JSON Codec = jsonCodec{}
	YAML Codec = yamlCodec{}
	CSV  Codec = csvCodec{}
	XLSX Codec = xlsxCodec{}
)

// codecs lists all codecs in resolution order.
var codecs = []Codec{JSON, YAML, CSV, XLSX}

// Names returns the names of all supported formats.
func Names() []string {
	names := make([]string, len(codecs))
	for i, c := range codecs {
		names[i] = c.Name()
	}
	return names
}

// Resolve selects the codec for an operation. Precedence:
//
//  1. An explicit format name (case-insensitive). An unknown name fails
//     with UnknownFormatError.
//  2. Without a name and without any path, YAML is the default.
//  3. With both paths given their extensions must match, otherwise the
//     operation fails with ErrDifferentInOutFormats before any I/O.
//  4. The extension of the given path (the input path when both are given)
//     is matched against each codec's extension set.
//  5. No match fails with NotAscertainableError.
//
// Resolution is pure and deterministic given its inputs.
func Resolve(name, inputPath, outputPath string) (Codec, error) {
	if name == "" && inputPath == "" && outputPath == "" {
		slog.Debug("no format specified, falling back to default YAML")
		return YAML, nil
	}

	if name != "" {
		name = strings.ToLower(name)
		for _, c := range codecs {
			if c.Name() == name {
				return c, nil
			}
		}
		return nil, &UnknownFormatError{Value: name}
	}

	if inputPath != "" && outputPath != "" &&
		!strings.EqualFold(filepath.Ext(inputPath), filepath.Ext(outputPath)) {
		return nil, ErrDifferentInOutFormats
	}

	path := inputPath
	if path == "" {
		path = outputPath
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, c := range codecs {
		for _, e := range c.Extensions() {
			if e == ext {
				slog.Debug("format assessed by file extension", "format", c.Name(), "path", path)
				return c, nil
			}
		}
	}
	return nil, &NotAscertainableError{Path: path}
}
