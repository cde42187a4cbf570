package format

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/72nd/nocopy-go/pkg/nocopy/record"
)

// File binds a codec to an input and/or output path and a set of render
// options for one load or save operation. Without a path the standard
// streams are used, gated by the codec's stream support flag.
type File struct {
	codec      Codec
	inputPath  string
	outputPath string
	opts       Options

	stdin  io.Reader
	stdout io.Writer
}

// NewFile resolves the codec for the given format name and paths and binds
// it to them. At most one input and one output path may be given.
func NewFile(name, inputPath, outputPath string, opts Options) (*File, error) {
	codec, err := Resolve(name, inputPath, outputPath)
	if err != nil {
		return nil, err
	}
	return &File{
		codec:      codec,
		inputPath:  inputPath,
		outputPath: outputPath,
		opts:       opts,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
	}, nil
}

// Codec returns the resolved codec.
func (f *File) Codec() Codec {
	return f.codec
}

// Load reads the input path, or stdin when no path is set, and parses the
// bytes with the bound codec.
func (f *File) Load() (record.List, error) {
	if f.inputPath == "" {
		if !f.codec.SupportsStreams() {
			return nil, &StdStreamError{Format: f.codec.Name()}
		}
		return f.codec.Parse(drainStdin(f.stdin))
	}
	raw, err := os.ReadFile(f.inputPath)
	if err != nil {
		return nil, err
	}
	return f.codec.Parse(raw)
}

// Save dumps the records with the bound codec and writes the result to the
// output path, or stdout when no path is set. The dump is fully computed
// before any byte is written, a mid-render failure leaves no file on disk.
func (f *File) Save(records record.List) error {
	data, err := f.codec.Dump(records, f.opts)
	if err != nil {
		return err
	}
	if f.outputPath == "" {
		if !f.codec.SupportsStreams() {
			return &StdStreamError{Format: f.codec.Name(), Output: true}
		}
		_, err := fmt.Fprintln(f.stdout, string(data))
		return err
	}
	return os.WriteFile(f.outputPath, data, 0644)
}

// drainStdin accumulates the stream until end of input. An interrupt signal
// during the drain discards the bytes collected so far and returns an empty
// buffer instead of failing.
func drainStdin(r io.Reader) []byte {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)
	return drainUntil(r, sig)
}

func drainUntil(r io.Reader, interrupt <-chan os.Signal) []byte {
	done := make(chan []byte, 1)
	go func() {
		data, _ := io.ReadAll(r)
		done <- data
	}()

	select {
	case data := <-done:
		return data
	case <-interrupt:
		// The reader goroutine stays blocked on the stream; the process is
		// about to terminate anyway.
		return nil
	}
}
