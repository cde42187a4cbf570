package format

import (
	"encoding/json"

	"github.com/72nd/nocopy-go/pkg/nocopy/record"
)

// jsonCodec (de)serializes record lists as a JSON array of objects. Nested
// mappings are preserved unchanged, no flattening.
type jsonCodec struct{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Extensions() []string {
	return []string{".json"}
}

func (jsonCodec) SupportsStreams() bool {
	return true
}

func (c jsonCodec) Parse(raw []byte) (record.List, error) {
	var records record.List
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &ParseError{Format: c.Name(), Err: err}
	}
	return records, nil
}

func (jsonCodec) Dump(records record.List, _ Options) ([]byte, error) {
	return json.Marshal(records)
}
