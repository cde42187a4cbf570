package format

import (
	"github.com/72nd/nocopy-go/pkg/nocopy/record"
	"gopkg.in/yaml.v3"
)

// yamlCodec (de)serializes record lists as block-style YAML. Same structural
// contract as JSON.
type yamlCodec struct{}

func (yamlCodec) Name() string {
	return "yaml"
}

func (yamlCodec) Extensions() []string {
	return []string{".yaml", ".yml"}
}

func (yamlCodec) SupportsStreams() bool {
	return true
}

func (c yamlCodec) Parse(raw []byte) (record.List, error) {
	var records record.List
	if err := yaml.Unmarshal(raw, &records); err != nil {
		// A single top-level mapping is accepted as a one-record list.
		rec := record.New()
		if recErr := yaml.Unmarshal(raw, rec); recErr == nil {
			return record.List{rec}, nil
		}
		return nil, &ParseError{Format: c.Name(), Err: err}
	}
	return records, nil
}

func (yamlCodec) Dump(records record.List, _ Options) ([]byte, error) {
	return yaml.Marshal(records)
}
