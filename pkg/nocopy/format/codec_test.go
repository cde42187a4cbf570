package format

import (
	"testing"

	"github.com/72nd/nocopy-go/pkg/nocopy/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() record.List {
	rec1 := record.New()
	rec1.Set("id", int64(1))
	rec1.Set("name", "A")
	rec2 := record.New()
	rec2.Set("id", int64(2))
	rec2.Set("name", "B")
	return record.List{rec1, rec2}
}

func TestJSONRoundTrip(t *testing.T) {
	in := testRecords()
	raw, err := JSON.Dump(in, Options{})
	require.NoError(t, err)

	out, err := JSON.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestJSONParseError(t *testing.T) {
	_, err := JSON.Parse([]byte(`[{"id":`))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "json", parseErr.Format)
}

func TestJSONDumpPreservesNesting(t *testing.T) {
	nested := record.New()
	nested.Set("x", int64(2))
	rec := record.New()
	rec.Set("a", int64(1))
	rec.Set("b", nested)

	// JSON never flattens, the option is ignored.
	raw, err := JSON.Dump(record.List{rec}, Options{LevelNested: true})
	require.NoError(t, err)
	assert.Equal(t, `[{"a":1,"b":{"x":2}}]`, string(raw))
}

func TestYAMLRoundTrip(t *testing.T) {
	in := testRecords()
	raw, err := YAML.Dump(in, Options{})
	require.NoError(t, err)

	out, err := YAML.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestYAMLParseSingleMapping(t *testing.T) {
	out, err := YAML.Parse([]byte("id: 1\nname: A\n"))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"id", "name"}, out[0].Keys())
}

func TestYAMLParseError(t *testing.T) {
	_, err := YAML.Parse([]byte("\t- not yaml"))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "yaml", parseErr.Format)
}

func TestCodecIdentities(t *testing.T) {
	tests := []struct {
		codec    Codec
		name     string
		exts     []string
		supports bool
	}{
		{JSON, "json", []string{".json"}, true},
		{YAML, "yaml", []string{".yaml", ".yml"}, true},
		{CSV, "csv", []string{".csv"}, true},
		{XLSX, "xlsx", []string{".xlsx"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.codec.Name())
			assert.Equal(t, tt.exts, tt.codec.Extensions())
			assert.Equal(t, tt.supports, tt.codec.SupportsStreams())
		})
	}
}
