package record_test

import (
	"encoding/json"
	"testing"

	"github.com/72nd/nocopy-go/pkg/nocopy/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSONKeyOrderPreserved(t *testing.T) {
	raw := `[{"zebra":1,"apple":"x","mango":null}]`
	var records record.List
	require.NoError(t, json.Unmarshal([]byte(raw), &records))
	require.Len(t, records, 1)
	assert.Equal(t, []string{"zebra", "apple", "mango"}, records[0].Keys())

	out, err := json.Marshal(records)
	require.NoError(t, err)
	assert.Equal(t, raw, string(out))
}

func TestJSONNumberCoercion(t *testing.T) {
	var records record.List
	require.NoError(t, json.Unmarshal([]byte(`[{"i":7,"f":1.25}]`), &records))
	i, _ := records[0].Get("i")
	f, _ := records[0].Get("f")
	assert.Equal(t, int64(7), i)
	assert.Equal(t, 1.25, f)
}

func TestJSONNested(t *testing.T) {
	var records record.List
	require.NoError(t, json.Unmarshal([]byte(`[{"a":1,"b":{"x":2,"y":3}}]`), &records))
	v, ok := records[0].Get("b")
	require.True(t, ok)
	nested, ok := v.(*record.Record)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, nested.Keys())
}

func TestJSONSingleObjectAsList(t *testing.T) {
	var records record.List
	require.NoError(t, json.Unmarshal([]byte(`{"id":1}`), &records))
	require.Len(t, records, 1)
}

func TestJSONMalformed(t *testing.T) {
	var records record.List
	assert.Error(t, json.Unmarshal([]byte(`[{"id":}]`), &records))
	assert.Error(t, json.Unmarshal([]byte(`"just a string"`), &records))
}

func TestYAMLRoundTrip(t *testing.T) {
	nested := record.New()
	nested.Set("x", int64(2))
	rec := record.New()
	rec.Set("zebra", int64(1))
	rec.Set("apple", "a")
	rec.Set("empty", nil)
	rec.Set("sub", nested)
	in := record.List{rec}

	raw, err := yaml.Marshal(in)
	require.NoError(t, err)

	var out record.List
	require.NoError(t, yaml.Unmarshal(raw, &out))
	require.Len(t, out, 1)
	assert.Equal(t, []string{"zebra", "apple", "empty", "sub"}, out[0].Keys())
	assert.Equal(t, in, out)
}

func TestYAMLKeyOrderPreserved(t *testing.T) {
	raw := "- zebra: 1\n  apple: x\n"
	var records record.List
	require.NoError(t, yaml.Unmarshal([]byte(raw), &records))
	require.Len(t, records, 1)
	assert.Equal(t, []string{"zebra", "apple"}, records[0].Keys())
	z, _ := records[0].Get("zebra")
	assert.Equal(t, int64(1), z)
}
