package record_test

import (
	"testing"

	"github.com/72nd/nocopy-go/pkg/nocopy/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOrder(t *testing.T) {
	rec := record.New()
	rec.Set("id", int64(1))
	rec.Set("name", "A")
	rec.Set("age", int64(42))
	assert.Equal(t, []string{"id", "name", "age"}, rec.Keys())

	// Overwriting keeps the position.
	rec.Set("name", "B")
	assert.Equal(t, []string{"id", "name", "age"}, rec.Keys())
	v, ok := rec.Get("name")
	require.True(t, ok)
	assert.Equal(t, "B", v)
	assert.Equal(t, 3, rec.Len())
}

func TestRecordClone(t *testing.T) {
	nested := record.New()
	nested.Set("x", int64(2))
	rec := record.New()
	rec.Set("a", int64(1))
	rec.Set("b", nested)

	clone := rec.Clone()
	nested.Set("x", int64(99))
	v, ok := clone.Get("b")
	require.True(t, ok)
	x, ok := v.(*record.Record).Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(2), x)
}

func TestWidest(t *testing.T) {
	narrow := record.New()
	narrow.Set("id", int64(1))
	wide := record.New()
	wide.Set("id", int64(2))
	wide.Set("name", "B")

	assert.Same(t, wide, record.Widest(record.List{narrow, wide}))
	assert.Nil(t, record.Widest(nil))
}

func TestWidestTieBreaksOnFirstOccurrence(t *testing.T) {
	first := record.New()
	first.Set("id", int64(1))
	second := record.New()
	second.Set("name", "B")

	assert.Same(t, first, record.Widest(record.List{first, second}))
}

func TestFormat(t *testing.T) {
	nested := record.New()
	nested.Set("k", "v")

	tests := []struct {
		name string
		in   record.Value
		want string
	}{
		{"null", nil, ""},
		{"string", "hello", "hello"},
		{"bool", true, "true"},
		{"int", int64(-12), "-12"},
		{"float", 1.5, "1.5"},
		{"nested", nested, `{"k":"v"}`},
		{"slice", []record.Value{int64(1), "a"}, "1,a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, record.Format(tt.in))
		})
	}
}
