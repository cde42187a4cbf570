package record_test

import (
	"testing"

	"github.com/72nd/nocopy-go/pkg/nocopy/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	nested := record.New()
	nested.Set("x", int64(2))
	nested.Set("y", int64(3))
	rec := record.New()
	rec.Set("a", int64(1))
	rec.Set("b", nested)

	flat := record.Flatten(rec)
	assert.Equal(t, []string{"a", "b_x", "b_y"}, flat.Keys())
	assert.False(t, flat.Has("b"))
	x, _ := flat.Get("b_x")
	assert.Equal(t, int64(2), x)

	// The input record is untouched.
	assert.Equal(t, []string{"a", "b"}, rec.Keys())
}

func TestFlattenExpandsAfterFlatColumns(t *testing.T) {
	nested := record.New()
	nested.Set("k", "v")
	rec := record.New()
	rec.Set("a", int64(1))
	rec.Set("sub", nested)
	rec.Set("z", int64(9))

	flat := record.Flatten(rec)
	assert.Equal(t, []string{"a", "z", "sub_k"}, flat.Keys())
}

func TestFlattenIdempotent(t *testing.T) {
	nested := record.New()
	nested.Set("x", int64(2))
	rec := record.New()
	rec.Set("a", int64(1))
	rec.Set("b", nested)

	once := record.Flatten(rec)
	twice := record.Flatten(once)
	assert.Equal(t, once, twice)
}

func TestFlattenNoOpOnFlatRecord(t *testing.T) {
	rec := record.New()
	rec.Set("a", int64(1))
	rec.Set("b", "x")
	assert.Same(t, rec, record.Flatten(rec))
}

func TestFlattenList(t *testing.T) {
	nested := record.New()
	nested.Set("k", "v")
	rec1 := record.New()
	rec1.Set("id", int64(1))
	rec2 := record.New()
	rec2.Set("id", int64(2))
	rec2.Set("extra", nested)

	out := record.FlattenList(record.List{rec1, rec2})
	require.Len(t, out, 2)
	assert.Equal(t, []string{"id"}, out[0].Keys())
	assert.Equal(t, []string{"id", "extra_k"}, out[1].Keys())
	assert.True(t, rec2.Has("extra"))
}
