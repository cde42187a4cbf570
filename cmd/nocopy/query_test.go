package main

import (
	"testing"

	"github.com/72nd/nocopy-go/pkg/nocopy/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumField(t *testing.T) {
	rec1 := record.New()
	rec1.Set("amount", int64(3))
	rec2 := record.New()
	rec2.Set("amount", 1.5)
	rec3 := record.New()
	rec3.Set("amount", nil)

	total, err := sumField(record.List{rec1, rec2, rec3}, "amount")
	require.NoError(t, err)
	assert.Equal(t, 4.5, total)
}

func TestSumFieldNonNumeric(t *testing.T) {
	rec := record.New()
	rec.Set("amount", "twelve")
	_, err := sumField(record.List{rec}, "amount")
	assert.Error(t, err)
}

func TestRecordID(t *testing.T) {
	rec := record.New()
	rec.Set("id", int64(7))
	id, err := recordID(rec)
	require.NoError(t, err)
	assert.Equal(t, "7", id)

	_, err = recordID(record.New())
	assert.Error(t, err)
}
