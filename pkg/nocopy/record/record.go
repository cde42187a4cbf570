// Package record defines the in-memory shape of tabular data: an ordered
// sequence of records, each mapping column names to scalar, null, or nested
// mapping values.
//
// Column order is significant. CSV and spreadsheet output derive their header
// from the record with the most columns, so records keep their columns in
// insertion order instead of relying on Go's unordered maps.
package record

// Value is a single cell value. Valid kinds are nil, string, bool, int64,
// float64, []Value, and *Record (a nested mapping, one level deep).
type Value = any

// Record is one row of tabular data, keyed by column name. The zero value is
// not usable; use New.
type Record struct {
	keys   []string
	values map[string]Value
}

// New returns an empty record.
func New() *Record {
	return &Record{values: make(map[string]Value)}
}

// Set stores v under key. A new key is appended after all existing keys, an
// existing key keeps its position.
func (r *Record) Set(key string, v Value) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the value stored under key and whether the key is present.
func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns the column names in insertion order. The returned slice is a
// copy.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of columns.
func (r *Record) Len() int {
	return len(r.keys)
}

// Clone returns a deep copy of the record. Nested records are cloned as
// well.
func (r *Record) Clone() *Record {
	out := New()
	for _, key := range r.keys {
		v := r.values[key]
		if nested, ok := v.(*Record); ok {
			v = nested.Clone()
		}
		out.Set(key, v)
	}
	return out
}

// List is an ordered sequence of records. Insertion order is the row order
// on output.
type List []*Record

// Widest returns the record with the most columns, ties broken by first
// occurrence. Returns nil for an empty list.
func Widest(records List) *Record {
	var widest *Record
	for _, rec := range records {
		if widest == nil || rec.Len() > widest.Len() {
			widest = rec
		}
	}
	return widest
}
