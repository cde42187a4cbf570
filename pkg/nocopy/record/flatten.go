package record

// Flatten expands the nested-mapping columns of a record into flat columns
// named <column>_<nested key>. Only top-level nested mappings are expanded
// (one level, not recursive). Flat columns keep their original order, the
// expansions are appended after them in nested-column order. The input
// record is never modified; records without nested mappings are returned
// unchanged.
func Flatten(rec *Record) *Record {
	nested := false
	for _, key := range rec.keys {
		if _, ok := rec.values[key].(*Record); ok {
			nested = true
			break
		}
	}
	if !nested {
		return rec
	}

	out := New()
	var nestedKeys []string
	for _, key := range rec.keys {
		if _, ok := rec.values[key].(*Record); ok {
			nestedKeys = append(nestedKeys, key)
			continue
		}
		out.Set(key, rec.values[key])
	}
	for _, key := range nestedKeys {
		sub := rec.values[key].(*Record)
		for _, subKey := range sub.keys {
			out.Set(key+"_"+subKey, sub.values[subKey])
		}
	}
	return out
}

// FlattenList applies Flatten to every record and returns the result as a
// new list. The input list and its records are never modified.
func FlattenList(records List) List {
	out := make(List, len(records))
	for i, rec := range records {
		out[i] = Flatten(rec)
	}
	return out
}
