package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the record as a JSON object with columns in insertion
// order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the record, preserving the key
// order of the document. Numbers become int64 when integral, float64
// otherwise. Nested objects become nested records.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	return decodeObject(dec, r)
}

// MarshalJSON encodes the list as a JSON array of objects.
func (l List) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, rec := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		raw, err := rec.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(raw)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON array of objects into the list. A single
// top-level object is accepted as a one-record list.
func (l *List) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return fmt.Errorf("expected JSON array of objects, got %v", tok)
	}
	switch d {
	case '[':
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			if d, ok := tok.(json.Delim); !ok || d != '{' {
				return fmt.Errorf("expected JSON object in array, got %v", tok)
			}
			rec := New()
			if err := decodeObject(dec, rec); err != nil {
				return err
			}
			*l = append(*l, rec)
		}
		// Consume the closing ']'.
		_, err = dec.Token()
		return err
	case '{':
		rec := New()
		if err := decodeObject(dec, rec); err != nil {
			return err
		}
		*l = append(*l, rec)
		return nil
	default:
		return fmt.Errorf("expected JSON array of objects, got %v", tok)
	}
}

// decodeObject reads key/value pairs up to and including the closing '}'.
// The opening '{' must already be consumed.
func decodeObject(dec *json.Decoder, rec *Record) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return err
		}
		rec.Set(key, v)
	}
	_, err := dec.Token()
	return err
}

// decodeValue reads a single JSON value from the decoder.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			nested := New()
			if err := decodeObject(dec, nested); err != nil {
				return nil, err
			}
			return nested, nil
		case '[':
			var elems []Value
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				elems = append(elems, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return elems, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	case json.Number:
		return CoerceNumber(t), nil
	default:
		// string, bool, or nil.
		return t, nil
	}
}
