package format

import (
	"bytes"
	"encoding/csv"

	"github.com/72nd/nocopy-go/pkg/nocopy/record"
)

// csvCodec (de)serializes record lists as RFC-4180-like delimited text with
// a mandatory header row. An empty field is normalized to null on parse.
type csvCodec struct{}

func (csvCodec) Name() string {
	return "csv"
}

func (csvCodec) Extensions() []string {
	return []string{".csv"}
}

func (csvCodec) SupportsStreams() bool {
	return true
}

func (c csvCodec) Parse(raw []byte) (record.List, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &ParseError{Format: c.Name(), Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}
	header := rows[0]
	var records record.List
	for _, row := range rows[1:] {
		rec := record.New()
		for i, name := range header {
			if i >= len(row) || row[i] == "" {
				rec.Set(name, nil)
				continue
			}
			rec.Set(name, row[i])
		}
		records = append(records, rec)
	}
	return records, nil
}

func (csvCodec) Dump(records record.List, opts Options) ([]byte, error) {
	if opts.LevelNested {
		records = record.FlattenList(records)
	}
	widest := record.Widest(records)
	if widest == nil {
		return nil, nil
	}
	header := widest.Keys()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if !opts.OnlyHeader {
		row := make([]string, len(header))
		for _, rec := range records {
			for i, name := range header {
				row[i] = ""
				if v, ok := rec.Get(name); ok {
					row[i] = record.Format(v)
				}
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
