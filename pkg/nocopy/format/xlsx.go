package format

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/72nd/nocopy-go/pkg/nocopy/record"
	"github.com/xuri/excelize/v2"
)

// Worksheet rendering constants.
const (
	sheetName = "Sheet1"
	tableName = "Records"

	// headerFillColor is the solid background of the header row.
	headerFillColor = "D9D9D9"
	// stripeFillColor shades every other data row.
	stripeFillColor = "F2F2F2"

	// colWidthFactor scales the longest cell text of a column into a column
	// width.
	colWidthFactor = 0.93
	colWidthMin    = 5
	colWidthMax    = 80
)

// xlsxCodec renders record lists as a single styled xlsx worksheet: header
// row from the widest record, auto-sized columns, alternating row shading,
// an optional freeze pane, and the used range registered as a named table.
//
// Loading xlsx files is not supported, Parse always fails. SupportsStreams
// still reports true for parity with the other formats; dumping to stdout
// writes raw workbook bytes, which is only useful when redirected.
type xlsxCodec struct{}

func (xlsxCodec) Name() string {
	return "xlsx"
}

func (xlsxCodec) Extensions() []string {
	return []string{".xlsx"}
}

func (xlsxCodec) SupportsStreams() bool {
	return true
}

func (c xlsxCodec) Parse(_ []byte) (record.List, error) {
	return nil, fmt.Errorf("%s: %w", c.Name(), ErrParseNotSupported)
}

func (xlsxCodec) Dump(records record.List, opts Options) ([]byte, error) {
	if opts.LevelNested {
		records = record.FlattenList(records)
	}

	f := excelize.NewFile()
	defer f.Close()

	widest := record.Widest(records)
	if widest != nil {
		if err := renderSheet(f, records, widest.Keys(), opts); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderSheet writes the header and data rows and applies all styling. The
// header is derived once from the widest record and stays stable for the
// whole dump.
func renderSheet(f *excelize.File, records record.List, header []string, opts Options) error {
	rowCount := 1
	if !opts.OnlyHeader {
		rowCount += len(records)
	}

	headerStyle, cellStyle, longTextStyle, err := newStyles(f)
	if err != nil {
		return err
	}

	for i, name := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheetName, cell, name); err != nil {
			return err
		}
	}
	if !opts.OnlyHeader {
		for r, rec := range records {
			for i, name := range header {
				v, ok := rec.Get(name)
				if !ok || v == nil {
					// Missing keys and nulls stay empty cells.
					continue
				}
				cell, err := excelize.CoordinatesToCellName(i+1, r+2)
				if err != nil {
					return err
				}
				if err := f.SetCellStr(sheetName, cell, record.Format(v)); err != nil {
					return err
				}
			}
		}
	}

	lastHeaderCell, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeaderCell, headerStyle); err != nil {
		return err
	}

	for i, name := range header {
		width, longText := columnWidth(records, name)
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
		if rowCount < 2 {
			continue
		}
		style := cellStyle
		if longText {
			style = longTextStyle
		}
		top, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return err
		}
		bottom, err := excelize.CoordinatesToCellName(i+1, rowCount)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, top, bottom, style); err != nil {
			return err
		}
	}

	if opts.FreezeAt != "" {
		if err := freezePanes(f, opts.FreezeAt); err != nil {
			return err
		}
	}

	bottomRight, err := excelize.CoordinatesToCellName(len(header), rowCount)
	if err != nil {
		return err
	}
	if rowCount < 2 {
		// A table over the header row alone would be written with a phantom
		// empty data row, so header-only sheets get neither stripes nor a
		// table.
		return nil
	}
	if err := stripeRows(f, "A2:"+bottomRight); err != nil {
		return err
	}
	return f.AddTable(sheetName, &excelize.Table{
		Range: "A1:" + bottomRight,
		Name:  tableName,
	})
}

// newStyles registers the header, default cell, and long-text cell styles.
func newStyles(f *excelize.File) (header, cell, longText int, err error) {
	borders := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Border:    borders,
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	if err != nil {
		return 0, 0, 0, err
	}
	cell, err = f.NewStyle(&excelize.Style{
		Border:    borders,
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	if err != nil {
		return 0, 0, 0, err
	}
	longText, err = f.NewStyle(&excelize.Style{
		Border:    borders,
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true, ShrinkToFit: true},
	})
	if err != nil {
		return 0, 0, 0, err
	}
	return header, cell, longText, nil
}

// columnWidth computes the width for one column from the header text and
// every cell value of that column. Widths are clamped to [colWidthMin,
// colWidthMax]; a column hitting the ceiling is flagged as long-text so it
// additionally gets wrapping text alignment.
func columnWidth(records record.List, name string) (width float64, longText bool) {
	maxLen := utf8.RuneCountInString(name)
	for _, rec := range records {
		v, ok := rec.Get(name)
		if !ok {
			continue
		}
		if l := utf8.RuneCountInString(record.Format(v)); l > maxLen {
			maxLen = l
		}
	}
	width = math.Ceil(float64(maxLen) * colWidthFactor)
	if width < colWidthMin {
		return colWidthMin, false
	}
	if width >= colWidthMax {
		return colWidthMax, true
	}
	return width, false
}

// freezePanes fixes all rows above and columns left of the given cell
// reference so they stay visible while scrolling.
func freezePanes(f *excelize.File, freezeAt string) error {
	col, row, err := excelize.CellNameToCoordinates(freezeAt)
	if err != nil {
		return fmt.Errorf("invalid freeze cell reference %q: %w", freezeAt, err)
	}
	return f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      col - 1,
		YSplit:      row - 1,
		TopLeftCell: freezeAt,
		ActivePane:  "bottomRight",
	})
}

// stripeRows installs a formula-based conditional format shading every odd
// data row across the given range, independent of cell content. Data rows
// start on sheet row 2, so odd data rows are the even sheet rows.
func stripeRows(f *excelize.File, rangeRef string) error {
	style, err := f.NewConditionalStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{stripeFillColor}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	return f.SetConditionalFormat(sheetName, rangeRef, []excelize.ConditionalFormatOptions{
		{
			Type:     "formula",
			Criteria: "=MOD(ROW(),2)=0",
			Format:   &style,
		},
	})
}
