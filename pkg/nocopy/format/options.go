package format

// Options configures a single dump call. The zero value is the default: all
// rows, no flattening, no frozen panes. Options values are passed into every
// Dump call and never stored on a codec.
type Options struct {
	// OnlyHeader emits the header row only and suppresses all data rows.
	OnlyHeader bool
	// LevelNested applies the flattening transform before rendering: nested
	// mapping values become one flat column per nested key. Only the CSV and
	// spreadsheet formats honor this.
	LevelNested bool
	// FreezeAt is a cell reference (e.g. "A2") marking the first scrollable
	// cell of a spreadsheet. Rows above and columns left of it stay visible
	// while scrolling. Spreadsheet-only, empty means no freezing.
	FreezeAt string
}
