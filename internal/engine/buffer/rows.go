package buffer

// Row is the extent of one line as character offsets into the document.
// End excludes the terminating newline.
type Row struct {
	Start int
	End   int
}

// Len returns the number of characters on the row.
func (r Row) Len() int { return r.End - r.Start }

// Rows returns the extents of every line. A document always has at least
// one row, and a trailing newline opens an empty final row.
func (b *Buffer) Rows() []Row {
	rows := make([]Row, 0, 1)
	start := 0
	n := b.Len()
	for i := 0; i < n; i++ {
		r, _ := b.RuneAt(i)
		if r == '\n' {
			rows = append(rows, Row{Start: start, End: i})
			start = i + 1
		}
	}
	return append(rows, Row{Start: start, End: n})
}

// LineCount returns the number of lines in the document.
func (b *Buffer) LineCount() int {
	count := 1
	for _, r := range b.before {
		if r == '\n' {
			count++
		}
	}
	for _, r := range b.after {
		if r == '\n' {
			count++
		}
	}
	return count
}
