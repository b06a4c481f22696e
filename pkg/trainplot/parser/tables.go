package parser

// tableBounds is the bounding box of non-empty cells on a sheet (0-based, inclusive).
type tableBounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Empty reports whether no non-empty cell was found.
func (b tableBounds) Empty() bool {
	return b.MinRow < 0
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) tableBounds {
	b := tableBounds{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if b.MinRow < 0 || rowIdx < b.MinRow {
				b.MinRow = rowIdx
			}
			if b.MaxRow < 0 || rowIdx > b.MaxRow {
				b.MaxRow = rowIdx
			}
			if b.MinCol < 0 || colIdx < b.MinCol {
				b.MinCol = colIdx
			}
			if b.MaxCol < 0 || colIdx > b.MaxCol {
				b.MaxCol = colIdx
			}
		}
	}

	return b
}

// cropRows returns the rows inside the bounds, each cut to the bounded columns.
// Short rows are kept short so missing cells stay detectable.
func cropRows(rows [][]string, b tableBounds) [][]string {
	if b.Empty() {
		return nil
	}
	out := make([][]string, 0, b.MaxRow-b.MinRow+1)
	for rowIdx := b.MinRow; rowIdx <= b.MaxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		var cropped []string
		if b.MinCol < len(row) {
			end := b.MaxCol + 1
			if end > len(row) {
				end = len(row)
			}
			cropped = row[b.MinCol:end]
		}
		out = append(out, cropped)
	}
	return out
}
