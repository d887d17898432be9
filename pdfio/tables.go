package pdfio

import (
	"math"
	"sort"

	"github.com/pdfjson/pdfjson/model"
)

const (
	// colTolerance is the maximum X0 drift (in points) for cells in
	// consecutive rows to be considered the same column.
	colTolerance = 6.0

	// maxRowGap is the maximum vertical gap (in points) between
	// consecutive rows of one grid.
	maxRowGap = 24.0

	// minGridRows and minGridCols are the smallest shape accepted as a
	// table.
	minGridRows = 2
	minGridCols = 2
)

// detectGrids finds table-shaped regions on a page from word positions
// alone, without relying on drawn gridlines.
//
// Words are grouped into visual rows; a run of vertically adjacent rows
// whose words line up into the same columns is reported as a grid of
// cells. Rows that don't fit the column structure end the run. This is a
// heuristic: a page with no aligned multi-column rows yields nothing.
func detectGrids(words []model.Word) [][][]string {
	rows := wordRows(words)

	var grids [][][]string
	var run []tableRow

	flush := func() {
		if grid := buildGrid(run); grid != nil {
			grids = append(grids, grid)
		}
		run = nil
	}

	for _, row := range rows {
		if len(row.words) < minGridCols {
			flush()
			continue
		}
		if len(run) > 0 && !row.alignsWith(run[len(run)-1]) {
			flush()
		}
		run = append(run, row)
	}
	flush()

	return grids
}

// tableRow is one visual row of words, left to right.
type tableRow struct {
	top   float64
	words []model.Word
}

// alignsWith reports whether this row continues prev's column structure:
// same cell count, close enough vertically, and every cell's left edge
// within tolerance of the cell above it.
func (r tableRow) alignsWith(prev tableRow) bool {
	if len(r.words) != len(prev.words) {
		return false
	}
	if prev.top-r.top > maxRowGap+prev.words[0].BBox.Height() {
		return false
	}
	for i := range r.words {
		if math.Abs(r.words[i].BBox.X0-prev.words[i].BBox.X0) > colTolerance {
			return false
		}
	}
	return true
}

// wordRows groups words into visual rows ordered top to bottom.
func wordRows(words []model.Word) []tableRow {
	if len(words) == 0 {
		return nil
	}

	sorted := make([]model.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].BBox.Top > sorted[j].BBox.Top })

	var rows []tableRow
	current := tableRow{top: sorted[0].BBox.Top, words: []model.Word{sorted[0]}}

	for _, w := range sorted[1:] {
		if current.top-w.BBox.Top > rowTolerance {
			rows = append(rows, sortRow(current))
			current = tableRow{top: w.BBox.Top}
		}
		current.words = append(current.words, w)
	}
	rows = append(rows, sortRow(current))

	return rows
}

func sortRow(r tableRow) tableRow {
	sort.SliceStable(r.words, func(i, j int) bool { return r.words[i].BBox.X0 < r.words[j].BBox.X0 })
	return r
}

// buildGrid converts a run of aligned rows into cell text, or nil when
// the run is smaller than the minimum table shape.
func buildGrid(run []tableRow) [][]string {
	if len(run) < minGridRows {
		return nil
	}

	grid := make([][]string, len(run))
	for i, row := range run {
		cells := make([]string, len(row.words))
		for j, w := range row.words {
			cells[j] = w.Text
		}
		grid[i] = cells
	}
	return grid
}
