package pdfio

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/pdfjson/pdfjson/model"
)

const (
	// rowTolerance is the maximum baseline Y difference (in points) for
	// two runs to share a row.
	rowTolerance = 2.0

	// wordGapFactor scales a run's font size into the maximum horizontal
	// gap that still joins it to the previous run of the same word.
	wordGapFactor = 0.3

	// minWordGap floors the join gap for tiny or unreported font sizes.
	minWordGap = 1.0
)

// mergeWords groups positioned character runs into word-level tokens.
//
// Runs are bucketed into rows by baseline Y, sorted left to right, and
// joined while the horizontal gap between consecutive runs stays within a
// fraction of the font size. Word text is NFC-normalized. The resulting
// order is top-to-bottom, left-to-right.
func mergeWords(texts []pdf.Text) []model.Word {
	if len(texts) == 0 {
		return nil
	}

	runs := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		runs = append(runs, t)
	}
	if len(runs) == 0 {
		return nil
	}

	rows := groupRows(runs)

	var words []model.Word
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })

		var b wordBuilder
		for _, t := range row {
			if strings.TrimSpace(t.S) == "" {
				// An explicit space run ends the current word.
				words = b.flush(words)
				continue
			}
			if !b.empty() && t.X-b.right > joinGap(t.FontSize) {
				words = b.flush(words)
			}
			b.add(t)
		}
		words = b.flush(words)
	}

	return words
}

// groupRows buckets runs by baseline Y, returning rows ordered top to
// bottom (PDF user space has Y increasing upwards).
func groupRows(runs []pdf.Text) [][]pdf.Text {
	sorted := make([]pdf.Text, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Y > sorted[j].Y })

	var rows [][]pdf.Text
	rowY := sorted[0].Y
	current := []pdf.Text{sorted[0]}

	for _, t := range sorted[1:] {
		if rowY-t.Y > rowTolerance {
			rows = append(rows, current)
			current = nil
			rowY = t.Y
		}
		current = append(current, t)
	}
	rows = append(rows, current)

	return rows
}

func joinGap(fontSize float64) float64 {
	gap := fontSize * wordGapFactor
	if gap < minWordGap {
		return minWordGap
	}
	return gap
}

// wordBuilder accumulates runs belonging to one word.
type wordBuilder struct {
	text     strings.Builder
	x0       float64
	right    float64
	baseline float64
	fontSize float64
}

func (b *wordBuilder) empty() bool {
	return b.text.Len() == 0
}

func (b *wordBuilder) add(t pdf.Text) {
	if b.empty() {
		b.x0 = t.X
		b.baseline = t.Y
	}
	if t.FontSize > b.fontSize {
		b.fontSize = t.FontSize
	}
	b.text.WriteString(t.S)
	b.right = t.X + t.W
}

// flush appends the accumulated word, if any, and resets the builder.
// The bounding box is in PDF user space: the top edge is the baseline
// plus the font size, the bottom edge is the baseline.
func (b *wordBuilder) flush(words []model.Word) []model.Word {
	if b.empty() {
		return words
	}
	word := model.Word{
		Text: norm.NFC.String(b.text.String()),
		BBox: model.BBox{
			X0:     b.x0,
			Top:    b.baseline + b.fontSize,
			X1:     b.right,
			Bottom: b.baseline,
		},
	}
	*b = wordBuilder{}
	return append(words, word)
}
