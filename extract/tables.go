package extract

import (
	"strings"

	"github.com/pdfjson/pdfjson/model"
)

// TableCells converts one table grid into fragments, one per non-empty
// cell in row order.
//
// Table cells bypass the classifier entirely: a cell is always a
// form-field fragment, even when its text would match the date or email
// patterns. This preserves the behavior of treating anything inside a
// detected grid as structured form data. Cells have no bounding box and
// confidence 1.0.
func TableCells(grid [][]string, page int) []model.Fragment {
	var frags []model.Fragment

	for _, row := range grid {
		for _, cell := range row {
			text := strings.TrimSpace(cell)
			if text == "" {
				continue
			}

			frags = append(frags, model.Fragment{
				Kind:       model.KindFormField,
				Text:       text,
				Page:       page,
				Confidence: 1.0,
			})
		}
	}

	return frags
}
