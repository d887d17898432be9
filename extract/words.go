package extract

import (
	"strings"

	"github.com/pdfjson/pdfjson/classify"
	"github.com/pdfjson/pdfjson/model"
)

// Words converts one page's word-level tokens into classified fragments.
//
// Each token is trimmed and dropped if empty; surviving tokens are
// classified by pattern and carry their bounding box. Native text is
// deterministic, so confidence is always 1.0.
func Words(words []model.Word, page int) []model.Fragment {
	var frags []model.Fragment

	for _, w := range words {
		text := strings.TrimSpace(w.Text)
		if text == "" {
			continue
		}

		bbox := w.BBox
		frags = append(frags, model.Fragment{
			Kind:       classify.Classify(text),
			Text:       text,
			Page:       page,
			BBox:       &bbox,
			Confidence: 1.0,
		})
	}

	return frags
}
