// Package aggregate folds classified fragments into the grouped document
// model.
package aggregate

import (
	"errors"
	"time"

	"github.com/pdfjson/pdfjson/model"
)

// ErrNoFragments is returned when aggregation receives zero fragments.
// With nothing extracted there is no maximum page number, so the document
// metadata cannot be computed.
var ErrNoFragments = errors.New("no fragments extracted from document")

// Build folds an ordered fragment sequence into a document model.
//
// It makes a single pass, appending each fragment to its page group and
// its kind group so both groupings preserve the input order. Metadata is
// computed afterwards: total pages is the maximum page number seen,
// element types are the distinct kinds in declaration order, and the
// processing timestamp is stamped at aggregation time.
func Build(fragments []model.Fragment, ocrEnabled bool) (*model.Document, error) {
	if len(fragments) == 0 {
		return nil, ErrNoFragments
	}

	doc := model.NewDocument()
	maxPage := 0
	for _, f := range fragments {
		doc.Append(f)
		if f.Page > maxPage {
			maxPage = f.Page
		}
	}

	doc.Metadata = model.Metadata{
		TotalPages:          maxPage,
		ElementTypes:        doc.PresentKinds(),
		ProcessingTimestamp: time.Now(),
		OCREnabled:          ocrEnabled,
	}

	return doc, nil
}
