package extract

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	// Register decoders for the bitmap formats PDF image streams commonly
	// decode to, so undecodable data is rejected before it reaches the
	// OCR engine.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pdfjson/pdfjson/model"
	"github.com/pdfjson/pdfjson/ocr"
)

// minOCRConfidence is the exclusive lower bound for keeping a recognized
// span, on the [0,1] scale. A span at exactly this confidence is dropped.
const minOCRConfidence = 0.5

// Recognizer is the OCR collaborator contract: given bitmap data, return
// recognized spans with confidences on the Tesseract 0-100 scale.
// [ocr.Client] satisfies it when built with the ocr tag.
type Recognizer interface {
	RecognizeSpans(image []byte) ([]ocr.Span, error)
}

// Images runs OCR over one page's embedded images and returns the
// resulting fragments along with any per-image failures.
//
// A failure to decode or recognize one image is isolated: it is reported
// in the returned error slice and the remaining images are still
// processed. Recognized spans are trimmed, scaled to [0,1] confidence,
// and kept only above the 0.5 threshold. OCR fragments carry no bounding
// box.
func Images(images [][]byte, rec Recognizer, page int) ([]model.Fragment, []error) {
	var frags []model.Fragment
	var failures []error

	for i, data := range images {
		if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
			failures = append(failures, fmt.Errorf("page %d image %d: undecodable bitmap: %w", page, i+1, err))
			continue
		}

		spans, err := rec.RecognizeSpans(data)
		if err != nil {
			failures = append(failures, fmt.Errorf("page %d image %d: recognition failed: %w", page, i+1, err))
			continue
		}

		for _, span := range spans {
			text := strings.TrimSpace(span.Text)
			if text == "" {
				continue
			}

			confidence := span.Confidence / 100
			if confidence <= minOCRConfidence {
				continue
			}

			frags = append(frags, model.Fragment{
				Kind:       model.KindOcrText,
				Text:       text,
				Page:       page,
				Confidence: confidence,
			})
		}
	}

	return frags, failures
}
