package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Span is one recognized piece of text from a bitmap.
//
// Confidence is the recognizer-reported score on the Tesseract 0-100
// scale; consumers scale it to [0,1] and apply their own threshold.
type Span struct {
	Text       string
	Confidence float64
}
