package model

import (
	"encoding/json"
	"fmt"
)

// Kind is the semantic category assigned to a Fragment.
//
// Declaration order is significant: it matches the classifier's rule order
// and fixes the order of "type_<kind>" keys in serialized documents.
type Kind int

const (
	// KindHeader is all-uppercase heading text.
	KindHeader Kind = iota
	// KindDate is a D-M-Y or D/M/Y date.
	KindDate
	// KindEmail is an email address.
	KindEmail
	// KindPhone is a phone number.
	KindPhone
	// KindAmount is a monetary amount.
	KindAmount
	// KindListItem is a bulleted list item.
	KindListItem
	// KindFormField is labeled form data, including every table cell.
	KindFormField
	// KindOcrText is text recognized from an embedded image.
	KindOcrText
	// KindPlainText is text matching no other category.
	KindPlainText
)

// AllKinds returns every Kind in declaration order.
func AllKinds() []Kind {
	return []Kind{
		KindHeader, KindDate, KindEmail, KindPhone, KindAmount,
		KindListItem, KindFormField, KindOcrText, KindPlainText,
	}
}

// String returns the serialized name of the kind (e.g. "form_field").
func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindDate:
		return "date"
	case KindEmail:
		return "email"
	case KindPhone:
		return "phone"
	case KindAmount:
		return "amount"
	case KindListItem:
		return "list_item"
	case KindFormField:
		return "form_field"
	case KindOcrText:
		return "ocr_text"
	case KindPlainText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseKind converts a serialized kind name back to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown fragment kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// BBox is a rectangle in page coordinate space.
type BBox struct {
	X0     float64
	Top    float64
	X1     float64
	Bottom float64
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	if b.Top > b.Bottom {
		return b.Top - b.Bottom
	}
	return b.Bottom - b.Top
}

// MarshalJSON serializes the box as [x0, top, x1, bottom].
func (b BBox) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{b.X0, b.Top, b.X1, b.Bottom})
}

// UnmarshalJSON parses the [x0, top, x1, bottom] array form.
func (b *BBox) UnmarshalJSON(data []byte) error {
	var coords [4]float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return fmt.Errorf("bbox must be a 4-element array: %w", err)
	}
	b.X0, b.Top, b.X1, b.Bottom = coords[0], coords[1], coords[2], coords[3]
	return nil
}

// Fragment is one classified piece of text with provenance.
//
// Text is never empty or whitespace-only; adapters drop such input instead
// of emitting a fragment. Page is 1-based. BBox is nil for fragments
// without a position (table cells, OCR spans). Confidence is in [0, 1] and
// is 1.0 for everything except OCR fragments, which carry the recognizer's
// reported confidence.
type Fragment struct {
	Kind       Kind    `json:"type"`
	Text       string  `json:"text"`
	Page       int     `json:"page"`
	BBox       *BBox   `json:"bbox"`
	Confidence float64 `json:"confidence"`
}

// Word is a positioned word-level token supplied by the PDF-parsing
// collaborator, before classification.
type Word struct {
	Text string
	BBox BBox
}
