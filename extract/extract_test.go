package extract

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/pdfjson/pdfjson/model"
	"github.com/pdfjson/pdfjson/ocr"
)

func TestWords(t *testing.T) {
	words := []model.Word{
		{Text: "  INVOICE  ", BBox: model.BBox{X0: 72, Top: 70, X1: 130, Bottom: 84}},
		{Text: "   ", BBox: model.BBox{X0: 0, Top: 0, X1: 1, Bottom: 1}},
		{Text: "john@x.com", BBox: model.BBox{X0: 72, Top: 90, X1: 160, Bottom: 104}},
	}

	frags := Words(words, 3)
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments (blank token dropped), got %d", len(frags))
	}

	first := frags[0]
	if first.Kind != model.KindHeader {
		t.Errorf("first kind = %v, want header", first.Kind)
	}
	if first.Text != "INVOICE" {
		t.Errorf("first text = %q, want trimmed %q", first.Text, "INVOICE")
	}
	if first.Page != 3 {
		t.Errorf("page = %d, want 3", first.Page)
	}
	if first.BBox == nil || first.BBox.X0 != 72 {
		t.Errorf("bbox not carried: %+v", first.BBox)
	}
	if first.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", first.Confidence)
	}

	if frags[1].Kind != model.KindEmail {
		t.Errorf("second kind = %v, want email", frags[1].Kind)
	}
}

// Table cells never go through the classifier: even a cell that looks
// like a date or an email is a form field.
func TestTableCellsBypassClassifier(t *testing.T) {
	grid := [][]string{
		{"Date", "12/31/2024"},
		{"Contact", "john@x.com"},
		{"", "  "},
		{"Paid"},
	}

	frags := TableCells(grid, 2)
	if len(frags) != 5 {
		t.Fatalf("expected 5 fragments (empty cells dropped), got %d", len(frags))
	}

	wantTexts := []string{"Date", "12/31/2024", "Contact", "john@x.com", "Paid"}
	for i, f := range frags {
		if f.Kind != model.KindFormField {
			t.Errorf("cell %q kind = %v, want form_field", f.Text, f.Kind)
		}
		if f.Text != wantTexts[i] {
			t.Errorf("cell %d text = %q, want %q (row order)", i, f.Text, wantTexts[i])
		}
		if f.Page != 2 {
			t.Errorf("cell %d page = %d, want 2", i, f.Page)
		}
		if f.BBox != nil {
			t.Errorf("cell %d has a bbox, want none", i)
		}
		if f.Confidence != 1.0 {
			t.Errorf("cell %d confidence = %v, want 1.0", i, f.Confidence)
		}
	}
}

// testPNG returns a small valid PNG so the decode check passes.
func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

// fakeRecognizer returns canned spans per call, failing on designated
// call indexes.
type fakeRecognizer struct {
	spans   [][]ocr.Span
	failOn  map[int]bool
	callNum int
}

func (f *fakeRecognizer) RecognizeSpans(image []byte) ([]ocr.Span, error) {
	call := f.callNum
	f.callNum++
	if f.failOn[call] {
		return nil, errors.New("engine crashed")
	}
	if call < len(f.spans) {
		return f.spans[call], nil
	}
	return nil, nil
}

func TestImagesConfidenceThreshold(t *testing.T) {
	rec := &fakeRecognizer{spans: [][]ocr.Span{{
		{Text: "kept", Confidence: 50.01},
		{Text: "boundary", Confidence: 50},
		{Text: "low", Confidence: 12},
		{Text: "   ", Confidence: 99},
		{Text: "  solid  ", Confidence: 97.5},
	}}}

	frags, failures := Images([][]byte{testPNG(t)}, rec, 1)
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d: %+v", len(frags), frags)
	}

	if frags[0].Text != "kept" || frags[0].Confidence <= 0.5 {
		t.Errorf("first fragment = %+v, want kept with confidence just above 0.5", frags[0])
	}
	if frags[1].Text != "solid" {
		t.Errorf("second fragment text = %q, want trimmed %q", frags[1].Text, "solid")
	}
	for _, f := range frags {
		if f.Kind != model.KindOcrText {
			t.Errorf("kind = %v, want ocr_text", f.Kind)
		}
		if f.BBox != nil {
			t.Error("OCR fragment should carry no bbox")
		}
		if f.Confidence <= 0.5 || f.Confidence > 1 {
			t.Errorf("confidence %v out of (0.5, 1]", f.Confidence)
		}
	}
}

func TestImagesFailureIsolation(t *testing.T) {
	rec := &fakeRecognizer{
		spans: [][]ocr.Span{
			nil,
			{{Text: "after", Confidence: 88}},
		},
		failOn: map[int]bool{0: true},
	}

	png := testPNG(t)
	frags, failures := Images([][]byte{png, png}, rec, 4)

	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d: %v", len(failures), failures)
	}
	if len(frags) != 1 || frags[0].Text != "after" {
		t.Fatalf("second image should still be processed, got %+v", frags)
	}
	if frags[0].Page != 4 {
		t.Errorf("page = %d, want 4", frags[0].Page)
	}
}

func TestImagesUndecodableBitmap(t *testing.T) {
	rec := &fakeRecognizer{spans: [][]ocr.Span{{{Text: "ok", Confidence: 90}}}}

	frags, failures := Images([][]byte{[]byte("not an image"), testPNG(t)}, rec, 1)
	if len(failures) != 1 {
		t.Fatalf("expected 1 decode failure, got %v", failures)
	}
	if len(frags) != 1 || frags[0].Text != "ok" {
		t.Fatalf("decodable image should still be recognized, got %+v", frags)
	}
}
