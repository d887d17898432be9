package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestKindRoundTrip(t *testing.T) {
	for _, k := range AllKinds() {
		parsed, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.String(), err)
		}
		if parsed != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), parsed, k)
		}
	}

	if _, err := ParseKind("bogus"); err == nil {
		t.Error("expected error for unknown kind name")
	}
}

func TestKindNames(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindHeader, "header"},
		{KindListItem, "list_item"},
		{KindFormField, "form_field"},
		{KindOcrText, "ocr_text"},
		{KindPlainText, "text"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBBoxJSON(t *testing.T) {
	box := BBox{X0: 10, Top: 20.5, X1: 100, Bottom: 32}

	data, err := json.Marshal(box)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[10,20.5,100,32]" {
		t.Errorf("unexpected bbox JSON: %s", data)
	}

	var parsed BBox
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed != box {
		t.Errorf("round trip changed bbox: %+v", parsed)
	}

	if err := json.Unmarshal([]byte("[1,2]"), &parsed); err == nil {
		t.Error("expected error for short bbox array")
	}
}

func TestFragmentJSONNullBBox(t *testing.T) {
	frag := Fragment{Kind: KindFormField, Text: "Paid", Page: 2, Confidence: 1.0}

	data, err := json.Marshal(frag)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"bbox":null`) {
		t.Errorf("expected null bbox, got: %s", data)
	}
	if !strings.Contains(string(data), `"type":"form_field"`) {
		t.Errorf("expected serialized kind name, got: %s", data)
	}
}

func testDocument() *Document {
	doc := NewDocument()
	doc.Append(Fragment{Kind: KindHeader, Text: "INVOICE", Page: 1,
		BBox: &BBox{X0: 72, Top: 70, X1: 130, Bottom: 84}, Confidence: 1.0})
	doc.Append(Fragment{Kind: KindEmail, Text: "john@x.com", Page: 1, Confidence: 1.0})
	doc.Append(Fragment{Kind: KindFormField, Text: "Paid", Page: 2, Confidence: 1.0})
	doc.Metadata = Metadata{
		TotalPages:          2,
		ElementTypes:        []Kind{KindHeader, KindEmail, KindFormField},
		ProcessingTimestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		OCREnabled:          false,
	}
	return doc
}

func TestDocumentKeyOrder(t *testing.T) {
	data, err := json.Marshal(testDocument())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	s := string(data)
	keys := []string{`"page_1"`, `"page_2"`, `"type_header"`, `"type_email"`, `"type_form_field"`, `"metadata"`}
	last := -1
	for _, key := range keys {
		idx := strings.Index(s, key)
		if idx < 0 {
			t.Fatalf("missing key %s in output: %s", key, s)
		}
		if idx < last {
			t.Errorf("key %s out of order", key)
		}
		last = idx
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := testDocument()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var parsed Document
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(parsed.Pages) != len(doc.Pages) {
		t.Fatalf("page groups = %d, want %d", len(parsed.Pages), len(doc.Pages))
	}
	for _, n := range doc.PageNumbers() {
		if len(parsed.Page(n)) != len(doc.Page(n)) {
			t.Errorf("page %d has %d fragments, want %d", n, len(parsed.Page(n)), len(doc.Page(n)))
		}
		for i, f := range doc.Page(n) {
			got := parsed.Page(n)[i]
			if got.Kind != f.Kind || got.Text != f.Text || got.Page != f.Page || got.Confidence != f.Confidence {
				t.Errorf("page %d fragment %d = %+v, want %+v", n, i, got, f)
			}
			if (got.BBox == nil) != (f.BBox == nil) {
				t.Errorf("page %d fragment %d bbox presence mismatch", n, i)
			} else if f.BBox != nil && *got.BBox != *f.BBox {
				t.Errorf("page %d fragment %d bbox = %+v, want %+v", n, i, *got.BBox, *f.BBox)
			}
		}
	}

	if parsed.Metadata.TotalPages != 2 || parsed.Metadata.OCREnabled {
		t.Errorf("metadata mismatch: %+v", parsed.Metadata)
	}
	if !parsed.Metadata.ProcessingTimestamp.Equal(doc.Metadata.ProcessingTimestamp) {
		t.Errorf("timestamp mismatch: %v", parsed.Metadata.ProcessingTimestamp)
	}
}

func TestDocumentRejectsUnknownKeys(t *testing.T) {
	var doc Document
	if err := json.Unmarshal([]byte(`{"bogus": []}`), &doc); err == nil {
		t.Error("expected error for unrecognized top-level key")
	}
	if err := json.Unmarshal([]byte(`{"page_zero": []}`), &doc); err == nil {
		t.Error("expected error for malformed page key")
	}
}
