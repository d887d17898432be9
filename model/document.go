package model

import (
	"sort"
	"time"
)

// Metadata holds document-level information computed at aggregation time.
type Metadata struct {
	TotalPages          int       `json:"total_pages"`
	ElementTypes        []Kind    `json:"element_types"`
	ProcessingTimestamp time.Time `json:"processing_timestamp"`
	OCREnabled          bool      `json:"ocr_enabled"`
}

// Document is the grouped, metadata-bearing result of a conversion.
//
// Every fragment appears in exactly one page group and exactly one kind
// group; both groups preserve emission order. A Document is built once per
// conversion and not updated afterwards.
type Document struct {
	Pages    map[int][]Fragment
	Kinds    map[Kind][]Fragment
	Metadata Metadata
}

// NewDocument creates an empty document with initialized groupings.
func NewDocument() *Document {
	return &Document{
		Pages: make(map[int][]Fragment),
		Kinds: make(map[Kind][]Fragment),
	}
}

// Append adds a fragment to its page group and its kind group.
func (d *Document) Append(f Fragment) {
	d.Pages[f.Page] = append(d.Pages[f.Page], f)
	d.Kinds[f.Kind] = append(d.Kinds[f.Kind], f)
}

// Page returns the fragments on the given 1-based page, in emission order.
func (d *Document) Page(n int) []Fragment {
	return d.Pages[n]
}

// ByKind returns every fragment of the given kind across all pages, in
// emission order.
func (d *Document) ByKind(k Kind) []Fragment {
	return d.Kinds[k]
}

// FragmentCount returns the total number of fragments in the document.
func (d *Document) FragmentCount() int {
	n := 0
	for _, frags := range d.Pages {
		n += len(frags)
	}
	return n
}

// PageNumbers returns the page numbers present, ascending.
func (d *Document) PageNumbers() []int {
	nums := make([]int, 0, len(d.Pages))
	for n := range d.Pages {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// PresentKinds returns the kinds present, in Kind declaration order.
func (d *Document) PresentKinds() []Kind {
	var kinds []Kind
	for _, k := range AllKinds() {
		if len(d.Kinds[k]) > 0 {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
