package pdfio

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/pdfjson/pdfjson/model"
)

// Reader provides page-oriented access to one open PDF document.
// It is not safe for concurrent use; each conversion owns its own Reader.
type Reader struct {
	path string
	file *os.File
	pdf  *pdf.Reader

	// imageCtx is built lazily on the first Images call; image extraction
	// needs pdfcpu's optimized cross-reference view of the file.
	imageCtx imageContext
}

// Open opens a PDF file for extraction. The returned Reader must be
// closed when done.
func Open(path string) (*Reader, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &Reader{path: path, file: f, pdf: r}, nil
}

// Close releases the underlying file. It is safe to call multiple times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() (int, error) {
	if r.pdf == nil {
		return 0, fmt.Errorf("reader is closed")
	}
	return r.pdf.NumPage(), nil
}

// Words returns the word-level tokens on the given 1-based page, in
// reading order (top to bottom, left to right within a row).
//
// The underlying parser yields positioned character runs; adjacent runs
// are merged into words here. Malformed page content is reported as an
// error rather than a panic.
func (r *Reader) Words(page int) (words []model.Word, err error) {
	if page < 1 || page > r.pdf.NumPage() {
		return nil, fmt.Errorf("page %d out of range (document has %d pages)", page, r.pdf.NumPage())
	}

	// The ledongthuc parser panics on some malformed content streams.
	defer func() {
		if rec := recover(); rec != nil {
			words = nil
			err = fmt.Errorf("unreadable content on page %d: %v", page, rec)
		}
	}()

	p := r.pdf.Page(page)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page %d is missing from the page tree", page)
	}

	return mergeWords(p.Content().Text), nil
}

// Tables returns the table grids detected on the given 1-based page. A
// page with no detectable grid returns an empty slice, not an error.
func (r *Reader) Tables(page int) ([][][]string, error) {
	words, err := r.Words(page)
	if err != nil {
		return nil, err
	}
	return detectGrids(words), nil
}
