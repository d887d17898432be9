package pdfjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfjson/pdfjson/aggregate"
	"github.com/pdfjson/pdfjson/extract"
	"github.com/pdfjson/pdfjson/format"
	"github.com/pdfjson/pdfjson/model"
	"github.com/pdfjson/pdfjson/pdfio"
)

// ErrUnsupportedFormat is returned when the input is not a PDF.
var ErrUnsupportedFormat = errors.New("unsupported input format: not a PDF")

// Source supplies parsed content from one open document. It is the
// contract between the conversion pipeline and the PDF-parsing
// collaborator; [pdfio.Reader] is the file-backed implementation.
type Source interface {
	// PageCount returns the number of pages in the document.
	PageCount() (int, error)

	// Words returns the word-level tokens on the given 1-based page.
	Words(page int) ([]model.Word, error)

	// Tables returns the table grids detected on the given 1-based page.
	// A page without a detectable grid returns an empty slice, not an
	// error.
	Tables(page int) ([][][]string, error)

	// Images returns the raw embedded image streams on the given 1-based
	// page.
	Images(page int) ([][]byte, error)
}

// Converter provides a fluent interface for converting a PDF into the
// structured document model. Each configuration method returns a new
// Converter instance, making it safe for concurrent use and allowing
// method chaining.
type Converter struct {
	// Input
	filename string
	source   Source

	// Lifecycle
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool // true if the source has been opened

	// OCR collaborator; nil unless WithOCR was called
	recognizer extract.Recognizer

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename:     c.filename,
		source:       c.source,
		ownsSource:   c.ownsSource,
		sourceOpened: c.sourceOpened,
		recognizer:   c.recognizer,
		options:      c.options.clone(),
		err:          c.err,
	}
}

// ensureSource opens the source if not already open.
func (c *Converter) ensureSource() error {
	if c.sourceOpened {
		return nil
	}
	if c.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	if format.DetectFile(c.filename) != format.PDF {
		return fmt.Errorf("%s: %w", c.filename, ErrUnsupportedFormat)
	}

	r, err := pdfio.Open(c.filename)
	if err != nil {
		return err
	}
	c.source = r
	c.ownsSource = true
	c.sourceOpened = true
	return nil
}

// Close releases resources associated with the Converter.
// It is safe to call Close multiple times.
func (c *Converter) Close() error {
	if !c.ownsSource {
		return nil
	}
	closer, ok := c.source.(interface{ Close() error })
	c.source = nil
	c.ownsSource = false
	if !ok {
		return nil
	}
	return closer.Close()
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Pages specifies which pages to convert (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	doc, _, err := pdfjson.Open("doc.pdf").Pages(1, 3).Convert()
func (c *Converter) Pages(pages ...int) *Converter {
	newConv := c.clone()
	newConv.options.pages = append(newConv.options.pages, pages...)
	return newConv
}

// WithOCR enables the OCR adapter using the given recognizer. Embedded
// images on each converted page are run through the recognizer and the
// resulting spans become ocr_text fragments.
//
// Example:
//
//	rec, err := ocr.New()
//	if err != nil {
//	    // handle error (e.g. binary built without the ocr tag)
//	}
//	defer rec.Close()
//	doc, _, err := pdfjson.Open("scan.pdf").WithOCR(rec).Convert()
func (c *Converter) WithOCR(rec extract.Recognizer) *Converter {
	newConv := c.clone()
	newConv.recognizer = rec
	newConv.options.ocrEnabled = rec != nil
	return newConv
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Convert runs the pipeline and returns the structured document model,
// along with warnings and an error if conversion failed.
//
// Pages are processed in ascending order. On each page the adapters run
// in a fixed sequence: native text, then table grids, then OCR (when
// enabled). All fragments concatenate into one ordered sequence which is
// aggregated exactly once. Warnings indicate non-fatal issues (an OCR
// image that failed); any unrecoverable failure reading the document
// aborts the whole conversion with no partial result.
//
// If the Converter owns its source (created via Open), the source is
// closed before returning.
func (c *Converter) Convert() (*model.Document, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	if err := c.ensureSource(); err != nil {
		return nil, nil, err
	}
	if c.ownsSource {
		defer c.Close()
	}

	pageCount, err := c.source.PageCount()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read page count: %w", err)
	}

	pages, err := selectPages(c.options.pages, pageCount)
	if err != nil {
		return nil, nil, err
	}

	var fragments []model.Fragment
	var warnings []Warning

	for _, page := range pages {
		words, err := c.source.Words(page)
		if err != nil {
			return nil, nil, fmt.Errorf("conversion failed: %w", err)
		}
		fragments = append(fragments, extract.Words(words, page)...)

		grids, err := c.source.Tables(page)
		if err != nil {
			return nil, nil, fmt.Errorf("conversion failed: %w", err)
		}
		for _, grid := range grids {
			fragments = append(fragments, extract.TableCells(grid, page)...)
		}

		if c.options.ocrEnabled {
			images, err := c.source.Images(page)
			if err != nil {
				return nil, nil, fmt.Errorf("conversion failed: %w", err)
			}
			frags, failures := extract.Images(images, c.recognizer, page)
			fragments = append(fragments, frags...)
			for _, failure := range failures {
				warnings = append(warnings, Warning{Page: page, Message: failure.Error()})
			}
		}
	}

	doc, err := aggregate.Build(fragments, c.options.ocrEnabled)
	if err != nil {
		return nil, warnings, err
	}
	return doc, warnings, nil
}

// ConvertToFile runs the pipeline and writes the document model to the
// given path as indented UTF-8 JSON with non-ASCII characters preserved
// unescaped. Parent directories are created as needed. The document is
// also returned.
func (c *Converter) ConvertToFile(outputPath string) (*model.Document, []Warning, error) {
	doc, warnings, err := c.Convert()
	if err != nil {
		return nil, warnings, err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return nil, warnings, fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, warnings, fmt.Errorf("failed to create output file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return nil, warnings, fmt.Errorf("failed to write JSON: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, warnings, fmt.Errorf("failed to write JSON: %w", err)
	}

	return doc, warnings, nil
}

// PageCount returns the number of pages in the document without running
// a conversion.
func (c *Converter) PageCount() (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	if err := c.ensureSource(); err != nil {
		return 0, err
	}
	return c.source.PageCount()
}

// selectPages validates an explicit page selection against the document,
// or returns all pages when the selection is empty. The result is
// ascending with duplicates removed.
func selectPages(selection []int, pageCount int) ([]int, error) {
	if len(selection) == 0 {
		pages := make([]int, pageCount)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages, nil
	}

	seen := make(map[int]bool, len(selection))
	var pages []int
	for _, p := range selection {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (document has %d pages)", p, pageCount)
		}
		if !seen[p] {
			seen[p] = true
			pages = append(pages, p)
		}
	}
	sort.Ints(pages)
	return pages, nil
}
