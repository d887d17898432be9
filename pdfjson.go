// Package pdfjson converts PDF documents into a structured, queryable
// JSON model: text classified by semantic role (header, date, email,
// phone, amount, list item, form field, OCR text, plain text), grouped by
// page and by type, annotated with positional and confidence metadata.
//
// Basic usage:
//
//	doc, warnings, err := pdfjson.Open("invoice.pdf").Convert()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfjson.FormatWarnings(warnings))
//	}
//
// With OCR over embedded images (requires building with the "ocr" tag):
//
//	rec, err := ocr.New()
//	if err != nil {
//	    // handle error
//	}
//	defer rec.Close()
//	doc, _, err := pdfjson.Open("scan.pdf").WithOCR(rec).Convert()
//
// For advanced use cases, the lower-level pdfio package is also available.
package pdfjson

import (
	"github.com/pdfjson/pdfjson/model"
)

// Open opens a PDF file and returns a Converter for fluent configuration.
// The returned Converter must be closed when done, either explicitly via
// Close() or implicitly when calling a terminal operation like Convert().
//
// Example:
//
//	doc, warnings, err := pdfjson.Open("document.pdf").Convert()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates a Converter from an already-open content source.
// This is useful when you need more control over the source lifecycle, or
// want to feed the pipeline from something other than a file on disk.
// Note: The caller is responsible for closing the source.
//
// Example:
//
//	r, err := pdfio.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	doc, warnings, err := pdfjson.FromSource(r).Convert()
func FromSource(src Source) *Converter {
	return &Converter{
		source:       src,
		ownsSource:   false,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustConvert is a helper that wraps a call to Convert() and panics if the
// error is non-nil. It discards warnings and returns just the document.
// It is intended for use in scripts or tests where error handling would be
// cumbersome.
//
// Example:
//
//	doc := pdfjson.MustConvert(pdfjson.Open("document.pdf").Convert())
func MustConvert(doc *model.Document, _ []Warning, err error) *model.Document {
	if err != nil {
		panic(err)
	}
	return doc
}
