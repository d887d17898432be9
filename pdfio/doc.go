// Package pdfio supplies parsed PDF content to the conversion pipeline.
//
// It implements the document-handle contract the converter consumes:
// opening a file, enumerating pages, and yielding per-page word tokens,
// detected table grids, and raw embedded image streams.
//
// Text positions come from the ledongthuc/pdf reader, which exposes
// positioned character runs; [Reader.Words] merges runs into word-level
// tokens by row grouping and gap analysis. Table grids are inferred from
// column-aligned word rows. Embedded images are pulled through pdfcpu,
// which decodes the underlying stream filters.
package pdfio
