// Package format provides input format detection for the pdfjson library.
package format

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
)

// pdfMagic is the signature every PDF file starts with.
var pdfMagic = []byte("%PDF-")

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	if strings.ToLower(filepath.Ext(filename)) == ".pdf" {
		return PDF
	}
	return Unknown
}

// DetectBytes determines format from leading file content.
func DetectBytes(data []byte) Format {
	if bytes.HasPrefix(data, pdfMagic) {
		return PDF
	}
	return Unknown
}

// DetectFile determines format by sniffing the file's leading bytes,
// falling back to the extension if the file cannot be read.
func DetectFile(filename string) Format {
	f, err := os.Open(filename)
	if err != nil {
		return Detect(filename)
	}
	defer f.Close()

	header := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		return Unknown
	}
	return DetectBytes(header)
}
