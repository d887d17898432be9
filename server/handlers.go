package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfjson/pdfjson"
)

// processingErrorMessage is deliberately generic. The real cause is
// logged server-side; clients only learn that their file could not be
// processed.
const processingErrorMessage = "An error occurred while processing the PDF. Please ensure the file is a valid PDF document."

// handleConvert accepts a multipart upload under the "file" field,
// spools it to a temp file, runs the conversion and returns the
// document JSON.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes())

	file, header, err := r.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			httpError(w, http.StatusRequestEntityTooLarge, "file exceeds the upload size limit")
			return
		}
		httpError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	if !acceptableUpload(header.Header.Get("Content-Type"), header.Filename) {
		httpError(w, http.StatusBadRequest, "only PDF files are accepted")
		return
	}

	tmp, err := os.CreateTemp("", "pdfjson-upload-*.pdf")
	if err != nil {
		log.Printf("convert: temp file: %v", err)
		httpError(w, http.StatusInternalServerError, processingErrorMessage)
		return
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		if isTooLarge(err) {
			httpError(w, http.StatusRequestEntityTooLarge, "file exceeds the upload size limit")
			return
		}
		log.Printf("convert: spool upload %q: %v", header.Filename, err)
		httpError(w, http.StatusInternalServerError, processingErrorMessage)
		return
	}

	doc, warnings, err := s.convert(tmp.Name())
	if err != nil {
		log.Printf("convert: %q: %v", header.Filename, err)
		httpError(w, http.StatusInternalServerError, processingErrorMessage)
		return
	}
	if len(warnings) > 0 {
		log.Printf("convert: %q warnings:\n%s", header.Filename, pdfjson.FormatWarnings(warnings))
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		log.Printf("convert: write response: %v", err)
	}
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

// acceptableUpload checks the declared part content type, falling back
// to the filename extension when the client sent none.
func acceptableUpload(contentType, filename string) bool {
	switch contentType {
	case "application/pdf", "application/x-pdf":
		return true
	case "", "application/octet-stream":
		return filepath.Ext(filename) == ".pdf"
	}
	return false
}

// isTooLarge reports whether err came from the MaxBytesReader cap. The
// multipart parser does not always preserve the typed error, so the
// message is checked as a fallback.
func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}

func httpError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
