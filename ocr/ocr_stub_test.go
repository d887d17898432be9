//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNewReturnsError(t *testing.T) {
	client, err := New()
	if err == nil {
		t.Error("Expected error from New() when OCR is disabled")
	}
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
	if client != nil {
		t.Error("Expected nil client when OCR is disabled")
	}
}

func TestStubClientMethods(t *testing.T) {
	var client Client

	if _, err := client.RecognizeSpans(nil); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("RecognizeSpans: expected ErrOCRNotEnabled, got: %v", err)
	}
	if _, err := client.RecognizeImage(nil); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("RecognizeImage: expected ErrOCRNotEnabled, got: %v", err)
	}
	if err := client.SetLanguage("eng"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetLanguage: expected ErrOCRNotEnabled, got: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Errorf("Close: expected nil, got: %v", err)
	}
}
