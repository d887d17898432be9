package pdfjson

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal condition encountered during conversion,
// such as a single OCR image that failed to decode. Warnings never abort
// a conversion; they are returned beside the result for the caller to
// report.
type Warning struct {
	// Page is the 1-based page the warning relates to, or 0 when it
	// applies to the whole document.
	Page int

	// Message describes what went wrong.
	Message string
}

// String renders the warning for display.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single display string, one per
// line. It returns the empty string for an empty slice.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
