// Package classify assigns a semantic kind to extracted text.
//
// Classification applies an ordered list of anchored pattern rules and
// returns the kind of the first rule that matches the start of the text.
// The rule order is a documented contract, not an implementation detail:
// an all-caps field label with a trailing colon is a header, not a form
// field, because the header rule is checked first.
package classify

import (
	"regexp"
	"strings"

	"github.com/pdfjson/pdfjson/model"
)

// rule pairs a kind with its anchored pattern. Rules are evaluated in
// slice order, first match wins.
type rule struct {
	kind    model.Kind
	pattern *regexp.Regexp
}

var rules = []rule{
	// At least 4 leading characters of uppercase and whitespace. Not
	// end-anchored: an all-caps label keeps classifying as a header even
	// with a trailing colon, because this rule runs before the form-field
	// fallback.
	{model.KindHeader, regexp.MustCompile(`^[A-Z\s]{4,}`)},
	// 1-2 digit day and month, 2-4 digit year, "-" or "/" separated.
	{model.KindDate, regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{2,4}`)},
	// local@domain.tld.
	{model.KindEmail, regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+`)},
	// Optional "+", then at least 10 characters of digits, spaces,
	// hyphens, and parentheses.
	{model.KindPhone, regexp.MustCompile(`^\+?[\d\s\-()]{10,}`)},
	// Optional "$", optional thousands separators, optional 2-digit
	// decimal part.
	{model.KindAmount, regexp.MustCompile(`^\$?\s*\d+(?:,\d{3})*(?:\.\d{2})?`)},
	// A bullet glyph followed by whitespace.
	{model.KindListItem, regexp.MustCompile(`^\s*[\x{2022}\-*]\s`)},
}

// Classify returns the semantic kind of a piece of text.
//
// Text that matches no rule falls back to [model.KindFormField] when it
// contains a colon, otherwise [model.KindPlainText]. The input is expected
// to be trimmed and non-empty; callers enforce that before classifying.
func Classify(text string) model.Kind {
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			return r.kind
		}
	}
	if strings.Contains(text, ":") {
		return model.KindFormField
	}
	return model.KindPlainText
}
