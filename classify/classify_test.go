package classify

import (
	"testing"

	"github.com/pdfjson/pdfjson/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Kind
	}{
		// Headers: all-uppercase and whitespace, length >= 4.
		{"header", "INVOICE", model.KindHeader},
		{"header with spaces", "TERMS AND CONDITIONS", model.KindHeader},
		{"too short for header", "ABC", model.KindPlainText},
		{"mixed case not header", "Invoice", model.KindPlainText},

		// Dates.
		{"slash date", "12/31/2024", model.KindDate},
		{"hyphen date", "1-2-24", model.KindDate},
		{"date with trailing text", "12/31/2024 due", model.KindDate},

		// Emails.
		{"email", "john@x.com", model.KindEmail},
		{"dotted email", "first.last@mail.example.org", model.KindEmail},

		// Phones.
		{"phone with plus", "+1 (555) 123-4567", model.KindPhone},
		{"bare digits", "5551234567", model.KindPhone},
		// Too short for the phone rule; the amount rule picks up the
		// leading digit run instead.
		{"short digit run", "555-1234", model.KindAmount},

		// Amounts.
		{"dollar amount", "$1,234.56", model.KindAmount},
		{"dollar spaced", "$ 500", model.KindAmount},
		{"bare amount", "1,234.56", model.KindAmount},

		// List items.
		{"bullet item", "• first point", model.KindListItem},
		{"dash item", "- second point", model.KindListItem},
		{"star item", "* third point", model.KindListItem},
		{"dash without space", "-inline", model.KindPlainText},

		// Fallbacks.
		{"colon makes form field", "Name: John", model.KindFormField},
		{"amount not at start", "Total: $1,234.56", model.KindFormField},
		{"plain text", "hello world", model.KindPlainText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// Rule order is a contract; these pin the documented precedence.
func TestClassifyRuleOrder(t *testing.T) {
	// An all-caps field label with a trailing colon matches both the
	// header rule and the colon fallback; header is checked first.
	if got := Classify("INVOICE NO:"); got != model.KindHeader {
		t.Errorf("all-caps with colon = %v, want header", got)
	}
	if got := Classify("TOTAL DUE: $50"); got != model.KindHeader {
		t.Errorf("all-caps label = %v, want header", got)
	}

	// Matches both the date rule and the phone rule; date is checked first.
	if got := Classify("12-31-2024 555"); got != model.KindDate {
		t.Errorf("date/phone overlap = %v, want date", got)
	}

	// Ten digits could be read as an amount; the phone rule wins by order.
	if got := Classify("5551234567"); got != model.KindPhone {
		t.Errorf("digit run = %v, want phone", got)
	}
}
