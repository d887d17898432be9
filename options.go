package pdfjson

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// Page selection (1-indexed in API, stored as-is); nil means all pages
	pages []int

	// Whether the OCR adapter runs over embedded images
	ocrEnabled bool
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		pages:      nil,
		ocrEnabled: false,
	}
}

// clone creates a deep copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	newOpts := ConvertOptions{
		ocrEnabled: o.ocrEnabled,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
