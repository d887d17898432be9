// Package model defines the data entities produced by a conversion.
//
// The central type is [Fragment]: one classified, positioned piece of text
// extracted from a PDF, carrying its semantic [Kind], source page, optional
// bounding box, and a recognition confidence. Fragments are created once by
// a source adapter and are immutable afterwards.
//
// A completed conversion is a [Document]: every fragment grouped twice, by
// page and by kind, plus document-level [Metadata]. The double grouping is
// intentional duplication for query convenience.
//
// # JSON
//
// Document implements json.Marshaler and json.Unmarshaler with a stable key
// order: "page_<n>" keys ascending, then "type_<kind>" keys in Kind
// declaration order, then "metadata". Bounding boxes serialize as a
// four-element array [x0, top, x1, bottom], or null when absent.
package model
