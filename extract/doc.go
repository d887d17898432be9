// Package extract converts raw page content into classified fragments.
//
// Each of the three extraction sources has its own adapter:
//
//   - [Words] - native text tokens, classified by pattern
//   - [TableCells] - table grids, always form fields
//   - [Images] - embedded images run through an OCR [Recognizer],
//     filtered by confidence
//
// Adapters perform no I/O beyond reading the supplied structures. A
// failure on one OCR image never aborts the remaining images; failures
// are returned beside the fragments for the caller to report.
package extract
