// Command pdfjson converts PDF documents into structured JSON, either
// one-shot from the command line or as an HTTP service.
package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "pdfjson",
	Short: "Convert PDF documents into structured JSON",
	Long: `pdfjson extracts text, tables and (optionally) OCR output from PDF
documents and produces a JSON model with fragments classified by
semantic type, grouped by page and by type.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(serveCmd)
}
