package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pdfjson/pdfjson"
	"github.com/pdfjson/pdfjson/ocr"
)

var (
	convertOut  string
	convertOCR  bool
	convertLang string
	convertJobs int
)

var convertCmd = &cobra.Command{
	Use:   "convert [files or directories]",
	Short: "Convert PDF files to JSON on disk",
	Long: `Convert one or more PDF files to JSON. Directory arguments are
expanded to the *.pdf files they contain (non-recursive). Each input
produces a .json file named after it in the output directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", ".", "output directory for JSON files")
	convertCmd.Flags().BoolVar(&convertOCR, "ocr", false, "run OCR over embedded images (requires a build with the ocr tag)")
	convertCmd.Flags().StringVar(&convertLang, "lang", "eng", "OCR language, '+'-separated for multiple (e.g. eng+fra)")
	convertCmd.Flags().IntVarP(&convertJobs, "jobs", "j", 4, "number of files to convert in parallel")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputs, err := expandInputs(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return errors.New("no PDF files found in the given arguments")
	}

	if convertOCR {
		// Probe once so a binary built without OCR support fails with a
		// clear message instead of once per file.
		probe, err := ocr.New()
		if err != nil {
			if errors.Is(err, ocr.ErrOCRNotEnabled) {
				return errors.New("this binary was built without OCR support; rebuild with -tags ocr")
			}
			return fmt.Errorf("OCR initialization failed: %w", err)
		}
		probe.Close()
	}

	jobs := convertJobs
	if jobs < 1 {
		jobs = 1
	}

	var g errgroup.Group
	g.SetLimit(jobs)
	for _, input := range inputs {
		g.Go(func() error {
			return convertOne(input)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Converted %d file(s) to %s\n", len(inputs), convertOut)
	return nil
}

// convertOne converts a single PDF. Each invocation gets its own OCR
// client because a Tesseract handle cannot be shared across goroutines.
func convertOne(input string) error {
	conv := pdfjson.Open(input)

	if convertOCR {
		rec, err := ocr.New()
		if err != nil {
			return fmt.Errorf("%s: OCR initialization failed: %w", input, err)
		}
		defer rec.Close()
		if convertLang != "" {
			if err := rec.SetLanguage(convertLang); err != nil {
				return fmt.Errorf("%s: set OCR language %q: %w", input, convertLang, err)
			}
		}
		conv = conv.WithOCR(rec)
	}

	outPath := filepath.Join(convertOut, jsonName(input))
	_, warnings, err := conv.ConvertToFile(outPath)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	if len(warnings) > 0 {
		log.Printf("%s:\n%s", input, pdfjson.FormatWarnings(warnings))
	}
	log.Printf("%s -> %s", input, outPath)
	return nil
}

// expandInputs resolves file and directory arguments into a flat list
// of PDF paths. Directories contribute their immediate *.pdf entries.
func expandInputs(args []string) ([]string, error) {
	var inputs []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			inputs = append(inputs, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.pdf"))
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, matches...)
	}
	return inputs, nil
}

func jsonName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}
