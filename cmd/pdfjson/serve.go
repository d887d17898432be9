package main

import (
	"context"
	"errors"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/netutil"

	"github.com/pdfjson/pdfjson"
	"github.com/pdfjson/pdfjson/config"
	"github.com/pdfjson/pdfjson/model"
	"github.com/pdfjson/pdfjson/ocr"
	"github.com/pdfjson/pdfjson/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP conversion service",
	Long: `Start an HTTP server exposing POST /api/convert-pdf for multipart PDF
uploads and GET /api/health. Configuration comes from environment
variables (PORT, MAX_UPLOAD_MB, ALLOWED_ORIGINS, OCR_ENABLED,
OCR_LANGUAGE, MAX_CONNS), with a .env file as an optional source.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	if cfg.OCREnabled {
		// Probe once at startup so a binary built without OCR support
		// degrades to text-only conversion instead of failing every
		// upload.
		probe, err := ocr.New()
		if err != nil {
			if !errors.Is(err, ocr.ErrOCRNotEnabled) {
				return err
			}
			log.Println("WARN: OCR_ENABLED is set but this binary was built without OCR support; continuing without OCR")
			cfg.OCREnabled = false
		} else {
			probe.Close()
		}
	}

	srv := server.New(cfg, serveConvertFunc(cfg))

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return err
	}
	if cfg.MaxConns > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConns)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// serveConvertFunc builds the per-upload conversion function. A fresh
// OCR client is created per request because a Tesseract handle cannot
// be shared across concurrent conversions.
func serveConvertFunc(cfg *config.Config) server.ConvertFunc {
	return func(path string) (*model.Document, []pdfjson.Warning, error) {
		conv := pdfjson.Open(path)
		if cfg.OCREnabled {
			rec, err := ocr.New()
			if err != nil {
				return nil, nil, err
			}
			defer rec.Close()
			if cfg.OCRLanguage != "" {
				if err := rec.SetLanguage(cfg.OCRLanguage); err != nil {
					return nil, nil, err
				}
			}
			conv = conv.WithOCR(rec)
		}
		return conv.Convert()
	}
}
