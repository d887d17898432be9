// Package server exposes the conversion pipeline over HTTP: a multipart
// upload endpoint that returns the structured document JSON, and a
// health probe.
package server

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pdfjson/pdfjson"
	"github.com/pdfjson/pdfjson/config"
	"github.com/pdfjson/pdfjson/model"
)

// ConvertFunc runs a conversion over a PDF file on disk. The server
// calls it once per upload; the default implementation is the pdfjson
// pipeline, and tests substitute their own.
type ConvertFunc func(path string) (*model.Document, []pdfjson.Warning, error)

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	convert    ConvertFunc
}

// New builds and wires all routes. When convert is nil the standard
// pipeline is used, honoring the OCR settings in cfg.
func New(cfg *config.Config, convert ConvertFunc) *Server {
	s := &Server{cfg: cfg, convert: convert}
	if s.convert == nil {
		s.convert = func(path string) (*model.Document, []pdfjson.Warning, error) {
			return pdfjson.Open(path).Convert()
		}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(api chi.Router) {
		api.Post("/convert-pdf", s.handleConvert)
		api.Get("/health", s.handleHealth)
	})

	s.httpServer = &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	return s
}

// Handler returns the wired router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Serve runs the HTTP server on the given listener until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	log.Printf("HTTP server listening on %s", ln.Addr())
	if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}
