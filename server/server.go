package server

import (
	"Setlist/playlist"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Strum355/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes bounds a POST /playlist body
const maxBodyBytes = 1 << 20

type Server struct {
	router *mux.Router
	pm     *playlist.PlaylistManager
	srv    *http.Server
}

// New builds the HTTP surface around a playlist manager
func New(addr string, pm *playlist.PlaylistManager) *Server {
	s := &Server{router: mux.NewRouter(), pm: pm}

	s.router.HandleFunc("/healthz", s.health).Methods("GET")
	s.router.HandleFunc("/playlist", s.play).Methods("POST")
	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks until the server stops; a clean Shutdown returns nil
func (s *Server) ListenAndServe() error {
	log.Info("HTTP server listening on " + s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

// play reads one bracketed command line from the body and answers with the
// rendered playlist
func (s *Server) play(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "command list too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.WithError(err).Error("Failed to read request body")
		http.Error(w, "could not read body", http.StatusBadRequest)
		return
	}

	// Only the first line is a command list, same as stdin
	line, _, _ := strings.Cut(string(body), "\n")
	out := s.pm.Play(r.Context(), "http", strings.TrimRight(line, "\r"))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(out + "\n"))
}
