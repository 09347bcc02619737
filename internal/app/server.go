// internal/app/server.go
package app

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jvalero/roleq/internal/queue"
)

// Server exposes the interactions webhook. Discord signs every request
// with the app's Ed25519 key; anything that fails verification is dropped
// with a 401 before it reaches the router.
type Server struct {
	router *Router
	key    ed25519.PublicKey
	srv    *http.Server
	lis    net.Listener
}

func NewServer(router *Router, key ed25519.PublicKey) *Server {
	mux := http.NewServeMux()
	s := &Server{router: router, key: key, srv: &http.Server{Handler: mux}}
	mux.HandleFunc("/interactions", s.handleInteractions)
	mux.HandleFunc("/healthz", s.handleHealth)
	return s
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	log.Printf("listening on %s", l.Addr())

	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleInteractions(w http.ResponseWriter, r *http.Request) {
	// a bad interaction must never take the process down
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic handling interaction: %v", rec)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
	}()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !discordgo.VerifyInteraction(r, s.key) {
		writeError(w, http.StatusUnauthorized, "invalid request signature")
		return
	}

	var i discordgo.Interaction
	if err := json.NewDecoder(r.Body).Decode(&i); err != nil {
		writeError(w, http.StatusBadRequest, "malformed interaction payload")
		return
	}

	resp, err := s.router.Handle(r.Context(), &i)
	if err != nil {
		status := http.StatusInternalServerError
		msg := "internal error"
		switch {
		case errors.Is(err, ErrUnknownCommand),
			errors.Is(err, ErrUnknownType),
			errors.Is(err, queue.ErrBadCustomID),
			errors.Is(err, queue.ErrBadAction),
			errors.Is(err, queue.ErrExists):
			status = http.StatusBadRequest
			msg = err.Error()
		}
		log.Printf("interaction %s rejected: %v", i.ID, err)
		writeError(w, status, msg)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
