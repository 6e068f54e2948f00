// Package rest exposes the users service over JSON/HTTP.
//
// Routes:
//
//	POST /register           {"fullName","email","password"} -> user id (text/plain)
//	POST /login              {"email","password"}            -> user id (text/plain)
//	GET  /profile/{userId}                                   -> profile (JSON)
//	PUT  /profile/{userId}   optional profile fields          -> profile (JSON)
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/netops/internal/logging"
	"github.com/dmitrijs2005/netops/internal/server/users"
	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	users   *users.Service
	logger  logging.Logger
}

func NewServer(addr string, l logging.Logger, us *users.Service) *Server {
	return &Server{
		address: addr,
		logger:  l.With("module", "rest_server"),
		users:   us,
	}
}

// Handler returns the router with logging applied to every route.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	// userId is matched on the escaped path so ids containing '/' survive.
	r.UseEncodedPath()
	r.Use(s.loggingMiddleware)

	r.HandleFunc("/register", s.register).Methods(http.MethodPost)
	r.HandleFunc("/login", s.login).Methods(http.MethodPost)
	r.HandleFunc("/profile/{userId}", s.getProfile).Methods(http.MethodGet)
	r.HandleFunc("/profile/{userId}", s.updateProfile).Methods(http.MethodPut)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String())

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-stopped
	return nil
}
