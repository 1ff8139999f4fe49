package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"finboard/internal/auth"
	"finboard/internal/middleware"
	"finboard/internal/models"
	"finboard/internal/store"
)

type Server struct {
	store  store.TransactionStore
	creds  auth.Credentials
	auth   *middleware.Auth
	router *chi.Mux
	logger *zap.Logger
}

func NewServer(txns store.TransactionStore, creds auth.Credentials, authGate *middleware.Auth, logger *zap.Logger) *Server {
	return &Server{
		store:  txns,
		creds:  creds,
		auth:   authGate,
		router: chi.NewRouter(),
		logger: logger,
	}
}

func (s *Server) Start(addr string) error {
	s.router = s.RegisterRoutes()
	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the routed mux, used by tests.
func (s *Server) Handler() http.Handler {
	return s.RegisterRoutes()
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.logger.Info("login attempt", zap.String("email", req.Email))

	if !s.creds.Verify(req.Email, req.Password) {
		s.respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.auth.GenerateToken(req.Email)
	if err != nil {
		s.logger.Error("generating token", zap.Error(err))
		s.respondMessage(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	s.respondJSON(w, http.StatusOK, models.LoginResponse{Token: token})
}

// logout is stateless: the token stays valid until natural expiry.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.respondMessage(w, http.StatusOK, "Logout successful")
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) respondMessage(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"message": message})
}
