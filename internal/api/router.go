package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (s *Server) RegisterRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Post("/api/login", s.login)
	r.Post("/api/logout", s.logout)

	r.Group(func(r chi.Router) {
		r.Use(s.auth.Authenticate)

		r.Get("/api/transactions", s.listTransactions)
		r.Get("/api/transactions/{id}", s.getTransaction)
		r.Put("/api/transactions/{id}", s.updateTransaction)
		r.Delete("/api/transactions/{id}", s.deleteTransaction)

		r.Get("/api/filters", s.getFilterOptions)
		r.Post("/api/export/csv", s.exportCSV)
		r.Get("/api/dashboard/analytics", s.getAnalytics)
	})

	return r
}
