package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"finboard/internal/store"
	"finboard/internal/utils"
)

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("fetching transactions", zap.Error(err))
		s.respondMessage(w, http.StatusInternalServerError, "Failed to fetch transactions from DB")
		return
	}

	s.logger.Info("fetched transactions", zap.Int("count", len(txns)))
	s.respondJSON(w, http.StatusOK, txns)
}

func (s *Server) getTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetTransactionIDFromPath(r)
	if err != nil {
		s.respondMessage(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	txn, err := s.store.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.respondMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		s.logger.Error("fetching transaction", zap.Int64("id", id), zap.Error(err))
		s.respondMessage(w, http.StatusInternalServerError, "Failed to fetch transaction")
		return
	}

	s.respondJSON(w, http.StatusOK, txn)
}

func (s *Server) updateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetTransactionIDFromPath(r)
	if err != nil {
		s.respondMessage(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		s.respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	txn, err := s.store.UpdateByID(r.Context(), id, fields)
	if errors.Is(err, store.ErrNotFound) {
		s.respondMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		s.logger.Error("updating transaction", zap.Int64("id", id), zap.Error(err))
		s.respondMessage(w, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	s.respondJSON(w, http.StatusOK, txn)
}

func (s *Server) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := utils.GetTransactionIDFromPath(r)
	if err != nil {
		s.respondMessage(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	err = s.store.DeleteByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.respondMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		s.logger.Error("deleting transaction", zap.Int64("id", id), zap.Error(err))
		s.respondMessage(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	s.respondMessage(w, http.StatusOK, "Transaction deleted successfully")
}

// getFilterOptions returns the distinct values used to populate the
// dashboard's filter dropdowns, each list sorted ascending.
func (s *Server) getFilterOptions(w http.ResponseWriter, r *http.Request) {
	var options struct {
		Categories []string `json:"categories"`
		Statuses   []string `json:"statuses"`
		Users      []string `json:"users"`
	}

	fields := []struct {
		name string
		dest *[]string
	}{
		{"category", &options.Categories},
		{"status", &options.Statuses},
		{"user", &options.Users},
	}

	for _, f := range fields {
		values, err := s.store.Distinct(r.Context(), f.name)
		if err != nil {
			s.logger.Error("fetching filter options", zap.String("field", f.name), zap.Error(err))
			s.respondMessage(w, http.StatusInternalServerError, "Failed to fetch filter options")
			return
		}
		*f.dest = values
	}

	s.respondJSON(w, http.StatusOK, options)
}
