package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"finboard/internal/export"
)

func (s *Server) exportCSV(w http.ResponseWriter, r *http.Request) {
	var req export.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Columns) == 0 {
		req.Columns = export.DefaultColumns
	}

	match, err := req.Filters.Compile()
	if err != nil {
		s.respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	txns, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("fetching export dataset", zap.Error(err))
		s.respondMessage(w, http.StatusInternalServerError, "Failed to generate CSV export")
		return
	}

	rows := export.RowsFromTransactions(export.Apply(txns, match))
	content := export.Render(rows, req.Columns)

	filename := fmt.Sprintf("transactions_%d.csv", time.Now().UnixMilli())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(content)); err != nil {
		s.logger.Error("writing CSV response", zap.Error(err))
	}
}
