package api

import (
	"net/http"

	"go.uber.org/zap"

	"finboard/internal/report"
)

// getAnalytics folds the full current dataset into revenue/expense
// totals, breakdowns and monthly trends. The reduction runs in memory,
// which holds up only while the collection stays small.
func (s *Server) getAnalytics(w http.ResponseWriter, r *http.Request) {
	txns, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("fetching analytics dataset", zap.Error(err))
		s.respondMessage(w, http.StatusInternalServerError, "Failed to fetch analytics data")
		return
	}

	s.respondJSON(w, http.StatusOK, report.Build(txns))
}
