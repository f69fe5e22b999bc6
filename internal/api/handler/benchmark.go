package handler

import (
	"encoding/json"
	"net/http"

	"github.com/opsvue/performance-coach-api/internal/usecases/insighting"
	"github.com/opsvue/performance-coach-api/pkg/log"
)

// GetBenchmarks serves the team averages positioned against the industry
// reference table
func GetBenchmarks(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		comparisons, err := service.Benchmarks()
		if err != nil {
			logger.WithError(err).Error("benchmarks: failed to build benchmark comparison")
			handleInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(comparisons); err != nil {
			logger.WithError(err).Error("benchmarks: failed to encode response")
		}
	})
}
