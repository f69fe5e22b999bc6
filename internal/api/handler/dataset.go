package handler

import (
	"encoding/json"
	"net/http"

	"github.com/opsvue/performance-coach-api/internal/usecases/insighting"
	"github.com/opsvue/performance-coach-api/pkg/log"
)

// GetDatasetStatus reports what the in-memory dataset currently holds
func GetDatasetStatus(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := service.DatasetStatus()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("dataset: failed to encode status response")
		}
	})
}
