package handler

import (
	"encoding/json"
	"net/http"

	"github.com/opsvue/performance-coach-api/internal/usecases/insighting"
	"github.com/opsvue/performance-coach-api/pkg/apiErrors"
	"github.com/opsvue/performance-coach-api/pkg/log"
)

// GetTrends serves the monthly mean of a metric, grouped overall, by team
// or by tenure band
func GetTrends(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		metric := query.Get("metric")
		if metric == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "metric query parameter is required", nil)
			return
		}

		months, ok := monthsParam(w, r)
		if !ok {
			return
		}

		report, err := service.Trends(metric, query.Get("group"), months)
		if err != nil {
			logger.WithFields(log.Fields{
				"metric": metric,
				"group":  query.Get("group"),
				"error":  err.Error(),
			}).Warn("trends: failed to build trend report")

			handleInsightError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"metric": report.Metric,
			"group":  report.Group,
			"series": len(report.Series),
		}).Debug("trends: trend report served")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("trends: failed to encode trend response")
		}
	})
}

// GetMovers serves the biggest month-over-month movements of a metric
func GetMovers(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metric := r.URL.Query().Get("metric")
		if metric == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "metric query parameter is required", nil)
			return
		}

		report, err := service.Movers(metric)
		if err != nil {
			logger.WithFields(log.Fields{
				"metric": metric,
				"error":  err.Error(),
			}).Warn("trends: failed to build movers report")

			handleInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("trends: failed to encode movers response")
		}
	})
}
