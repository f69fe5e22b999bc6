package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/opsvue/performance-coach-api/internal/usecases/insighting"
	"github.com/opsvue/performance-coach-api/pkg/apiErrors"
	"github.com/opsvue/performance-coach-api/pkg/log"
)

// GetOverview serves the landing dashboard aggregates of the latest month
func GetOverview(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		overview, err := service.Overview()
		if err != nil {
			logger.WithError(err).Error("overview: failed to build team overview")
			handleInsightError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"month":     overview.Month,
			"headcount": overview.Headcount,
		}).Info("overview: team overview served")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overview); err != nil {
			logger.WithError(err).Error("overview: failed to encode response")
		}
	})
}

// GetOverviewHistory serves the persisted monthly team snapshots
func GetOverviewHistory(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		months, ok := monthsParam(w, r)
		if !ok {
			return
		}

		history, err := service.OverviewHistory(months)
		if err != nil {
			logger.WithError(err).Error("overview: failed to load snapshot history")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to load overview history", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(history); err != nil {
			logger.WithError(err).Error("overview: failed to encode history response")
		}
	})
}

// monthsParam reads the optional months query parameter. Zero means no limit.
func monthsParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("months")
	if raw == "" {
		return 0, true
	}

	months, err := strconv.Atoi(raw)
	if err != nil || months < 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "months must be a non-negative integer", map[string]any{
			"months": raw,
		})
		return 0, false
	}

	return months, true
}

// handleInsightError maps the insighting errors onto the API error codes
func handleInsightError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, insighting.ErrColleagueNotFound):
		apiErrors.WriteError(w, apiErrors.ErrColleagueNotFound, "Colleague not found in the current dataset", nil)

	case errors.Is(err, insighting.ErrUnknownMetric):
		apiErrors.WriteError(w, apiErrors.ErrMetricNotFound, "Unknown metric name", nil)

	case errors.Is(err, insighting.ErrUnknownGroup):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "group must be overall, team or tenure_band", nil)

	case errors.Is(err, insighting.ErrNoData):
		apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "No dataset loaded", nil)

	case errors.Is(err, insighting.ErrNotEnoughMonths):
		apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "At least two months of data are required", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
	}
}
