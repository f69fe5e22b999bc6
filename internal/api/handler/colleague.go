package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/opsvue/performance-coach-api/internal/domain"
	"github.com/opsvue/performance-coach-api/internal/usecases/insighting"
	"github.com/opsvue/performance-coach-api/pkg/apiErrors"
	"github.com/opsvue/performance-coach-api/pkg/log"
)

// Sort orders the explorer accepts; anything else is a client error
var validSorts = map[string]bool{
	"":                      true,
	insighting.SortByScore:  true,
	insighting.SortByName:   true,
	insighting.SortByTenure: true,
}

// ListColleagues serves the explorer cards, filtered and sorted by query
func ListColleagues(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		filters := &domain.ColleagueFilters{
			Team:       query.Get("team"),
			TenureBand: query.Get("tenure_band"),
			Status:     query.Get("status"),
			Sort:       query.Get("sort"),
		}

		if !validSorts[filters.Sort] {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "sort must be score, name or tenure", map[string]any{
				"sort": filters.Sort,
			})
			return
		}

		colleagues, err := service.ListColleagues(filters)
		if err != nil {
			logger.WithError(err).Error("colleagues: failed to list colleagues")
			handleInsightError(w, err)
			return
		}

		logger.WithField("count", len(colleagues)).Debug("colleagues: explorer listing served")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(colleagues); err != nil {
			logger.WithError(err).Error("colleagues: failed to encode listing response")
		}
	})
}

// GetColleague serves the full individual view of one colleague
func GetColleague(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		detail, err := service.ColleagueByID(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"colleague_id": id,
				"error":        err.Error(),
			}).Warn("colleagues: failed to build colleague detail")

			handleInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(detail); err != nil {
			logger.WithError(err).Error("colleagues: failed to encode detail response")
		}
	})
}

// GetColleagueMetrics serves a colleague's monthly history, newest first
func GetColleagueMetrics(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		months, ok := monthsParam(w, r)
		if !ok {
			return
		}

		history, err := service.MetricHistory(id, months)
		if err != nil {
			logger.WithFields(log.Fields{
				"colleague_id": id,
				"error":        err.Error(),
			}).Warn("colleagues: failed to load metric history")

			handleInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(history); err != nil {
			logger.WithError(err).Error("colleagues: failed to encode history response")
		}
	})
}

// GetStruggling serves the colleagues whose status asks for support,
// lowest score first
func GetStruggling(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		colleagues, err := service.Struggling()
		if err != nil {
			logger.WithError(err).Error("colleagues: failed to list struggling colleagues")
			handleInsightError(w, err)
			return
		}

		logger.WithField("count", len(colleagues)).Info("colleagues: struggling listing served")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(colleagues); err != nil {
			logger.WithError(err).Error("colleagues: failed to encode struggling response")
		}
	})
}
