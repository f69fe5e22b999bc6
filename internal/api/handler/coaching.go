package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/opsvue/performance-coach-api/internal/usecases/coaching"
	"github.com/opsvue/performance-coach-api/pkg/apiErrors"
	"github.com/opsvue/performance-coach-api/pkg/log"
)

type CoachingPlanRequest struct {
	FocusArea string `json:"focus_area"`
}

type TeamAnalysisRequest struct {
	Team string `json:"team"`
}

// CoachingResponse wraps one generated coaching text
type CoachingResponse struct {
	ColleagueID string `json:"colleague_id,omitempty"`
	Team        string `json:"team,omitempty"`
	FocusArea   string `json:"focus_area,omitempty"`
	Content     string `json:"content"`
}

// GenerateColleagueSummary writes an AI performance summary for one colleague
func GenerateColleagueSummary(service coaching.Coach) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("colleague_id", id).Info("coaching: generating colleague summary")

		content, err := service.ColleagueSummary(r.Context(), id)
		if err != nil {
			logger.WithFields(log.Fields{
				"colleague_id": id,
				"error":        err.Error(),
			}).Warn("coaching: failed to generate colleague summary")

			handleCoachError(w, err)
			return
		}

		writeCoachingResponse(w, logger, CoachingResponse{ColleagueID: id, Content: content})
	})
}

// GenerateStrugglingAnalysis writes an AI analysis of why a colleague is behind
func GenerateStrugglingAnalysis(service coaching.Coach) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("colleague_id", id).Info("coaching: generating struggling analysis")

		content, err := service.StrugglingAnalysis(r.Context(), id)
		if err != nil {
			logger.WithFields(log.Fields{
				"colleague_id": id,
				"error":        err.Error(),
			}).Warn("coaching: failed to generate struggling analysis")

			handleCoachError(w, err)
			return
		}

		writeCoachingResponse(w, logger, CoachingResponse{ColleagueID: id, Content: content})
	})
}

// GenerateCoachingPlan writes a four week plan. The focus area comes from the
// request body and falls back to the colleague's coaching priority.
func GenerateCoachingPlan(service coaching.Coach) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req CoachingPlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Malformed request body", nil)
			return
		}

		logger.WithFields(log.Fields{
			"colleague_id": id,
			"focus_area":   req.FocusArea,
		}).Info("coaching: generating coaching plan")

		content, err := service.CoachingPlan(r.Context(), id, req.FocusArea)
		if err != nil {
			logger.WithFields(log.Fields{
				"colleague_id": id,
				"error":        err.Error(),
			}).Warn("coaching: failed to generate coaching plan")

			handleCoachError(w, err)
			return
		}

		writeCoachingResponse(w, logger, CoachingResponse{
			ColleagueID: id,
			FocusArea:   req.FocusArea,
			Content:     content,
		})
	})
}

// GenerateTeamAnalysis writes an AI review of one team against the industry
// benchmarks
func GenerateTeamAnalysis(service coaching.Coach) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req TeamAnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Malformed request body", nil)
			return
		}

		if req.Team == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "team is required", nil)
			return
		}

		logger.WithField("team", req.Team).Info("coaching: generating team analysis")

		content, err := service.TeamAnalysis(r.Context(), req.Team)
		if err != nil {
			logger.WithFields(log.Fields{
				"team":  req.Team,
				"error": err.Error(),
			}).Warn("coaching: failed to generate team analysis")

			handleCoachError(w, err)
			return
		}

		writeCoachingResponse(w, logger, CoachingResponse{Team: req.Team, Content: content})
	})
}

func writeCoachingResponse(w http.ResponseWriter, logger log.Logger, response CoachingResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.WithError(err).Error("coaching: failed to encode response")
	}
}

// handleCoachError maps the coaching errors onto the API error codes
func handleCoachError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, coaching.ErrColleagueNotFound):
		apiErrors.WriteError(w, apiErrors.ErrColleagueNotFound, "Colleague not found in the current dataset", nil)

	case errors.Is(err, coaching.ErrTeamNotFound):
		apiErrors.WriteError(w, apiErrors.ErrTeamNotFound, "Team not found in the current dataset", nil)

	case errors.Is(err, coaching.ErrSessionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Chat session not found", nil)

	case errors.Is(err, coaching.ErrEmptyQuestion):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "question must not be empty", nil)

	case errors.Is(err, coaching.ErrNoData):
		apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "No dataset loaded", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
	}
}
