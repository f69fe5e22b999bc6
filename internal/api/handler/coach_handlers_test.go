package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/opsvue/performance-coach-api/internal/api/handler/router"
	"github.com/opsvue/performance-coach-api/internal/domain"
	"github.com/opsvue/performance-coach-api/internal/usecases/coaching"
	coachmocks "github.com/opsvue/performance-coach-api/internal/usecases/coaching/mocks"
	"github.com/opsvue/performance-coach-api/pkg/apiErrors"
	"github.com/opsvue/performance-coach-api/pkg/middleware"
)

func newCoachRouter(service coaching.Coach) router.Router {
	return router.New(
		router.WithRoutes(Coaching(service)...),
		router.WithRoutes(CoachChat(service)...),
	)
}

func coachRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	claims := &domain.Claims{UserID: 1, UserRoleID: middleware.RoleSupervisor}
	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

func TestGenerateColleagueSummary(t *testing.T) {
	t.Run("serves the generated summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := coachmocks.NewMockCoach(ctrl)

		service.EXPECT().
			ColleagueSummary(gomock.Any(), "C001").
			Return("Amira is performing above her tenure band targets.", nil)

		rec := httptest.NewRecorder()
		newCoachRouter(service).ServeHTTP(rec, coachRequest(http.MethodPost, "/v1/coaching/colleagues/C001/summary", ""))

		require.Equal(t, http.StatusOK, rec.Code)

		var response CoachingResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "C001", response.ColleagueID)
		assert.Contains(t, response.Content, "Amira")
	})

	t.Run("answers 404 for an unknown colleague", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := coachmocks.NewMockCoach(ctrl)

		service.EXPECT().
			ColleagueSummary(gomock.Any(), "C999").
			Return("", coaching.ErrColleagueNotFound)

		rec := httptest.NewRecorder()
		newCoachRouter(service).ServeHTTP(rec, coachRequest(http.MethodPost, "/v1/coaching/colleagues/C999/summary", ""))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrColleagueNotFound, decodeAPIError(t, rec).Code)
	})
}

func TestGenerateCoachingPlan(t *testing.T) {
	t.Run("forwards the focus area from the body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := coachmocks.NewMockCoach(ctrl)

		service.EXPECT().
			CoachingPlan(gomock.Any(), "C002", "FCR").
			Return("Week 1: shadow a top performer on first contact resolution.", nil)

		rec := httptest.NewRecorder()
		body := `{"focus_area": "FCR"}`
		newCoachRouter(service).ServeHTTP(rec, coachRequest(http.MethodPost, "/v1/coaching/colleagues/C002/plan", body))

		require.Equal(t, http.StatusOK, rec.Code)

		var response CoachingResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "FCR", response.FocusArea)
		assert.Contains(t, response.Content, "Week 1")
	})

	t.Run("accepts an empty body and lets the coach pick the focus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := coachmocks.NewMockCoach(ctrl)

		service.EXPECT().
			CoachingPlan(gomock.Any(), "C002", "").
			Return("Week 1: review call recordings together.", nil)

		rec := httptest.NewRecorder()
		newCoachRouter(service).ServeHTTP(rec, coachRequest(http.MethodPost, "/v1/coaching/colleagues/C002/plan", ""))

		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGenerateTeamAnalysis(t *testing.T) {
	t.Run("requires a team name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := coachmocks.NewMockCoach(ctrl)

		rec := httptest.NewRecorder()
		newCoachRouter(service).ServeHTTP(rec, coachRequest(http.MethodPost, "/v1/coaching/team", `{"team": ""}`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("answers 404 for an unknown team", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := coachmocks.NewMockCoach(ctrl)

		service.EXPECT().
			TeamAnalysis(gomock.Any(), "Retention").
			Return("", coaching.ErrTeamNotFound)

		rec := httptest.NewRecorder()
		newCoachRouter(service).ServeHTTP(rec, coachRequest(http.MethodPost, "/v1/coaching/team", `{"team": "Retention"}`))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrTeamNotFound, decodeAPIError(t, rec).Code)
	})

	t.Run("serves the analysis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := coachmocks.NewMockCoach(ctrl)

		service.EXPECT().
			TeamAnalysis(gomock.Any(), "Billing").
			Return("Billing beats the industry on quality but trails on NPS.", nil)

		rec := httptest.NewRecorder()
		newCoachRouter(service).ServeHTTP(rec, coachRequest(http.MethodPost, "/v1/coaching/team", `{"team": "Billing"}`))

		require.Equal(t, http.StatusOK, rec.Code)

		var response CoachingResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "Billing", response.Team)
	})
}

func TestPostCoachChat(t *testing.T) {
	t.Run("answers and returns the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := coachmocks.NewMockCoach(ctrl)

		now := time.Now().UTC()
		service.EXPECT().
			Chat(gomock.Any(), "", "Who needs the most support?").
			Return(&domain.ChatSession{
				ID: "a1b2c3",
				Messages: []domain.ChatMessage{
					{Role: "user", Content: "Who needs the most support?", CreatedAt: now},
					{Role: "assistant", Content: "Dan Okafor has the lowest score this month.", CreatedAt: now},
				},
			}, nil)

		rec := httptest.NewRecorder()
		body := `{"question": "Who needs the most support?"}`
		newCoachRouter(service).ServeHTTP(rec, coachRequest(http.MethodPost, "/v1/coach/chat", body))

		require.Equal(t, http.StatusOK, rec.Code)

		var response ChatResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "a1b2c3", response.SessionID)
		assert.Contains(t, response.Answer, "Dan Okafor")
		assert.Len(t, response.Messages, 2)
	})

	t.Run("rejects an empty question", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := coachmocks.NewMockCoach(ctrl)

		service.EXPECT().
			Chat(gomock.Any(), "", "").
			Return(nil, coaching.ErrEmptyQuestion)

		rec := httptest.NewRecorder()
		newCoachRouter(service).ServeHTTP(rec, coachRequest(http.MethodPost, "/v1/coach/chat", `{}`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := coachmocks.NewMockCoach(ctrl)

		rec := httptest.NewRecorder()
		newCoachRouter(service).ServeHTTP(rec, coachRequest(http.MethodPost, "/v1/coach/chat", `{"question": `))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})
}

func TestGetCoachChat(t *testing.T) {
	t.Run("serves the transcript", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := coachmocks.NewMockCoach(ctrl)

		service.EXPECT().ChatTranscript("a1b2c3").Return(&domain.ChatSession{
			ID: "a1b2c3",
			Messages: []domain.ChatMessage{
				{Role: "user", Content: "How is Billing doing?"},
			},
		}, nil)

		rec := httptest.NewRecorder()
		newCoachRouter(service).ServeHTTP(rec, coachRequest(http.MethodGet, "/v1/coach/chat/a1b2c3", ""))

		require.Equal(t, http.StatusOK, rec.Code)

		var session domain.ChatSession
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&session))
		assert.Equal(t, "a1b2c3", session.ID)
		assert.Len(t, session.Messages, 1)
	})

	t.Run("answers 404 for an unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := coachmocks.NewMockCoach(ctrl)

		service.EXPECT().ChatTranscript("gone").Return(nil, coaching.ErrSessionNotFound)

		rec := httptest.NewRecorder()
		newCoachRouter(service).ServeHTTP(rec, coachRequest(http.MethodGet, "/v1/coach/chat/gone", ""))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrSessionNotFound, decodeAPIError(t, rec).Code)
	})
}

func TestDeleteCoachChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := coachmocks.NewMockCoach(ctrl)

	service.EXPECT().ClearChat("a1b2c3").Return(nil)

	rec := httptest.NewRecorder()
	newCoachRouter(service).ServeHTTP(rec, coachRequest(http.MethodDelete, "/v1/coach/chat/a1b2c3", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "cleared", response["status"])
}
