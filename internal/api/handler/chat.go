package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/opsvue/performance-coach-api/internal/domain"
	"github.com/opsvue/performance-coach-api/internal/usecases/coaching"
	"github.com/opsvue/performance-coach-api/pkg/apiErrors"
	"github.com/opsvue/performance-coach-api/pkg/log"
)

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

// ChatResponse returns the answer together with the session so the client
// can continue the conversation
type ChatResponse struct {
	SessionID string               `json:"session_id"`
	Answer    string               `json:"answer"`
	Messages  []domain.ChatMessage `json:"messages"`
}

// PostCoachChat answers a free-form question about the team. An empty
// session_id starts a new conversation.
func PostCoachChat(service coaching.Coach) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Malformed request body", nil)
			return
		}

		session, err := service.Chat(r.Context(), req.SessionID, req.Question)
		if err != nil {
			logger.WithFields(log.Fields{
				"session_id": req.SessionID,
				"error":      err.Error(),
			}).Warn("chat: failed to answer question")

			handleCoachError(w, err)
			return
		}

		answer := ""
		if len(session.Messages) > 0 {
			answer = session.Messages[len(session.Messages)-1].Content
		}

		logger.WithFields(log.Fields{
			"session_id": session.ID,
			"messages":   len(session.Messages),
		}).Info("chat: question answered")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ChatResponse{
			SessionID: session.ID,
			Answer:    answer,
			Messages:  session.Messages,
		}); err != nil {
			logger.WithError(err).Error("chat: failed to encode response")
		}
	})
}

// GetCoachChat returns the transcript of one session
func GetCoachChat(service coaching.Coach) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("session_id")

		session, err := service.ChatTranscript(sessionID)
		if err != nil {
			handleCoachError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(session); err != nil {
			logger.WithError(err).Error("chat: failed to encode transcript response")
		}
	})
}

// DeleteCoachChat clears one session
func DeleteCoachChat(service coaching.Coach) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("session_id")

		if err := service.ClearChat(sessionID); err != nil {
			handleCoachError(w, err)
			return
		}

		logger.WithField("session_id", sessionID).Info("chat: session cleared")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"session_id": sessionID, "status": "cleared"}); err != nil {
			logger.WithError(err).Error("chat: failed to encode clear response")
		}
	})
}
