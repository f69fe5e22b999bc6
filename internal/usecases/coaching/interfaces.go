package coaching

import (
	"context"

	"github.com/opsvue/performance-coach-api/internal/domain"
)

// Coach generates manager-facing coaching text from the dataset. All
// generation methods degrade to a readable message when the AI backend is
// unavailable; errors are only returned for unknown resources.
type Coach interface {
	// ColleagueSummary writes a performance summary with strengths, support
	// areas and recommended actions for one colleague
	ColleagueSummary(ctx context.Context, colleagueID string) (string, error)

	// StrugglingAnalysis investigates why a colleague is behind, using their
	// recent months and tenure band peers
	StrugglingAnalysis(ctx context.Context, colleagueID string) (string, error)

	// CoachingPlan writes a four week plan for a focus area. An empty focus
	// area falls back to the colleague's coaching priority.
	CoachingPlan(ctx context.Context, colleagueID, focusArea string) (string, error)

	// TeamAnalysis reviews one team against the industry benchmarks
	TeamAnalysis(ctx context.Context, team string) (string, error)

	// Chat answers a free-form question with the dataset as context and
	// returns the session including the new answer
	Chat(ctx context.Context, sessionID, question string) (*domain.ChatSession, error)

	// ChatTranscript returns a session's messages
	ChatTranscript(sessionID string) (*domain.ChatSession, error)

	// ClearChat removes a session
	ClearChat(sessionID string) error

	// Enabled reports whether live generation is configured
	Enabled() bool
}
