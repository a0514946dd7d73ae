package testutil

import (
	"loginscreen/internal/domain"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestAttempt creates a test attempt
func NewTestAttempt(userID int64, email string, outcome domain.AttemptOutcome) *domain.Attempt {
	return &domain.Attempt{
		ID:        uuid.New(),
		UserID:    userID,
		Email:     email,
		Outcome:   outcome,
		CreatedAt: time.Now(),
	}
}

// FixedOutcome returns an outcome picker that always lands on state
func FixedOutcome(state domain.ScreenState) func() domain.ScreenState {
	return func() domain.ScreenState {
		return state
	}
}
