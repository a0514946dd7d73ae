package service

import (
	"fmt"
	"time"

	"loginscreen/internal/domain"
	"loginscreen/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultRetentionDays is how long attempts are kept by default
	DefaultRetentionDays = 30

	historyLimit = 5
)

var _ AttemptRecorder = (*AttemptService)(nil)

// AttemptService journals login attempts and prunes old ones
type AttemptService struct {
	attemptRepo   repository.AttemptRepository
	retentionDays int
	logger        *zap.Logger
	now           func() time.Time
}

// NewAttemptService creates a new attempt service
func NewAttemptService(attemptRepo repository.AttemptRepository, retentionDays int, logger *zap.Logger) *AttemptService {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	return &AttemptService{
		attemptRepo:   attemptRepo,
		retentionDays: retentionDays,
		logger:        logger,
		now:           time.Now,
	}
}

// Record saves the outcome of a submit. Failures are logged, never returned:
// the login screen must not depend on the journal.
func (s *AttemptService) Record(userID int64, email string, outcome domain.AttemptOutcome) {
	attempt := &domain.Attempt{
		ID:        uuid.New(),
		UserID:    userID,
		Email:     email,
		Outcome:   outcome,
		CreatedAt: s.now().UTC(),
	}

	if err := s.attemptRepo.SaveAttempt(attempt); err != nil {
		s.logger.Error("Failed to save login attempt",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("attempt_id", attempt.ID.String()),
		)
		return
	}

	s.logger.Debug("Login attempt saved",
		zap.Int64("user_id", userID),
		zap.String("attempt_id", attempt.ID.String()),
		zap.String("outcome", string(outcome)),
	)
}

// History returns the most recent attempts of a user, newest first
func (s *AttemptService) History(userID int64) ([]domain.Attempt, error) {
	attempts, err := s.attemptRepo.GetRecentAttempts(userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempt history: %w", err)
	}
	return attempts, nil
}

// CleanupOldData removes attempts older than the retention window
func (s *AttemptService) CleanupOldData() error {
	s.logger.Info("Starting cleanup of old login attempts", zap.Int("retention_days", s.retentionDays))

	err := s.attemptRepo.CleanOldAttempts(s.retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup old login attempts", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
