package repository

import (
	"loginscreen/internal/domain"
)

// AttemptRepository defines login attempt journal operations
type AttemptRepository interface {
	SaveAttempt(attempt *domain.Attempt) error
	GetRecentAttempts(userID int64, limit int) ([]domain.Attempt, error)
	CleanOldAttempts(days int) error
}
