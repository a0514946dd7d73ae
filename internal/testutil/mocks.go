package testutil

import (
	"loginscreen/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAttemptRepository is a mock for AttemptRepository
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) SaveAttempt(attempt *domain.Attempt) error {
	args := m.Called(attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetRecentAttempts(userID int64, limit int) ([]domain.Attempt, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attempt), args.Error(1)
}

func (m *MockAttemptRepository) CleanOldAttempts(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// MockAttemptRecorder is a mock for service.AttemptRecorder
type MockAttemptRecorder struct {
	mock.Mock
}

func (m *MockAttemptRecorder) Record(userID int64, email string, outcome domain.AttemptOutcome) {
	m.Called(userID, email, outcome)
}
