package service

import (
	"fmt"
	"testing"
	"time"

	"loginscreen/internal/domain"
	"loginscreen/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAttemptService_Record(t *testing.T) {
	tests := []struct {
		name      string
		outcome   domain.AttemptOutcome
		mockError error
	}{
		{
			name:      "saved",
			outcome:   domain.OutcomeSuccess,
			mockError: nil,
		},
		{
			name:      "database error is swallowed",
			outcome:   domain.OutcomeError,
			mockError: fmt.Errorf("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixed := time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC)

			mockRepo := new(testutil.MockAttemptRepository)
			mockRepo.On("SaveAttempt", mock.MatchedBy(func(a *domain.Attempt) bool {
				return a.UserID == 123 &&
					a.Email == "a@b.com" &&
					a.Outcome == tt.outcome &&
					a.CreatedAt.Equal(fixed) &&
					a.ID.String() != "00000000-0000-0000-0000-000000000000"
			})).Return(tt.mockError)

			service := NewAttemptService(mockRepo, 0, testutil.NewTestLogger())
			service.now = func() time.Time { return fixed }

			service.Record(123, "a@b.com", tt.outcome)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAttemptService_RecordAssignsUniqueIDs(t *testing.T) {
	var ids []string

	mockRepo := new(testutil.MockAttemptRepository)
	mockRepo.On("SaveAttempt", mock.AnythingOfType("*domain.Attempt")).
		Run(func(args mock.Arguments) {
			ids = append(ids, args.Get(0).(*domain.Attempt).ID.String())
		}).
		Return(nil)

	service := NewAttemptService(mockRepo, 0, testutil.NewTestLogger())
	service.Record(1, "a@b.com", domain.OutcomeRejected)
	service.Record(1, "a@b.com", domain.OutcomeRejected)

	assert.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestAttemptService_History(t *testing.T) {
	attempts := []domain.Attempt{
		*testutil.NewTestAttempt(123, "a@b.com", domain.OutcomeSuccess),
		*testutil.NewTestAttempt(123, "a@b.com", domain.OutcomeError),
	}

	tests := []struct {
		name          string
		mockReturn    []domain.Attempt
		mockError     error
		expectedError bool
	}{
		{
			name:          "attempts found",
			mockReturn:    attempts,
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "no attempts",
			mockReturn:    []domain.Attempt{},
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "database error",
			mockReturn:    nil,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockAttemptRepository)
			mockRepo.On("GetRecentAttempts", int64(123), 5).Return(tt.mockReturn, tt.mockError)

			service := NewAttemptService(mockRepo, 0, testutil.NewTestLogger())

			result, err := service.History(123)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockReturn, result)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAttemptService_CleanupOldData(t *testing.T) {
	tests := []struct {
		name          string
		retentionDays int
		expectedDays  int
		mockError     error
		expectedError bool
	}{
		{
			name:          "successful cleanup with default retention",
			retentionDays: 0,
			expectedDays:  30,
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "custom retention",
			retentionDays: 7,
			expectedDays:  7,
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "database error",
			retentionDays: 30,
			expectedDays:  30,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockAttemptRepository)
			mockRepo.On("CleanOldAttempts", tt.expectedDays).Return(tt.mockError)

			service := NewAttemptService(mockRepo, tt.retentionDays, testutil.NewTestLogger())

			err := service.CleanupOldData()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
