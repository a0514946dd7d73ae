package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeFor(t *testing.T) {
	tests := []struct {
		name     string
		state    ScreenState
		expected AttemptOutcome
	}{
		{
			name:     "success screen",
			state:    ScreenSuccess,
			expected: OutcomeSuccess,
		},
		{
			name:     "error screen",
			state:    ScreenError,
			expected: OutcomeError,
		},
		{
			name:     "idle screen",
			state:    ScreenIdle,
			expected: OutcomeRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OutcomeFor(tt.state))
		})
	}
}

func TestAttempt_DisplayTime(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	specific := time.Date(2024, 6, 15, 9, 30, 0, 0, time.Local)

	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{
			name:     "today",
			at:       now,
			expected: "Today " + now.Format("15:04"),
		},
		{
			name:     "yesterday",
			at:       yesterday,
			expected: "Yesterday " + yesterday.Format("15:04"),
		},
		{
			name:     "specific date",
			at:       specific,
			expected: "15 Jun 2024 09:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempt := Attempt{CreatedAt: tt.at}
			assert.Equal(t, tt.expected, attempt.DisplayTime())
		})
	}
}

func TestNotificationConstructors(t *testing.T) {
	toast := ShowToast("hello")
	assert.Equal(t, NotificationToast, toast.Kind)
	assert.Equal(t, "hello", toast.Message)

	snack := ShowSnackbar("bye")
	assert.Equal(t, NotificationSnackbar, snack.Kind)
	assert.Equal(t, "bye", snack.Message)
}
