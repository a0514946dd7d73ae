package domain

import (
	"time"

	"github.com/google/uuid"
)

// AttemptOutcome is the recorded result of a submit
type AttemptOutcome string

const (
	OutcomeSuccess  AttemptOutcome = "success"
	OutcomeError    AttemptOutcome = "error"
	OutcomeRejected AttemptOutcome = "rejected"
)

// Attempt is one journaled submit. The password is never stored.
type Attempt struct {
	ID        uuid.UUID
	UserID    int64
	Email     string
	Outcome   AttemptOutcome
	CreatedAt time.Time
}

// OutcomeFor maps a terminal screen state to its recorded outcome
func OutcomeFor(state ScreenState) AttemptOutcome {
	switch state {
	case ScreenSuccess:
		return OutcomeSuccess
	case ScreenError:
		return OutcomeError
	default:
		return OutcomeRejected
	}
}

// DisplayTime returns user-friendly time of the attempt
func (a Attempt) DisplayTime() string {
	now := time.Now()
	at := a.CreatedAt.In(now.Location())

	// Check if today
	if at.Year() == now.Year() && at.YearDay() == now.YearDay() {
		return "Today " + at.Format("15:04")
	}

	// Check if yesterday
	yesterday := now.AddDate(0, 0, -1)
	if at.Year() == yesterday.Year() && at.YearDay() == yesterday.YearDay() {
		return "Yesterday " + at.Format("15:04")
	}

	return at.Format("2 Jan 2006 15:04")
}
