package postgres

import (
	"database/sql"

	"loginscreen/internal/domain"
)

// AttemptRepo implements repository.AttemptRepository
type AttemptRepo struct {
	db *sql.DB
}

// NewAttemptRepo creates a new attempt repository
func NewAttemptRepo(db *sql.DB) *AttemptRepo {
	return &AttemptRepo{db: db}
}

// SaveAttempt stores one login attempt
func (r *AttemptRepo) SaveAttempt(attempt *domain.Attempt) error {
	query := `
		INSERT INTO login_attempts (id, user_id, email, outcome, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query,
		attempt.ID.String(),
		attempt.UserID,
		attempt.Email,
		string(attempt.Outcome),
		attempt.CreatedAt,
	)
	return err
}

// GetRecentAttempts returns the latest attempts of the user, newest first
func (r *AttemptRepo) GetRecentAttempts(userID int64, limit int) ([]domain.Attempt, error) {
	query := `
		SELECT id, user_id, email, outcome, created_at
		FROM login_attempts
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []domain.Attempt
	for rows.Next() {
		var a domain.Attempt
		var outcome string
		if err := rows.Scan(&a.ID, &a.UserID, &a.Email, &outcome, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Outcome = domain.AttemptOutcome(outcome)
		attempts = append(attempts, a)
	}

	return attempts, rows.Err()
}

// CleanOldAttempts deletes attempts older than specified days
func (r *AttemptRepo) CleanOldAttempts(days int) error {
	query := `
		DELETE FROM login_attempts
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}
