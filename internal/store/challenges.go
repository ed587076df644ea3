package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"codequiz/internal/challenge"
)

const challengeColumns = `CAST(challenge_id AS VARCHAR), difficulty, created_by, title, options, correct_answer_id, explanation, date_created`

// InsertChallenge stores a challenge and returns it with its assigned id and
// creation time. Options are stored in the JSON-encoded textual form.
func (s *Store) InsertChallenge(ctx context.Context, c challenge.Challenge) (challenge.Challenge, error) {
	encoded, err := c.Options.Encode()
	if err != nil {
		return challenge.Challenge{}, err
	}
	c.ID = uuid.NewString()
	c.CreatedAt = s.now().UTC()
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO challenges (
		  challenge_id, difficulty, created_by, title, options, correct_answer_id, explanation, date_created
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.Difficulty,
		c.CreatedBy,
		c.Title,
		encoded,
		c.CorrectAnswerID,
		c.Explanation,
		c.CreatedAt,
	); err != nil {
		return challenge.Challenge{}, fmt.Errorf("insert challenge: %w", err)
	}
	return c, nil
}

// GetChallenge fetches one challenge by id.
func (s *Store) GetChallenge(ctx context.Context, id string) (challenge.Challenge, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+challengeColumns+` FROM challenges WHERE challenge_id = ?`,
		id,
	)
	return scanChallenge(row)
}

// LatestChallenge fetches the most recently created challenge, optionally
// restricted to a creator.
func (s *Store) LatestChallenge(ctx context.Context, createdBy string) (challenge.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges`
	args := []interface{}{}
	if createdBy != "" {
		query += ` WHERE created_by = ?`
		args = append(args, createdBy)
	}
	query += ` ORDER BY date_created DESC LIMIT 1`
	row := s.db.QueryRowContext(ctx, query, args...)
	return scanChallenge(row)
}

// ListChallenges returns a creator's challenges, newest first.
func (s *Store) ListChallenges(ctx context.Context, createdBy string) ([]challenge.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges`
	args := []interface{}{}
	if createdBy != "" {
		query += ` WHERE created_by = ?`
		args = append(args, createdBy)
	}
	query += ` ORDER BY date_created DESC`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var challenges []challenge.Challenge
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}
	return challenges, nil
}

// CountChallenges returns how many challenges a creator has archived.
func (s *Store) CountChallenges(ctx context.Context, createdBy string) (int, error) {
	var count int
	if err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM challenges WHERE created_by = ?`,
		createdBy,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count challenges: %w", err)
	}
	return count, nil
}

// DeleteChallenge removes a challenge, but only for its creator.
func (s *Store) DeleteChallenge(ctx context.Context, id, createdBy string) error {
	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM challenges WHERE challenge_id = ? AND created_by = ?`,
		id,
		createdBy,
	)
	if err != nil {
		return fmt.Errorf("delete challenge: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete challenge: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// rowScanner covers both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanChallenge reads one challenge row, decoding the stored options form.
func scanChallenge(row rowScanner) (challenge.Challenge, error) {
	var c challenge.Challenge
	var encoded string
	err := row.Scan(
		&c.ID,
		&c.Difficulty,
		&c.CreatedBy,
		&c.Title,
		&encoded,
		&c.CorrectAnswerID,
		&c.Explanation,
		&c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return challenge.Challenge{}, ErrNotFound
	}
	if err != nil {
		return challenge.Challenge{}, fmt.Errorf("scan challenge: %w", err)
	}
	options, err := challenge.DecodeOptions(encoded)
	if err != nil {
		return challenge.Challenge{}, err
	}
	c.Options = options
	return c, nil
}
