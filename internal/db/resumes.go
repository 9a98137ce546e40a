package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetResume retrieves a learner's resume. Returns (nil, nil) when none
// has been saved yet.
func (db *DB) GetResume(ctx context.Context, userID uuid.UUID) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, content, created_at, updated_at
		 FROM resumes WHERE user_id = $1`,
		userID,
	).Scan(&r.ID, &r.UserID, &r.Content, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &r, nil
}

// UpsertResume saves a learner's resume content, replacing any previous
// version. One resume per learner.
func (db *DB) UpsertResume(ctx context.Context, userID uuid.UUID, content string) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, content)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET
		     content = $2,
		     updated_at = NOW()
		 RETURNING id, user_id, content, created_at, updated_at`,
		userID, content,
	).Scan(&r.ID, &r.UserID, &r.Content, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert resume: %w", err)
	}
	return &r, nil
}
