package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-coach/internal/types"
)

// ProfileUpdateInput carries the fields a learner can set during onboarding.
type ProfileUpdateInput struct {
	UserID         uuid.UUID
	Industry       string
	Specialization string
	Bio            string
	Experience     int
	Skills         []string

	// Insight is set when the industry has no cached insight yet; it is
	// persisted in the same transaction as the profile so a learner never
	// lands on an industry without insight data.
	Insight *types.IndustryInsight
}

// GetProfile retrieves a learner's profile. Returns (nil, nil) when the
// learner has not completed onboarding.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	var p Profile
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, industry, specialization, bio, experience, skills, created_at, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.ID, &p.UserID, &p.Industry, &p.Specialization, &p.Bio, &p.Experience, &p.Skills, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// UpsertProfileWithInsight writes the learner's profile and, when the input
// carries a freshly generated insight, persists that insight in the same
// transaction. Either both rows commit or neither does.
func (db *DB) UpsertProfileWithInsight(ctx context.Context, input *ProfileUpdateInput) (*Profile, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if input.Insight != nil {
		salaryJSON, err := json.Marshal(input.Insight.SalaryRanges)
		if err != nil {
			return nil, fmt.Errorf("failed to encode salary ranges: %w", err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO industry_insights
			     (industry, salary_ranges, growth_rate, demand_level, top_skills,
			      market_outlook, key_trends, recommended_skills, last_updated, next_update)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW() + INTERVAL '7 days')
			 ON CONFLICT (industry) DO UPDATE SET
			     salary_ranges = $2,
			     growth_rate = $3,
			     demand_level = $4,
			     top_skills = $5,
			     market_outlook = $6,
			     key_trends = $7,
			     recommended_skills = $8,
			     last_updated = NOW(),
			     next_update = NOW() + INTERVAL '7 days'`,
			input.Industry, salaryJSON, input.Insight.GrowthRate, input.Insight.DemandLevel,
			StringArray(input.Insight.TopSkills), input.Insight.MarketOutlook,
			StringArray(input.Insight.KeyTrends), StringArray(input.Insight.RecommendedSkills),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert insight: %w", err)
		}
	}

	var p Profile
	err = tx.QueryRow(ctx,
		`INSERT INTO profiles (user_id, industry, specialization, bio, experience, skills)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id) DO UPDATE SET
		     industry = $2,
		     specialization = $3,
		     bio = $4,
		     experience = $5,
		     skills = $6,
		     updated_at = NOW()
		 RETURNING id, user_id, industry, specialization, bio, experience, skills, created_at, updated_at`,
		input.UserID, input.Industry, input.Specialization, input.Bio, input.Experience,
		StringArray(input.Skills),
	).Scan(&p.ID, &p.UserID, &p.Industry, &p.Specialization, &p.Bio, &p.Experience, &p.Skills, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &p, nil
}
