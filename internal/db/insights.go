package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-coach/internal/types"
)

// InsightTTL is how long a generated insight stays current before the
// weekly refresh is expected to replace it.
const InsightTTL = 7 * 24 * time.Hour

// GetInsight retrieves the cached insight for an industry.
// Returns (nil, nil) when no insight has been generated yet.
func (db *DB) GetInsight(ctx context.Context, industry string) (*IndustryInsight, error) {
	var (
		i          IndustryInsight
		salaryJSON []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, industry, salary_ranges, growth_rate, demand_level, top_skills,
		        market_outlook, key_trends, recommended_skills, last_updated, next_update
		 FROM industry_insights WHERE industry = $1`,
		industry,
	).Scan(&i.ID, &i.Industry, &salaryJSON, &i.GrowthRate, &i.DemandLevel, &i.TopSkills,
		&i.MarketOutlook, &i.KeyTrends, &i.RecommendedSkills, &i.LastUpdated, &i.NextUpdate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get insight: %w", err)
	}
	if err := json.Unmarshal(salaryJSON, &i.SalaryRanges); err != nil {
		return nil, fmt.Errorf("failed to decode salary ranges: %w", err)
	}
	return &i, nil
}

// UpsertInsight writes a generated insight payload for an industry,
// replacing any previous row and advancing the refresh window.
// Last write wins when two refreshes race on the same industry.
func (db *DB) UpsertInsight(ctx context.Context, industry string, payload *types.IndustryInsight) (*IndustryInsight, error) {
	salaryJSON, err := json.Marshal(payload.SalaryRanges)
	if err != nil {
		return nil, fmt.Errorf("failed to encode salary ranges: %w", err)
	}

	var (
		i       IndustryInsight
		rawScan []byte
	)
	err = db.pool.QueryRow(ctx,
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
		     next_update = NOW() + INTERVAL '7 days'
		 RETURNING id, industry, salary_ranges, growth_rate, demand_level, top_skills,
		           market_outlook, key_trends, recommended_skills, last_updated, next_update`,
		industry, salaryJSON, payload.GrowthRate, payload.DemandLevel,
		StringArray(payload.TopSkills), payload.MarketOutlook,
		StringArray(payload.KeyTrends), StringArray(payload.RecommendedSkills),
	).Scan(&i.ID, &i.Industry, &rawScan, &i.GrowthRate, &i.DemandLevel, &i.TopSkills,
		&i.MarketOutlook, &i.KeyTrends, &i.RecommendedSkills, &i.LastUpdated, &i.NextUpdate)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert insight: %w", err)
	}
	if err := json.Unmarshal(rawScan, &i.SalaryRanges); err != nil {
		return nil, fmt.Errorf("failed to decode salary ranges: %w", err)
	}
	return &i, nil
}

// ListIndustries returns every industry with a stored insight,
// in deterministic order for the batch refresh.
func (db *DB) ListIndustries(ctx context.Context) ([]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT industry FROM industry_insights ORDER BY industry`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list industries: %w", err)
	}
	defer rows.Close()

	var industries []string
	for rows.Next() {
		var industry string
		if err := rows.Scan(&industry); err != nil {
			return nil, fmt.Errorf("failed to scan industry: %w", err)
		}
		industries = append(industries, industry)
	}
	return industries, nil
}
