// Package refresh regenerates stored industry insights on a weekly cadence.
package refresh

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/career-coach/internal/db"
	"github.com/jonathan/career-coach/internal/insights"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/types"
)

// Store is the subset of database operations the refresher needs.
type Store interface {
	ListIndustries(ctx context.Context) ([]string, error)
	UpsertInsight(ctx context.Context, industry string, payload *types.IndustryInsight) (*db.IndustryInsight, error)
}

// Failure records one industry whose regeneration did not complete.
type Failure struct {
	Industry string
	Err      error
}

// Report summarizes one refresh pass.
type Report struct {
	Succeeded []string
	Failed    []Failure
	Duration  time.Duration
}

// Runner walks every stored industry and regenerates its insight.
type Runner struct {
	store  Store
	client llm.Client
}

// NewRunner creates a Runner over the given store and completion client.
func NewRunner(store Store, client llm.Client) *Runner {
	return &Runner{store: store, client: client}
}

// Run refreshes all industries sequentially. One industry failing never
// aborts the pass: the failure is recorded and the walk continues, so a
// single malformed completion cannot leave the rest of the catalog stale.
// When the context is cancelled mid-pass, the partial report covering the
// industries already walked is returned alongside the context error.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	start := time.Now()

	industries, err := r.store.ListIndustries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list industries: %w", err)
	}

	report := &Report{}
	for _, industry := range industries {
		if err := ctx.Err(); err != nil {
			report.Duration = time.Since(start)
			return report, err
		}

		if err := r.refreshOne(ctx, industry); err != nil {
			log.Printf("[refresh] %s failed: %v", industry, err)
			report.Failed = append(report.Failed, Failure{Industry: industry, Err: err})
			continue
		}
		log.Printf("[refresh] %s updated", industry)
		report.Succeeded = append(report.Succeeded, industry)
	}

	report.Duration = time.Since(start)
	return report, nil
}

func (r *Runner) refreshOne(ctx context.Context, industry string) error {
	insight, err := insights.Generate(ctx, r.client, industry)
	if err != nil {
		return err
	}
	if _, err := r.store.UpsertInsight(ctx, industry, insight); err != nil {
		return fmt.Errorf("failed to persist insight: %w", err)
	}
	return nil
}
