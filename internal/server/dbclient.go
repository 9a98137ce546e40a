// Package server provides the HTTP REST API for the career coach.
package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/career-coach/internal/db"
	"github.com/jonathan/career-coach/internal/types"
)

// DBClient is the storage surface the server depends on. *db.DB satisfies
// it; tests substitute a mock.
type DBClient interface {
	// Users
	CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// Profiles
	GetProfile(ctx context.Context, userID uuid.UUID) (*db.Profile, error)
	UpsertProfileWithInsight(ctx context.Context, input *db.ProfileUpdateInput) (*db.Profile, error)

	// Insights
	GetInsight(ctx context.Context, industry string) (*db.IndustryInsight, error)
	UpsertInsight(ctx context.Context, industry string, payload *types.IndustryInsight) (*db.IndustryInsight, error)

	// Assessments
	CreateAssessment(ctx context.Context, userID uuid.UUID, score float64, questions []types.QuestionResult, category, improvementTip string) (*db.Assessment, error)
	ListAssessments(ctx context.Context, userID uuid.UUID) ([]db.Assessment, error)
	RecentQuestionTexts(ctx context.Context, userID uuid.UUID) ([]string, error)

	// Resumes
	GetResume(ctx context.Context, userID uuid.UUID) (*db.Resume, error)
	UpsertResume(ctx context.Context, userID uuid.UUID, content string) (*db.Resume, error)
}
