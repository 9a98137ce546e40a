package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/career-coach/internal/db"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/types"
)

// mockDB implements DBClient with overridable function fields. Methods
// without an override fail loudly so tests only exercise what they stub.
type mockDB struct {
	createUserFn          func(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	getUserFn             func(ctx context.Context, id uuid.UUID) (*db.User, error)
	getUserByEmailFn      func(ctx context.Context, email string) (*db.User, error)
	checkEmailExistsFn    func(ctx context.Context, email string) (bool, error)
	updatePasswordFn      func(ctx context.Context, userID uuid.UUID, passwordHash string) error
	getProfileFn          func(ctx context.Context, userID uuid.UUID) (*db.Profile, error)
	upsertProfileFn       func(ctx context.Context, input *db.ProfileUpdateInput) (*db.Profile, error)
	getInsightFn          func(ctx context.Context, industry string) (*db.IndustryInsight, error)
	upsertInsightFn       func(ctx context.Context, industry string, payload *types.IndustryInsight) (*db.IndustryInsight, error)
	createAssessmentFn    func(ctx context.Context, userID uuid.UUID, score float64, questions []types.QuestionResult, category, tip string) (*db.Assessment, error)
	listAssessmentsFn     func(ctx context.Context, userID uuid.UUID) ([]db.Assessment, error)
	recentQuestionTextsFn func(ctx context.Context, userID uuid.UUID) ([]string, error)
	getResumeFn           func(ctx context.Context, userID uuid.UUID) (*db.Resume, error)
	upsertResumeFn        func(ctx context.Context, userID uuid.UUID, content string) (*db.Resume, error)
}

func (m *mockDB) CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	if m.createUserFn == nil {
		return uuid.Nil, fmt.Errorf("unexpected CreateUser call")
	}
	return m.createUserFn(ctx, name, email, passwordHash)
}

func (m *mockDB) GetUser(ctx context.Context, id uuid.UUID) (*db.User, error) {
	if m.getUserFn == nil {
		return nil, fmt.Errorf("unexpected GetUser call")
	}
	return m.getUserFn(ctx, id)
}

func (m *mockDB) GetUserByEmail(ctx context.Context, email string) (*db.User, error) {
	if m.getUserByEmailFn == nil {
		return nil, fmt.Errorf("unexpected GetUserByEmail call")
	}
	return m.getUserByEmailFn(ctx, email)
}

func (m *mockDB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	if m.checkEmailExistsFn == nil {
		return false, fmt.Errorf("unexpected CheckEmailExists call")
	}
	return m.checkEmailExistsFn(ctx, email)
}

func (m *mockDB) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	if m.updatePasswordFn == nil {
		return fmt.Errorf("unexpected UpdatePassword call")
	}
	return m.updatePasswordFn(ctx, userID, passwordHash)
}

func (m *mockDB) GetProfile(ctx context.Context, userID uuid.UUID) (*db.Profile, error) {
	if m.getProfileFn == nil {
		return nil, fmt.Errorf("unexpected GetProfile call")
	}
	return m.getProfileFn(ctx, userID)
}

func (m *mockDB) UpsertProfileWithInsight(ctx context.Context, input *db.ProfileUpdateInput) (*db.Profile, error) {
	if m.upsertProfileFn == nil {
		return nil, fmt.Errorf("unexpected UpsertProfileWithInsight call")
	}
	return m.upsertProfileFn(ctx, input)
}

func (m *mockDB) GetInsight(ctx context.Context, industry string) (*db.IndustryInsight, error) {
	if m.getInsightFn == nil {
		return nil, fmt.Errorf("unexpected GetInsight call")
	}
	return m.getInsightFn(ctx, industry)
}

func (m *mockDB) UpsertInsight(ctx context.Context, industry string, payload *types.IndustryInsight) (*db.IndustryInsight, error) {
	if m.upsertInsightFn == nil {
		return nil, fmt.Errorf("unexpected UpsertInsight call")
	}
	return m.upsertInsightFn(ctx, industry, payload)
}

func (m *mockDB) CreateAssessment(ctx context.Context, userID uuid.UUID, score float64, questions []types.QuestionResult, category, tip string) (*db.Assessment, error) {
	if m.createAssessmentFn == nil {
		return nil, fmt.Errorf("unexpected CreateAssessment call")
	}
	return m.createAssessmentFn(ctx, userID, score, questions, category, tip)
}

func (m *mockDB) ListAssessments(ctx context.Context, userID uuid.UUID) ([]db.Assessment, error) {
	if m.listAssessmentsFn == nil {
		return nil, fmt.Errorf("unexpected ListAssessments call")
	}
	return m.listAssessmentsFn(ctx, userID)
}

func (m *mockDB) RecentQuestionTexts(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if m.recentQuestionTextsFn == nil {
		return nil, fmt.Errorf("unexpected RecentQuestionTexts call")
	}
	return m.recentQuestionTextsFn(ctx, userID)
}

func (m *mockDB) GetResume(ctx context.Context, userID uuid.UUID) (*db.Resume, error) {
	if m.getResumeFn == nil {
		return nil, fmt.Errorf("unexpected GetResume call")
	}
	return m.getResumeFn(ctx, userID)
}

func (m *mockDB) UpsertResume(ctx context.Context, userID uuid.UUID, content string) (*db.Resume, error) {
	if m.upsertResumeFn == nil {
		return nil, fmt.Errorf("unexpected UpsertResume call")
	}
	return m.upsertResumeFn(ctx, userID, content)
}

// stubClient implements llm.Client with a canned response per call.
type stubClient struct {
	response string
	err      error
	prompts  []string
}

func (c *stubClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	c.prompts = append(c.prompts, prompt)
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func (c *stubClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	text, err := c.GenerateContent(ctx, prompt, tier)
	if err != nil {
		return "", err
	}
	return llm.CleanJSONBlock(text), nil
}

func (c *stubClient) GetModel(tier llm.ModelTier) string { return "stub-model" }

func (c *stubClient) Close() error { return nil }

// newTestServer builds a Server wired to mocks, bypassing New's database
// and provider setup.
func newTestServer(mock *mockDB, client llm.Client) *Server {
	return &Server{
		db:        mock,
		llmClient: client,
	}
}
