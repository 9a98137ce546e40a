package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-coach/internal/db"
	"github.com/jonathan/career-coach/internal/quiz"
	"github.com/jonathan/career-coach/internal/server/middleware"
	"github.com/jonathan/career-coach/internal/types"
)

func authedRequest(method, target string, body []byte, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(req.Context(), middleware.UserIDKey(), userID)
	return req.WithContext(ctx)
}

func testProfile(userID uuid.UUID) *db.Profile {
	return &db.Profile{
		ID:       uuid.New(),
		UserID:   userID,
		Industry: "tech-software-development",
		Bio:      "Backend engineer",
		Skills:   db.StringArray{"Go", "SQL"},
	}
}

func makeQuestions(n int) []types.QuizQuestion {
	questions := make([]types.QuizQuestion, n)
	for i := range questions {
		questions[i] = types.QuizQuestion{
			Question:      fmt.Sprintf("Question %d?", i),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "A",
			Explanation:   "Because A.",
		}
	}
	return questions
}

func quizJSON(n int) string {
	payload := types.QuizPayload{Questions: makeQuestions(n)}
	data, _ := json.Marshal(payload)
	return string(data)
}

func TestHandleGenerateQuiz(t *testing.T) {
	userID := uuid.New()
	mock := &mockDB{
		getProfileFn: func(ctx context.Context, id uuid.UUID) (*db.Profile, error) {
			return testProfile(userID), nil
		},
		recentQuestionTextsFn: func(ctx context.Context, id uuid.UUID) ([]string, error) {
			return []string{"What is a goroutine?"}, nil
		},
	}
	client := &stubClient{response: quizJSON(quiz.BatchSize)}
	s := newTestServer(mock, client)

	rec := httptest.NewRecorder()
	s.handleGenerateQuiz(rec, authedRequest("POST", "/quiz", nil, userID))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp QuizResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Questions, quiz.BatchSize)

	// Prior questions feed the prompt
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "What is a goroutine?")
}

func TestHandleGenerateQuiz_NoProfile(t *testing.T) {
	mock := &mockDB{
		getProfileFn: func(ctx context.Context, id uuid.UUID) (*db.Profile, error) {
			return nil, nil
		},
	}
	s := newTestServer(mock, &stubClient{})

	rec := httptest.NewRecorder()
	s.handleGenerateQuiz(rec, authedRequest("POST", "/quiz", nil, uuid.New()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGenerateQuiz_ProviderFailure(t *testing.T) {
	userID := uuid.New()
	mock := &mockDB{
		getProfileFn: func(ctx context.Context, id uuid.UUID) (*db.Profile, error) {
			return testProfile(userID), nil
		},
		recentQuestionTextsFn: func(ctx context.Context, id uuid.UUID) ([]string, error) {
			return nil, nil
		},
	}
	s := newTestServer(mock, &stubClient{err: fmt.Errorf("model overloaded")})

	rec := httptest.NewRecorder()
	s.handleGenerateQuiz(rec, authedRequest("POST", "/quiz", nil, userID))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleSubmitQuiz(t *testing.T) {
	userID := uuid.New()
	var savedScore float64
	var savedTip string

	mock := &mockDB{
		getProfileFn: func(ctx context.Context, id uuid.UUID) (*db.Profile, error) {
			return testProfile(userID), nil
		},
		createAssessmentFn: func(ctx context.Context, id uuid.UUID, score float64, questions []types.QuestionResult, category, tip string) (*db.Assessment, error) {
			savedScore = score
			savedTip = tip
			return &db.Assessment{
				ID:             uuid.New(),
				UserID:         id,
				QuizScore:      score,
				Questions:      questions,
				Category:       category,
				ImprovementTip: tip,
			}, nil
		},
	}
	// Tip generation call returns a plain-text tip
	client := &stubClient{response: "Review goroutine scheduling basics."}
	s := newTestServer(mock, client)

	req := types.SubmitQuizRequest{
		Questions: makeQuestions(10),
		Answers:   map[int]string{0: "A", 1: "A", 2: "B"}, // 2 correct, rest wrong or missing
	}
	body, _ := json.Marshal(req)

	rec := httptest.NewRecorder()
	s.handleSubmitQuiz(rec, authedRequest("POST", "/quiz/results", body, userID))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 20.0, savedScore)
	assert.Equal(t, "Review goroutine scheduling basics.", savedTip)

	var resp AssessmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 20.0, resp.QuizScore)
	assert.Len(t, resp.Questions, 10)
}

func TestHandleSubmitQuiz_PerfectScoreSkipsCompletion(t *testing.T) {
	userID := uuid.New()
	mock := &mockDB{
		getProfileFn: func(ctx context.Context, id uuid.UUID) (*db.Profile, error) {
			return testProfile(userID), nil
		},
		createAssessmentFn: func(ctx context.Context, id uuid.UUID, score float64, questions []types.QuestionResult, category, tip string) (*db.Assessment, error) {
			return &db.Assessment{ID: uuid.New(), QuizScore: score, Questions: questions, ImprovementTip: tip}, nil
		},
	}
	client := &stubClient{response: "should not be used"}
	s := newTestServer(mock, client)

	questions := makeQuestions(10)
	answers := make(map[int]string, 10)
	for i := range questions {
		answers[i] = "A"
	}
	body, _ := json.Marshal(types.SubmitQuizRequest{Questions: questions, Answers: answers})

	rec := httptest.NewRecorder()
	s.handleSubmitQuiz(rec, authedRequest("POST", "/quiz/results", body, userID))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AssessmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 100.0, resp.QuizScore)
	assert.Equal(t, quiz.PerfectScoreTip, resp.ImprovementTip)
	assert.Empty(t, client.prompts, "perfect score should not trigger a completion call")
}

func TestHandleSubmitQuiz_TipFailureFallsBack(t *testing.T) {
	userID := uuid.New()
	mock := &mockDB{
		getProfileFn: func(ctx context.Context, id uuid.UUID) (*db.Profile, error) {
			return testProfile(userID), nil
		},
		createAssessmentFn: func(ctx context.Context, id uuid.UUID, score float64, questions []types.QuestionResult, category, tip string) (*db.Assessment, error) {
			return &db.Assessment{ID: uuid.New(), QuizScore: score, Questions: questions, ImprovementTip: tip}, nil
		},
	}
	s := newTestServer(mock, &stubClient{err: fmt.Errorf("provider down")})

	body, _ := json.Marshal(types.SubmitQuizRequest{
		Questions: makeQuestions(10),
		Answers:   map[int]string{0: "B"},
	})

	rec := httptest.NewRecorder()
	s.handleSubmitQuiz(rec, authedRequest("POST", "/quiz/results", body, userID))

	require.Equal(t, http.StatusCreated, rec.Code, "tip failure must not fail the submission")

	var resp AssessmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, quiz.FallbackTip, resp.ImprovementTip)
}

func TestHandleSubmitQuiz_EmptyQuestions(t *testing.T) {
	userID := uuid.New()
	mock := &mockDB{
		getProfileFn: func(ctx context.Context, id uuid.UUID) (*db.Profile, error) {
			return testProfile(userID), nil
		},
	}
	s := newTestServer(mock, &stubClient{})

	body, _ := json.Marshal(types.SubmitQuizRequest{
		Questions: nil,
		Answers:   map[int]string{},
	})

	rec := httptest.NewRecorder()
	s.handleSubmitQuiz(rec, authedRequest("POST", "/quiz/results", body, userID))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleListAssessments(t *testing.T) {
	userID := uuid.New()
	mock := &mockDB{
		listAssessmentsFn: func(ctx context.Context, id uuid.UUID) ([]db.Assessment, error) {
			return []db.Assessment{
				{ID: uuid.New(), UserID: id, QuizScore: 80},
				{ID: uuid.New(), UserID: id, QuizScore: 60},
			}, nil
		},
	}
	s := newTestServer(mock, &stubClient{})

	rec := httptest.NewRecorder()
	s.handleListAssessments(rec, authedRequest("GET", "/assessments", nil, userID))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Assessments []AssessmentResponse `json:"assessments"`
		Count       int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 80.0, resp.Assessments[0].QuizScore)
}
