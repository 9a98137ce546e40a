package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/career-coach/internal/db"
	"github.com/jonathan/career-coach/internal/quiz"
	"github.com/jonathan/career-coach/internal/server/middleware"
	"github.com/jonathan/career-coach/internal/types"
)

// QuizResponse represents the response for POST /quiz
type QuizResponse struct {
	Questions []types.QuizQuestion `json:"questions"`
}

// AssessmentResponse represents one persisted quiz attempt
type AssessmentResponse struct {
	ID             string                 `json:"id"`
	QuizScore      float64                `json:"quizScore"`
	Questions      []types.QuestionResult `json:"questions"`
	Category       string                 `json:"category"`
	ImprovementTip string                 `json:"improvementTip"`
	CreatedAt      time.Time              `json:"createdAt"`
}

// handleGenerateQuiz produces a fresh question batch tailored to the
// learner's industry and skills
func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := s.db.GetProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found: complete onboarding first")
		return
	}

	// Question texts from recent attempts steer the model away from repeats.
	// A failure here degrades to a quiz without the anti-repetition hint.
	prior, err := s.db.RecentQuestionTexts(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to load recent questions for %s: %v", userID, err)
		prior = nil
	}

	questions, err := quiz.Generate(r.Context(), s.llmClient, quiz.GenerateParams{
		Industry:       profile.Industry,
		Skills:         profile.Skills,
		Bio:            profile.Bio,
		PriorQuestions: prior,
	})
	if err != nil {
		log.Printf("Quiz generation failed for %s: %v", userID, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, QuizResponse{Questions: questions})
}

// handleSubmitQuiz scores a completed attempt, generates an improvement tip
// for imperfect scores, and persists the assessment
func (s *Server) handleSubmitQuiz(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := s.db.GetProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found: complete onboarding first")
		return
	}

	var req types.SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, extractValidationErrors(err))
		return
	}

	result, err := quiz.Score(req.Questions, req.Answers)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// ImprovementTip never fails the request: it falls back to a canned tip
	// when the completion call errors.
	tip := quiz.ImprovementTip(r.Context(), s.llmClient, profile.Industry, result.Wrong)

	assessment, err := s.db.CreateAssessment(r.Context(), userID, result.Score, result.Results, "Technical", tip)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, assessmentResponse(assessment))
}

// handleListAssessments returns the learner's quiz history, newest first
func (s *Server) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	assessments, err := s.db.ListAssessments(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	response := make([]AssessmentResponse, 0, len(assessments))
	for i := range assessments {
		response = append(response, assessmentResponse(&assessments[i]))
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"assessments": response,
		"count":       len(response),
	})
}

func assessmentResponse(a *db.Assessment) AssessmentResponse {
	return AssessmentResponse{
		ID:             a.ID.String(),
		QuizScore:      a.QuizScore,
		Questions:      a.Questions,
		Category:       a.Category,
		ImprovementTip: a.ImprovementTip,
		CreatedAt:      a.CreatedAt,
	}
}
