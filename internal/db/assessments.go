package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/career-coach/internal/types"
)

// RecentQuestionLimit bounds how many prior assessments contribute question
// texts to the next quiz prompt.
const RecentQuestionLimit = 5

// CreateAssessment persists one scored quiz attempt. Assessments are
// append-only; nothing updates them after this insert.
func (db *DB) CreateAssessment(ctx context.Context, userID uuid.UUID, score float64, questions []types.QuestionResult, category, improvementTip string) (*Assessment, error) {
	questionsJSON, err := json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode question results: %w", err)
	}

	var (
		a       Assessment
		rawScan []byte
	)
	err = db.pool.QueryRow(ctx,
		`INSERT INTO assessments (user_id, quiz_score, questions, category, improvement_tip)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, user_id, quiz_score, questions, category, improvement_tip, created_at`,
		userID, score, questionsJSON, category, improvementTip,
	).Scan(&a.ID, &a.UserID, &a.QuizScore, &rawScan, &a.Category, &a.ImprovementTip, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}
	if err := json.Unmarshal(rawScan, &a.Questions); err != nil {
		return nil, fmt.Errorf("failed to decode question results: %w", err)
	}
	return &a, nil
}

// ListAssessments returns a learner's assessments, newest first
func (db *DB) ListAssessments(ctx context.Context, userID uuid.UUID) ([]Assessment, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, quiz_score, questions, category, improvement_tip, created_at
		 FROM assessments WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	var assessments []Assessment
	for rows.Next() {
		var (
			a       Assessment
			rawScan []byte
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.QuizScore, &rawScan, &a.Category, &a.ImprovementTip, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		if err := json.Unmarshal(rawScan, &a.Questions); err != nil {
			return nil, fmt.Errorf("failed to decode question results: %w", err)
		}
		assessments = append(assessments, a)
	}
	return assessments, nil
}

// RecentQuestionTexts returns the question texts from a learner's most
// recent assessments, newest first, for use as an anti-repetition hint
// when generating the next quiz.
func (db *DB) RecentQuestionTexts(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT questions FROM assessments
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, RecentQuestionLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent assessments: %w", err)
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var rawScan []byte
		if err := rows.Scan(&rawScan); err != nil {
			return nil, fmt.Errorf("failed to scan assessment questions: %w", err)
		}
		var results []types.QuestionResult
		if err := json.Unmarshal(rawScan, &results); err != nil {
			return nil, fmt.Errorf("failed to decode question results: %w", err)
		}
		for _, r := range results {
			texts = append(texts, r.Question)
		}
	}
	return texts, nil
}
