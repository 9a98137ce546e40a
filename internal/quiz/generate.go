// Package quiz generates technical interview quizzes via LLM extraction and
// scores completed attempts.
package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/schemas"
	"github.com/jonathan/career-coach/internal/types"
)

// BatchSize is the number of questions in one generated quiz.
const BatchSize = 10

// GenerateParams carries the learner context the quiz prompt is built from.
type GenerateParams struct {
	Industry string
	Skills   []string
	Bio      string
	// PriorQuestions lists question texts from recent attempts so the model
	// avoids repeats.
	PriorQuestions []string
}

// Generate produces a validated batch of exactly BatchSize questions.
func Generate(ctx context.Context, client llm.Client, params GenerateParams) ([]types.QuizQuestion, error) {
	if params.Industry == "" {
		return nil, &ValidationError{Field: "industry", Message: "industry is required"}
	}

	prompt := BuildQuizPrompt(params)

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate content from LLM",
			Cause:   err,
		}
	}

	responseText = llm.CleanJSONBlock(responseText)

	payload, err := parseQuizResponse(responseText)
	if err != nil {
		return nil, err
	}

	if err := validateQuestions(payload.Questions); err != nil {
		return nil, err
	}

	return payload.Questions, nil
}

// BuildQuizPrompt constructs the quiz generation prompt.
// Deterministic: identical params yield an identical prompt; skills and prior
// questions keep their given order.
func BuildQuizPrompt(params GenerateParams) string {
	skillsClause := "."
	if len(params.Skills) > 0 {
		skillsClause = fmt.Sprintf(" with demonstrable expertise in: %s.", strings.Join(params.Skills, ", "))
	}

	prior := "(none)"
	if len(params.PriorQuestions) > 0 {
		prior = strings.Join(params.PriorQuestions, "; ")
	}

	template := prompts.MustGet("quiz.json", "generate-quiz")
	return prompts.Format(template, map[string]string{
		"Industry":       params.Industry,
		"SkillsClause":   skillsClause,
		"Bio":            params.Bio,
		"PriorQuestions": prior,
	})
}

// parseQuizResponse parses the normalized response into a QuizPayload,
// rejecting anything that fails the JSON schema.
func parseQuizResponse(jsonText string) (*types.QuizPayload, error) {
	if err := schemas.Validate(schemas.QuizPayload, jsonText); err != nil {
		if _, ok := err.(*schemas.SchemaLoadError); ok {
			return nil, err
		}
		return nil, &ParseError{
			Message: "response failed schema validation",
			RawText: jsonText,
			Cause:   err,
		}
	}

	var payload types.QuizPayload
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return nil, &ParseError{
			Message: "failed to parse JSON response",
			RawText: jsonText,
			Cause:   err,
		}
	}

	return &payload, nil
}

// validateQuestions applies the batch rules: exactly BatchSize questions,
// 4 distinct options each, correctAnswer a member of its own options.
func validateQuestions(questions []types.QuizQuestion) error {
	if len(questions) != BatchSize {
		return &ValidationError{
			Field:   "questions",
			Message: fmt.Sprintf("expected exactly %d questions, got %d", BatchSize, len(questions)),
		}
	}

	for i, q := range questions {
		if len(q.Options) != 4 {
			return &ValidationError{
				Field:   fmt.Sprintf("questions[%d].options", i),
				Message: fmt.Sprintf("expected exactly 4 options, got %d", len(q.Options)),
			}
		}

		seen := make(map[string]bool, 4)
		correctFound := false
		for _, opt := range q.Options {
			if seen[opt] {
				return &ValidationError{
					Field:   fmt.Sprintf("questions[%d].options", i),
					Message: fmt.Sprintf("duplicate option %q", opt),
				}
			}
			seen[opt] = true
			if opt == q.CorrectAnswer {
				correctFound = true
			}
		}

		if !correctFound {
			return &ValidationError{
				Field:   fmt.Sprintf("questions[%d].correctAnswer", i),
				Message: "correctAnswer is not one of the options",
			}
		}
	}

	return nil
}
