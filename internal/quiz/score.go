package quiz

import (
	"github.com/jonathan/career-coach/internal/types"
)

// Result is the outcome of scoring one completed quiz attempt.
type Result struct {
	// Score is the aggregate percentage, correct/total x 100.
	Score float64
	// Results echoes every question with the learner's answer and correctness,
	// in question order.
	Results []types.QuestionResult
	// Wrong is the subset of Results with IsCorrect false, used for
	// improvement-tip generation.
	Wrong []types.QuestionResult
}

// Score grades a question batch against a sparse answer map keyed by question
// index. An index with no submitted answer counts as incorrect. An empty
// question set is an error: the pipeline never legitimately produces one, and
// scoring it would be 0/0.
func Score(questions []types.QuizQuestion, answers map[int]string) (*Result, error) {
	if len(questions) == 0 {
		return nil, &ValidationError{Field: "questions", Message: "cannot score an empty question set"}
	}

	result := &Result{
		Results: make([]types.QuestionResult, 0, len(questions)),
	}

	correct := 0
	for i, q := range questions {
		userAnswer, answered := answers[i]
		isCorrect := answered && userAnswer == q.CorrectAnswer
		if isCorrect {
			correct++
		}

		qr := types.QuestionResult{
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    userAnswer,
			IsCorrect:     isCorrect,
			Explanation:   q.Explanation,
		}
		result.Results = append(result.Results, qr)
		if !isCorrect {
			result.Wrong = append(result.Wrong, qr)
		}
	}

	result.Score = float64(correct) / float64(len(questions)) * 100

	return result, nil
}
