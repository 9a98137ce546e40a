package quiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/types"
)

const (
	// PerfectScoreTip is returned when the learner missed nothing.
	PerfectScoreTip = "Great job! You've mastered these concepts."
	// FallbackTip is returned when tip generation fails; the tip is
	// supplementary and must never abort the parent save.
	FallbackTip = "Focus on reviewing the concepts you missed and practice with similar questions to strengthen your understanding."
)

// ImprovementTip derives a short coaching tip from the incorrectly answered
// questions. Best-effort: any provider failure degrades to FallbackTip.
func ImprovementTip(ctx context.Context, client llm.Client, industry string, wrong []types.QuestionResult) string {
	if len(wrong) == 0 {
		return PerfectScoreTip
	}

	prompt := BuildTipPrompt(industry, wrong)

	text, err := client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return FallbackTip
	}

	tip := strings.TrimSpace(llm.CleanJSONBlock(text))
	if tip == "" {
		return FallbackTip
	}
	return tip
}

// BuildTipPrompt constructs the improvement-tip prompt from missed questions.
func BuildTipPrompt(industry string, wrong []types.QuestionResult) string {
	var sb strings.Builder
	for i, w := range wrong {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(fmt.Sprintf("Question: %s\nCorrect Answer: %s\nUser Answer: %s",
			w.Question, w.CorrectAnswer, w.UserAnswer))
	}

	template := prompts.MustGet("quiz.json", "improvement-tip")
	return prompts.Format(template, map[string]string{
		"Industry":     industry,
		"WrongAnswers": sb.String(),
	})
}
