// Package resume provides AI-assisted rewriting of resume entry descriptions.
package resume

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/prompts"
)

// APICallError represents an error from the completion provider
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// EmptyResultError indicates the provider returned no usable rewrite text.
type EmptyResultError struct{}

func (e *EmptyResultError) Error() string {
	return "model returned an empty rewrite"
}

// Improve rewrites one resume entry description to be more impactful,
// tailored to the learner's industry. The rewrite is returned, not persisted.
func Improve(ctx context.Context, client llm.Client, industry, category, current string) (string, error) {
	prompt := BuildImprovePrompt(industry, category, current)

	text, err := client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", &APICallError{
			Message: "failed to generate content from LLM",
			Cause:   err,
		}
	}

	improved := strings.TrimSpace(llm.CleanJSONBlock(text))
	if improved == "" {
		return "", &EmptyResultError{}
	}

	return improved, nil
}

// BuildImprovePrompt constructs the rewrite prompt for one entry description.
func BuildImprovePrompt(industry, category, current string) string {
	template := prompts.MustGet("resume.json", "improve-entry")
	return prompts.Format(template, map[string]string{
		"Industry": industry,
		"Category": category,
		"Current":  current,
	})
}
