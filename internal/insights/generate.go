// Package insights generates structured industry market insights via LLM extraction.
package insights

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/prompts"
	"github.com/jonathan/career-coach/internal/schemas"
	"github.com/jonathan/career-coach/internal/types"
)

// Generate produces a validated IndustryInsight payload for one industry.
// The chain is prompt -> completion -> normalize -> parse -> validate; any
// failure surfaces as a typed error, never a partial payload.
func Generate(ctx context.Context, client llm.Client, industry string) (*types.IndustryInsight, error) {
	if industry == "" {
		return nil, &ValidationError{Field: "industry", Message: "industry is required"}
	}

	prompt := BuildInsightPrompt(industry)

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate content from LLM",
			Cause:   err,
		}
	}

	// GenerateJSON strips fences already; cleaning is idempotent so a second
	// pass guards stub clients that return raw fenced text.
	responseText = llm.CleanJSONBlock(responseText)

	insight, err := parseInsightResponse(responseText)
	if err != nil {
		return nil, err
	}

	if err := validateInsight(insight); err != nil {
		return nil, err
	}

	return insight, nil
}

// BuildInsightPrompt constructs the insight extraction prompt for an industry.
// Deterministic: identical input yields an identical prompt.
func BuildInsightPrompt(industry string) string {
	template := prompts.MustGet("insights.json", "generate-industry-insights")
	return prompts.Format(template, map[string]string{
		"Industry": industry,
	})
}

// parseInsightResponse parses the normalized response into an IndustryInsight,
// rejecting anything that fails the JSON schema.
func parseInsightResponse(jsonText string) (*types.IndustryInsight, error) {
	if err := schemas.Validate(schemas.IndustryInsight, jsonText); err != nil {
		if _, ok := err.(*schemas.SchemaLoadError); ok {
			return nil, err
		}
		return nil, &ParseError{
			Message: "response failed schema validation",
			RawText: jsonText,
			Cause:   err,
		}
	}

	var insight types.IndustryInsight
	if err := json.Unmarshal([]byte(jsonText), &insight); err != nil {
		return nil, &ParseError{
			Message: "failed to parse JSON response",
			RawText: jsonText,
			Cause:   err,
		}
	}

	return &insight, nil
}

// validateInsight applies the semantic rules the JSON schema cannot express.
func validateInsight(insight *types.IndustryInsight) error {
	if insight.GrowthRate < 0 || insight.GrowthRate > 100 {
		return &ValidationError{
			Field:   "growthRate",
			Message: fmt.Sprintf("must be between 0 and 100, got %g", insight.GrowthRate),
		}
	}
	if !insight.DemandLevel.Valid() {
		return &ValidationError{
			Field:   "demandLevel",
			Message: fmt.Sprintf("unrecognized value %q", insight.DemandLevel),
		}
	}
	if !insight.MarketOutlook.Valid() {
		return &ValidationError{
			Field:   "marketOutlook",
			Message: fmt.Sprintf("unrecognized value %q", insight.MarketOutlook),
		}
	}
	for i, sr := range insight.SalaryRanges {
		if sr.Min > sr.Median || sr.Median > sr.Max {
			return &ValidationError{
				Field:   fmt.Sprintf("salaryRanges[%d]", i),
				Message: fmt.Sprintf("expected min <= median <= max, got %g/%g/%g", sr.Min, sr.Median, sr.Max),
			}
		}
	}
	return nil
}
