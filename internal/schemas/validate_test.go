package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validInsightJSON = `{
	"salaryRanges": [
		{"role": "Data Engineer", "min": 90000, "max": 160000, "median": 120000, "location": "US"},
		{"role": "Data Scientist", "min": 95000, "max": 170000, "median": 125000, "location": "US"},
		{"role": "ML Engineer", "min": 100000, "max": 180000, "median": 135000, "location": "US"},
		{"role": "Analytics Engineer", "min": 85000, "max": 150000, "median": 110000, "location": "US"},
		{"role": "Data Analyst", "min": 65000, "max": 120000, "median": 85000, "location": "US"}
	],
	"growthRate": 12.5,
	"demandLevel": "HIGH",
	"topSkills": ["Python", "SQL", "Spark", "Airflow", "dbt"],
	"marketOutlook": "POSITIVE",
	"keyTrends": ["GenAI adoption", "Data contracts", "Lakehouse architectures"],
	"recommendedSkills": ["Python", "Kubernetes", "Terraform", "Kafka", "Snowflake"]
}`

func TestValidate_InsightValid(t *testing.T) {
	err := Validate(IndustryInsight, validInsightJSON)
	assert.NoError(t, err)
}

func TestValidate_InsightMissingField(t *testing.T) {
	err := Validate(IndustryInsight, `{"growthRate": 10}`)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidate_InsightBadEnum(t *testing.T) {
	bad := `{
		"salaryRanges": [
			{"role": "A", "min": 1, "max": 3, "median": 2, "location": "US"},
			{"role": "B", "min": 1, "max": 3, "median": 2, "location": "US"},
			{"role": "C", "min": 1, "max": 3, "median": 2, "location": "US"},
			{"role": "D", "min": 1, "max": 3, "median": 2, "location": "US"},
			{"role": "E", "min": 1, "max": 3, "median": 2, "location": "US"}
		],
		"growthRate": 10,
		"demandLevel": "EXTREME",
		"topSkills": ["a", "b", "c", "d", "e"],
		"marketOutlook": "POSITIVE",
		"keyTrends": ["a", "b", "c"],
		"recommendedSkills": ["a", "b", "c", "d", "e"]
	}`

	err := Validate(IndustryInsight, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "demandLevel")
}

func TestValidate_InsightGrowthRateOutOfRange(t *testing.T) {
	bad := `{
		"salaryRanges": [
			{"role": "A", "min": 1, "max": 3, "median": 2, "location": "US"},
			{"role": "B", "min": 1, "max": 3, "median": 2, "location": "US"},
			{"role": "C", "min": 1, "max": 3, "median": 2, "location": "US"},
			{"role": "D", "min": 1, "max": 3, "median": 2, "location": "US"},
			{"role": "E", "min": 1, "max": 3, "median": 2, "location": "US"}
		],
		"growthRate": 120,
		"demandLevel": "HIGH",
		"topSkills": ["a", "b", "c", "d", "e"],
		"marketOutlook": "POSITIVE",
		"keyTrends": ["a", "b", "c"],
		"recommendedSkills": ["a", "b", "c", "d", "e"]
	}`

	err := Validate(IndustryInsight, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "growthRate")
}

func quizJSONWithNQuestions(n int) string {
	payload := `{"questions": [`
	for i := 0; i < n; i++ {
		if i > 0 {
			payload += ","
		}
		payload += `{
			"question": "What?",
			"options": ["opt one", "opt two", "opt three", "opt four"],
			"correctAnswer": "opt one",
			"explanation": "Because."
		}`
	}
	return payload + `]}`
}

func TestValidate_QuizExactlyTen(t *testing.T) {
	assert.NoError(t, Validate(QuizPayload, quizJSONWithNQuestions(10)))
}

func TestValidate_QuizWrongQuestionCount(t *testing.T) {
	assert.Error(t, Validate(QuizPayload, quizJSONWithNQuestions(9)))
	assert.Error(t, Validate(QuizPayload, quizJSONWithNQuestions(11)))
}

func TestValidate_QuizDuplicateOptions(t *testing.T) {
	bad := `{"questions": [{
		"question": "What?",
		"options": ["same", "same", "other", "another"],
		"correctAnswer": "same",
		"explanation": "Because."
	}]}`

	assert.Error(t, Validate(QuizPayload, bad))
}

func TestValidate_NotJSON(t *testing.T) {
	err := Validate(QuizPayload, "Sorry, I cannot help")
	require.Error(t, err)
	_, isLoadErr := err.(*SchemaLoadError)
	assert.False(t, isLoadErr, "malformed document must not be reported as a schema load error")
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nope.schema.json", "{}")
	require.Error(t, err)
	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok)
}
