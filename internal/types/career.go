// Package types provides type definitions for structured data used throughout the career-coach system.
package types

// DemandLevel is the hiring-demand classification for an industry.
type DemandLevel string

// DemandLevel values form a closed enumeration.
const (
	DemandLow    DemandLevel = "LOW"
	DemandMedium DemandLevel = "MEDIUM"
	DemandHigh   DemandLevel = "HIGH"
)

// Valid reports whether the demand level is one of the recognized values.
func (d DemandLevel) Valid() bool {
	switch d {
	case DemandLow, DemandMedium, DemandHigh:
		return true
	}
	return false
}

// MarketOutlook is the overall market sentiment for an industry.
type MarketOutlook string

// MarketOutlook values form a closed enumeration.
const (
	OutlookNegative MarketOutlook = "NEGATIVE"
	OutlookNeutral  MarketOutlook = "NEUTRAL"
	OutlookPositive MarketOutlook = "POSITIVE"
)

// Valid reports whether the market outlook is one of the recognized values.
func (m MarketOutlook) Valid() bool {
	switch m {
	case OutlookNegative, OutlookNeutral, OutlookPositive:
		return true
	}
	return false
}

// SalaryRange is one salary band within an industry insight payload.
type SalaryRange struct {
	Role     string  `json:"role"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Location string  `json:"location"`
}

// IndustryInsight is the structured payload generated for one industry.
// Timestamps are attached by the persistence layer, not the model.
type IndustryInsight struct {
	SalaryRanges      []SalaryRange `json:"salaryRanges"`
	GrowthRate        float64       `json:"growthRate"`
	DemandLevel       DemandLevel   `json:"demandLevel"`
	TopSkills         []string      `json:"topSkills"`
	MarketOutlook     MarketOutlook `json:"marketOutlook"`
	KeyTrends         []string      `json:"keyTrends"`
	RecommendedSkills []string      `json:"recommendedSkills"`
}

// QuizQuestion is one generated multiple-choice question.
// A question carries exactly 4 options; correctAnswer is one of them.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// QuizPayload is the structured payload returned by quiz generation.
type QuizPayload struct {
	Questions []QuizQuestion `json:"questions"`
}

// QuestionResult records the outcome of one answered question.
type QuestionResult struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
	UserAnswer    string `json:"userAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation"`
}
