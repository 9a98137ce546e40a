package db

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-coach/internal/types"
)

// User represents a learner account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile represents a learner's onboarding profile.
// Skills keeps insertion order so quiz prompts stay reproducible.
type Profile struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"user_id"`
	Industry       string      `json:"industry"`
	Specialization string      `json:"specialization,omitempty"`
	Bio            string      `json:"bio,omitempty"`
	Experience     int         `json:"experience"`
	Skills         StringArray `json:"skills"` // JSONB array
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// IndustryInsight is the persisted view of a generated insight payload.
// Exactly one row exists per industry.
type IndustryInsight struct {
	ID                uuid.UUID           `json:"id"`
	Industry          string              `json:"industry"`
	SalaryRanges      []types.SalaryRange `json:"salaryRanges"`
	GrowthRate        float64             `json:"growthRate"`
	DemandLevel       types.DemandLevel   `json:"demandLevel"`
	TopSkills         StringArray         `json:"topSkills"`
	MarketOutlook     types.MarketOutlook `json:"marketOutlook"`
	KeyTrends         StringArray         `json:"keyTrends"`
	RecommendedSkills StringArray         `json:"recommendedSkills"`
	LastUpdated       time.Time           `json:"lastUpdated"`
	NextUpdate        time.Time           `json:"nextUpdate"`
}

// Payload returns the insight as the wire payload type, without timestamps.
func (i *IndustryInsight) Payload() *types.IndustryInsight {
	return &types.IndustryInsight{
		SalaryRanges:      i.SalaryRanges,
		GrowthRate:        i.GrowthRate,
		DemandLevel:       i.DemandLevel,
		TopSkills:         i.TopSkills,
		MarketOutlook:     i.MarketOutlook,
		KeyTrends:         i.KeyTrends,
		RecommendedSkills: i.RecommendedSkills,
	}
}

// Assessment represents one persisted, scored quiz attempt.
// Immutable once created.
type Assessment struct {
	ID             uuid.UUID              `json:"id"`
	UserID         uuid.UUID              `json:"user_id"`
	QuizScore      float64                `json:"quizScore"`
	Questions      []types.QuestionResult `json:"questions"` // JSONB
	Category       string                 `json:"category"`
	ImprovementTip string                 `json:"improvementTip"`
	CreatedAt      time.Time              `json:"createdAt"`
}

// Resume represents a learner's resume content blob. One row per learner.
type Resume struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		if str, isStr := src.(string); isStr {
			source = []byte(str)
		} else {
			return errors.New("failed to scan StringArray")
		}
	}
	if len(source) == 0 {
		*a = []string{}
		return nil
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (interface{}, error) {
	if a == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(a))
}
