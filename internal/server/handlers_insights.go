package server

import (
	"log"
	"net/http"
	"time"

	"github.com/jonathan/career-coach/internal/db"
	"github.com/jonathan/career-coach/internal/server/middleware"
	"github.com/jonathan/career-coach/internal/types"
)

// InsightResponse represents the response for /insights
type InsightResponse struct {
	Industry          string              `json:"industry"`
	SalaryRanges      []types.SalaryRange `json:"salaryRanges"`
	GrowthRate        float64             `json:"growthRate"`
	DemandLevel       types.DemandLevel   `json:"demandLevel"`
	TopSkills         []string            `json:"topSkills"`
	MarketOutlook     types.MarketOutlook `json:"marketOutlook"`
	KeyTrends         []string            `json:"keyTrends"`
	RecommendedSkills []string            `json:"recommendedSkills"`
	LastUpdated       time.Time           `json:"lastUpdated"`
	NextUpdate        time.Time           `json:"nextUpdate"`
}

// handleGetInsights returns the cached insight for the learner's industry.
// Onboarding persists profile and insight together, so the row normally
// exists; if it is missing (e.g. the industry row was deleted), it is
// regenerated on the spot.
func (s *Server) handleGetInsights(w http.ResponseWriter, r *http.Request) {
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

	insight, err := s.db.GetInsight(r.Context(), profile.Industry)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if insight == nil {
		payload, err := s.generateInsight(r.Context(), profile.Industry)
		if err != nil {
			log.Printf("Insight generation failed for %q: %v", profile.Industry, err)
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		insight, err = s.db.UpsertInsight(r.Context(), profile.Industry, payload)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, insightResponse(insight))
}

func insightResponse(i *db.IndustryInsight) InsightResponse {
	return InsightResponse{
		Industry:          i.Industry,
		SalaryRanges:      i.SalaryRanges,
		GrowthRate:        i.GrowthRate,
		DemandLevel:       i.DemandLevel,
		TopSkills:         i.TopSkills,
		MarketOutlook:     i.MarketOutlook,
		KeyTrends:         i.KeyTrends,
		RecommendedSkills: i.RecommendedSkills,
		LastUpdated:       i.LastUpdated,
		NextUpdate:        i.NextUpdate,
	}
}
