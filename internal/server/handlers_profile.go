package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/career-coach/internal/db"
	"github.com/jonathan/career-coach/internal/insights"
	"github.com/jonathan/career-coach/internal/server/middleware"
	"github.com/jonathan/career-coach/internal/types"
)

// ProfileResponse represents the response for /profile
type ProfileResponse struct {
	Industry       string   `json:"industry"`
	Specialization string   `json:"specialization,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Experience     int      `json:"experience"`
	Skills         []string `json:"skills"`
}

// handleGetProfile returns the authenticated learner's profile
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
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
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, profileResponse(profile))
}

// handleUpdateProfile creates or replaces the learner's profile. When the
// chosen industry has no cached insight yet, one is generated first and both
// rows are written in a single transaction, so onboarding never completes
// against an industry with no insight data.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, extractValidationErrors(err))
		return
	}

	input := &db.ProfileUpdateInput{
		UserID:         userID,
		Industry:       req.Industry,
		Specialization: req.Specialization,
		Bio:            req.Bio,
		Experience:     req.Experience,
		Skills:         req.Skills,
	}

	// The completion call happens before the transaction opens; only the
	// resulting rows are written inside it.
	existing, err := s.db.GetInsight(r.Context(), req.Industry)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if existing == nil {
		payload, err := s.generateInsight(r.Context(), req.Industry)
		if err != nil {
			log.Printf("Insight generation failed for %q: %v", req.Industry, err)
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		input.Insight = payload
	}

	profile, err := s.db.UpsertProfileWithInsight(r.Context(), input)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profileResponse(profile))
}

// generateInsight runs the insight pipeline for an industry, collapsing
// concurrent calls for the same industry into one completion request.
func (s *Server) generateInsight(ctx context.Context, industry string) (*types.IndustryInsight, error) {
	v, err, _ := s.insightFlight.Do(industry, func() (interface{}, error) {
		return insights.Generate(ctx, s.llmClient, industry)
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.IndustryInsight), nil
}

func profileResponse(p *db.Profile) ProfileResponse {
	return ProfileResponse{
		Industry:       p.Industry,
		Specialization: p.Specialization,
		Bio:            p.Bio,
		Experience:     p.Experience,
		Skills:         p.Skills,
	}
}
