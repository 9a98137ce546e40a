// Package server provides the HTTP REST API for the career coach.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/career-coach/internal/insights"
	"github.com/jonathan/career-coach/internal/quiz"
	"github.com/jonathan/career-coach/internal/resume"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrProfileRequired indicates the learner has not completed onboarding,
// which the requested operation depends on.
type ErrProfileRequired struct{}

func (e *ErrProfileRequired) Error() string {
	return "profile not found: complete onboarding first"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Upstream completion failures and unusable model output map to 502 so
// clients can distinguish them from faults in this service.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrProfileRequired:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	}

	var (
		insightAPIErr   *insights.APICallError
		insightParseErr *insights.ParseError
		insightValErr   *insights.ValidationError
		quizAPIErr      *quiz.APICallError
		quizParseErr    *quiz.ParseError
		quizValErr      *quiz.ValidationError
		resumeAPIErr    *resume.APICallError
		resumeEmptyErr  *resume.EmptyResultError
	)
	// Request-body validation is handled at the handler boundary, so any
	// generation-package error reaching here describes the upstream model:
	// the call failed, or its output could not be parsed or validated.
	switch {
	case errors.As(err, &insightAPIErr), errors.As(err, &quizAPIErr), errors.As(err, &resumeAPIErr):
		return http.StatusBadGateway
	case errors.As(err, &insightParseErr), errors.As(err, &quizParseErr):
		return http.StatusBadGateway
	case errors.As(err, &insightValErr), errors.As(err, &quizValErr), errors.As(err, &resumeEmptyErr):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
