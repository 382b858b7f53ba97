package models

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	ErrorResponse
	Errors ValidationErrors `json:"errors"`
}

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient role")
)

type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationErrors enumerates every field a sample violates.
type ValidationErrors []FieldError

var _ error = ValidationErrors{}

func (v ValidationErrors) Error() string {
	var errs []string
	for _, failure := range v {
		errs = append(errs, fmt.Sprintf("%s-%s", failure.Field, failure.Description))
	}
	return strings.Join(errs, ", ")
}

func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, failure := range v {
		fields = append(fields, failure.Field)
	}
	return fields
}

type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %s", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

type NotificationError struct {
	Channel string
	Err     error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification via %s failed: %s", e.Channel, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }

type RecommendationGenerationError struct {
	Area string
	Err  error
}

func (e *RecommendationGenerationError) Error() string {
	return fmt.Sprintf("generating recommendation for %s failed: %s", e.Area, e.Err)
}

func (e *RecommendationGenerationError) Unwrap() error { return e.Err }

type HealthProbeError struct {
	Component string
	Err       error
}

func (e *HealthProbeError) Error() string {
	return fmt.Sprintf("health probe %s failed: %s", e.Component, e.Err)
}

func (e *HealthProbeError) Unwrap() error { return e.Err }
