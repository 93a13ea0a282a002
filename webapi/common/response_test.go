package common

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"worldinfo/pkg/domain"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", domain.NewValidationError("currency", "required"), fiber.StatusBadRequest},
		{"upstream", &domain.UpstreamError{Provider: "newsapi", Status: 500}, fiber.StatusInternalServerError},
		{"upstream transport", &domain.UpstreamError{Provider: "newsapi"}, fiber.StatusInternalServerError},
		{"dependency", &domain.DependencyError{Stage: "exchange", DependsOn: "country"}, fiber.StatusFailedDependency},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorToStatusCode(tt.err))
		})
	}
}

func TestErrorSource(t *testing.T) {
	assert.Equal(t, "newsapi", domain.ErrorSource(&domain.UpstreamError{Provider: "newsapi"}))
	assert.Equal(t, "country", domain.ErrorSource(&domain.DependencyError{Stage: "exchange", DependsOn: "country"}))
	assert.Equal(t, "request", domain.ErrorSource(domain.NewValidationError("q", "missing")))
	assert.Equal(t, "internal", domain.ErrorSource(errors.New("boom")))
}
