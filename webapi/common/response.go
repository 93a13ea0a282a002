// Package common holds the response and validation helpers shared by all
// handler packages.
package common

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"worldinfo/pkg/domain"
)

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// ProblemDetailsJSON writes an RFC 9457 problem response.
func ProblemDetailsJSON(c *fiber.Ctx, status int, title, detail string) error {
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	return c.Status(status).JSON(pd, "application/problem+json")
}

// ErrorToStatusCode maps the error taxonomy to HTTP status codes.
func ErrorToStatusCode(err error) int {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest
	}
	var de *domain.DependencyError
	if errors.As(err, &de) {
		return fiber.StatusFailedDependency
	}
	return fiber.StatusInternalServerError
}

// ErrorJSON converts a taxonomy error into the matching problem response.
// Upstream failures are redacted to the provider identity and status so no
// upstream payload or secret is ever echoed to the caller.
func ErrorJSON(c *fiber.Ctx, err error) error {
	status := ErrorToStatusCode(err)

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ProblemDetailsJSON(c, status, "Invalid request", ve.Error())
	}

	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		detail := fmt.Sprintf("upstream provider %s failed", ue.Provider)
		if ue.Status != 0 {
			detail = fmt.Sprintf("upstream provider %s returned status %d", ue.Provider, ue.Status)
		}
		return ProblemDetailsJSON(c, status, "Upstream request failed", detail)
	}

	var de *domain.DependencyError
	if errors.As(err, &de) {
		return ProblemDetailsJSON(c, status, "Dependency unmet", de.Error())
	}

	return ProblemDetailsJSON(c, status, "Internal Server Error", "")
}

// BindQueryAndValidate parses the query string into T and validates it with
// go-playground/validator. Violations come back as ValidationError so the
// caller maps them to 400 through ErrorJSON.
func BindQueryAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.QueryParser(&input); err != nil {
		return nil, domain.NewValidationError("query", err.Error())
	}
	if err := validate.Struct(&input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, domain.NewValidationError(fe.Field(), fmt.Sprintf("failed %q validation", fe.Tag()))
		}
		return nil, domain.NewValidationError("query", err.Error())
	}
	return &input, nil
}

var validate = validator.New()
