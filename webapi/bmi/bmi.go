// Package bmi exposes the legacy BMI calculator endpoint.
package bmi

import (
	"math"

	"github.com/gofiber/fiber/v2"

	"worldinfo/pkg/bmi"
	"worldinfo/pkg/domain"
	"worldinfo/webapi/common"
)

// Request carries the calculator inputs: weight in kg, height in cm.
type Request struct {
	Weight float64 `json:"weight" form:"weight"`
	Height float64 `json:"height" form:"height"`
}

// Response is the computed index, rounded to two decimals, plus its category.
type Response struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

// Routes registers the calculator endpoint.
func Routes(app *fiber.App) {
	app.Post("/calculate-bmi", Calculate())
}

// Calculate returns the BMI handler.
// @Summary Calculate BMI
// @Description Compute the body-mass index for a weight (kg) and height (cm)
// @Tags bmi
// @Accept json
// @Produce json
// @Param request body Request true "Weight and height"
// @Success 200 {object} Response
// @Failure 400 {object} common.ProblemDetails
// @Router /calculate-bmi [post]
func Calculate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req Request
		if err := c.BodyParser(&req); err != nil {
			return common.ErrorJSON(c, domain.NewValidationError("body", err.Error()))
		}
		if err := bmi.Validate(req.Weight, req.Height); err != nil {
			return common.ErrorJSON(c, err)
		}

		value := bmi.Calculate(req.Weight, req.Height)
		return c.JSON(Response{
			BMI:      math.Round(value*100) / 100,
			Category: bmi.Categorize(value),
		})
	}
}
