// Package aggregate exposes the composite pipeline endpoint.
package aggregate

import (
	"github.com/gofiber/fiber/v2"

	aggsvc "worldinfo/pkg/service/aggregate"
	"worldinfo/webapi/common"
)

// Routes registers the aggregate endpoint.
func Routes(app *fiber.App, svc *aggsvc.Service) {
	app.Get("/api/random-user", GetComposite(svc))
}

// GetComposite returns a handler running the full aggregation pipeline.
// The response is a best-effort composite: each slot carries data or a typed
// failure annotation, and the request only fails outright when the person
// stage does, since every other stage consumes its output.
// @Summary Aggregate person, country, exchange and news
// @Description Run the person → country → exchange pipeline with a concurrent news branch and return per-slot results
// @Tags aggregate
// @Produce json
// @Success 200 {object} domain.AggregateResult
// @Failure 500 {object} common.ProblemDetails
// @Router /api/random-user [get]
func GetComposite(svc *aggsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Compose(c.Context())
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(res)
	}
}
