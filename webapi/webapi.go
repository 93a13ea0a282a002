// Package webapi assembles the HTTP surface: single-resource endpoints in
// webapi/world, the composite pipeline in webapi/aggregate, the legacy BMI
// calculator in webapi/bmi, and shared helpers in webapi/common.
package webapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"worldinfo/pkg/app"
	"worldinfo/pkg/middleware"
	aggregateweb "worldinfo/webapi/aggregate"
	bmiweb "worldinfo/webapi/bmi"
	"worldinfo/webapi/common"
	worldweb "worldinfo/webapi/world"
)

// SetupApp initializes Fiber with middleware and all routes.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ErrorJSON(c, err)
		},
	})

	fiberApp.Use(middleware.RequestID())
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Inbound limiter only; upstream calls are never throttled.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if i := strings.Index(forwardedFor, ","); i != -1 {
					return strings.TrimSpace(forwardedFor[:i])
				}
				return strings.TrimSpace(forwardedFor)
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c, fiber.StatusTooManyRequests,
				"Too Many Requests", "rate limit exceeded")
		},
	}))

	fiberApp.Get("/swagger/*", swagger.HandlerDefault)

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("worldinfo API is running")
	})

	worldweb.Routes(fiberApp, a.World)
	aggregateweb.Routes(fiberApp, a.Aggregate)
	bmiweb.Routes(fiberApp)

	return fiberApp
}
