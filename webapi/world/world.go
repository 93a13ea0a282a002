// Package world exposes each upstream source over its own HTTP endpoint.
package world

import (
	"github.com/gofiber/fiber/v2"

	worldsvc "worldinfo/pkg/service/world"
	"worldinfo/webapi/common"
)

// CountryQuery carries the /countries query parameters.
type CountryQuery struct {
	Country string `query:"country" validate:"required"`
	Code    string `query:"code" validate:"omitempty,len=2,alpha"`
}

// ExchangeQuery carries the /exchange-rate query parameters.
type ExchangeQuery struct {
	Currency string `query:"currency" validate:"required,len=3,alpha"`
}

// NewsQuery carries the /news query parameters.
type NewsQuery struct {
	Country string `query:"country" validate:"required"`
}

// Routes registers the single-resource endpoints.
func Routes(app *fiber.App, svc *worldsvc.Service) {
	app.Get("/randomuser", GetRandomUser(svc))
	app.Get("/countries", GetCountry(svc))
	app.Get("/exchange-rate", GetExchangeRate(svc))
	app.Get("/news", GetNews(svc))
}

// GetRandomUser returns a handler fetching one random person.
// @Summary Fetch a random person
// @Description Fetch one random person from the person provider
// @Tags world
// @Produce json
// @Success 200 {object} domain.PersonInfo
// @Failure 500 {object} common.ProblemDetails
// @Router /randomuser [get]
func GetRandomUser(svc *worldsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		person, err := svc.RandomPerson(c.Context())
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(person)
	}
}

// GetCountry returns a handler for country lookup.
// @Summary Look up a country
// @Description Look up a country by name, optionally with its ISO alpha-2 code
// @Tags world
// @Produce json
// @Param country query string true "Country name"
// @Param code query string false "ISO-3166 alpha-2 code"
// @Success 200 {object} domain.CountryInfo
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /countries [get]
func GetCountry(svc *worldsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := common.BindQueryAndValidate[CountryQuery](c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		info, err := svc.Country(c.Context(), q.Country, q.Code)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(info)
	}
}

// GetExchangeRate returns a handler for USD/KZT rate lookup.
// @Summary Fetch exchange rates
// @Description Fetch the USD and KZT rates for a base currency
// @Tags world
// @Produce json
// @Param currency query string true "ISO-4217 currency code"
// @Success 200 {object} domain.ExchangeInfo
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /exchange-rate [get]
func GetExchangeRate(svc *worldsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := common.BindQueryAndValidate[ExchangeQuery](c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		info, err := svc.ExchangeRates(c.Context(), q.Currency)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(info)
	}
}

// GetNews returns a handler fetching up to five articles for a country.
// @Summary Fetch news
// @Description Fetch up to five articles for a country or topic
// @Tags world
// @Produce json
// @Param country query string true "Country or topic"
// @Success 200 {array} domain.NewsItem
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /news [get]
func GetNews(svc *worldsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := common.BindQueryAndValidate[NewsQuery](c)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		items, err := svc.News(c.Context(), q.Country)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(items)
	}
}
