// Package config loads the process-wide configuration once at startup into an
// immutable tree that is passed explicitly to every component.
package config

import (
	"time"
)

type Server struct {
	Host string `envconfig:"HOST" default:""`
	Port int    `envconfig:"PORT" default:"3000"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[worldinfo]"`
}

// RateLimit throttles inbound requests; upstream calls are never throttled.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type RandomUser struct {
	ApiUrl      string        `envconfig:"API_URL" default:"https://randomuser.me/api/"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

// Countrylayer is country provider A. The provider is selected at startup:
// A when ApiKey is set, B (restcountries) otherwise.
type Countrylayer struct {
	ApiKey      string        `envconfig:"API_KEY"`
	ApiUrl      string        `envconfig:"API_URL" default:"https://api.countrylayer.com/v2"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

// RESTCountries is country provider B; it needs no credential.
type RESTCountries struct {
	ApiUrl      string        `envconfig:"API_URL" default:"https://restcountries.com/v3.1"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

type ExchangeRateApi struct {
	ApiKey      string        `envconfig:"API_KEY"`
	ApiUrl      string        `envconfig:"API_URL" default:"https://v6.exchangerate-api.com/v6"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

type NewsApi struct {
	ApiKey      string        `envconfig:"API_KEY"`
	ApiUrl      string        `envconfig:"API_URL" default:"https://newsapi.org/v2"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	PageSize    int           `envconfig:"PAGE_SIZE" default:"5"`
}

type Providers struct {
	RandomUser    *RandomUser      `envconfig:"RANDOMUSER"`
	Countrylayer  *Countrylayer    `envconfig:"COUNTRYLAYER"`
	RESTCountries *RESTCountries   `envconfig:"RESTCOUNTRIES"`
	ExchangeRate  *ExchangeRateApi `envconfig:"EXCHANGERATE"`
	News          *NewsApi         `envconfig:"NEWS"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Providers *Providers `envconfig:"PROVIDER"`
}
