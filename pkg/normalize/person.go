// Package normalize contains the pure mapping functions that collapse raw
// upstream payloads into the canonical shapes in pkg/domain. No I/O happens
// here; provider-specific shape never leaks past this package.
package normalize

import (
	"errors"
	"fmt"
	"strings"

	"worldinfo/pkg/domain"
)

// ErrMissingAge reports a person payload without dob.age. Age is required
// downstream, so it is propagated as a failure instead of being invented.
var ErrMissingAge = errors.New("person payload missing dob.age")

// RandomUserResult mirrors one entry of randomuser.me's results array.
type RandomUserResult struct {
	Gender string `json:"gender"`
	Name   struct {
		First string `json:"first"`
		Last  string `json:"last"`
	} `json:"name"`
	Location struct {
		Street struct {
			Number int    `json:"number"`
			Name   string `json:"name"`
		} `json:"street"`
		City    string `json:"city"`
		Country string `json:"country"`
	} `json:"location"`
	Dob struct {
		Date string `json:"date"`
		Age  *int   `json:"age"`
	} `json:"dob"`
	Nat     string `json:"nat"`
	Picture struct {
		Large string `json:"large"`
	} `json:"picture"`
}

// Person maps a raw random-user entry to the canonical PersonInfo. The
// nationality code is lower-cased for flag-URL construction downstream.
func Person(raw RandomUserResult) (*domain.PersonInfo, error) {
	if raw.Dob.Age == nil {
		return nil, ErrMissingAge
	}

	address := strings.TrimSpace(fmt.Sprintf("%d %s", raw.Location.Street.Number, raw.Location.Street.Name))
	return &domain.PersonInfo{
		FirstName:   raw.Name.First,
		LastName:    raw.Name.Last,
		Gender:      raw.Gender,
		Age:         *raw.Dob.Age,
		DateOfBirth: raw.Dob.Date,
		City:        raw.Location.City,
		CountryName: raw.Location.Country,
		Address:     address,
		CountryCode: strings.ToLower(raw.Nat),
		ProfilePic:  raw.Picture.Large,
	}, nil
}
