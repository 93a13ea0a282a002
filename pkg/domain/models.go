// Package domain holds the canonical shapes exchanged between the upstream
// providers, the aggregation service and the HTTP layer. Every value here is
// request-scoped and immutable after construction; nothing is persisted.
package domain

// NA is the sentinel used for genuinely missing country/exchange fields.
// A no-match from an upstream is a degraded result, not an error.
const NA = "N/A"

// PersonInfo is the canonical random-person shape. Field names on the wire
// follow the public frontend contract.
type PersonInfo struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Gender      string `json:"gender"`
	Age         int    `json:"age"`
	DateOfBirth string `json:"dob"`
	City        string `json:"city"`
	CountryName string `json:"country"`
	Address     string `json:"address"`
	// CountryCode is the lowercase ISO-3166 alpha-2 code; may be empty when
	// the upstream omits the nationality.
	CountryCode string `json:"countryCode,omitempty"`
	ProfilePic  string `json:"profilePic,omitempty"`
}

// CountryInfo is the canonical country shape, identical regardless of which
// of the two country providers answered.
type CountryInfo struct {
	Name         string `json:"name"`
	Capital      string `json:"capital"`
	Languages    string `json:"languages"`
	CurrencyCode string `json:"currencyCode"`
	FlagURL      string `json:"flag,omitempty"`
}

// ExchangeInfo carries the USD and KZT rates for a base currency, each
// formatted to two decimal places or NA when the upstream omits the rate.
type ExchangeInfo struct {
	Base string `json:"base"`
	USD  string `json:"usd"`
	KZT  string `json:"kzt"`
}

// NewsItem is one upstream article. Description and ImageURL are genuinely
// nullable upstream and stay null on the wire rather than being fabricated.
type NewsItem struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
	ImageURL    *string `json:"image"`
	PublishedAt string  `json:"publishedAt"`
}

// SlotError annotates a failed slot of an aggregate result.
type SlotError struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

// Slot is one independently present-or-failed field of an aggregate result.
// A slot is atomic: either Data is fully populated or Error explains why not.
type Slot[T any] struct {
	Data  *T         `json:"data,omitempty"`
	Error *SlotError `json:"error,omitempty"`
}

// OK returns a successful slot.
func OK[T any](v T) Slot[T] { return Slot[T]{Data: &v} }

// Failed returns a failed slot annotated with the error's source.
func Failed[T any](err error) Slot[T] {
	return Slot[T]{Error: &SlotError{Source: ErrorSource(err), Message: err.Error()}}
}

// AggregateResult is the composite of the four pipeline stages.
type AggregateResult struct {
	User     Slot[PersonInfo]   `json:"user"`
	Country  Slot[CountryInfo]  `json:"country"`
	Exchange Slot[ExchangeInfo] `json:"exchange"`
	News     Slot[[]NewsItem]   `json:"news"`
}
