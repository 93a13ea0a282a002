package normalize

import (
	"strconv"

	"worldinfo/pkg/domain"
)

// Exchange extracts the USD and KZT rates from a full rates table, formatted
// to exactly two decimal places. A missing rate becomes the NA sentinel.
func Exchange(base string, rates map[string]float64) domain.ExchangeInfo {
	return domain.ExchangeInfo{
		Base: base,
		USD:  formatRate(rates, "USD"),
		KZT:  formatRate(rates, "KZT"),
	}
}

func formatRate(rates map[string]float64, code string) string {
	rate, ok := rates[code]
	if !ok {
		return domain.NA
	}
	return strconv.FormatFloat(rate, 'f', 2, 64)
}
