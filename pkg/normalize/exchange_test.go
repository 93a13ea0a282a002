package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"worldinfo/pkg/domain"
)

func TestExchangeFormatsToTwoDecimals(t *testing.T) {
	info := Exchange("EUR", map[string]float64{"USD": 1.0762, "KZT": 515.9})

	assert.Equal(t, "EUR", info.Base)
	assert.Equal(t, "1.08", info.USD)
	assert.Equal(t, "515.90", info.KZT)
}

func TestExchangeMissingRateIsSentinel(t *testing.T) {
	info := Exchange("EUR", map[string]float64{"USD": 1.0762})
	assert.Equal(t, "1.08", info.USD)
	assert.Equal(t, domain.NA, info.KZT)

	info = Exchange("EUR", nil)
	assert.Equal(t, domain.NA, info.USD)
	assert.Equal(t, domain.NA, info.KZT)
}
