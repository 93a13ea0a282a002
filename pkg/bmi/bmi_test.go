package bmi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"worldinfo/pkg/domain"
)

func TestCalculate(t *testing.T) {
	assert.InDelta(t, 22.86, Calculate(70, 175), 0.01)
	assert.InDelta(t, 30.86, Calculate(100, 180), 0.01)
}

func TestCategorizeBoundaries(t *testing.T) {
	tests := []struct {
		bmi      float64
		expected string
	}{
		{16.0, Underweight},
		{18.49, Underweight},
		{18.5, Normal},
		{24.89, Normal},
		{24.9, Overweight},
		{29.89, Overweight},
		{29.9, Obese},
		{40.0, Obese},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Categorize(tt.bmi), "bmi %.2f", tt.bmi)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(70, 175))

	var ve *domain.ValidationError
	assert.ErrorAs(t, Validate(0, 175), &ve)
	assert.Equal(t, "weight", ve.Field)
	assert.ErrorAs(t, Validate(70, -1), &ve)
	assert.Equal(t, "height", ve.Field)
}
