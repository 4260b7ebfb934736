package emissions

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/scope3-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestTotal_YFormato(t *testing.T) {
	total := Total(dec("500"), dec("0.0015"))
	assert.True(t, total.Equal(dec("0.75")))
	assert.Equal(t, "0.75", Format(total))
	assert.Equal(t, "1.50", Format(Total(dec("150"), dec("0.01"))))
	assert.Equal(t, "0.00", Format(Total(dec("10"), decimal.Zero)))
}

func TestRound_MitadLejosDeCero(t *testing.T) {
	assert.Equal(t, "0.13", Format(Round(dec("0.125"))))
	assert.Equal(t, "-0.13", Format(Round(dec("-0.125"))))
	assert.Equal(t, "2.00", Format(Round(dec("1.999"))))
}

func TestParseNumber(t *testing.T) {
	d, ok := ParseNumber("  12.5 ")
	assert.True(t, ok)
	assert.True(t, d.Equal(dec("12.5")))

	for _, raw := range []string{"", "   ", "abc", "12,5", "1e"} {
		_, ok := ParseNumber(raw)
		assert.False(t, ok, raw)
	}

	assert.True(t, ParseOrZero("x").IsZero())
	assert.True(t, ParseOrZero("3").Equal(dec("3")))
}

func TestSum(t *testing.T) {
	records := []entity.EmissionRecord{
		{Quantity: dec("500"), EmissionFactor: dec("0.0015")},
		{Quantity: dec("100"), EmissionFactor: dec("0.01")},
		{Quantity: dec("10"), EmissionFactor: dec("0.2")},
	}
	assert.Equal(t, "3.75", Format(Sum(records)))
	assert.True(t, Sum(nil).IsZero())
}
