//go:build unit

package money_test

import (
	"testing"

	"commission-tracker/internal/pkg/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatEUR(t *testing.T) {
	assert.Equal(t, "€ 49,99", money.FormatEUR(decimal.RequireFromString("49.99")))
	assert.Equal(t, "€ 13,50", money.FormatEUR(decimal.RequireFromString("13.5")))
	assert.Equal(t, "€ 0,00", money.FormatEUR(decimal.Zero))
}
