package moneyops_test

import (
	"testing"

	"github.com/ryabkov/cbrcourse/pkg/moneyops"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDivTruncatesEveryStep(t *testing.T) {
	// 1/89.56 = 0.0111657... -> усекается до 0.0111, не округляется до 0.0112
	got := moneyops.Div(dec("1"), dec("89.56"))
	assert.True(t, got.Equal(dec("0.0111")), "got %s", got)

	got = moneyops.Div(dec("100"), dec("15.99"))
	assert.True(t, got.Equal(dec("6.2539")), "got %s", got)
}

func TestArithmetic(t *testing.T) {
	assert.True(t, moneyops.Add(dec("0.00005"), dec("0.00005")).Equal(dec("0.0001")))
	assert.True(t, moneyops.Sub(dec("89.56"), dec("75.50")).Equal(dec("14.06")))
	assert.True(t, moneyops.Mul(dec("0.333"), dec("0.333")).Equal(dec("0.1108")))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, moneyops.Compare(dec("1.00001"), dec("1.00002")))
	assert.Equal(t, -1, moneyops.Compare(dec("1.0001"), dec("1.0002")))
	assert.Equal(t, 1, moneyops.Compare(dec("2"), dec("1.9999")))

	assert.True(t, moneyops.Eq(dec("1.0000"), dec("1")))
	assert.True(t, moneyops.Gt(dec("1.0001"), dec("1")))
	assert.True(t, moneyops.Gte(dec("1"), dec("1")))
	assert.True(t, moneyops.Lt(dec("0.9999"), dec("1")))
	assert.True(t, moneyops.Lte(dec("1"), dec("1.0001")))
}
