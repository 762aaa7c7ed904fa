package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeLimit_Valid(t *testing.T) {
	o, err := MakeLimit(1, Buy, 100, "TSLA", 17500, DefaultTIF)
	require.NoError(t, err)
	assert.Equal(t, ID(1), o.ID())
	assert.Equal(t, Quantity(100), o.OpenQty())
	assert.Equal(t, Pending, o.Status())
	assert.Equal(t, Sell, o.OppositeSide())
}

func TestMakeLimit_RejectsZeroPrice(t *testing.T) {
	_, err := MakeLimitWith(1, Buy, 100, "TSLA", 0, DefaultTIF, StandardChain())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit price")
}

func TestMakeMarket_RejectsZeroQty(t *testing.T) {
	_, err := MakeMarketWith(1, Buy, 0, "TSLA", DefaultTIF, StandardChain())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Quantity")
}

func TestMakeStopLimit_RequiresBothPrices(t *testing.T) {
	chain := StandardChain()
	_, err := MakeStopLimitWith(1, Sell, 10, "TSLA", 100, 0, DefaultTIF, chain)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stop price")
}

func TestSetDefaultValidator(t *testing.T) {
	prev := DefaultValidator()
	defer SetDefaultValidator(prev)

	SetDefaultValidator(StandardChain())
	_, err := MakeLimit(1, Buy, 0, "TSLA", 100, DefaultTIF)
	require.Error(t, err)
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, Sell, Buy.Opposite())
	assert.Equal(t, Buy, Sell.Opposite())
}
