package client

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradekit/binfut/futures/types"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// btcParams mirrors the BTCUSDT perpetual filters.
func btcParams() types.InstrumentParams {
	return types.InstrumentParams{
		Symbol:            "BTCUSDT",
		PricePrecision:    1,
		QuantityPrecision: 3,
		TickSize:          d("0.1"),
		StepSize:          d("0.001"),
		MinQty:            d("0.001"),
		MinNotional:       d("100"),
		LastPrice:         d("50000"),
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		unit      string
		precision int
		mode      RoundMode
		want      string
	}{
		{"round down to step", "0.0015", "0.001", 3, RoundDown, "0.001"},
		{"round up to step", "0.0015", "0.001", 3, RoundUp, "0.002"},
		{"round nearest up", "0.0016", "0.001", 3, RoundNearest, "0.002"},
		{"round nearest down", "0.0014", "0.001", 3, RoundNearest, "0.001"},
		{"already aligned", "0.002", "0.001", 3, RoundDown, "0.002"},
		{"tick size price", "49000.07", "0.1", 1, RoundDown, "49000"},
		{"coarse tick", "101.3", "0.5", 1, RoundDown, "101"},
		{"zero precision truncates", "7.9", "0.25", 0, RoundDown, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Quantize(d(tt.value), d(tt.unit), tt.precision, tt.mode)
			require.NoError(t, err)
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestQuantizeRoundDownProperties(t *testing.T) {
	value := d("0.03791")
	unit := d("0.001")

	got, err := Quantize(value, unit, 3, RoundDown)
	require.NoError(t, err)

	assert.True(t, got.LessThanOrEqual(value), "round-down result must not exceed input")
	assert.True(t, got.Mod(unit).IsZero(), "result must be an exact multiple of the unit")

	again, err := Quantize(got, unit, 3, RoundDown)
	require.NoError(t, err)
	assert.True(t, again.Equal(got), "quantize must be idempotent")
}

func TestQuantizeInvalidInput(t *testing.T) {
	var invalid *types.InvalidParameterError

	_, err := Quantize(d("0"), d("0.001"), 3, RoundDown)
	assert.ErrorAs(t, err, &invalid)

	_, err = Quantize(d("1"), d("0"), 3, RoundDown)
	assert.ErrorAs(t, err, &invalid)

	_, err = Quantize(d("1"), d("0.001"), -1, RoundDown)
	assert.ErrorAs(t, err, &invalid)
}

func TestResolveMarketOrder(t *testing.T) {
	order, err := ResolveOrder(types.OrderIntent{
		Symbol:    "BTCUSDT",
		Direction: types.DirectionLong,
		Quantity:  d("0.0035"),
		Kind:      types.KindMarket,
	}, btcParams())
	require.NoError(t, err)

	assert.Equal(t, types.SideBuy, order.Side)
	assert.Equal(t, "MARKET", order.Type)
	assert.True(t, order.Quantity.Equal(d("0.003")))
	assert.True(t, order.Price.IsZero())
	assert.NotEmpty(t, order.ClientOrderID)
}

func TestResolveMarketOrderShortSells(t *testing.T) {
	order, err := ResolveOrder(types.OrderIntent{
		Symbol:    "BTCUSDT",
		Direction: types.DirectionShort,
		Quantity:  d("0.01"),
		Kind:      types.KindMarket,
	}, btcParams())
	require.NoError(t, err)
	assert.Equal(t, types.SideSell, order.Side)
}

func TestResolveLimitOrderPriceRounding(t *testing.T) {
	params := btcParams()

	// BUY rounds the price down so the order never pays more than asked.
	buy, err := ResolveOrder(types.OrderIntent{
		Symbol:     "BTCUSDT",
		Direction:  types.DirectionLong,
		Quantity:   d("0.01"),
		Kind:       types.KindLimit,
		LimitPrice: d("50000.17"),
	}, params)
	require.NoError(t, err)
	assert.True(t, buy.Quantity.Equal(d("0.01")))
	assert.True(t, buy.Price.Equal(d("50000.1")), "got %s", buy.Price)
	assert.Equal(t, types.TifGTC, buy.TimeInForce)

	// SELL rounds up so the order never sells cheaper than asked.
	sell, err := ResolveOrder(types.OrderIntent{
		Symbol:     "BTCUSDT",
		Direction:  types.DirectionShort,
		Quantity:   d("0.01"),
		Kind:       types.KindLimit,
		LimitPrice: d("50000.17"),
	}, params)
	require.NoError(t, err)
	assert.True(t, sell.Price.Equal(d("50000.2")), "got %s", sell.Price)
}

func TestResolveBelowMinQty(t *testing.T) {
	_, err := ResolveOrder(types.OrderIntent{
		Symbol:    "BTCUSDT",
		Direction: types.DirectionLong,
		Quantity:  d("0.0009"),
		Kind:      types.KindMarket,
	}, btcParams())

	var below *types.BelowMinimumSizeError
	require.ErrorAs(t, err, &below)
	assert.Equal(t, "BTCUSDT", below.Symbol)
}

func TestResolveBelowMinNotional(t *testing.T) {
	// 0.001 BTC at 50000 = 50 USDT, under the 100 USDT floor.
	_, err := ResolveOrder(types.OrderIntent{
		Symbol:    "BTCUSDT",
		Direction: types.DirectionLong,
		Quantity:  d("0.001"),
		Kind:      types.KindMarket,
	}, btcParams())

	var below *types.BelowMinimumSizeError
	require.ErrorAs(t, err, &below)
}

func TestResolveProtectiveStopLoss(t *testing.T) {
	params := btcParams()
	ref := d("50000")

	tests := []struct {
		name      string
		direction types.Direction
		kind      types.OrderKind
		wantStop  string
		wantSide  types.Side
	}{
		{"long stop loss 2pct", types.DirectionLong, types.KindStopLoss, "49000", types.SideSell},
		{"short stop loss 2pct", types.DirectionShort, types.KindStopLoss, "51000", types.SideBuy},
		{"long take profit 2pct", types.DirectionLong, types.KindTakeProfit, "51000", types.SideSell},
		{"short take profit 2pct", types.DirectionShort, types.KindTakeProfit, "49000", types.SideBuy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := ResolveProtectiveOrder(types.OrderIntent{
				Symbol:        "BTCUSDT",
				Direction:     tt.direction,
				Kind:          tt.kind,
				OffsetPercent: d("2"),
			}, params, ref)
			require.NoError(t, err)

			assert.True(t, order.StopPrice.Equal(d(tt.wantStop)), "got %s want %s", order.StopPrice, tt.wantStop)
			assert.Equal(t, tt.wantSide, order.Side)
			assert.True(t, order.ClosePosition)
			assert.True(t, order.PriceProtect)
			assert.Equal(t, types.WorkingMarkPrice, order.WorkingType)
			assert.Equal(t, types.TifGTEGTC, order.TimeInForce)
		})
	}
}

func TestResolveProtectiveOrderTypes(t *testing.T) {
	params := btcParams()

	sl, err := ResolveProtectiveOrder(types.OrderIntent{
		Symbol: "BTCUSDT", Direction: types.DirectionLong,
		Kind: types.KindStopLoss, OffsetPercent: d("1"),
	}, params, d("50000"))
	require.NoError(t, err)
	assert.Equal(t, "STOP_MARKET", sl.Type)

	tp, err := ResolveProtectiveOrder(types.OrderIntent{
		Symbol: "BTCUSDT", Direction: types.DirectionLong,
		Kind: types.KindTakeProfit, OffsetPercent: d("1"),
	}, params, d("50000"))
	require.NoError(t, err)
	assert.Equal(t, "TAKE_PROFIT_MARKET", tp.Type)
}

func TestResolveProtectiveRoundsAwayFromReference(t *testing.T) {
	// 1% of 33333 is 333.33; the raw triggers land between ticks.
	params := btcParams()
	ref := d("33333")

	longSL, err := ResolveProtectiveOrder(types.OrderIntent{
		Symbol: "BTCUSDT", Direction: types.DirectionLong,
		Kind: types.KindStopLoss, OffsetPercent: d("1"),
	}, params, ref)
	require.NoError(t, err)
	// raw 32999.67 rounds down to 32999.6, further from the reference.
	assert.True(t, longSL.StopPrice.Equal(d("32999.6")), "got %s", longSL.StopPrice)
	assert.True(t, longSL.StopPrice.LessThan(ref))

	shortSL, err := ResolveProtectiveOrder(types.OrderIntent{
		Symbol: "BTCUSDT", Direction: types.DirectionShort,
		Kind: types.KindStopLoss, OffsetPercent: d("1"),
	}, params, ref)
	require.NoError(t, err)
	// raw 33666.33 rounds up to 33666.4.
	assert.True(t, shortSL.StopPrice.Equal(d("33666.4")), "got %s", shortSL.StopPrice)
	assert.True(t, shortSL.StopPrice.GreaterThan(ref))
}

func TestResolveProtectiveInvalidOffset(t *testing.T) {
	params := btcParams()
	var invalid *types.InvalidParameterError

	_, err := ResolveProtectiveOrder(types.OrderIntent{
		Symbol: "BTCUSDT", Direction: types.DirectionLong,
		Kind: types.KindStopLoss, OffsetPercent: d("0"),
	}, params, d("50000"))
	require.ErrorAs(t, err, &invalid)

	_, err = ResolveProtectiveOrder(types.OrderIntent{
		Symbol: "BTCUSDT", Direction: types.DirectionLong,
		Kind: types.KindStopLoss, OffsetPercent: d("-2"),
	}, params, d("50000"))
	require.ErrorAs(t, err, &invalid)

	// 100% offset drives a long stop loss to zero.
	_, err = ResolveProtectiveOrder(types.OrderIntent{
		Symbol: "BTCUSDT", Direction: types.DirectionLong,
		Kind: types.KindStopLoss, OffsetPercent: d("100"),
	}, params, d("50000"))
	require.ErrorAs(t, err, &invalid)
}

func TestResolveRejectsKindMismatch(t *testing.T) {
	params := btcParams()
	var invalid *types.InvalidParameterError

	_, err := ResolveOrder(types.OrderIntent{
		Symbol: "BTCUSDT", Direction: types.DirectionLong,
		Quantity: d("0.01"), Kind: types.KindStopLoss,
	}, params)
	require.ErrorAs(t, err, &invalid)

	_, err = ResolveProtectiveOrder(types.OrderIntent{
		Symbol: "BTCUSDT", Direction: types.DirectionLong,
		Kind: types.KindMarket, OffsetPercent: d("1"),
	}, params, d("50000"))
	require.ErrorAs(t, err, &invalid)
}
