package client

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradekit/binfut/futures/types"
)

// RoundMode selects the rounding direction when aligning a value to a unit.
type RoundMode int

const (
	RoundDown RoundMode = iota
	RoundUp
	RoundNearest
)

var oneHundred = decimal.NewFromInt(100)

// Quantize aligns value to an integer multiple of unit, then truncates the
// result to precision fractional digits. The round-down result is always an
// exact multiple of unit and never exceeds value; quantizing an already
// aligned value returns it unchanged.
func Quantize(value, unit decimal.Decimal, precision int, mode RoundMode) (decimal.Decimal, error) {
	if precision < 0 {
		return decimal.Zero, &types.InvalidParameterError{Field: "precision", Reason: "must not be negative"}
	}
	if value.Sign() <= 0 {
		return decimal.Zero, &types.InvalidParameterError{Field: "value", Reason: "must be positive"}
	}
	if unit.Sign() <= 0 {
		return decimal.Zero, &types.InvalidParameterError{Field: "unit", Reason: "must be positive"}
	}

	steps := value.Div(unit)
	switch mode {
	case RoundDown:
		steps = steps.Floor()
	case RoundUp:
		steps = steps.Ceil()
	case RoundNearest:
		steps = steps.Round(0)
	default:
		return decimal.Zero, &types.InvalidParameterError{Field: "mode", Reason: "unknown round mode"}
	}

	return steps.Mul(unit).Truncate(int32(precision)), nil
}

// ResolveOrder turns a market or limit intent into exchange-valid fields.
// Quantity is rounded down to the step size; a limit price is rounded so the
// order is never worse than requested: down for BUY, up for SELL. Resolution
// fails locally, before anything touches the wire, when the rounded quantity
// falls under MinQty or the notional under MinNotional.
func ResolveOrder(intent types.OrderIntent, params types.InstrumentParams) (*types.ResolvedOrder, error) {
	if intent.Kind.Protective() {
		return nil, &types.InvalidParameterError{Field: "kind", Reason: "protective legs resolve via ResolveProtectiveOrder"}
	}
	if intent.Direction != types.DirectionLong && intent.Direction != types.DirectionShort {
		return nil, &types.InvalidParameterError{Field: "direction", Reason: "must be long or short"}
	}

	qty, err := Quantize(intent.Quantity, params.StepSize, params.QuantityPrecision, RoundDown)
	if err != nil {
		return nil, err
	}
	if qty.IsZero() || qty.LessThan(params.MinQty) {
		return nil, &types.BelowMinimumSizeError{
			Symbol:   params.Symbol,
			Quantity: qty.String(),
			Minimum:  params.MinQty.String(),
		}
	}

	side := intent.Direction.EntrySide()
	order := &types.ResolvedOrder{
		Symbol:        params.Symbol,
		Side:          side,
		PositionSide:  types.PositionBoth,
		Type:          intent.Kind.ExchangeType(),
		Quantity:      qty,
		ClientOrderID: newClientOrderID(),
	}

	var reference decimal.Decimal
	switch intent.Kind {
	case types.KindMarket:
		reference = params.LastPrice
	case types.KindLimit:
		if intent.LimitPrice.Sign() <= 0 {
			return nil, &types.InvalidParameterError{Field: "limitPrice", Reason: "must be positive"}
		}
		mode := RoundDown
		if side == types.SideSell {
			mode = RoundUp
		}
		price, err := Quantize(intent.LimitPrice, params.TickSize, params.PricePrecision, mode)
		if err != nil {
			return nil, err
		}
		order.Price = price
		order.TimeInForce = types.TifGTC
		reference = price
	default:
		return nil, &types.InvalidParameterError{Field: "kind", Reason: "must be market or limit"}
	}

	if reference.Sign() > 0 && params.MinNotional.Sign() > 0 {
		notional := qty.Mul(reference)
		if notional.LessThan(params.MinNotional) {
			return nil, &types.BelowMinimumSizeError{
				Symbol:   params.Symbol,
				Quantity: notional.String(),
				Minimum:  params.MinNotional.String(),
			}
		}
	}

	return order, nil
}

// ResolveProtectiveOrder builds a close-position stop-loss or take-profit
// trigger at offsetPercent away from referencePrice. The raw trigger:
//
//	long  stop-loss    reference * (1 - pct/100)
//	short stop-loss    reference * (1 + pct/100)
//	long  take-profit  reference * (1 + pct/100)
//	short take-profit  reference * (1 - pct/100)
//
// and the tick-size rounding always moves away from the reference, so the
// trigger is never tighter than requested. The order side is the one that
// closes the position.
func ResolveProtectiveOrder(intent types.OrderIntent, params types.InstrumentParams, referencePrice decimal.Decimal) (*types.ResolvedOrder, error) {
	if !intent.Kind.Protective() {
		return nil, &types.InvalidParameterError{Field: "kind", Reason: "must be stop_loss or take_profit"}
	}
	if intent.Direction != types.DirectionLong && intent.Direction != types.DirectionShort {
		return nil, &types.InvalidParameterError{Field: "direction", Reason: "must be long or short"}
	}
	if intent.OffsetPercent.Sign() <= 0 {
		return nil, &types.InvalidParameterError{Field: "offsetPercent", Reason: "must be positive"}
	}
	if referencePrice.Sign() <= 0 {
		return nil, &types.InvalidParameterError{Field: "referencePrice", Reason: "must be positive"}
	}

	factor := intent.OffsetPercent.Div(oneHundred)
	below := referencePrice.Mul(decimal.NewFromInt(1).Sub(factor))
	above := referencePrice.Mul(decimal.NewFromInt(1).Add(factor))

	var raw decimal.Decimal
	var mode RoundMode
	switch {
	case intent.Kind == types.KindStopLoss && intent.Direction == types.DirectionLong:
		raw, mode = below, RoundDown
	case intent.Kind == types.KindStopLoss && intent.Direction == types.DirectionShort:
		raw, mode = above, RoundUp
	case intent.Kind == types.KindTakeProfit && intent.Direction == types.DirectionLong:
		raw, mode = above, RoundUp
	default: // short take-profit
		raw, mode = below, RoundDown
	}

	if raw.Sign() <= 0 {
		return nil, &types.InvalidParameterError{Field: "offsetPercent", Reason: "offset produces a non-positive trigger price"}
	}

	stop, err := Quantize(raw, params.TickSize, params.PricePrecision, mode)
	if err != nil {
		return nil, err
	}
	if stop.Sign() <= 0 {
		return nil, &types.InvalidParameterError{Field: "offsetPercent", Reason: "offset rounds the trigger price to zero"}
	}

	return &types.ResolvedOrder{
		Symbol:        params.Symbol,
		Side:          intent.Direction.CloseSide(),
		PositionSide:  types.PositionBoth,
		Type:          intent.Kind.ExchangeType(),
		StopPrice:     stop,
		TimeInForce:   types.TifGTEGTC,
		WorkingType:   types.WorkingMarkPrice,
		ClosePosition: true,
		PriceProtect:  true,
		ClientOrderID: newClientOrderID(),
	}, nil
}

// newClientOrderID generates an id inside the exchange's 36-char limit.
func newClientOrderID() string {
	return "bf-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
}
