package types

import (
	"fmt"
	"strings"
)

// Direction is the trade direction from the caller's point of view.
type Direction string

const (
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

// ParseDirection accepts the two supported directions, case-insensitively.
func ParseDirection(v string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "long":
		return DirectionLong, nil
	case "short":
		return DirectionShort, nil
	default:
		return "", &InvalidParameterError{Field: "direction", Reason: fmt.Sprintf("unknown direction %q (long/short)", v)}
	}
}

func (d Direction) String() string { return string(d) }

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == DirectionLong {
		return DirectionShort
	}
	return DirectionLong
}

// Side is the exchange-level order side.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// EntrySide maps a direction to the side that opens the position.
func (d Direction) EntrySide() Side {
	if d == DirectionLong {
		return SideBuy
	}
	return SideSell
}

// CloseSide maps a direction to the side that closes the position.
// A long position's protective orders sell; a short's buy.
func (d Direction) CloseSide() Side {
	if d == DirectionLong {
		return SideSell
	}
	return SideBuy
}

// OrderKind is the caller-facing order classification.
type OrderKind string

const (
	KindMarket     OrderKind = "market"
	KindLimit      OrderKind = "limit"
	KindStopLoss   OrderKind = "stop_loss"
	KindTakeProfit OrderKind = "take_profit"
)

// ParseOrderKind accepts the four supported kinds, case-insensitively.
func ParseOrderKind(v string) (OrderKind, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "market":
		return KindMarket, nil
	case "limit":
		return KindLimit, nil
	case "stop_loss", "stop-loss", "stoploss":
		return KindStopLoss, nil
	case "take_profit", "take-profit", "takeprofit":
		return KindTakeProfit, nil
	default:
		return "", &InvalidParameterError{Field: "kind", Reason: fmt.Sprintf("unknown order kind %q", v)}
	}
}

// Protective reports whether the kind is a stop-loss or take-profit leg.
func (k OrderKind) Protective() bool {
	return k == KindStopLoss || k == KindTakeProfit
}

// ExchangeType returns the Binance futures order type string for the kind.
func (k OrderKind) ExchangeType() string {
	switch k {
	case KindMarket:
		return "MARKET"
	case KindLimit:
		return "LIMIT"
	case KindStopLoss:
		return "STOP_MARKET"
	case KindTakeProfit:
		return "TAKE_PROFIT_MARKET"
	default:
		return ""
	}
}

// MarginType selects isolated or cross margin allocation.
type MarginType string

const (
	MarginIsolated MarginType = "ISOLATED"
	MarginCrossed  MarginType = "CROSSED"
)

// ParseMarginType accepts the two supported margin types.
func ParseMarginType(v string) (MarginType, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "ISOLATED":
		return MarginIsolated, nil
	case "CROSSED", "CROSS":
		return MarginCrossed, nil
	default:
		return "", &InvalidParameterError{Field: "marginType", Reason: fmt.Sprintf("unknown margin type %q", v)}
	}
}

// PositionSide is the hedge-mode position label. One-way mode uses BOTH.
type PositionSide string

const (
	PositionBoth  PositionSide = "BOTH"
	PositionLong  PositionSide = "LONG"
	PositionShort PositionSide = "SHORT"
)

// WorkingType selects the price stream that triggers conditional orders.
type WorkingType string

const (
	WorkingMarkPrice     WorkingType = "MARK_PRICE"
	WorkingContractPrice WorkingType = "CONTRACT_PRICE"
)

// TimeInForce values accepted by the futures order endpoint.
type TimeInForce string

const (
	TifGTC TimeInForce = "GTC"
	TifIOC TimeInForce = "IOC"
	TifFOK TimeInForce = "FOK"
	TifGTX TimeInForce = "GTX"
	// TifGTEGTC is what Binance expects on STOP_MARKET / TAKE_PROFIT_MARKET.
	TifGTEGTC TimeInForce = "GTE_GTC"
)
