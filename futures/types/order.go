package types

import "github.com/shopspring/decimal"

// OrderIntent is the caller-level instruction before resolution. Quantity is
// the pre-rounding size; LimitPrice is read for limit legs and OffsetPercent
// for stop-loss / take-profit legs.
type OrderIntent struct {
	Symbol        string
	Direction     Direction
	Quantity      decimal.Decimal
	Kind          OrderKind
	LimitPrice    decimal.Decimal
	OffsetPercent decimal.Decimal
}

// ResolvedOrder carries exchange-valid fields only: quantity aligned to the
// step size, prices aligned to the tick size, both truncated to the
// instrument's precision. It is what the gateway serializes onto the wire.
type ResolvedOrder struct {
	Symbol        string
	Side          Side
	PositionSide  PositionSide
	Type          string
	Quantity      decimal.Decimal
	Price         decimal.Decimal
	StopPrice     decimal.Decimal
	TimeInForce   TimeInForce
	WorkingType   WorkingType
	ClosePosition bool
	ReduceOnly    bool
	PriceProtect  bool
	ClientOrderID string
}

// OrderAck is the exchange's order placement confirmation.
type OrderAck struct {
	OrderID       int64           `json:"orderId"`
	Symbol        string          `json:"symbol"`
	Status        string          `json:"status"`
	ClientOrderID string          `json:"clientOrderId"`
	Side          Side            `json:"side"`
	PositionSide  PositionSide    `json:"positionSide"`
	Type          string          `json:"type"`
	Price         decimal.Decimal `json:"price"`
	AvgPrice      decimal.Decimal `json:"avgPrice"`
	OrigQty       decimal.Decimal `json:"origQty"`
	ExecutedQty   decimal.Decimal `json:"executedQty"`
	StopPrice     decimal.Decimal `json:"stopPrice"`
	ReduceOnly    bool            `json:"reduceOnly"`
	ClosePosition bool            `json:"closePosition"`
	UpdateTime    int64           `json:"updateTime"`
}

// OpenOrder is one row of the open-orders listing; only the fields the bulk
// cancel path needs.
type OpenOrder struct {
	OrderID int64  `json:"orderId"`
	Symbol  string `json:"symbol"`
	Status  string `json:"status"`
	Type    string `json:"type"`
	Side    Side   `json:"side"`
}
