package types

import "github.com/shopspring/decimal"

// InstrumentParams is the per-symbol trading metadata needed to build a
// compliant order. It is an immutable snapshot: precision and filter values
// can change between exchange updates, so callers should fetch a fresh one
// per resolution rather than holding on to it.
type InstrumentParams struct {
	Symbol            string
	PricePrecision    int
	QuantityPrecision int
	TickSize          decimal.Decimal
	StepSize          decimal.Decimal
	MinQty            decimal.Decimal
	MinNotional       decimal.Decimal
	// LastPrice is the ticker price observed when the snapshot was taken.
	LastPrice decimal.Decimal
}

// Balance is one asset row of the futures wallet.
type Balance struct {
	Asset              string          `json:"asset"`
	Balance            decimal.Decimal `json:"balance"`
	AvailableBalance   decimal.Decimal `json:"availableBalance"`
	CrossUnrealizedPnl decimal.Decimal `json:"crossUnPnl"`
}

// Position is one row of the position-risk endpoint. PositionAmt is signed:
// positive for long, negative for short.
type Position struct {
	Symbol           string          `json:"symbol"`
	PositionAmt      decimal.Decimal `json:"positionAmt"`
	EntryPrice       decimal.Decimal `json:"entryPrice"`
	MarkPrice        decimal.Decimal `json:"markPrice"`
	UnrealizedProfit decimal.Decimal `json:"unRealizedProfit"`
	Leverage         decimal.Decimal `json:"leverage"`
	PositionSide     PositionSide    `json:"positionSide"`
}

// Open reports whether the position has non-zero size.
func (p Position) Open() bool { return !p.PositionAmt.IsZero() }

// Direction derives the caller-level direction from the signed amount.
func (p Position) Direction() Direction {
	if p.PositionAmt.Sign() < 0 {
		return DirectionShort
	}
	return DirectionLong
}

// TickerPrice is the symbol price ticker response.
type TickerPrice struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

// ExchangeInfo is the subset of /fapi/v1/exchangeInfo this client reads.
type ExchangeInfo struct {
	Symbols []SymbolInfo `json:"symbols"`
}

// SymbolInfo is one symbol entry of exchangeInfo, filters still raw.
type SymbolInfo struct {
	Symbol            string         `json:"symbol"`
	Status            string         `json:"status"`
	ContractType      string         `json:"contractType"`
	QuoteAsset        string         `json:"quoteAsset"`
	PricePrecision    int            `json:"pricePrecision"`
	QuantityPrecision int            `json:"quantityPrecision"`
	Filters           []SymbolFilter `json:"filters"`
}

// SymbolFilter is one exchangeInfo filter entry. Only PRICE_FILTER and
// LOT_SIZE fields are mapped; other filter types leave the extras empty.
type SymbolFilter struct {
	FilterType  string `json:"filterType"`
	TickSize    string `json:"tickSize"`
	StepSize    string `json:"stepSize"`
	MinQty      string `json:"minQty"`
	MinNotional string `json:"notional"`
}

// PositionModeResponse is the /fapi/v1/positionSide/dual response.
type PositionModeResponse struct {
	DualSidePosition bool `json:"dualSidePosition"`
}

// LeverageResponse is the /fapi/v1/leverage ack.
type LeverageResponse struct {
	Symbol           string          `json:"symbol"`
	Leverage         int             `json:"leverage"`
	MaxNotionalValue decimal.Decimal `json:"maxNotionalValue"`
}
