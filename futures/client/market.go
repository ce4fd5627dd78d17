package client

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tradekit/binfut/futures/types"
)

// ExchangeInfo fetches the full exchange metadata.
func (c *Client) ExchangeInfo(ctx context.Context) (*types.ExchangeInfo, error) {
	var out types.ExchangeInfo
	if err := c.publicGet(ctx, endpointExchangeInfo, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInstruments returns the tradable perpetual symbols, sorted. A non-empty
// quote restricts the list to that quote asset, e.g. "USDT".
func (c *Client) ListInstruments(ctx context.Context, quote string) ([]string, error) {
	info, err := c.ExchangeInfo(ctx)
	if err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(info.Symbols))
	for _, s := range info.Symbols {
		if s.Status != "TRADING" || s.ContractType != "PERPETUAL" {
			continue
		}
		if quote != "" && s.QuoteAsset != quote {
			continue
		}
		symbols = append(symbols, s.Symbol)
	}
	sort.Strings(symbols)
	return symbols, nil
}

// TickerPrice returns the latest traded price for a symbol.
func (c *Client) TickerPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	var out types.TickerPrice
	params := map[string]string{"symbol": symbol}
	if err := c.publicGet(ctx, endpointTickerPrice, params, &out); err != nil {
		return decimal.Zero, err
	}
	return out.Price, nil
}

// InstrumentParams snapshots everything the resolver needs for one symbol:
// precision and filter values from exchangeInfo plus the current ticker price.
func (c *Client) InstrumentParams(ctx context.Context, symbol string) (*types.InstrumentParams, error) {
	var info types.ExchangeInfo
	params := map[string]string{"symbol": symbol}
	if err := c.publicGet(ctx, endpointExchangeInfo, params, &info); err != nil {
		return nil, err
	}

	var sym *types.SymbolInfo
	for i := range info.Symbols {
		if info.Symbols[i].Symbol == symbol {
			sym = &info.Symbols[i]
			break
		}
	}
	if sym == nil {
		return nil, &types.InvalidParameterError{Field: "symbol", Reason: fmt.Sprintf("unknown symbol %q", symbol)}
	}

	ip := &types.InstrumentParams{
		Symbol:            sym.Symbol,
		PricePrecision:    sym.PricePrecision,
		QuantityPrecision: sym.QuantityPrecision,
	}

	for _, f := range sym.Filters {
		switch f.FilterType {
		case "PRICE_FILTER":
			if v, err := decimal.NewFromString(f.TickSize); err == nil {
				ip.TickSize = v
			}
		case "LOT_SIZE":
			if v, err := decimal.NewFromString(f.StepSize); err == nil {
				ip.StepSize = v
			}
			if v, err := decimal.NewFromString(f.MinQty); err == nil {
				ip.MinQty = v
			}
		case "MIN_NOTIONAL":
			if v, err := decimal.NewFromString(f.MinNotional); err == nil {
				ip.MinNotional = v
			}
		}
	}

	last, err := c.TickerPrice(ctx, symbol)
	if err != nil {
		return nil, err
	}
	ip.LastPrice = last

	return ip, nil
}
