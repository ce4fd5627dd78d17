package client

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/tradekit/binfut/futures/types"
	"github.com/tradekit/binfut/pkg/logger"
)

// PlaceOrder submits an already-resolved order. It performs no rounding or
// validation of its own; callers go through the resolver first.
func (c *Client) PlaceOrder(ctx context.Context, order *types.ResolvedOrder) (*types.OrderAck, error) {
	var ack types.OrderAck
	if err := c.signedCall(ctx, http.MethodPost, endpointOrder, orderParams(order), &ack); err != nil {
		return nil, err
	}
	logger.WithFields(map[string]interface{}{
		"symbol":  ack.Symbol,
		"orderId": ack.OrderID,
		"status":  ack.Status,
	}).Infof("order placed")
	return &ack, nil
}

// orderParams renders a resolved order into wire parameters. Decimal fields
// serialize via String, which never emits scientific notation.
func orderParams(order *types.ResolvedOrder) map[string]string {
	params := map[string]string{
		"symbol": order.Symbol,
		"side":   string(order.Side),
		"type":   order.Type,
	}
	if order.PositionSide != "" {
		params["positionSide"] = string(order.PositionSide)
	}
	if order.Quantity.Sign() > 0 {
		params["quantity"] = order.Quantity.String()
	}
	if order.Price.Sign() > 0 {
		params["price"] = order.Price.String()
	}
	if order.StopPrice.Sign() > 0 {
		params["stopPrice"] = order.StopPrice.String()
	}
	if order.TimeInForce != "" {
		params["timeInForce"] = string(order.TimeInForce)
	}
	if order.WorkingType != "" {
		params["workingType"] = string(order.WorkingType)
	}
	if order.ClosePosition {
		params["closePosition"] = "true"
	}
	if order.ReduceOnly {
		params["reduceOnly"] = "true"
	}
	if order.PriceProtect {
		params["priceProtect"] = "TRUE"
	}
	if order.ClientOrderID != "" {
		params["newClientOrderId"] = order.ClientOrderID
	}
	return params
}

// MarketOrder opens a position at market: fetches the instrument snapshot,
// resolves the quantity, and places the order.
func (c *Client) MarketOrder(ctx context.Context, symbol string, direction types.Direction, quantity decimal.Decimal) (*types.OrderAck, error) {
	params, err := c.InstrumentParams(ctx, symbol)
	if err != nil {
		return nil, err
	}
	order, err := ResolveOrder(types.OrderIntent{
		Symbol:    symbol,
		Direction: direction,
		Quantity:  quantity,
		Kind:      types.KindMarket,
	}, *params)
	if err != nil {
		return nil, err
	}
	return c.PlaceOrder(ctx, order)
}

// LimitOrder places a GTC limit order with quantity and price aligned to the
// instrument's filters.
func (c *Client) LimitOrder(ctx context.Context, symbol string, direction types.Direction, quantity, price decimal.Decimal) (*types.OrderAck, error) {
	params, err := c.InstrumentParams(ctx, symbol)
	if err != nil {
		return nil, err
	}
	order, err := ResolveOrder(types.OrderIntent{
		Symbol:     symbol,
		Direction:  direction,
		Quantity:   quantity,
		Kind:       types.KindLimit,
		LimitPrice: price,
	}, *params)
	if err != nil {
		return nil, err
	}
	return c.PlaceOrder(ctx, order)
}

// StopLossOrder places a close-position stop at offsetPercent below (long)
// or above (short) the current ticker price. A flat symbol gets a market
// entry for direction/quantity first, so one call opens a protected
// position; with a position already open, its direction wins and the entry
// arguments are ignored.
func (c *Client) StopLossOrder(ctx context.Context, symbol string, direction types.Direction, quantity, offsetPercent decimal.Decimal) (*types.OrderAck, error) {
	return c.protectiveOrder(ctx, symbol, types.KindStopLoss, direction, quantity, offsetPercent)
}

// TakeProfitOrder places a close-position take-profit at offsetPercent from
// the current ticker price, opening a market entry first when the symbol is
// flat, like StopLossOrder.
func (c *Client) TakeProfitOrder(ctx context.Context, symbol string, direction types.Direction, quantity, offsetPercent decimal.Decimal) (*types.OrderAck, error) {
	return c.protectiveOrder(ctx, symbol, types.KindTakeProfit, direction, quantity, offsetPercent)
}

func (c *Client) protectiveOrder(ctx context.Context, symbol string, kind types.OrderKind, direction types.Direction, quantity, offsetPercent decimal.Decimal) (*types.OrderAck, error) {
	params, err := c.InstrumentParams(ctx, symbol)
	if err != nil {
		return nil, err
	}

	pos, err := c.positionFor(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if pos == nil {
		entry, err := ResolveOrder(types.OrderIntent{
			Symbol:    symbol,
			Direction: direction,
			Quantity:  quantity,
			Kind:      types.KindMarket,
		}, *params)
		if err != nil {
			return nil, err
		}
		if _, err := c.PlaceOrder(ctx, entry); err != nil {
			return nil, err
		}
	} else {
		direction = pos.Direction()
	}

	// The trigger is measured from the latest traded price, already part of
	// the instrument snapshot.
	order, err := ResolveProtectiveOrder(types.OrderIntent{
		Symbol:        symbol,
		Direction:     direction,
		Kind:          kind,
		OffsetPercent: offsetPercent,
	}, *params, params.LastPrice)
	if err != nil {
		return nil, err
	}
	return c.PlaceOrder(ctx, order)
}

// CancelOrders cancels every open order on one symbol.
func (c *Client) CancelOrders(ctx context.Context, symbol string) error {
	params := map[string]string{"symbol": symbol}
	return c.signedCall(ctx, http.MethodDelete, endpointAllOpenOrders, params, nil)
}

// CancelAllOrders walks the account's open orders and cancels them symbol by
// symbol. Returns the number of orders that were open when the walk started.
func (c *Client) CancelAllOrders(ctx context.Context) (int, error) {
	var open []types.OpenOrder
	if err := c.signedCall(ctx, http.MethodGet, endpointOpenOrders, nil, &open); err != nil {
		return 0, err
	}

	seen := make(map[string]bool)
	for _, o := range open {
		if seen[o.Symbol] {
			continue
		}
		seen[o.Symbol] = true
		if err := c.CancelOrders(ctx, o.Symbol); err != nil {
			return 0, err
		}
	}
	return len(open), nil
}

// ClosePosition flattens one symbol with a reduce-only market order sized
// from the live position amount. A flat symbol is a no-op.
func (c *Client) ClosePosition(ctx context.Context, symbol string) (*types.OrderAck, error) {
	pos, err := c.positionFor(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, nil
	}
	return c.closePosition(ctx, pos)
}

// CloseAllPositions flattens every open position. Returns the number of
// positions closed.
func (c *Client) CloseAllPositions(ctx context.Context) (int, error) {
	positions, err := c.Positions(ctx)
	if err != nil {
		return 0, err
	}

	closed := 0
	for i := range positions {
		if !positions[i].Open() {
			continue
		}
		if _, err := c.closePosition(ctx, &positions[i]); err != nil {
			return closed, err
		}
		closed++
	}
	return closed, nil
}

// closePosition builds the flattening order directly: the quantity comes from
// the exchange's own position row, so it is already filter-aligned.
func (c *Client) closePosition(ctx context.Context, pos *types.Position) (*types.OrderAck, error) {
	order := &types.ResolvedOrder{
		Symbol:        pos.Symbol,
		Side:          pos.Direction().CloseSide(),
		PositionSide:  types.PositionBoth,
		Type:          "MARKET",
		Quantity:      pos.PositionAmt.Abs(),
		ReduceOnly:    true,
		ClientOrderID: newClientOrderID(),
	}
	return c.PlaceOrder(ctx, order)
}
