package client

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/tradekit/binfut/futures/types"
	"github.com/tradekit/binfut/pkg/logger"
)

// Exchange error codes that mean the requested state is already in place.
// The configuration setters treat these as success.
const (
	codeNoNeedChangeMarginType   = -4046
	codeNoNeedChangePositionSide = -4059
)

// Balances returns every asset row of the futures wallet.
func (c *Client) Balances(ctx context.Context) ([]types.Balance, error) {
	var out []types.Balance
	if err := c.signedCall(ctx, http.MethodGet, endpointBalance, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Balance returns the wallet row for one asset. An asset the account has
// never touched comes back as a zero-value row, not an error.
func (c *Client) Balance(ctx context.Context, asset string) (*types.Balance, error) {
	rows, err := c.Balances(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].Asset == asset {
			return &rows[i], nil
		}
	}
	return &types.Balance{Asset: asset}, nil
}

// Positions returns the position-risk rows, open or not.
func (c *Client) Positions(ctx context.Context) ([]types.Position, error) {
	var out []types.Position
	if err := c.signedCall(ctx, http.MethodGet, endpointPositionRisk, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// positionFor returns the open position for symbol, or nil when flat.
func (c *Client) positionFor(ctx context.Context, symbol string) (*types.Position, error) {
	var out []types.Position
	params := map[string]string{"symbol": symbol}
	if err := c.signedCall(ctx, http.MethodGet, endpointPositionRisk, params, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Symbol == symbol && out[i].Open() {
			return &out[i], nil
		}
	}
	return nil, nil
}

// SetLeverage sets the initial leverage for a symbol.
func (c *Client) SetLeverage(ctx context.Context, symbol string, leverage int) (*types.LeverageResponse, error) {
	if leverage < 1 || leverage > 125 {
		return nil, &types.InvalidParameterError{Field: "leverage", Reason: "must be between 1 and 125"}
	}
	params := map[string]string{
		"symbol":   symbol,
		"leverage": strconv.Itoa(leverage),
	}
	var out types.LeverageResponse
	if err := c.signedCall(ctx, http.MethodPost, endpointLeverage, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetMarginType switches a symbol between isolated and cross margin. The
// exchange rejects a no-op switch with a dedicated code; that counts as
// success here.
func (c *Client) SetMarginType(ctx context.Context, symbol string, mt types.MarginType) error {
	params := map[string]string{
		"symbol":     symbol,
		"marginType": string(mt),
	}
	err := c.signedCall(ctx, http.MethodPost, endpointMarginType, params, nil)
	var rej *types.RejectionError
	if errors.As(err, &rej) && rej.Code == codeNoNeedChangeMarginType {
		logger.Debugf("%s margin type already %s", symbol, mt)
		return nil
	}
	return err
}

// GetPositionMode reports whether the account is in hedge mode.
func (c *Client) GetPositionMode(ctx context.Context) (bool, error) {
	var out types.PositionModeResponse
	if err := c.signedCall(ctx, http.MethodGet, endpointPositionMode, nil, &out); err != nil {
		return false, err
	}
	return out.DualSidePosition, nil
}

// SetPositionMode switches the account between one-way and hedge mode. The
// current mode is read first and an unchanged request is skipped, since the
// exchange refuses the switch while any position or open order exists.
func (c *Client) SetPositionMode(ctx context.Context, hedge bool) error {
	current, err := c.GetPositionMode(ctx)
	if err != nil {
		return err
	}
	if current == hedge {
		return nil
	}

	params := map[string]string{
		"dualSidePosition": strconv.FormatBool(hedge),
	}
	err = c.signedCall(ctx, http.MethodPost, endpointPositionMode, params, nil)
	var rej *types.RejectionError
	if errors.As(err, &rej) && rej.Code == codeNoNeedChangePositionSide {
		return nil
	}
	return err
}
