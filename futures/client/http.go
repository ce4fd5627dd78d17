package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/tradekit/binfut/futures/signing"
	"github.com/tradekit/binfut/futures/types"
	"github.com/tradekit/binfut/pkg/logger"
)

// signedCall executes an authenticated request. It stamps timestamp and
// recvWindow, signs the query, and decodes a 2xx body into out (skipped when
// out is nil).
func (c *Client) signedCall(ctx context.Context, method, endpoint string, params map[string]string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &types.TransportError{Op: endpoint, Err: err}
	}

	if params == nil {
		params = make(map[string]string, 2)
	}
	params["timestamp"] = strconv.FormatInt(c.now().UnixMilli(), 10)
	params["recvWindow"] = strconv.FormatInt(c.recvWindow, 10)

	req := c.rc.R().
		SetContext(ctx).
		SetHeader(signing.HeaderAPIKey, c.creds.APIKey).
		SetQueryString(signing.SignedQuery(c.creds.APISecret, params))

	logger.Debugf("%s %s", method, endpoint)
	resp, err := execute(req, method, endpoint)
	return c.handle(endpoint, resp, err, out)
}

// publicGet executes an unauthenticated request. Public endpoints still count
// against the request-weight budget, so the limiter applies here too.
func (c *Client) publicGet(ctx context.Context, endpoint string, params map[string]string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &types.TransportError{Op: endpoint, Err: err}
	}

	req := c.rc.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	logger.Debugf("GET %s", endpoint)
	resp, err := req.Get(endpoint)
	return c.handle(endpoint, resp, err, out)
}

func execute(req *resty.Request, method, endpoint string) (*resty.Response, error) {
	switch method {
	case http.MethodGet:
		return req.Get(endpoint)
	case http.MethodPost:
		return req.Post(endpoint)
	case http.MethodDelete:
		return req.Delete(endpoint)
	default:
		return nil, fmt.Errorf("unsupported method: %s", method)
	}
}

// handle maps the transport outcome onto the error taxonomy: network failure
// to TransportError, non-2xx with an exchange error body to RejectionError.
func (c *Client) handle(op string, resp *resty.Response, err error, out interface{}) error {
	if err != nil {
		return &types.TransportError{Op: op, Err: err}
	}

	if resp.IsError() {
		rej := &types.RejectionError{Op: op, Status: resp.StatusCode()}
		if uerr := json.Unmarshal(resp.Body(), rej); uerr != nil || rej.Msg == "" {
			rej.Msg = strings.TrimSpace(string(resp.Body()))
		}
		return rej
	}

	if out != nil {
		if uerr := json.Unmarshal(resp.Body(), out); uerr != nil {
			return &types.TransportError{Op: op, Err: errors.Wrap(uerr, "decode response body")}
		}
	}
	return nil
}
