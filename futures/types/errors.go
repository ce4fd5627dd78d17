package types

import "fmt"

// InvalidParameterError is raised by the resolver for malformed or
// out-of-range input. It never reaches the network.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Reason)
}

// BelowMinimumSizeError is raised when a resolved quantity or notional is
// too small for the instrument to trade.
type BelowMinimumSizeError struct {
	Symbol   string
	Quantity string
	Minimum  string
}

func (e *BelowMinimumSizeError) Error() string {
	return fmt.Sprintf("%s: resolved size %s below instrument minimum %s", e.Symbol, e.Quantity, e.Minimum)
}

// TransportError wraps a network or timeout failure talking to the exchange.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error on %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RejectionError reports a request the exchange parsed but refused, e.g.
// insufficient margin or an invalid leverage bracket. Code and Msg are the
// exchange's own error fields.
type RejectionError struct {
	Op     string
	Status int
	Code   int64  `json:"code"`
	Msg    string `json:"msg"`
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s rejected (http %d, code %d): %s", e.Op, e.Status, e.Code, e.Msg)
}
