package client

// Base URLs for the USDT-M futures REST API.
const (
	MainnetBaseURL = "https://fapi.binance.com"
	TestnetBaseURL = "https://testnet.binancefuture.com"
)

const (
	endpointBalance       = "/fapi/v2/balance"
	endpointPositionRisk  = "/fapi/v2/positionRisk"
	endpointExchangeInfo  = "/fapi/v1/exchangeInfo"
	endpointTickerPrice   = "/fapi/v1/ticker/price"
	endpointLeverage      = "/fapi/v1/leverage"
	endpointMarginType    = "/fapi/v1/marginType"
	endpointPositionMode  = "/fapi/v1/positionSide/dual"
	endpointOrder         = "/fapi/v1/order"
	endpointOpenOrders    = "/fapi/v1/openOrders"
	endpointAllOpenOrders = "/fapi/v1/allOpenOrders"
)
