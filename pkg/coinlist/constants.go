package coinlist

import "fmt"

// DefaultBaseURL is the CoinList Pro REST host.
const DefaultBaseURL = "https://trade-api.coinlist.co"

// Authentication headers sent with every request.
const (
	HeaderAccessKey       = "CL-ACCESS-KEY"
	HeaderAccessSignature = "CL-ACCESS-SIG"
	HeaderAccessTimestamp = "CL-ACCESS-TIMESTAMP"
)

// OrderOrigin marks orders placed through the API.
const OrderOrigin = "api"

type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

type OrderType string

const (
	OrderTypeMarket     OrderType = "market"
	OrderTypeLimit      OrderType = "limit"
	OrderTypeStopMarket OrderType = "stop_market"
	OrderTypeStopLimit  OrderType = "stop_limit"
	OrderTypeTakeMarket OrderType = "take_market"
	OrderTypeTakeLimit  OrderType = "take_limit"
)

// IsValid reports whether t is one of the order types the exchange accepts.
func (t OrderType) IsValid() bool {
	switch t {
	case OrderTypeMarket, OrderTypeLimit, OrderTypeStopMarket,
		OrderTypeStopLimit, OrderTypeTakeMarket, OrderTypeTakeLimit:
		return true
	}
	return false
}

// Granularity is the candle width accepted by the candles endpoint.
type Granularity string

const (
	Granularity1Min  Granularity = "1m"
	Granularity5Min  Granularity = "5m"
	Granularity30Min Granularity = "30m"
)

// granularityMinutes maps each supported granularity to its width in minutes.
var granularityMinutes = map[Granularity]int{
	Granularity1Min:  1,
	Granularity5Min:  5,
	Granularity30Min: 30,
}

// ParseGranularity parses a string into a supported Granularity.
func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(s)
	if _, ok := granularityMinutes[g]; !ok {
		return "", fmt.Errorf("invalid granularity: %s", s)
	}
	return g, nil
}

// Minutes returns the candle width, or 0 for an unsupported granularity.
func (g Granularity) Minutes() int {
	return granularityMinutes[g]
}
