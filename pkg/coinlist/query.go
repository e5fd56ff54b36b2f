package coinlist

import (
	"net/url"
	"strconv"
	"time"
)

// timeParam formats times the way the exchange expects query timestamps.
func timeParam(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setTime(q url.Values, key string, t time.Time) {
	if !t.IsZero() {
		q.Set(key, timeParam(t))
	}
}

func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

// LedgerQuery filters GetAccountHistory.
type LedgerQuery struct {
	Asset     string
	StartTime time.Time
	EndTime   time.Time
	Count     int
	Offset    int
}

func (q LedgerQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "asset", q.Asset)
	setTime(v, "start_time", q.StartTime)
	setTime(v, "end_time", q.EndTime)
	setInt(v, "count", q.Count)
	setInt(v, "offset", q.Offset)
	return v
}

// OrdersQuery filters ListOrders. Status may be repeated.
type OrdersQuery struct {
	Symbol    string
	Status    []string
	StartTime time.Time
	EndTime   time.Time
	Count     int
}

func (q OrdersQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "symbol", q.Symbol)
	for _, s := range q.Status {
		v.Add("status", s)
	}
	setTime(v, "start_time", q.StartTime)
	setTime(v, "end_time", q.EndTime)
	setInt(v, "count", q.Count)
	return v
}

// FillsQuery filters ListFills.
type FillsQuery struct {
	Symbol      string
	AuctionCode string
	StartTime   time.Time
	EndTime     time.Time
	Count       int
}

func (q FillsQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "symbol", q.Symbol)
	setString(v, "auction_code", q.AuctionCode)
	setTime(v, "start_time", q.StartTime)
	setTime(v, "end_time", q.EndTime)
	setInt(v, "count", q.Count)
	return v
}

// CandlesQuery selects the candle range of GetCandles.
type CandlesQuery struct {
	Granularity Granularity
	StartTime   time.Time
	EndTime     time.Time
}

func (q CandlesQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "granularity", string(q.Granularity))
	setTime(v, "start_time", q.StartTime)
	setTime(v, "end_time", q.EndTime)
	return v
}

// AuctionsQuery selects the auction range of ListAuctions.
type AuctionsQuery struct {
	StartTime time.Time
	EndTime   time.Time
	Count     int
}

func (q AuctionsQuery) Values() url.Values {
	v := url.Values{}
	setTime(v, "start_time", q.StartTime)
	setTime(v, "end_time", q.EndTime)
	setInt(v, "count", q.Count)
	return v
}
