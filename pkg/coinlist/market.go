package coinlist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func symbolPath(symbol, suffix string) string {
	return "/v1/symbols/" + url.PathEscape(symbol) + suffix
}

// GetTime returns the exchange clock.
func (c *RESTClient) GetTime(ctx context.Context) (*ServerTime, error) {
	var resp ServerTime
	if err := c.call(ctx, http.MethodGet, "/v1/time", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RESTClient) ListAssets(ctx context.Context) ([]Asset, error) {
	var resp AssetsResponse
	if err := c.call(ctx, http.MethodGet, "/v1/assets", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Assets, nil
}

// ListSymbols returns every tradable symbol.
func (c *RESTClient) ListSymbols(ctx context.Context) ([]Symbol, error) {
	var resp SymbolsResponse
	if err := c.call(ctx, http.MethodGet, "/v1/symbols", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Symbols, nil
}

func (c *RESTClient) GetSymbol(ctx context.Context, symbol string) (*Symbol, error) {
	var resp SymbolResponse
	if err := c.call(ctx, http.MethodGet, symbolPath(symbol, ""), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Symbol, nil
}

// ListSymbolSummaries returns the 24h summary of every symbol, keyed by symbol.
func (c *RESTClient) ListSymbolSummaries(ctx context.Context) (map[string]SymbolSummary, error) {
	var resp map[string]SymbolSummary
	if err := c.call(ctx, http.MethodGet, "/v1/symbols/summary", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) GetSymbolSummary(ctx context.Context, symbol string) (*SymbolSummary, error) {
	var resp SymbolSummary
	if err := c.call(ctx, http.MethodGet, symbolPath(symbol, "/summary"), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RESTClient) GetCandles(ctx context.Context, symbol string, q CandlesQuery) ([][]json.RawMessage, error) {
	var resp CandlesResponse
	if err := c.call(ctx, http.MethodGet, symbolPath(symbol, "/candles"), nil, q.Values(), &resp); err != nil {
		return nil, err
	}
	return resp.Candles, nil
}

func (c *RESTClient) ListAuctions(ctx context.Context, symbol string, q AuctionsQuery) ([]Auction, error) {
	var resp AuctionsResponse
	if err := c.call(ctx, http.MethodGet, symbolPath(symbol, "/auctions"), nil, q.Values(), &resp); err != nil {
		return nil, err
	}
	return resp.Auctions, nil
}

// GetAuction returns the result of a single auction.
func (c *RESTClient) GetAuction(ctx context.Context, symbol, auctionCode string) (*Auction, error) {
	var resp Auction
	path := symbolPath(symbol, "/auctions/"+url.PathEscape(auctionCode))
	if err := c.call(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RESTClient) GetOrderBook(ctx context.Context, symbol string) (*OrderBook, error) {
	var resp OrderBook
	if err := c.call(ctx, http.MethodGet, symbolPath(symbol, "/book"), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RESTClient) GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	var resp QuoteResponse
	if err := c.call(ctx, http.MethodGet, symbolPath(symbol, "/quote"), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Quote, nil
}
