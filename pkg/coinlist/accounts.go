package coinlist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
)

// ErrNoAccounts is returned by TraderID when the key has no trading account.
var ErrNoAccounts = errors.New("no trading accounts")

func accountPath(traderID, suffix string) string {
	return "/v1/accounts/" + url.PathEscape(traderID) + suffix
}

// ListAccounts returns the trading accounts visible to the API key.
func (c *RESTClient) ListAccounts(ctx context.Context) ([]Account, error) {
	var resp AccountsResponse
	if err := c.call(ctx, http.MethodGet, "/v1/accounts", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

// TraderID returns the trader id of the first account.
func (c *RESTClient) TraderID(ctx context.Context) (string, error) {
	accounts, err := c.ListAccounts(ctx)
	if err != nil {
		return "", err
	}
	if len(accounts) == 0 {
		return "", ErrNoAccounts
	}
	return accounts[0].TraderID, nil
}

func (c *RESTClient) GetAccountSummary(ctx context.Context, traderID string) (*AccountSummary, error) {
	var resp AccountSummary
	if err := c.call(ctx, http.MethodGet, accountPath(traderID, ""), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAccountHistory returns the ledger of an account.
func (c *RESTClient) GetAccountHistory(ctx context.Context, traderID string, q LedgerQuery) ([]Transaction, error) {
	var resp LedgerResponse
	if err := c.call(ctx, http.MethodGet, accountPath(traderID, "/ledger"), nil, q.Values(), &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

func (c *RESTClient) ListWallets(ctx context.Context, traderID string) ([]Wallet, error) {
	var resp WalletsResponse
	if err := c.call(ctx, http.MethodGet, accountPath(traderID, "/wallets"), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Wallets, nil
}

// GetDailyAccountSummary returns daily transaction summaries, optionally for one asset.
// The summary shape varies by asset so it is returned undecoded.
func (c *RESTClient) GetDailyAccountSummary(ctx context.Context, traderID, asset string) (json.RawMessage, error) {
	q := url.Values{}
	setString(q, "asset", asset)

	var resp json.RawMessage
	if err := c.call(ctx, http.MethodGet, accountPath(traderID, "/ledger-summary"), nil, q, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) ListBalances(ctx context.Context) (*Balances, error) {
	var resp Balances
	if err := c.call(ctx, http.MethodGet, "/v1/balances", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RESTClient) ListAPIKeys(ctx context.Context) ([]APIKey, error) {
	var resp APIKeysResponse
	if err := c.call(ctx, http.MethodGet, "/v1/keys", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Keys, nil
}

// ListFees returns the fee schedule document.
func (c *RESTClient) ListFees(ctx context.Context) (Fees, error) {
	var resp Fees
	if err := c.call(ctx, http.MethodGet, "/v1/fees", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *RESTClient) ListFills(ctx context.Context, q FillsQuery) ([]Fill, error) {
	var resp FillsResponse
	if err := c.call(ctx, http.MethodGet, "/v1/fills", nil, q.Values(), &resp); err != nil {
		return nil, err
	}
	return resp.Fills, nil
}
