package coinlist

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// WalletTransferRequest moves funds between the trading account and the CoinList wallet.
type WalletTransferRequest struct {
	Asset  string `json:"asset"`
	Amount Amount `json:"amount"`
}

// InternalTransferRequest moves funds between two trading accounts.
type InternalTransferRequest struct {
	FromTraderID string `json:"from_trader_id"`
	ToTraderID   string `json:"to_trader_id"`
	Asset        string `json:"asset"`
	Amount       Amount `json:"amount"`
}

func (c *RESTClient) ListTransfers(ctx context.Context) ([]Transfer, error) {
	var resp TransfersResponse
	if err := c.call(ctx, http.MethodGet, "/v1/transfers", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transfers, nil
}

// TransferToWallet moves amount of asset from the trading account to the wallet.
func (c *RESTClient) TransferToWallet(ctx context.Context, asset string, amount Amount) (*TransferResponse, error) {
	return c.walletTransfer(ctx, "/v1/transfers/to-wallet", asset, amount)
}

// TransferFromWallet moves amount of asset from the wallet to the trading account.
func (c *RESTClient) TransferFromWallet(ctx context.Context, asset string, amount Amount) (*TransferResponse, error) {
	return c.walletTransfer(ctx, "/v1/transfers/from-wallet", asset, amount)
}

func (c *RESTClient) walletTransfer(ctx context.Context, path, asset string, amount Amount) (*TransferResponse, error) {
	if asset == "" {
		return nil, errors.New("transfer: asset required")
	}
	if !amount.IsPositive() {
		return nil, errors.New("transfer: amount must be > 0")
	}

	var resp TransferResponse
	req := WalletTransferRequest{Asset: asset, Amount: amount}
	if err := c.call(ctx, http.MethodPost, path, req, nil, &resp); err != nil {
		return nil, fmt.Errorf("transfer %s: %w", asset, err)
	}
	return &resp, nil
}

func (c *RESTClient) InternalTransfer(ctx context.Context, req InternalTransferRequest) (*TransferResponse, error) {
	if req.FromTraderID == "" || req.ToTraderID == "" {
		return nil, errors.New("internal transfer: both trader ids required")
	}
	if req.Asset == "" || !req.Amount.IsPositive() {
		return nil, errors.New("internal transfer: asset and positive amount required")
	}

	var resp TransferResponse
	if err := c.call(ctx, http.MethodPost, "/v1/transfers/internal-transfer", req, nil, &resp); err != nil {
		return nil, fmt.Errorf("internal transfer: %w", err)
	}
	return &resp, nil
}
