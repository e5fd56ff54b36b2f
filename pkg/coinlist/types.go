package coinlist

import (
	"encoding/json"
	"time"
)

// Account is a trading account owned by the API key holder.
type Account struct {
	TraderID string `json:"trader_id"`
	Name     string `json:"name"`
}

type AccountsResponse struct {
	Accounts []Account `json:"accounts"`
}

// AccountSummary is the current state of a trading account.
type AccountSummary struct {
	AssetBalances          map[string]Amount `json:"asset_balances"`
	AssetHolds             map[string]Amount `json:"asset_holds"`
	NetLiquidationValueUSD Amount            `json:"net_liquidation_value_usd"`
}

// Transaction is a single ledger entry of an account.
type Transaction struct {
	TransactionID   string          `json:"transaction_id"`
	TransactionType string          `json:"transaction_type"`
	Asset           string          `json:"asset"`
	Symbol          string          `json:"symbol"`
	Amount          Amount          `json:"amount"`
	Details         json.RawMessage `json:"details,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type LedgerResponse struct {
	Transactions []Transaction `json:"transactions"`
}

type Wallet struct {
	Asset   string `json:"asset"`
	Balance Amount `json:"balance"`
}

type WalletsResponse struct {
	Wallets []Wallet `json:"wallets"`
}

// Balances maps asset codes to amounts.
type Balances struct {
	AssetBalances map[string]Amount `json:"asset_balances"`
	AssetHolds    map[string]Amount `json:"asset_holds"`
}

type APIKey struct {
	Key       string    `json:"key"`
	TraderID  string    `json:"trader_id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type APIKeysResponse struct {
	Keys []APIKey `json:"keys"`
}

// Order is an order as reported by the exchange.
type Order struct {
	OrderID          string    `json:"order_id"`
	ClientID         string    `json:"client_id,omitempty"`
	Symbol           string    `json:"symbol"`
	Type             OrderType `json:"type"`
	Side             OrderSide `json:"side"`
	Size             Amount    `json:"size"`
	Price            *Amount   `json:"price,omitempty"`
	StopPrice        *Amount   `json:"stop_price,omitempty"`
	Status           string    `json:"status"`
	SizeFilled       Amount    `json:"size_filled"`
	FillFees         Amount    `json:"fill_fees"`
	AverageFillPrice *Amount   `json:"average_fill_price,omitempty"`
	PostOnly         bool      `json:"post_only"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

// OrderResponse wraps the order returned by create, get and modify.
type OrderResponse struct {
	Order Order `json:"order"`
}

type Fill struct {
	OrderID     string    `json:"order_id"`
	AuctionCode string    `json:"auction_code"`
	Symbol      string    `json:"symbol"`
	Price       Amount    `json:"price"`
	Quantity    Amount    `json:"quantity"`
	Fee         Amount    `json:"fee"`
	FeeType     string    `json:"fee_type"`
	FeeCurrency string    `json:"fee_currency"`
	LogicalTime time.Time `json:"logical_time"`
}

type FillsResponse struct {
	Fills []Fill `json:"fills"`
}

// Fees holds the fee schedule document by top-level key; the schedule shape is exchange-defined.
type Fees map[string]json.RawMessage

type Transfer struct {
	TransferID string    `json:"transfer_id"`
	Asset      string    `json:"asset"`
	Amount     Amount    `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type TransfersResponse struct {
	Transfers []Transfer `json:"transfers"`
}

// TransferResponse is returned by wallet and internal transfers.
type TransferResponse struct {
	TransferID string `json:"transfer_id"`
}

type ServerTime struct {
	Epoch float64   `json:"epoch"`
	ISO   time.Time `json:"iso"`
}

type Asset struct {
	Asset         string `json:"asset"`
	IndexCode     string `json:"index_code"`
	DecimalPlaces int    `json:"decimal_places"`
	MinWithdrawal Amount `json:"min_withdrawal"`
	MaxWithdrawal Amount `json:"max_withdrawal"`
}

type AssetsResponse struct {
	Assets []Asset `json:"assets"`
}

// Symbol describes a tradable market.
type Symbol struct {
	Symbol                string    `json:"symbol"`
	BaseCurrency          string    `json:"base_currency"`
	QuoteCurrency         string    `json:"quote_currency"`
	MinimumPriceIncrement Amount    `json:"minimum_price_increment"`
	MinimumSizeIncrement  Amount    `json:"minimum_size_increment"`
	Type                  string    `json:"type"`
	ListedAt              time.Time `json:"listed_at"`
}

type SymbolsResponse struct {
	Symbols []Symbol `json:"symbols"`
}

type SymbolResponse struct {
	Symbol Symbol `json:"symbol"`
}

// SymbolSummary is the 24h market summary of a symbol.
type SymbolSummary struct {
	LastPrice          *Amount `json:"last_price"`
	LowestAsk          *Amount `json:"lowest_ask"`
	HighestBid         *Amount `json:"highest_bid"`
	LastTradePrice     *Amount `json:"last_trade_price"`
	LastTradeQty       *Amount `json:"last_trade_qty"`
	Volume24h          *Amount `json:"volume_base_24h"`
	PriceChangePercent *Amount `json:"price_change_percent_24h"`
	High24h            *Amount `json:"highest_price_24h"`
	Low24h             *Amount `json:"lowest_price_24h"`
}

// Candle rows are [time, open, high, low, close, volume, ...] as returned by the exchange.
type CandlesResponse struct {
	Candles [][]json.RawMessage `json:"candles"`
}

type Auction struct {
	AuctionCode string    `json:"auction_code"`
	Price       *Amount   `json:"price"`
	Volume      *Amount   `json:"volume"`
	Imbalance   *Amount   `json:"imbalance"`
	LogicalTime time.Time `json:"logical_time"`
	CallTime    time.Time `json:"call_time"`
}

type AuctionsResponse struct {
	Auctions []Auction `json:"auctions"`
}

// BookLevel is a [price, size, order count] tuple.
type BookLevel []json.RawMessage

type OrderBook struct {
	Bids        []BookLevel `json:"bids"`
	Asks        []BookLevel `json:"asks"`
	AuctionCode string      `json:"auction_code"`
	CallTime    time.Time   `json:"call_time"`
	LogicalTime time.Time   `json:"logical_time"`
}

// Quote is the current best bid and ask of a symbol.
type Quote struct {
	Ask         *Amount   `json:"ask"`
	AskSize     *Amount   `json:"ask_size"`
	Bid         *Amount   `json:"bid"`
	BidSize     *Amount   `json:"bid_size"`
	LastPrice   *Amount   `json:"last_price"`
	LogicalTime time.Time `json:"logical_time"`
}

type QuoteResponse struct {
	Quote Quote `json:"quote"`
}
