package coinlist

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

// go test -v --run TestEndpointRoutes
func TestEndpointRoutes(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)

	tests := []struct {
		name   string
		call   func(c *RESTClient) error
		method string
		uri    string
		body   string
	}{
		{
			name: "list accounts",
			call: func(c *RESTClient) error {
				_, err := c.ListAccounts(ctx)
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/accounts",
		},
		{
			name: "account summary",
			call: func(c *RESTClient) error {
				_, err := c.GetAccountSummary(ctx, "t-1")
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/accounts/t-1",
		},
		{
			name: "account history",
			call: func(c *RESTClient) error {
				_, err := c.GetAccountHistory(ctx, "t-1", LedgerQuery{Asset: "BTC", Count: 50})
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/accounts/t-1/ledger?asset=BTC&count=50",
		},
		{
			name: "wallets",
			call: func(c *RESTClient) error {
				_, err := c.ListWallets(ctx, "t-1")
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/accounts/t-1/wallets",
		},
		{
			name: "daily summary",
			call: func(c *RESTClient) error {
				_, err := c.GetDailyAccountSummary(ctx, "t-1", "USD")
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/accounts/t-1/ledger-summary?asset=USD",
		},
		{
			name: "balances",
			call: func(c *RESTClient) error {
				_, err := c.ListBalances(ctx)
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/balances",
		},
		{
			name: "api keys",
			call: func(c *RESTClient) error {
				_, err := c.ListAPIKeys(ctx)
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/keys",
		},
		{
			name: "fees",
			call: func(c *RESTClient) error {
				_, err := c.ListFees(ctx)
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/fees",
		},
		{
			name: "fills",
			call: func(c *RESTClient) error {
				_, err := c.ListFills(ctx, FillsQuery{Symbol: "BTC-USD"})
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/fills?symbol=BTC-USD",
		},
		{
			name: "list orders",
			call: func(c *RESTClient) error {
				_, err := c.ListOrders(ctx, OrdersQuery{Symbol: "BTC-USD", Status: []string{"pending", "accepted"}})
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/orders?status=pending&status=accepted&symbol=BTC-USD",
		},
		{
			name: "create order",
			call: func(c *RESTClient) error {
				_, err := c.CreateOrder(ctx, CreateOrderRequest{
					Symbol: "BTC-USD", Type: OrderTypeLimit, Side: SideBuy,
					Size: AmountFromInt(1), Price: amountPtr(AmountFromInt(100)),
				})
				return err
			},
			method: http.MethodPost,
			uri:    "/v1/orders",
			body:   `{"symbol":"BTC-USD","type":"limit","side":"buy","size":1,"price":100,"origin":"api"}`,
		},
		{
			name: "create orders",
			call: func(c *RESTClient) error {
				_, err := c.CreateOrders(ctx, []CreateOrderRequest{MarketOrder("ETH-USD", SideSell, AmountFromFloat(0.5))})
				return err
			},
			method: http.MethodPost,
			uri:    "/v1/orders/bulk",
			body:   `[{"symbol":"ETH-USD","type":"market","side":"sell","size":0.5,"origin":"api"}]`,
		},
		{
			name: "get order",
			call: func(c *RESTClient) error {
				_, err := c.GetOrder(ctx, "o-1")
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/orders/o-1",
		},
		{
			name: "modify order",
			call: func(c *RESTClient) error {
				_, err := c.ModifyOrder(ctx, "o-1", ModifyOrderRequest{
					Type: OrderTypeLimit, Size: AmountFromInt(2), Price: amountPtr(AmountFromFloat(101.5)),
				})
				return err
			},
			method: http.MethodPatch,
			uri:    "/v1/orders/o-1",
			body:   `{"type":"limit","size":2,"price":101.5}`,
		},
		{
			name: "cancel order",
			call: func(c *RESTClient) error {
				_, err := c.CancelOrder(ctx, "o-1")
				return err
			},
			method: http.MethodDelete,
			uri:    "/v1/orders/o-1",
			body:   `{"order_id":"o-1"}`,
		},
		{
			name: "cancel by symbol",
			call: func(c *RESTClient) error {
				_, err := c.CancelAllOrders(ctx, "BTC-USD")
				return err
			},
			method: http.MethodDelete,
			uri:    "/v1/orders",
			body:   `{"symbol":"BTC-USD"}`,
		},
		{
			name: "cancel all",
			call: func(c *RESTClient) error {
				_, err := c.CancelAllOrders(ctx, "")
				return err
			},
			method: http.MethodDelete,
			uri:    "/v1/orders",
		},
		{
			name: "cancel bulk",
			call: func(c *RESTClient) error {
				_, err := c.CancelOrders(ctx, []string{"o-1", "o-2"})
				return err
			},
			method: http.MethodDelete,
			uri:    "/v1/orders/bulk",
			body:   `["o-1","o-2"]`,
		},
		{
			name: "report",
			call: func(c *RESTClient) error {
				_, err := c.CreateReport(ctx, ReportRequest{Type: "fills"})
				return err
			},
			method: http.MethodPost,
			uri:    "/v1/reports",
			body:   `{"type":"fills"}`,
		},
		{
			name: "list transfers",
			call: func(c *RESTClient) error {
				_, err := c.ListTransfers(ctx)
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/transfers",
		},
		{
			name: "to wallet",
			call: func(c *RESTClient) error {
				_, err := c.TransferToWallet(ctx, "USD", AmountFromInt(25))
				return err
			},
			method: http.MethodPost,
			uri:    "/v1/transfers/to-wallet",
			body:   `{"asset":"USD","amount":25}`,
		},
		{
			name: "from wallet",
			call: func(c *RESTClient) error {
				_, err := c.TransferFromWallet(ctx, "USD", AmountFromInt(25))
				return err
			},
			method: http.MethodPost,
			uri:    "/v1/transfers/from-wallet",
			body:   `{"asset":"USD","amount":25}`,
		},
		{
			name: "internal transfer",
			call: func(c *RESTClient) error {
				_, err := c.InternalTransfer(ctx, InternalTransferRequest{
					FromTraderID: "t-1", ToTraderID: "t-2", Asset: "BTC", Amount: AmountFromFloat(0.1),
				})
				return err
			},
			method: http.MethodPost,
			uri:    "/v1/transfers/internal-transfer",
			body:   `{"from_trader_id":"t-1","to_trader_id":"t-2","asset":"BTC","amount":0.1}`,
		},
		{
			name: "time",
			call: func(c *RESTClient) error {
				_, err := c.GetTime(ctx)
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/time",
		},
		{
			name: "assets",
			call: func(c *RESTClient) error {
				_, err := c.ListAssets(ctx)
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/assets",
		},
		{
			name: "symbols",
			call: func(c *RESTClient) error {
				_, err := c.ListSymbols(ctx)
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/symbols",
		},
		{
			name: "symbol",
			call: func(c *RESTClient) error {
				_, err := c.GetSymbol(ctx, "BTC-USD")
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/symbols/BTC-USD",
		},
		{
			name: "symbol summaries",
			call: func(c *RESTClient) error {
				_, err := c.ListSymbolSummaries(ctx)
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/symbols/summary",
		},
		{
			name: "symbol summary",
			call: func(c *RESTClient) error {
				_, err := c.GetSymbolSummary(ctx, "BTC-USD")
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/symbols/BTC-USD/summary",
		},
		{
			name: "candles",
			call: func(c *RESTClient) error {
				_, err := c.GetCandles(ctx, "BTC-USD", CandlesQuery{Granularity: Granularity5Min, StartTime: start})
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/symbols/BTC-USD/candles?granularity=5m&start_time=2023-11-14T22%3A13%3A20Z",
		},
		{
			name: "auctions",
			call: func(c *RESTClient) error {
				_, err := c.ListAuctions(ctx, "BTC-USD", AuctionsQuery{Count: 5})
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/symbols/BTC-USD/auctions?count=5",
		},
		{
			name: "auction",
			call: func(c *RESTClient) error {
				_, err := c.GetAuction(ctx, "BTC-USD", "BTC-USD-2023-11-14T22:13:20.000Z")
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/symbols/BTC-USD/auctions/BTC-USD-2023-11-14T22:13:20.000Z",
		},
		{
			name: "book",
			call: func(c *RESTClient) error {
				_, err := c.GetOrderBook(ctx, "BTC-USD")
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/symbols/BTC-USD/book",
		},
		{
			name: "quote",
			call: func(c *RESTClient) error {
				_, err := c.GetQuote(ctx, "BTC-USD")
				return err
			},
			method: http.MethodGet,
			uri:    "/v1/symbols/BTC-USD/quote",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx, ts := newFakeExchange(t, http.StatusOK, `{}`)
			client := newTestClient(t, ts)

			if err := tt.call(client); err != nil {
				t.Fatalf("call: %v", err)
			}

			req := fx.last(t)
			if req.Method != tt.method {
				t.Errorf("method = %s, want %s", req.Method, tt.method)
			}
			if req.URI != tt.uri {
				t.Errorf("uri = %s, want %s", req.URI, tt.uri)
			}
			if req.Body != tt.body {
				t.Errorf("body = %s, want %s", req.Body, tt.body)
			}
			if !req.SignatureValid {
				t.Error("invalid signature")
			}
		})
	}
}

func amountPtr(a Amount) *Amount {
	return &a
}

// go test -v --run TestTraderID
func TestTraderID(t *testing.T) {
	_, ts := newFakeExchange(t, http.StatusOK, `{"accounts":[{"trader_id":"t-42","name":"main"},{"trader_id":"t-43"}]}`)
	client := newTestClient(t, ts)

	id, err := client.TraderID(context.Background())
	if err != nil {
		t.Fatalf("TraderID: %v", err)
	}
	if id != "t-42" {
		t.Fatalf("unexpected trader id %s", id)
	}
}

// go test -v --run TestTraderIDNoAccounts
func TestTraderIDNoAccounts(t *testing.T) {
	_, ts := newFakeExchange(t, http.StatusOK, `{"accounts":[]}`)
	client := newTestClient(t, ts)

	if _, err := client.TraderID(context.Background()); !errors.Is(err, ErrNoAccounts) {
		t.Fatalf("expected ErrNoAccounts, got %v", err)
	}
}

// go test -v --run TestAccountSummaryDecodesAmounts
func TestAccountSummaryDecodesAmounts(t *testing.T) {
	_, ts := newFakeExchange(t, http.StatusOK, `{
		"asset_balances": {"BTC": "1.25000000", "USD": "1000.00"},
		"asset_holds": {"USD": "100"},
		"net_liquidation_value_usd": "35000.12"
	}`)
	client := newTestClient(t, ts)

	summary, err := client.GetAccountSummary(context.Background(), "t-1")
	if err != nil {
		t.Fatalf("GetAccountSummary: %v", err)
	}
	if got := summary.AssetBalances["BTC"].String(); got != "1.25" {
		t.Errorf("BTC balance = %s", got)
	}
	if got := summary.AssetHolds["USD"].String(); got != "100" {
		t.Errorf("USD hold = %s", got)
	}
	if got := summary.NetLiquidationValueUSD.String(); got != "35000.12" {
		t.Errorf("net liquidation value = %s", got)
	}
}

// go test -v --run TestCreateOrderDecodesOrder
func TestCreateOrderDecodesOrder(t *testing.T) {
	_, ts := newFakeExchange(t, http.StatusAccepted, `{"order":{"order_id":"o-9","symbol":"BTC-USD","type":"limit","side":"buy","size":"1","price":"100.0000","status":"pending"}}`)
	client := newTestClient(t, ts)

	order, err := client.CreateOrder(context.Background(), LimitOrder("BTC-USD", SideBuy, AmountFromInt(1), AmountFromInt(100)))
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.OrderID != "o-9" || order.Side != SideBuy || order.Type != OrderTypeLimit {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.Price == nil || !order.Price.Equal(AmountFromInt(100).Decimal) {
		t.Fatalf("unexpected price %v", order.Price)
	}
}

// go test -v --run TestEndpointAPIError
func TestEndpointAPIError(t *testing.T) {
	_, ts := newFakeExchange(t, http.StatusBadRequest, `{"status":400,"message":"Insufficient funds"}`)
	client := newTestClient(t, ts)

	_, err := client.CreateOrder(context.Background(), LimitOrder("BTC-USD", SideBuy, AmountFromInt(1), AmountFromInt(100)))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "Insufficient funds" {
		t.Fatalf("unexpected api error %+v", apiErr)
	}
}

// go test -v --run TestCreateOrderValidation
func TestCreateOrderValidation(t *testing.T) {
	fx, ts := newFakeExchange(t, http.StatusOK, `{}`)
	client := newTestClient(t, ts)

	tests := []struct {
		name string
		req  CreateOrderRequest
	}{
		{"missing symbol", LimitOrder("", SideBuy, AmountFromInt(1), AmountFromInt(100))},
		{"bad side", LimitOrder("BTC-USD", OrderSide("hold"), AmountFromInt(1), AmountFromInt(100))},
		{"zero size", LimitOrder("BTC-USD", SideBuy, AmountFromInt(0), AmountFromInt(100))},
		{"limit without price", CreateOrderRequest{Symbol: "BTC-USD", Type: OrderTypeLimit, Side: SideBuy, Size: AmountFromInt(1)}},
		{"stop without stop price", CreateOrderRequest{Symbol: "BTC-USD", Type: OrderTypeStopMarket, Side: SideSell, Size: AmountFromInt(1)}},
		{"unknown type", CreateOrderRequest{Symbol: "BTC-USD", Type: OrderType("iceberg"), Side: SideSell, Size: AmountFromInt(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := client.CreateOrder(context.Background(), tt.req); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
	if fx.count() != 0 {
		t.Fatalf("invalid orders reached the exchange: %d", fx.count())
	}
}

// go test -v --run TestNewClientOrderID
func TestNewClientOrderID(t *testing.T) {
	a, err := NewClientOrderID()
	if err != nil {
		t.Fatalf("NewClientOrderID: %v", err)
	}
	b, err := NewClientOrderID()
	if err != nil {
		t.Fatalf("NewClientOrderID: %v", err)
	}
	if len(a) != 36 || a == b {
		t.Fatalf("unexpected ids %s %s", a, b)
	}
}

// go test -v --run TestParseGranularity
func TestParseGranularity(t *testing.T) {
	g, err := ParseGranularity("30m")
	if err != nil || g.Minutes() != 30 {
		t.Fatalf("ParseGranularity(30m) = %v, %v", g, err)
	}
	if _, err := ParseGranularity("2h"); err == nil {
		t.Fatal("expected error for unsupported granularity")
	}
}
