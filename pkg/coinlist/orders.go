package coinlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gofrs/uuid"
)

// CreateOrderRequest is the body of POST /v1/orders. Field order is the
// serialization order, which is part of the signed payload.
type CreateOrderRequest struct {
	Symbol      string    `json:"symbol"`
	Type        OrderType `json:"type"`
	Side        OrderSide `json:"side"`
	Size        Amount    `json:"size"`
	Price       *Amount   `json:"price,omitempty"`
	StopPrice   *Amount   `json:"stop_price,omitempty"`
	StopTrigger string    `json:"stop_trigger,omitempty"`
	PostOnly    bool      `json:"post_only,omitempty"`
	ClientID    string    `json:"client_id,omitempty"`
	Origin      string    `json:"origin"`
}

// LimitOrder builds a limit order request.
func LimitOrder(symbol string, side OrderSide, size, price Amount) CreateOrderRequest {
	return CreateOrderRequest{
		Symbol: symbol,
		Type:   OrderTypeLimit,
		Side:   side,
		Size:   size,
		Price:  &price,
		Origin: OrderOrigin,
	}
}

// MarketOrder builds a market order request.
func MarketOrder(symbol string, side OrderSide, size Amount) CreateOrderRequest {
	return CreateOrderRequest{
		Symbol: symbol,
		Type:   OrderTypeMarket,
		Side:   side,
		Size:   size,
		Origin: OrderOrigin,
	}
}

// Validate checks the fields the exchange rejects outright.
func (r CreateOrderRequest) Validate() error {
	if r.Symbol == "" {
		return errors.New("order: symbol required")
	}
	if r.Side != SideBuy && r.Side != SideSell {
		return fmt.Errorf("order: invalid side %q", r.Side)
	}
	if !r.Type.IsValid() {
		return fmt.Errorf("order: invalid type %q", r.Type)
	}
	if !r.Size.IsPositive() {
		return errors.New("order: size must be > 0")
	}
	switch r.Type {
	case OrderTypeLimit, OrderTypeStopLimit, OrderTypeTakeLimit:
		if r.Price == nil || !r.Price.IsPositive() {
			return fmt.Errorf("order: %s order requires a price", r.Type)
		}
	}
	switch r.Type {
	case OrderTypeStopMarket, OrderTypeStopLimit, OrderTypeTakeMarket, OrderTypeTakeLimit:
		if r.StopPrice == nil {
			return fmt.Errorf("order: %s order requires a stop price", r.Type)
		}
	}
	return nil
}

func (r CreateOrderRequest) withOrigin() CreateOrderRequest {
	if r.Origin == "" {
		r.Origin = OrderOrigin
	}
	return r
}

// ModifyOrderRequest is the body of PATCH /v1/orders/{order_id}.
type ModifyOrderRequest struct {
	Type      OrderType `json:"type"`
	Size      Amount    `json:"size"`
	Price     *Amount   `json:"price,omitempty"`
	StopPrice *Amount   `json:"stop_price,omitempty"`
}

// NewClientOrderID returns a time-based UUID suitable for CreateOrderRequest.ClientID.
func NewClientOrderID() (string, error) {
	id, err := uuid.NewV1()
	if err != nil {
		return "", fmt.Errorf("generate client order id: %w", err)
	}
	return id.String(), nil
}

func orderPath(orderID string) string {
	return "/v1/orders/" + url.PathEscape(orderID)
}

func (c *RESTClient) ListOrders(ctx context.Context, q OrdersQuery) ([]Order, error) {
	var resp OrdersResponse
	if err := c.call(ctx, http.MethodGet, "/v1/orders", nil, q.Values(), &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// CreateOrder places one order and returns it as acknowledged by the exchange.
func (c *RESTClient) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	req = req.withOrigin()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp OrderResponse
	if err := c.call(ctx, http.MethodPost, "/v1/orders", req, nil, &resp); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &resp.Order, nil
}

// CreateOrders places several orders in one request.
func (c *RESTClient) CreateOrders(ctx context.Context, reqs []CreateOrderRequest) (json.RawMessage, error) {
	if len(reqs) == 0 {
		return nil, errors.New("create orders: no orders")
	}
	body := make([]CreateOrderRequest, 0, len(reqs))
	for i, r := range reqs {
		r = r.withOrigin()
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("create orders: order %d: %w", i, err)
		}
		body = append(body, r)
	}

	var resp json.RawMessage
	if err := c.call(ctx, http.MethodPost, "/v1/orders/bulk", body, nil, &resp); err != nil {
		return nil, fmt.Errorf("create orders: %w", err)
	}
	return resp, nil
}

func (c *RESTClient) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	var resp OrderResponse
	if err := c.call(ctx, http.MethodGet, orderPath(orderID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

func (c *RESTClient) ModifyOrder(ctx context.Context, orderID string, req ModifyOrderRequest) (*Order, error) {
	var resp OrderResponse
	if err := c.call(ctx, http.MethodPatch, orderPath(orderID), req, nil, &resp); err != nil {
		return nil, fmt.Errorf("modify order %s: %w", orderID, err)
	}
	return &resp.Order, nil
}

// CancelOrder cancels a single order.
func (c *RESTClient) CancelOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	body := map[string]string{"order_id": orderID}

	var resp json.RawMessage
	if err := c.call(ctx, http.MethodDelete, orderPath(orderID), body, nil, &resp); err != nil {
		return nil, fmt.Errorf("cancel order %s: %w", orderID, err)
	}
	return resp, nil
}

// CancelAllOrders cancels every open order, or only those of symbol when set.
func (c *RESTClient) CancelAllOrders(ctx context.Context, symbol string) (json.RawMessage, error) {
	var body any
	if symbol != "" {
		body = map[string]string{"symbol": symbol}
	}

	var resp json.RawMessage
	if err := c.call(ctx, http.MethodDelete, "/v1/orders", body, nil, &resp); err != nil {
		return nil, fmt.Errorf("cancel all orders: %w", err)
	}
	return resp, nil
}

// CancelOrders cancels the given orders in one request.
func (c *RESTClient) CancelOrders(ctx context.Context, orderIDs []string) (json.RawMessage, error) {
	if len(orderIDs) == 0 {
		return nil, errors.New("cancel orders: no order ids")
	}

	var resp json.RawMessage
	if err := c.call(ctx, http.MethodDelete, "/v1/orders/bulk", orderIDs, nil, &resp); err != nil {
		return nil, fmt.Errorf("cancel orders: %w", err)
	}
	return resp, nil
}

// ReportRequest is the body of POST /v1/reports.
type ReportRequest struct {
	Type    string `json:"type"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// CreateReport requests an account report to be generated and delivered.
func (c *RESTClient) CreateReport(ctx context.Context, req ReportRequest) (json.RawMessage, error) {
	if req.Type == "" {
		return nil, errors.New("create report: type required")
	}

	var resp json.RawMessage
	if err := c.call(ctx, http.MethodPost, "/v1/reports", req, nil, &resp); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return resp, nil
}
