// Package gateway is the payment-gateway seam: the one real network edge
// of the system. The simulator stands in for it during development; the
// HTTP client talks to an actual gateway with a bounded timeout.
package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// ChargeRequest describes one capture attempt.
type ChargeRequest struct {
	OrderID     string  `json:"orderId"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Method      string  `json:"method"`
	Description string  `json:"description"`
}

// ChargeResult is a successful capture.
type ChargeResult struct {
	PaymentID  string    `json:"paymentId"`
	CapturedAt time.Time `json:"capturedAt"`
}

// Client charges an order. Implementations must honor ctx cancellation.
type Client interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// NewOrderID returns a fresh gateway order reference.
func NewOrderID() string {
	return "order_" + shortToken()
}

func shortToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:14]
}

// Simulator always captures after a fixed processing delay.
type Simulator struct {
	Delay time.Duration
}

// NewSimulator uses the 2s delay the portal's mock checkout showed.
func NewSimulator() *Simulator {
	return &Simulator{Delay: 2 * time.Second}
}

func (s *Simulator) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid charge amount %.2f", req.Amount)
	}
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return &ChargeResult{
		PaymentID:  "pay_" + shortToken(),
		CapturedAt: time.Now().UTC(),
	}, nil
}

// HTTPClient charges through a real gateway over HTTP.
type HTTPClient struct {
	client *resty.Client
}

// NewHTTP builds a gateway client with a per-request timeout budget.
func NewHTTP(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	return &HTTPClient{client: client}
}

func (h *HTTPClient) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	var out struct {
		PaymentID  string    `json:"paymentId"`
		Status     string    `json:"status"`
		CapturedAt time.Time `json:"capturedAt"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/charges")
	if err != nil {
		return nil, fmt.Errorf("gateway charge: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("gateway charge failed: %s", resp.Status())
	}
	if out.Status != "captured" {
		return nil, fmt.Errorf("gateway declined charge: %s", out.Status)
	}

	captured := out.CapturedAt
	if captured.IsZero() {
		captured = time.Now().UTC()
	}
	return &ChargeResult{PaymentID: out.PaymentID, CapturedAt: captured}, nil
}
