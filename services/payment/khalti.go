package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// LookupRequest is the verification payload forwarded to the gateway.
type LookupRequest struct {
	Token  string  `json:"token"`
	Amount float64 `json:"amount"`
}

// LookupResult is the gateway's verdict on a payment.
type LookupResult struct {
	Status        string         `json:"status"`
	TransactionID string         `json:"transaction_id,omitempty"`
	Raw           map[string]any `json:"data,omitempty"`
}

// Verified reports whether the gateway settled the payment.
func (r *LookupResult) Verified() bool {
	return r.Status == "Completed"
}

// GatewayClient talks to the third-party payment verifier. It is an
// unreliable remote dependency: callers treat failures as transient and never
// let them corrupt booking state.
type GatewayClient interface {
	Lookup(ctx context.Context, req LookupRequest) (*LookupResult, error)
}

// KhaltiClient implements GatewayClient against Khalti's epayment lookup API.
type KhaltiClient struct {
	baseURL   string
	secretKey string
	client    *http.Client
	logger    *zap.Logger
}

// NewKhaltiClient builds a gateway client with a bounded request timeout.
func NewKhaltiClient(baseURL, secretKey string, logger *zap.Logger) *KhaltiClient {
	return &KhaltiClient{
		baseURL:   baseURL,
		secretKey: secretKey,
		client:    &http.Client{Timeout: 10 * time.Second},
		logger:    logger,
	}
}

// Lookup asks the gateway whether a payment token settled.
func (c *KhaltiClient) Lookup(ctx context.Context, req LookupRequest) (*LookupResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lookup request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v2/epayment/lookup/", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Key "+c.secretKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gateway lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway lookup returned status %d", resp.StatusCode)
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	result := &LookupResult{Raw: raw}
	if s, ok := raw["status"].(string); ok {
		result.Status = s
	}
	if t, ok := raw["transaction_id"].(string); ok {
		result.TransactionID = t
	}

	c.logger.Debug("gateway lookup completed", zap.String("status", result.Status))
	return result, nil
}
