package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"hosting-storefront/internal/config"
	"hosting-storefront/internal/dto"
	"hosting-storefront/internal/model"
	"hosting-storefront/internal/pricing"
)

// ErrBillingUnreachable marks a connectivity failure, as opposed to an
// application-level rejection carried by APIError.
var ErrBillingUnreachable = errors.New("billing api unreachable")

// APIError is a non-2xx rejection from the billing API. Message is the
// server-provided error string and is surfaced to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("billing api error %d: %s", e.StatusCode, e.Message)
}

type CreateSessionRequest struct {
	PlanID       string             `json:"planId"`
	BillingCycle string             `json:"billingCycle"`
	TrialActive  bool               `json:"trialActive"`
	Customer     dto.Customer       `json:"customer"`
	CartItems    []model.CartItem   `json:"cartItems"`
	LineItems    []pricing.LineItem `json:"line_items"`
	SuccessURL   string             `json:"success_url"`
	CancelURL    string             `json:"cancel_url"`
}

type CreateSessionResponse struct {
	URL string `json:"url"`
}

type BillingClient interface {
	CreateCheckoutSession(ctx context.Context, req *CreateSessionRequest) (*CreateSessionResponse, error)
}

type billingClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	apiKey     string
}

func NewBillingClient(billingCfg *config.Billing) BillingClient {
	return &billingClientImpl{
		httpClient: &http.Client{
			Timeout: billingCfg.Timeout,
		},
		baseApiURL: billingCfg.BaseAPIURL,
		apiKey:     billingCfg.APIKey,
	}
}

func (c *billingClientImpl) CreateCheckoutSession(ctx context.Context, sessionReq *CreateSessionRequest) (*CreateSessionResponse, error) {
	body, err := json.Marshal(sessionReq)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/api/checkout/create-session",
		bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBillingUnreachable, err)
	}
	defer resp.Body.Close()

	var result struct {
		URL   string `json:"url"`
		Error string `json:"error"`
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(&result); decodeErr != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		}
		return nil, fmt.Errorf("decode billing response: %w", decodeErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || result.Error != "" {
		message := result.Error
		if message == "" {
			message = resp.Status
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if result.URL == "" {
		return nil, fmt.Errorf("billing response missing checkout url")
	}

	return &CreateSessionResponse{URL: result.URL}, nil
}
