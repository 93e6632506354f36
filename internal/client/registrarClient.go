package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"hosting-storefront/internal/config"
)

type DomainCheckResult struct {
	Domain    string `json:"domain"`
	Available bool   `json:"available"`
	Price     string `json:"price,omitempty"`
}

type RegistrarClient interface {
	CheckAvailability(ctx context.Context, domain string) (*DomainCheckResult, error)
}

type registrarClientImpl struct {
	httpClient *http.Client
	baseApiURL string
}

func NewRegistrarClient(registrarCfg *config.Registrar) RegistrarClient {
	return &registrarClientImpl{
		httpClient: &http.Client{
			Timeout: registrarCfg.Timeout,
		},
		baseApiURL: registrarCfg.BaseAPIURL,
	}
}

func (c *registrarClientImpl) CheckAvailability(ctx context.Context, domain string) (*DomainCheckResult, error) {
	payload := map[string]string{"domain": domain}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/api/domains/check",
		bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registrar request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("registrar error %d: %s", resp.StatusCode, string(b))
	}

	var result DomainCheckResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode registrar response: %w", err)
	}

	return &result, nil
}
