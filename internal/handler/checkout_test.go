package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hosting-storefront/internal/client"
	"hosting-storefront/internal/dto"
	"hosting-storefront/internal/pricing"
	"hosting-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCheckoutService struct {
	resp *dto.CheckoutResponse
	err  error
}

func (m *mockCheckoutService) Summary(_ context.Context, _ string) (*pricing.Order, error) {
	return &pricing.Order{}, nil
}

func (m *mockCheckoutService) CreateSession(_ context.Context, _ string, _ *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func doCheckout(t *testing.T, svc service.CheckoutService) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/create-session",
		strings.NewReader(`{"customer":{"email":"jane@example.com"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session_id", "s1")

	h := NewCheckoutHandler(svc)
	return rec, h.CreateSession(c)
}

func TestCreateSessionSuccess(t *testing.T) {
	rec, err := doCheckout(t, &mockCheckoutService{
		resp: &dto.CheckoutResponse{URL: "https://pay.example.com/cs_1"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://pay.example.com/cs_1", body["url"])
}

func TestCreateSessionValidationErrorIs400(t *testing.T) {
	rec, err := doCheckout(t, &mockCheckoutService{
		err: &service.ValidationError{Field: "email", Reason: "is required"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "email: is required", body["error"])
}

func TestCreateSessionBusinessRuleIs400(t *testing.T) {
	rec, err := doCheckout(t, &mockCheckoutService{err: service.ErrHostingNeedsDomain})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, service.ErrHostingNeedsDomain.Error(), body["error"])
}

func TestCreateSessionBillingRejectionIsVerbatim(t *testing.T) {
	rec, err := doCheckout(t, &mockCheckoutService{
		err: &client.APIError{StatusCode: 422, Message: "card country not supported"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "card country not supported", body["error"])
}

func TestCreateSessionUnreachableIsGeneric(t *testing.T) {
	rec, err := doCheckout(t, &mockCheckoutService{err: client.ErrBillingUnreachable})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unable to reach payment processor", body["error"])
}
