package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"

	"hosting-storefront/internal/client"
	"hosting-storefront/internal/config"
	"hosting-storefront/internal/dto"
	"hosting-storefront/internal/model"
	"hosting-storefront/internal/pricing"
	"hosting-storefront/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrHostingNeedsDomain = errors.New("hosting plans require a domain in the cart")
	ErrDomainOnlyCheckout = errors.New("domain-only checkout is not supported")
)

// ValidationError is a missing or malformed billing field, caught
// before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

type CheckoutService interface {
	Summary(ctx context.Context, sessionID string) (*pricing.Order, error)
	CreateSession(ctx context.Context, sessionID string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	billingClient client.BillingClient
	cartService   CartService
	checkoutRepo  repository.CheckoutRepository
	baseURL       string
	successURL    string
	cancelURL     string
}

func NewCheckoutService(
	billingClient client.BillingClient,
	cartService CartService,
	checkoutRepo repository.CheckoutRepository,
	cfg *config.Config,
) CheckoutService {
	return &checkoutServiceImpl{
		billingClient: billingClient,
		cartService:   cartService,
		checkoutRepo:  checkoutRepo,
		baseURL:       cfg.BaseURL,
		successURL:    cfg.Checkout.SuccessURL,
		cancelURL:     cfg.Checkout.CancelURL,
	}
}

func (s *checkoutServiceImpl) Summary(ctx context.Context, sessionID string) (*pricing.Order, error) {
	cart, err := s.cartService.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return pricing.DeriveOrder(cart.Items())
}

func (s *checkoutServiceImpl) CreateSession(ctx context.Context, sessionID string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if err := validateCustomer(&req.Customer); err != nil {
		return nil, err
	}

	cart, err := s.cartService.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.Len() == 0 {
		return nil, ErrEmptyCart
	}
	if cart.Hosting != nil && !cart.HasDomain() {
		return nil, ErrHostingNeedsDomain
	}
	if cart.Hosting == nil && cart.HasDomain() {
		return nil, ErrDomainOnlyCheckout
	}

	items := cart.Items()
	order, err := pricing.DeriveOrder(items)
	if err != nil {
		return nil, fmt.Errorf("derive order: %w", err)
	}
	lineItems, err := pricing.BuildLineItems(items)
	if err != nil {
		return nil, fmt.Errorf("build line items: %w", err)
	}

	planID := ""
	billingCycle := ""
	if cart.Hosting != nil {
		entry, err := pricing.PriceOf(cart.Hosting.Plan, cart.Hosting.Term)
		if err != nil {
			return nil, fmt.Errorf("price hosting plan: %w", err)
		}
		planID = entry.PriceID
		billingCycle = cart.Hosting.Term.BillingCycle()
	}

	successURL := req.SuccessURL
	if successURL == "" {
		successURL = s.baseURL + s.successURL
	}
	cancelURL := req.CancelURL
	if cancelURL == "" {
		cancelURL = s.baseURL + s.cancelURL
	}

	resp, err := s.billingClient.CreateCheckoutSession(ctx, &client.CreateSessionRequest{
		PlanID:       planID,
		BillingCycle: billingCycle,
		TrialActive:  order.TrialActive,
		Customer:     req.Customer,
		CartItems:    items,
		LineItems:    lineItems,
		SuccessURL:   successURL,
		CancelURL:    cancelURL,
	})
	if err != nil {
		// cart untouched, user corrects input or retries manually
		return nil, err
	}

	record := &model.CheckoutRecord{
		ID:                    uuid.NewString(),
		SessionID:             sessionID,
		Status:                "CREATED",
		PlanID:                planID,
		BillingCycle:          billingCycle,
		TrialActive:           order.TrialActive,
		DueTodayCents:         order.DueToday.Shift(2).Round(0).IntPart(),
		RecurringMonthlyCents: order.RecurringMonthly.Shift(2).Round(0).IntPart(),
		Email:                 req.Customer.Email,
		CheckoutURL:           resp.URL,
		UTMSource:             req.UTM.Source,
		UTMMedium:             req.UTM.Medium,
		UTMCampaign:           req.UTM.Campaign,
	}
	if err := s.checkoutRepo.Create(ctx, record); err != nil {
		// the payment page already exists, do not fail the handoff
		log.Printf("checkout: store checkout record: %v", err)
	}

	// the external payment page takes over from here
	if err := s.cartService.Clear(ctx, sessionID); err != nil {
		log.Printf("checkout: clear cart after handoff: %v", err)
	}

	return &dto.CheckoutResponse{URL: resp.URL}, nil
}

func validateCustomer(c *dto.Customer) error {
	required := []struct {
		field string
		value string
	}{
		{"email", c.Email},
		{"name", c.Name},
		{"address1", c.Address1},
		{"city", c.City},
		{"postcode", c.Postcode},
		{"country", c.Country},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Reason: "is required"}
		}
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return &ValidationError{Field: "email", Reason: "is not a valid email address"}
	}
	return nil
}
