package dto

import "hosting-storefront/internal/model"

type AddItemRequest struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`

	Plan  string `json:"plan,omitempty"`
	Term  string `json:"term,omitempty"`
	Trial bool   `json:"trial,omitempty"`

	Domain string `json:"domain,omitempty"`

	ProductCode string `json:"product_code,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents,omitempty"`
	Interval    string `json:"interval,omitempty"`
	Currency    string `json:"currency,omitempty"`

	// Replace confirms swapping out an existing hosting item that
	// differs from the one being added.
	Replace bool `json:"replace,omitempty"`
}

type AddItemResponse struct {
	Outcome string           `json:"outcome"` // added, duplicate, replaced, needs_confirmation
	Cart    []model.CartItem `json:"cart"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Items []model.CartItem `json:"items"`
}

type Customer struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

type UTM struct {
	Source   string `json:"source,omitempty"`
	Medium   string `json:"medium,omitempty"`
	Campaign string `json:"campaign,omitempty"`
}

type CheckoutRequest struct {
	Customer   Customer `json:"customer"`
	SuccessURL string   `json:"success_url,omitempty"`
	CancelURL  string   `json:"cancel_url,omitempty"`
	UTM        UTM      `json:"utm,omitempty"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

type DomainCheckRequest struct {
	Domain string `json:"domain"`
}

type PlanPrice struct {
	Term     string `json:"term"`
	Months   int    `json:"months"`
	PerMonth string `json:"per_month"`
	PriceID  string `json:"price_id"`
}

type PlanListing struct {
	Plan   string      `json:"plan"`
	Prices []PlanPrice `json:"prices"`
}
