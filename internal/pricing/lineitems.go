package pricing

import (
	"fmt"
	"log"

	"hosting-storefront/internal/model"

	"github.com/shopspring/decimal"
)

// PriceData is an inline price descriptor for items that have no
// pre-registered price on the billing side.
type PriceData struct {
	Currency    string `json:"currency"`
	UnitAmount  int64  `json:"unit_amount"` // minor units
	Interval    string `json:"interval,omitempty"`
	ProductName string `json:"product_name"`
	Description string `json:"product_description,omitempty"`
}

// LineItem is one entry of the checkout-session request. Hosting plans
// reference the catalog's external price id; everything else ships an
// inline descriptor.
type LineItem struct {
	Price     string     `json:"price,omitempty"`
	PriceData *PriceData `json:"price_data,omitempty"`
	Quantity  int        `json:"quantity"`
}

// BuildLineItems converts cart items to the billing API's line-item
// shape. Unknown item types are zero-priced display rows and are
// excluded from the payment request entirely.
func BuildLineItems(items []model.CartItem) ([]LineItem, error) {
	lineItems := make([]LineItem, 0, len(items))
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}

		switch item.Type {
		case model.ItemHosting:
			entry, err := PriceOf(item.Plan, item.Term)
			if err != nil {
				return nil, fmt.Errorf("line item for hosting %q: %w", item.ID, err)
			}
			lineItems = append(lineItems, LineItem{
				Price:    entry.PriceID,
				Quantity: qty,
			})

		case model.ItemDomain:
			lineItems = append(lineItems, LineItem{
				PriceData: &PriceData{
					Currency:    "usd",
					UnitAmount:  minorUnits(DomainAnnualPrice),
					Interval:    "year",
					ProductName: "Domain registration",
					Description: item.Domain,
				},
				Quantity: qty,
			})

		case model.ItemEmail, model.ItemAddon:
			unit, title, subtitle, interval, err := resolveProduct(item)
			if err != nil {
				return nil, err
			}
			currency := item.Currency
			if currency == "" {
				currency = "usd"
			}
			lineItems = append(lineItems, LineItem{
				PriceData: &PriceData{
					Currency:    currency,
					UnitAmount:  minorUnits(unit),
					Interval:    interval,
					ProductName: title,
					Description: subtitle,
				},
				Quantity: qty,
			})

		default:
			log.Printf("pricing: dropping unknown item type %q (id=%s) from payment request", item.Type, item.ID)
		}
	}
	return lineItems, nil
}

func minorUnits(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}
