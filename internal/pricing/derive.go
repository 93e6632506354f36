package pricing

import (
	"fmt"
	"log"
	"strings"

	"hosting-storefront/internal/model"

	"github.com/shopspring/decimal"
)

// Detail is one display row of the order summary.
type Detail struct {
	Title            string          `json:"title"`
	Subtitle         string          `json:"subtitle,omitempty"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Quantity         int             `json:"quantity"`
	DueToday         decimal.Decimal `json:"due_today"`
	RecurringMonthly decimal.Decimal `json:"recurring_monthly"`
	AfterTrial       decimal.Decimal `json:"after_trial"`
	BilledAfterTrial bool            `json:"billed_after_trial,omitempty"`
}

// Order is the derived summary for a cart: per-item display details
// plus totals. AfterTrialTotal is display-only; when TrialActive the
// amount authorized at checkout is still zero.
type Order struct {
	Details            []Detail        `json:"details"`
	DueToday           decimal.Decimal `json:"due_today"`
	RecurringMonthly   decimal.Decimal `json:"recurring_monthly"`
	AfterTrialTotal    decimal.Decimal `json:"after_trial_total"`
	TrialActive        bool            `json:"trial_active"`
	FreeDomainDiscount decimal.Decimal `json:"free_domain_discount"`
}

// DeriveOrder maps cart items to display details and totals. The trial
// flag is computed once from the hosting item and passed into every
// per-item branch; a domain never re-derives it from its siblings.
func DeriveOrder(items []model.CartItem) (*Order, error) {
	trialActive := false
	hostingMonths := 0
	hasDomain := false
	for _, item := range items {
		switch item.Type {
		case model.ItemHosting:
			if item.Trial {
				trialActive = true
			}
			hostingMonths = item.Term.Months()
		case model.ItemDomain:
			hasDomain = true
		}
	}

	order := &Order{
		DueToday:           decimal.Zero,
		RecurringMonthly:   decimal.Zero,
		AfterTrialTotal:    decimal.Zero,
		TrialActive:        trialActive,
		FreeDomainDiscount: decimal.Zero,
	}
	if hostingMonths >= 12 && hasDomain && !trialActive {
		order.FreeDomainDiscount = DomainAnnualPrice
	}

	for _, item := range items {
		detail, err := priceItem(item, trialActive)
		if err != nil {
			return nil, err
		}
		order.Details = append(order.Details, *detail)
		order.DueToday = order.DueToday.Add(detail.DueToday)
		order.RecurringMonthly = order.RecurringMonthly.Add(detail.RecurringMonthly)
		order.AfterTrialTotal = order.AfterTrialTotal.Add(detail.AfterTrial)
	}
	return order, nil
}

func priceItem(item model.CartItem, trialActive bool) (*Detail, error) {
	qty := item.Quantity
	if qty < 1 {
		qty = 1
	}
	q := decimal.NewFromInt(int64(qty))

	switch item.Type {
	case model.ItemHosting:
		entry, err := PriceOf(item.Plan, item.Term)
		if err != nil {
			return nil, fmt.Errorf("price hosting item %q: %w", item.ID, err)
		}
		detail := &Detail{
			Title:            planTitle(item.Plan),
			Subtitle:         termSubtitle(item.Term),
			UnitPrice:        entry.PerMonth,
			Quantity:         qty,
			DueToday:         decimal.Zero,
			RecurringMonthly: decimal.Zero,
			AfterTrial:       decimal.Zero,
		}
		charge := entry.PerMonth.Mul(q)
		if entry.Months > 1 {
			charge = entry.PerMonth.Mul(decimal.NewFromInt(int64(entry.Months))).Mul(q)
		}
		if item.Trial {
			detail.AfterTrial = charge
			detail.BilledAfterTrial = true
			return detail, nil
		}
		detail.DueToday = charge
		if entry.Months == 1 {
			detail.RecurringMonthly = entry.PerMonth.Mul(q)
		}
		return detail, nil

	case model.ItemDomain:
		detail := &Detail{
			Title:            item.Domain,
			Subtitle:         "1 year registration",
			UnitPrice:        DomainAnnualPrice,
			Quantity:         qty,
			DueToday:         decimal.Zero,
			RecurringMonthly: decimal.Zero,
			AfterTrial:       decimal.Zero,
		}
		charge := DomainAnnualPrice.Mul(q)
		if trialActive {
			detail.AfterTrial = charge
			detail.BilledAfterTrial = true
			return detail, nil
		}
		detail.DueToday = charge
		return detail, nil

	case model.ItemEmail, model.ItemAddon:
		unit, title, subtitle, interval, err := resolveProduct(item)
		if err != nil {
			return nil, err
		}
		detail := &Detail{
			Title:            title,
			Subtitle:         subtitle,
			UnitPrice:        unit,
			Quantity:         qty,
			DueToday:         unit.Mul(q),
			RecurringMonthly: decimal.Zero,
			AfterTrial:       decimal.Zero,
		}
		if interval == "month" {
			detail.RecurringMonthly = unit.Mul(q)
		}
		return detail, nil

	default:
		// Unknown item types are tolerated with a zero price so a
		// display glitch never blocks checkout, but they are logged
		// because a zero line is lost revenue.
		log.Printf("pricing: unknown cart item type %q (id=%s), priced at zero", item.Type, item.ID)
		return &Detail{
			Title:            item.ID,
			UnitPrice:        decimal.Zero,
			Quantity:         qty,
			DueToday:         decimal.Zero,
			RecurringMonthly: decimal.Zero,
			AfterTrial:       decimal.Zero,
		}, nil
	}
}

// resolveProduct prices an email/addon item: an explicit inline price
// wins, otherwise the stable product code is looked up. An unknown
// code is a hard error, never a silent zero.
func resolveProduct(item model.CartItem) (unit decimal.Decimal, title, subtitle, interval string, err error) {
	if item.PriceCents > 0 {
		title = item.Name
		if title == "" {
			title = item.ID
		}
		return decimal.NewFromInt(item.PriceCents).Shift(-2), title, item.Description, item.Interval, nil
	}

	code := item.ProductCode
	if code == "" {
		code = item.ID
	}
	p, perr := ProductByCode(code)
	if perr != nil {
		return decimal.Zero, "", "", "", fmt.Errorf("price %s item %q: %w", item.Type, item.ID, perr)
	}
	return p.PerMonth, p.Title, p.Description, p.Interval, nil
}

func planTitle(plan model.Plan) string {
	name := string(plan)
	if name == "" {
		return "Hosting"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " hosting"
}

func termSubtitle(term model.Term) string {
	if term == model.TermMonthly {
		return "billed monthly"
	}
	return fmt.Sprintf("%d months", term.Months())
}
