package pricing

import (
	"fmt"

	"hosting-storefront/internal/model"

	"github.com/shopspring/decimal"
)

// Entry is one plan+term row of the price table. PriceID is the
// external billing system's identifier for that combination; it
// carries no meaning here beyond the handoff.
type Entry struct {
	PerMonth decimal.Decimal
	Months   int
	PriceID  string
}

// DomainAnnualPrice is the default yearly registration price used for
// every domain line item.
var DomainAnnualPrice = decimal.RequireFromString("12.99")

var catalog = map[model.Plan]map[model.Term]Entry{
	model.PlanStudent: {
		model.TermMonthly:     entry("2.99", model.TermMonthly, "price_student_monthly"),
		model.TermAnnually:    entry("1.99", model.TermAnnually, "price_student_annually"),
		model.TermBiennially:  entry("1.79", model.TermBiennially, "price_student_biennially"),
		model.TermTriennially: entry("1.49", model.TermTriennially, "price_student_triennially"),
	},
	model.PlanStarter: {
		model.TermMonthly:     entry("4.99", model.TermMonthly, "price_starter_monthly"),
		model.TermAnnually:    entry("3.99", model.TermAnnually, "price_starter_annually"),
		model.TermBiennially:  entry("3.49", model.TermBiennially, "price_starter_biennially"),
		model.TermTriennially: entry("2.99", model.TermTriennially, "price_starter_triennially"),
	},
	model.PlanPremium: {
		model.TermMonthly:     entry("8.99", model.TermMonthly, "price_premium_monthly"),
		model.TermAnnually:    entry("6.99", model.TermAnnually, "price_premium_annually"),
		model.TermBiennially:  entry("6.49", model.TermBiennially, "price_premium_biennially"),
		model.TermTriennially: entry("5.99", model.TermTriennially, "price_premium_triennially"),
	},
	model.PlanBusiness: {
		model.TermMonthly:     entry("13.99", model.TermMonthly, "price_business_monthly"),
		model.TermAnnually:    entry("10.99", model.TermAnnually, "price_business_annually"),
		model.TermBiennially:  entry("9.99", model.TermBiennially, "price_business_biennially"),
		model.TermTriennially: entry("8.99", model.TermTriennially, "price_business_triennially"),
	},
}

func entry(perMonth string, term model.Term, priceID string) Entry {
	return Entry{
		PerMonth: decimal.RequireFromString(perMonth),
		Months:   term.Months(),
		PriceID:  priceID,
	}
}

// PriceOf resolves the catalog entry for a plan+term pair. A pair
// outside the table is a programming error and fails loudly rather
// than defaulting.
func PriceOf(plan model.Plan, term model.Term) (Entry, error) {
	terms, ok := catalog[plan]
	if !ok {
		return Entry{}, fmt.Errorf("no catalog entry for plan %q", plan)
	}
	e, ok := terms[term]
	if !ok {
		return Entry{}, fmt.Errorf("no catalog entry for plan %q term %q", plan, term)
	}
	return e, nil
}

// Plans returns the closed plan enumeration in display order.
func Plans() []model.Plan {
	return []model.Plan{model.PlanStudent, model.PlanStarter, model.PlanPremium, model.PlanBusiness}
}

// Terms returns the closed term enumeration in display order.
func Terms() []model.Term {
	return []model.Term{model.TermMonthly, model.TermAnnually, model.TermBiennially, model.TermTriennially}
}

// Product is a fixed-price email plan or addon keyed by a stable
// product code. Codes replace the old substring matching on item ids
// so that a renamed addon can never silently price at zero.
type Product struct {
	Code        string
	Title       string
	Description string
	PerMonth    decimal.Decimal
	Interval    string
}

var products = map[string]Product{
	"email-basic": {
		Code:        "email-basic",
		Title:       "Email Basic",
		Description: "1 mailbox, 10 GB storage",
		PerMonth:    decimal.RequireFromString("1.49"),
		Interval:    "month",
	},
	"email-pro": {
		Code:        "email-pro",
		Title:       "Email Pro",
		Description: "5 mailboxes, 50 GB storage",
		PerMonth:    decimal.RequireFromString("2.99"),
		Interval:    "month",
	},
	"email-enterprise": {
		Code:        "email-enterprise",
		Title:       "Email Enterprise",
		Description: "Unlimited mailboxes, 200 GB storage",
		PerMonth:    decimal.RequireFromString("4.99"),
		Interval:    "month",
	},
	"priority-support": {
		Code:        "priority-support",
		Title:       "Priority Support",
		Description: "24/7 support with 1h response time",
		PerMonth:    decimal.RequireFromString("4.99"),
		Interval:    "month",
	},
	"backups-daily": {
		Code:        "backups-daily",
		Title:       "Daily Backups",
		Description: "Automated daily backups, 30 day retention",
		PerMonth:    decimal.RequireFromString("1.99"),
		Interval:    "month",
	},
	"ssl-premium": {
		Code:        "ssl-premium",
		Title:       "Premium SSL",
		Description: "Organization-validated SSL certificate",
		PerMonth:    decimal.RequireFromString("3.99"),
		Interval:    "month",
	},
}

// ProductByCode resolves a known product code. An unmatched code is a
// hard error so that pricing gaps surface instead of charging zero.
func ProductByCode(code string) (Product, error) {
	p, ok := products[code]
	if !ok {
		return Product{}, fmt.Errorf("unknown product code %q", code)
	}
	return p, nil
}
