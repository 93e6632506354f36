package pricing

import (
	"testing"

	"hosting-storefront/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hostingItem(plan model.Plan, term model.Term, trial bool) model.CartItem {
	return model.CartItem{
		ID:       string(plan) + "-" + string(term),
		Type:     model.ItemHosting,
		Quantity: 1,
		Plan:     plan,
		Term:     term,
		Trial:    trial,
	}
}

func domainItem(name string) model.CartItem {
	return model.CartItem{
		ID:       name,
		Type:     model.ItemDomain,
		Quantity: 1,
		Domain:   name,
	}
}

func TestDeriveOrderEmptyCart(t *testing.T) {
	order, err := DeriveOrder(nil)
	require.NoError(t, err)

	assert.Empty(t, order.Details)
	assert.True(t, order.DueToday.IsZero())
	assert.True(t, order.RecurringMonthly.IsZero())
	assert.False(t, order.TrialActive)
}

func TestDeriveOrderAnnualHosting(t *testing.T) {
	order, err := DeriveOrder([]model.CartItem{
		hostingItem(model.PlanStarter, model.TermAnnually, false),
	})
	require.NoError(t, err)

	entry, err := PriceOf(model.PlanStarter, model.TermAnnually)
	require.NoError(t, err)

	want := entry.PerMonth.Mul(decimal.NewFromInt(12))
	assert.True(t, order.DueToday.Equal(want),
		"due today %s, want %s", order.DueToday, want)
	assert.True(t, order.RecurringMonthly.IsZero(),
		"multi-month terms are paid upfront, not monthly")
}

func TestDeriveOrderMonthlyHosting(t *testing.T) {
	order, err := DeriveOrder([]model.CartItem{
		hostingItem(model.PlanStarter, model.TermMonthly, false),
	})
	require.NoError(t, err)

	entry, err := PriceOf(model.PlanStarter, model.TermMonthly)
	require.NoError(t, err)

	assert.True(t, order.DueToday.Equal(entry.PerMonth))
	assert.True(t, order.RecurringMonthly.Equal(entry.PerMonth))
}

func TestDeriveOrderTrialDefersHostingAndDomain(t *testing.T) {
	order, err := DeriveOrder([]model.CartItem{
		hostingItem(model.PlanPremium, model.TermAnnually, true),
		domainItem("example.com"),
	})
	require.NoError(t, err)

	assert.True(t, order.TrialActive)
	assert.True(t, order.DueToday.IsZero(), "trial defers every charge")

	for _, detail := range order.Details {
		assert.True(t, detail.DueToday.IsZero(), "%s charged during trial", detail.Title)
		assert.True(t, detail.BilledAfterTrial)
	}

	entry, err := PriceOf(model.PlanPremium, model.TermAnnually)
	require.NoError(t, err)
	want := entry.PerMonth.Mul(decimal.NewFromInt(12)).Add(DomainAnnualPrice)
	assert.True(t, order.AfterTrialTotal.Equal(want),
		"after-trial total %s, want %s", order.AfterTrialTotal, want)
}

func TestDeriveOrderFreeDomainDiscount(t *testing.T) {
	order, err := DeriveOrder([]model.CartItem{
		hostingItem(model.PlanStarter, model.TermTriennially, false),
		domainItem("example.com"),
	})
	require.NoError(t, err)

	assert.True(t, order.FreeDomainDiscount.Equal(DomainAnnualPrice),
		"36-month hosting with a domain qualifies for the free domain")
}

func TestDeriveOrderNoFreeDomainOnMonthlyTerm(t *testing.T) {
	order, err := DeriveOrder([]model.CartItem{
		hostingItem(model.PlanStarter, model.TermMonthly, false),
		domainItem("example.com"),
	})
	require.NoError(t, err)

	assert.True(t, order.FreeDomainDiscount.IsZero())
}

func TestDeriveOrderDomainChargedWithoutTrial(t *testing.T) {
	order, err := DeriveOrder([]model.CartItem{domainItem("example.com")})
	require.NoError(t, err)

	assert.True(t, order.DueToday.Equal(DomainAnnualPrice))
	assert.True(t, order.RecurringMonthly.IsZero())
}

func TestDeriveOrderAddonByProductCode(t *testing.T) {
	order, err := DeriveOrder([]model.CartItem{
		{ID: "backups-daily", Type: model.ItemAddon, Quantity: 1},
	})
	require.NoError(t, err)

	p, err := ProductByCode("backups-daily")
	require.NoError(t, err)

	require.Len(t, order.Details, 1)
	assert.Equal(t, p.Title, order.Details[0].Title)
	assert.True(t, order.DueToday.Equal(p.PerMonth))
	assert.True(t, order.RecurringMonthly.Equal(p.PerMonth), "monthly addons recur")
}

func TestDeriveOrderAddonWithInlinePrice(t *testing.T) {
	order, err := DeriveOrder([]model.CartItem{
		{
			ID:         "migration-service",
			Type:       model.ItemAddon,
			Quantity:   2,
			Name:       "Site Migration",
			PriceCents: 2500,
			Interval:   "one_time",
			Currency:   "usd",
		},
	})
	require.NoError(t, err)

	want := decimal.RequireFromString("50.00")
	assert.True(t, order.DueToday.Equal(want), "due today %s, want %s", order.DueToday, want)
	assert.True(t, order.RecurringMonthly.IsZero())
}

func TestDeriveOrderUnknownProductCodeIsHardError(t *testing.T) {
	_, err := DeriveOrder([]model.CartItem{
		{ID: "shiny-new-addon", Type: model.ItemAddon, Quantity: 1},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shiny-new-addon")
}

func TestDeriveOrderUnknownTypeIsZeroPricedNotFatal(t *testing.T) {
	order, err := DeriveOrder([]model.CartItem{
		hostingItem(model.PlanStudent, model.TermMonthly, false),
		{ID: "mystery-item", Type: "mystery", Quantity: 1},
	})
	require.NoError(t, err)

	entry, err := PriceOf(model.PlanStudent, model.TermMonthly)
	require.NoError(t, err)

	require.Len(t, order.Details, 2)
	assert.Equal(t, "mystery-item", order.Details[1].Title)
	assert.True(t, order.Details[1].DueToday.IsZero())
	assert.True(t, order.DueToday.Equal(entry.PerMonth), "total excludes the unknown item")
}

func TestBuildLineItemsHostingReferencesPriceID(t *testing.T) {
	lineItems, err := BuildLineItems([]model.CartItem{
		hostingItem(model.PlanBusiness, model.TermAnnually, false),
	})
	require.NoError(t, err)

	entry, err := PriceOf(model.PlanBusiness, model.TermAnnually)
	require.NoError(t, err)

	require.Len(t, lineItems, 1)
	assert.Equal(t, entry.PriceID, lineItems[0].Price)
	assert.Nil(t, lineItems[0].PriceData, "hosting never ships an inline price")
	assert.Equal(t, 1, lineItems[0].Quantity)
}

func TestBuildLineItemsDomainIsInline(t *testing.T) {
	lineItems, err := BuildLineItems([]model.CartItem{domainItem("example.com")})
	require.NoError(t, err)

	require.Len(t, lineItems, 1)
	require.NotNil(t, lineItems[0].PriceData)
	assert.Empty(t, lineItems[0].Price)
	assert.Equal(t, int64(1299), lineItems[0].PriceData.UnitAmount)
	assert.Equal(t, "year", lineItems[0].PriceData.Interval)
	assert.Equal(t, "example.com", lineItems[0].PriceData.Description)
}

func TestBuildLineItemsAddonMinorUnits(t *testing.T) {
	lineItems, err := BuildLineItems([]model.CartItem{
		{ID: "ssl-premium", Type: model.ItemAddon, Quantity: 1},
	})
	require.NoError(t, err)

	require.Len(t, lineItems, 1)
	require.NotNil(t, lineItems[0].PriceData)
	assert.Equal(t, int64(399), lineItems[0].PriceData.UnitAmount)
	assert.Equal(t, "month", lineItems[0].PriceData.Interval)
}

func TestBuildLineItemsDropsUnknownTypes(t *testing.T) {
	lineItems, err := BuildLineItems([]model.CartItem{
		hostingItem(model.PlanStarter, model.TermMonthly, false),
		{ID: "mystery-item", Type: "mystery", Quantity: 1},
	})
	require.NoError(t, err)
	assert.Len(t, lineItems, 1, "zero-priced unknowns stay out of the payment request")
}
