package service

import (
	"context"
	"testing"

	"hosting-storefront/internal/model"
	"hosting-storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCartRepo struct {
	carts map[string]*model.Cart
	err   error
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: map[string]*model.Cart{}}
}

func (m *mockCartRepo) Get(_ context.Context, sessionID string) (*model.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	cart, ok := m.carts[sessionID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}
	return cart, nil
}

func (m *mockCartRepo) Save(_ context.Context, cart *model.Cart) error {
	if m.err != nil {
		return m.err
	}
	m.carts[cart.SessionID] = cart
	return nil
}

func (m *mockCartRepo) Delete(_ context.Context, sessionID string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.carts, sessionID)
	return nil
}

func starterAnnually() model.CartItem {
	return model.CartItem{
		ID:       "starter-annually",
		Type:     model.ItemHosting,
		Quantity: 1,
		Plan:     model.PlanStarter,
		Term:     model.TermAnnually,
	}
}

func TestAddItemHostingDuplicate(t *testing.T) {
	svc := NewCartService(newMockCartRepo())
	ctx := context.Background()

	first, err := svc.AddItem(ctx, "s1", starterAnnually(), false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, first.Outcome)

	second, err := svc.AddItem(ctx, "s1", starterAnnually(), false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeDuplicate, second.Outcome)
	assert.Equal(t, 1, second.Cart.Len(), "duplicate must not grow the cart")
}

func TestAddItemHostingReplaceNeedsConfirmation(t *testing.T) {
	svc := NewCartService(newMockCartRepo())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", starterAnnually(), false)
	require.NoError(t, err)

	monthly := starterAnnually()
	monthly.ID = "starter-monthly"
	monthly.Term = model.TermMonthly

	res, err := svc.AddItem(ctx, "s1", monthly, false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNeedsConfirmation, res.Outcome)
	require.NotNil(t, res.Cart.Hosting)
	assert.Equal(t, model.TermAnnually, res.Cart.Hosting.Term, "unconfirmed add must not mutate")

	res, err = svc.AddItem(ctx, "s1", monthly, true)
	require.NoError(t, err)
	assert.Equal(t, OutcomeReplaced, res.Outcome)
	assert.Equal(t, 1, res.Cart.Len(), "exactly one hosting item after replace")
	assert.Equal(t, model.TermMonthly, res.Cart.Hosting.Term)
}

func TestAddItemDomainReAddRejected(t *testing.T) {
	svc := NewCartService(newMockCartRepo())
	ctx := context.Background()

	domain := model.CartItem{ID: "example.com", Type: model.ItemDomain, Quantity: 1, Domain: "example.com"}

	res, err := svc.AddItem(ctx, "s1", domain, false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, res.Outcome)

	res, err = svc.AddItem(ctx, "s1", domain, false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeDuplicate, res.Outcome)
	assert.Equal(t, 1, res.Cart.Len())
}

func TestAddItemAddonAppendsEvenWhenRepeated(t *testing.T) {
	svc := NewCartService(newMockCartRepo())
	ctx := context.Background()

	addon := model.CartItem{ID: "backups-daily", Type: model.ItemAddon, Quantity: 1}

	_, err := svc.AddItem(ctx, "s1", addon, false)
	require.NoError(t, err)
	res, err := svc.AddItem(ctx, "s1", addon, false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, res.Outcome)
	assert.Equal(t, 2, res.Cart.Len())
}

func TestAddItemUnknownHostingPlanFails(t *testing.T) {
	svc := NewCartService(newMockCartRepo())

	bad := starterAnnually()
	bad.Plan = "mega"

	_, err := svc.AddItem(context.Background(), "s1", bad, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mega")
}

func TestUpdateQuantityClampsSingletons(t *testing.T) {
	svc := NewCartService(newMockCartRepo())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", starterAnnually(), false)
	require.NoError(t, err)
	domain := model.CartItem{ID: "example.com", Type: model.ItemDomain, Quantity: 1, Domain: "example.com"}
	_, err = svc.AddItem(ctx, "s1", domain, false)
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "s1", 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Hosting.Quantity, "hosting stays at quantity 1")

	cart, err = svc.UpdateQuantity(ctx, "s1", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Others[0].Quantity, "domains stay at quantity 1")
}

func TestUpdateQuantityAddon(t *testing.T) {
	svc := NewCartService(newMockCartRepo())
	ctx := context.Background()

	addon := model.CartItem{ID: "ssl-premium", Type: model.ItemAddon, Quantity: 1}
	_, err := svc.AddItem(ctx, "s1", addon, false)
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "s1", 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Others[0].Quantity)

	cart, err = svc.UpdateQuantity(ctx, "s1", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Others[0].Quantity, "quantity clamps to a minimum of 1")
}

func TestRemoveItem(t *testing.T) {
	svc := NewCartService(newMockCartRepo())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", starterAnnually(), false)
	require.NoError(t, err)
	domain := model.CartItem{ID: "example.com", Type: model.ItemDomain, Quantity: 1, Domain: "example.com"}
	_, err = svc.AddItem(ctx, "s1", domain, false)
	require.NoError(t, err)

	_, err = svc.RemoveItem(ctx, "s1", 5)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	cart, err := svc.RemoveItem(ctx, "s1", 0)
	require.NoError(t, err)
	assert.Nil(t, cart.Hosting, "index 0 is the hosting slot")
	assert.Equal(t, 1, cart.Len())

	cart, err = svc.RemoveItem(ctx, "s1", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Len())
}

func TestClearEmptiesCart(t *testing.T) {
	svc := NewCartService(newMockCartRepo())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", starterAnnually(), false)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "s1"))

	cart, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, cart.Len())
}
