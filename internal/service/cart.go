package service

import (
	"context"
	"errors"
	"fmt"

	"hosting-storefront/internal/model"
	"hosting-storefront/internal/pricing"
	"hosting-storefront/internal/repository"
)

type AddOutcome string

const (
	OutcomeAdded             AddOutcome = "added"
	OutcomeDuplicate         AddOutcome = "duplicate"
	OutcomeReplaced          AddOutcome = "replaced"
	OutcomeNeedsConfirmation AddOutcome = "needs_confirmation"
)

type AddResult struct {
	Outcome AddOutcome
	Cart    *model.Cart
}

var ErrInvalidIndex = errors.New("cart item index out of range")

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*model.Cart, error)
	AddItem(ctx context.Context, sessionID string, item model.CartItem, replace bool) (*AddResult, error)
	RemoveItem(ctx context.Context, sessionID string, index int) (*model.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, index, quantity int) (*model.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type cartServiceImpl struct {
	cartRepo repository.CartRepository
}

func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartServiceImpl{
		cartRepo: cartRepo,
	}
}

func (s *cartServiceImpl) GetCart(ctx context.Context, sessionID string) (*model.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, sessionID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return &model.Cart{SessionID: sessionID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

func (s *cartServiceImpl) AddItem(ctx context.Context, sessionID string, item model.CartItem, replace bool) (*AddResult, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	if item.Quantity < 1 || item.Type.SingleQuantity() {
		item.Quantity = 1
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if item.Type == model.ItemHosting {
		if cart.Hosting != nil {
			if cart.Hosting.SameHosting(&item) {
				return &AddResult{Outcome: OutcomeDuplicate, Cart: cart}, nil
			}
			if !replace {
				return &AddResult{Outcome: OutcomeNeedsConfirmation, Cart: cart}, nil
			}
			cart.Hosting = &item
			if err := s.cartRepo.Save(ctx, cart); err != nil {
				return nil, fmt.Errorf("save cart: %w", err)
			}
			return &AddResult{Outcome: OutcomeReplaced, Cart: cart}, nil
		}
		cart.Hosting = &item
		if err := s.cartRepo.Save(ctx, cart); err != nil {
			return nil, fmt.Errorf("save cart: %w", err)
		}
		return &AddResult{Outcome: OutcomeAdded, Cart: cart}, nil
	}

	// domain and email items are singletons per id, re-adding the same
	// one is rejected rather than bumping quantity
	if item.Type == model.ItemDomain || item.Type == model.ItemEmail {
		for _, existing := range cart.Others {
			if existing.Type == item.Type && existing.ID == item.ID {
				return &AddResult{Outcome: OutcomeDuplicate, Cart: cart}, nil
			}
		}
	}

	cart.Others = append(cart.Others, item)
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return &AddResult{Outcome: OutcomeAdded, Cart: cart}, nil
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, sessionID string, index int) (*model.Cart, error) {
	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= cart.Len() {
		return nil, ErrInvalidIndex
	}

	if cart.Hosting != nil {
		if index == 0 {
			cart.Hosting = nil
		} else {
			cart.Others = append(cart.Others[:index-1], cart.Others[index:]...)
		}
	} else {
		cart.Others = append(cart.Others[:index], cart.Others[index+1:]...)
	}

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, sessionID string, index, quantity int) (*model.Cart, error) {
	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= cart.Len() {
		return nil, ErrInvalidIndex
	}

	if quantity < 1 {
		quantity = 1
	}

	var item *model.CartItem
	if cart.Hosting != nil {
		if index == 0 {
			item = cart.Hosting
		} else {
			item = &cart.Others[index-1]
		}
	} else {
		item = &cart.Others[index]
	}

	if item.Type.SingleQuantity() {
		quantity = 1
	}
	item.Quantity = quantity

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

func (s *cartServiceImpl) Clear(ctx context.Context, sessionID string) error {
	return s.cartRepo.Delete(ctx, sessionID)
}

// validateItem fails loudly at add time so a mispriced item never
// reaches the cart in the first place.
func validateItem(item model.CartItem) error {
	switch item.Type {
	case model.ItemHosting:
		if _, err := pricing.PriceOf(item.Plan, item.Term); err != nil {
			return err
		}
	case model.ItemDomain:
		if item.Domain == "" {
			return fmt.Errorf("domain item %q missing domain name", item.ID)
		}
	case model.ItemEmail, model.ItemAddon:
		if item.PriceCents > 0 {
			return nil
		}
		code := item.ProductCode
		if code == "" {
			code = item.ID
		}
		if _, err := pricing.ProductByCode(code); err != nil {
			return err
		}
	case model.ItemOther:
		// tolerated, priced at zero downstream
	default:
		return fmt.Errorf("unknown item type %q", item.Type)
	}
	return nil
}
