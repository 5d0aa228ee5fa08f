package service

import (
	"context"

	"otomo-storefront/storefront-svc/internal/cart"
	"otomo-storefront/storefront-svc/internal/domain"
)

// CartService keeps one server-side cart per storefront session and
// delegates every mutation to the cart engine. Items are always priced
// from the catalog, never from the client.
type CartService struct {
	store   CartStore
	catalog CatalogRepository
}

func NewCartService(store CartStore, catalog CatalogRepository) *CartService {
	return &CartService{store: store, catalog: catalog}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*CartView, error) {
	current, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return view(current), nil
}

func (s *CartService) Apply(ctx context.Context, sessionID string, op CartOp) (*CartView, error) {
	current, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch op.Action {
	case "add":
		item, err := s.catalog.GetItem(op.ItemID)
		if err != nil {
			return nil, ErrItemNotFound
		}
		delta := op.Quantity
		if delta == 0 {
			delta = 1
		}
		current = cart.Add(current, *item, delta)
	case "decrement":
		current = cart.Decrement(current, op.ItemID)
	case "set":
		current = cart.SetQuantity(current, op.ItemID, op.Quantity)
	case "remove":
		current = cart.Remove(current, op.ItemID)
	default:
		return nil, ErrInvalidCartOp
	}

	if err := s.store.SaveCart(ctx, sessionID, current); err != nil {
		return nil, err
	}
	return view(current), nil
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.DeleteCart(ctx, sessionID)
}

// Quote reprices submitted lines against the catalog and returns the
// server-computed totals. Duplicate ids are merged, unknown ids and
// non-positive quantities are dropped.
func (s *CartService) Quote(lines []domain.CartLine) (*CartView, error) {
	quoted := cart.Cart{}
	for _, line := range lines {
		item, err := s.catalog.GetItem(line.ID)
		if err != nil {
			continue
		}
		quoted = cart.Add(quoted, *item, line.Quantity)
	}
	return view(quoted), nil
}

func view(c cart.Cart) *CartView {
	items := []domain.CartLine(c)
	if items == nil {
		items = []domain.CartLine{}
	}
	return &CartView{
		Items:     items,
		ItemCount: cart.ItemCount(c),
		Total:     cart.Total(c),
	}
}

var _ CartServiceInterface = (*CartService)(nil)
