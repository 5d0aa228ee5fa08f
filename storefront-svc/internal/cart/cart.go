// Package cart implements the in-progress order selection as pure
// value-in/value-out operations. Callers keep the returned cart, the
// input is never mutated. Unknown item ids are no-ops, never errors.
package cart

import (
	"github.com/shopspring/decimal"

	"otomo-storefront/storefront-svc/internal/domain"
)

// Cart is an ordered collection of lines. Insertion order is preserved
// for display, at most one line exists per item id.
type Cart []domain.CartLine

// Add merges delta into the line for item.ID, appending a new line at the
// end when the item is not yet in the cart. A negative delta decrements,
// and a resulting quantity below 1 removes the line. Adding a missing item
// with a non-positive delta does nothing.
func Add(c Cart, item domain.MenuItem, delta int) Cart {
	for i, line := range c {
		if line.ID != item.ID {
			continue
		}
		quantity := line.Quantity + delta
		if quantity < 1 {
			return Remove(c, item.ID)
		}
		next := clone(c)
		next[i].Quantity = quantity
		return next
	}

	if delta < 1 {
		return c
	}

	next := clone(c)
	return append(next, domain.CartLine{MenuItem: item, Quantity: delta})
}

// Decrement lowers the quantity of the line with id by one, removing the
// line when it reaches zero.
func Decrement(c Cart, id string) Cart {
	for i, line := range c {
		if line.ID != id {
			continue
		}
		if line.Quantity <= 1 {
			return Remove(c, id)
		}
		next := clone(c)
		next[i].Quantity--
		return next
	}
	return c
}

// SetQuantity replaces the quantity of the line with id. A quantity of
// zero or less removes the line. Setting a quantity on an absent id is a
// no-op, items enter the cart through Add only.
func SetQuantity(c Cart, id string, quantity int) Cart {
	if quantity <= 0 {
		return Remove(c, id)
	}
	for i, line := range c {
		if line.ID != id {
			continue
		}
		next := clone(c)
		next[i].Quantity = quantity
		return next
	}
	return c
}

// Remove deletes the line with id when present. Removing twice is the
// same as removing once.
func Remove(c Cart, id string) Cart {
	for i, line := range c {
		if line.ID != id {
			continue
		}
		next := make(Cart, 0, len(c)-1)
		next = append(next, c[:i]...)
		next = append(next, c[i+1:]...)
		return next
	}
	return c
}

// ItemCount is the sum of all line quantities.
func ItemCount(c Cart) int {
	count := 0
	for _, line := range c {
		count += line.Quantity
	}
	return count
}

// Total is the sum of price times quantity over all lines, computed with
// exact decimal arithmetic.
func Total(c Cart) decimal.Decimal {
	total := decimal.Zero
	for _, line := range c {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

func clone(c Cart) Cart {
	next := make(Cart, len(c))
	copy(next, c)
	return next
}
