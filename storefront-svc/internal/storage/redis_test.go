package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"otomo-storefront/storefront-svc/internal/cart"
	"otomo-storefront/storefront-svc/internal/domain"
)

func setupCartTestRedis(t *testing.T) (*RedisCartStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return NewRedisCartStore(client, time.Hour), server
}

func TestRedisCartStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, server := setupCartTestRedis(t)

	// Unknown session reads as an empty cart.
	c, err := store.GetCart(ctx, "s1")
	assert.NoError(t, err)
	assert.Empty(t, c)

	saved := cart.Cart{
		{MenuItem: domain.MenuItem{ID: "sushi-saumon", Name: "Sushi Saumon",
			Price: decimal.RequireFromString("2.50")}, Quantity: 2},
		{MenuItem: domain.MenuItem{ID: "maki-california",
			Price: decimal.RequireFromString("8.50")}, Quantity: 1},
	}
	assert.NoError(t, store.SaveCart(ctx, "s1", saved))

	// The codec keeps exact prices and line order.
	loaded, err := store.GetCart(ctx, "s1")
	assert.NoError(t, err)
	assert.Len(t, loaded, 2)
	assert.Equal(t, "sushi-saumon", loaded[0].ID)
	assert.Equal(t, 2, loaded[0].Quantity)
	assert.True(t, loaded[0].Price.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, cart.Total(loaded).Equal(decimal.RequireFromString("13.50")))

	assert.NoError(t, store.DeleteCart(ctx, "s1"))
	assert.False(t, server.Exists("cart:s1"))

	c, err = store.GetCart(ctx, "s1")
	assert.NoError(t, err)
	assert.Empty(t, c)
}

func TestRedisCartStore_KeyAndTTL(t *testing.T) {
	ctx := context.Background()
	store, server := setupCartTestRedis(t)

	assert.NoError(t, store.SaveCart(ctx, "s1", cart.Cart{
		{MenuItem: domain.MenuItem{ID: "a", Price: decimal.New(1, 0)}, Quantity: 1},
	}))

	// Carts live under cart:<session> and expire with the store TTL.
	assert.True(t, server.Exists("cart:s1"))
	assert.Equal(t, time.Hour, server.TTL("cart:s1"))

	server.FastForward(2 * time.Hour)
	c, err := store.GetCart(ctx, "s1")
	assert.NoError(t, err)
	assert.Empty(t, c)
}
