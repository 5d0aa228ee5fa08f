// Package storage provides the repository implementations. The memory
// stores are the default: process-lifetime collections with no
// durability, swappable for a real backend through the service
// interfaces.
package storage

import (
	"context"
	"errors"
	"sync"

	"otomo-storefront/storefront-svc/internal/cart"
	"otomo-storefront/storefront-svc/internal/domain"
)

var errNotFound = errors.New("not found")

type OrderStore struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

func (s *OrderStore) CreateOrder(order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, *order)
	return nil
}

func (s *OrderStore) GetOrder(id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.ID == id {
			found := order
			return &found, nil
		}
	}
	return nil, errNotFound
}

func (s *OrderStore) ListOrders() ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]domain.Order, len(s.orders))
	copy(orders, s.orders)
	return orders, nil
}

func (s *OrderStore) SaveQRCode(orderID string, qr []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].QRCode = qr
			return nil
		}
	}
	return errNotFound
}

func (s *OrderStore) GetQRCode(orderID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.ID == orderID {
			return order.QRCode, nil
		}
	}
	return nil, errNotFound
}

func (s *OrderStore) Clear() {
	s.mu.Lock()
	s.orders = nil
	s.mu.Unlock()
}

type ReservationStore struct {
	mu           sync.RWMutex
	reservations []domain.Reservation
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{}
}

func (s *ReservationStore) CreateReservation(reservation *domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = append(s.reservations, *reservation)
	return nil
}

func (s *ReservationStore) GetReservation(id string) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, reservation := range s.reservations {
		if reservation.ID == id {
			found := reservation
			return &found, nil
		}
	}
	return nil, errNotFound
}

func (s *ReservationStore) ListReservations() ([]domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reservations := make([]domain.Reservation, len(s.reservations))
	copy(reservations, s.reservations)
	return reservations, nil
}

func (s *ReservationStore) Clear() {
	s.mu.Lock()
	s.reservations = nil
	s.mu.Unlock()
}

type Catalog struct {
	mu         sync.RWMutex
	items      []domain.MenuItem
	categories []domain.Category
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

func (c *Catalog) ListItems() ([]domain.MenuItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]domain.MenuItem, len(c.items))
	copy(items, c.items)
	return items, nil
}

func (c *Catalog) ListItemsByCategory(category string) ([]domain.MenuItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := []domain.MenuItem{}
	for _, item := range c.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items, nil
}

func (c *Catalog) GetItem(id string) (*domain.MenuItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, errNotFound
}

func (c *Catalog) CreateItem(item *domain.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, *item)
	return nil
}

func (c *Catalog) UpdateItem(item *domain.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i] = *item
			return nil
		}
	}
	return errNotFound
}

func (c *Catalog) DeleteItem(id string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *Catalog) ListCategories() ([]domain.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	categories := make([]domain.Category, len(c.categories))
	copy(categories, c.categories)
	return categories, nil
}

func (c *Catalog) SetCategories(categories []domain.Category) {
	c.mu.Lock()
	c.categories = categories
	c.mu.Unlock()
}

func (c *Catalog) Clear() {
	c.mu.Lock()
	c.items = nil
	c.categories = nil
	c.mu.Unlock()
}

type BannerStore struct {
	mu      sync.RWMutex
	banners []domain.BannerMessage
}

func NewBannerStore() *BannerStore {
	return &BannerStore{}
}

func (s *BannerStore) ListBanners() ([]domain.BannerMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	banners := make([]domain.BannerMessage, len(s.banners))
	copy(banners, s.banners)
	return banners, nil
}

func (s *BannerStore) CreateBanner(message *domain.BannerMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.banners = append(s.banners, *message)
	return nil
}

func (s *BannerStore) UpdateBanner(message *domain.BannerMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.banners {
		if s.banners[i].ID == message.ID {
			s.banners[i] = *message
			return nil
		}
	}
	return errNotFound
}

func (s *BannerStore) DeleteBanner(id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.banners {
		if s.banners[i].ID == id {
			s.banners = append(s.banners[:i], s.banners[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *BannerStore) Clear() {
	s.mu.Lock()
	s.banners = nil
	s.mu.Unlock()
}

type ZoneStore struct {
	mu    sync.RWMutex
	zones []domain.DeliveryZone
}

func NewZoneStore() *ZoneStore {
	return &ZoneStore{}
}

func (s *ZoneStore) ListZones() ([]domain.DeliveryZone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	zones := make([]domain.DeliveryZone, len(s.zones))
	copy(zones, s.zones)
	return zones, nil
}

func (s *ZoneStore) CreateZone(zone *domain.DeliveryZone) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zones = append(s.zones, *zone)
	return nil
}

func (s *ZoneStore) UpdateZone(zone *domain.DeliveryZone) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.zones {
		if s.zones[i].ID == zone.ID {
			s.zones[i] = *zone
			return nil
		}
	}
	return errNotFound
}

func (s *ZoneStore) DeleteZone(id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.zones {
		if s.zones[i].ID == id {
			s.zones = append(s.zones[:i], s.zones[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *ZoneStore) Clear() {
	s.mu.Lock()
	s.zones = nil
	s.mu.Unlock()
}

type SettingsStore struct {
	mu       sync.RWMutex
	settings domain.SiteSettings
}

func NewSettingsStore(defaults domain.SiteSettings) *SettingsStore {
	return &SettingsStore{settings: defaults}
}

func (s *SettingsStore) GetSettings() (*domain.SiteSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	settings := s.settings
	return &settings, nil
}

func (s *SettingsStore) SaveSettings(settings *domain.SiteSettings) error {
	s.mu.Lock()
	s.settings = *settings
	s.mu.Unlock()
	return nil
}

// MemoryCartStore is the fallback session cart store when Redis is not
// configured.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]cart.Cart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: map[string]cart.Cart{}}
}

func (s *MemoryCartStore) GetCart(_ context.Context, sessionID string) (cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.carts[sessionID], nil
}

func (s *MemoryCartStore) SaveCart(_ context.Context, sessionID string, c cart.Cart) error {
	s.mu.Lock()
	s.carts[sessionID] = c
	s.mu.Unlock()
	return nil
}

func (s *MemoryCartStore) DeleteCart(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
	return nil
}
