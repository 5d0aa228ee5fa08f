// Package mocks holds testify mocks for the service-layer interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"otomo-storefront/storefront-svc/internal/cart"
	"otomo-storefront/storefront-svc/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(t testingT, m *mock.Mock, assert func(mock.TestingT) bool) {
	m.Test(t)
	t.Cleanup(func() { assert(t) })
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	register(t, &m.Mock, m.AssertExpectations)
	return m
}

func (_m *OrderRepository) CreateOrder(order *domain.Order) error {
	return _m.Called(order).Error(0)
}

func (_m *OrderRepository) GetOrder(id string) (*domain.Order, error) {
	ret := _m.Called(id)
	var order *domain.Order
	if ret.Get(0) != nil {
		order = ret.Get(0).(*domain.Order)
	}
	return order, ret.Error(1)
}

func (_m *OrderRepository) ListOrders() ([]domain.Order, error) {
	ret := _m.Called()
	var orders []domain.Order
	if ret.Get(0) != nil {
		orders = ret.Get(0).([]domain.Order)
	}
	return orders, ret.Error(1)
}

func (_m *OrderRepository) SaveQRCode(orderID string, qr []byte) error {
	return _m.Called(orderID, qr).Error(0)
}

func (_m *OrderRepository) GetQRCode(orderID string) ([]byte, error) {
	ret := _m.Called(orderID)
	var qr []byte
	if ret.Get(0) != nil {
		qr = ret.Get(0).([]byte)
	}
	return qr, ret.Error(1)
}

type ReservationRepository struct {
	mock.Mock
}

func NewReservationRepository(t testingT) *ReservationRepository {
	m := &ReservationRepository{}
	register(t, &m.Mock, m.AssertExpectations)
	return m
}

func (_m *ReservationRepository) CreateReservation(reservation *domain.Reservation) error {
	return _m.Called(reservation).Error(0)
}

func (_m *ReservationRepository) GetReservation(id string) (*domain.Reservation, error) {
	ret := _m.Called(id)
	var reservation *domain.Reservation
	if ret.Get(0) != nil {
		reservation = ret.Get(0).(*domain.Reservation)
	}
	return reservation, ret.Error(1)
}

func (_m *ReservationRepository) ListReservations() ([]domain.Reservation, error) {
	ret := _m.Called()
	var reservations []domain.Reservation
	if ret.Get(0) != nil {
		reservations = ret.Get(0).([]domain.Reservation)
	}
	return reservations, ret.Error(1)
}

type CatalogRepository struct {
	mock.Mock
}

func NewCatalogRepository(t testingT) *CatalogRepository {
	m := &CatalogRepository{}
	register(t, &m.Mock, m.AssertExpectations)
	return m
}

func (_m *CatalogRepository) ListItems() ([]domain.MenuItem, error) {
	ret := _m.Called()
	var items []domain.MenuItem
	if ret.Get(0) != nil {
		items = ret.Get(0).([]domain.MenuItem)
	}
	return items, ret.Error(1)
}

func (_m *CatalogRepository) ListItemsByCategory(category string) ([]domain.MenuItem, error) {
	ret := _m.Called(category)
	var items []domain.MenuItem
	if ret.Get(0) != nil {
		items = ret.Get(0).([]domain.MenuItem)
	}
	return items, ret.Error(1)
}

func (_m *CatalogRepository) GetItem(id string) (*domain.MenuItem, error) {
	ret := _m.Called(id)
	var item *domain.MenuItem
	if ret.Get(0) != nil {
		item = ret.Get(0).(*domain.MenuItem)
	}
	return item, ret.Error(1)
}

func (_m *CatalogRepository) CreateItem(item *domain.MenuItem) error {
	return _m.Called(item).Error(0)
}

func (_m *CatalogRepository) UpdateItem(item *domain.MenuItem) error {
	return _m.Called(item).Error(0)
}

func (_m *CatalogRepository) DeleteItem(id string) (int64, error) {
	ret := _m.Called(id)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *CatalogRepository) ListCategories() ([]domain.Category, error) {
	ret := _m.Called()
	var categories []domain.Category
	if ret.Get(0) != nil {
		categories = ret.Get(0).([]domain.Category)
	}
	return categories, ret.Error(1)
}

type BannerRepository struct {
	mock.Mock
}

func NewBannerRepository(t testingT) *BannerRepository {
	m := &BannerRepository{}
	register(t, &m.Mock, m.AssertExpectations)
	return m
}

func (_m *BannerRepository) ListBanners() ([]domain.BannerMessage, error) {
	ret := _m.Called()
	var banners []domain.BannerMessage
	if ret.Get(0) != nil {
		banners = ret.Get(0).([]domain.BannerMessage)
	}
	return banners, ret.Error(1)
}

func (_m *BannerRepository) CreateBanner(message *domain.BannerMessage) error {
	return _m.Called(message).Error(0)
}

func (_m *BannerRepository) UpdateBanner(message *domain.BannerMessage) error {
	return _m.Called(message).Error(0)
}

func (_m *BannerRepository) DeleteBanner(id string) (int64, error) {
	ret := _m.Called(id)
	return ret.Get(0).(int64), ret.Error(1)
}

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t testingT) *EventPublisher {
	m := &EventPublisher{}
	register(t, &m.Mock, m.AssertExpectations)
	return m
}

func (_m *EventPublisher) PublishEvent(ctx context.Context, event domain.OrderEvent) error {
	return _m.Called(ctx, event).Error(0)
}

type CartStore struct {
	mock.Mock
}

func NewCartStore(t testingT) *CartStore {
	m := &CartStore{}
	register(t, &m.Mock, m.AssertExpectations)
	return m
}

func (_m *CartStore) GetCart(ctx context.Context, sessionID string) (cart.Cart, error) {
	ret := _m.Called(ctx, sessionID)
	var c cart.Cart
	if ret.Get(0) != nil {
		c = ret.Get(0).(cart.Cart)
	}
	return c, ret.Error(1)
}

func (_m *CartStore) SaveCart(ctx context.Context, sessionID string, c cart.Cart) error {
	return _m.Called(ctx, sessionID, c).Error(0)
}

func (_m *CartStore) DeleteCart(ctx context.Context, sessionID string) error {
	return _m.Called(ctx, sessionID).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	register(t, &m.Mock, m.AssertExpectations)
	return m
}

func (_m *QRGenerator) Generate(orderID string) ([]byte, error) {
	ret := _m.Called(orderID)
	var qr []byte
	if ret.Get(0) != nil {
		qr = ret.Get(0).([]byte)
	}
	return qr, ret.Error(1)
}
