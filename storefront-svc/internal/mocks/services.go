package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"otomo-storefront/storefront-svc/internal/domain"
	"otomo-storefront/storefront-svc/internal/service"
)

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	register(t, &m.Mock, m.AssertExpectations)
	return m
}

func (_m *OrderServiceInterface) Create(ctx context.Context, items []domain.CartLine, info domain.CustomerInfo, pickupTime string) (*domain.Order, error) {
	ret := _m.Called(ctx, items, info, pickupTime)
	var order *domain.Order
	if ret.Get(0) != nil {
		order = ret.Get(0).(*domain.Order)
	}
	return order, ret.Error(1)
}

func (_m *OrderServiceInterface) Get(id string) (*domain.Order, error) {
	ret := _m.Called(id)
	var order *domain.Order
	if ret.Get(0) != nil {
		order = ret.Get(0).(*domain.Order)
	}
	return order, ret.Error(1)
}

func (_m *OrderServiceInterface) List() ([]domain.Order, error) {
	ret := _m.Called()
	var orders []domain.Order
	if ret.Get(0) != nil {
		orders = ret.Get(0).([]domain.Order)
	}
	return orders, ret.Error(1)
}

func (_m *OrderServiceInterface) GetQRCode(orderID string) ([]byte, error) {
	ret := _m.Called(orderID)
	var qr []byte
	if ret.Get(0) != nil {
		qr = ret.Get(0).([]byte)
	}
	return qr, ret.Error(1)
}

type ReservationServiceInterface struct {
	mock.Mock
}

func NewReservationServiceInterface(t testingT) *ReservationServiceInterface {
	m := &ReservationServiceInterface{}
	register(t, &m.Mock, m.AssertExpectations)
	return m
}

func (_m *ReservationServiceInterface) Create(ctx context.Context, reservation *domain.Reservation) error {
	return _m.Called(ctx, reservation).Error(0)
}

func (_m *ReservationServiceInterface) Get(id string) (*domain.Reservation, error) {
	ret := _m.Called(id)
	var reservation *domain.Reservation
	if ret.Get(0) != nil {
		reservation = ret.Get(0).(*domain.Reservation)
	}
	return reservation, ret.Error(1)
}

func (_m *ReservationServiceInterface) List() ([]domain.Reservation, error) {
	ret := _m.Called()
	var reservations []domain.Reservation
	if ret.Get(0) != nil {
		reservations = ret.Get(0).([]domain.Reservation)
	}
	return reservations, ret.Error(1)
}

type BannerServiceInterface struct {
	mock.Mock
}

func NewBannerServiceInterface(t testingT) *BannerServiceInterface {
	m := &BannerServiceInterface{}
	register(t, &m.Mock, m.AssertExpectations)
	return m
}

func (_m *BannerServiceInterface) Active(now time.Time) ([]service.BannerView, error) {
	ret := _m.Called(now)
	var views []service.BannerView
	if ret.Get(0) != nil {
		views = ret.Get(0).([]service.BannerView)
	}
	return views, ret.Error(1)
}

func (_m *BannerServiceInterface) List() ([]domain.BannerMessage, error) {
	ret := _m.Called()
	var banners []domain.BannerMessage
	if ret.Get(0) != nil {
		banners = ret.Get(0).([]domain.BannerMessage)
	}
	return banners, ret.Error(1)
}

func (_m *BannerServiceInterface) Create(message *domain.BannerMessage) error {
	return _m.Called(message).Error(0)
}

func (_m *BannerServiceInterface) Update(message *domain.BannerMessage) error {
	return _m.Called(message).Error(0)
}

func (_m *BannerServiceInterface) Delete(id string) error {
	return _m.Called(id).Error(0)
}

type CartServiceInterface struct {
	mock.Mock
}

func NewCartServiceInterface(t testingT) *CartServiceInterface {
	m := &CartServiceInterface{}
	register(t, &m.Mock, m.AssertExpectations)
	return m
}

func (_m *CartServiceInterface) Get(ctx context.Context, sessionID string) (*service.CartView, error) {
	ret := _m.Called(ctx, sessionID)
	var view *service.CartView
	if ret.Get(0) != nil {
		view = ret.Get(0).(*service.CartView)
	}
	return view, ret.Error(1)
}

func (_m *CartServiceInterface) Apply(ctx context.Context, sessionID string, op service.CartOp) (*service.CartView, error) {
	ret := _m.Called(ctx, sessionID, op)
	var view *service.CartView
	if ret.Get(0) != nil {
		view = ret.Get(0).(*service.CartView)
	}
	return view, ret.Error(1)
}

func (_m *CartServiceInterface) Clear(ctx context.Context, sessionID string) error {
	return _m.Called(ctx, sessionID).Error(0)
}

func (_m *CartServiceInterface) Quote(lines []domain.CartLine) (*service.CartView, error) {
	ret := _m.Called(lines)
	var view *service.CartView
	if ret.Get(0) != nil {
		view = ret.Get(0).(*service.CartView)
	}
	return view, ret.Error(1)
}
