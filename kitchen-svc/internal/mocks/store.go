// Package mocks holds testify mocks for the service-layer interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"otomo-storefront/kitchen-svc/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(t testingT, m *mock.Mock, assert func(mock.TestingT) bool) {
	m.Test(t)
	t.Cleanup(func() { assert(t) })
}

type StoreInterface struct {
	mock.Mock
}

func NewStoreInterface(t testingT) *StoreInterface {
	m := &StoreInterface{}
	register(t, &m.Mock, m.AssertExpectations)
	return m
}

func (_m *StoreInterface) RecordOrder(event domain.OrderEvent) error {
	return _m.Called(event).Error(0)
}

func (_m *StoreInterface) RecordReservation(event domain.OrderEvent) error {
	return _m.Called(event).Error(0)
}
