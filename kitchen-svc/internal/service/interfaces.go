package service

import (
	"context"

	"otomo-storefront/kitchen-svc/internal/domain"
	"otomo-storefront/kitchen-svc/internal/storage"
)

type StoreInterface interface {
	RecordOrder(event domain.OrderEvent) error
	RecordReservation(event domain.OrderEvent) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(event domain.OrderEvent)
}

var _ StoreInterface = (*storage.Store)(nil)
