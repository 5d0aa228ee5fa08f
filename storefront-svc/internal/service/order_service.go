package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"otomo-storefront/storefront-svc/internal/cart"
	"otomo-storefront/storefront-svc/internal/domain"
)

type OrderService struct {
	repo      OrderRepository
	publisher EventPublisher
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, publisher EventPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		repo:      repo,
		publisher: publisher,
		qrEncoder: qr,
	}
}

// Create validates the submission and stores the order. The total is
// always recomputed from the lines, a client-sent total is never trusted.
func (s *OrderService) Create(ctx context.Context, items []domain.CartLine, info domain.CustomerInfo, pickupTime string) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrItemsRequired
	}
	if info.Name == "" || info.Email == "" || info.Phone == "" {
		return nil, ErrCustomerInfoRequired
	}
	if pickupTime == "" {
		return nil, ErrPickupTimeRequired
	}

	order := &domain.Order{
		ID:           uuid.NewString(),
		Items:        items,
		Total:        cart.Total(cart.Cart(items)),
		CustomerInfo: info,
		PickupTime:   pickupTime,
		Status:       domain.OrderStatusPending,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.CreateOrder(order); err != nil {
		return nil, err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.repo.SaveQRCode(order.ID, qr)
		}
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:      "new_order",
			OrderID:   order.ID,
			Total:     order.Total,
			Timestamp: time.Now(),
		}
		for _, line := range order.Items {
			event.Items = append(event.Items, domain.EventLine{
				ItemID:   line.ID,
				Quantity: line.Quantity,
			})
		}
		if err := s.publisher.PublishEvent(ctx, event); err != nil {
			log.Printf("[storefront-svc] failed to publish order event: %v", err)
		}
	}

	return order, nil
}

func (s *OrderService) Get(id string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.repo.ListOrders()
}

func (s *OrderService) GetQRCode(orderID string) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if len(qr) > 0 {
		return qr, nil
	}
	if s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	// No stored image and no way to produce one.
	return nil, ErrOrderNotFound
}

var _ OrderServiceInterface = (*OrderService)(nil)
