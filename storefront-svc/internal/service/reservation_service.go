package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"otomo-storefront/storefront-svc/internal/domain"
)

type ReservationService struct {
	repo      ReservationRepository
	publisher EventPublisher
}

func NewReservationService(repo ReservationRepository, publisher EventPublisher) *ReservationService {
	return &ReservationService{repo: repo, publisher: publisher}
}

func (s *ReservationService) Create(ctx context.Context, reservation *domain.Reservation) error {
	if reservation.Name == "" || reservation.Email == "" || reservation.Phone == "" ||
		reservation.Date == "" || reservation.Time == "" || reservation.Guests <= 0 {
		return ErrReservationFields
	}

	reservation.ID = uuid.NewString()
	reservation.Status = domain.ReservationStatusPending
	reservation.CreatedAt = time.Now()

	if err := s.repo.CreateReservation(reservation); err != nil {
		return err
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:          "new_reservation",
			ReservationID: reservation.ID,
			Total:         decimal.Zero,
			Timestamp:     time.Now(),
		}
		if err := s.publisher.PublishEvent(ctx, event); err != nil {
			log.Printf("[storefront-svc] failed to publish reservation event: %v", err)
		}
	}

	return nil
}

func (s *ReservationService) Get(id string) (*domain.Reservation, error) {
	reservation, err := s.repo.GetReservation(id)
	if err != nil {
		return nil, ErrReservationNotFound
	}
	return reservation, nil
}

func (s *ReservationService) List() ([]domain.Reservation, error) {
	return s.repo.ListReservations()
}

var _ ReservationServiceInterface = (*ReservationService)(nil)
