package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"otomo-storefront/kitchen-svc/internal/domain"
)

type Store struct {
	rdb *redis.Client
	ctx context.Context
	now func() time.Time
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{
		rdb: rdb,
		ctx: context.Background(),
		now: time.Now,
	}
}

// RecordOrder bumps the daily per-item counters so the kitchen sees
// what to prep first. Counters are kept for a week.
func (s *Store) RecordOrder(event domain.OrderEvent) error {
	today := s.now().Format("2006-01-02")
	dailyKey := fmt.Sprintf("kitchen:daily:%s", today)

	for _, line := range event.Items {
		if err := s.rdb.ZIncrBy(s.ctx, dailyKey, float64(line.Quantity), line.ItemID).Err(); err != nil {
			return err
		}
	}
	s.rdb.Expire(s.ctx, dailyKey, 7*24*time.Hour)

	revenueKey := fmt.Sprintf("kitchen:revenue:%s", today)
	if err := s.rdb.IncrByFloat(s.ctx, revenueKey, event.Total.InexactFloat64()).Err(); err != nil {
		return err
	}
	s.rdb.Expire(s.ctx, revenueKey, 7*24*time.Hour)

	return nil
}

// RecordReservation counts incoming reservations per day.
func (s *Store) RecordReservation(event domain.OrderEvent) error {
	today := s.now().Format("2006-01-02")
	key := fmt.Sprintf("kitchen:reservations:%s", today)

	if err := s.rdb.Incr(s.ctx, key).Err(); err != nil {
		return err
	}
	s.rdb.Expire(s.ctx, key, 7*24*time.Hour)
	return nil
}

// TopItems returns the most ordered item ids for a day, best first.
func (s *Store) TopItems(date string, count int64) ([]string, error) {
	key := fmt.Sprintf("kitchen:daily:%s", date)
	return s.rdb.ZRevRange(s.ctx, key, 0, count-1).Result()
}
