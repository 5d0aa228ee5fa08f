package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventLine struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// OrderEvent mirrors the payload storefront-svc publishes on the
// orders topic.
type OrderEvent struct {
	Type          string          `json:"type"`
	OrderID       string          `json:"order_id,omitempty"`
	ReservationID string          `json:"reservation_id,omitempty"`
	Items         []EventLine     `json:"items,omitempty"`
	Total         decimal.Decimal `json:"total"`
	Timestamp     time.Time       `json:"timestamp"`
}
