package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go over the wire as JSON numbers, the way the storefront
	// clients expect them.
	decimal.MarshalJSONWithoutQuotes = true
}

type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image,omitempty"`
	Available   bool            `json:"available"`
	Allergens   []string        `json:"allergens,omitempty"`
	Popular     bool            `json:"popular,omitempty"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// CartLine is one distinct menu item plus its selected quantity. A cart
// holds at most one line per item id.
type CartLine struct {
	MenuItem
	Quantity int `json:"quantity"`
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
)

type Order struct {
	ID           string          `json:"id"`
	Items        []CartLine      `json:"items"`
	Total        decimal.Decimal `json:"total"`
	CustomerInfo CustomerInfo    `json:"customerInfo"`
	PickupTime   string          `json:"pickupTime"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	QRCode       []byte          `json:"-"`
}

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Guests    int               `json:"guests"`
	Message   string            `json:"message,omitempty"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

type BannerType string

const (
	BannerPermanent    BannerType = "permanent"
	BannerTemporary    BannerType = "temporary"
	BannerDailySpecial BannerType = "daily-special"
	BannerHoliday      BannerType = "holiday"
)

type BannerMessage struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Type      BannerType `json:"type"`
	Active    bool       `json:"active"`
	Priority  int        `json:"priority"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

type DeliveryZone struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Active          bool            `json:"active"`
	MinOrderAmount  decimal.Decimal `json:"minOrderAmount"`
	MaxDeliveryTime int             `json:"maxDeliveryTime"`
	Description     string          `json:"description,omitempty"`
}

type SiteSettings struct {
	RestaurantName       string          `json:"restaurantName"`
	Description          string          `json:"description"`
	Address              string          `json:"address"`
	Phone                string          `json:"phone"`
	Email                string          `json:"email"`
	MinOrderAmount       decimal.Decimal `json:"minOrderAmount"`
	MaxGuestsPerOrder    int             `json:"maxGuestsPerOrder"`
	AllowScheduledOrders bool            `json:"allowScheduledOrders"`
}

type AdminUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type EventLine struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// OrderEvent is the message published to Kafka when an order or a
// reservation is accepted.
type OrderEvent struct {
	Type          string          `json:"type"`
	OrderID       string          `json:"order_id,omitempty"`
	ReservationID string          `json:"reservation_id,omitempty"`
	Items         []EventLine     `json:"items,omitempty"`
	Total         decimal.Decimal `json:"total"`
	Timestamp     time.Time       `json:"timestamp"`
}
