package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"otomo-storefront/storefront-svc/internal/cart"
	"otomo-storefront/storefront-svc/internal/domain"
)

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id string) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	SaveQRCode(orderID string, qr []byte) error
	GetQRCode(orderID string) ([]byte, error)
}

type ReservationRepository interface {
	CreateReservation(reservation *domain.Reservation) error
	GetReservation(id string) (*domain.Reservation, error)
	ListReservations() ([]domain.Reservation, error)
}

type CatalogRepository interface {
	ListItems() ([]domain.MenuItem, error)
	ListItemsByCategory(category string) ([]domain.MenuItem, error)
	GetItem(id string) (*domain.MenuItem, error)
	CreateItem(item *domain.MenuItem) error
	UpdateItem(item *domain.MenuItem) error
	DeleteItem(id string) (int64, error)
	ListCategories() ([]domain.Category, error)
}

type BannerRepository interface {
	ListBanners() ([]domain.BannerMessage, error)
	CreateBanner(message *domain.BannerMessage) error
	UpdateBanner(message *domain.BannerMessage) error
	DeleteBanner(id string) (int64, error)
}

type ZoneRepository interface {
	ListZones() ([]domain.DeliveryZone, error)
	CreateZone(zone *domain.DeliveryZone) error
	UpdateZone(zone *domain.DeliveryZone) error
	DeleteZone(id string) (int64, error)
}

type SettingsRepository interface {
	GetSettings() (*domain.SiteSettings, error)
	SaveSettings(settings *domain.SiteSettings) error
}

// CartStore keeps server-side carts keyed by session id. A missing
// session yields an empty cart, not an error.
type CartStore interface {
	GetCart(ctx context.Context, sessionID string) (cart.Cart, error)
	SaveCart(ctx context.Context, sessionID string, c cart.Cart) error
	DeleteCart(ctx context.Context, sessionID string) error
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event domain.OrderEvent) error
}

// Authenticator is the pluggable admin credential check. The bundled
// implementation compares bcrypt hashes loaded from the environment.
type Authenticator interface {
	Authenticate(username, password string) (*domain.AdminUser, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, items []domain.CartLine, info domain.CustomerInfo, pickupTime string) (*domain.Order, error)
	Get(id string) (*domain.Order, error)
	List() ([]domain.Order, error)
	GetQRCode(orderID string) ([]byte, error)
}

type ReservationServiceInterface interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	Get(id string) (*domain.Reservation, error)
	List() ([]domain.Reservation, error)
}

type CatalogServiceInterface interface {
	List(category string) ([]domain.MenuItem, error)
	Get(id string) (*domain.MenuItem, error)
	Categories() ([]domain.Category, error)
	Create(item *domain.MenuItem) error
	Update(item *domain.MenuItem) error
	Delete(id string) error
}

type BannerServiceInterface interface {
	Active(now time.Time) ([]BannerView, error)
	List() ([]domain.BannerMessage, error)
	Create(message *domain.BannerMessage) error
	Update(message *domain.BannerMessage) error
	Delete(id string) error
}

type CartServiceInterface interface {
	Get(ctx context.Context, sessionID string) (*CartView, error)
	Apply(ctx context.Context, sessionID string, op CartOp) (*CartView, error)
	Clear(ctx context.Context, sessionID string) error
	Quote(lines []domain.CartLine) (*CartView, error)
}

type ZoneServiceInterface interface {
	List() ([]domain.DeliveryZone, error)
	Create(zone *domain.DeliveryZone) error
	Update(zone *domain.DeliveryZone) error
	Delete(id string) error
}

type SettingsServiceInterface interface {
	Get() (*domain.SiteSettings, error)
	Save(settings *domain.SiteSettings) error
}

type AuthServiceInterface interface {
	Login(username, password string) (string, *domain.AdminUser, error)
	Verify(token string) (*domain.AdminUser, bool)
	Logout(token string)
}

// BannerView pairs a message with its presentation band.
type BannerView struct {
	domain.BannerMessage
	Band string `json:"band"`
}

// CartView is the wire shape of a cart: its lines plus the derived
// quantities, always recomputed, never stored.
type CartView struct {
	Items     []domain.CartLine `json:"items"`
	ItemCount int               `json:"itemCount"`
	Total     decimal.Decimal   `json:"total"`
}

// CartOp is one cart mutation: add, decrement, set or remove.
type CartOp struct {
	Action   string `json:"action"`
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}
