package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"otomo-storefront/storefront-svc/internal/cart"
	"otomo-storefront/storefront-svc/internal/domain"
	"otomo-storefront/storefront-svc/internal/mocks"
	"otomo-storefront/storefront-svc/internal/service"
)

func line(id, priceValue string, quantity int) domain.CartLine {
	return domain.CartLine{
		MenuItem: domain.MenuItem{
			ID:        id,
			Name:      "Item " + id,
			Price:     decimal.RequireFromString(priceValue),
			Category:  "sushi",
			Available: true,
		},
		Quantity: quantity,
	}
}

func validCustomer() domain.CustomerInfo {
	return domain.CustomerInfo{Name: "Alice", Email: "alice@example.com", Phone: "0601020304"}
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		items         []domain.CartLine
		info          domain.CustomerInfo
		pickupTime    string
		prepareMocks  func(repo *mocks.OrderRepository, publisher *mocks.EventPublisher, qr *mocks.QRGenerator)
		expectedError error
	}{
		{
			name:       "success",
			items:      []domain.CartLine{line("sushi-saumon", "2.50", 2), line("maki-california", "8.50", 1)},
			info:       validCustomer(),
			pickupTime: "19:30",
			prepareMocks: func(repo *mocks.OrderRepository, publisher *mocks.EventPublisher, qr *mocks.QRGenerator) {
				repo.On("CreateOrder", mock.Anything).Return(nil).Once()
				qr.On("Generate", mock.Anything).Return([]byte("png"), nil).Once()
				repo.On("SaveQRCode", mock.Anything, []byte("png")).Return(nil).Once()
				publisher.On("PublishEvent", ctx, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:          "empty_items",
			items:         nil,
			info:          validCustomer(),
			pickupTime:    "19:30",
			prepareMocks:  func(*mocks.OrderRepository, *mocks.EventPublisher, *mocks.QRGenerator) {},
			expectedError: service.ErrItemsRequired,
		},
		{
			name:          "missing_customer_email",
			items:         []domain.CartLine{line("sushi-saumon", "2.50", 1)},
			info:          domain.CustomerInfo{Name: "Alice", Phone: "0601020304"},
			pickupTime:    "19:30",
			prepareMocks:  func(*mocks.OrderRepository, *mocks.EventPublisher, *mocks.QRGenerator) {},
			expectedError: service.ErrCustomerInfoRequired,
		},
		{
			name:          "missing_pickup_time",
			items:         []domain.CartLine{line("sushi-saumon", "2.50", 1)},
			info:          validCustomer(),
			pickupTime:    "",
			prepareMocks:  func(*mocks.OrderRepository, *mocks.EventPublisher, *mocks.QRGenerator) {},
			expectedError: service.ErrPickupTimeRequired,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			publisher := mocks.NewEventPublisher(t)
			qr := mocks.NewQRGenerator(t)
			svc := service.NewOrderService(repo, publisher, qr)

			testCase.prepareMocks(repo, publisher, qr)

			order, err := svc.Create(ctx, testCase.items, testCase.info, testCase.pickupTime)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, order)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, order.ID)
			assert.Equal(t, domain.OrderStatusPending, order.Status)
		})
	}
}

func TestOrderService_CreateComputesTotalServerSide(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	svc := service.NewOrderService(repo, nil, nil)

	var stored *domain.Order
	repo.On("CreateOrder", mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(0).(*domain.Order)
	}).Return(nil).Once()

	_, err := svc.Create(context.Background(),
		[]domain.CartLine{line("sushi-saumon", "2.50", 2), line("maki-california", "8.50", 1)},
		validCustomer(), "19:30")

	assert.NoError(t, err)
	assert.True(t, stored.Total.Equal(decimal.RequireFromString("13.50")),
		"total = %s", stored.Total)
}

func TestOrderService_CreatePublishesEvent(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewOrderRepository(t)
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewOrderService(repo, publisher, nil)

	repo.On("CreateOrder", mock.Anything).Return(nil).Once()

	var event domain.OrderEvent
	publisher.On("PublishEvent", ctx, mock.Anything).Run(func(args mock.Arguments) {
		event = args.Get(1).(domain.OrderEvent)
	}).Return(nil).Once()

	order, err := svc.Create(ctx, []domain.CartLine{line("sushi-saumon", "2.50", 3)}, validCustomer(), "19:30")

	assert.NoError(t, err)
	assert.Equal(t, "new_order", event.Type)
	assert.Equal(t, order.ID, event.OrderID)
	assert.Equal(t, []domain.EventLine{{ItemID: "sushi-saumon", Quantity: 3}}, event.Items)
}

func TestOrderService_CreateSurvivesPublishFailure(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewOrderRepository(t)
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewOrderService(repo, publisher, nil)

	repo.On("CreateOrder", mock.Anything).Return(nil).Once()
	publisher.On("PublishEvent", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	order, err := svc.Create(ctx, []domain.CartLine{line("sushi-saumon", "2.50", 1)}, validCustomer(), "19:30")

	assert.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_Get(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	svc := service.NewOrderService(repo, nil, nil)

	repo.On("GetOrder", "missing").Return(nil, errors.New("not found")).Once()

	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}

func TestOrderService_GetQRCodeRegeneratesOnMiss(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	qr := mocks.NewQRGenerator(t)
	svc := service.NewOrderService(repo, nil, qr)

	repo.On("GetQRCode", "abc").Return([]byte{}, nil).Once()
	qr.On("Generate", "abc").Return([]byte("fresh"), nil).Once()
	repo.On("SaveQRCode", "abc", []byte("fresh")).Return(nil).Once()

	png, err := svc.GetQRCode("abc")
	assert.NoError(t, err)
	assert.Equal(t, []byte("fresh"), png)
}

func TestOrderService_GetQRCodeWithoutImage(t *testing.T) {
	t.Run("no_generator", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, nil, nil)

		repo.On("GetQRCode", "abc").Return([]byte{}, nil).Once()

		png, err := svc.GetQRCode("abc")
		assert.ErrorIs(t, err, service.ErrOrderNotFound)
		assert.Empty(t, png)
	})

	t.Run("generator_fails", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		qr := mocks.NewQRGenerator(t)
		svc := service.NewOrderService(repo, nil, qr)

		repo.On("GetQRCode", "abc").Return([]byte{}, nil).Once()
		qr.On("Generate", "abc").Return(nil, errors.New("encode failed")).Once()

		png, err := svc.GetQRCode("abc")
		assert.ErrorIs(t, err, service.ErrOrderNotFound)
		assert.Empty(t, png)
	})
}

func TestReservationService_Create(t *testing.T) {
	ctx := context.Background()

	valid := domain.Reservation{
		Name: "Bob", Email: "bob@example.com", Phone: "0605060708",
		Date: "2026-09-12", Time: "20:00", Guests: 4,
	}

	tests := []struct {
		name          string
		mutate        func(r *domain.Reservation)
		expectedError error
	}{
		{name: "success", mutate: func(*domain.Reservation) {}},
		{name: "missing_name", mutate: func(r *domain.Reservation) { r.Name = "" }, expectedError: service.ErrReservationFields},
		{name: "missing_date", mutate: func(r *domain.Reservation) { r.Date = "" }, expectedError: service.ErrReservationFields},
		{name: "zero_guests", mutate: func(r *domain.Reservation) { r.Guests = 0 }, expectedError: service.ErrReservationFields},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewReservationRepository(t)
			publisher := mocks.NewEventPublisher(t)
			svc := service.NewReservationService(repo, publisher)

			reservation := valid
			testCase.mutate(&reservation)

			if testCase.expectedError == nil {
				repo.On("CreateReservation", mock.Anything).Return(nil).Once()
				publisher.On("PublishEvent", ctx, mock.Anything).Return(nil).Once()
			}

			err := svc.Create(ctx, &reservation)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, reservation.ID)
			assert.Equal(t, domain.ReservationStatusPending, reservation.Status)
		})
	}
}

func TestBannerService_Active(t *testing.T) {
	repo := mocks.NewBannerRepository(t)
	svc := service.NewBannerService(repo)

	repo.On("ListBanners").Return([]domain.BannerMessage{
		{ID: "1", Priority: 80, Active: true},
		{ID: "2", Priority: 95, Active: true},
		{ID: "3", Priority: 60, Active: false},
	}, nil).Once()

	views, err := svc.Active(time.Now())

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, "2", views[0].ID)
	assert.Equal(t, "urgent", views[0].Band)
	assert.Equal(t, "1", views[1].ID)
	assert.Equal(t, "important", views[1].Band)
}

func TestCatalogService_DeleteNotFound(t *testing.T) {
	repo := mocks.NewCatalogRepository(t)
	svc := service.NewCatalogService(repo)

	repo.On("DeleteItem", "ghost").Return(int64(0), nil).Once()

	assert.ErrorIs(t, svc.Delete("ghost"), service.ErrItemNotFound)
}

func TestCartService_Apply(t *testing.T) {
	ctx := context.Background()
	item := line("sushi-saumon", "2.50", 0).MenuItem

	t.Run("add_prices_from_catalog", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		catalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(store, catalog)

		store.On("GetCart", ctx, "s1").Return(nil, nil).Once()
		catalog.On("GetItem", "sushi-saumon").Return(&item, nil).Once()
		store.On("SaveCart", ctx, "s1", mock.Anything).Return(nil).Once()

		view, err := svc.Apply(ctx, "s1", service.CartOp{Action: "add", ItemID: "sushi-saumon", Quantity: 2})

		assert.NoError(t, err)
		assert.Equal(t, 2, view.ItemCount)
		assert.True(t, view.Total.Equal(decimal.RequireFromString("5.00")))
	})

	t.Run("add_unknown_item", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		catalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(store, catalog)

		store.On("GetCart", ctx, "s1").Return(nil, nil).Once()
		catalog.On("GetItem", "ghost").Return(nil, errors.New("not found")).Once()

		_, err := svc.Apply(ctx, "s1", service.CartOp{Action: "add", ItemID: "ghost"})
		assert.ErrorIs(t, err, service.ErrItemNotFound)
	})

	t.Run("unknown_action", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		catalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(store, catalog)

		store.On("GetCart", ctx, "s1").Return(nil, nil).Once()

		_, err := svc.Apply(ctx, "s1", service.CartOp{Action: "explode"})
		assert.ErrorIs(t, err, service.ErrInvalidCartOp)
	})

	t.Run("remove_is_noop_on_missing_id", func(t *testing.T) {
		store := mocks.NewCartStore(t)
		catalog := mocks.NewCatalogRepository(t)
		svc := service.NewCartService(store, catalog)

		existing := cart.Cart{line("sushi-saumon", "2.50", 1)}
		store.On("GetCart", ctx, "s1").Return(existing, nil).Once()
		store.On("SaveCart", ctx, "s1", existing).Return(nil).Once()

		view, err := svc.Apply(ctx, "s1", service.CartOp{Action: "remove", ItemID: "ghost"})
		assert.NoError(t, err)
		assert.Equal(t, 1, view.ItemCount)
	})
}

func TestCartService_QuoteRepricesAndMerges(t *testing.T) {
	store := mocks.NewCartStore(t)
	catalog := mocks.NewCatalogRepository(t)
	svc := service.NewCartService(store, catalog)

	catalogItem := line("sushi-saumon", "2.50", 0).MenuItem
	catalog.On("GetItem", "sushi-saumon").Return(&catalogItem, nil).Times(2)
	catalog.On("GetItem", "ghost").Return(nil, errors.New("not found")).Once()

	// The client claims a tampered price, duplicates a line and includes
	// an unknown item.
	tampered := line("sushi-saumon", "0.01", 1)
	view, err := svc.Quote([]domain.CartLine{tampered, tampered, line("ghost", "9.99", 5)})

	assert.NoError(t, err)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.ItemCount)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("5.00")),
		"total = %s", view.Total)
}

func TestAuthService(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	assert.NoError(t, err)

	authenticator := service.NewBcryptAuthenticator(map[string]service.AdminCredential{
		"admin": {PasswordHash: string(hash), Role: "admin"},
	})
	svc := service.NewAuthService(authenticator)

	t.Run("wrong_password", func(t *testing.T) {
		_, _, err := svc.Login("admin", "nope")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown_user", func(t *testing.T) {
		_, _, err := svc.Login("ghost", "secret")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("login_verify_logout", func(t *testing.T) {
		token, user, err := svc.Login("admin", "secret")
		assert.NoError(t, err)
		assert.Equal(t, "admin", user.Role)

		verified, ok := svc.Verify(token)
		assert.True(t, ok)
		assert.Equal(t, "admin", verified.Username)

		svc.Logout(token)
		_, ok = svc.Verify(token)
		assert.False(t, ok)
	})
}
