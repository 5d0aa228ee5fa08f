package main

import (
	"log"
	"os"
	"time"

	"otomo-storefront/config"
	httpapi "otomo-storefront/storefront-svc/internal/api/http"
	"otomo-storefront/storefront-svc/internal/service"
	"otomo-storefront/storefront-svc/internal/storage"
)

func buildCatalog() service.CatalogRepository {
	if os.Getenv("STORAGE") == "postgres" {
		db := config.MustInitPostgres()
		catalog, err := storage.NewPostgresCatalog(db)
		if err != nil {
			log.Fatal("Failed to init postgres catalog:", err)
		}
		log.Println("[storefront-svc] using postgres catalog")
		return catalog
	}

	catalog := storage.NewCatalog()
	storage.SeedCatalog(catalog)
	return catalog
}

func buildCartStore() service.CartStore {
	if os.Getenv("REDIS_HOST") != "" {
		client := config.MustInitRedis()
		log.Println("[storefront-svc] using redis cart store")
		return storage.NewRedisCartStore(client, 24*time.Hour)
	}
	return storage.NewMemoryCartStore()
}

func buildPublisher() service.EventPublisher {
	if os.Getenv("KAFKA_BROKER") == "" {
		log.Println("[storefront-svc] KAFKA_BROKER not set, order events disabled")
		return nil
	}
	return storage.NewKafkaPublisher(config.NewKafkaWriter("orders"))
}

func buildAuthenticator() service.Authenticator {
	users := map[string]service.AdminCredential{}

	username := config.Getenv("ADMIN_USER", "admin")
	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		log.Println("[storefront-svc] ADMIN_PASSWORD_HASH not set, admin login disabled")
	} else {
		users[username] = service.AdminCredential{PasswordHash: hash, Role: "admin"}
	}

	return service.NewBcryptAuthenticator(users)
}

func main() {
	config.LoadEnv()

	catalog := buildCatalog()
	publisher := buildPublisher()

	banners := storage.NewBannerStore()
	storage.SeedBanners(banners)

	zones := storage.NewZoneStore()
	storage.SeedZones(zones)

	qr := service.DefaultQRGenerator{
		BaseURL: config.Getenv("PUBLIC_URL", "http://localhost:3001"),
	}

	handler := httpapi.NewHandler(
		service.NewOrderService(storage.NewOrderStore(), publisher, qr),
		service.NewReservationService(storage.NewReservationStore(), publisher),
		service.NewCatalogService(catalog),
		service.NewBannerService(banners),
		service.NewCartService(buildCartStore(), catalog),
		service.NewZoneService(zones),
		service.NewSettingsService(storage.NewSettingsStore(storage.DefaultSettings())),
		service.NewAuthService(buildAuthenticator()),
	)

	addr := ":" + config.Getenv("PORT", "3001")
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}
