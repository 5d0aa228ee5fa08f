package storage

import (
	"github.com/shopspring/decimal"

	"otomo-storefront/storefront-svc/internal/domain"
)

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// SeedCatalog loads the storefront menu into a fresh memory catalog.
func SeedCatalog(catalog *Catalog) {
	catalog.SetCategories([]domain.Category{
		{ID: "sushi", Name: "Sushi", Description: "Nos sushi traditionnels préparés avec du poisson frais"},
		{ID: "sashimi", Name: "Sashimi", Description: "Tranches de poisson cru de qualité premium"},
		{ID: "maki", Name: "Maki", Description: "Rouleaux de riz garnis, algue nori"},
		{ID: "chirashi", Name: "Chirashi", Description: "Bols de riz garnis de poisson cru"},
		{ID: "plats-chauds", Name: "Plats Chauds", Description: "Spécialités chaudes de notre Izakaya"},
		{ID: "desserts", Name: "Desserts", Description: "Douceurs japonaises traditionnelles"},
	})

	items := []domain.MenuItem{
		{ID: "sushi-saumon", Name: "Sushi Saumon", Description: "Sushi au saumon frais de Norvège", Price: price("2.50"), Category: "sushi", Available: true},
		{ID: "sushi-thon", Name: "Sushi Thon", Description: "Sushi au thon rouge de qualité sashimi", Price: price("3.00"), Category: "sushi", Available: true},
		{ID: "sushi-crevette", Name: "Sushi Crevette", Description: "Sushi à la crevette cuite, wasabi", Price: price("2.80"), Category: "sushi", Available: true},
		{ID: "sashimi-saumon", Name: "Sashimi Saumon (6 pcs)", Description: "Tranches de saumon frais, gingembre mariné", Price: price("12.00"), Category: "sashimi", Available: true},
		{ID: "sashimi-thon", Name: "Sashimi Thon (6 pcs)", Description: "Tranches de thon rouge, wasabi frais", Price: price("15.00"), Category: "sashimi", Available: true},
		{ID: "maki-california", Name: "California Maki (8 pcs)", Description: "Avocat, concombre, crabe, saumon, tobiko", Price: price("8.50"), Category: "maki", Available: true, Popular: true},
		{ID: "maki-saumon", Name: "Maki Saumon (6 pcs)", Description: "Saumon frais, riz vinaigré, algue nori", Price: price("6.50"), Category: "maki", Available: true},
		{ID: "chirashi-saumon", Name: "Chirashi Saumon", Description: "Bol de riz, saumon frais, avocat, sésame", Price: price("16.50"), Category: "chirashi", Available: true},
		{ID: "yakitori-poulet", Name: "Yakitori Poulet (2 pcs)", Description: "Brochettes de poulet, sauce yakitori maison", Price: price("5.50"), Category: "plats-chauds", Available: true},
		{ID: "gyoza-legumes", Name: "Gyoza Légumes (5 pcs)", Description: "Raviolis japonais aux légumes, sauce ponzu", Price: price("6.00"), Category: "plats-chauds", Available: true},
		{ID: "mochi-glace", Name: "Mochi Glacé (2 pcs)", Description: "Pâte de riz fourrée à la glace, thé vert ou mangue", Price: price("5.50"), Category: "desserts", Available: true},
		{ID: "dorayaki", Name: "Dorayaki", Description: "Pancake japonais fourré à la pâte de haricot rouge", Price: price("4.50"), Category: "desserts", Available: false},
	}
	for i := range items {
		_ = catalog.CreateItem(&items[i])
	}
}

// SeedBanners loads the default promotional strip.
func SeedBanners(store *BannerStore) {
	banners := []domain.BannerMessage{
		{ID: "banner-welcome", Text: "Bienvenue chez Ô TOMO, Click & Collect disponible", Type: domain.BannerPermanent, Active: true, Priority: 60},
		{ID: "banner-special", Text: "Plat du jour : Chirashi Saumon à 14,50 €", Type: domain.BannerDailySpecial, Active: true, Priority: 80},
	}
	for i := range banners {
		_ = store.CreateBanner(&banners[i])
	}
}

// SeedZones loads the default pickup perimeter zones shown in the admin
// panel mockup.
func SeedZones(store *ZoneStore) {
	zones := []domain.DeliveryZone{
		{ID: "zone-centre", Name: "Centre-ville", Price: price("0.00"), Active: true, MinOrderAmount: price("15.00"), MaxDeliveryTime: 30},
		{ID: "zone-peripherie", Name: "Périphérie", Price: price("3.50"), Active: false, MinOrderAmount: price("25.00"), MaxDeliveryTime: 45},
	}
	for i := range zones {
		_ = store.CreateZone(&zones[i])
	}
}

// DefaultSettings mirrors the general settings form of the admin panel.
func DefaultSettings() domain.SiteSettings {
	return domain.SiteSettings{
		RestaurantName:       "Ô TOMO",
		Description:          "Sushi et Izakaya, cuisine japonaise traditionnelle",
		Address:              "12 rue des Halles, 75001 Paris",
		Phone:                "+33 1 42 00 00 00",
		Email:                "contact@otomo.example",
		MinOrderAmount:       price("15.00"),
		MaxGuestsPerOrder:    8,
		AllowScheduledOrders: true,
	}
}
