package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"otomo-storefront/storefront-svc/internal/domain"
	"otomo-storefront/storefront-svc/internal/service"
)

const sessionHeader = "X-Session-ID"

type Handler struct {
	Orders       service.OrderServiceInterface
	Reservations service.ReservationServiceInterface
	Catalog      service.CatalogServiceInterface
	Banners      service.BannerServiceInterface
	Carts        service.CartServiceInterface
	Zones        service.ZoneServiceInterface
	Settings     service.SettingsServiceInterface
	Auth         service.AuthServiceInterface
}

func NewHandler(
	orders service.OrderServiceInterface,
	reservations service.ReservationServiceInterface,
	catalog service.CatalogServiceInterface,
	banners service.BannerServiceInterface,
	carts service.CartServiceInterface,
	zones service.ZoneServiceInterface,
	settings service.SettingsServiceInterface,
	auth service.AuthServiceInterface,
) *Handler {
	return &Handler{
		Orders:       orders,
		Reservations: reservations,
		Catalog:      catalog,
		Banners:      banners,
		Carts:        carts,
		Zones:        zones,
		Settings:     settings,
		Auth:         auth,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.getMenuItem).Methods("GET")

	r.HandleFunc("/api/banners", h.getBanners).Methods("GET")
	r.HandleFunc("/api/zones", h.getZones).Methods("GET")
	r.HandleFunc("/api/settings", h.getSettings).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.applyCartOp).Methods("POST")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/quote", h.quoteCart).Methods("POST")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", h.getReservation).Methods("GET")

	r.HandleFunc("/api/admin/login", h.adminLogin).Methods("POST")
	r.HandleFunc("/api/admin/logout", h.adminLogout).Methods("POST")

	r.HandleFunc("/api/admin/orders", h.requireAdmin(h.listOrders)).Methods("GET")
	r.HandleFunc("/api/admin/reservations", h.requireAdmin(h.listReservations)).Methods("GET")

	r.HandleFunc("/api/admin/products", h.requireAdmin(h.createProduct)).Methods("POST")
	r.HandleFunc("/api/admin/products/{id}", h.requireAdmin(h.updateProduct)).Methods("PUT")
	r.HandleFunc("/api/admin/products/{id}", h.requireAdmin(h.deleteProduct)).Methods("DELETE")

	r.HandleFunc("/api/admin/banners", h.requireAdmin(h.listAllBanners)).Methods("GET")
	r.HandleFunc("/api/admin/banners", h.requireAdmin(h.createBanner)).Methods("POST")
	r.HandleFunc("/api/admin/banners/{id}", h.requireAdmin(h.updateBanner)).Methods("PUT")
	r.HandleFunc("/api/admin/banners/{id}", h.requireAdmin(h.deleteBanner)).Methods("DELETE")

	r.HandleFunc("/api/admin/zones", h.requireAdmin(h.createZone)).Methods("POST")
	r.HandleFunc("/api/admin/zones/{id}", h.requireAdmin(h.updateZone)).Methods("PUT")
	r.HandleFunc("/api/admin/zones/{id}", h.requireAdmin(h.deleteZone)).Methods("DELETE")

	r.HandleFunc("/api/admin/settings", h.requireAdmin(h.saveSettings)).Methods("PUT")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps service sentinels onto the flat error taxonomy:
// validation 400, not found 404, everything else a generic 500 with the
// detail logged server-side only.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case service.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case service.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("[storefront-svc] internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur serveur")
	}
}

func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Non autorisé")
			return
		}
		if _, ok := h.Auth.Verify(token); !ok {
			writeError(w, http.StatusUnauthorized, "Non autorisé")
			return
		}
		next(w, r)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"service":   "storefront-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.List(r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.Categories()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Catalog.Get(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) getBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.Banners.Active(time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, banners)
}

func (h *Handler) getZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.Zones.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, zones)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Settings.Get()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// sessionID returns the caller's session, issuing one when absent. The
// id always travels back on the response so the client can keep it.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(sessionHeader, id)
	return id
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.Carts.Get(r.Context(), sessionID(w, r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) applyCartOp(w http.ResponseWriter, r *http.Request) {
	var op service.CartOp
	if err := json.NewDecoder(r.Body).Decode(&op); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	view, err := h.Carts.Apply(r.Context(), sessionID(w, r), op)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.Clear(r.Context(), sessionID(w, r)); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) quoteCart(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Items []domain.CartLine `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	view, err := h.Carts.Quote(payload.Items)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Items        []domain.CartLine   `json:"items"`
		CustomerInfo domain.CustomerInfo `json:"customerInfo"`
		PickupTime   string              `json:"pickupTime"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	order, err := h.Orders.Create(r.Context(), payload.Items, payload.CustomerInfo, payload.PickupTime)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"order": map[string]any{
			"id":         order.ID,
			"total":      order.Total,
			"status":     order.Status,
			"pickupTime": order.PickupTime,
		},
	})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Orders.GetQRCode(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var reservation domain.Reservation
	if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	if err := h.Reservations.Create(r.Context(), &reservation); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"reservation": map[string]any{
			"id":     reservation.ID,
			"date":   reservation.Date,
			"time":   reservation.Time,
			"guests": reservation.Guests,
			"status": reservation.Status,
		},
	})
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.Reservations.Get(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.Reservations.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	token, user, err := h.Auth.Login(credentials.Username, credentials.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Identifiants invalides")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func (h *Handler) adminLogout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	h.Auth.Logout(token)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}
	if err := h.Catalog.Create(&item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}
	item.ID = mux.Vars(r)["id"]
	if err := h.Catalog.Update(&item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.Delete(mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listAllBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.Banners.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, banners)
}

func (h *Handler) createBanner(w http.ResponseWriter, r *http.Request) {
	var message domain.BannerMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}
	if err := h.Banners.Create(&message); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

func (h *Handler) updateBanner(w http.ResponseWriter, r *http.Request) {
	var message domain.BannerMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}
	message.ID = mux.Vars(r)["id"]
	if err := h.Banners.Update(&message); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, message)
}

func (h *Handler) deleteBanner(w http.ResponseWriter, r *http.Request) {
	if err := h.Banners.Delete(mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createZone(w http.ResponseWriter, r *http.Request) {
	var zone domain.DeliveryZone
	if err := json.NewDecoder(r.Body).Decode(&zone); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}
	if err := h.Zones.Create(&zone); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, zone)
}

func (h *Handler) updateZone(w http.ResponseWriter, r *http.Request) {
	var zone domain.DeliveryZone
	if err := json.NewDecoder(r.Body).Decode(&zone); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}
	zone.ID = mux.Vars(r)["id"]
	if err := h.Zones.Update(&zone); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, zone)
}

func (h *Handler) deleteZone(w http.ResponseWriter, r *http.Request) {
	if err := h.Zones.Delete(mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) saveSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.SiteSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}
	if err := h.Settings.Save(&settings); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
