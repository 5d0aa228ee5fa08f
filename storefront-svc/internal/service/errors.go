package service

import "errors"

// User-facing messages keep the storefront's locale. Anything outside
// this list surfaces as a generic server error.
var (
	ErrItemsRequired        = errors.New("Items requis")
	ErrCustomerInfoRequired = errors.New("Informations client requises")
	ErrPickupTimeRequired   = errors.New("Heure de récupération requise")
	ErrReservationFields    = errors.New("Toutes les informations sont requises")
	ErrOrderNotFound        = errors.New("Commande non trouvée")
	ErrReservationNotFound  = errors.New("Réservation non trouvée")
	ErrItemNotFound         = errors.New("Produit non trouvé")
	ErrBannerNotFound       = errors.New("Bannière non trouvée")
	ErrZoneNotFound         = errors.New("Zone non trouvée")
	ErrInvalidCartOp        = errors.New("Opération de panier invalide")
	ErrInvalidCredentials   = errors.New("Identifiants invalides")
)

// IsValidation reports whether err maps to a 400 at the HTTP boundary.
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrItemsRequired),
		errors.Is(err, ErrCustomerInfoRequired),
		errors.Is(err, ErrPickupTimeRequired),
		errors.Is(err, ErrReservationFields),
		errors.Is(err, ErrInvalidCartOp):
		return true
	}
	return false
}

// IsNotFound reports whether err maps to a 404 at the HTTP boundary.
func IsNotFound(err error) bool {
	switch {
	case errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrReservationNotFound),
		errors.Is(err, ErrItemNotFound),
		errors.Is(err, ErrBannerNotFound),
		errors.Is(err, ErrZoneNotFound):
		return true
	}
	return false
}
