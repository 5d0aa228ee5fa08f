package service

import (
	"github.com/google/uuid"

	"otomo-storefront/storefront-svc/internal/domain"
)

type ZoneService struct {
	repo ZoneRepository
}

func NewZoneService(repo ZoneRepository) *ZoneService {
	return &ZoneService{repo: repo}
}

func (s *ZoneService) List() ([]domain.DeliveryZone, error) {
	return s.repo.ListZones()
}

func (s *ZoneService) Create(zone *domain.DeliveryZone) error {
	if zone.ID == "" {
		zone.ID = uuid.NewString()
	}
	return s.repo.CreateZone(zone)
}

func (s *ZoneService) Update(zone *domain.DeliveryZone) error {
	if err := s.repo.UpdateZone(zone); err != nil {
		return ErrZoneNotFound
	}
	return nil
}

func (s *ZoneService) Delete(id string) error {
	rows, err := s.repo.DeleteZone(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrZoneNotFound
	}
	return nil
}

var _ ZoneServiceInterface = (*ZoneService)(nil)

type SettingsService struct {
	repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get() (*domain.SiteSettings, error) {
	return s.repo.GetSettings()
}

func (s *SettingsService) Save(settings *domain.SiteSettings) error {
	return s.repo.SaveSettings(settings)
}

var _ SettingsServiceInterface = (*SettingsService)(nil)
