package service

import (
	"github.com/google/uuid"

	"otomo-storefront/storefront-svc/internal/domain"
)

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) List(category string) ([]domain.MenuItem, error) {
	if category != "" {
		return s.repo.ListItemsByCategory(category)
	}
	return s.repo.ListItems()
}

func (s *CatalogService) Get(id string) (*domain.MenuItem, error) {
	item, err := s.repo.GetItem(id)
	if err != nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *CatalogService) Categories() ([]domain.Category, error) {
	return s.repo.ListCategories()
}

func (s *CatalogService) Create(item *domain.MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return s.repo.CreateItem(item)
}

func (s *CatalogService) Update(item *domain.MenuItem) error {
	if err := s.repo.UpdateItem(item); err != nil {
		return ErrItemNotFound
	}
	return nil
}

func (s *CatalogService) Delete(id string) error {
	rows, err := s.repo.DeleteItem(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrItemNotFound
	}
	return nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
