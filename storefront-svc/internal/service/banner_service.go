package service

import (
	"time"

	"github.com/google/uuid"

	"otomo-storefront/storefront-svc/internal/banner"
	"otomo-storefront/storefront-svc/internal/domain"
)

type BannerService struct {
	repo BannerRepository
}

func NewBannerService(repo BannerRepository) *BannerService {
	return &BannerService{repo: repo}
}

// Active returns the display sequence: active messages inside their date
// window, sorted by descending priority, each tagged with its band.
func (s *BannerService) Active(now time.Time) ([]BannerView, error) {
	messages, err := s.repo.ListBanners()
	if err != nil {
		return nil, err
	}

	eligible := banner.Eligible(messages, now)
	views := make([]BannerView, 0, len(eligible))
	for _, message := range eligible {
		views = append(views, BannerView{
			BannerMessage: message,
			Band:          banner.Band(message.Priority),
		})
	}
	return views, nil
}

func (s *BannerService) List() ([]domain.BannerMessage, error) {
	return s.repo.ListBanners()
}

func (s *BannerService) Create(message *domain.BannerMessage) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	return s.repo.CreateBanner(message)
}

func (s *BannerService) Update(message *domain.BannerMessage) error {
	if err := s.repo.UpdateBanner(message); err != nil {
		return ErrBannerNotFound
	}
	return nil
}

func (s *BannerService) Delete(id string) error {
	rows, err := s.repo.DeleteBanner(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBannerNotFound
	}
	return nil
}

var _ BannerServiceInterface = (*BannerService)(nil)
