// Package banner selects and rotates the promotional message displayed in
// the storefront strip.
package banner

import (
	"sort"
	"time"

	"otomo-storefront/storefront-svc/internal/domain"
)

// Priority bands, styling metadata only. Bands never affect filtering
// or ordering.
const (
	BandUrgent        = "urgent"
	BandImportant     = "important"
	BandInformational = "informational"
	BandNormal        = "normal"
)

// Eligible keeps active messages whose date window, when set, contains
// now, ordered by descending priority. The sort is stable so equal
// priorities keep their input order. The window applies to any message
// carrying dates, whatever its declared type.
func Eligible(messages []domain.BannerMessage, now time.Time) []domain.BannerMessage {
	eligible := make([]domain.BannerMessage, 0, len(messages))
	for _, message := range messages {
		if !message.Active {
			continue
		}
		if message.StartDate != nil && now.Before(*message.StartDate) {
			continue
		}
		if message.EndDate != nil && now.After(*message.EndDate) {
			continue
		}
		eligible = append(eligible, message)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Priority > eligible[j].Priority
	})

	return eligible
}

func Band(priority int) string {
	switch {
	case priority >= 90:
		return BandUrgent
	case priority >= 70:
		return BandImportant
	case priority >= 50:
		return BandInformational
	default:
		return BandNormal
	}
}
