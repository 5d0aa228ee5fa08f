package banner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"otomo-storefront/storefront-svc/internal/domain"
)

func ptr(t time.Time) *time.Time { return &t }

func TestEligibleFiltersAndSorts(t *testing.T) {
	messages := []domain.BannerMessage{
		{ID: "1", Priority: 80, Active: true},
		{ID: "2", Priority: 95, Active: true},
		{ID: "3", Priority: 60, Active: false},
	}

	eligible := Eligible(messages, time.Now())

	assert.Len(t, eligible, 2)
	assert.Equal(t, "2", eligible[0].ID)
	assert.Equal(t, "1", eligible[1].ID)
}

func TestEligibleIsStableOnTies(t *testing.T) {
	messages := []domain.BannerMessage{
		{ID: "a", Priority: 50, Active: true},
		{ID: "b", Priority: 50, Active: true},
		{ID: "c", Priority: 50, Active: true},
	}

	eligible := Eligible(messages, time.Now())

	assert.Equal(t, "a", eligible[0].ID)
	assert.Equal(t, "b", eligible[1].ID)
	assert.Equal(t, "c", eligible[2].ID)
}

func TestEligibleDateWindow(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	messages := []domain.BannerMessage{
		{ID: "future", Type: domain.BannerTemporary, Active: true,
			StartDate: ptr(now.Add(time.Hour))},
		{ID: "expired", Type: domain.BannerTemporary, Active: true,
			EndDate: ptr(now.Add(-time.Hour))},
		{ID: "open", Type: domain.BannerTemporary, Active: true,
			StartDate: ptr(now.Add(-time.Hour)), EndDate: ptr(now.Add(time.Hour))},
		{ID: "no-window", Type: domain.BannerPermanent, Active: true},
		// The window applies regardless of declared type.
		{ID: "holiday-expired", Type: domain.BannerHoliday, Active: true,
			EndDate: ptr(now.Add(-time.Minute))},
	}

	eligible := Eligible(messages, now)

	ids := make([]string, 0, len(eligible))
	for _, m := range eligible {
		ids = append(ids, m.ID)
	}
	assert.ElementsMatch(t, []string{"open", "no-window"}, ids)
}

func TestEligibleWindowBoundsAreInclusive(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	message := domain.BannerMessage{ID: "edge", Active: true,
		StartDate: ptr(now), EndDate: ptr(now)}

	assert.Len(t, Eligible([]domain.BannerMessage{message}, now), 1)
}

func TestBand(t *testing.T) {
	assert.Equal(t, BandUrgent, Band(95))
	assert.Equal(t, BandUrgent, Band(90))
	assert.Equal(t, BandImportant, Band(89))
	assert.Equal(t, BandImportant, Band(70))
	assert.Equal(t, BandInformational, Band(69))
	assert.Equal(t, BandInformational, Band(50))
	assert.Equal(t, BandNormal, Band(49))
	assert.Equal(t, BandNormal, Band(0))
}

func TestRotatorAdvancesAndWraps(t *testing.T) {
	r := NewRotator(time.Hour)
	defer r.Stop()

	r.SetMessages([]domain.BannerMessage{
		{ID: "1", Priority: 80, Active: true},
		{ID: "2", Priority: 95, Active: true},
		{ID: "3", Priority: 60, Active: false},
	})

	current, ok := r.Current()
	assert.True(t, ok)
	assert.Equal(t, "2", current.ID)

	r.Advance()
	current, _ = r.Current()
	assert.Equal(t, "1", current.ID)

	r.Advance()
	current, _ = r.Current()
	assert.Equal(t, "2", current.ID)
}

func TestRotatorEmptySequence(t *testing.T) {
	r := NewRotator(time.Hour)
	defer r.Stop()

	r.SetMessages(nil)
	_, ok := r.Current()
	assert.False(t, ok)

	// Advancing an empty rotator must not panic.
	r.Advance()
	_, ok = r.Current()
	assert.False(t, ok)
}

func TestRotatorDismiss(t *testing.T) {
	r := NewRotator(time.Hour)
	defer r.Stop()

	messages := []domain.BannerMessage{{ID: "1", Priority: 50, Active: true}}
	r.SetMessages(messages)

	r.Dismiss()
	_, ok := r.Current()
	assert.False(t, ok)

	// Re-evaluating the list keeps the banner hidden.
	r.SetMessages(messages)
	_, ok = r.Current()
	assert.False(t, ok)

	// Dismiss never touches the underlying active flag.
	assert.True(t, messages[0].Active)

	r.Reset()
	current, ok := r.Current()
	assert.True(t, ok)
	assert.Equal(t, "1", current.ID)
}

func TestRotatorTickerDrivesRotation(t *testing.T) {
	r := NewRotator(10 * time.Millisecond)
	defer r.Stop()

	r.SetMessages([]domain.BannerMessage{
		{ID: "1", Priority: 90, Active: true},
		{ID: "2", Priority: 10, Active: true},
	})

	assert.Eventually(t, func() bool {
		current, ok := r.Current()
		return ok && current.ID == "2"
	}, time.Second, 5*time.Millisecond)
}

func TestRotatorSingleMessageDoesNotRotate(t *testing.T) {
	r := NewRotator(10 * time.Millisecond)
	defer r.Stop()

	r.SetMessages([]domain.BannerMessage{{ID: "only", Priority: 50, Active: true}})

	time.Sleep(50 * time.Millisecond)
	current, ok := r.Current()
	assert.True(t, ok)
	assert.Equal(t, "only", current.ID)
}

func TestRotatorStopIsIdempotent(t *testing.T) {
	r := NewRotator(10 * time.Millisecond)
	r.SetMessages([]domain.BannerMessage{
		{ID: "1", Priority: 90, Active: true},
		{ID: "2", Priority: 10, Active: true},
	})

	r.Stop()
	r.Stop()

	// Shrinking to one eligible message also stops the ticker.
	r.SetMessages([]domain.BannerMessage{{ID: "1", Priority: 90, Active: true}})
	r.Stop()
}
