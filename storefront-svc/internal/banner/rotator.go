package banner

import (
	"sync"
	"time"

	"otomo-storefront/storefront-svc/internal/domain"
)

// DefaultInterval matches the storefront's five second slide.
const DefaultInterval = 5 * time.Second

// Rotator steps through the eligible message sequence on a fixed
// interval. The ticker only runs while more than one message is
// eligible, and is stopped on teardown so no callback outlives the
// owning view.
type Rotator struct {
	mu        sync.Mutex
	interval  time.Duration
	now       func() time.Time
	messages  []domain.BannerMessage
	index     int
	dismissed bool
	ticker    *time.Ticker
	done      chan struct{}
}

func NewRotator(interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Rotator{
		interval: interval,
		now:      time.Now,
	}
}

// SetMessages re-evaluates eligibility against the current clock and
// swaps in the new sequence. The index restarts at the head, a dismissed
// rotator stays hidden. The ticker starts or stops as the sequence
// crosses the one-message threshold.
func (r *Rotator) SetMessages(messages []domain.BannerMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = Eligible(messages, r.now())
	r.index = 0

	if len(r.messages) > 1 {
		r.startLocked()
	} else {
		r.stopLocked()
	}
}

// Current returns the visible message, or false when the sequence is
// empty or the banner was dismissed. An empty sequence is a valid
// terminal state, not a loading state.
func (r *Rotator) Current() (domain.BannerMessage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.dismissed || len(r.messages) == 0 {
		return domain.BannerMessage{}, false
	}
	return r.messages[r.index], true
}

// Advance moves to the next message, wrapping to the head.
func (r *Rotator) Advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advanceLocked()
}

func (r *Rotator) advanceLocked() {
	if len(r.messages) == 0 {
		return
	}
	r.index = (r.index + 1) % len(r.messages)
}

// Dismiss hides the banner for the session. The underlying messages keep
// their active flag, only Reset makes the banner visible again.
func (r *Rotator) Dismiss() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dismissed = true
}

func (r *Rotator) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dismissed = false
}

// Stop cancels the rotation timer. Safe to call repeatedly.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *Rotator) startLocked() {
	if r.ticker != nil {
		return
	}
	r.ticker = time.NewTicker(r.interval)
	r.done = make(chan struct{})

	go func(ticker *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-ticker.C:
				r.Advance()
			case <-done:
				return
			}
		}
	}(r.ticker, r.done)
}

func (r *Rotator) stopLocked() {
	if r.ticker == nil {
		return
	}
	r.ticker.Stop()
	close(r.done)
	r.ticker = nil
	r.done = nil
}
