package service

import (
	"sync"
	"time"

	"countryservice/internal/model"
)

// StatusTracker is the process-wide record of refresh state: last successful
// refresh time, record count at last success, last error, and whether a
// refresh is currently running.
//
// It also carries the refresh concurrency guard: Begin succeeds for at most
// one caller at a time, so two refreshes can never race a full-replace
// against the store. Only the RefreshService mutates the tracker.
type StatusTracker struct {
	mu sync.Mutex

	refreshing      bool
	totalCountries  int
	lastRefreshedAt *time.Time
	lastError       *string
}

// NewStatusTracker creates a tracker with all-empty state.
func NewStatusTracker() *StatusTracker {
	return &StatusTracker{}
}

// Seed initializes the success fields from persisted state, so a restarted
// process reports the last refresh that actually happened.
func (t *StatusTracker) Seed(totalCountries int, lastRefreshedAt *time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalCountries = totalCountries
	t.lastRefreshedAt = lastRefreshedAt
}

// Begin marks a refresh as in-flight. Returns false if one is already
// running, in which case the caller must not start another.
func (t *StatusTracker) Begin() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.refreshing {
		return false
	}
	t.refreshing = true
	return true
}

// Succeed records a completed refresh: timestamp and count are updated and
// the last error is cleared.
func (t *StatusTracker) Succeed(totalCountries int, refreshedAt time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refreshing = false
	t.totalCountries = totalCountries
	t.lastRefreshedAt = &refreshedAt
	t.lastError = nil
}

// Fail records a failed refresh. The success fields are left untouched;
// only the last error changes.
func (t *StatusTracker) Fail(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refreshing = false
	msg := err.Error()
	t.lastError = &msg
}

// Snapshot returns a copy of the current status.
func (t *StatusTracker) Snapshot() model.RefreshStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	return model.RefreshStatus{
		TotalCountries:  t.totalCountries,
		LastRefreshedAt: t.lastRefreshedAt,
		Refreshing:      t.refreshing,
		LastError:       t.lastError,
	}
}
