package store

import (
	"time"

	"github.com/rohitpatil05/finlens/internal/client/models"
)

// BeginLoading marks one tracked operation as in flight.
func (s *Store) BeginLoading() {
	s.Dispatch(func(st *State) {
		st.UI.Pending++
	})
}

// EndLoading marks one tracked operation as finished. Loading stays true
// while other operations are still in flight.
func (s *Store) EndLoading() {
	s.Dispatch(func(st *State) {
		if st.UI.Pending > 0 {
			st.UI.Pending--
		}
	})
}

// Notify replaces the active notification. Last one wins.
func (s *Store) Notify(message string, severity models.Severity, duration time.Duration) {
	s.Dispatch(func(st *State) {
		st.UI.Notification = &models.Notification{
			Message:  message,
			Severity: severity,
			Duration: duration,
		}
	})
}

// ClearNotification dismisses the active notification.
func (s *Store) ClearNotification() {
	s.Dispatch(func(st *State) {
		st.UI.Notification = nil
	})
}
