package snapshots

import "time"

// SetClock replaces the clock used for snapshot ids.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}
