package service

import "time"

// SetNow fixes the service clock so limit windows and durations are
// deterministic in tests.
func (s *FlightService) SetNow(now func() time.Time) {
	s.now = now
}
