// Package venue answers whether the club is open right now and when
// the nightly window closes next. Pure wall-clock math, no state.
package venue

import (
	"fmt"
	"time"
)

// Opening window: [OpenHour, CloseHour) local time.
// 04:00:00 exactly is closed.
const (
	OpenHour  = 0
	CloseHour = 4

	DefaultTimezone = "Asia/Bangkok"
)

// Clock abstracts time.Now so tests can use a fixed clock
type Clock interface {
	Now() time.Time
}

// SystemClock is the real wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// IsOpen reports whether the venue is open at the given instant
func IsOpen(now time.Time, loc *time.Location) bool {
	hour := now.In(loc).Hour()
	return hour >= OpenHour && hour < CloseHour
}

// NextCloseBoundary returns the next close boundary (CloseHour:00:00
// local) strictly after now. If now is at or past today's boundary,
// tomorrow's boundary is returned.
func NextCloseBoundary(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), CloseHour, 0, 0, 0, loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// StatusInfo is the public venue status
type StatusInfo struct {
	Open     bool   `json:"open"`
	Now      string `json:"now"`
	Timezone string `json:"timezone"`
	OpensAt  string `json:"opens_at"`
	ClosesAt string `json:"closes_at"`
}

// Status builds the venue status for the given instant
func Status(now time.Time, loc *time.Location) StatusInfo {
	return StatusInfo{
		Open:     IsOpen(now, loc),
		Now:      now.In(loc).Format(time.RFC3339),
		Timezone: loc.String(),
		OpensAt:  fmt.Sprintf("%02d:00", OpenHour),
		ClosesAt: fmt.Sprintf("%02d:00", CloseHour),
	}
}
