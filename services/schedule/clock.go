package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
	noon           = 12 * minutesPerHour
)

// ParseClock converts a 12-hour clock string such as "7:00 AM" or "12:30pm"
// into minutes from midnight.
func ParseClock(value string) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(value))

	var pm bool
	switch {
	case strings.HasSuffix(s, "AM"):
	case strings.HasSuffix(s, "PM"):
		pm = true
	default:
		return 0, &MalformedTimeError{Value: value}
	}
	s = strings.TrimSpace(s[:len(s)-2])

	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, &MalformedTimeError{Value: value}
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 1 || hour > 12 || !isDigits(hh) {
		return 0, &MalformedTimeError{Value: value}
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute > 59 || !isDigits(mm) {
		return 0, &MalformedTimeError{Value: value}
	}

	// 12 AM is midnight and 12 PM is noon.
	hour %= 12
	total := hour*minutesPerHour + minute
	if pm {
		total += noon
	}
	return total, nil
}

// FormatClock renders minutes from midnight as a 12-hour label such as "9:00 AM".
// Values past midnight wrap around to the next day's clock.
func FormatClock(minutes int) string {
	m := ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	hour, minute := m/minutesPerHour, m%minutesPerHour

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
}

// strconv.Atoi accepts a leading sign, the clock grammar does not.
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
