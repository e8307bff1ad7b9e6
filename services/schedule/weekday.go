package schedule

import (
	"strings"
	"time"

	"skillhub/models"
)

// WeekOrder is the fixed column order of the grid.
var WeekOrder = []time.Weekday{
	time.Sunday,
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

// ParseWeekday maps an English day name, in any case, onto time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	trimmed := strings.TrimSpace(name)
	for _, wd := range WeekOrder {
		if strings.EqualFold(trimmed, wd.String()) {
			return wd, nil
		}
	}
	return time.Sunday, &UnknownWeekdayError{Day: name}
}

// blockDays returns the distinct weekdays of a block in the order they were listed.
func blockDays(block *models.ScheduleBlock) ([]time.Weekday, error) {
	if len(block.DaysOfWeek) == 0 {
		return nil, &UnknownWeekdayError{Day: ""}
	}
	var seen [7]bool
	days := make([]time.Weekday, 0, len(block.DaysOfWeek))
	for _, name := range block.DaysOfWeek {
		wd, err := ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		if seen[wd] {
			continue
		}
		seen[wd] = true
		days = append(days, wd)
	}
	return days, nil
}
