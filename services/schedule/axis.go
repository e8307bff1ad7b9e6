package schedule

import (
	"skillhub/models"
)

// AxisBuffer is added after the latest end time so the last block is not flush with the bottom edge.
const AxisBuffer = 60

// span is a block with its clock strings already resolved to minutes.
type span struct {
	block *models.ScheduleBlock
	index int
	start int
	end   int
}

// parseSpans resolves every block's time range once. Blocks that fail are reported and left out.
func parseSpans(blocks []models.ScheduleBlock) ([]span, []*BlockError) {
	spans := make([]span, 0, len(blocks))
	var failures []*BlockError

	for i := range blocks {
		b := &blocks[i]

		start, err := ParseClock(b.StartTime)
		if err != nil {
			failures = append(failures, newBlockError(i, b, "startTime", err))
			continue
		}
		end, err := ParseClock(b.EndTime)
		if err != nil {
			failures = append(failures, newBlockError(i, b, "endTime", err))
			continue
		}
		if start >= end {
			failures = append(failures, newBlockError(i, b, "endTime", &InvalidRangeError{StartTime: b.StartTime, EndTime: b.EndTime}))
			continue
		}
		spans = append(spans, span{block: b, index: i, start: start, end: end})
	}
	return spans, failures
}

// BuildAxis derives the week's shared time axis from every block of one owner.
// Blocks with unparseable times are excluded and returned as failures; the rest still
// produce an axis. ErrNoSchedule is returned when nothing usable remains.
func BuildAxis(blocks []models.ScheduleBlock) (*models.TimeAxis, []*BlockError, error) {
	if len(blocks) == 0 {
		return nil, nil, ErrNoSchedule
	}
	spans, failures := parseSpans(blocks)
	if len(spans) == 0 {
		return nil, failures, ErrNoSchedule
	}
	axis := axisFromSpans(spans)
	return &axis, failures, nil
}

func axisFromSpans(spans []span) models.TimeAxis {
	start, end := spans[0].start, spans[0].end
	for _, sp := range spans[1:] {
		if sp.start < start {
			start = sp.start
		}
		if sp.end > end {
			end = sp.end
		}
	}
	end += AxisBuffer

	return models.TimeAxis{
		StartMinute: start,
		EndMinute:   end,
		SlotLabels:  slotLabels(start, end),
	}
}

// slotLabels emits one label per hour from start through end, plus a closing
// label at end when the range is not a whole number of hours.
func slotLabels(start, end int) []string {
	labels := make([]string, 0, (end-start)/minutesPerHour+2)
	for m := start; m <= end; m += minutesPerHour {
		labels = append(labels, FormatClock(m))
	}
	if (end-start)%minutesPerHour != 0 {
		labels = append(labels, FormatClock(end))
	}
	return labels
}
