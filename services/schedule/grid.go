package schedule

import (
	"errors"
	"sort"
	"time"

	"skillhub/models"
)

// BucketByDay groups blocks under every weekday they recur on. Each block is
// referenced, not copied, once per listed day. All seven weekdays are present
// in the result. Blocks with an unknown day name are left out of every bucket.
func BucketByDay(blocks []models.ScheduleBlock) (map[time.Weekday][]*models.ScheduleBlock, []*BlockError) {
	buckets := make(map[time.Weekday][]*models.ScheduleBlock, len(WeekOrder))
	for _, wd := range WeekOrder {
		buckets[wd] = []*models.ScheduleBlock{}
	}

	var failures []*BlockError
	for i := range blocks {
		b := &blocks[i]
		days, err := blockDays(b)
		if err != nil {
			failures = append(failures, newBlockError(i, b, "daysOfWeek", err))
			continue
		}
		for _, wd := range days {
			buckets[wd] = append(buckets[wd], b)
		}
	}
	return buckets, failures
}

// PositionWithinAxis places a block on the axis as a top offset and a height,
// both as percentages of the axis range.
func PositionWithinAxis(block *models.ScheduleBlock, axis models.TimeAxis) (models.PositionedBlock, error) {
	start, err := ParseClock(block.StartTime)
	if err != nil {
		return models.PositionedBlock{}, err
	}
	end, err := ParseClock(block.EndTime)
	if err != nil {
		return models.PositionedBlock{}, err
	}
	return place(span{block: block, start: start, end: end}, axis)
}

func place(sp span, axis models.TimeAxis) (models.PositionedBlock, error) {
	total := axis.EndMinute - axis.StartMinute
	if total <= 0 {
		return models.PositionedBlock{}, ErrInvalidAxis
	}
	if sp.end <= axis.StartMinute || sp.start >= axis.EndMinute {
		return models.PositionedBlock{}, ErrOutsideAxis
	}

	cardStart := sp.start - axis.StartMinute
	cardEnd := sp.end - axis.StartMinute
	return models.PositionedBlock{
		Block:         sp.block,
		StartMinute:   sp.start,
		EndMinute:     sp.end,
		TopPercent:    100 * float64(cardStart) / float64(total),
		HeightPercent: 100 * float64(cardEnd-cardStart) / float64(total),
	}, nil
}

// Presentation maps a status onto how the block is drawn. There is no default.
func Presentation(status models.ScheduleStatus) (models.Presentation, error) {
	switch status {
	case models.StatusActive:
		return models.Presentation{Emphasized: true, Tone: "primary"}, nil
	case models.StatusPaused:
		return models.Presentation{Emphasized: false, Tone: "warning"}, nil
	case models.StatusCanceled:
		return models.Presentation{Emphasized: false, Tone: "error"}, nil
	}
	return models.Presentation{}, &UnknownStatusError{Status: status}
}

// ValidateBlock reports the first problem that would keep a block off the grid.
func ValidateBlock(block *models.ScheduleBlock) error {
	if _, failures := parseSpans([]models.ScheduleBlock{*block}); len(failures) > 0 {
		return failures[0].Err
	}
	if _, err := Presentation(block.Status); err != nil {
		return err
	}
	if _, err := blockDays(block); err != nil {
		return err
	}
	return nil
}

// BuildWeek lays out one owner's blocks from a single snapshot: it builds the
// axis, buckets by weekday and positions every block against that same axis.
// Per-block problems become warnings. When no block has a usable time range the
// returned layout is unscheduled and the error is ErrNoSchedule.
//
// Blocks that overlap on the same day are not stacked; each one lists the ids
// of the blocks it collides with in Overlaps.
func BuildWeek(ownerID string, blocks []models.ScheduleBlock) (*models.WeekLayout, error) {
	layout := &models.WeekLayout{
		OwnerID: ownerID,
		Days:    emptyColumns(),
	}

	if len(blocks) == 0 {
		return layout, ErrNoSchedule
	}
	spans, failures := parseSpans(blocks)
	if len(spans) == 0 {
		layout.Warnings = warningsFrom(failures)
		return layout, ErrNoSchedule
	}
	axis := axisFromSpans(spans)
	layout.Scheduled = true
	layout.Axis = &axis

	perDay := make(map[time.Weekday][]models.PositionedBlock, len(WeekOrder))

	for _, sp := range spans {
		look, err := Presentation(sp.block.Status)
		if err != nil {
			failures = append(failures, newBlockError(sp.index, sp.block, "status", err))
			continue
		}
		days, err := blockDays(sp.block)
		if err != nil {
			failures = append(failures, newBlockError(sp.index, sp.block, "daysOfWeek", err))
			continue
		}

		pb, err := place(sp, axis)
		if errors.Is(err, ErrOutsideAxis) {
			continue
		}
		if err != nil {
			return nil, err
		}
		pb.Presentation = look

		for _, wd := range days {
			perDay[wd] = append(perDay[wd], pb)
		}
	}

	for i, wd := range WeekOrder {
		column := perDay[wd]
		sort.SliceStable(column, func(a, b int) bool {
			if column[a].StartMinute != column[b].StartMinute {
				return column[a].StartMinute < column[b].StartMinute
			}
			return column[a].Block.Title < column[b].Block.Title
		})
		markOverlaps(column)
		if column != nil {
			layout.Days[i].Blocks = column
		}
	}

	layout.Warnings = warningsFrom(failures)
	return layout, nil
}

// markOverlaps records, for every block of a day sorted by start, the ids of the
// other blocks whose ranges intersect it.
func markOverlaps(column []models.PositionedBlock) {
	for i := range column {
		for j := i + 1; j < len(column); j++ {
			if column[j].StartMinute >= column[i].EndMinute {
				break
			}
			column[i].Overlaps = append(column[i].Overlaps, column[j].Block.ID)
			column[j].Overlaps = append(column[j].Overlaps, column[i].Block.ID)
		}
	}
}

func emptyColumns() []models.DayColumn {
	days := make([]models.DayColumn, len(WeekOrder))
	for i, wd := range WeekOrder {
		days[i] = models.DayColumn{Day: wd.String(), Blocks: []models.PositionedBlock{}}
	}
	return days
}

func warningsFrom(failures []*BlockError) []models.LayoutWarning {
	if len(failures) == 0 {
		return nil
	}
	sort.SliceStable(failures, func(i, j int) bool { return failures[i].Index < failures[j].Index })
	warnings := make([]models.LayoutWarning, 0, len(failures))
	for _, f := range failures {
		warnings = append(warnings, models.LayoutWarning{
			BlockID: f.BlockID,
			Field:   f.Field,
			Message: f.Err.Error(),
		})
	}
	return warnings
}
