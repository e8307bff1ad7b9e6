package schedule

import (
	"errors"
	"fmt"

	"skillhub/models"
)

var (
	// ErrNoSchedule is returned when there are no usable blocks to lay out.
	// It is a result, not a failure: callers render a "not scheduled" state.
	ErrNoSchedule = errors.New("no schedule")

	// ErrOutsideAxis marks a block whose time range does not touch the axis at all.
	ErrOutsideAxis = errors.New("block lies outside the time axis")

	// ErrInvalidAxis marks an axis with no positive range.
	ErrInvalidAxis = errors.New("time axis has no range")
)

// MalformedTimeError reports a time string that is not a 12-hour clock value.
type MalformedTimeError struct {
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time %q: expected a 12-hour clock value like \"7:00 AM\"", e.Value)
}

// InvalidRangeError reports a block that does not start before it ends.
type InvalidRangeError struct {
	StartTime string
	EndTime   string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("start %q is not before end %q", e.StartTime, e.EndTime)
}

// UnknownStatusError reports a status outside active, paused and canceled.
type UnknownStatusError struct {
	Status models.ScheduleStatus
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown schedule status %q", string(e.Status))
}

// UnknownWeekdayError reports a day name that is not Sunday through Saturday.
type UnknownWeekdayError struct {
	Day string
}

func (e *UnknownWeekdayError) Error() string {
	return fmt.Sprintf("unknown weekday %q", e.Day)
}

// UnknownBlockSelectedError is returned when a selection targets a block that is not on the grid.
type UnknownBlockSelectedError struct {
	BlockID string
}

func (e *UnknownBlockSelectedError) Error() string {
	return fmt.Sprintf("block %q is not part of the current week", e.BlockID)
}

// BlockError ties a per-block failure to the block it was raised for.
type BlockError struct {
	Index   int    // position of the block in the input
	BlockID string
	Field   string // "startTime", "endTime", "status" or "daysOfWeek"
	Err     error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %q (%s): %v", e.BlockID, e.Field, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}

func newBlockError(index int, block *models.ScheduleBlock, field string, err error) *BlockError {
	return &BlockError{Index: index, BlockID: block.ID, Field: field, Err: err}
}
