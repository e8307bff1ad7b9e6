package schedule

import (
	"errors"
	"testing"

	"skillhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlock(id, start, end string, days ...string) models.ScheduleBlock {
	return models.ScheduleBlock{
		ID:            id,
		Title:         "Workshop " + id,
		StartTime:     start,
		EndTime:       end,
		Status:        models.StatusActive,
		DaysOfWeek:    days,
		WorkshopTitle: "Pottery",
		OwnerID:       "user-1",
	}
}

func TestBuildAxisEmpty(t *testing.T) {
	axis, failures, err := BuildAxis(nil)
	assert.Nil(t, axis)
	assert.Empty(t, failures)
	assert.ErrorIs(t, err, ErrNoSchedule)
}

func TestBuildAxisMorningAndEvening(t *testing.T) {
	blocks := []models.ScheduleBlock{
		newBlock("a", "7:00 AM", "8:00 AM", "Monday"),
		newBlock("b", "6:00 PM", "7:00 PM", "Monday"),
	}

	axis, failures, err := BuildAxis(blocks)
	require.NoError(t, err)
	assert.Empty(t, failures)
	assert.Equal(t, 420, axis.StartMinute)
	assert.Equal(t, 1200, axis.EndMinute)
	require.Len(t, axis.SlotLabels, 14)
	assert.Equal(t, "7:00 AM", axis.SlotLabels[0])
	assert.Equal(t, "8:00 PM", axis.SlotLabels[13])
}

func TestBuildAxisBounds(t *testing.T) {
	blocks := []models.ScheduleBlock{
		newBlock("a", "9:30 AM", "10:15 AM", "Tuesday"),
		newBlock("b", "8:45 AM", "9:00 AM", "Friday"),
		newBlock("c", "1:00 PM", "4:20 PM", "Sunday"),
	}

	axis, _, err := BuildAxis(blocks)
	require.NoError(t, err)
	for _, b := range blocks {
		start, _ := ParseClock(b.StartTime)
		end, _ := ParseClock(b.EndTime)
		assert.LessOrEqual(t, axis.StartMinute, start)
		assert.GreaterOrEqual(t, axis.EndMinute, end+AxisBuffer)
	}
	assert.Less(t, axis.StartMinute, axis.EndMinute)
}

func TestBuildAxisPartialFinalStep(t *testing.T) {
	blocks := []models.ScheduleBlock{newBlock("a", "9:00 AM", "10:30 AM", "Monday")}

	axis, _, err := BuildAxis(blocks)
	require.NoError(t, err)
	assert.Equal(t, 540, axis.StartMinute)
	assert.Equal(t, 690, axis.EndMinute)
	assert.Equal(t, []string{"9:00 AM", "10:00 AM", "11:00 AM", "11:30 AM"}, axis.SlotLabels)
}

func TestBuildAxisLateBlockIsNotClamped(t *testing.T) {
	blocks := []models.ScheduleBlock{newBlock("a", "10:00 PM", "11:30 PM", "Saturday")}

	axis, _, err := BuildAxis(blocks)
	require.NoError(t, err)
	assert.Equal(t, 1470, axis.EndMinute)
	assert.Equal(t, "12:30 AM", axis.SlotLabels[len(axis.SlotLabels)-1])
}

func TestBuildAxisSkipsMalformedBlocks(t *testing.T) {
	blocks := []models.ScheduleBlock{
		newBlock("bad", "25:00 XM", "8:00 AM", "Monday"),
		newBlock("good", "10:00 AM", "11:00 AM", "Monday"),
	}

	axis, failures, err := BuildAxis(blocks)
	require.NoError(t, err)
	assert.Equal(t, 600, axis.StartMinute)
	assert.Equal(t, 720, axis.EndMinute)

	require.Len(t, failures, 1)
	assert.Equal(t, "bad", failures[0].BlockID)
	assert.Equal(t, "startTime", failures[0].Field)
	var malformed *MalformedTimeError
	assert.True(t, errors.As(failures[0], &malformed))
}

func TestBuildAxisAllMalformed(t *testing.T) {
	blocks := []models.ScheduleBlock{
		newBlock("a", "7:00 AM", "later", "Monday"),
		newBlock("b", "9:00 AM", "8:00 AM", "Monday"),
	}

	axis, failures, err := BuildAxis(blocks)
	assert.Nil(t, axis)
	assert.ErrorIs(t, err, ErrNoSchedule)
	require.Len(t, failures, 2)

	var badRange *InvalidRangeError
	assert.ErrorAs(t, failures[1], &badRange)
}
