package schedule

import (
	"testing"

	"skillhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionTransitions(t *testing.T) {
	state := Closed()
	assert.False(t, state.Open)

	state = Select(state, "a")
	assert.Equal(t, models.SelectionState{Open: true, BlockID: "a"}, state)

	state = Select(state, "b")
	assert.Equal(t, models.SelectionState{Open: true, BlockID: "b"}, state)

	assert.Equal(t, Closed(), Dismiss(state))
	assert.Equal(t, Closed(), Dismiss(Closed()))
}

func testLayout(t *testing.T) *models.WeekLayout {
	t.Helper()
	layout, err := BuildWeek("user-1", []models.ScheduleBlock{
		newBlock("a", "9:00 AM", "10:00 AM", "Monday"),
		newBlock("b", "11:00 AM", "12:00 PM", "Tuesday", "Thursday"),
	})
	require.NoError(t, err)
	return layout
}

func TestSelector(t *testing.T) {
	selector := NewSelector(testLayout(t), Closed())
	assert.Equal(t, Closed(), selector.State())

	require.NoError(t, selector.Select("a"))
	require.NoError(t, selector.Select("b"))
	assert.Equal(t, models.SelectionState{Open: true, BlockID: "b"}, selector.State())

	err := selector.Select("missing")
	var unknown *UnknownBlockSelectedError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "missing", unknown.BlockID)
	assert.Equal(t, "b", selector.State().BlockID, "failed select keeps the previous state")

	selector.Dismiss()
	assert.Equal(t, Closed(), selector.State())
}

func TestSelectorDropsStaleSelection(t *testing.T) {
	stale := models.SelectionState{Open: true, BlockID: "gone"}
	assert.Equal(t, Closed(), NewSelector(testLayout(t), stale).State())

	kept := models.SelectionState{Open: true, BlockID: "a"}
	assert.Equal(t, kept, NewSelector(testLayout(t), kept).State())
}

func TestSelectorWithoutSchedule(t *testing.T) {
	layout, err := BuildWeek("user-1", nil)
	require.ErrorIs(t, err, ErrNoSchedule)

	selector := NewSelector(layout, Closed())
	var unknown *UnknownBlockSelectedError
	assert.ErrorAs(t, selector.Select("a"), &unknown)
}
