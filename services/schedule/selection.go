package schedule

import "skillhub/models"

// Closed is the state with no detail view open.
func Closed() models.SelectionState {
	return models.SelectionState{}
}

// Select opens the detail view on blockID, replacing any previous selection.
func Select(_ models.SelectionState, blockID string) models.SelectionState {
	return models.SelectionState{Open: true, BlockID: blockID}
}

// Dismiss closes the detail view from any state.
func Dismiss(_ models.SelectionState) models.SelectionState {
	return Closed()
}

// Selector binds a selection to the blocks currently drawn on a week grid, so
// that clicks can only open blocks the viewer can actually see.
type Selector struct {
	state     models.SelectionState
	displayed map[string]struct{}
}

// NewSelector starts from a previously stored state. A stored selection whose
// block is no longer on the grid comes back closed.
func NewSelector(layout *models.WeekLayout, state models.SelectionState) *Selector {
	s := &Selector{displayed: make(map[string]struct{})}
	if layout != nil {
		for _, day := range layout.Days {
			for _, pb := range day.Blocks {
				s.displayed[pb.Block.ID] = struct{}{}
			}
		}
	}
	if state.Open && s.Displays(state.BlockID) {
		s.state = state
	}
	return s
}

// Displays reports whether blockID is on the grid.
func (s *Selector) Displays(blockID string) bool {
	_, ok := s.displayed[blockID]
	return ok
}

// Select opens blockID. Unknown ids leave the state untouched.
func (s *Selector) Select(blockID string) error {
	if !s.Displays(blockID) {
		return &UnknownBlockSelectedError{BlockID: blockID}
	}
	s.state = Select(s.state, blockID)
	return nil
}

// Dismiss closes the detail view.
func (s *Selector) Dismiss() {
	s.state = Dismiss(s.state)
}

// State returns the current selection.
func (s *Selector) State() models.SelectionState {
	return s.state
}
