package models

import "time"

// TimeAxis is the shared vertical range every block of a week is laid out against.
type TimeAxis struct {
	StartMinute int      `json:"startMinute"` // minutes from midnight
	EndMinute   int      `json:"endMinute"`   // minutes from midnight, includes the trailing buffer
	SlotLabels  []string `json:"slotLabels"`  // e.g. "9:00 AM"
}

// Presentation is how a block's status should be drawn.
type Presentation struct {
	Emphasized bool   `json:"emphasized"`
	Tone       string `json:"tone"` // "primary", "warning" or "error"
}

// PositionedBlock is a block placed on the axis as percentages of its height.
type PositionedBlock struct {
	Block         *ScheduleBlock `json:"block"`
	StartMinute   int            `json:"startMinute"`
	EndMinute     int            `json:"endMinute"`
	TopPercent    float64        `json:"topPercent"`
	HeightPercent float64        `json:"heightPercent"`
	Presentation  Presentation   `json:"presentation"`
	Overlaps      []string       `json:"overlaps,omitempty"` // ids of same-day blocks drawn over this one
}

// DayColumn is one weekday of the grid. Columns are never omitted, even when empty.
type DayColumn struct {
	Day    string            `json:"day"`
	Blocks []PositionedBlock `json:"blocks"`
}

// LayoutWarning describes a block that was left out of the grid.
type LayoutWarning struct {
	BlockID string `json:"blockId"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// WeekLayout is the renderable week for one owner.
type WeekLayout struct {
	OwnerID     string          `json:"ownerId"`
	Scheduled   bool            `json:"scheduled"`
	Axis        *TimeAxis       `json:"axis,omitempty"`
	Days        []DayColumn     `json:"days"`
	Warnings    []LayoutWarning `json:"warnings,omitempty"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

// SelectionState is the detail-view state of a week grid. A closed state carries no block id.
type SelectionState struct {
	Open    bool   `json:"open"`
	BlockID string `json:"blockId,omitempty"`
}
