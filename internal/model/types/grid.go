package types

import "fmt"

type CellStatus string

const (
	CellBooked    CellStatus = "booked"
	CellAvailable CellStatus = "available"
	CellSelected  CellStatus = "selected"
)

// AvailabilityCell is one (date, field, slot) tuple of the grid.
// Ephemeral: recomputed whenever the grid's venue or window changes.
type AvailabilityCell struct {
	Date    string     `json:"date"`
	FieldID int        `json:"fieldId"`
	Slot    string     `json:"slot"`
	Status  CellStatus `json:"status"`

	// BookedBy carries the occupying team's name on booked cells.
	BookedBy string `json:"bookedBy,omitempty"`
}

// Key identifies the cell inside a selection set.
func (c *AvailabilityCell) Key() string {
	return CellKey(c.Date, c.FieldID, c.Slot)
}

func CellKey(date string, fieldID int, slot string) string {
	return fmt.Sprintf("%s|%d|%s", date, fieldID, slot)
}

// GridDay holds one cell per (field, slot) combination for a single date.
type GridDay struct {
	Date    string             `json:"date"`
	Weekday string             `json:"weekday"`
	Cells   []AvailabilityCell `json:"cells"`
}

type Grid struct {
	VenueID int       `json:"venueId"`
	Slots   []string  `json:"slots"`
	Days    []GridDay `json:"days"`
}

type GridRequest struct {
	VenueID   int    `json:"venueId" query:"venueId" validate:"required"`
	StartDate string `json:"startDate" query:"startDate" validate:"required,dateonly"`
	EndDate   string `json:"endDate" query:"endDate" validate:"required,dateonly"`
}

type GridSessionRequest struct {
	GridRequest
	TeamID   int    `json:"teamId" validate:"required"`
	TeamName string `json:"teamName" validate:"required"`
}

type CellToggleRequest struct {
	Date    string `json:"date" validate:"required,dateonly"`
	FieldID int    `json:"fieldId" validate:"required"`
	Slot    string `json:"slot" validate:"required,clocktime"`
}

// PatternSelectRequest bulk-selects every available cell matching a
// weekday ordinal (Sunday = 0), slot, and field across the whole window.
type PatternSelectRequest struct {
	Weekday int    `json:"weekday" validate:"min=0,max=6"`
	Slot    string `json:"slot" validate:"required,clocktime"`
	FieldID int    `json:"fieldId" validate:"required"`
}
