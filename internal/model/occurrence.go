package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"github.com/teamselevated/backend/internal/pkg/datespan"
)

// Occurrence is one committed, dated booking of a field for a time window
// by a team. Committed rows are immutable and form the comparison set for
// all future conflict checks.
type Occurrence struct {
	bun.BaseModel `bun:"occurrences,alias:oc"`

	OccurrenceID string      `bun:",pk" json:"id"`
	Date         string      `json:"date"`
	Weekday      string      `json:"weekday"`
	StartTime    string      `json:"startTime"`
	EndTime      string      `json:"endTime"`
	VenueID      int         `json:"venueId"`
	FieldID      int         `json:"fieldId"`
	TeamID       int         `json:"teamId"`
	TeamName     string      `json:"teamName"`
	Notes        null.String `json:"notes,omitempty" swaggertype:"string"`
	CreatedAt    time.Time   `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}

// StartsAt returns the combined date-time form of the occurrence's start.
func (o *Occurrence) StartsAt() time.Time {
	return o.at(o.StartTime)
}

// EndsAt returns the combined date-time form of the occurrence's end.
func (o *Occurrence) EndsAt() time.Time {
	return o.at(o.EndTime)
}

func (o *Occurrence) at(clock string) time.Time {
	date, err := datespan.ParseDate(o.Date)
	if err != nil {
		return time.Time{}
	}
	minutes, err := datespan.ParseClock(clock)
	if err != nil {
		return time.Time{}
	}
	return datespan.At(date, minutes)
}

// TimeRangeString renders the occurrence's window the way conflict details
// and calendar views display it.
func (o *Occurrence) TimeRangeString() string {
	return o.StartTime + "–" + o.EndTime
}
