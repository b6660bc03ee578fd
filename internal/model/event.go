package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Event is an independently stored club event (game, meeting, tournament)
// merged with occurrences by the calendar aggregator. The core only reads
// events; they are owned elsewhere.
type Event struct {
	bun.BaseModel `bun:"events,alias:ev"`

	EventID   int         `bun:",pk,autoincrement" json:"id"`
	Title     string      `json:"title"`
	Date      string      `json:"date"`
	StartTime string      `json:"startTime"`
	EndTime   string      `json:"endTime"`
	TeamID    null.Int    `json:"teamId,omitempty" swaggertype:"integer"`
	Location  null.String `json:"location,omitempty" swaggertype:"string"`
	CreatedAt time.Time   `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
