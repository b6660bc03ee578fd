package model

import (
	"github.com/uptrace/bun"
)

// Field always belongs to exactly one venue. The form layer is responsible
// for only ever submitting (venue_id, field_id) pairs that satisfy this.
type Field struct {
	bun.BaseModel `bun:"fields,alias:fd"`

	FieldID int    `bun:",pk,autoincrement" json:"id"`
	Name    string `json:"name"`
	VenueID int    `json:"venueId"`
}
