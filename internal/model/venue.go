package model

import (
	"github.com/uptrace/bun"
)

// Venue is owned by the club-administration collaborator; the scheduling
// core references venues but never mutates them.
type Venue struct {
	bun.BaseModel `bun:"venues,alias:vn"`

	VenueID int    `bun:",pk,autoincrement" json:"id"`
	Name    string `json:"name"`
}
