package types

import (
	"gopkg.in/guregu/null.v3"
)

// SchedulePattern is the operator's recurrence input. It exists only for
// the duration of one generation request and is never persisted.
type SchedulePattern struct {
	TeamID   int    `json:"teamId" validate:"required"`
	TeamName string `json:"teamName" validate:"required"`

	// Days is a non-empty set of weekday labels ("Monday" … "Sunday").
	Days []string `json:"days" validate:"required,min=1,unique,dive,weekday"`

	// StartTime and EndTime are same-day clock times; EndTime must be
	// strictly after StartTime.
	StartTime string `json:"startTime" validate:"required,clocktime"`
	EndTime   string `json:"endTime" validate:"required,clocktime"`

	// StartDate and EndDate bound the inclusive generation range.
	StartDate string `json:"startDate" validate:"required,dateonly"`
	EndDate   string `json:"endDate" validate:"required,dateonly"`

	VenueID int `json:"venueId" validate:"required"`
	FieldID int `json:"fieldId" validate:"required"`
}

// ConflictDetail describes the first committed occurrence a candidate
// collides with.
type ConflictDetail struct {
	TeamName  string `json:"teamName"`
	Category  string `json:"category"`
	TimeRange string `json:"timeRange"`
}

// Candidate is a generated, not-yet-committed occurrence under review.
// Mutable during review (notes, skip flag); discarded if never published.
type Candidate struct {
	// CandidateID identifies the candidate within its batch only; the
	// committed occurrence gets a fresh id at publish time.
	CandidateID string `json:"candidateId"`

	Date      string      `json:"date"`
	Weekday   string      `json:"weekday"`
	StartTime string      `json:"startTime"`
	EndTime   string      `json:"endTime"`
	VenueID   int         `json:"venueId"`
	FieldID   int         `json:"fieldId"`
	TeamID    int         `json:"teamId"`
	TeamName  string      `json:"teamName"`
	Notes     null.String `json:"notes,omitempty" swaggertype:"string"`

	HasConflict    bool            `json:"hasConflict"`
	ConflictDetail *ConflictDetail `json:"conflictDetail,omitempty"`
	Skip           bool            `json:"skip"`
}

// GenerateRequest is the stateless generation entry point's body.
type GenerateRequest struct {
	Pattern SchedulePattern `json:"pattern" validate:"required"`

	// Strict additionally checks candidates of this batch against each
	// other. Overrides the server-wide default when true.
	Strict bool `json:"strict"`
}

type GenerateResponse struct {
	Candidates    []*Candidate `json:"candidates"`
	ConflictCount int          `json:"conflictCount"`
}

// PublishRequest is the stateless publish entry point's body.
type PublishRequest struct {
	Candidates []*Candidate `json:"candidates" validate:"required,min=1"`

	// ConfirmConflicts is the explicit secondary confirmation required
	// when the accepted subset carries flagged conflicts. Publishing with
	// known conflicts is permitted but never silent.
	ConfirmConflicts bool `json:"confirmConflicts"`
}

// AnnotateRequest attaches or replaces a candidate's note.
type AnnotateRequest struct {
	Notes string `json:"notes" validate:"max=500"`
}

// SessionPublishRequest finalizes a review or grid session.
type SessionPublishRequest struct {
	ConfirmConflicts bool `json:"confirmConflicts"`
}

// CommitReport reconciles a publish batch. With the transactional Postgres
// gateway a failure means nothing was written; gateways without
// transactions report how far the batch got before the first error.
type CommitReport struct {
	Requested  int    `json:"requested"`
	Committed  int    `json:"committed"`
	Failed     int    `json:"failed"`
	FirstError string `json:"firstError,omitempty"`
}

// OccurrenceFilter scopes committed-set reads. Zero fields mean no
// constraint on that dimension.
type OccurrenceFilter struct {
	VenueID   int
	FieldID   int
	TeamID    int
	StartDate string
	EndDate   string
}
