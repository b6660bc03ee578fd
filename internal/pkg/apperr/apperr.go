package apperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"

	CodeInvalidPattern          = "INVALID_PATTERN"
	CodeNoOccurrencesSelected   = "NO_OCCURRENCES_SELECTED"
	CodeNoSlotsSelected         = "NO_SLOTS_SELECTED"
	CodeConflictsUnconfirmed    = "CONFLICTS_PRESENT_UNCONFIRMED"
	CodeStoreWriteFailed        = "STORE_WRITE_FAILED"
	CodeIllegalStageTransition  = "ILLEGAL_STAGE_TRANSITION"
	CodeSessionNotFound         = "SESSION_NOT_FOUND"
	CodeSlotUnavailable         = "SLOT_UNAVAILABLE"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")

	// ErrInvalidPattern is returned when a schedule pattern is rejected
	// before any generation work: empty day set, inverted time window,
	// or inverted date range.
	ErrInvalidPattern = New(fiber.StatusBadRequest, CodeInvalidPattern, "invalid schedule pattern")

	// ErrNoOccurrencesSelected is returned when a publish is attempted with
	// every candidate skipped.
	ErrNoOccurrencesSelected = New(fiber.StatusBadRequest, CodeNoOccurrencesSelected, "no occurrences selected for publishing")

	// ErrNoSlotsSelected is returned when a grid publish is attempted with
	// an empty selection set.
	ErrNoSlotsSelected = New(fiber.StatusBadRequest, CodeNoSlotsSelected, "no slots selected for booking")

	// ErrConflictsUnconfirmed is returned when the accepted set carries
	// flagged conflicts and the publish lacks an explicit confirmation.
	// Recoverable: re-invoke publish with confirmation set.
	ErrConflictsUnconfirmed = New(fiber.StatusConflict, CodeConflictsUnconfirmed, "selected occurrences have unresolved conflicts; publishing requires explicit confirmation")

	// ErrStoreWriteFailed is returned when the store append failed. Extras
	// carry the commit report so callers can reconcile partial success.
	ErrStoreWriteFailed = New(fiber.StatusBadGateway, CodeStoreWriteFailed, "failed to write occurrences to the store")

	// ErrIllegalStageTransition is returned when a review session operation
	// is attempted from a stage it is not legal in.
	ErrIllegalStageTransition = New(fiber.StatusConflict, CodeIllegalStageTransition, "operation is not legal in the session's current stage")

	// ErrSessionNotFound is returned for expired or unknown session ids.
	ErrSessionNotFound = New(fiber.StatusNotFound, CodeSessionNotFound, "session not found or expired")

	// ErrSlotUnavailable is returned when toggling a booked grid cell.
	ErrSlotUnavailable = New(fiber.StatusConflict, CodeSlotUnavailable, "slot is already booked and cannot be selected")
)

type Extras map[string]interface{}

type Error struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_PATTERN"`
	Message    string `example:"invalid schedule pattern"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// Msg derives a copy of the error with a formatted message. The receiver
// is left untouched so the package-level sentinels stay immutable.
func (e Error) Msg(format string, parts ...interface{}) *Error {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e Error) WithExtras(extras Extras) *Error {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *Error {
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
