package types

// CalendarItem is the merged display shape of occurrences and events.
type CalendarItem struct {
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	TeamName  string `json:"teamName,omitempty"`
}

const (
	CalendarItemOccurrence = "occurrence"
	CalendarItemEvent      = "event"
)

// CalendarDay is one per-day bucket. Items beyond the display cap are
// dropped and counted in Overflow.
type CalendarDay struct {
	Date     string         `json:"date"`
	Items    []CalendarItem `json:"items"`
	Overflow int            `json:"overflow"`
}

type CalendarRequest struct {
	StartDate string `query:"startDate" validate:"required,dateonly"`
	EndDate   string `query:"endDate" validate:"required,dateonly"`
	TeamID    int    `query:"teamId"`
}
