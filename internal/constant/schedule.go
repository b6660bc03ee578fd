package constant

import "time"

const (
	// ConflictCategoryField is the category label attached to a conflict
	// against an already-committed occurrence on the same field.
	ConflictCategoryField = "Field conflict"

	// ConflictCategoryBatch is the category label attached to a conflict
	// detected between two candidates of the same generation batch. Only
	// produced when strict batch checking is enabled.
	ConflictCategoryBatch = "Batch conflict"

	// GridSlotLength is the fixed duration of one availability grid slot,
	// and of occurrences published from grid selections.
	GridSlotLength = time.Hour

	// CalendarDayCap caps how many items a single calendar day bucket
	// carries before the remainder is folded into an overflow count.
	CalendarDayCap = 3
)

// GridSlots is the fixed enumeration of representative slot start times
// shown on the availability grid, one cell per (field, slot) per day.
var GridSlots = []string{
	"15:00",
	"16:00",
	"17:00",
	"18:00",
	"19:00",
}
