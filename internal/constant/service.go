package constant

import "time"

const (
	RequestIDHeader = "X-Teamselevated-Request-ID"

	ContextKeyRequestID = "requestid"

	// ReviewSessionTTL is how long an untouched review or grid selection
	// session stays alive before it is evicted. Abandoned sessions never
	// touch committed state, so eviction needs no cleanup.
	ReviewSessionTTL = 2 * time.Hour

	// ScheduleCommittedSubject is the NATS subject committed batches are
	// announced on for downstream consumers (e.g. the notification sender).
	ScheduleCommittedSubject = "SCHEDULE.committed"

	ScheduleLockPrefix = "teamselevated:schedule:lock:"

	// ScheduleLockExpiry bounds how long a publish may hold the per-key
	// commit lock before redsync lets it lapse.
	ScheduleLockExpiry = 15 * time.Second
)
