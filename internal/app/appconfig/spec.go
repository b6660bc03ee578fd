package appconfig

import (
	"time"

	"github.com/teamselevated/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address the backend serves requests on.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9280"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout
	// for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// TrustedProxies is a list of proxies trusted to report a real IP via the
	// X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program spins up
	// debugging utilities and logs at trace level.
	DevMode bool `split_words:"true"`

	// HTTPServerShutdownTimeout bounds graceful shutdown of the fiber app.
	HTTPServerShutdownTimeout time.Duration `split_words:"true" default:"60s"`

	// infrastructure components connection instructions

	// PostgresDSN is the data source name for the PostgreSQL database. See
	// https://bun.uptrace.dev/postgres/#pgdriver for more details on how to construct
	// a PostgreSQL DSN.
	PostgresDSN string `required:"true" split_words:"true"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	BunDebugVerbose bool `split_words:"true"`

	// NatsURL is the URL of the NATS server committed-schedule events are
	// announced on. See https://pkg.go.dev/github.com/nats-io/nats.go#Connect.
	NatsURL string `required:"true" split_words:"true" default:"nats://127.0.0.1:4222"`

	// RedisURL is the URL of the Redis server backing caches and the per-key
	// publish locks. See https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL.
	RedisURL string `required:"true" split_words:"true" default:"redis://127.0.0.1:6379/1"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// schedule engine behavior

	// StrictBatchConflicts additionally checks generated candidates against
	// each other, not only against committed occurrences. Off by default:
	// the classic behavior never flags a pattern double-booking itself.
	StrictBatchConflicts bool `split_words:"true" default:"false"`

	// ReviewSessionTTL is how long an idle review or grid session survives.
	ReviewSessionTTL time.Duration `split_words:"true" default:"2h"`

	// WorkerEnabled enables the background calendar cache warmer.
	WorkerEnabled bool `split_words:"true" default:"false"`

	// WorkerInterval is the in-between interval of warmer batches.
	WorkerInterval time.Duration `split_words:"true" default:"15m"`
}

type Config struct {
	ConfigSpec

	AppContext appcontext.Ctx
}
