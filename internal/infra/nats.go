package infra

import (
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/teamselevated/backend/internal/app/appconfig"
)

func NATS(conf *appconfig.Config) (*nats.Conn, error) {
	errorHandler := func(conn *nats.Conn, sub *nats.Subscription, err error) {
		log.Error().
			Str("evt.name", "nats.error").
			Err(err).
			Str("conn.url", conn.ConnectedUrlRedacted()).
			Msg("nats error")
	}

	nc, err := nats.Connect(conf.NatsURL, nats.PingInterval(time.Second*20), nats.ErrorHandler(errorHandler))
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to connect to NATS")
		return nil, err
	}

	return nc, nil
}
