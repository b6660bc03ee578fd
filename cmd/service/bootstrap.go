package service

import (
	"context"

	"go.uber.org/fx"

	"github.com/teamselevated/backend/internal/app/appcontext"
	"github.com/teamselevated/backend/internal/appentry"
)

func Bootstrap() {
	opts := appentry.ProvideOptions(appcontext.Declare(appcontext.EnvServer))
	opts = append(opts, fx.Invoke(run))

	app := fx.New(opts...)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	<-app.Done()

	if err := app.Stop(ctx); err != nil {
		panic(err)
	}
}
