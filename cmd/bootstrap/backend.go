package bootstrap

import (
	"zavvi-web/internal/infra/backend"
	"zavvi-web/internal/usecase/claim"
	"zavvi-web/internal/usecase/gate"
	"zavvi-web/internal/usecase/listing"
	"zavvi-web/internal/usecase/session"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		fx.Annotate(
			backend.NewClient,
			fx.As(fx.Self()),
			fx.As(new(session.AuthAPI)),
			fx.As(new(listing.API)),
			fx.As(new(gate.LocationSource)),
			fx.As(new(claim.API)),
		),
	),
)
