package components

import (
	"zavvi-web/internal/handler"
	"zavvi-web/internal/handler/api"
	"zavvi-web/internal/handler/middleware"
	"zavvi-web/internal/usecase/claim"
	"zavvi-web/internal/usecase/gate"
	"zavvi-web/internal/usecase/listing"
	"zavvi-web/internal/usecase/locationstore"
	"zavvi-web/internal/usecase/session"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(func(g *gate.Gate) *gate.Gate { return g }, fx.As(new(api.GateService)), fx.As(new(middleware.GateReader))),
		fx.Annotate(func(s *locationstore.Store) *locationstore.Store { return s }, fx.As(new(api.LocationService))),
		fx.Annotate(
			func(s *session.Store) *session.Store { return s },
			fx.As(new(api.SessionService)),
			fx.As(new(middleware.SessionReader)),
		),
		fx.Annotate(func(s *listing.Service) *listing.Service { return s }, fx.As(new(api.CatalogService))),
		fx.Annotate(func(o *claim.Orchestrator) *claim.Orchestrator { return o }, fx.As(new(api.ClaimService))),
		api.NewGateHandler,
		api.NewLocationHandler,
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewClaimHandler,
		middleware.NewSessionMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	gateHandler *api.GateHandler,
	locationHandler *api.LocationHandler,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	claimHandler *api.ClaimHandler,
) handler.Handlers {
	return handler.Handlers{
		Gate:     gateHandler,
		Location: locationHandler,
		Auth:     authHandler,
		Catalog:  catalogHandler,
		Claim:    claimHandler,
	}
}
