package components

import (
	"context"

	"lanebook/internal/handler"
	"lanebook/internal/handler/api"
	"lanebook/internal/handler/middleware"
	"lanebook/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLaneHandler,
		api.NewSessionHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		handler.NewRouter,
		seedLanes,
	),
)

// seedLanes makes sure the configured lane catalog exists before the server
// accepts traffic.
func seedLanes(lc fx.Lifecycle, catalog commands.CatalogCommands) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return catalog.EnsureDefaultLanes(ctx)
		},
	})
}
