package components

import (
	"collective-lifecycle/internal/handler"
	"collective-lifecycle/internal/handler/api"
	"collective-lifecycle/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOfferHandler,
		api.NewTemplateHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		middleware.NewProviderAuthMiddleware,
		newHandlers,
		newMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth     *api.AuthHandler
	Offer    *api.OfferHandler
	Template *api.TemplateHandler
	Booking  *api.BookingHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:     p.Auth,
		Offer:    p.Offer,
		Template: p.Template,
		Booking:  p.Booking,
	}
}

func newMiddlewares(logger *middleware.Logger, auth *middleware.AuthMiddleware, providerAuth *middleware.ProviderAuthMiddleware) handler.Middlewares {
	return handler.Middlewares{
		Logger:       logger,
		Auth:         auth,
		ProviderAuth: providerAuth,
	}
}
