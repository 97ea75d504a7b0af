package components

import (
	"collective-lifecycle/internal/infra/readstore"
	"collective-lifecycle/internal/infra/uow"
	"collective-lifecycle/internal/usecase"
	"collective-lifecycle/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	fx.Provide(
		// Repositories are only reachable through the transaction handed out by the UoW.
		uow.NewPostgresUoW,
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
		fx.Annotate(
			readstore.NewTemplateReadStore,
			fx.As(new(queries.TemplateReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewProviderReadStore,
			fx.As(new(usecase.ProviderReadStore)),
		),
	),
)
