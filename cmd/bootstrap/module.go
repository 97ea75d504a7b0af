package bootstrap

import (
	"collective-lifecycle/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	CacheModule,
	components.PersistenceModule,
	MessagingModule,
	components.UseCaseModule,
	components.HandlerModule,
)
