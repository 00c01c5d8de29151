package bootstrap

import (
	"zavvi-web/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	BackendModule,
	components.UseCaseModule,
	components.HandlerModule,
)
