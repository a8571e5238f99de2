package components

import (
	"rentloop/internal/infra/gateway"
	"rentloop/internal/infra/uow"
	"rentloop/internal/pkg/config"
	"rentloop/internal/usecase/commands"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
		func(cfg config.Config) commands.PaymentGateway {
			return gateway.NewChargeGateway(cfg.Payment)
		},
		gateway.NewLogNotifier,
	),
)
