package components

import (
	"rentloop/internal/handler"
	"rentloop/internal/handler/api"
	"rentloop/internal/handler/middleware"
	"rentloop/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewItemHandler,
		api.NewRentalHandler,
		func(svc *jwt.Service) *middleware.AuthMiddleware {
			return middleware.NewAuthMiddleware(svc)
		},
	),
	fx.Invoke(handler.NewRouter),
)
