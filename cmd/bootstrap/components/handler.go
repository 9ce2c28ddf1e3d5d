package components

import (
	"courtbook/internal/handler"
	"courtbook/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewPaymentHandler,
		api.NewInvitationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
