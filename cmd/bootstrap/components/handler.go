package components

import (
	"entry-registry/internal/handler"
	"entry-registry/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTitleHandler,
		api.NewEntryHandler,
		api.NewSummaryHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
