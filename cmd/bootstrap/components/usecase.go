package components

import (
	"entry-registry/internal/domain/summary"
	"entry-registry/internal/pkg/config"
	"entry-registry/internal/usecase/commands"
	"entry-registry/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) *summary.Resolver {
		return summary.NewResolver(cfg.Registry.MaxDepth)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewEntryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEntryQueries,
	),
)
