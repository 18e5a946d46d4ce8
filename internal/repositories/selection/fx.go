package selection

import (
	"go.uber.org/fx"
)

var MemoryModule = fx.Provide(
	fx.Annotate(
		NewMemoryRepository,
		fx.As(new(Repository)),
	),
)

var PgxModule = fx.Provide(
	fx.Annotate(
		NewPgxRepository,
		fx.As(new(Repository)),
	),
)
