package bootstrap

import (
	"context"

	"courtbook/internal/sweeper"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		sweeper.New,
	),
	fx.Invoke(startSweeper),
)

func startSweeper(lc fx.Lifecycle, s *sweeper.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start(context.Background())
		},
		OnStop: func(_ context.Context) error {
			return s.Stop()
		},
	})
}
