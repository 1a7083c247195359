package bootstrap

import (
	"time"

	"go.uber.org/fx"

	"pagemapper/internal/browser"
	"pagemapper/internal/config"
	"pagemapper/internal/console"
	"pagemapper/internal/ports"
	"pagemapper/internal/usecase"
)

// Args carries the validated CLI input into the fx graph.
type Args struct {
	URL string
}

func NewApp(args Args) *fx.App {
	return fx.New(
		fx.Supply(args),

		fx.Provide(
			config.GetConfig,
			newLogger,
			newTraceProvider,

			fx.Annotate(browser.NewManager, fx.As(new(ports.BrowserManager))),

			usecase.NewUsecase,

			console.NewInterface,
		),

		fx.Invoke(
			runExtraction,
		),

		fx.StartTimeout(10*time.Second),
	)
}
