package bootstrap

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"pagemapper/internal/console"
	"pagemapper/internal/usecase"
)

// runExtraction performs the single extraction run and shuts the app
// down with the appropriate exit code. The browser session is owned
// by the extract service, not by the app lifecycle: each call
// acquires and releases its own session.
//
// The tracer provider is a dependency here for its side effect: fx
// constructors only run when something in an invoke needs them, and
// spans record against the global provider newTraceProvider registers.
func runExtraction(lc fx.Lifecycle, shutdowner fx.Shutdowner, args Args, _ *sdktrace.TracerProvider, uc *usecase.Service, out *console.Interface, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				exitCode := 0

				res, err := uc.Extractor.Extract(context.Background(), args.URL)
				if err != nil {
					logger.Error("Extraction failed", zap.Error(err))
					out.PrintError(err)
					exitCode = 1
				} else if printErr := out.PrintExtraction(res); printErr != nil {
					logger.Error("Failed to print extraction", zap.Error(printErr))
					exitCode = 1
				}

				if err := shutdowner.Shutdown(fx.ExitCode(exitCode)); err != nil {
					logger.Error("Shutdown failed", zap.Error(err))
				}
			}()

			return nil
		},
	})
}
