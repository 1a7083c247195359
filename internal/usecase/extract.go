package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"pagemapper/internal/config"
	"pagemapper/internal/entity"
	"pagemapper/internal/extractor"
	"pagemapper/internal/ports"
	"pagemapper/pkg/logg"
	"pagemapper/pkg/tracing"
)

const (
	extractServiceName = "ExtractService"
	extractTracer      = "usecase.extract"

	screenshotTimeLayout = "20060102-150405"
)

// ExtractService drives one full page inspection: it owns a browser
// session end-to-end, runs the traversal, feeds the extractor core
// and writes the screenshot side effect.
type ExtractService struct {
	config  *config.Config
	logger  *zap.Logger
	browser ports.BrowserManager
	tracer  trace.Tracer
}

type ExtractServiceParams struct {
	fx.In

	Config  *config.Config
	Logger  *zap.Logger
	Browser ports.BrowserManager
}

func NewExtractService(params ExtractServiceParams) *ExtractService {
	return &ExtractService{
		config:  params.Config,
		logger:  params.Logger.With(zap.String(logg.Layer, extractServiceName)),
		browser: params.Browser,
		tracer:  otel.Tracer(extractTracer),
	}
}

// Extract opens a browser session, navigates to url, classifies every
// element of the loaded document and returns the grouped selectors
// plus the page-object map.
//
// Failure policy: only a failed session acquisition is a hard error.
// Once the session is open, any navigation or traversal failure is
// absorbed into an empty but well-formed result, and the session is
// still released on every exit path. There are no retries.
func (s *ExtractService) Extract(ctx context.Context, url string) (res *entity.Extraction, err error) {
	const op = "Extract"

	runID := uuid.New()
	logger := s.logger.With(
		zap.String(logg.Operation, op),
		zap.String(logg.URL, url),
		zap.String(logg.RunID, runID.String()),
	)

	ctx, step := tracing.StartSpan(ctx, s.tracer, logger, op,
		attribute.String("url", url),
		attribute.String("run_id", runID.String()))
	defer func() {
		step.End(err)
	}()

	logger.Info("Starting extraction")

	if err = s.browser.Launch(ctx); err != nil {
		logger.Error("Browser unavailable", zap.Error(err))

		return nil, err
	}

	defer func() {
		if closeErr := s.browser.Close(ctx); closeErr != nil {
			logger.Warn("Failed to close browser", zap.Error(closeErr))
		}
	}()

	step.AddEvent("session acquired")

	if navErr := s.browser.Navigate(ctx, url); navErr != nil {
		logger.Warn("Navigation failed, returning empty result", zap.Error(navErr))

		return emptyResult(url, runID), nil
	}

	elements, travErr := s.browser.Elements(ctx)
	if travErr != nil {
		logger.Warn("Traversal failed, returning empty result", zap.Error(travErr))

		return emptyResult(url, runID), nil
	}

	step.AddEvent("traversal completed")

	res = extractor.Aggregate(url, elements)
	res.RunID = runID

	logger.Info("Extraction completed",
		zap.Int("elements", len(elements)),
		zap.Int("selectors", len(res.All)),
		zap.Int("page_object_keys", res.PageObject.Len()))

	s.captureScreenshot(ctx, logger, res)

	return res, nil
}

// captureScreenshot writes the full-page screenshot side effect. The
// file name carries a timestamp so repeated runs never collide. A
// screenshot failure does not void an otherwise complete extraction.
func (s *ExtractService) captureScreenshot(ctx context.Context, logger *zap.Logger, res *entity.Extraction) {
	name := fmt.Sprintf("screenshot-%s.png", time.Now().Format(screenshotTimeLayout))
	path := filepath.Join(s.config.OutputConfig.ScreenshotDir, name)

	if err := s.browser.Screenshot(ctx, path); err != nil {
		logger.Warn("Screenshot failed", zap.Error(err))

		return
	}

	res.Screenshot = path
	logger.Info("Screenshot saved", zap.String(logg.Path, path))
}

func emptyResult(url string, runID uuid.UUID) *entity.Extraction {
	res := entity.NewEmptyExtraction(url)
	res.RunID = runID

	return res
}
