package usecase

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"pagemapper/internal/config"
	"pagemapper/internal/ports"
	"pagemapper/internal/usecase/adapters"
)

type Service struct {
	Extractor adapters.ExtractorService
}

type Params struct {
	fx.In

	Logger  *zap.Logger
	Config  *config.Config
	Browser ports.BrowserManager
}

func NewUsecase(params Params) *Service {
	factory := newServiceFactory(params)

	return &Service{
		Extractor: factory.CreateExtractorService(),
	}
}
