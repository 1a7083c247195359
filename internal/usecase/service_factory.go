package usecase

import (
	"pagemapper/internal/usecase/adapters"
)

type serviceFactory struct {
	deps Params
}

func newServiceFactory(deps Params) *serviceFactory {
	return &serviceFactory{
		deps: deps,
	}
}

func (f *serviceFactory) CreateExtractorService() adapters.ExtractorService {
	return NewExtractService(ExtractServiceParams{
		Browser: f.deps.Browser,
		Config:  f.deps.Config,
		Logger:  f.deps.Logger,
	})
}
