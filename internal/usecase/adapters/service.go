package adapters

import (
	"context"

	"pagemapper/internal/entity"
)

type ExtractorService interface {
	Extract(ctx context.Context, url string) (*entity.Extraction, error)
}
