package ports

import (
	"context"

	"pagemapper/internal/entity"
)

// BrowserManager is the external browser collaborator. The extractor
// only requires that Launch, Navigate, Elements, Screenshot and Close
// are invocable in that relative order against a fully loaded page.
type BrowserManager interface {
	Launch(ctx context.Context) error
	Close(ctx context.Context) error
	Navigate(ctx context.Context, url string) error
	Elements(ctx context.Context) ([]entity.Element, error)
	Screenshot(ctx context.Context, path string) error
	Evaluate(ctx context.Context, script string) (interface{}, error)
}
