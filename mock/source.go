// Package mock provides hand-written mocks for bibliofind interfaces.
package mock

import (
	"context"

	"github.com/jmartel/bibliofind"
)

var _ bibliofind.CatalogSource = (*CatalogSource)(nil)

// CatalogSource is a mock implementation of bibliofind.CatalogSource.
type CatalogSource struct {
	NameFn func() string
	LoadFn func(ctx context.Context) ([]bibliofind.Article, error)
}

func (s *CatalogSource) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}

func (s *CatalogSource) Load(ctx context.Context) ([]bibliofind.Article, error) {
	return s.LoadFn(ctx)
}
