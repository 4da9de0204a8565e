package mock

import (
	"context"

	"github.com/jmartel/bibliofind"
)

var _ bibliofind.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of bibliofind.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, question string) (*bibliofind.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, question string) (*bibliofind.SearchResult, error) {
	return s.SearchFn(ctx, question)
}
