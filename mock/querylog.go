package mock

import (
	"context"

	"github.com/jmartel/bibliofind"
)

var _ bibliofind.QueryLogService = (*QueryLogService)(nil)

// QueryLogService is a mock implementation of bibliofind.QueryLogService.
type QueryLogService struct {
	CreateQueryFn   func(ctx context.Context, q *bibliofind.QueryRecord) error
	RecentQueriesFn func(ctx context.Context, limit int) ([]*bibliofind.QueryRecord, error)
}

func (s *QueryLogService) CreateQuery(ctx context.Context, q *bibliofind.QueryRecord) error {
	return s.CreateQueryFn(ctx, q)
}

func (s *QueryLogService) RecentQueries(ctx context.Context, limit int) ([]*bibliofind.QueryRecord, error) {
	return s.RecentQueriesFn(ctx, limit)
}
