package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmartel/bibliofind"
)

// Compile-time interface verification.
var _ bibliofind.QueryLogService = (*QueryLogService)(nil)

// QueryLogService implements bibliofind.QueryLogService using SQLite.
type QueryLogService struct {
	db *DB
}

// NewQueryLogService creates a new QueryLogService.
func NewQueryLogService(db *DB) *QueryLogService {
	return &QueryLogService{db: db}
}

// timeLayout is RFC3339 with fixed-width nanoseconds so that stored
// timestamps sort lexicographically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// CreateQuery persists a new query record, assigning ID and CreatedAt.
func (s *QueryLogService) CreateQuery(ctx context.Context, q *bibliofind.QueryRecord) error {
	if err := q.Validate(); err != nil {
		return err
	}

	q.ID = uuid.New().String()
	q.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO queries (id, question, raw_response, match_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, q.ID, q.Question, q.RawResponse, q.MatchCount, q.CreatedAt.Format(timeLayout))

	return err
}

// RecentQueries returns the most recent records, newest first.
func (s *QueryLogService) RecentQueries(ctx context.Context, limit int) ([]*bibliofind.QueryRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question, raw_response, match_count, created_at
		FROM queries
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*bibliofind.QueryRecord
	for rows.Next() {
		var rec bibliofind.QueryRecord
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.Question, &rec.RawResponse, &rec.MatchCount, &createdAt); err != nil {
			return nil, err
		}
		rec.CreatedAt, err = time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
