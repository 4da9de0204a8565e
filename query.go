package bibliofind

import (
	"context"
	"time"
)

// QueryRecord is one logged question with the raw model response, kept
// for auditing what the assistant was asked and answered.
type QueryRecord struct {
	ID          string    `json:"id"`
	Question    string    `json:"question"`
	RawResponse string    `json:"rawResponse"`
	MatchCount  int       `json:"matchCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (q *QueryRecord) Validate() error {
	if q.Question == "" {
		return Errorf(EINVALID, "query question required")
	}
	return nil
}

// QueryLogService records answered questions.
type QueryLogService interface {
	// CreateQuery persists a new query record, assigning ID and CreatedAt.
	CreateQuery(ctx context.Context, q *QueryRecord) error

	// RecentQueries returns the most recent records, newest first.
	RecentQueries(ctx context.Context, limit int) ([]*QueryRecord, error)
}
