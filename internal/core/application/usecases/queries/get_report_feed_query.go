package queries

import (
	"errors"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

// FeedPageSize caps how many reports one feed page returns. Dashboards poll
// with the last seen cursor, so a small fixed page keeps responses bounded.
const FeedPageSize = 10

var ErrGetReportFeedQueryIsNotConstructed = errors.New(
	"GetReportFeedQuery must be created via NewGetReportFeedQuery constructor",
)

// GetReportFeedQuery retrieves customer reports submitted after a cursor.
// The cursor is the feed sequence number of the last report the caller has
// seen; zero means "from the beginning".
type GetReportFeedQuery struct {
	afterSeq int64

	guard guard.ConstructorGuard
}

// NewGetReportFeedQuery creates a feed query starting after the given cursor.
func NewGetReportFeedQuery(afterSeq int64) (GetReportFeedQuery, error) {
	if afterSeq < 0 {
		return GetReportFeedQuery{}, errs.NewValueIsInvalidError("after cursor")
	}

	return GetReportFeedQuery{
		afterSeq: afterSeq,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReportFeedQuery) Validate() error {
	return q.guard.Validate(ErrGetReportFeedQueryIsNotConstructed)
}

// AfterSeq returns the feed cursor.
func (q GetReportFeedQuery) AfterSeq() int64 {
	return q.afterSeq
}

// GetReportFeedQueryResponse is one feed entry. Seq is the cursor for the
// next poll; Message is a human-readable summary built from the report.
type GetReportFeedQueryResponse struct {
	Seq          int64
	ID           kernel.UUID
	TrackingCode string
	CustomerName string
	Status       string
	Message      string
	CreatedAt    time.Time
}
