package queries

import (
	"context"
	"fmt"
	"time"

	"pickup/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReportFeedQueryHandler serves the dashboard polling feed.
// Each page holds at most FeedPageSize reports ordered by feed sequence, so
// a poller that keeps the highest Seq it has seen never misses or repeats
// an entry.
type GetReportFeedQueryHandler struct {
	db *gorm.DB
}

// NewGetReportFeedQueryHandler creates a handler for feed queries.
func NewGetReportFeedQueryHandler(db *gorm.DB) GetReportFeedQueryHandler {
	return GetReportFeedQueryHandler{db: db}
}

// Handle executes the feed query.
func (h GetReportFeedQueryHandler) Handle(
	ctx context.Context,
	query GetReportFeedQuery,
) ([]GetReportFeedQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			feed_seq,
			id,
			tracking_code,
			customer_name,
			status,
			created_at
		FROM customer_reports
		WHERE feed_seq > ?
		ORDER BY feed_seq
		LIMIT ?
	`, query.AfterSeq(), FeedPageSize).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]GetReportFeedQueryResponse, 0, FeedPageSize)
	for rows.Next() {
		var entry GetReportFeedQueryResponse
		var id uuid.UUID
		var createdAt time.Time

		err = rows.Scan(
			&entry.Seq,
			&id,
			&entry.TrackingCode,
			&entry.CustomerName,
			&entry.Status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		reportID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		entry.ID = reportID
		entry.CreatedAt = createdAt.UTC()
		entry.Message = feedMessage(entry)
		reports = append(reports, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

func feedMessage(entry GetReportFeedQueryResponse) string {
	return fmt.Sprintf(
		"%s reported a problem with parcel %s (%s)",
		entry.CustomerName, entry.TrackingCode, entry.Status,
	)
}
