package ports

import (
	"context"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/report"
)

// ReportRepository defines the persistence contract for customer reports.
type ReportRepository interface {
	// Add persists a new customer report.
	Add(ctx context.Context, aggregate *report.CustomerReport) error

	// Update persists changes to an existing report, typically linking.
	Update(ctx context.Context, aggregate *report.CustomerReport) error

	// Get retrieves a customer report by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*report.CustomerReport, error)
}
