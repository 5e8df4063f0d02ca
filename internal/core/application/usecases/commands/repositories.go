// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pickup/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// OtpRepoFactory provides access to the OTP repository within a transaction.
	OtpRepoFactory interface {
		OtpRepository() ports.OtpRepository
	}

	// HistoryRepoFactory provides access to the history repository within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// ReportRepoFactory provides access to the report repository within a transaction.
	ReportRepoFactory interface {
		ReportRepository() ports.ReportRepository
	}

	// ReferenceRepoFactory provides access to the reference tables within a transaction.
	ReferenceRepoFactory interface {
		ReferenceRepository() ports.ReferenceRepository
	}

	// IntakeUoW manages transactions for parcel intake.
	// Covers the parcel itself, its first history record and the
	// reference checks against pickup locations and couriers.
	IntakeUoW interface {
		TxManager
		ParcelRepoFactory
		HistoryRepoFactory
		ReferenceRepoFactory
	}

	// IntakeUoWFactory creates new intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// OtpUoW manages transactions for OTP issuance and confirmation.
	OtpUoW interface {
		TxManager
		ParcelRepoFactory
		OtpRepoFactory
		HistoryRepoFactory
	}

	// OtpUoWFactory creates new OTP unit of work instances.
	OtpUoWFactory interface {
		Create() OtpUoW
	}

	// SweepUoW manages transactions for the storage expiration sweep.
	// The sweep opens one of these per parcel so a failure on one parcel
	// never rolls back the others.
	SweepUoW interface {
		TxManager
		ParcelRepoFactory
		HistoryRepoFactory
	}

	// SweepUoWFactory creates new sweep unit of work instances.
	SweepUoWFactory interface {
		Create() SweepUoW
	}

	// ReportUoW manages transactions for customer report linking.
	ReportUoW interface {
		TxManager
		ParcelRepoFactory
		ReportRepoFactory
		HistoryRepoFactory
	}

	// ReportUoWFactory creates new report unit of work instances.
	ReportUoWFactory interface {
		Create() ReportUoW
	}
)
