// Package storage declares the persistence the scheduling service needs:
// patients and their roles, schedules, scan types, reminders and reminder
// jobs. Lookups of missing rows return a nil value and a nil error.
//
//go:generate mockgen -package mockstorage -destination=mock/mockstorage.go sonoplan/pkg/storage Storage,AllStorage
package storage

import "context"

// AllStorage is everything that can run inside or outside a transaction.
type AllStorage interface {
	PatientStorage
	ScheduleStorage
	ScanTypeStorage
	ReminderStorage
	JobStorage
}

// TxStorage is bound to one transaction and must not be used after Commit or
// Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle, owning the connection pool.
type Storage interface {
	AllStorage

	Close() error

	// Begin starts a transaction. Transactions do not nest.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction that commits when cb returns nil and
	// rolls back otherwise. Reminder rows and their jobs are always written
	// through WithTx so a job never refers to a reminder that was not stored.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
