// Package storage declares the persistence API of the label checker. The
// postgres subpackage implements it; services depend only on these interfaces
// and run multi-row changes through WithTx.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"errors"
)

var (
	// ErrAlreadyInTx is returned by Begin on a transactional handle.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate wraps unique constraint violations such as a taken email.
	ErrDuplicate = errors.New("duplicate")
)

// AllStorage is everything a handle can do, inside or outside a transaction.
type AllStorage interface {
	AccountStorage
	UserStorage
	ScanStorage
	PaymentStorage
	InviteStorage
	RuleStorage
	JobStorage
}

// TxStorage is a handle bound to an open transaction. It must not be used
// after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle shared by the whole process.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction that commits when cb returns nil and
	// rolls back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
