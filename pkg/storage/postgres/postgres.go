// Package postgres implements storage.Storage on PostgreSQL. Queries are built
// with goqu and run through database/sql on top of a pgx pool, which River
// shares for its job tables.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/storage"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

// applicationName shows up in pg_stat_activity.
const applicationName = "labelchecker"

// txAttempts bounds how often WithTx runs a callback that keeps losing
// deadlock races.
const txAttempts = 3

// Options defines the configuration parameters for PostgreSQL database connection.
type Options struct {
	Username string
	Password string
	Host     string
	// SslMode is passed through as sslmode, e.g. disable or require.
	SslMode  string
	Port     int
	Database string
	// ConnMaxLifetime and ConnMaxIdleTime recycle pooled connections. Zero keeps the pgx defaults.
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// MaxOpenConnections caps the pool. MaxIdleConnections is kept warm as the pool minimum.
	MaxOpenConnections int
	MaxIdleConnections int
}

// dsn renders the options as a postgres:// URL so credentials with reserved
// characters survive.
func (o Options) dsn() string {
	q := url.Values{}
	q.Set("application_name", applicationName)
	if o.SslMode != "" {
		q.Set("sslmode", o.SslMode)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(o.Username, o.Password),
		Host:     net.JoinHostPort(o.Host, strconv.Itoa(o.Port)),
		Path:     "/" + o.Database,
		RawQuery: q.Encode(),
	}

	return u.String()
}

// DB is the part of database/sql shared by *sql.DB and *sql.Tx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is the part of goqu shared by *goqu.Database and *goqu.TxDatabase.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
	Delete(table interface{}) *goqu.DeleteDataset
}

// PgSQL is a storage handle. The root handle returned by New holds a *sql.DB;
// handles returned by Begin hold the *sql.Tx and share nothing else.
type PgSQL struct {
	DB      DB
	Builder Builder
	// Pool is set on the root handle only.
	Pool *pgxpool.Pool
}

// New connects a pgx pool and wraps it in a *sql.DB for goqu and goose.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := pgxpool.ParseConfig(options.dsn())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = min(int32(options.MaxIdleConnections), cfg.MaxConns) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect("postgres").DB(sqlDB),
		Pool:    pool,
	}, nil
}

// Ping checks that a pooled connection can reach the server.
func (p *PgSQL) Ping(ctx context.Context) error {
	if p.Pool == nil {
		return errors.New("ping needs the root handle")
	}
	if err := p.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("could not ping postgres: %w", err)
	}

	return nil
}

// Close releases the *sql.DB wrapper and then the pool beneath it.
func (p *PgSQL) Close() error {
	var err error
	if db, ok := p.DB.(*sql.DB); ok {
		err = db.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}
	if err != nil {
		return fmt.Errorf("could not close postgres: %w", err)
	}

	return nil
}

func (p *PgSQL) tx() (*sql.Tx, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return nil, storage.ErrNotInTx
	}

	return tx, nil
}

// Commit commits the transaction of a handle returned by Begin.
func (p *PgSQL) Commit() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the transaction of a handle returned by Begin.
func (p *PgSQL) Rollback() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin opens a transaction. Transactions do not nest: calling Begin on a
// transactional handle returns storage.ErrAlreadyInTx.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{DB: tx, Builder: goqu.NewTx("postgres", tx)}, nil
}

// WithTx runs cb in a READ COMMITTED transaction and commits when it returns
// nil. The transaction is rolled back when cb fails or panics. Invariants that
// span rows are kept with row locks (LockAccount, FOR UPDATE subqueries)
// rather than a stricter isolation level. A callback chosen as a deadlock
// victim is run again in a fresh transaction, so it must not have side
// effects outside of storage.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	var err error
	for attempt := 1; attempt <= txAttempts; attempt++ {
		err = p.runTx(ctx, cb)
		if !isRetryable(err) || ctx.Err() != nil {
			return err
		}
		logger.Debug(ctx, "retrying transaction", zap.Int("attempt", attempt), zap.Error(err))
	}

	return err
}

func (p *PgSQL) runTx(ctx context.Context, cb func(storage storage.AllStorage) error) (err error) {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isUniqueViolation reports whether err was caused by a unique constraint.
func isUniqueViolation(err error) bool {
	return sqlState(err) == pgerrcode.UniqueViolation
}

// isRetryable reports whether err aborted the transaction through no fault of
// the callback. Serialization failures cannot happen at READ COMMITTED.
func isRetryable(err error) bool {
	return sqlState(err) == pgerrcode.DeadlockDetected
}

var _ storage.Storage = (*PgSQL)(nil)
