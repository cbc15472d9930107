package dbmysql

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"time"

	"gorm.io/gorm"

	"instapost/internal/config"
)

var (
	queryTimeout = 5 * time.Second
	maxRetries   = 3
	retryDelay   = 200 * time.Millisecond
)

// ConfigureRetry applies the database resilience settings. Called once at
// connection time.
func ConfigureRetry(cfg config.DatabaseConfig) {
	if cfg.QueryTimeout > 0 {
		queryTimeout = time.Duration(cfg.QueryTimeout) * time.Second
	}
	if cfg.MaxRetries > 0 {
		maxRetries = cfg.MaxRetries
	}
	if cfg.RetryDelay > 0 {
		retryDelay = time.Duration(cfg.RetryDelay) * time.Millisecond
	}
}

// WithTimeout bounds a single storage round-trip. Every repository call runs
// under one of these so a wedged connection cannot stall a request forever.
func WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

// Transient reports whether an error is a connection-level failure worth
// retrying. Domain results (not found, duplicate key) are never transient.
func Transient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

// WithRetry runs a read-only operation with a per-attempt timeout and bounded
// linear backoff on transient failures. Writes are not routed through here:
// retrying a timed-out insert could apply it twice.
func WithRetry(ctx context.Context, op func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, queryTimeout)
		err = op(attemptCtx)
		cancel()

		if err == nil || !Transient(err) {
			return err
		}
		if ctx.Err() != nil {
			return err
		}

		select {
		case <-time.After(retryDelay * time.Duration(attempt+1)):
		case <-ctx.Done():
			return err
		}
	}
	return err
}
