package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-register-form/internal/cookies"
	"github.com/MKhiriev/go-register-form/internal/logger"
)

// sessionExpiry stands in for a cookie without an expiry, since the table
// requires one.
var sessionExpiry = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

const (
	defaultWriteAttempts = 3
	writeBackoff         = 25 * time.Millisecond
)

// CookieJar adapts a [CookieStore] to [cookies.Jar] so the form can persist
// the remembered username across client runs.
type CookieJar struct {
	store    CookieStore
	classify func(error) ErrorClassification
	enabled  bool
	attempts int
	now      func() time.Time
	logger   *logger.Logger
}

var _ cookies.Jar = (*CookieJar)(nil)

// CookieJarOption configures a CookieJar.
type CookieJarOption func(*CookieJar)

// WithJarDisabled makes the jar report cookies as unavailable.
func WithJarDisabled(disabled bool) CookieJarOption {
	return func(j *CookieJar) { j.enabled = !disabled }
}

// WithJarClock replaces time.Now.
func WithJarClock(now func() time.Time) CookieJarOption {
	return func(j *CookieJar) { j.now = now }
}

// WithJarRetry retries writes that fail with a [Retryable] error, up to
// attempts tries in total, writeBackoff apart.
func WithJarRetry(classify func(error) ErrorClassification, attempts int) CookieJarOption {
	return func(j *CookieJar) {
		j.classify = classify
		if attempts > 0 {
			j.attempts = attempts
		}
	}
}

// NewCookieJar returns an enabled jar over store.
func NewCookieJar(store CookieStore, log *logger.Logger, opts ...CookieJarOption) *CookieJar {
	j := &CookieJar{
		store:    store,
		classify: func(error) ErrorClassification { return NonRetryable },
		enabled:  true,
		attempts: defaultWriteAttempts,
		now:      time.Now,
		logger:   log,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// NewDBCookieJar builds a jar over a cookie repository on db, retrying busy
// or transient database errors.
func NewDBCookieJar(db *DB, log *logger.Logger, opts ...CookieJarOption) *CookieJar {
	opts = append([]CookieJarOption{WithJarRetry(db.Classify, defaultWriteAttempts)}, opts...)
	return NewCookieJar(NewCookieRepository(db, log), log, opts...)
}

func (j *CookieJar) Enabled() bool {
	return j.enabled
}

// Read implements [cookies.Jar].
func (j *CookieJar) Read(ctx context.Context) (string, error) {
	list, err := j.store.All(ctx, j.now())
	if err != nil {
		return "", fmt.Errorf("error reading cookie jar: %w", err)
	}
	return cookies.Join(list), nil
}

// Write implements [cookies.Jar].
func (j *CookieJar) Write(ctx context.Context, line string) error {
	c, err := cookies.ParseLine(line)
	if err != nil {
		return err
	}

	if c.Expired(j.now()) {
		err = j.store.Delete(ctx, c.Name)
		if errors.Is(err, ErrCookieNotFound) {
			return nil
		}
		return err
	}

	if c.Expires.IsZero() {
		c.Expires = sessionExpiry
	}
	if c.Path == "" {
		c.Path = cookies.RootPath
	}

	backoff := retry.WithMaxRetries(uint64(j.attempts-1), retry.NewConstant(writeBackoff))
	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := j.store.Save(ctx, c)
		if err == nil || j.classify(err) != Retryable {
			return err
		}
		j.logger.Warn().Err(err).Int("attempt", attempt).Str("cookie", c.Name).Msg("cookie write failed, retrying")
		return retry.RetryableError(err)
	})
}
