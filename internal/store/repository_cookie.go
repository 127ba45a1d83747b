package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-register-form/internal/cookies"
	"github.com/MKhiriev/go-register-form/internal/logger"
)

const cookiesTable = "cookies"

// upsertCookieSuffix replaces value, path and expiry of an existing cookie.
// created_at is kept so the cookie keeps its position in the jar.
const upsertCookieSuffix = `ON CONFLICT (name) DO UPDATE SET
	value = excluded.value,
	path = excluded.path,
	expires_at = excluded.expires_at`

// CookieRepository is the SQL implementation of [CookieStore]. Queries are
// built with squirrel using the placeholder format of the connected driver.
type CookieRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

var _ CookieStore = (*CookieRepository)(nil)

// NewCookieRepository constructs a [CookieRepository] over db.
func NewCookieRepository(db *DB, log *logger.Logger) *CookieRepository {
	log.Debug().Msg("creating cookie repository")
	return &CookieRepository{
		db:     db,
		logger: log,
		now:    time.Now,
	}
}

// Save implements [CookieStore].
func (r *CookieRepository) Save(ctx context.Context, c cookies.Cookie) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(cookiesTable).
		Columns("name", "value", "path", "expires_at", "created_at").
		Values(c.Name, c.Value, c.Path, c.Expires.UTC(), r.now().UTC()).
		Suffix(upsertCookieSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*CookieRepository.Save").Str("name", c.Name).Msg("failed to save cookie")
		return r.wrap(ErrExecutingStatement, err)
	}

	return nil
}

// All implements [CookieStore].
func (r *CookieRepository) All(ctx context.Context, now time.Time) ([]cookies.Cookie, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("name", "value", "path", "expires_at").
		From(cookiesTable).
		Where(sq.Gt{"expires_at": now.UTC()}).
		OrderBy("created_at", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*CookieRepository.All").Msg("failed to query cookies")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []cookies.Cookie
	for rows.Next() {
		var c cookies.Cookie
		if err = rows.Scan(&c.Name, &c.Value, &c.Path, &c.Expires); err != nil {
			log.Err(err).Str("func", "*CookieRepository.All").Msg("failed to scan cookie")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		c.Expires = c.Expires.UTC()
		out = append(out, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

// Delete implements [CookieStore]. Deleting a cookie that is not stored
// returns [ErrCookieNotFound].
func (r *CookieRepository) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Delete(cookiesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*CookieRepository.Delete").Str("name", name).Msg("failed to delete cookie")
		return r.wrap(ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrCookieNotFound
	}
	return nil
}

// DeleteExpired implements [CookieStore].
func (r *CookieRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Delete(cookiesTable).
		Where(sq.LtOrEq{"expires_at": now.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*CookieRepository.DeleteExpired").Msg("failed to delete expired cookies")
		return 0, r.wrap(ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, r.wrap(ErrExecutingStatement, err)
	}
	return n, nil
}

// wrap attaches kind to a driver error, replacing it with
// [ErrJarNotMigrated] when the table is missing.
func (r *CookieRepository) wrap(kind, err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("%w: %w", ErrJarNotMigrated, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}
