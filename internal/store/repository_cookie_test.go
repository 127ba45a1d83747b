package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-register-form/internal/config"
	"github.com/MKhiriev/go-register-form/internal/cookies"
	"github.com/MKhiriev/go-register-form/internal/logger"
)

var fixedNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func newTestCookieRepo(t *testing.T) (*CookieRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewCookieRepository(newDB(db, DriverPostgres, logger.Nop()), logger.Nop())
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

func newSQLiteRepo(t *testing.T) (*CookieRepository, *DB) {
	t.Helper()
	db, err := NewConnect(context.Background(), config.DB{DSN: filepath.Join(t.TempDir(), "cookies.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())
	return NewCookieRepository(db, logger.Nop()), db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── sqlmock ───────────────────────────────────────────────────────────────────

func TestCookieRepository_Save(t *testing.T) {
	repo, mock := newTestCookieRepo(t)
	c := cookies.Cookie{Name: "username", Value: "user_1", Path: "/", Expires: fixedNow.Add(7 * 24 * time.Hour)}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cookies (name,value,path,expires_at,created_at) VALUES ($1,$2,$3,$4,$5) ON CONFLICT (name) DO UPDATE")).
		WithArgs("username", "user_1", "/", c.Expires, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCookieRepository_Save_NotMigrated(t *testing.T) {
	repo, mock := newTestCookieRepo(t)

	mock.ExpectExec("INSERT INTO cookies").WillReturnError(pgError(pgerrcode.UndefinedTable))

	err := repo.Save(context.Background(), cookies.Cookie{Name: "username", Expires: fixedNow})
	assert.ErrorIs(t, err, ErrJarNotMigrated)
}

func TestCookieRepository_Save_OtherError(t *testing.T) {
	repo, mock := newTestCookieRepo(t)

	mock.ExpectExec("INSERT INTO cookies").WillReturnError(pgError(pgerrcode.SerializationFailure))

	err := repo.Save(context.Background(), cookies.Cookie{Name: "username", Expires: fixedNow})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrJarNotMigrated)
}

func TestCookieRepository_All(t *testing.T) {
	repo, mock := newTestCookieRepo(t)
	exp := fixedNow.Add(time.Hour)

	rows := sqlmock.NewRows([]string{"name", "value", "path", "expires_at"}).
		AddRow("theme", "dark", "/", exp).
		AddRow("username", "user_1", "/", exp)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT name, value, path, expires_at FROM cookies WHERE expires_at > $1 ORDER BY created_at, name")).
		WithArgs(fixedNow).
		WillReturnRows(rows)

	got, err := repo.All(context.Background(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []cookies.Cookie{
		{Name: "theme", Value: "dark", Path: "/", Expires: exp},
		{Name: "username", Value: "user_1", Path: "/", Expires: exp},
	}, got)
}

func TestCookieRepository_All_QueryError(t *testing.T) {
	repo, mock := newTestCookieRepo(t)
	mock.ExpectQuery("SELECT").WillReturnError(sql.ErrConnDone)

	_, err := repo.All(context.Background(), fixedNow)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestCookieRepository_All_ScanError(t *testing.T) {
	repo, mock := newTestCookieRepo(t)
	rows := sqlmock.NewRows([]string{"name", "value", "path", "expires_at"}).
		AddRow("username", "user_1", "/", "not a time")
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	_, err := repo.All(context.Background(), fixedNow)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestCookieRepository_Delete(t *testing.T) {
	repo, mock := newTestCookieRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cookies WHERE name = $1")).
		WithArgs("username").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "username"))
}

func TestCookieRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newTestCookieRepo(t)

	mock.ExpectExec("DELETE FROM cookies").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "absent"), ErrCookieNotFound)
}

func TestCookieRepository_DeleteExpired(t *testing.T) {
	repo, mock := newTestCookieRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cookies WHERE expires_at <= $1")).
		WithArgs(fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteExpired(context.Background(), fixedNow)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestCookieRepository_DeleteExpired_Error(t *testing.T) {
	repo, mock := newTestCookieRepo(t)
	mock.ExpectExec("DELETE FROM cookies").WillReturnError(errors.New("boom"))

	n, err := repo.DeleteExpired(context.Background(), fixedNow)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── sqlite ────────────────────────────────────────────────────────────────────

func TestCookieRepository_SQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newSQLiteRepo(t)

	tick := fixedNow
	repo.now = func() time.Time { tick = tick.Add(time.Second); return tick }

	require.NoError(t, repo.Save(ctx, cookies.Cookie{Name: "username", Value: "first", Path: "/", Expires: fixedNow.Add(time.Hour)}))
	require.NoError(t, repo.Save(ctx, cookies.Cookie{Name: "theme", Value: "dark", Path: "/", Expires: fixedNow.Add(time.Hour)}))
	require.NoError(t, repo.Save(ctx, cookies.Cookie{Name: "stale", Value: "x", Path: "/", Expires: fixedNow.Add(-time.Hour)}))
	// replacing keeps the original position
	require.NoError(t, repo.Save(ctx, cookies.Cookie{Name: "username", Value: "second", Path: "/", Expires: fixedNow.Add(2 * time.Hour)}))

	got, err := repo.All(ctx, fixedNow)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "username", got[0].Name)
	assert.Equal(t, "second", got[0].Value)
	assert.True(t, fixedNow.Add(2*time.Hour).Equal(got[0].Expires))
	assert.Equal(t, "theme", got[1].Name)

	n, err := repo.DeleteExpired(ctx, fixedNow)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, repo.Delete(ctx, "theme"))
	assert.ErrorIs(t, repo.Delete(ctx, "theme"), ErrCookieNotFound)
}

func TestCookieRepository_SQLite_NotMigrated(t *testing.T) {
	db, err := NewConnect(context.Background(), config.DB{DSN: filepath.Join(t.TempDir(), "bare.db")}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	_, err = NewCookieRepository(db, logger.Nop()).All(context.Background(), fixedNow)
	assert.ErrorIs(t, err, ErrJarNotMigrated)
}
