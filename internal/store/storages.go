package store

import "github.com/MKhiriev/go-register-form/internal/logger"

// Storages groups the repositories built over one connection.
type Storages struct {
	Cookies CookieStore
}

// NewStorages builds every repository over db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Cookies: NewCookieRepository(db, log),
	}
}
