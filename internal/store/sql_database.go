package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/migrations"
)

// psql is the statement builder used by every query in this package.
// SQLite accepts "?" placeholders, which is squirrel's default.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
