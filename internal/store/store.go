// Package store persists generated levels in SQL so the service can
// re-serve them without regenerating. SQLite is the default; PostgreSQL is
// available through the same Dialect abstraction.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Store wraps the database connection and provides level persistence.
type Store struct {
	db      *sql.DB
	dialect Dialect
	qb      *QueryBuilder
}

// Open opens the database described by the config, runs init statements and
// migrations, and returns the ready Store.
func Open(cfg Config) (*Store, error) {
	dialect := NewDialect(DialectType(cfg.Driver))

	var dsn string
	switch dialect.(type) {
	case *PostgresDialect:
		dsn = cfg.Postgres.ConnString()
	default:
		// Ensure the directory for the SQLite file exists.
		dir := filepath.Dir(cfg.SQLitePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = cfg.SQLitePath
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, ok := dialect.(*PostgresDialect); ok {
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init statement failed (%s): %w", stmt, err)
		}
	}

	s := &Store{
		db:      db,
		dialect: dialect,
		qb:      NewQueryBuilder(dialect),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	idType := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if !s.dialect.SupportsLastInsertID() {
		idType = "SERIAL PRIMARY KEY"
	}

	migrations := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS levels (
			id %s,
			name %s UNIQUE NOT NULL %s,
			seed BIGINT NOT NULL,
			x_min INTEGER NOT NULL,
			x_max INTEGER NOT NULL,
			z_min INTEGER NOT NULL,
			z_max INTEGER NOT NULL,
			room_side REAL NOT NULL,
			wall_radius REAL NOT NULL,
			start_x INTEGER NOT NULL,
			start_z INTEGER NOT NULL,
			goal_x INTEGER NOT NULL,
			goal_z INTEGER NOT NULL,
			spawn_distance INTEGER NOT NULL,
			walls TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, idType, s.dialect.TextType(), s.dialect.CaseInsensitiveCollation()),

		`CREATE INDEX IF NOT EXISTS idx_levels_seed ON levels(seed)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	return nil
}
