package store

import (
	"errors"
	"testing"
)

func TestNewDialect(t *testing.T) {
	tests := []struct {
		dialectType DialectType
		wantDriver  string
	}{
		{DialectSQLite, "sqlite"},
		{DialectPostgres, "postgres"},
		{DialectType("unknown"), "sqlite"}, // Defaults to SQLite
	}

	for _, tt := range tests {
		d := NewDialect(tt.dialectType)
		if got := d.DriverName(); got != tt.wantDriver {
			t.Errorf("NewDialect(%q).DriverName() = %q, want %q", tt.dialectType, got, tt.wantDriver)
		}
	}
}

func TestSQLitePlaceholders(t *testing.T) {
	d := &SQLiteDialect{}
	for pos := 1; pos <= 3; pos++ {
		if got := d.Placeholder(pos); got != "?" {
			t.Errorf("Placeholder(%d) = %q, want %q", pos, got, "?")
		}
	}
}

func TestPostgresPlaceholders(t *testing.T) {
	d := &PostgresDialect{}
	tests := []struct {
		pos  int
		want string
	}{
		{1, "$1"},
		{2, "$2"},
		{15, "$15"},
	}
	for _, tt := range tests {
		if got := d.Placeholder(tt.pos); got != tt.want {
			t.Errorf("Placeholder(%d) = %q, want %q", tt.pos, got, tt.want)
		}
	}
}

func TestQueryBuilderSQLite(t *testing.T) {
	qb := NewQueryBuilder(&SQLiteDialect{})

	query := "SELECT * FROM levels WHERE name = ? AND seed = ?"
	if got := qb.Build(query); got != query {
		t.Errorf("Build() changed SQLite query: %q", got)
	}
}

func TestQueryBuilderPostgres(t *testing.T) {
	qb := NewQueryBuilder(&PostgresDialect{})

	got := qb.Build("SELECT * FROM levels WHERE name = ? AND seed = ?")
	want := "SELECT * FROM levels WHERE name = $1 AND seed = $2"
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestQueryBuilderWithReturning(t *testing.T) {
	sqlite := NewQueryBuilder(&SQLiteDialect{})
	if got := sqlite.BuildWithReturning("INSERT INTO levels (name) VALUES (?)", "id"); got != "INSERT INTO levels (name) VALUES (?)" {
		t.Errorf("SQLite BuildWithReturning = %q, want no RETURNING clause", got)
	}

	postgres := NewQueryBuilder(&PostgresDialect{})
	want := "INSERT INTO levels (name) VALUES ($1) RETURNING id"
	if got := postgres.BuildWithReturning("INSERT INTO levels (name) VALUES (?)", "id"); got != want {
		t.Errorf("Postgres BuildWithReturning = %q, want %q", got, want)
	}
}

func TestIsDuplicateKeyError(t *testing.T) {
	sqlite := &SQLiteDialect{}
	postgres := &PostgresDialect{}

	tests := []struct {
		name     string
		dialect  Dialect
		err      error
		want     bool
	}{
		{"sqlite unique", sqlite, errors.New("constraint failed: UNIQUE constraint failed: levels.name"), true},
		{"sqlite other", sqlite, errors.New("no such table: levels"), false},
		{"sqlite nil", sqlite, nil, false},
		{"postgres code", postgres, errors.New("pq: duplicate key value violates unique constraint \"levels_name_key\""), true},
		{"postgres 23505", postgres, errors.New("ERROR: ... (SQLSTATE 23505)"), true},
		{"postgres other", postgres, errors.New("pq: relation \"levels\" does not exist"), false},
		{"postgres nil", postgres, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.IsDuplicateKeyError(tt.err); got != tt.want {
				t.Errorf("IsDuplicateKeyError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
