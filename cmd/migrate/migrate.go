package migrate

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
)

const (
	orc20MigrationSource = "modules/orc20/database/postgresql/migrations"
	orc20MigrationTable  = "orc20_schema_migrations"
)

func cloneURLWithQuery(u *url.URL, newQuery url.Values) *url.URL {
	clone := *u
	query := clone.Query()
	for key, values := range newQuery {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	clone.RawQuery = query.Encode()
	return &clone
}

var supportedDrivers = map[string]struct{}{
	"postgres":   {},
	"postgresql": {},
}

func parseDatabaseURL(databaseURL string) (*url.URL, error) {
	if databaseURL == "" {
		return nil, errors.New("database url is required, use --database or modules.orc20.postgres config")
	}
	u, err := url.Parse(databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse database URL")
	}
	if _, ok := supportedDrivers[u.Scheme]; !ok {
		return nil, errors.Errorf("unsupported database driver: %s", u.Scheme)
	}
	return u, nil
}

// newMigrate returns a migrate instance whose tables, including the version
// table, live in the given schema.
func newMigrate(databaseURL *url.URL, sourcePath string, schema string) (*migrate.Migrate, error) {
	newDatabaseURL := cloneURLWithQuery(databaseURL, url.Values{
		"search_path":        {schema + ",public"},
		"x-migrations-table": {orc20MigrationTable},
	})
	m, err := migrate.New("file://"+sourcePath, newDatabaseURL.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Migrate instance")
	}
	m.Log = migrateLogger{schema: schema}
	return m, nil
}

// ApplyUp creates the schema if needed and applies all or n up migrations.
func ApplyUp(ctx context.Context, databaseURL string, sourcePath string, schema string, n int) error {
	u, err := parseDatabaseURL(databaseURL)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := execSchema(ctx, u, "CREATE SCHEMA IF NOT EXISTS %s", schema); err != nil {
		return errors.WithStack(err)
	}

	m, err := newMigrate(u, sourcePath, schema)
	if err != nil {
		return errors.WithStack(err)
	}
	defer m.Close()

	if n == 0 {
		m.Log.Printf("Applying up migrations...\n")
		err = m.Up()
	} else {
		m.Log.Printf("Applying %d up migrations...\n", n)
		err = m.Steps(n)
	}
	if err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return errors.Wrap(err, "failed to apply ORC20 up migrations")
		}
		m.Log.Printf("Migrations already up-to-date\n")
	}
	return nil
}

// DropSchema removes the schema and every ledger table in it.
func DropSchema(ctx context.Context, databaseURL string, schema string) error {
	u, err := parseDatabaseURL(databaseURL)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(execSchema(ctx, u, "DROP SCHEMA IF EXISTS %s CASCADE", schema))
}

func execSchema(ctx context.Context, databaseURL *url.URL, format string, schema string) error {
	conn, err := pgx.Connect(ctx, databaseURL.String())
	if err != nil {
		return errors.Wrap(err, "failed to connect to database")
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, fmt.Sprintf(format, pgx.Identifier{schema}.Sanitize())); err != nil {
		return errors.Wrapf(err, "failed to exec %q", fmt.Sprintf(format, schema))
	}
	return nil
}
