package storage

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/jackc/pgerrcode"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type postgresDialect struct{}

func (postgresDialect) driverName() string {
	return "postgres"
}

func (postgresDialect) dataSource(opts Options) (string, error) {
	uri, err := url.Parse(opts.DatabaseURI)
	if err != nil {
		return "", fmt.Errorf("cannot parse database uri: %w", err)
	}

	query := uri.Query()
	if query.Get("sslmode") == "" {
		if opts.SSL {
			query.Set("sslmode", "require")
		} else {
			query.Set("sslmode", "disable")
		}

		uri.RawQuery = query.Encode()
	}

	return uri.String(), nil
}

func (postgresDialect) configure(*sqlx.DB) {}

func (postgresDialect) createSchema() []string {
	return []string{
		`
		CREATE TABLE IF NOT EXISTS users(
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			surname TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			phone TEXT NOT NULL,
			address TEXT NOT NULL,
			postal_code TEXT NOT NULL,
			city TEXT NOT NULL,
			country TEXT NOT NULL,
			birth_date TEXT NOT NULL,
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS orders(
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			items TEXT NOT NULL,
			total DOUBLE PRECISION NOT NULL,
			pickup_date TEXT NOT NULL,
			pickup_time TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'received',
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		`,
	}
}

func (postgresDialect) dropSchema() []string {
	return dropTables
}

func (postgresDialect) isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgerrcode.UniqueViolation
}
