package storage

import (
	"github.com/jmoiron/sqlx"
)

type dialect interface {
	driverName() string
	dataSource(Options) (string, error)
	configure(*sqlx.DB)
	createSchema() []string
	dropSchema() []string
	isUniqueViolation(error) bool
}

var dialects = map[string]dialect{
	"postgres":   postgresDialect{},
	"postgresql": postgresDialect{},
	"sqlite":     sqliteDialect{},
	"file":       sqliteDialect{},
}

var dropTables = []string{
	`DROP TABLE IF EXISTS orders;`,
	`DROP TABLE IF EXISTS users;`,
}
