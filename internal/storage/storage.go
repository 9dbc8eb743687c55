package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/VladKvetkin/takeaway/internal/entities"
)

var (
	ErrDuplicateEmail      = errors.New("email already used")
	ErrNotFound            = errors.New("not found")
	ErrStorageFailure      = errors.New("storage failure")
	ErrUnsupportedDatabase = errors.New("unsupported database")
)

type Storage interface {
	CreateAccount(context.Context, entities.Account) (int64, error)
	FindAccountByCredentials(context.Context, string, string) (entities.Account, error)
	GetAccount(context.Context, int64) (entities.Account, error)

	ListOrders(context.Context) ([]entities.Order, error)
	CreateOrder(context.Context, entities.Order) (int64, error)

	Close() error
}

type Options struct {
	DatabaseURI string
	// SSL is applied to postgres URIs without an explicit sslmode.
	SSL bool
	// Reset drops and recreates the tables before use.
	Reset bool
}

// Open connects to the backend selected by the scheme of DatabaseURI and
// prepares the schema.
func Open(ctx context.Context, opts Options) (*SQLStorage, error) {
	scheme, _, found := strings.Cut(opts.DatabaseURI, ":")
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDatabase, opts.DatabaseURI)
	}

	d, ok := dialects[strings.ToLower(scheme)]
	if !ok {
		return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedDatabase, scheme)
	}

	return openSQLStorage(ctx, d, opts)
}

func storageFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrStorageFailure, err)
}
