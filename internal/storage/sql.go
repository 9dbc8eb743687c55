package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/VladKvetkin/takeaway/internal/entities"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const (
	accountColumns = `id, name, surname, email, phone, address, postal_code, city, country, birth_date, password, created_at`
	orderColumns   = `id, user_id, items, total, pickup_date, pickup_time, status, created_at`
)

type SQLStorage struct {
	db      *sqlx.DB
	dialect dialect
	now     func() time.Time
}

func newSQLStorage(ctx context.Context, db *sqlx.DB, d dialect, reset bool) (*SQLStorage, error) {
	storage := &SQLStorage{
		db:      db,
		dialect: d,
		now:     func() time.Time { return time.Now().UTC() },
	}

	if reset {
		zap.L().Info("dropping tables before migrations")

		if err := storage.runStatements(ctx, d.dropSchema()); err != nil {
			return nil, fmt.Errorf("cannot drop tables: %w", err)
		}
	}

	if err := storage.runStatements(ctx, d.createSchema()); err != nil {
		return nil, fmt.Errorf("cannot run migrations: %w", err)
	}

	return storage, nil
}

func openSQLStorage(ctx context.Context, d dialect, opts Options) (*SQLStorage, error) {
	dataSource, err := d.dataSource(opts)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(d.driverName(), dataSource)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s database: %w", d.driverName(), err)
	}

	d.configure(db)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot connect to %s database: %w", d.driverName(), err)
	}

	storage, err := newSQLStorage(ctx, db, d, opts.Reset)
	if err != nil {
		db.Close()
		return nil, err
	}

	return storage, nil
}

func (s *SQLStorage) CreateAccount(ctx context.Context, account entities.Account) (int64, error) {
	var accountID int64

	row := s.db.QueryRowxContext(
		ctx,
		s.db.Rebind(`INSERT INTO users (name, surname, email, phone, address, postal_code, city, country, birth_date, password, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id;`),
		nullString(account.Name),
		nullString(account.Surname),
		nullString(account.Email),
		nullString(account.Phone),
		nullString(account.Address),
		nullString(account.PostalCode),
		nullString(account.City),
		nullString(account.Country),
		nullString(account.BirthDate),
		nullString(account.Password),
		s.now(),
	)

	if err := row.Err(); err != nil {
		return 0, s.insertError(err)
	}

	if err := row.Scan(&accountID); err != nil {
		return 0, s.insertError(err)
	}

	return accountID, nil
}

func (s *SQLStorage) FindAccountByCredentials(ctx context.Context, email string, password string) (entities.Account, error) {
	var account entities.Account

	err := s.db.GetContext(
		ctx,
		&account,
		s.db.Rebind(`SELECT `+accountColumns+` FROM users WHERE email = ? AND password = ?;`),
		email, password,
	)
	if err != nil {
		return entities.Account{}, selectError(err)
	}

	return account, nil
}

func (s *SQLStorage) GetAccount(ctx context.Context, id int64) (entities.Account, error) {
	var account entities.Account

	err := s.db.GetContext(ctx, &account, s.db.Rebind(`SELECT `+accountColumns+` FROM users WHERE id = ?;`), id)
	if err != nil {
		return entities.Account{}, selectError(err)
	}

	return account, nil
}

func (s *SQLStorage) ListOrders(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order

	err := s.db.SelectContext(ctx, &orders, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC;`)
	if err != nil {
		return nil, storageFailure(err)
	}

	return orders, nil
}

func (s *SQLStorage) CreateOrder(ctx context.Context, order entities.Order) (int64, error) {
	var orderID int64

	status := order.Status
	if status == "" {
		status = entities.OrderStatusReceived
	}

	row := s.db.QueryRowxContext(
		ctx,
		s.db.Rebind(`INSERT INTO orders (user_id, items, total, pickup_date, pickup_time, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id;`),
		nullInt64(order.UserID),
		order.Items,
		nullFloat64(order.Total),
		nullString(order.PickupDate),
		nullString(order.PickupTime),
		status,
		s.now(),
	)

	if err := row.Err(); err != nil {
		return 0, storageFailure(err)
	}

	if err := row.Scan(&orderID); err != nil {
		return 0, storageFailure(err)
	}

	return orderID, nil
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}

func (s *SQLStorage) runStatements(ctx context.Context, statements []string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	for _, statement := range statements {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLStorage) insertError(err error) error {
	if s.dialect.isUniqueViolation(err) {
		return ErrDuplicateEmail
	}

	return storageFailure(err)
}

func selectError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	return storageFailure(err)
}

// Absent fields are written as NULL so that NOT NULL columns reject them.
func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func nullInt64(value int64) sql.NullInt64 {
	return sql.NullInt64{Int64: value, Valid: value != 0}
}

func nullFloat64(value *float64) sql.NullFloat64 {
	if value == nil {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: *value, Valid: true}
}
