package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-splitter/internal/entity/expense"
	"max.ks1230/expense-splitter/internal/logger"
)

const (
	dsnTemplate   = "user=%s password=%s host=%s port=%d dbname=%s sslmode=%s"
	expensesTable = "expenses"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	Host() string
	Port() int
	Username() string
	Password() string
	Database() string
	SSLMode() string
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", dsn(config))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db}, nil
}

func dsn(config config) string {
	return fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Port(),
		config.Database(),
		config.SSLMode())
}

func (s *PostgresStorage) Close() {
	if err := s.db.Close(); err != nil {
		logger.Error("failed to close database", zap.Error(err))
	}
}

func selectAllQuery() sq.SelectBuilder {
	return psql.Select("id", "payee_name", "product", "price", "set_date").
		From(expensesTable).
		OrderBy("id")
}

func insertQuery(draft expense.Draft) sq.InsertBuilder {
	return psql.Insert(expensesTable).
		Columns("payee_name", "product", "price", "set_date").
		Values(draft.PayeeName, draft.Product, draft.Price, draft.SetDate.Time).
		Suffix("RETURNING id")
}

func (s *PostgresStorage) GetAll(ctx context.Context) ([]expense.Record, error) {
	rows, err := selectAllQuery().RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}
	defer func() {
		if rowErr := rows.Close(); rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	records := make([]expense.Record, 0)
	for rows.Next() {
		var (
			rec     expense.Record
			id      int64
			setDate time.Time
		)
		if err = rows.Scan(&id, &rec.PayeeName, &rec.Product, &rec.Price, &setDate); err != nil {
			return nil, errors.Wrap(err, "get expenses")
		}
		rec.ID = expense.IDFromInt(id)
		rec.SetDate = expense.DateOf(setDate)
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}
	return records, nil
}

func (s *PostgresStorage) Create(ctx context.Context, draft expense.Draft) (expense.Record, error) {
	var id int64
	err := insertQuery(draft).RunWith(s.db).QueryRowContext(ctx).Scan(&id)
	if err != nil {
		return expense.Record{}, errors.Wrap(err, "save expense")
	}
	return draft.WithID(expense.IDFromInt(id)), nil
}
