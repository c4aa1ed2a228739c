package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// PostgresDB is a thin generic layer over gorm. Callers address records by
// column/value pairs; every write is a single statement so each call is
// atomic on its own and concurrent writers get last-writer-wins.
type PostgresDB struct {
	db *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		db: db,
	}, nil
}

// NewWithGorm wires an existing gorm connection, used by tests.
func NewWithGorm(conn *gorm.DB) *PostgresDB {
	return &PostgresDB{db: conn}
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.db.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Count reports the number of rows for the given model.
func (f *PostgresDB) Count(ctx context.Context, model any) (int64, error) {
	var count int64
	if err := f.db.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("get model count: %w", err)
	}
	return count, nil
}

// InsertOne stores a single record.
func (f *PostgresDB) InsertOne(ctx context.Context, record any) error {
	if err := f.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}
	return nil
}

// GetOneBy loads the first record matching column = value into entity.
func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// GetAll loads every record of the entity's table, optionally ordered.
func (f *PostgresDB) GetAll(ctx context.Context, entity any, orderBy string) error {
	tx := f.db.WithContext(ctx)
	if orderBy != "" {
		tx = tx.Order(orderBy)
	}
	if err := tx.Find(entity).Error; err != nil {
		return fmt.Errorf("getting all records: %w", err)
	}
	return nil
}

// SearchLike loads every record where any of the given columns matches the
// free-text query, case-insensitively. An empty result is not an error.
func (f *PostgresDB) SearchLike(ctx context.Context, entity any, query string, columns ...string) error {
	if len(columns) == 0 {
		return errors.New("search requires at least one column")
	}

	conditions := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, column := range columns {
		conditions[i] = fmt.Sprintf("%s ILIKE ?", column)
		args[i] = "%" + query + "%"
	}

	tx := f.db.WithContext(ctx).Where(strings.Join(conditions, " OR "), args...).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("searching records: %w", tx.Error)
	}
	return nil
}

// ReplaceOne overwrites every column of the row matching column = value with
// the given values. A missing row is a silent no-op, matching the permissive
// replace semantics of the store contract.
func (f *PostgresDB) ReplaceOne(ctx context.Context, model any, column string, value any, values map[string]any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.db.WithContext(ctx).Model(model).Where(query, value).Updates(values)
	if tx.Error != nil {
		return fmt.Errorf("replacing record by %q: %w", column, tx.Error)
	}
	return nil
}

// DeleteAllBy removes every record matching column = value. Deleting a value
// that matches nothing is a no-op.
func (f *PostgresDB) DeleteAllBy(ctx context.Context, model any, column string, value any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.db.WithContext(ctx).Where(query, value).Delete(model)
	if tx.Error != nil {
		return fmt.Errorf("deleting records by %q: %w", column, tx.Error)
	}
	return nil
}
