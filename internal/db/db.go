package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// SaveToTable inserts records unconditionally.
func (f *PostgresDB) SaveToTable(ctx context.Context, records any) error {
	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}
	return nil
}

// UpsertToTable inserts records, silently skipping rows that collide on the
// given conflict columns. Existing rows are never modified.
func (f *PostgresDB) UpsertToTable(ctx context.Context, records any, conflictColumns ...string) error {
	cols := make([]clause.Column, 0, len(conflictColumns))
	for _, c := range conflictColumns {
		cols = append(cols, clause.Column{Name: c})
	}

	err := f.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: cols, DoNothing: true}).
		Create(records).Error
	if err != nil {
		return fmt.Errorf("upsert to table: %w", err)
	}
	return nil
}

// UpsertUpdating inserts a record or, on conflict, overwrites the listed
// update columns of the existing row.
func (f *PostgresDB) UpsertUpdating(ctx context.Context, record any, conflictColumns, updateColumns []string) error {
	cols := make([]clause.Column, 0, len(conflictColumns))
	for _, c := range conflictColumns {
		cols = append(cols, clause.Column{Name: c})
	}

	err := f.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: cols, DoUpdates: clause.AssignmentColumns(updateColumns)}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("upsert updating table: %w", err)
	}
	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, dest any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.DB.WithContext(ctx).Where(query, value).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// GetAllWhere runs an arbitrary WHERE clause, for lookups spanning more than
// one column (e.g. an address matching either side of a transfer).
func (f *PostgresDB) GetAllWhere(ctx context.Context, query string, dest any, args ...any) error {
	tx := f.DB.WithContext(ctx).Where(query, args...).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting records where %q: %w", query, tx.Error)
	}
	return nil
}
