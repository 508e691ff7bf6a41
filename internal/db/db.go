package db

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

// Conditions are equality filters joined with AND.
type Conditions map[string]any

type PostgresDB struct {
	db *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		db: db,
	}, nil
}

// NewFromGorm wraps an already opened gorm handle.
func NewFromGorm(db *gorm.DB) *PostgresDB {
	return &PostgresDB{
		db: db,
	}
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.db.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Create(ctx context.Context, record any) error {
	if err := f.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert to table: %w", ErrDuplicate)
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// GetOneBy loads the first row matching conds into entity. Columns listed in
// omit are left out of the SELECT.
func (f *PostgresDB) GetOneBy(ctx context.Context, conds Conditions, entity any, omit ...string) error {
	tx := f.db.WithContext(ctx).Where(map[string]any(conds))
	if len(omit) > 0 {
		tx = tx.Omit(omit...)
	}

	err := tx.First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %v: %w", conds.columns(), err)
	}
	return nil
}

// GetAllBy loads every row matching conds into entities, sorted by order.
// Columns listed in omit are left out of the SELECT.
func (f *PostgresDB) GetAllBy(ctx context.Context, conds Conditions, order string, entities any, omit ...string) error {
	tx := f.db.WithContext(ctx).Where(map[string]any(conds))
	if len(omit) > 0 {
		tx = tx.Omit(omit...)
	}
	if order != "" {
		tx = tx.Order(order)
	}

	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("getting records by %v: %w", conds.columns(), err)
	}
	return nil
}

// DeleteBy removes rows of model matching conds. ErrNotFound is returned when
// nothing was deleted.
func (f *PostgresDB) DeleteBy(ctx context.Context, conds Conditions, model any) error {
	if len(conds) == 0 {
		return errors.New("refusing to delete without conditions")
	}

	tx := f.db.WithContext(ctx).Where(map[string]any(conds)).Delete(model)
	if tx.Error != nil {
		return fmt.Errorf("deleting records by %v: %w", conds.columns(), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (f *PostgresDB) Ping(ctx context.Context) error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (f *PostgresDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func (c Conditions) columns() []string {
	cols := make([]string, 0, len(c))
	for col := range c {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}
