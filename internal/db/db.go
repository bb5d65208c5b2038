package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

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

func (f *PostgresDB) MigrateModels(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Insert(ctx context.Context, record any) error {
	err := f.db.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

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

func (f *PostgresDB) GetOneWhere(ctx context.Context, entity any, query string, args ...any) error {
	err := f.db.WithContext(ctx).Where(query, args...).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record where %q: %w", query, err)
	}
	return nil
}

func (f *PostgresDB) FindWhere(ctx context.Context, dest any, query string, args ...any) error {
	tx := f.db.WithContext(ctx).Where(query, args...).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting records where %q: %w", query, tx.Error)
	}
	return nil
}

// UpdateWhere applies set to every row of model matching the predicate and
// reports how many rows changed. With a predicate on the current state this
// is the atomic compare-and-swap primitive: zero affected rows means another
// writer got there first.
func (f *PostgresDB) UpdateWhere(ctx context.Context, model any, set map[string]any, query string, args ...any) (int64, error) {
	tx := f.db.WithContext(ctx).Model(model).Where(query, args...).Updates(set)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating records where %q: %w", query, tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *PostgresDB) DeleteWhere(ctx context.Context, model any, query string, args ...any) error {
	tx := f.db.WithContext(ctx).Where(query, args...).Delete(model)
	if tx.Error != nil {
		return fmt.Errorf("deleting records where %q: %w", query, tx.Error)
	}
	return nil
}

func (f *PostgresDB) CountWhere(ctx context.Context, model any, query string, args ...any) (int64, error) {
	var count int64
	tx := f.db.WithContext(ctx).Model(model).Where(query, args...).Count(&count)
	if tx.Error != nil {
		return 0, fmt.Errorf("counting records where %q: %w", query, tx.Error)
	}
	return count, nil
}
