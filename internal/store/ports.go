package store

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Database . Database
type Database interface {
	MigrateModels(models ...any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetOneWhere(ctx context.Context, entity any, query string, args ...any) error
	FindWhere(ctx context.Context, dest any, query string, args ...any) error
	UpdateWhere(ctx context.Context, model any, set map[string]any, query string, args ...any) (int64, error)
	DeleteWhere(ctx context.Context, model any, query string, args ...any) error
	CountWhere(ctx context.Context, model any, query string, args ...any) (int64, error)
}
