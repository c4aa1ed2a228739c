package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Count(ctx context.Context, model any) (int64, error)
	InsertOne(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAll(ctx context.Context, entity any, orderBy string) error
	SearchLike(ctx context.Context, entity any, query string, columns ...string) error
	ReplaceOne(ctx context.Context, model any, column string, value any, values map[string]any) error
	DeleteAllBy(ctx context.Context, model any, column string, value any) error
}
