package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, records any) error
	UpsertToTable(ctx context.Context, records any, conflictColumns ...string) error
	UpsertUpdating(ctx context.Context, record any, conflictColumns, updateColumns []string) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, dest any) error
	GetAllWhere(ctx context.Context, query string, dest any, args ...any) error
}
