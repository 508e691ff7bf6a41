package repository

import (
	"audio2score/internal/db"
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, conds db.Conditions, entity any, omit ...string) error
	GetAllBy(ctx context.Context, conds db.Conditions, order string, entities any, omit ...string) error
	DeleteBy(ctx context.Context, conds db.Conditions, model any) error
}
