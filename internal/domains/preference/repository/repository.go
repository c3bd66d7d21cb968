package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"zimmery/infras/otel"
	"zimmery/infras/postgres"
	"zimmery/internal/domains/preference/model"
	gDto "zimmery/shared/dto"
	gRepo "zimmery/shared/repository"
)

type Preference interface {
	Insert(ctx context.Context, model model.Preference) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Preference, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Preference]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Preference {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Preference](model.EntityName, model.TableName, model.FieldUserID, db, otel),
		db:         db,
		otel:       otel,
	}
}
