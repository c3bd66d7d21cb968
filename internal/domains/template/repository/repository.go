package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"zimmery/infras/otel"
	"zimmery/infras/postgres"
	"zimmery/internal/domains/template/model"
	gDto "zimmery/shared/dto"
	gRepo "zimmery/shared/repository"
)

type ContentTemplate interface {
	Insert(ctx context.Context, model model.ContentTemplate) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ContentTemplate, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ContentTemplate, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ContentTemplate]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ContentTemplate {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ContentTemplate](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
