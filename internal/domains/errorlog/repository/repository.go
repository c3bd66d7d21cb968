package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"zimmery/infras/otel"
	"zimmery/infras/postgres"
	"zimmery/internal/domains/errorlog/model"
	gDto "zimmery/shared/dto"
	gRepo "zimmery/shared/repository"
)

type ErrorLog interface {
	Insert(ctx context.Context, model model.ErrorLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ErrorLog, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ErrorLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ErrorLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ErrorLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
