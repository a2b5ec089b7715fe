package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/internal/domains/user/model"
	"shareit/shared"
	gRepo "shareit/shared/repository"
)

type User interface {
	FindByID(ctx context.Context, id string) (model.User, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, db, otel),
		otel:       otel,
	}
}

// FindByID returns an empty user when the id is unknown.
func (r *repositoryImpl) FindByID(ctx context.Context, id string) (model.User, error) {
	return r.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) ExistsByID(ctx context.Context, id string) (bool, error) {
	return r.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}
