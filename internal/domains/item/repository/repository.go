package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/internal/domains/item/model"
	"shareit/shared"
	gDto "shareit/shared/dto"
	gRepo "shareit/shared/repository"
)

type Item interface {
	FindByID(ctx context.Context, id string) (model.Item, error)
	FindByOwner(ctx context.Context, ownerID string, params gDto.QueryParams) ([]model.Item, error)
	ExistsByOwner(ctx context.Context, ownerID string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Item]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Item {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Item](model.EntityName, model.TableName, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) FindByID(ctx context.Context, id string) (model.Item, error) {
	return r.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) FindByOwner(ctx context.Context, ownerID string, params gDto.QueryParams) ([]model.Item, error) {
	params.SortBy = model.TableName + "." + model.FieldName
	params.SortDir = gDto.SortDirAsc

	return r.GetAll(ctx, params, shared.FilterByID(ownerID, model.FieldOwnerID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) ExistsByOwner(ctx context.Context, ownerID string) (bool, error) {
	return r.Exist(ctx, shared.FilterByID(ownerID, model.FieldOwnerID, model.TableName)) //nolint:wrapcheck
}
