package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/internal/domains/comment/model"
	gDto "shareit/shared/dto"
	gRepo "shareit/shared/repository"
)

type Comment interface {
	Insert(ctx context.Context, comment model.Comment) error
	FindByItems(ctx context.Context, itemIDs []string) ([]model.Comment, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Comment]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Comment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Comment](model.EntityName, model.TableName, db, otel),
		otel:       otel,
	}
}

// FindByItems returns the comments of the items, oldest first.
func (r *repositoryImpl) FindByItems(ctx context.Context, itemIDs []string) ([]model.Comment, error) {
	if len(itemIDs) == 0 {
		return []model.Comment{}, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldCreated,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldItemID, Value: itemIDs, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}

	return r.GetAll(ctx, params, filter) //nolint:wrapcheck
}
