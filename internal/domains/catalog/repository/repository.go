package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Ayy-man/spa-booking-v2-sub002/infras/otel"
	"github.com/Ayy-man/spa-booking-v2-sub002/infras/postgres"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/catalog/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/constant"
	gDto "github.com/Ayy-man/spa-booking-v2-sub002/shared/dto"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/logger"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/repository"
)

const scopeName = constant.OtelRepositoryScopeName + "." + model.EntityName

type Service interface {
	Insert(ctx context.Context, svc model.Service) error
	GetByID(ctx context.Context, id string) (model.Service, error)
	GetAll(ctx context.Context, params gDto.QueryParams, activeOnly bool) ([]model.Service, error)
	Count(ctx context.Context, activeOnly bool) (int, error)
	Exist(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, fields map[string]any, id string) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Service {
	return &repositoryImpl{db: db, otel: otel}
}

const selectColumns = `id, name, category, description, price_cents, duration_minutes,
	is_couples, requires_dedicated_room, active, created_at, modified_at, created_by, modified_by`

func (repo *repositoryImpl) Insert(ctx context.Context, svc model.Service) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".Insert")
	defer scope.End()

	query := `INSERT INTO services (` + selectColumns + `) VALUES
		(:id, :name, :category, :description, :price_cents, :duration_minutes,
		:is_couples, :requires_dedicated_room, :active, :created_at, :modified_at, :created_by, :modified_by)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, svc); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert %s: %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Service, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".GetByID")
	defer scope.End()

	query := `SELECT ` + selectColumns + ` FROM services WHERE id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var svc model.Service

	err := repo.db.Read.GetContext(ctx, &svc, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return svc, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return svc, fmt.Errorf("failed to get %s: %w", model.EntityName, err)
	}

	return svc, nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, activeOnly bool) ([]model.Service, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".GetAll")
	defer scope.End()

	query := `SELECT ` + selectColumns + ` FROM services`
	if activeOnly {
		query += ` WHERE active`
	}

	query += repository.OrderAndPaginate(params, model.FieldName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var services []model.Service

	if err := repo.db.Read.SelectContext(ctx, &services, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all %ss: %w", model.EntityName, err)
	}

	return services, nil
}

func (repo *repositoryImpl) Count(ctx context.Context, activeOnly bool) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".Count")
	defer scope.End()

	query := `SELECT COUNT(id) FROM services`
	if activeOnly {
		query += ` WHERE active`
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	if err := repo.db.Read.GetContext(ctx, &count, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count %ss: %w", model.EntityName, err)
	}

	return count, nil
}

func (repo *repositoryImpl) Exist(ctx context.Context, id string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".Exist")
	defer scope.End()

	query := `SELECT EXISTS(SELECT 1 FROM services WHERE id = $1)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var exist bool

	if err := repo.db.Read.GetContext(ctx, &exist, query, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check %s exists: %w", model.EntityName, err)
	}

	return exist, nil
}

func (repo *repositoryImpl) Update(ctx context.Context, fields map[string]any, id string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".Update")
	defer scope.End()

	query, args := repository.BuildUpdateQuery(model.TableName, fields, id)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update %s: %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".Delete")
	defer scope.End()

	query := `DELETE FROM services WHERE id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.ExecContext(ctx, query, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete %s: %w", model.EntityName, err)
	}

	return nil
}
