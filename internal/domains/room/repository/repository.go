package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Ayy-man/spa-booking-v2-sub002/infras/otel"
	"github.com/Ayy-man/spa-booking-v2-sub002/infras/postgres"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/room/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/constant"
	gDto "github.com/Ayy-man/spa-booking-v2-sub002/shared/dto"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/logger"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/repository"
)

const scopeName = constant.OtelRepositoryScopeName + "." + model.EntityName

type Room interface {
	Insert(ctx context.Context, room model.Room) (int64, error)
	GetByID(ctx context.Context, id int64) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams) ([]model.Room, error)
	// GetActive returns the whole active inventory, used to build scheduling
	// snapshots.
	GetActive(ctx context.Context) ([]model.Room, error)
	Count(ctx context.Context) (int, error)
	Exist(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, fields map[string]any, id int64) error
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{db: db, otel: otel}
}

const selectColumns = `id, name, capacity, capabilities, active,
	created_at, modified_at, created_by, modified_by`

func (repo *repositoryImpl) Insert(ctx context.Context, room model.Room) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".Insert")
	defer scope.End()

	query := `INSERT INTO rooms (name, capacity, capabilities, active, created_at, modified_at, created_by, modified_by)
		VALUES (:name, :capacity, :capabilities, :active, :created_at, :modified_at, :created_by, :modified_by)
		RETURNING id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := repo.db.Write.NamedQueryContext(ctx, query, room)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to insert %s: %w", model.EntityName, err)
	}
	defer rows.Close()

	var id int64

	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return 0, fmt.Errorf("failed to scan inserted %s id: %w", model.EntityName, err)
		}
	}

	return id, nil
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id int64) (model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".GetByID")
	defer scope.End()

	query := `SELECT ` + selectColumns + ` FROM rooms WHERE id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var room model.Room

	err := repo.db.Read.GetContext(ctx, &room, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return room, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return room, fmt.Errorf("failed to get %s: %w", model.EntityName, err)
	}

	return room, nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".GetAll")
	defer scope.End()

	query := `SELECT ` + selectColumns + ` FROM rooms` + repository.OrderAndPaginate(params, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rooms []model.Room

	if err := repo.db.Read.SelectContext(ctx, &rooms, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all %ss: %w", model.EntityName, err)
	}

	return rooms, nil
}

func (repo *repositoryImpl) GetActive(ctx context.Context) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".GetActive")
	defer scope.End()

	query := `SELECT ` + selectColumns + ` FROM rooms WHERE active ORDER BY id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rooms []model.Room

	if err := repo.db.Read.SelectContext(ctx, &rooms, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get active %ss: %w", model.EntityName, err)
	}

	return rooms, nil
}

func (repo *repositoryImpl) Count(ctx context.Context) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".Count")
	defer scope.End()

	query := `SELECT COUNT(id) FROM rooms`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	if err := repo.db.Read.GetContext(ctx, &count, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count %ss: %w", model.EntityName, err)
	}

	return count, nil
}

func (repo *repositoryImpl) Exist(ctx context.Context, id int64) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".Exist")
	defer scope.End()

	query := `SELECT EXISTS(SELECT 1 FROM rooms WHERE id = $1)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var exist bool

	if err := repo.db.Read.GetContext(ctx, &exist, query, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check %s exists: %w", model.EntityName, err)
	}

	return exist, nil
}

func (repo *repositoryImpl) Update(ctx context.Context, fields map[string]any, id int64) error {
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

func (repo *repositoryImpl) Delete(ctx context.Context, id int64) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".Delete")
	defer scope.End()

	query := `DELETE FROM rooms WHERE id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.ExecContext(ctx, query, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete %s: %w", model.EntityName, err)
	}

	return nil
}
