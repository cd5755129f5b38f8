package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Ayy-man/spa-booking-v2-sub002/infras/otel"
	"github.com/Ayy-man/spa-booking-v2-sub002/infras/postgres"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/staff/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/constant"
	gDto "github.com/Ayy-man/spa-booking-v2-sub002/shared/dto"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/logger"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/repository"
)

const scopeName = constant.OtelRepositoryScopeName + "." + model.EntityName

type Staff interface {
	Insert(ctx context.Context, staff model.Staff) error
	GetByID(ctx context.Context, id string) (model.Staff, error)
	GetAll(ctx context.Context, params gDto.QueryParams) ([]model.Staff, error)
	// GetActive returns the whole active roster, used to build scheduling
	// snapshots.
	GetActive(ctx context.Context) ([]model.Staff, error)
	Count(ctx context.Context) (int, error)
	Exist(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, fields map[string]any, id string) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Staff {
	return &repositoryImpl{db: db, otel: otel}
}

const selectColumns = `id, name, capabilities, exclusions, work_days, default_room_id, active,
	created_at, modified_at, created_by, modified_by`

func (repo *repositoryImpl) Insert(ctx context.Context, staff model.Staff) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".Insert")
	defer scope.End()

	query := `INSERT INTO staff (` + selectColumns + `) VALUES
		(:id, :name, :capabilities, :exclusions, :work_days, :default_room_id, :active,
		:created_at, :modified_at, :created_by, :modified_by)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, staff); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert %s: %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Staff, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".GetByID")
	defer scope.End()

	query := `SELECT ` + selectColumns + ` FROM staff WHERE id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var staff model.Staff

	err := repo.db.Read.GetContext(ctx, &staff, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return staff, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return staff, fmt.Errorf("failed to get %s: %w", model.EntityName, err)
	}

	return staff, nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams) ([]model.Staff, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".GetAll")
	defer scope.End()

	query := `SELECT ` + selectColumns + ` FROM staff` + repository.OrderAndPaginate(params, model.FieldName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var staff []model.Staff

	if err := repo.db.Read.SelectContext(ctx, &staff, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all %s: %w", model.EntityName, err)
	}

	return staff, nil
}

func (repo *repositoryImpl) GetActive(ctx context.Context) ([]model.Staff, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".GetActive")
	defer scope.End()

	query := `SELECT ` + selectColumns + ` FROM staff WHERE active ORDER BY id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var staff []model.Staff

	if err := repo.db.Read.SelectContext(ctx, &staff, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get active %s: %w", model.EntityName, err)
	}

	return staff, nil
}

func (repo *repositoryImpl) Count(ctx context.Context) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".Count")
	defer scope.End()

	query := `SELECT COUNT(id) FROM staff`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	if err := repo.db.Read.GetContext(ctx, &count, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count %s: %w", model.EntityName, err)
	}

	return count, nil
}

func (repo *repositoryImpl) Exist(ctx context.Context, id string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".Exist")
	defer scope.End()

	query := `SELECT EXISTS(SELECT 1 FROM staff WHERE id = $1)`
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

	query := `DELETE FROM staff WHERE id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.ExecContext(ctx, query, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete %s: %w", model.EntityName, err)
	}

	return nil
}
