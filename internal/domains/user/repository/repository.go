package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Ayy-man/spa-booking-v2-sub002/infras/otel"
	"github.com/Ayy-man/spa-booking-v2-sub002/infras/postgres"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/user/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/constant"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/logger"
)

const scopeName = constant.OtelRepositoryScopeName + "." + model.EntityName

type User interface {
	Insert(ctx context.Context, user model.User) error
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	ExistByEmail(ctx context.Context, email string) (bool, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{db: db, otel: otel}
}

const selectColumns = `id, email, name, password_hash, role, active,
	created_at, modified_at, created_by, modified_by`

func (repo *repositoryImpl) Insert(ctx context.Context, user model.User) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".Insert")
	defer scope.End()

	query := `INSERT INTO users (` + selectColumns + `) VALUES
		(:id, :email, :name, :password_hash, :role, :active,
		:created_at, :modified_at, :created_by, :modified_by)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, user); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert %s: %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.User, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".GetByID")
	defer scope.End()

	query := `SELECT ` + selectColumns + ` FROM users WHERE id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var user model.User

	err := repo.db.Read.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return user, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return user, fmt.Errorf("failed to get %s: %w", model.EntityName, err)
	}

	return user, nil
}

func (repo *repositoryImpl) GetByEmail(ctx context.Context, email string) (model.User, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".GetByEmail")
	defer scope.End()

	query := `SELECT ` + selectColumns + ` FROM users WHERE email = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var user model.User

	err := repo.db.Read.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return user, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return user, fmt.Errorf("failed to get %s by email: %w", model.EntityName, err)
	}

	return user, nil
}

func (repo *repositoryImpl) ExistByEmail(ctx context.Context, email string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".ExistByEmail")
	defer scope.End()

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var exist bool

	if err := repo.db.Read.GetContext(ctx, &exist, query, email); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check %s exists: %w", model.EntityName, err)
	}

	return exist, nil
}
