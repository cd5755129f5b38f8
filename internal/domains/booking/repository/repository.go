package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Ayy-man/spa-booking-v2-sub002/infras/otel"
	"github.com/Ayy-man/spa-booking-v2-sub002/infras/postgres"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/booking/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/constant"
	gDto "github.com/Ayy-man/spa-booking-v2-sub002/shared/dto"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/logger"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/repository"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/timezone"
)

const scopeName = constant.OtelRepositoryScopeName + "." + model.EntityName

// ErrSlotTaken surfaces the database exclusion constraints: a concurrent
// writer took the staff member or the room for an overlapping buffered
// interval after this request validated its snapshot.
var ErrSlotTaken = errors.New("slot already taken")

// ListFilter narrows appointment listings. Zero fields are ignored.
type ListFilter struct {
	Date    string `json:"date"`
	Status  string `json:"status"`
	StaffID string `json:"staff_id"`
}

type Booking interface {
	// InsertGroup writes all rows of one booking atomically. Couples
	// bookings pass two rows sharing a booking_group_id.
	InsertGroup(ctx context.Context, appts []model.Appointment) error
	GetByID(ctx context.Context, id string) (model.Appointment, error)
	GetByGroup(ctx context.Context, groupID string) ([]model.Appointment, error)
	// GetByDate returns every appointment of the calendar day regardless of
	// status, used to build scheduling snapshots.
	GetByDate(ctx context.Context, date time.Time) ([]model.Appointment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter ListFilter) ([]model.Appointment, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
	// UpdateStatus moves every listed appointment to status in one
	// statement, so a couples group never ends up half transitioned.
	UpdateStatus(ctx context.Context, ids []string, status, user string) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{db: db, otel: otel}
}

const selectColumns = `id, service_id, staff_id, room_id, guest_name, guest_email, guest_phone,
	booking_date, start_time, end_time, status, booking_group_id, notes,
	created_at, modified_at, created_by, modified_by`

const insertQuery = `INSERT INTO appointments (` + selectColumns + `) VALUES
	(:id, :service_id, :staff_id, :room_id, :guest_name, :guest_email, :guest_phone,
	:booking_date, :start_time, :end_time, :status, :booking_group_id, :notes,
	:created_at, :modified_at, :created_by, :modified_by)`

func (repo *repositoryImpl) InsertGroup(ctx context.Context, appts []model.Appointment) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".InsertGroup")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, insertQuery)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, appt := range appts {
		if _, err := tx.NamedExecContext(ctx, insertQuery, appt); err != nil {
			_ = tx.Rollback()

			var pqErr *pq.Error
			if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
				return fmt.Errorf("%w: %s %s-%s", ErrSlotTaken,
					appt.BookingDate.Format(constant.BookingDateFmt), appt.StartTime, appt.EndTime)
			}

			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return fmt.Errorf("failed to insert %s: %w", model.EntityName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Appointment, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".GetByID")
	defer scope.End()

	query := `SELECT ` + selectColumns + ` FROM appointments WHERE id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var appt model.Appointment

	err := repo.db.Read.GetContext(ctx, &appt, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return appt, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return appt, fmt.Errorf("failed to get %s: %w", model.EntityName, err)
	}

	return appt, nil
}

func (repo *repositoryImpl) GetByGroup(ctx context.Context, groupID string) ([]model.Appointment, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".GetByGroup")
	defer scope.End()

	query := `SELECT ` + selectColumns + ` FROM appointments WHERE booking_group_id = $1 ORDER BY id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var appts []model.Appointment

	if err := repo.db.Read.SelectContext(ctx, &appts, query, groupID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get %s group: %w", model.EntityName, err)
	}

	return appts, nil
}

func (repo *repositoryImpl) GetByDate(ctx context.Context, date time.Time) ([]model.Appointment, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".GetByDate")
	defer scope.End()

	query := `SELECT ` + selectColumns + ` FROM appointments WHERE booking_date = $1 ORDER BY start_time`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var appts []model.Appointment

	if err := repo.db.Read.SelectContext(ctx, &appts, query, date); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get %ss by date: %w", model.EntityName, err)
	}

	return appts, nil
}

func buildWhere(filter ListFilter) (string, map[string]any) {
	where := ""
	args := map[string]any{}

	add := func(clause string) {
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}

	if filter.Date != "" {
		add("booking_date = :date")

		args["date"] = filter.Date
	}

	if filter.Status != "" {
		add("status = :status")

		args["status"] = filter.Status
	}

	if filter.StaffID != "" {
		add("staff_id = :staff_id")

		args["staff_id"] = filter.StaffID
	}

	return where, args
}

func (repo *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter ListFilter) ([]model.Appointment, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".GetAll")
	defer scope.End()

	where, args := buildWhere(filter)
	query := `SELECT ` + selectColumns + ` FROM appointments` + where +
		repository.OrderAndPaginate(params, model.FieldBookingDate)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var appts []model.Appointment

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err := prepare.SelectContext(ctx, &appts, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all %ss: %w", model.EntityName, err)
	}

	return appts, nil
}

func (repo *repositoryImpl) Count(ctx context.Context, filter ListFilter) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".Count")
	defer scope.End()

	where, args := buildWhere(filter)
	query := `SELECT COUNT(id) FROM appointments` + where
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err := prepare.GetContext(ctx, &count, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count %ss: %w", model.EntityName, err)
	}

	return count, nil
}

func (repo *repositoryImpl) UpdateStatus(ctx context.Context, ids []string, status, user string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopeName+".UpdateStatus")
	defer scope.End()

	query := `UPDATE appointments SET status = $1, modified_at = $2, modified_by = $3 WHERE id = ANY($4)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.ExecContext(ctx, query, status, timezone.Now(), user, pq.Array(ids)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update %s status: %w", model.EntityName, err)
	}

	return nil
}
