package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Ayy-man/spa-booking-v2-sub002/config"
	"github.com/Ayy-man/spa-booking-v2-sub002/infras/kafka"
	"github.com/Ayy-man/spa-booking-v2-sub002/infras/otel"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/booking/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/booking/model/dto"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/booking/repository"
	catalogRepo "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/catalog/repository"
	roomRepo "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/room/repository"
	staffRepo "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/staff/repository"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/scheduling"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/cache"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/constant"
	gDto "github.com/Ayy-man/spa-booking-v2-sub002/shared/dto"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/failure"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/lock"
	gModel "github.com/Ayy-man/spa-booking-v2-sub002/shared/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/timezone"
)

const (
	cacheGetBooking     = "booking:get"
	cacheGetAllBooking  = "booking:gets"
	cacheCountBooking   = "booking:count"
	cacheAvailability   = "booking:availability"
	bookingDateLockName = "booking:date"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Availability(ctx context.Context, serviceID, date string) (dto.AvailabilityResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter repository.ListFilter) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateBookingStatusRequest) error
}

type serviceImpl struct {
	repo     repository.Booking
	services catalogRepo.Service
	staff    staffRepo.Staff
	rooms    roomRepo.Room
	engine   *scheduling.Engine
	locks    *lock.Keyed
	cfg      *config.Config
	cache    cache.RedisCache
	kafka    kafka.Client
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	services catalogRepo.Service,
	staff staffRepo.Staff,
	rooms roomRepo.Room,
	engine *scheduling.Engine,
	locks *lock.Keyed,
	cfg *config.Config,
	cache cache.RedisCache,
	kafkaClient kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		services: services,
		staff:    staff,
		rooms:    rooms,
		engine:   engine,
		locks:    locks,
		cfg:      cfg,
		cache:    cache,
		kafka:    kafkaClient,
		otel:     otel,
	}
}

// Create runs the full booking pipeline: load the day's snapshot, validate
// with the scheduling engine, persist the appointment rows in one
// transaction, and publish lifecycle events. A per-date lock serializes the
// read-validate-write window; the database exclusion constraints catch
// anything that still slips through across processes.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	date, err := timezone.Parse(constant.BookingDateFmt, req.Date)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date: %v", err)) // nolint:wrapcheck
	}

	engineReq, err := s.buildEngineRequest(ctx, req)
	if err != nil {
		return res, err
	}

	release := s.locks.Acquire(shared.BuildCacheKey(bookingDateLockName, req.Date))
	defer release()

	snap, err := s.snapshot(ctx, date)
	if err != nil {
		return res, err
	}

	result := s.engine.ValidateBooking(engineReq, snap)
	if !result.Valid {
		return res, failure.UnprocessableEntity(strings.Join(result.Errors, "; ")) // nolint:wrapcheck
	}

	appts := s.buildRows(req, result, date, user)

	if err = s.repo.InsertGroup(ctx, appts); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return res, failure.Conflict("the requested slot was just taken, please pick another time") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publishEvents(ctx, dto.EventBookingCreated, appts)
	s.invalidateListings(ctx, req.Date)

	res.Date = req.Date
	res.RoomID = int64(result.Room.ID)
	res.RoomReason = result.RoomReason
	res.BookingGroupID = appts[0].BookingGroupID.String

	for i, member := range result.Members {
		res.Members = append(res.Members, dto.BookingMemberResponse{
			AppointmentID: appts[i].ID,
			ServiceID:     member.Service.ID,
			ServiceName:   member.Service.Name,
			StaffID:       member.Staff.ID,
			StaffName:     member.Staff.Name,
			StartTime:     member.Start,
			EndTime:       member.End,
		})
	}

	return res, nil
}

// buildEngineRequest loads the requested services and assembles the engine's
// booking request.
func (s *serviceImpl) buildEngineRequest(ctx context.Context, req dto.CreateBookingRequest) (scheduling.BookingRequest, error) {
	primary, err := s.loadService(ctx, req.Primary.ServiceID)
	if err != nil {
		return scheduling.BookingRequest{}, err
	}

	engineReq := scheduling.BookingRequest{
		Date:      req.Date,
		Start:     req.StartTime,
		PartySize: req.PartySize,
		Primary: scheduling.Selection{
			StaffID: req.Primary.StaffID,
			Service: primary,
		},
	}

	if req.Secondary != nil {
		secondary, err := s.loadService(ctx, req.Secondary.ServiceID)
		if err != nil {
			return scheduling.BookingRequest{}, err
		}

		engineReq.Secondary = &scheduling.Selection{
			StaffID: req.Secondary.StaffID,
			Service: secondary,
		}
	}

	return engineReq, nil
}

func (s *serviceImpl) loadService(ctx context.Context, id string) (scheduling.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return scheduling.Service{}, fmt.Errorf("failed to get service: %w", err)
	}

	if svc.ID == constant.Empty || !svc.Active {
		return scheduling.Service{}, failure.BadRequestFromString("service does not exist") // nolint:wrapcheck
	}

	return svc.ToScheduling(), nil
}

// snapshot assembles the engine's consistent view of the roster, rooms and
// the day's appointments.
func (s *serviceImpl) snapshot(ctx context.Context, date time.Time) (scheduling.Snapshot, error) {
	var snap scheduling.Snapshot

	roster, err := s.staff.GetActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load staff roster")

		return snap, fmt.Errorf("failed to load staff roster: %w", err)
	}

	rooms, err := s.rooms.GetActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load rooms")

		return snap, fmt.Errorf("failed to load rooms: %w", err)
	}

	appts, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to load appointments")

		return snap, fmt.Errorf("failed to load appointments: %w", err)
	}

	snap.Staff = make([]scheduling.Staff, len(roster))
	for i, member := range roster {
		snap.Staff[i] = member.ToScheduling()
	}

	snap.Rooms = make([]scheduling.Room, len(rooms))
	for i, room := range rooms {
		snap.Rooms[i] = room.ToScheduling()
	}

	snap.Appointments = make([]scheduling.Appointment, len(appts))
	for i, appt := range appts {
		snap.Appointments[i] = appt.ToScheduling()
	}

	return snap, nil
}

func (s *serviceImpl) buildRows(req dto.CreateBookingRequest, result scheduling.ValidationResult, date time.Time, user string) []model.Appointment {
	var groupID sql.NullString
	if len(result.Members) == 2 {
		groupID = sql.NullString{String: uuid.NewString(), Valid: true}
	}

	now := timezone.Now()
	appts := make([]model.Appointment, len(result.Members))

	for i, member := range result.Members {
		appts[i] = model.Appointment{
			ID:             uuid.NewString(),
			ServiceID:      member.Service.ID,
			StaffID:        member.Staff.ID,
			RoomID:         int64(result.Room.ID),
			GuestName:      req.GuestName,
			GuestEmail:     req.GuestEmail,
			GuestPhone:     req.GuestPhone,
			BookingDate:    date,
			StartTime:      member.Start,
			EndTime:        member.End,
			Status:         string(scheduling.StatusConfirmed),
			BookingGroupID: groupID,
			Notes:          req.Notes,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return appts
}

// Availability lists the bookable start times for a service on a date,
// stepping the operating window by the configured slot granularity and
// running each candidate slot through the engine.
func (s *serviceImpl) Availability(ctx context.Context, serviceID, date string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheAvailability, serviceID, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	day, err := timezone.Parse(constant.BookingDateFmt, date)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date: %v", err)) // nolint:wrapcheck
	}

	svc, err := s.loadService(ctx, serviceID)
	if err != nil {
		return res, err
	}

	snap, err := s.snapshot(ctx, day)
	if err != nil {
		return res, err
	}

	res.ServiceID = serviceID
	res.Date = date
	res.Slots = []string{}

	cfg := s.engine.Config()

	for start := cfg.OpenTime; ; {
		fits, err := s.engine.CanAccommodate(start, svc.Duration, true)
		if err != nil {
			return res, fmt.Errorf("failed to check slot %s: %w", start, err)
		}

		if !fits {
			break
		}

		result := s.engine.ValidateBooking(scheduling.BookingRequest{
			Date:    date,
			Start:   start,
			Primary: scheduling.Selection{StaffID: cfg.AnyStaffID, Service: svc},
		}, snap)
		if result.Valid {
			res.Slots = append(res.Slots, start)
		}

		next, err := scheduling.AddMinutes(start, cfg.SlotGranularityMinutes)
		if err != nil {
			break
		}

		start = next
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter repository.ListFilter) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if appt.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(appt)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// UpdateStatus transitions a confirmed booking to cancelled, completed or
// no_show. The transition applies to every row of a couples group, since the
// pair shares the visit.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateBookingStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if appt.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if appt.Status != string(scheduling.StatusConfirmed) {
		return failure.BadRequestFromString(fmt.Sprintf("booking is already %s", appt.Status)) // nolint:wrapcheck
	}

	group := []model.Appointment{appt}

	if appt.BookingGroupID.Valid {
		group, err = s.repo.GetByGroup(ctx, appt.BookingGroupID.String)
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking group")

			return fmt.Errorf("failed to get booking group: %w", err)
		}
	}

	ids := make([]string, len(group))
	for i, member := range group {
		ids[i] = member.ID
	}

	if err := s.repo.UpdateStatus(ctx, ids, req.Status, user); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	s.publishEvents(ctx, eventTypeForStatus(req.Status), group)
	s.invalidateListings(ctx, appt.BookingDate.Format(constant.BookingDateFmt))

	go func() {
		c := context.WithoutCancel(ctx)

		for _, member := range group {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, member.ID)); err != nil {
				log.Error().Err(err).Msg("failed to delete booking from cache")
			}
		}
	}()

	return nil
}

func eventTypeForStatus(status string) string {
	switch status {
	case string(scheduling.StatusCancelled):
		return dto.EventBookingCancelled
	case string(scheduling.StatusCompleted):
		return dto.EventBookingCompleted
	default:
		return dto.EventBookingNoShow
	}
}

func (s *serviceImpl) publishEvents(ctx context.Context, eventType string, appts []model.Appointment) {
	messages := make([]kafka.Message, len(appts))
	for i, appt := range appts {
		messages[i] = kafka.Message{
			Key:   appt.ID,
			Value: dto.NewBookingEvent(eventType, appt),
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.BookingEvents, messages...); err != nil {
			log.Error().Err(err).Str("eventType", eventType).Msg("failed to publish booking events")
		}
	}()
}

func (s *serviceImpl) invalidateListings(ctx context.Context, date string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheAvailability, "*", date))
	}()
}
