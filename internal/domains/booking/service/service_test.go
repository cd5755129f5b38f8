package service_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Ayy-man/spa-booking-v2-sub002/config"
	kafkaMocks "github.com/Ayy-man/spa-booking-v2-sub002/infras/kafka/mocks"
	"github.com/Ayy-man/spa-booking-v2-sub002/infras/otel/mocks"
	bookingMocks "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/booking/mocks"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/booking/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/booking/model/dto"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/booking/repository"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/booking/service"
	catalogMocks "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/catalog/mocks"
	catalogModel "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/catalog/model"
	roomMocks "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/room/mocks"
	roomModel "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/room/model"
	staffMocks "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/staff/mocks"
	staffModel "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/staff/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/scheduling"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/cache"
	cacheMocks "github.com/Ayy-man/spa-booking-v2-sub002/shared/cache/mocks"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/constant"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/failure"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/lock"
)

// testDate is a Monday so every roster fixture below is on shift.
const testDate = "2026-09-07"

func facialService() catalogModel.Service {
	return catalogModel.Service{
		ID:              "svc-facial",
		Name:            "Classic Facial",
		Category:        "facial",
		PriceCents:      9500,
		DurationMinutes: 60,
		Active:          true,
	}
}

func massageService() catalogModel.Service {
	return catalogModel.Service{
		ID:              "svc-massage",
		Name:            "Deep Tissue Massage",
		Category:        "massage",
		PriceCents:      12000,
		DurationMinutes: 60,
		Active:          true,
	}
}

func roster() []staffModel.Staff {
	return []staffModel.Staff{
		{
			ID:            "staff-ana",
			Name:          "Ana",
			Capabilities:  pq.StringArray{"facial", "waxing"},
			WorkDays:      pq.Int64Array{0, 1, 2, 3, 4, 5, 6},
			DefaultRoomID: sql.NullInt64{Int64: 1, Valid: true},
			Active:        true,
		},
		{
			ID:           "staff-miko",
			Name:         "Miko",
			Capabilities: pq.StringArray{"massage", "body_treatment"},
			WorkDays:     pq.Int64Array{0, 1, 2, 3, 4, 5, 6},
			Active:       true,
		},
	}
}

func rooms() []roomModel.Room {
	return []roomModel.Room{
		{ID: 1, Name: "Room 1", Capacity: 1, Capabilities: pq.StringArray{"facial", "massage", "waxing"}, Active: true},
		{ID: 2, Name: "Room 2", Capacity: 2, Capabilities: pq.StringArray{"facial", "massage", "body_treatment"}, Active: true},
		{ID: 3, Name: "Room 3", Capacity: 2, Capabilities: pq.StringArray{"facial", "massage", "body_scrub"}, Active: true},
	}
}

type bookingServiceMocks struct {
	repo     *bookingMocks.MockBooking
	services *catalogMocks.MockService
	staff    *staffMocks.MockStaff
	rooms    *roomMocks.MockRoom
	cache    *cacheMocks.MockRedisCache
	kafka    *kafkaMocks.MockClient
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingServiceMocks) {
	m := bookingServiceMocks{
		repo:     bookingMocks.NewMockBooking(ctrl),
		services: catalogMocks.NewMockService(ctrl),
		staff:    staffMocks.NewMockStaff(ctrl),
		rooms:    roomMocks.NewMockRoom(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 300
	cfg.Kafka.Topics.BookingEvents = "spa.booking.events"

	svc := service.New(
		m.repo,
		m.services,
		m.staff,
		m.rooms,
		scheduling.NewEngine(scheduling.DefaultConfig()),
		lock.NewKeyed(),
		cfg,
		m.cache,
		m.kafka,
		mocks.NewOtel(),
	)

	return svc, m
}

// allowAsync tolerates the fire-and-forget cache and event goroutines, which
// may or may not land before the test returns.
func allowAsync(m bookingServiceMocks) {
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)
	allowAsync(m)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "guest")

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		check     func(t *testing.T, res dto.CreateBookingResponse)
	}{
		{
			name: "successful single booking",
			req: dto.CreateBookingRequest{
				Date:      testDate,
				StartTime: "10:00",
				GuestName: "Leilani",
				Primary:   dto.GuestSelection{ServiceID: "svc-facial", StaffID: "staff-ana"},
			},
			setupMock: func() {
				m.services.EXPECT().GetByID(gomock.Any(), "svc-facial").Return(facialService(), nil)
				m.staff.EXPECT().GetActive(gomock.Any()).Return(roster(), nil)
				m.rooms.EXPECT().GetActive(gomock.Any()).Return(rooms(), nil)
				m.repo.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return([]model.Appointment{}, nil)
				m.repo.EXPECT().InsertGroup(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, res dto.CreateBookingResponse) {
				assert.Equal(t, testDate, res.Date)
				assert.Equal(t, int64(1), res.RoomID)
				assert.Empty(t, res.BookingGroupID)
				assert.Len(t, res.Members, 1)
				assert.Equal(t, "10:00", res.Members[0].StartTime)
				assert.Equal(t, "11:00", res.Members[0].EndTime)
				assert.Equal(t, "staff-ana", res.Members[0].StaffID)
			},
		},
		{
			name: "couples booking shares one room",
			req: dto.CreateBookingRequest{
				Date:      testDate,
				StartTime: "11:00",
				PartySize: 2,
				GuestName: "Leilani",
				Primary:   dto.GuestSelection{ServiceID: "svc-facial", StaffID: "staff-ana"},
				Secondary: &dto.GuestSelection{ServiceID: "svc-massage", StaffID: "staff-miko"},
			},
			setupMock: func() {
				m.services.EXPECT().GetByID(gomock.Any(), "svc-facial").Return(facialService(), nil)
				m.services.EXPECT().GetByID(gomock.Any(), "svc-massage").Return(massageService(), nil)
				m.staff.EXPECT().GetActive(gomock.Any()).Return(roster(), nil)
				m.rooms.EXPECT().GetActive(gomock.Any()).Return(rooms(), nil)
				m.repo.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return([]model.Appointment{}, nil)
				m.repo.EXPECT().InsertGroup(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, res dto.CreateBookingResponse) {
				assert.Equal(t, int64(3), res.RoomID)
				assert.NotEmpty(t, res.BookingGroupID)
				assert.Len(t, res.Members, 2)
			},
		},
		{
			name: "unknown service",
			req: dto.CreateBookingRequest{
				Date:      testDate,
				StartTime: "10:00",
				GuestName: "Leilani",
				Primary:   dto.GuestSelection{ServiceID: "svc-missing", StaffID: "staff-ana"},
			},
			setupMock: func() {
				m.services.EXPECT().GetByID(gomock.Any(), "svc-missing").Return(catalogModel.Service{}, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "engine rejects unqualified staff",
			req: dto.CreateBookingRequest{
				Date:      testDate,
				StartTime: "10:00",
				GuestName: "Leilani",
				Primary:   dto.GuestSelection{ServiceID: "svc-massage", StaffID: "staff-ana"},
			},
			setupMock: func() {
				m.services.EXPECT().GetByID(gomock.Any(), "svc-massage").Return(massageService(), nil)
				m.staff.EXPECT().GetActive(gomock.Any()).Return(roster(), nil)
				m.rooms.EXPECT().GetActive(gomock.Any()).Return(rooms(), nil)
				m.repo.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return([]model.Appointment{}, nil)
			},
			wantErr:  true,
			wantCode: 422,
		},
		{
			name: "slot taken between validate and insert",
			req: dto.CreateBookingRequest{
				Date:      testDate,
				StartTime: "14:00",
				GuestName: "Leilani",
				Primary:   dto.GuestSelection{ServiceID: "svc-facial", StaffID: "staff-ana"},
			},
			setupMock: func() {
				m.services.EXPECT().GetByID(gomock.Any(), "svc-facial").Return(facialService(), nil)
				m.staff.EXPECT().GetActive(gomock.Any()).Return(roster(), nil)
				m.rooms.EXPECT().GetActive(gomock.Any()).Return(rooms(), nil)
				m.repo.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return([]model.Appointment{}, nil)
				m.repo.EXPECT().
					InsertGroup(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("failed to insert appointments: %w", repository.ErrSlotTaken))
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestBookingService_Availability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)
	allowAsync(m)

	ctx := context.Background()

	t.Run("empty day lists every slot", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-facial").Return(facialService(), nil)
		m.staff.EXPECT().GetActive(gomock.Any()).Return(roster(), nil)
		m.rooms.EXPECT().GetActive(gomock.Any()).Return(rooms(), nil)
		m.repo.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return([]model.Appointment{}, nil)

		res, err := svc.Availability(ctx, "svc-facial", testDate)

		assert.NoError(t, err)
		assert.Equal(t, "svc-facial", res.ServiceID)
		assert.Equal(t, testDate, res.Date)
		// 09:00 through 17:45 at 15-minute steps, so a 60-minute service plus
		// the buffer still ends by close.
		assert.Len(t, res.Slots, 36)
		assert.Equal(t, "09:00", res.Slots[0])
		assert.Equal(t, "17:45", res.Slots[len(res.Slots)-1])
	})

	t.Run("booked interval drops its slots", func(t *testing.T) {
		booked := model.Appointment{
			ID:          "appt-1",
			ServiceID:   "svc-facial",
			StaffID:     "staff-ana",
			RoomID:      1,
			BookingDate: mustParseDate(t, testDate),
			StartTime:   "10:00",
			EndTime:     "11:00",
			Status:      "confirmed",
		}

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-facial").Return(facialService(), nil)
		m.staff.EXPECT().GetActive(gomock.Any()).Return(roster(), nil)
		m.rooms.EXPECT().GetActive(gomock.Any()).Return(rooms(), nil)
		m.repo.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return([]model.Appointment{booked}, nil)

		res, err := svc.Availability(ctx, "svc-facial", testDate)

		assert.NoError(t, err)
		assert.NotContains(t, res.Slots, "10:00")
		assert.NotContains(t, res.Slots, "10:30")
		// 11:00 collides with the trailing buffer of the 10:00 booking.
		assert.NotContains(t, res.Slots, "11:00")
		assert.Contains(t, res.Slots, "11:15")
	})

	t.Run("cache hit skips the snapshot", func(t *testing.T) {
		cached := dto.AvailabilityResponse{ServiceID: "svc-facial", Date: testDate, Slots: []string{"09:00"}}

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*dto.AvailabilityResponse) = cached

				return nil
			})

		res, err := svc.Availability(ctx, "svc-facial", testDate)

		assert.NoError(t, err)
		assert.Equal(t, cached, res)
	})

	t.Run("invalid date", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)

		_, err := svc.Availability(ctx, "svc-facial", "07-09-2026")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)
	allowAsync(m)

	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		appt := model.Appointment{
			ID:          "appt-1",
			ServiceID:   "svc-facial",
			StaffID:     "staff-ana",
			RoomID:      1,
			GuestName:   "Leilani",
			BookingDate: mustParseDate(t, testDate),
			StartTime:   "10:00",
			EndTime:     "11:00",
			Status:      "confirmed",
		}

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(appt, nil)

		res, err := svc.Get(ctx, "appt-1")

		assert.NoError(t, err)
		assert.Equal(t, "appt-1", res.ID)
		assert.Equal(t, testDate, res.Date)
	})

	t.Run("not found", func(t *testing.T) {
		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "appt-missing").Return(model.Appointment{}, nil)

		_, err := svc.Get(ctx, "appt-missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)
	allowAsync(m)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	confirmed := func(id string, groupID sql.NullString) model.Appointment {
		return model.Appointment{
			ID:             id,
			ServiceID:      "svc-facial",
			StaffID:        "staff-ana",
			RoomID:         1,
			BookingDate:    mustParseDate(t, testDate),
			StartTime:      "10:00",
			EndTime:        "11:00",
			Status:         "confirmed",
			BookingGroupID: groupID,
		}
	}

	t.Run("cancels a single booking", func(t *testing.T) {
		m.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(confirmed("appt-1", sql.NullString{}), nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), []string{"appt-1"}, "cancelled", "admin-1").Return(nil)

		err := svc.UpdateStatus(ctx, "appt-1", dto.UpdateBookingStatusRequest{Status: "cancelled"})

		assert.NoError(t, err)
	})

	t.Run("cancels every member of a couples group", func(t *testing.T) {
		group := sql.NullString{String: "group-1", Valid: true}

		m.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(confirmed("appt-1", group), nil)
		m.repo.EXPECT().
			GetByGroup(gomock.Any(), "group-1").
			Return([]model.Appointment{confirmed("appt-1", group), confirmed("appt-2", group)}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), []string{"appt-1", "appt-2"}, "cancelled", "admin-1").Return(nil)

		err := svc.UpdateStatus(ctx, "appt-1", dto.UpdateBookingStatusRequest{Status: "cancelled"})

		assert.NoError(t, err)
	})

	t.Run("booking not found", func(t *testing.T) {
		m.repo.EXPECT().GetByID(gomock.Any(), "appt-missing").Return(model.Appointment{}, nil)

		err := svc.UpdateStatus(ctx, "appt-missing", dto.UpdateBookingStatusRequest{Status: "cancelled"})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("rejects a second transition", func(t *testing.T) {
		appt := confirmed("appt-1", sql.NullString{})
		appt.Status = "cancelled"

		m.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(appt, nil)

		err := svc.UpdateStatus(ctx, "appt-1", dto.UpdateBookingStatusRequest{Status: "completed"})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(constant.BookingDateFmt, value)
	assert.NoError(t, err)

	return parsed
}
