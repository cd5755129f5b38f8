package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Ayy-man/spa-booking-v2-sub002/config"
	"github.com/Ayy-man/spa-booking-v2-sub002/infras/otel/mocks"
	catalogMocks "github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/catalog/mocks"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/catalog/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/catalog/model/dto"
	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/catalog/service"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/cache"
	cacheMocks "github.com/Ayy-man/spa-booking-v2-sub002/shared/cache/mocks"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/constant"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/failure"
	gDto "github.com/Ayy-man/spa-booking-v2-sub002/shared/dto"
)

func newCatalogService(ctrl *gomock.Controller) (service.Catalog, *catalogMocks.MockService, *cacheMocks.MockRedisCache) {
	mockRepo := catalogMocks.NewMockService(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	// The invalidation goroutines may or may not land before a test returns.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestCatalogService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newCatalogService(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	tests := []struct {
		name      string
		req       dto.CreateServiceRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateServiceRequest{
				Name:            "Classic Facial",
				Category:        "facial",
				PriceCents:      9500,
				DurationMinutes: 60,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, svc model.Service) error {
						assert.Equal(t, "Classic Facial", svc.Name)
						assert.True(t, svc.Active)
						assert.Equal(t, "admin-1", svc.CreatedBy)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateServiceRequest{
				Name:            "Classic Facial",
				Category:        "facial",
				PriceCents:      9500,
				DurationMinutes: 60,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newCatalogService(ctrl)

	ctx := context.Background()
	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("cache miss loads from repository", func(t *testing.T) {
		services := []model.Service{
			{ID: "svc-1", Name: "Classic Facial", Category: "facial", Active: true},
			{ID: "svc-2", Name: "Deep Tissue Massage", Category: "massage", Active: true},
		}

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().Count(gomock.Any(), true).Return(2, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), params, true).Return(services, nil)

		res, err := svc.GetAll(ctx, params, true)

		assert.NoError(t, err)
		assert.Len(t, res.Services, 2)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		cached := dto.GetServicesResponse{TotalData: 1, TotalPage: 1}
		cached.Services = []dto.ServiceResponse{{ID: "svc-1", Name: "Classic Facial"}}

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*dto.GetServicesResponse) = cached

				return nil
			})

		res, err := svc.GetAll(ctx, params, true)

		assert.NoError(t, err)
		assert.Equal(t, cached, res)
	})

	t.Run("repository error", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().Count(gomock.Any(), false).Return(0, errors.New("database error"))

		_, err := svc.GetAll(ctx, params, false)

		assert.Error(t, err)
	})
}

func TestCatalogService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newCatalogService(ctrl)

	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().
			GetByID(gomock.Any(), "svc-1").
			Return(model.Service{ID: "svc-1", Name: "Classic Facial", Category: "facial", Active: true}, nil)

		res, err := svc.Get(ctx, "svc-1")

		assert.NoError(t, err)
		assert.Equal(t, "svc-1", res.ID)
		assert.Equal(t, "facial", res.Category)
	})

	t.Run("not found", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().GetByID(gomock.Any(), "svc-missing").Return(model.Service{}, nil)

		_, err := svc.Get(ctx, "svc-missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestCatalogService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newCatalogService(ctrl)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	price := 10500

	t.Run("successful update", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), "svc-1").Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), "svc-1").
			DoAndReturn(func(_ context.Context, fields map[string]any, _ string) error {
				assert.Equal(t, &price, fields["price_cents"])
				assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

				return nil
			})

		err := svc.Update(ctx, dto.UpdateServiceRequest{PriceCents: &price}, "svc-1")

		assert.NoError(t, err)
	})

	t.Run("empty update request", func(t *testing.T) {
		err := svc.Update(ctx, dto.UpdateServiceRequest{}, "svc-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("service not found", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), "svc-missing").Return(false, nil)

		err := svc.Update(ctx, dto.UpdateServiceRequest{PriceCents: &price}, "svc-missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestCatalogService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newCatalogService(ctrl)

	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), "svc-1").Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), "svc-1").Return(nil)

		err := svc.Delete(ctx, "svc-1")

		assert.NoError(t, err)
	})

	t.Run("service not found", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), "svc-missing").Return(false, nil)

		err := svc.Delete(ctx, "svc-missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
