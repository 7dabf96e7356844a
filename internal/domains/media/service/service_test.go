package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"aperture/config"
	"aperture/infras/otel/mocks"
	s3Mocks "aperture/infras/s3/mocks"
	mediaMocks "aperture/internal/domains/media/mocks"
	"aperture/internal/domains/media/model"
	"aperture/internal/domains/media/model/dto"
	"aperture/internal/domains/media/service"
	cacheMocks "aperture/shared/cache/mocks"
	gDto "aperture/shared/dto"
	"aperture/shared/failure"
	gModel "aperture/shared/model"
	"aperture/shared/timezone"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.ImageBucket = "gallery-images"
	cfg.External.S3.VideoBucket = "gallery-videos"

	return cfg
}

func TestMediaService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mediaMocks.NewMockMedia(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel, mockS3)

	tests := []struct {
		name      string
		req       dto.CreateMediaRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateMediaRequest{
				URL:      "https://cdn.example.com/gallery-images/1-abc.jpg",
				Type:     model.TypeImage,
				Category: "Weddings",
				Title:    "ceremony",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateMediaRequest{
				URL:  "https://cdn.example.com/gallery-images/1-abc.jpg",
				Type: model.TypeImage,
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

			err := svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMediaService_CreateBulk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mediaMocks.NewMockMedia(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel, mockS3)

	tests := []struct {
		name      string
		reqs      []dto.CreateMediaRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "single insert call for the whole batch",
			reqs: []dto.CreateMediaRequest{
				{URL: "https://cdn.example.com/gallery-images/1-a.jpg", Type: model.TypeImage, Category: "Rituals", Title: "haldi"},
				{URL: "https://cdn.example.com/gallery-images/1-b.jpg", Type: model.TypeImage, Category: "Rituals", Title: "mehendi"},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Len(2)).
					Return(nil).
					Times(1)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "empty batch rejected",
			reqs:      []dto.CreateMediaRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "store error surfaces",
			reqs: []dto.CreateMediaRequest{
				{URL: "https://cdn.example.com/gallery-images/1-a.jpg", Type: model.TypeImage},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.CreateBulk(context.Background(), tt.reqs)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMediaService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mediaMocks.NewMockMedia(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel, mockS3)

	tests := []struct {
		name       string
		params     gDto.QueryParams
		filter     gDto.FilterGroup
		setupMock  func()
		wantErr    bool
		wantResult dto.GetMediaResponse
	}{
		{
			name: "successful get all",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				media := []model.Media{
					{
						ID:       "test-id",
						URL:      "https://cdn.example.com/gallery-images/1-a.jpg",
						Type:     model.TypeImage,
						Category: "Portraits",
						Title:    "studio",
						Metadata: gModel.Metadata{
							CreatedAt:  timezone.Now(),
							ModifiedAt: timezone.Now(),
						},
					},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(media, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantResult: dto.GetMediaResponse{
				TotalData: 1,
				TotalPage: 1,
			},
		},
		{
			name: "count error is returned, not an empty list",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background(), tt.params, tt.filter)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult.TotalData, result.TotalData)
				assert.Equal(t, tt.wantResult.TotalPage, result.TotalPage)
			}
		})
	}
}

func TestMediaService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mediaMocks.NewMockMedia(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel, mockS3)

	tests := []struct {
		name      string
		req       dto.UpdateMediaRequest
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req: dto.UpdateMediaRequest{
				Title:    ptr("updated title"),
				Category: ptr("Other"),
			},
			id: "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "media not found",
			req: dto.UpdateMediaRequest{
				Title: ptr("updated title"),
			},
			id: "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMediaService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mediaMocks.NewMockMedia(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockS3 := s3Mocks.NewMockS3(ctrl)

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel, mockS3)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion removes stored blobs",
			id:   "test-id",
			setupMock: func() {
				media := model.Media{
					ID:           "test-id",
					URL:          "https://cdn.example.com/gallery-images/1-a.jpg",
					Type:         model.TypeImage,
					ThumbnailURL: "https://cdn.example.com/gallery-images/1-b.jpg",
				}

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(media, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockS3.EXPECT().
					GetObjectNameFromURL("gallery-images", media.URL).
					Return("1-a.jpg")

				mockS3.EXPECT().
					DeleteFile(gomock.Any(), "gallery-images", "1-a.jpg").
					Return(nil)

				mockS3.EXPECT().
					GetObjectNameFromURL("gallery-images", media.ThumbnailURL).
					Return("1-b.jpg")

				mockS3.EXPECT().
					DeleteFile(gomock.Any(), "gallery-images", "1-b.jpg").
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "media not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Media{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), tt.id)

			time.Sleep(50 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
