package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"aperture/config"
	"aperture/infras/otel/mocks"
	s3Mocks "aperture/infras/s3/mocks"
	"aperture/internal/domains/admin/model"
	"aperture/internal/domains/admin/model/dto"
	"aperture/internal/domains/admin/service"
	inquiryDto "aperture/internal/domains/inquiry/model/dto"
	inquiryServiceMocks "aperture/internal/domains/inquiry/service/mocks"
	mediaDto "aperture/internal/domains/media/model/dto"
	mediaModel "aperture/internal/domains/media/model"
	mediaServiceMocks "aperture/internal/domains/media/service/mocks"
	offeringDto "aperture/internal/domains/offering/model/dto"
	offeringServiceMocks "aperture/internal/domains/offering/service/mocks"
	"aperture/shared/cache"
	cacheMocks "aperture/shared/cache/mocks"
	gDto "aperture/shared/dto"
	"aperture/shared/failure"
)

type adminMocks struct {
	media    *mediaServiceMocks.MockMedia
	offering *offeringServiceMocks.MockOffering
	inquiry  *inquiryServiceMocks.MockInquiry
	cache    *cacheMocks.MockRedisCache
	s3       *s3Mocks.MockS3
}

func newAdminService(ctrl *gomock.Controller) (service.Admin, adminMocks) {
	m := adminMocks{
		media:    mediaServiceMocks.NewMockMedia(ctrl),
		offering: offeringServiceMocks.NewMockOffering(ctrl),
		inquiry:  inquiryServiceMocks.NewMockInquiry(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.ImageBucket = "gallery-images"
	cfg.External.S3.VideoBucket = "gallery-videos"

	svc := service.New(m.media, m.offering, m.inquiry, cfg, m.cache, mocks.NewOtel(), m.s3)

	return svc, m
}

func fileInput(name, contentType string) dto.FileInput {
	return dto.FileInput{
		Header: &multipart.FileHeader{
			Filename: name,
			Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
		},
	}
}

func TestAdminService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAdminService(ctrl)

	params := gDto.QueryParams{Limit: 10, Page: 1}

	tests := []struct {
		name      string
		tab       model.Tab
		setupMock func()
		wantErr   bool
	}{
		{
			name: "stills resolves to gallery with image filter",
			tab:  model.TabStills,
			setupMock: func() {
				m.media.EXPECT().
					GetAll(gomock.Any(), params, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (mediaDto.GetMediaResponse, error) {
						if assert.Len(t, filter.Filters, 1) {
							f, ok := filter.Filters[0].(gDto.Filter)
							assert.True(t, ok)
							assert.Equal(t, mediaModel.FieldType, f.Field)
							assert.Equal(t, mediaModel.TypeImage, f.Value)
						}

						return mediaDto.GetMediaResponse{}, nil
					})
			},
		},
		{
			name: "cinema resolves to gallery with video filter",
			tab:  model.TabCinema,
			setupMock: func() {
				m.media.EXPECT().
					GetAll(gomock.Any(), params, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (mediaDto.GetMediaResponse, error) {
						if assert.Len(t, filter.Filters, 1) {
							f, ok := filter.Filters[0].(gDto.Filter)
							assert.True(t, ok)
							assert.Equal(t, mediaModel.TypeVideo, f.Value)
						}

						return mediaDto.GetMediaResponse{}, nil
					})
			},
		},
		{
			name: "packages maps one to one",
			tab:  model.TabPackages,
			setupMock: func() {
				m.offering.EXPECT().
					GetAll(gomock.Any(), params, gDto.FilterGroup{}).
					Return(offeringDto.GetPackagesResponse{}, nil)
			},
		},
		{
			name: "inquiries maps one to one",
			tab:  model.TabInquiries,
			setupMock: func() {
				m.inquiry.EXPECT().
					GetAll(gomock.Any(), params, gDto.FilterGroup{}).
					Return(inquiryDto.GetInquiriesResponse{}, nil)
			},
		},
		{
			name:      "unknown tab rejected",
			tab:       model.Tab("projects"),
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.List(context.Background(), tt.tab, params)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdminService_SaveMedia_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAdminService(ctrl)

	tests := []struct {
		name      string
		tab       model.Tab
		draft     dto.MediaDraft
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "still with file uploads to the image bucket",
			tab:  model.TabStills,
			draft: dto.MediaDraft{
				Title:    "ceremony",
				Category: "Weddings",
				File:     ptr(fileInput("ceremony.jpg", "image/jpeg")),
			},
			setupMock: func() {
				m.s3.EXPECT().
					UploadFile(gomock.Any(), "gallery-images", gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/gallery-images/1-a.jpg", nil)

				m.media.EXPECT().
					Create(gomock.Any(), mediaDto.CreateMediaRequest{
						URL:      "https://cdn.example.com/gallery-images/1-a.jpg",
						Type:     mediaModel.TypeImage,
						Category: "Weddings",
						Title:    "ceremony",
					}).
					Return(nil)
			},
		},
		{
			name: "cinema with embed markup extracts the permalink",
			tab:  model.TabCinema,
			draft: dto.MediaDraft{
				Title:     "teaser",
				Category:  "Weddings",
				VideoLink: `<blockquote class="instagram-media" data-instgrm-permalink="https://www.instagram.com/reel/ABC123/?utm_source=ig_embed" data-instgrm-version="14"></blockquote>`,
				Cover:     ptr(fileInput("teaser-cover.jpg", "image/jpeg")),
			},
			setupMock: func() {
				m.s3.EXPECT().
					UploadFile(gomock.Any(), "gallery-images", gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/gallery-images/1-cover.jpg", nil)

				m.media.EXPECT().
					Create(gomock.Any(), mediaDto.CreateMediaRequest{
						URL:          "https://www.instagram.com/reel/ABC123/",
						Type:         mediaModel.TypeVideo,
						Category:     "Weddings",
						Title:        "teaser",
						ThumbnailURL: "https://cdn.example.com/gallery-images/1-cover.jpg",
					}).
					Return(nil)
			},
		},
		{
			name: "cinema file uploads to the video bucket",
			tab:  model.TabCinema,
			draft: dto.MediaDraft{
				Title: "highlight film",
				File:  ptr(fileInput("film.mp4", "video/mp4")),
			},
			setupMock: func() {
				m.s3.EXPECT().
					UploadFile(gomock.Any(), "gallery-videos", gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/gallery-videos/1-film.mp4", nil)

				m.media.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "create without url fails before any insert",
			tab:  model.TabStills,
			draft: dto.MediaDraft{
				Title: "missing file",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "upload failure aborts the save",
			tab:  model.TabStills,
			draft: dto.MediaDraft{
				File: ptr(fileInput("broken.jpg", "image/jpeg")),
			},
			setupMock: func() {
				m.s3.EXPECT().
					UploadFile(gomock.Any(), "gallery-images", gomock.Any(), gomock.Any()).
					Return("", errors.New("storage unavailable"))
			},
			wantErr:  true,
			wantCode: http.StatusBadGateway,
		},
		{
			name: "still with unsupported mimetype never uploads",
			tab:  model.TabStills,
			draft: dto.MediaDraft{
				Title: "not an image",
				File:  ptr(fileInput("payload.exe", "application/x-msdownload")),
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "cinema file with image mimetype rejected",
			tab:  model.TabCinema,
			draft: dto.MediaDraft{
				Title: "wrong kind",
				File:  ptr(fileInput("poster.jpg", "image/jpeg")),
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "oversized cover rejected",
			tab:  model.TabStills,
			draft: dto.MediaDraft{
				File: ptr(fileInput("ceremony.jpg", "image/jpeg")),
				Cover: &dto.FileInput{
					Header: &multipart.FileHeader{
						Filename: "cover.jpg",
						Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
						Size:     30 * 1024 * 1024,
					},
				},
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "non-media tab rejected",
			tab:       model.TabPackages,
			draft:     dto.MediaDraft{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.SaveMedia(context.Background(), tt.tab, tt.draft)

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

func TestAdminService_SaveMedia_EditRetainsStoredURLs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAdminService(ctrl)

	draft := dto.MediaDraft{
		ID:       "existing-id",
		Title:    "renamed",
		Category: "Portraits",
	}

	m.media.EXPECT().
		Update(gomock.Any(), mediaDto.UpdateMediaRequest{
			Title:    ptr("renamed"),
			Category: ptr("Portraits"),
		}, "existing-id").
		Return(nil)

	err := svc.SaveMedia(context.Background(), model.TabStills, draft)
	assert.NoError(t, err)
}

func TestAdminService_SaveMedia_EditClearsEmptiedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAdminService(ctrl)

	draft := dto.MediaDraft{
		ID:    "existing-id",
		Title: "renamed",
	}

	m.media.EXPECT().
		Update(gomock.Any(), gomock.Any(), "existing-id").
		DoAndReturn(func(_ context.Context, req mediaDto.UpdateMediaRequest, _ string) error {
			if assert.NotNil(t, req.Category) {
				assert.Empty(t, *req.Category)
			}

			assert.Empty(t, req.URL)

			return nil
		})

	err := svc.SaveMedia(context.Background(), model.TabStills, draft)
	assert.NoError(t, err)
}

func TestAdminService_SavePackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAdminService(ctrl)

	tests := []struct {
		name      string
		draft     dto.PackageDraft
		setupMock func()
		wantErr   bool
	}{
		{
			name: "create coerces form values",
			draft: dto.PackageDraft{
				Name:         "Wedding Classic",
				Deliverables: "A\nB\n\nC",
				IsPopular:    "on",
			},
			setupMock: func() {
				m.offering.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req offeringDto.CreatePackageRequest) error {
						assert.Equal(t, []string{"A", "B", "C"}, req.Deliverables)
						assert.True(t, req.IsPopular)

						return nil
					})
			},
		},
		{
			name: "edit dispatches an update",
			draft: dto.PackageDraft{
				ID:   "existing-id",
				Name: "Wedding Premium",
			},
			setupMock: func() {
				m.offering.EXPECT().
					Update(gomock.Any(), gomock.Any(), "existing-id").
					Return(nil)
			},
		},
		{
			name: "store failure surfaces as-is",
			draft: dto.PackageDraft{
				Name: "Wedding Classic",
			},
			setupMock: func() {
				m.offering.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.SavePackage(context.Background(), tt.draft)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdminService_DeleteRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAdminService(ctrl)

	tests := []struct {
		name      string
		tab       model.Tab
		setupMock func()
		wantErr   bool
	}{
		{
			name: "stills delete goes to the media domain",
			tab:  model.TabStills,
			setupMock: func() {
				m.media.EXPECT().Delete(gomock.Any(), "record-id").Return(nil)
			},
		},
		{
			name: "packages delete goes to the offering domain",
			tab:  model.TabPackages,
			setupMock: func() {
				m.offering.EXPECT().Delete(gomock.Any(), "record-id").Return(nil)
			},
		},
		{
			name: "inquiries delete goes to the inquiry domain",
			tab:  model.TabInquiries,
			setupMock: func() {
				m.inquiry.EXPECT().Delete(gomock.Any(), "record-id").Return(nil)
			},
		},
		{
			name:      "unknown tab rejected",
			tab:       model.Tab("projects"),
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.DeleteRecord(context.Background(), tt.tab, "record-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdminService_BulkIngest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAdminService(ctrl)

	req := dto.BulkIngestRequest{
		BatchID:  "batch-1",
		Category: "Rituals",
		Files: []dto.FileInput{
			fileInput("haldi.raw.jpg", "image/jpeg"),
			fileInput("mehendi.jpg", "image/jpeg"),
			fileInput("sangeet.jpg", "image/png"),
		},
	}

	progressKey := "bulk:progress:batch-1"

	uploads := []any{
		m.s3.EXPECT().
			UploadFile(gomock.Any(), "gallery-images", gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/gallery-images/1-a.jpg", nil),
		m.cache.EXPECT().
			Save(gomock.Any(), progressKey, 33, gomock.Any()).
			Return(nil),
		m.s3.EXPECT().
			UploadFile(gomock.Any(), "gallery-images", gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/gallery-images/1-b.jpg", nil),
		m.cache.EXPECT().
			Save(gomock.Any(), progressKey, 67, gomock.Any()).
			Return(nil),
		m.s3.EXPECT().
			UploadFile(gomock.Any(), "gallery-images", gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/gallery-images/1-c.jpg", nil),
		m.cache.EXPECT().
			Save(gomock.Any(), progressKey, 100, gomock.Any()).
			Return(nil),
	}
	gomock.InOrder(uploads...)

	m.media.EXPECT().
		CreateBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entries []mediaDto.CreateMediaRequest) error {
			if assert.Len(t, entries, 3) {
				assert.Equal(t, "haldi", entries[0].Title)
				assert.Equal(t, "mehendi", entries[1].Title)
				assert.Equal(t, "sangeet", entries[2].Title)

				for _, entry := range entries {
					assert.Equal(t, "Rituals", entry.Category)
					assert.Equal(t, mediaModel.TypeImage, entry.Type)
				}
			}

			return nil
		})

	m.cache.EXPECT().
		Delete(gomock.Any(), progressKey).
		Return(nil)

	err := svc.BulkIngest(context.Background(), req)
	assert.NoError(t, err)
}

func TestAdminService_BulkIngest_AbortsOnUploadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAdminService(ctrl)

	req := dto.BulkIngestRequest{
		BatchID: "batch-2",
		Files: []dto.FileInput{
			fileInput("one.jpg", "image/jpeg"),
			fileInput("two.jpg", "image/jpeg"),
			fileInput("three.jpg", "image/jpeg"),
		},
	}

	progressKey := "bulk:progress:batch-2"

	gomock.InOrder(
		m.s3.EXPECT().
			UploadFile(gomock.Any(), "gallery-images", gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/gallery-images/1-a.jpg", nil),
		m.cache.EXPECT().
			Save(gomock.Any(), progressKey, 33, gomock.Any()).
			Return(nil),
		m.s3.EXPECT().
			UploadFile(gomock.Any(), "gallery-images", gomock.Any(), gomock.Any()).
			Return("", errors.New("storage unavailable")),
		m.cache.EXPECT().
			Delete(gomock.Any(), progressKey).
			Return(nil),
	)

	err := svc.BulkIngest(context.Background(), req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}

func TestAdminService_BulkIngest_RejectsUnsupportedMimetype(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newAdminService(ctrl)

	req := dto.BulkIngestRequest{
		BatchID: "batch-4",
		Files: []dto.FileInput{
			fileInput("one.jpg", "image/jpeg"),
			fileInput("contract.pdf", "application/pdf"),
		},
	}

	err := svc.BulkIngest(context.Background(), req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestAdminService_BulkIngest_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newAdminService(ctrl)

	err := svc.BulkIngest(context.Background(), dto.BulkIngestRequest{BatchID: "batch-3"})

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestAdminService_BulkProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAdminService(ctrl)

	tests := []struct {
		name         string
		batchID      string
		setupMock    func()
		wantErr      bool
		wantCode     int
		wantProgress int
	}{
		{
			name:    "active batch returns its progress",
			batchID: "batch-1",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), "bulk:progress:batch-1", gomock.Any()).
					SetArg(2, 67).
					Return(nil)
			},
			wantProgress: 67,
		},
		{
			name:    "unknown batch is not found",
			batchID: "batch-9",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), "bulk:progress:batch-9", gomock.Any()).
					Return(cache.Nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.BulkProgress(context.Background(), tt.batchID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantProgress, res.Progress)
				assert.Equal(t, tt.batchID, res.BatchID)
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
