package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math"

	"aperture/config"
	"aperture/infras/otel"
	"aperture/infras/s3"
	"aperture/internal/domains/admin/model"
	"aperture/internal/domains/admin/model/dto"
	inquiryService "aperture/internal/domains/inquiry/service"
	mediaDto "aperture/internal/domains/media/model/dto"
	mediaModel "aperture/internal/domains/media/model"
	mediaService "aperture/internal/domains/media/service"
	offeringService "aperture/internal/domains/offering/service"
	"aperture/shared"
	"aperture/shared/cache"
	"aperture/shared/constant"
	gDto "aperture/shared/dto"
	"aperture/shared/failure"
	"aperture/shared/instagram"
	"aperture/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheBulkProgress = "bulk:progress"
)

type Admin interface {
	List(ctx context.Context, tab model.Tab, params gDto.QueryParams) (any, error)
	SaveMedia(ctx context.Context, tab model.Tab, draft dto.MediaDraft) error
	SavePackage(ctx context.Context, draft dto.PackageDraft) error
	DeleteRecord(ctx context.Context, tab model.Tab, id string) error
	BulkIngest(ctx context.Context, req dto.BulkIngestRequest) error
	BulkProgress(ctx context.Context, batchID string) (dto.BulkProgressResponse, error)
}

type serviceImpl struct {
	media    mediaService.Media
	offering offeringService.Offering
	inquiry  inquiryService.Inquiry
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
}

func New(
	media mediaService.Media,
	offering offeringService.Offering,
	inquiry inquiryService.Inquiry,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Admin {
	return &serviceImpl{
		media:    media,
		offering: offering,
		inquiry:  inquiry,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
	}
}

// List resolves the tab to its backing table and returns the section's
// records with the section's default ordering.
func (s *serviceImpl) List(ctx context.Context, tab model.Tab, params gDto.QueryParams) (res any, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	switch tab {
	case model.TabStills, model.TabCinema:
		filter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    mediaModel.FieldType,
					Operator: gDto.FilterOperatorEq,
					Value:    tab.MediaType(),
					Table:    mediaModel.TableName,
				},
			},
		}

		return s.media.GetAll(ctx, params, filter)
	case model.TabPackages:
		return s.offering.GetAll(ctx, params, gDto.FilterGroup{})
	case model.TabInquiries:
		return s.inquiry.GetAll(ctx, params, gDto.FilterGroup{})
	default:
		return nil, failure.Validation("unknown tab: " + string(tab))
	}
}

// SaveMedia uploads any submitted files, then creates or patches the record.
// On edit, fields without a replacement keep their stored values. File handles
// never reach the store layer.
func (s *serviceImpl) SaveMedia(ctx context.Context, tab model.Tab, draft dto.MediaDraft) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SaveMedia")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !tab.IsMedia() {
		return failure.Validation("tab does not hold media records: " + string(tab))
	}

	if err = s.validateUploads(tab, draft); err != nil {
		return err
	}

	url := constant.Empty
	thumbnail := constant.Empty

	if draft.Cover != nil {
		thumbnail, err = s.s3.UploadFile(ctx, s.cfg.External.S3.ImageBucket, draft.Cover.File, draft.Cover.Header)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload cover file")

			return failure.Upload(err)
		}
	}

	switch {
	case tab == model.TabCinema && draft.VideoLink != constant.Empty:
		url = instagram.ExtractPermalink(draft.VideoLink)
	case draft.File != nil:
		url, err = s.s3.UploadFile(ctx, s.bucketFor(tab), draft.File.File, draft.File.Header)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload media file")

			return failure.Upload(err)
		}
	}

	if draft.ID != constant.Empty {
		req := mediaDto.UpdateMediaRequest{
			URL:          url,
			Category:     &draft.Category,
			Title:        &draft.Title,
			ThumbnailURL: thumbnail,
		}

		return s.media.Update(ctx, req, draft.ID)
	}

	if url == constant.Empty {
		return failure.Validation("media url is required")
	}

	req := mediaDto.CreateMediaRequest{
		URL:          url,
		Type:         tab.MediaType(),
		Category:     draft.Category,
		Title:        draft.Title,
		ThumbnailURL: thumbnail,
	}

	return s.media.Create(ctx, req)
}

func (s *serviceImpl) SavePackage(ctx context.Context, draft dto.PackageDraft) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SavePackage")
	defer scope.End()
	defer scope.TraceIfError(err)

	if draft.ID != constant.Empty {
		return s.offering.Update(ctx, draft.ToUpdateRequest(), draft.ID)
	}

	return s.offering.Create(ctx, draft.ToCreateRequest())
}

func (s *serviceImpl) DeleteRecord(ctx context.Context, tab model.Tab, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRecord")
	defer scope.End()
	defer scope.TraceIfError(err)

	switch tab {
	case model.TabStills, model.TabCinema:
		return s.media.Delete(ctx, id)
	case model.TabPackages:
		return s.offering.Delete(ctx, id)
	case model.TabInquiries:
		return s.inquiry.Delete(ctx, id)
	default:
		return failure.Validation("unknown tab: " + string(tab))
	}
}

// BulkIngest uploads the batch strictly in order, reporting progress under
// the caller's batch id after each file, then lands all records in one store
// call. The first upload failure aborts the batch with nothing inserted;
// already uploaded blobs are left behind. The progress key is cleared on
// completion and on failure alike.
func (s *serviceImpl) BulkIngest(ctx context.Context, req dto.BulkIngestRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BulkIngest")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(req.Files) == 0 {
		return failure.Validation("no files to upload")
	}

	for _, file := range req.Files {
		if err = validator.ValidateVar(file.Header, dto.ImageFileRules); err != nil {
			return err
		}
	}

	progressKey := shared.BuildCacheKey(cacheBulkProgress, req.BatchID)

	defer func() {
		if deleteErr := s.cache.Delete(context.WithoutCancel(ctx), progressKey); deleteErr != nil {
			log.Error().Err(deleteErr).Str("batchID", req.BatchID).Msg("failed to clear bulk progress")
		}
	}()

	total := len(req.Files)
	bucket := s.cfg.External.S3.ImageBucket
	entries := make([]mediaDto.CreateMediaRequest, 0, total)

	for i, file := range req.Files {
		url, uploadErr := s.s3.UploadFile(ctx, bucket, file.File, file.Header)
		if uploadErr != nil {
			log.Error().Err(uploadErr).Int("index", i).Str("batchID", req.BatchID).Msg("bulk upload failed")

			return failure.Upload(fmt.Errorf("upload %d of %d failed: %w", i+1, total, uploadErr))
		}

		entries = append(entries, mediaDto.CreateMediaRequest{
			URL:      url,
			Type:     mediaModel.TypeImage,
			Category: req.Category,
			Title:    dto.TitleFromFilename(file.Header.Filename),
		})

		progress := int(math.Round(float64(i+1) / float64(total) * 100))
		if saveErr := s.cache.Save(ctx, progressKey, progress, s.cfg.Cache.TTL); saveErr != nil {
			log.Error().Err(saveErr).Str("batchID", req.BatchID).Msg("failed to save bulk progress")
		}
	}

	return s.media.CreateBulk(ctx, entries)
}

func (s *serviceImpl) BulkProgress(ctx context.Context, batchID string) (res dto.BulkProgressResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BulkProgress")
	defer scope.End()
	defer scope.TraceIfError(err)

	progress := 0

	err = s.cache.Get(ctx, shared.BuildCacheKey(cacheBulkProgress, batchID), &progress)
	if err != nil {
		if errors.Is(err, cache.Nil) {
			return res, failure.NotFound("no active batch: " + batchID)
		}

		return res, err
	}

	return dto.BulkProgressResponse{
		BatchID:  batchID,
		Progress: progress,
	}, nil
}

// validateUploads checks mimetype and size rules on the draft's file inputs.
// Nothing is uploaded when any input fails.
func (s *serviceImpl) validateUploads(tab model.Tab, draft dto.MediaDraft) error {
	if draft.Cover != nil {
		if err := validator.ValidateVar(draft.Cover.Header, dto.ImageFileRules); err != nil {
			return err
		}
	}

	if draft.File != nil {
		rules := dto.ImageFileRules
		if tab == model.TabCinema {
			rules = dto.VideoFileRules
		}

		if err := validator.ValidateVar(draft.File.Header, rules); err != nil {
			return err
		}
	}

	return nil
}

func (s *serviceImpl) bucketFor(tab model.Tab) string {
	if tab == model.TabCinema {
		return s.cfg.External.S3.VideoBucket
	}

	return s.cfg.External.S3.ImageBucket
}
