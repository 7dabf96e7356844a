package admin

import (
	"context"
	"errors"
	"net/http"

	"aperture/infras/otel"
	"aperture/internal/domains/admin/model"
	"aperture/internal/domains/admin/model/dto"
	"aperture/internal/domains/admin/service"
	"aperture/shared/constant"
	gDto "aperture/shared/dto"
	"aperture/shared/failure"
	"aperture/shared/validator"
	"aperture/transport/http/middleware"
	"aperture/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	formFieldTitle        = "title"
	formFieldCategory     = "category"
	formFieldVideoLink    = "video_link"
	formFieldName         = "name"
	formFieldDuration     = "duration"
	formFieldDeliverables = "deliverables"
	formFieldHighlights   = "highlights"
	formFieldIsPopular    = "is_popular"
	formFieldBatchID      = "batch_id"
)

type Handler struct {
	service service.Admin
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Admin, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.APIKey)

		routerGroup.Get("/bulk/{batch_id}/progress", handler.BulkProgress)
		routerGroup.Post("/stills/bulk", handler.BulkIngest)
		routerGroup.Get("/{tab}", handler.List)
		routerGroup.Post("/{tab}", handler.Save)
		routerGroup.Patch("/{tab}/{id}", handler.Update)
		routerGroup.Delete("/{tab}/{id}", handler.Delete)
	})
}

// List retrieves the records of one admin content section.
// @Summary List records of a content section
// @Description Retrieve the records behind an admin tab with its default ordering.
// @Tags Admin
// @Accept json
// @Produce json
// @Param tab path string true "Tab name" Enums(stills, cinema, packages, inquiries)
// @Success 200 {object} response.Data[any] "Section records"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/{tab} [get]
// @Security ApiKeyAuth
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminList")
	defer scope.End()

	tab, err := model.ParseTab(chi.URLParam(r, constant.RequestParamTab))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve tab")

		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.List(ctx, tab, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list records")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Records listed successfully for tab " + string(tab))

	response.WithJSON(w, http.StatusOK, res)
}

// Save creates a record in the tab from a multipart submission.
// @Summary Create a record
// @Description Create a record in the tab's backing table, uploading any submitted files first.
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param tab path string true "Tab name" Enums(stills, cinema, packages)
// @Success 201 {object} response.Message "Record created successfully"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/{tab} [post]
// @Security ApiKeyAuth
func (handler *Handler) Save(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminSave")
	defer scope.End()

	handler.save(ctx, w, r, constant.Empty)
}

// Update patches a record in the tab from a multipart submission. Fields
// without a submitted value keep their stored values.
// @Summary Update a record
// @Description Update a record by id, uploading any replacement files first.
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param tab path string true "Tab name" Enums(stills, cinema, packages)
// @Param id path string true "Record ID"
// @Success 200 {object} response.Message "Record updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/{tab}/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminUpdate")
	defer scope.End()

	handler.save(ctx, w, r, chi.URLParam(r, constant.RequestParamID))
}

// Delete removes a record from the tab's backing table.
// @Summary Delete a record
// @Description Delete a record by id. Media deletions also remove stored blobs.
// @Tags Admin
// @Accept json
// @Produce json
// @Param tab path string true "Tab name" Enums(stills, cinema, packages, inquiries)
// @Param id path string true "Record ID"
// @Success 200 {object} response.Message "Record deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/{tab}/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminDelete")
	defer scope.End()

	tab, err := model.ParseTab(chi.URLParam(r, constant.RequestParamTab))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve tab")

		response.WithError(w, err)

		return
	}

	if err := handler.service.DeleteRecord(ctx, tab, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete record")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Record deleted successfully")

	response.WithMessage(w, http.StatusOK, "Record deleted successfully")
}

// BulkIngest uploads a batch of stills sequentially and inserts the records in
// one store call.
// @Summary Bulk upload stills
// @Description Upload a batch of image files one by one, then insert all records at once. Progress is pollable under the submitted batch id.
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param batch_id formData string true "Client-chosen batch id for progress polling"
// @Param category formData string false "Category applied to every record"
// @Param files formData file true "Image files"
// @Success 201 {object} response.Message "Batch ingested successfully"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/admin/stills/bulk [post]
// @Security ApiKeyAuth
func (handler *Handler) BulkIngest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminBulkIngest")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.BulkIngestRequest{
		BatchID:  r.FormValue(formFieldBatchID),
		Category: r.FormValue(formFieldCategory),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate bulk request")

		response.WithError(w, err)

		return
	}

	for _, header := range r.MultipartForm.File[constant.FormFiles] {
		file, err := header.Open()
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to open uploaded file")

			response.WithError(w, failure.BadRequest(err))

			return
		}
		defer file.Close()

		req.Files = append(req.Files, dto.FileInput{File: file, Header: header})
	}

	if err := handler.service.BulkIngest(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to ingest batch")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Batch ingested successfully")

	response.WithMessage(w, http.StatusCreated, "Batch ingested successfully")
}

// BulkProgress reports the progress of an in-flight batch.
// @Summary Poll bulk upload progress
// @Description Return the last reported progress percentage for a batch id.
// @Tags Admin
// @Accept json
// @Produce json
// @Param batch_id path string true "Batch ID"
// @Success 200 {object} dto.BulkProgressResponse "Current progress"
// @Failure 404 {object} response.Error
// @Router /v1/admin/bulk/{batch_id}/progress [get]
// @Security ApiKeyAuth
func (handler *Handler) BulkProgress(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminBulkProgress")
	defer scope.End()

	res, err := handler.service.BulkProgress(ctx, chi.URLParam(r, constant.RequestParamBatchID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bulk progress")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) save(ctx context.Context, w http.ResponseWriter, r *http.Request, id string) {
	tab, err := model.ParseTab(chi.URLParam(r, constant.RequestParamTab))
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve tab")

		response.WithError(w, err)

		return
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	switch tab {
	case model.TabStills, model.TabCinema:
		draft := dto.MediaDraft{
			ID:        id,
			Title:     r.FormValue(formFieldTitle),
			Category:  r.FormValue(formFieldCategory),
			VideoLink: r.FormValue(formFieldVideoLink),
		}

		if file := formFile(r, constant.FormFile); file != nil {
			defer file.File.Close()

			draft.File = file
		}

		if cover := formFile(r, constant.FormCoverFile); cover != nil {
			defer cover.File.Close()

			draft.Cover = cover
		}

		err = handler.service.SaveMedia(ctx, tab, draft)
	case model.TabPackages:
		draft := dto.PackageDraft{
			ID:           id,
			Name:         r.FormValue(formFieldName),
			Duration:     r.FormValue(formFieldDuration),
			Deliverables: r.FormValue(formFieldDeliverables),
			Highlights:   r.FormValue(formFieldHighlights),
			IsPopular:    r.FormValue(formFieldIsPopular),
		}

		if err := validator.ValidateStruct(&draft); err != nil {
			log.Error().Err(err).Msg("failed to validate package draft")

			response.WithError(w, err)

			return
		}

		err = handler.service.SavePackage(ctx, draft)
	default:
		err = failure.Validation("records cannot be saved on tab: " + string(tab))
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to save record")

		response.WithError(w, err)

		return
	}

	if id == constant.Empty {
		response.WithMessage(w, http.StatusCreated, "Record created successfully")

		return
	}

	response.WithMessage(w, http.StatusOK, "Record updated successfully")
}

func formFile(r *http.Request, field string) *dto.FileInput {
	file, header, err := r.FormFile(field)
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			log.Warn().Err(err).Str("field", field).Msg("failed to read form file")
		}

		return nil
	}

	return &dto.FileInput{File: file, Header: header}
}
