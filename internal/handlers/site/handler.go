package site

import (
	"net/http"
	"strings"

	"aperture/infras/otel"
	inquiryDto "aperture/internal/domains/inquiry/model/dto"
	inquiryService "aperture/internal/domains/inquiry/service"
	mediaModel "aperture/internal/domains/media/model"
	mediaService "aperture/internal/domains/media/service"
	offeringService "aperture/internal/domains/offering/service"
	"aperture/shared/constant"
	gDto "aperture/shared/dto"
	"aperture/shared/validator"
	"aperture/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// categoryAll is the sentinel the site sends when no category is selected.
const categoryAll = "all"

type Handler struct {
	media    mediaService.Media
	offering offeringService.Offering
	inquiry  inquiryService.Inquiry
	otel     otel.Otel
}

func New(
	media mediaService.Media,
	offering offeringService.Offering,
	inquiry inquiryService.Inquiry,
	otel otel.Otel,
) Handler {
	return Handler{
		media:    media,
		offering: offering,
		inquiry:  inquiry,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/gallery", handler.GetGallery)
	router.Get("/packages", handler.GetPackages)
	router.Post("/inquiries", handler.CreateInquiry)
}

// GetGallery retrieves the published gallery records.
// @Summary Get gallery records
// @Description Retrieve gallery records with optional type and category filtering.
// @Tags Site
// @Accept json
// @Produce json
// @Param type query string false "Filter by media type" Enums(image, video)
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Data[any] "List of gallery records"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gallery [get]
func (handler *Handler) GetGallery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGallery")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	mediaType := r.URL.Query().Get(constant.RequestParamType)
	category := r.URL.Query().Get(constant.RequestParamCategory)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if mediaType != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    mediaModel.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    mediaType,
			Table:    mediaModel.TableName,
		})
	}

	if category != constant.Empty && strings.ToLower(category) != categoryAll {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    mediaModel.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    mediaModel.TableName,
		})
	}

	res, err := handler.media.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery records")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetPackages retrieves the published packages, popular ones first.
// @Summary Get packages
// @Description Retrieve all packages ordered with popular packages first.
// @Tags Site
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[any] "List of packages"
// @Failure 500 {object} response.Error
// @Router /v1/packages [get]
func (handler *Handler) GetPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.offering.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get packages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateInquiry stores a visitor inquiry.
// @Summary Create an inquiry
// @Description Store a visitor inquiry and emit the received event.
// @Tags Site
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Create Inquiry Request"
// @Success 201 {object} response.Message "Inquiry submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries [post]
func (handler *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInquiry")
	defer scope.End()

	req := inquiryDto.CreateInquiryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.inquiry.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inquiry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry submitted successfully")

	response.WithMessage(w, http.StatusCreated, "Inquiry submitted successfully")
}
