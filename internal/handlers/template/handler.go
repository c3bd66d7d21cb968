package template

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"zimmery/infras/otel"
	"zimmery/internal/domains/template/model/dto"
	"zimmery/internal/domains/template/service"
	"zimmery/shared/constant"
	"zimmery/shared/validator"
	"zimmery/transport/http/response"
)

type Handler struct {
	service service.ContentTemplate
	otel    otel.Otel
}

func New(service service.ContentTemplate, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/templates", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTemplates)
		routerGroup.Post("/", handler.CreateTemplate)
		routerGroup.Put("/{id}", handler.UpdateTemplate)
		routerGroup.Delete("/{id}", handler.DeleteTemplate)
		routerGroup.Patch("/{id}/toggle", handler.ToggleTemplate)
		routerGroup.Get("/content/{type}", handler.GetContent)
	})
}

func (handler *Handler) GetTemplates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTemplates")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get content templates")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetContent resolves a template type to HTML through the fallback chain.
// This endpoint is public: the signing page renders from it.
func (handler *Handler) GetContent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContent")
	defer scope.End()

	templateType := chi.URLParam(request, constant.RequestParamType)

	res, err := handler.service.GetContent(ctx, templateType)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("template_type", templateType).Msg("failed to resolve template content")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) CreateTemplate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTemplate")
	defer scope.End()

	req := dto.CreateTemplateRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create content template")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

func (handler *Handler) UpdateTemplate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTemplate")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	req := dto.UpdateTemplateRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("template_id", id).Msg("failed to update content template")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Content template updated successfully")
}

func (handler *Handler) DeleteTemplate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTemplate")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("template_id", id).Msg("failed to delete content template")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Content template deleted successfully")
}

func (handler *Handler) ToggleTemplate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleTemplate")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.ToggleActive(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("template_id", id).Msg("failed to toggle content template")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Content template toggled successfully")
}
