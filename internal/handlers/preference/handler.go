package preference

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"zimmery/infras/otel"
	"zimmery/internal/domains/preference/model/dto"
	"zimmery/internal/domains/preference/service"
	"zimmery/shared/constant"
	"zimmery/shared/validator"
	"zimmery/transport/http/response"
)

type Handler struct {
	service service.Preference
	otel    otel.Otel
}

func New(service service.Preference, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/preferences", func(routerGroup chi.Router) {
		routerGroup.Get("/theme", handler.GetTheme)
		routerGroup.Put("/theme", handler.SetTheme)
	})
}

func (handler *Handler) GetTheme(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTheme")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.GetTheme(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get theme preference")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) SetTheme(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetTheme")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	req := dto.UpdateThemeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.SetTheme(ctx, userID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set theme preference")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Theme preference saved")
}
