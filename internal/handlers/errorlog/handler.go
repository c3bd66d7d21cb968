package errorlog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"zimmery/infras/otel"
	"zimmery/internal/domains/errorlog/service"
	"zimmery/shared/constant"
	"zimmery/shared/validator"
	"zimmery/transport/http/response"
)

type LogRequest struct {
	Message string `json:"message" validate:"required"`
	Stack   string `json:"stack"   validate:"omitempty"`
}

type Handler struct {
	service service.ErrorLog
	otel    otel.Otel
}

func New(service service.ErrorLog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/errors", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Recent)
		routerGroup.Post("/", handler.Log)
		routerGroup.Delete("/", handler.Clear)
	})
}

func (handler *Handler) Recent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Recent")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Recent(ctx))
}

// Log records an error report. The sink never fails the caller, so this
// always answers 202.
func (handler *Handler) Log(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Log")
	defer scope.End()

	req := LogRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	handler.service.Log(ctx, req.Message, req.Stack)

	response.WithMessage(writer, http.StatusAccepted, "Error recorded")
}

func (handler *Handler) Clear(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Clear")
	defer scope.End()

	handler.service.Clear(ctx)

	response.WithMessage(writer, http.StatusOK, "Error logs cleared")
}
