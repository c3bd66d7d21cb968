package signing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"zimmery/infras/otel"
	"zimmery/internal/domains/signing/model/dto"
	"zimmery/internal/domains/signing/service"
	"zimmery/shared/constant"
	"zimmery/shared/validator"
	"zimmery/transport/http/response"
)

// Handler serves the public signing flow. None of its routes require
// authentication; the session itself gates what a caller can do.
type Handler struct {
	service service.Signing
	otel    otel.Otel
}

func New(service service.Signing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sign", func(routerGroup chi.Router) {
		routerGroup.Get("/{bookingID}", handler.StartSession)
		routerGroup.Post("/{bookingID}/verify", handler.Verify)
		routerGroup.Post("/{bookingID}/submit", handler.Submit)
	})
}

func (handler *Handler) StartSession(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartSession")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamBookingID)

	res, err := handler.service.Start(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to start signing session")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) Verify(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Verify")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamBookingID)
	req := dto.VerifyRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Verify(ctx, bookingID, req.IDNumber)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to verify signing session")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) Submit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamBookingID)
	req := dto.SubmitRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, bookingID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to submit signing session")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Agreement signed for booking " + bookingID)

	response.WithJSON(writer, http.StatusOK, res)
}
