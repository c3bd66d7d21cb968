package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"zimmery/config"
	"zimmery/infras/otel"
	bookingService "zimmery/internal/domains/booking/service"
	documentService "zimmery/internal/domains/document/service"
	"zimmery/internal/domains/signing/model"
	"zimmery/internal/domains/signing/model/dto"
	templateModel "zimmery/internal/domains/template/model"
	templateService "zimmery/internal/domains/template/service"
	"zimmery/shared"
	"zimmery/shared/cache"
	"zimmery/shared/constant"
	"zimmery/shared/failure"
	"zimmery/shared/timezone"

	bookingModel "zimmery/internal/domains/booking/model"
)

const sessionKeyPrefix = "signing:session"

const msgIDMismatch = "ID number does not match our records"

type Signing interface {
	Start(ctx context.Context, bookingID string) (dto.SessionResponse, error)
	Verify(ctx context.Context, bookingID, idNumber string) (dto.SessionResponse, error)
	Submit(ctx context.Context, bookingID string, req dto.SubmitRequest) (dto.SubmitResponse, error)
}

// serviceImpl drives the customer-facing signing state machine. Sessions live
// in redis for the configured TTL; the booking backend is touched only at
// session start and at submit, never during verification.
type serviceImpl struct {
	bookings  bookingService.Booking
	documents documentService.Document
	templates templateService.ContentTemplate
	cache     cache.RedisCache
	cfg       *config.Config
	otel      otel.Otel
}

func New(bookings bookingService.Booking, documents documentService.Document, templates templateService.ContentTemplate, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Signing {
	return &serviceImpl{
		bookings:  bookings,
		documents: documents,
		templates: templates,
		cache:     cache,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) sessionTTL() int {
	return s.cfg.Signing.SessionTTLMinutes * constant.MinutesToSeconds
}

func sessionKey(bookingID string) string {
	return shared.BuildCacheKey(sessionKeyPrefix, bookingID)
}

func (s *serviceImpl) saveSession(ctx context.Context, session model.Session) error {
	if err := s.cache.Save(ctx, sessionKey(session.BookingID), session, s.sessionTTL()); err != nil {
		return fmt.Errorf("failed to save signing session: %w", err)
	}

	return nil
}

func (s *serviceImpl) loadSession(ctx context.Context, bookingID string) (session model.Session, err error) {
	err = s.cache.Get(ctx, sessionKey(bookingID), &session)
	if err != nil {
		if errors.Is(err, cache.Nil) {
			return session, failure.NotFound("signing session not found") // nolint:wrapcheck
		}

		return session, fmt.Errorf("failed to load signing session: %w", err)
	}

	return session, nil
}

// Start loads the booking and opens a session. A missing booking yields a
// terminal not-found session; an already-confirmed booking a terminal
// confirmed one. Otherwise the customer's id number is captured for later
// verification and the session starts unverified.
func (s *serviceImpl) Start(ctx context.Context, bookingID string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.BookingID = bookingID

	booking, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		if failure.GetCode(err) == http.StatusNotFound {
			res.State = model.StateNotFound

			return res, nil
		}

		return res, err
	}

	session := model.Session{
		BookingID:    bookingID,
		State:        model.StateUnverified,
		IDNumber:     booking.CustomerIDNumber,
		CustomerName: booking.CustomerFullName,
	}

	if booking.Status == bookingModel.StatusConfirmed {
		session.State = model.StateConfirmed
	}

	if err = s.saveSession(ctx, session); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to open signing session")

		return res, err
	}

	res.State = session.State
	res.CustomerName = session.CustomerName

	if welcome, contentErr := s.templates.ProcessedContent(ctx, templateModel.TypeWelcomeMessage, map[string]string{
		"customerName": session.CustomerName,
	}); contentErr == nil {
		res.WelcomeHTML = welcome.HTML
	}

	return res, nil
}

// Verify compares the supplied id number against the one captured at session
// start. It is a pure comparison: no backend call happens here. A mismatch
// surfaces an error message and leaves the session unverified.
func (s *serviceImpl) Verify(ctx context.Context, bookingID, idNumber string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, err := s.loadSession(ctx, bookingID)
	if err != nil {
		return res, err
	}

	res.BookingID = bookingID
	res.CustomerName = session.CustomerName

	if session.State != model.StateUnverified {
		res.State = session.State

		return res, failure.Conflict("signing session is not awaiting verification") // nolint:wrapcheck
	}

	if idNumber != session.IDNumber {
		res.State = model.StateUnverified
		res.Error = msgIDMismatch

		return res, nil
	}

	session.State = model.StateVerified
	if err = s.saveSession(ctx, session); err != nil {
		return res, err
	}

	res.State = model.StateVerified

	return res, nil
}

// Submit accepts a verified session with a signature and accepted terms,
// confirms the booking and renders the agreement. A backend confirm failure
// returns the session to verified with signature and terms preserved.
func (s *serviceImpl) Submit(ctx context.Context, bookingID string, req dto.SubmitRequest) (res dto.SubmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, err := s.loadSession(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if session.State != model.StateVerified {
		return res, failure.Conflict("signing session is not verified") // nolint:wrapcheck
	}

	if !req.TermsAccepted {
		return res, failure.BadRequestFromString("terms must be accepted") // nolint:wrapcheck
	}

	session.State = model.StateSubmitting
	session.Signature = req.Signature
	session.TermsAccepted = true

	if err = s.saveSession(ctx, session); err != nil {
		return res, err
	}

	if err = s.bookings.Confirm(ctx, bookingID, req.Signature); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("booking confirm failed, returning session to verified")

		session.State = model.StateVerified
		if saveErr := s.saveSession(ctx, session); saveErr != nil {
			log.Error().Err(saveErr).Str("booking_id", bookingID).Msg("failed to restore signing session")
		}

		return res, err
	}

	booking, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		return res, err
	}

	document, err := s.documents.Generate(ctx, booking, req.Signature)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("agreement rendering failed after confirm")
	}

	session.State = model.StateConfirmed
	if err = s.saveSession(ctx, session); err != nil {
		return res, err
	}

	res = dto.SubmitResponse{
		BookingID:    bookingID,
		State:        model.StateConfirmed,
		DocumentTier: document.Tier,
		DocumentURL:  document.ArchiveURL,
		RedirectPath: "/confirmation/" + bookingID,
	}

	if confirmation, contentErr := s.templates.ProcessedContent(ctx, templateModel.TypeConfirmationMessage, map[string]string{
		"customerName": booking.CustomerFullName,
		"bookingId":    bookingID,
		"checkinDate":  timezone.Format(booking.CheckInDate, constant.DocumentDateFormat),
	}); contentErr == nil {
		res.ConfirmationHTML = confirmation.HTML
	}

	return res, nil
}
