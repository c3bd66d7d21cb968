package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"zimmery/config"
	"zimmery/infras/otel/mocks"
	bookingModel "zimmery/internal/domains/booking/model"
	bookingMocks "zimmery/internal/domains/booking/service/mocks"
	documentService "zimmery/internal/domains/document/service"
	documentMocks "zimmery/internal/domains/document/service/mocks"
	"zimmery/internal/domains/signing/model"
	"zimmery/internal/domains/signing/model/dto"
	"zimmery/internal/domains/signing/service"
	templateDto "zimmery/internal/domains/template/model/dto"
	templateMocks "zimmery/internal/domains/template/service/mocks"
	"zimmery/shared/cache"
	cacheMocks "zimmery/shared/cache/mocks"
	"zimmery/shared/failure"
)

type signingMocks struct {
	bookings  *bookingMocks.MockBooking
	documents *documentMocks.MockDocument
	templates *templateMocks.MockContentTemplate
	cache     *cacheMocks.MockRedisCache
}

func newSigningService(t *testing.T) (service.Signing, signingMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	deps := signingMocks{
		bookings:  bookingMocks.NewMockBooking(ctrl),
		documents: documentMocks.NewMockDocument(ctrl),
		templates: templateMocks.NewMockContentTemplate(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Signing.SessionTTLMinutes = 60

	svc := service.New(deps.bookings, deps.documents, deps.templates, deps.cache, cfg, mocks.NewOtel())

	return svc, deps
}

func expectSessionLoad(deps signingMocks, session model.Session) {
	deps.cache.EXPECT().
		Get(gomock.Any(), "signing:session:"+session.BookingID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*model.Session) = session

			return nil
		})
}

func TestSigningService_Start(t *testing.T) {
	t.Run("missing booking yields terminal not found state", func(t *testing.T) {
		svc, deps := newSigningService(t)

		deps.bookings.EXPECT().
			Get(gomock.Any(), "booking-1").
			Return(bookingModel.Booking{}, failure.NotFound("booking not found"))

		res, err := svc.Start(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, model.StateNotFound, res.State)
	})

	t.Run("opens an unverified session", func(t *testing.T) {
		svc, deps := newSigningService(t)

		booking := bookingModel.Booking{
			ID:                  "booking-1",
			Status:              bookingModel.StatusAwaitingConfirmation,
			CustomerFullName:    "Dana Levi",
			CustomerIDNumber:    "123456789",
			CustomerPhoneNumber: "0501234567",
		}

		deps.bookings.EXPECT().
			Get(gomock.Any(), "booking-1").
			Return(booking, nil)
		deps.cache.EXPECT().
			Save(gomock.Any(), "signing:session:booking-1", gomock.Any(), 3600).
			DoAndReturn(func(_ context.Context, _ string, value any, _ int) error {
				session := value.(model.Session)
				assert.Equal(t, model.StateUnverified, session.State)
				assert.Equal(t, "123456789", session.IDNumber)

				return nil
			})
		deps.templates.EXPECT().
			ProcessedContent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(templateDto.ContentResponse{HTML: "<div>שלום Dana Levi</div>"}, nil)

		res, err := svc.Start(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, model.StateUnverified, res.State)
		assert.Equal(t, "Dana Levi", res.CustomerName)
		assert.Contains(t, res.WelcomeHTML, "Dana Levi")
	})

	t.Run("already confirmed booking yields terminal confirmed state", func(t *testing.T) {
		svc, deps := newSigningService(t)

		booking := bookingModel.Booking{
			ID:               "booking-1",
			Status:           bookingModel.StatusConfirmed,
			CustomerFullName: "Dana Levi",
		}

		deps.bookings.EXPECT().
			Get(gomock.Any(), "booking-1").
			Return(booking, nil)
		deps.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		deps.templates.EXPECT().
			ProcessedContent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(templateDto.ContentResponse{}, nil)

		res, err := svc.Start(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, model.StateConfirmed, res.State)
	})
}

func TestSigningService_Verify(t *testing.T) {
	t.Run("expired session", func(t *testing.T) {
		svc, deps := newSigningService(t)

		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		_, err := svc.Verify(context.Background(), "booking-1", "123456789")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("mismatch keeps the session unverified without touching the backend", func(t *testing.T) {
		svc, deps := newSigningService(t)

		expectSessionLoad(deps, model.Session{
			BookingID:    "booking-1",
			State:        model.StateUnverified,
			IDNumber:     "123456789",
			CustomerName: "Dana Levi",
		})

		res, err := svc.Verify(context.Background(), "booking-1", "999999999")

		assert.NoError(t, err)
		assert.Equal(t, model.StateUnverified, res.State)
		assert.NotEmpty(t, res.Error)
	})

	t.Run("match moves the session to verified", func(t *testing.T) {
		svc, deps := newSigningService(t)

		expectSessionLoad(deps, model.Session{
			BookingID: "booking-1",
			State:     model.StateUnverified,
			IDNumber:  "123456789",
		})
		deps.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any, _ int) error {
				assert.Equal(t, model.StateVerified, value.(model.Session).State)

				return nil
			})

		res, err := svc.Verify(context.Background(), "booking-1", "123456789")

		assert.NoError(t, err)
		assert.Equal(t, model.StateVerified, res.State)
		assert.Empty(t, res.Error)
	})

	t.Run("verification on a confirmed session conflicts", func(t *testing.T) {
		svc, deps := newSigningService(t)

		expectSessionLoad(deps, model.Session{
			BookingID: "booking-1",
			State:     model.StateConfirmed,
			IDNumber:  "123456789",
		})

		_, err := svc.Verify(context.Background(), "booking-1", "123456789")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestSigningService_Submit(t *testing.T) {
	signature := "data:image/png;base64,abc"

	req := dto.SubmitRequest{
		Signature:     signature,
		TermsAccepted: true,
	}

	t.Run("requires a verified session", func(t *testing.T) {
		svc, deps := newSigningService(t)

		expectSessionLoad(deps, model.Session{
			BookingID: "booking-1",
			State:     model.StateUnverified,
		})

		_, err := svc.Submit(context.Background(), "booking-1", req)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("requires accepted terms", func(t *testing.T) {
		svc, deps := newSigningService(t)

		expectSessionLoad(deps, model.Session{
			BookingID: "booking-1",
			State:     model.StateVerified,
		})

		_, err := svc.Submit(context.Background(), "booking-1", dto.SubmitRequest{Signature: signature})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("confirm failure restores the verified session", func(t *testing.T) {
		svc, deps := newSigningService(t)

		expectSessionLoad(deps, model.Session{
			BookingID: "booking-1",
			State:     model.StateVerified,
			IDNumber:  "123456789",
		})

		states := []string{}

		deps.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any, _ int) error {
				session := value.(model.Session)
				states = append(states, session.State)
				assert.Equal(t, signature, session.Signature)

				return nil
			}).
			Times(2)
		deps.bookings.EXPECT().
			Confirm(gomock.Any(), "booking-1", signature).
			Return(errors.New("database error"))

		_, err := svc.Submit(context.Background(), "booking-1", req)

		assert.Error(t, err)
		assert.Equal(t, []string{model.StateSubmitting, model.StateVerified}, states)
	})

	t.Run("happy path confirms and renders the agreement", func(t *testing.T) {
		svc, deps := newSigningService(t)

		booking := bookingModel.Booking{
			ID:               "booking-1",
			Status:           bookingModel.StatusConfirmed,
			CheckInDate:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			CustomerFullName: "Dana Levi",
		}

		expectSessionLoad(deps, model.Session{
			BookingID: "booking-1",
			State:     model.StateVerified,
		})
		deps.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)
		deps.bookings.EXPECT().
			Confirm(gomock.Any(), "booking-1", signature).
			Return(nil)
		deps.bookings.EXPECT().
			Get(gomock.Any(), "booking-1").
			Return(booking, nil)
		deps.documents.EXPECT().
			Generate(gomock.Any(), booking, signature).
			Return(documentService.Result{
				Tier:       documentService.TierPreferred,
				ArchiveURL: "https://cdn.example.com/agreement-booking-1.html",
			}, nil)
		deps.templates.EXPECT().
			ProcessedContent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(templateDto.ContentResponse{HTML: "<div>תודה Dana Levi</div>"}, nil)

		res, err := svc.Submit(context.Background(), "booking-1", req)

		assert.NoError(t, err)
		assert.Equal(t, model.StateConfirmed, res.State)
		assert.Equal(t, documentService.TierPreferred, res.DocumentTier)
		assert.Equal(t, "https://cdn.example.com/agreement-booking-1.html", res.DocumentURL)
		assert.Equal(t, "/confirmation/booking-1", res.RedirectPath)
		assert.Contains(t, res.ConfirmationHTML, "Dana Levi")
	})
}
