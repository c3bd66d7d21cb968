package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"zimmery/config"
	kafkaMocks "zimmery/infras/kafka/mocks"
	"zimmery/infras/otel/mocks"
	s3Mocks "zimmery/infras/s3/mocks"
	bookingMocks "zimmery/internal/domains/booking/mocks"
	"zimmery/internal/domains/booking/model"
	"zimmery/internal/domains/booking/model/dto"
	"zimmery/internal/domains/booking/service"
	customerMocks "zimmery/internal/domains/customer/mocks"
	customerModel "zimmery/internal/domains/customer/model"
	"zimmery/shared/constant"
	gDto "zimmery/shared/dto"
	"zimmery/shared/failure"
	gModel "zimmery/shared/model"
)

func newBookingService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *customerMocks.MockCustomer) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockStorage := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockCustomerRepo, cfg, mockOtel, mockEvents, mockStorage)

	return svc, mockRepo, mockCustomerRepo
}

func bookingFixture(id string, createdAt time.Time, status string) model.Booking {
	return model.Booking{
		ID:           id,
		CustomerID:   "customer-1",
		CheckInDate:  createdAt.AddDate(0, 0, 7),
		CheckOutDate: createdAt.AddDate(0, 0, 9),
		Adults:       2,
		Status:       status,
		Metadata: gModel.Metadata{
			CreatedAt:  createdAt,
			ModifiedAt: createdAt,
		},
	}
}

func TestBookingService_FindCustomer(t *testing.T) {
	existing := customerModel.Customer{
		ID:          "customer-1",
		FullName:    "Dana Levi",
		IDNumber:    "123456789",
		PhoneNumber: "0501234567",
	}

	tests := []struct {
		name      string
		setupMock func(repo *customerMocks.MockCustomer)
		wantID    string
		wantErr   bool
	}{
		{
			name: "match found",
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().
					GetAll(gomock.Any(), gDto.QueryParams{Limit: 1}, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]customerModel.Customer, error) {
						assert.Equal(t, gDto.FilterGroupOperatorOr, filter.Operator)
						assert.Len(t, filter.Filters, 2)

						return []customerModel.Customer{existing}, nil
					})
			},
			wantID: "customer-1",
		},
		{
			name: "no match",
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantID: "",
		},
		{
			name: "repository error",
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, mockCustomerRepo := newBookingService(t)
			tt.setupMock(mockCustomerRepo)

			customer, err := svc.FindCustomer(context.Background(), "123456789", "0501234567")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, customer.ID)
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	req := dto.CreateBookingRequest{
		Customer: dto.CustomerDraft{
			FullName:    "Dana Levi",
			IDNumber:    "123456789",
			PhoneNumber: "0501234567",
		},
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-12",
		Adults:       2,
		TotalAmount:  1800,
		Status:       "completed", // client-sent status must be ignored
	}

	existing := customerModel.Customer{
		ID:          "customer-1",
		FullName:    "Dana Levi",
		IDNumber:    "123456789",
		PhoneNumber: "0501234567",
	}

	t.Run("reuses matched customer and forces status", func(t *testing.T) {
		svc, mockRepo, mockCustomerRepo := newBookingService(t)

		mockCustomerRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]customerModel.Customer{existing}, nil)

		var inserted model.Booking

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				inserted = booking

				return nil
			})

		res, err := svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusAwaitingConfirmation, inserted.Status)
		assert.Equal(t, existing.ID, inserted.CustomerID)
		assert.Equal(t, model.StatusAwaitingConfirmation, res.Status)
		assert.Equal(t, "Dana Levi", res.Customer.FullName)
	})

	t.Run("creates customer when no match", func(t *testing.T) {
		svc, mockRepo, mockCustomerRepo := newBookingService(t)

		mockCustomerRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		mockCustomerRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user")
		res, err := svc.Create(ctx, req)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
	})

	t.Run("invalid date format", func(t *testing.T) {
		svc, _, mockCustomerRepo := newBookingService(t)

		mockCustomerRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]customerModel.Customer{existing}, nil)

		badReq := req
		badReq.CheckInDate = "10/09/2026"

		_, err := svc.Create(context.Background(), badReq)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("booking insert failure keeps customer row", func(t *testing.T) {
		svc, mockRepo, mockCustomerRepo := newBookingService(t)

		mockCustomerRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		mockCustomerRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestBookingService_All(t *testing.T) {
	now := time.Now()

	stored := []model.Booking{
		bookingFixture("booking-2", now, model.StatusAwaitingConfirmation),
		bookingFixture("booking-1", now.Add(-time.Hour), model.StatusConfirmed),
	}

	t.Run("loads on first use", func(t *testing.T) {
		svc, mockRepo, _ := newBookingService(t)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(stored, nil).
			Times(1)

		bookings, err := svc.All(context.Background())

		assert.NoError(t, err)
		assert.Len(t, bookings, 2)

		// second call serves from the projection
		bookings, err = svc.All(context.Background())

		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
	})

	t.Run("load failure keeps prior projection", func(t *testing.T) {
		svc, mockRepo, _ := newBookingService(t)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(stored, nil)

		_, err := svc.LoadAll(context.Background())
		assert.NoError(t, err)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err = svc.LoadAll(context.Background())
		assert.Error(t, err)

		bookings, err := svc.All(context.Background())

		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
	})
}

func TestBookingService_CreateKeepsNewestFirst(t *testing.T) {
	svc, mockRepo, mockCustomerRepo := newBookingService(t)

	now := time.Now()

	stored := []model.Booking{
		bookingFixture("booking-2", now.Add(-time.Hour), model.StatusConfirmed),
		bookingFixture("booking-1", now.Add(-2*time.Hour), model.StatusConfirmed),
	}

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(stored, nil)

	_, err := svc.LoadAll(context.Background())
	assert.NoError(t, err)

	mockCustomerRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]customerModel.Customer{{ID: "customer-1"}}, nil)
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	req := dto.CreateBookingRequest{
		Customer: dto.CustomerDraft{
			FullName:    "Dana Levi",
			IDNumber:    "123456789",
			PhoneNumber: "0501234567",
		},
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-12",
		Adults:       2,
		TotalAmount:  1800,
	}

	created, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)

	bookings, err := svc.All(context.Background())

	assert.NoError(t, err)
	assert.Len(t, bookings, 3)
	assert.Equal(t, created.ID, bookings[0].ID)
	assert.Equal(t, "booking-2", bookings[1].ID)
	assert.Equal(t, "booking-1", bookings[2].ID)
}

func TestBookingService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *bookingMocks.MockBooking)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingFixture("booking-1", time.Now(), model.StatusAwaitingConfirmation), nil)
			},
		},
		{
			name: "not found",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantCode: 404,
			wantErr:  true,
		},
		{
			name: "repository error",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantCode: 500,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newBookingService(t)
			tt.setupMock(mockRepo)

			booking, err := svc.Get(context.Background(), "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "booking-1", booking.ID)
		})
	}
}

func TestBookingService_Confirm(t *testing.T) {
	now := time.Now()

	t.Run("patches projection entry in place", func(t *testing.T) {
		svc, mockRepo, _ := newBookingService(t)

		stored := []model.Booking{
			bookingFixture("booking-2", now, model.StatusAwaitingConfirmation),
			bookingFixture("booking-1", now.Add(-time.Hour), model.StatusConfirmed),
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(stored, nil)

		_, err := svc.LoadAll(context.Background())
		assert.NoError(t, err)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored[0], nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusConfirmed, fields[model.FieldStatus])
				assert.Equal(t, "data:image/png;base64,abc", fields[model.FieldSignature])

				return nil
			})

		err = svc.Confirm(context.Background(), "booking-2", "data:image/png;base64,abc")
		assert.NoError(t, err)

		bookings, err := svc.All(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "booking-2", bookings[0].ID)
		assert.Equal(t, model.StatusConfirmed, bookings[0].Status)
		assert.NotNil(t, bookings[0].Signature)
		assert.Equal(t, "booking-1", bookings[1].ID)
	})

	t.Run("rejects bookings not awaiting confirmation", func(t *testing.T) {
		svc, mockRepo, _ := newBookingService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingFixture("booking-1", now, model.StatusConfirmed), nil)

		err := svc.Confirm(context.Background(), "booking-1", "data:image/png;base64,abc")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("update failure leaves projection untouched", func(t *testing.T) {
		svc, mockRepo, _ := newBookingService(t)

		stored := []model.Booking{
			bookingFixture("booking-1", now, model.StatusAwaitingConfirmation),
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(stored, nil)

		_, err := svc.LoadAll(context.Background())
		assert.NoError(t, err)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(stored[0], nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err = svc.Confirm(context.Background(), "booking-1", "data:image/png;base64,abc")
		assert.Error(t, err)

		bookings, err := svc.All(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, model.StatusAwaitingConfirmation, bookings[0].Status)
	})
}
