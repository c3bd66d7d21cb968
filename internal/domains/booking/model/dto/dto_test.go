package dto_test

import (
	"testing"

	"zimmery/internal/domains/booking/model"
	"zimmery/internal/domains/booking/model/dto"
	gModel "zimmery/shared/model"
	"zimmery/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCustomerDraft_ToModel(t *testing.T) {
	draft := dto.CustomerDraft{
		FullName:    "Dana Levi",
		IDNumber:    "123456789",
		PhoneNumber: "0501234567",
		Email:       "dana@example.com",
	}

	userID := "test-user-id"
	customer := draft.ToModel(userID)

	assert.NotEmpty(t, customer.ID, "expected ID to be generated")
	assert.Equal(t, draft.FullName, customer.FullName)
	assert.Equal(t, draft.IDNumber, customer.IDNumber)
	assert.Equal(t, draft.PhoneNumber, customer.PhoneNumber)
	assert.Equal(t, draft.Email, customer.Email)
	assert.Equal(t, userID, customer.CreatedBy)
	assert.Equal(t, userID, customer.ModifiedBy)
	assert.False(t, customer.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		Customer: dto.CustomerDraft{
			FullName:    "Dana Levi",
			IDNumber:    "123456789",
			PhoneNumber: "0501234567",
		},
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-05",
		Adults:       2,
		Children:     1,
		Notes:        "late arrival",
		TotalAmount:  1500,
		DepositPaid:  500,
		Status:       "completed",
	}

	userID := "test-user-id"
	booking, err := req.ToModel("customer-1", userID)

	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, "customer-1", booking.CustomerID)
	assert.Equal(t, "2026-09-01", booking.CheckInDate.Format("2006-01-02"))
	assert.Equal(t, "2026-09-05", booking.CheckOutDate.Format("2006-01-02"))
	assert.Equal(t, req.Adults, booking.Adults)
	assert.Equal(t, req.Children, booking.Children)
	assert.Equal(t, req.Notes, booking.Notes)
	assert.Equal(t, req.TotalAmount, booking.TotalAmount)
	assert.Equal(t, req.DepositPaid, booking.DepositPaid)
	assert.Equal(t, model.StatusAwaitingConfirmation, booking.Status, "requested status must be ignored")
	assert.Equal(t, userID, booking.CreatedBy)
	assert.Equal(t, userID, booking.ModifiedBy)
}

func TestCreateBookingRequest_ToModel_InvalidDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		CheckInDate:  "01/09/2026",
		CheckOutDate: "2026-09-05",
	}

	_, err := req.ToModel("customer-1", "test-user-id")

	assert.Error(t, err)
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	signature := "data:image/png;base64,iVBOR"
	bookingModel := model.Booking{
		ID:           "booking-1",
		CustomerID:   "customer-1",
		CheckInDate:  now,
		CheckOutDate: now.AddDate(0, 0, 3),
		Adults:       2,
		Children:     0,
		TotalAmount:  1200,
		DepositPaid:  300,
		Status:       model.StatusConfirmed,
		Signature:    &signature,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
		CustomerFullName:    "Dana Levi",
		CustomerIDNumber:    "123456789",
		CustomerPhoneNumber: "0501234567",
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, bookingModel.CustomerID, response.Customer.ID)
	assert.Equal(t, "Dana Levi", response.Customer.FullName)
	assert.Equal(t, bookingModel.Status, response.Status)
	assert.True(t, response.Signed)
	assert.NotEmpty(t, response.CreatedAt)
}

func TestBookingResponse_FromModel_Unsigned(t *testing.T) {
	empty := ""
	tests := []struct {
		name      string
		signature *string
	}{
		{name: "nil signature", signature: nil},
		{name: "empty signature", signature: &empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingModel := model.Booking{
				ID:        "booking-1",
				Status:    model.StatusAwaitingConfirmation,
				Signature: tt.signature,
			}

			var response dto.BookingResponse
			response.FromModel(bookingModel)

			assert.False(t, response.Signed)
		})
	}
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		{ID: "booking-1", Status: model.StatusConfirmed},
		{ID: "booking-2", Status: model.StatusAwaitingConfirmation},
	}

	var response dto.GetBookingsResponse
	response.FromModels(bookings)

	assert.Equal(t, len(bookings), response.TotalData)
	assert.Len(t, response.Bookings, len(bookings))
	for i, booking := range response.Bookings {
		assert.Equal(t, bookings[i].ID, booking.ID)
	}
}

func TestGetBookingsResponse_FromModels_EmptyList(t *testing.T) {
	var response dto.GetBookingsResponse
	response.FromModels(nil)

	assert.Equal(t, 0, response.TotalData)
	assert.Len(t, response.Bookings, 0)
}
