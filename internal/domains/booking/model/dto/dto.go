package dto

import (
	"time"

	"github.com/google/uuid"

	"zimmery/internal/domains/booking/model"
	customerModel "zimmery/internal/domains/customer/model"
	gModel "zimmery/shared/model"
	"zimmery/shared/timezone"
)

const dateLayout = "2006-01-02"

// CustomerDraft carries customer identity for a new booking. The booking
// store resolves it against existing rows by id number or phone number before
// creating a new customer.
type CustomerDraft struct {
	FullName    string `json:"full_name"    validate:"required,max=100"`
	IDNumber    string `json:"id_number"    validate:"required,max=20"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
	Email       string `json:"email"        validate:"omitempty,email,max=100"`
}

func (c *CustomerDraft) ToModel(user string) customerModel.Customer {
	return customerModel.Customer{
		ID:          uuid.NewString(),
		FullName:    c.FullName,
		IDNumber:    c.IDNumber,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CreateBookingRequest struct {
	Customer     CustomerDraft `json:"customer"       validate:"required"`
	CheckInDate  string        `json:"check_in_date"  validate:"required"`
	CheckOutDate string        `json:"check_out_date" validate:"required"`
	Adults       int           `json:"adults"         validate:"required,gte=1"`
	Children     int           `json:"children"       validate:"omitempty,gte=0"`
	Notes        string        `json:"notes"          validate:"omitempty"`
	TotalAmount  float64       `json:"total_amount"   validate:"required,gte=0"`
	DepositPaid  float64       `json:"deposit_paid"   validate:"omitempty,gte=0"`
	// Status is accepted for forward compatibility but never honored: every
	// new booking starts awaiting customer confirmation.
	Status string `json:"status" validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(customerID, user string) (model.Booking, error) {
	checkIn, err := time.Parse(dateLayout, c.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse(dateLayout, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:           uuid.NewString(),
		CustomerID:   customerID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Adults:       c.Adults,
		Children:     c.Children,
		Notes:        c.Notes,
		TotalAmount:  c.TotalAmount,
		DepositPaid:  c.DepositPaid,
		Status:       model.StatusAwaitingConfirmation,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type CustomerResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	IDNumber    string `json:"id_number"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email,omitempty"`
}

func (r *CustomerResponse) FromModel(model customerModel.Customer) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.IDNumber = model.IDNumber
	r.PhoneNumber = model.PhoneNumber
	r.Email = model.Email
}

type BookingResponse struct {
	ID           string           `json:"id"`
	Customer     CustomerResponse `json:"customer"`
	CheckInDate  string           `json:"check_in_date"`
	CheckOutDate string           `json:"check_out_date"`
	Adults       int              `json:"adults"`
	Children     int              `json:"children"`
	Notes        string           `json:"notes,omitempty"`
	TotalAmount  float64          `json:"total_amount"`
	DepositPaid  float64          `json:"deposit_paid"`
	Status       string           `json:"status"`
	Signed       bool             `json:"signed"`
	CreatedAt    string           `json:"created_at"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Customer.FromModel(model.Customer())
	r.CheckInDate = model.CheckInDate.Format(dateLayout)
	r.CheckOutDate = model.CheckOutDate.Format(dateLayout)
	r.Adults = model.Adults
	r.Children = model.Children
	r.Notes = model.Notes
	r.TotalAmount = model.TotalAmount
	r.DepositPaid = model.DepositPaid
	r.Status = model.Status
	r.Signed = model.Signature != nil && *model.Signature != ""
	r.CreatedAt = timezone.Format(model.CreatedAt, time.RFC3339)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to the booking events topic when a
// booking changes lifecycle state.
type BookingEvent struct {
	BookingID  string `json:"booking_id"`
	CustomerID string `json:"customer_id"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}
