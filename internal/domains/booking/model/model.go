package model

import (
	"time"

	customerModel "zimmery/internal/domains/customer/model"
	"zimmery/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldCustomerID   = "customer_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldAdults       = "adults"
	FieldChildren     = "children"
	FieldNotes        = "notes"
	FieldTotalAmount  = "total_amount"
	FieldDepositPaid  = "deposit_paid"
	FieldStatus       = "status"
	FieldSignature    = "signature"
)

// Status is the booking lifecycle. A booking is created awaiting confirmation
// and moves to confirmed exactly once, on a successful signature submission.
type Status = string

const (
	StatusAwaitingConfirmation Status = "awaiting_confirmation"
	StatusConfirmed            Status = "confirmed"
	StatusCompleted            Status = "completed"
	StatusCancelled            Status = "cancelled"
)

type Booking struct {
	ID           string    `db:"id"`
	CustomerID   string    `db:"customer_id"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	Adults       int       `db:"adults"`
	Children     int       `db:"children"`
	Notes        string    `db:"notes"`
	TotalAmount  float64   `db:"total_amount"`
	DepositPaid  float64   `db:"deposit_paid"`
	Status       Status    `db:"status"`
	Signature    *string   `db:"signature"`
	model.Metadata

	// Joined customer columns, selected through GetJoinQuery.
	CustomerFullName    string `db:"customer_full_name"    table:"customers" column:"full_name"`
	CustomerIDNumber    string `db:"customer_id_number"    table:"customers" column:"id_number"`
	CustomerPhoneNumber string `db:"customer_phone_number" table:"customers" column:"phone_number"`
	CustomerEmail       string `db:"customer_email"        table:"customers" column:"email"`
}

func (Booking) GetJoinQuery() string {
	return "JOIN customers ON customers.id = bookings.customer_id"
}

func (b *Booking) Customer() customerModel.Customer {
	return customerModel.Customer{
		ID:          b.CustomerID,
		FullName:    b.CustomerFullName,
		IDNumber:    b.CustomerIDNumber,
		PhoneNumber: b.CustomerPhoneNumber,
		Email:       b.CustomerEmail,
	}
}
