package dto

import (
	bookingDto "zimmery/internal/domains/booking/model/dto"
	"zimmery/internal/domains/signing/model"
)

type VerifyRequest struct {
	IDNumber string `json:"id_number" validate:"required,max=20"`
}

type SubmitRequest struct {
	Signature     string `json:"signature"      validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	TermsAccepted bool   `json:"terms_accepted" validate:"required"`
}

// SessionResponse is what the signing page renders. CustomerName is the only
// customer detail exposed before verification; the id number never leaves the
// server.
type SessionResponse struct {
	BookingID    string      `json:"booking_id"`
	State        model.State `json:"state"`
	CustomerName string      `json:"customer_name,omitempty"`
	WelcomeHTML  string      `json:"welcome_html,omitempty"`
	Error        string      `json:"error,omitempty"`

	Booking *bookingDto.BookingResponse `json:"booking,omitempty"`
}

// SubmitResponse reports a completed signing: which renderer tier produced
// the agreement and where the client should navigate next.
type SubmitResponse struct {
	BookingID        string      `json:"booking_id"`
	State            model.State `json:"state"`
	DocumentTier     string      `json:"document_tier"`
	DocumentURL      string      `json:"document_url,omitempty"`
	ConfirmationHTML string      `json:"confirmation_html,omitempty"`
	RedirectPath     string      `json:"redirect_path"`
}
