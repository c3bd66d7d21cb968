package model

// State is the signing session lifecycle. NotFound and Confirmed are
// terminal.
type State = string

const (
	StateLoading    State = "loading"
	StateNotFound   State = "not_found"
	StateUnverified State = "unverified"
	StateVerified   State = "verified"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
)

// Session is the redis-backed signing session for one booking. IDNumber is
// captured when the session starts; verification compares against it without
// touching the backend again.
type Session struct {
	BookingID     string `json:"booking_id"`
	State         State  `json:"state"`
	IDNumber      string `json:"id_number"`
	CustomerName  string `json:"customer_name"`
	Signature     string `json:"signature"`
	TermsAccepted bool   `json:"terms_accepted"`
}
