package reservation

type Status string

const (
	// StatusPendingConfirmation is the state between booking and the user
	// acting on the booking_confirmation notification. The expiry sweep
	// deletes reservations that stay here past the grace window.
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusConfirmed           Status = "confirmed"
	StatusCanceled            Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingConfirmation, StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}
