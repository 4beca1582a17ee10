package notification

// Kind distinguishes what a notification asks the user to do.
type Kind string

const (
	// KindBookingConfirmation carries the confirm-within-the-grace-window
	// prompt issued alongside a new reservation.
	KindBookingConfirmation Kind = "booking_confirmation"
	// KindProfileUpdate nags the user to fill in a display name.
	KindProfileUpdate Kind = "profile_update"
	// KindProfilePictureUpdate nags the user to upload an avatar.
	KindProfilePictureUpdate Kind = "profile_picture_update"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindBookingConfirmation, KindProfileUpdate, KindProfilePictureUpdate:
		return true
	}
	return false
}

// IsProfileKind reports whether the notification is one of the
// profile-completeness prompts. Those are resolved, never confirmed.
func (k Kind) IsProfileKind() bool {
	return k == KindProfileUpdate || k == KindProfilePictureUpdate
}

// Status is the notification lifecycle. Rows are never hard-deleted;
// they move to a terminal status instead.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusResolved  Status = "resolved"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s != StatusPending
}
