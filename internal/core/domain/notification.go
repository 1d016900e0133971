package domain

// NotificationKind discriminates user-facing messages.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient user-facing message. IDs are unique and
// monotonically increasing within a session.
type Notification struct {
	ID      int64            `json:"id"`
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
}
