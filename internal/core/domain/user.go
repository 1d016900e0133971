package domain

// User models the session's shopper. Orders are kept most recent first and
// only live for the duration of the session.
type User struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Orders []Order `json:"orders"`
}
