package addresslookup

import "errors"

var (
	// ErrUnavailable is returned when the address service cannot be reached,
	// answers with a non-success status, or sends an unreadable body.
	ErrUnavailable = errors.New("address lookup unavailable")
	// ErrNotFound is returned when the address service does not know the Eircode.
	ErrNotFound = errors.New("eircode not found")
)

// Result is the address service payload for a single Eircode.
// A zero ID means the Eircode does not exist.
type Result struct {
	ID      int    `json:"id"`
	EirCode string `json:"eirCode"`
	Street  string `json:"street"`
}
