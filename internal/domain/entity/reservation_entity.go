package entity

import "time"

type ReservationStatus string

const (
	// ReservationPending is the status every reservation is created with.
	// No transition logic exists yet; confirmation/cancellation would extend
	// this enum.
	ReservationPending ReservationStatus = "PENDING"
)

// Reservation records a user's intent to book a table at a business.
// UserID is the owning user; the user's ReservationIDs list holds the
// back-reference.
type Reservation struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	BusinessID string            `json:"business_id"`
	Status     ReservationStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}
