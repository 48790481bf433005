package entity

import (
	"time"
)

// User is the aggregate root for the diner account.
// Passwords are stored as bcrypt hashes in PasswordHash and never serialized.
//
// FavouriteIDs is an ordered list of business ids; duplicates are allowed and
// insertion order is preserved. ReservationIDs are back-references to the
// reservations this user created; the Reservation row owns its own fields.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	FavouriteIDs   []string  `json:"favourite_ids"`
	ReservationIDs []string  `json:"reservation_ids"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
