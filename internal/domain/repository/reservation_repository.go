package repository

import "github.com/oksasatya/go-restaurant-api/internal/domain/entity"

// ReservationRepository defines the interface for reservation persistence.
// Reservations are never updated or deleted once created.
type ReservationRepository interface {
	Create(r *entity.Reservation) error
	List() ([]*entity.Reservation, error)
}
