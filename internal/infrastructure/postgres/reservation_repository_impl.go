package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-restaurant-api/internal/domain/entity"
	"github.com/oksasatya/go-restaurant-api/internal/domain/repository"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) Create(res *entity.Reservation) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO reservations (user_id, business_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, res.UserID, res.BusinessID, res.Status)

	return row.Scan(&res.ID, &res.CreatedAt)
}

func (r *ReservationRepository) List() ([]*entity.Reservation, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, business_id, status, created_at
		FROM reservations
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]*entity.Reservation, 0)
	for rows.Next() {
		res := &entity.Reservation{}
		if err := rows.Scan(&res.ID, &res.UserID, &res.BusinessID, &res.Status, &res.CreatedAt); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

var _ repository.ReservationRepository = (*ReservationRepository)(nil)
