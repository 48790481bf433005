package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-restaurant-api/internal/domain/entity"
	repo "github.com/oksasatya/go-restaurant-api/internal/domain/repository"
	"github.com/oksasatya/go-restaurant-api/pkg/helpers"
	"github.com/oksasatya/go-restaurant-api/pkg/mailer"
)

// RestaurantService carries the favourites and reservation mutation rules on
// top of the stores.
//
// Favourite mutations are load-modify-store: the user row is read, changed in
// memory, and written back whole. Concurrent mutations on the same user can
// lose an update; last write wins. Reservation creation is a two-step,
// non-transactional write: the reservation row lands first, then the user row
// is re-written with the back-reference appended. If the second write fails
// the reservation is orphaned; we log it and surface the store error.
type RestaurantService struct {
	Users        repo.UserRepository
	Reservations repo.ReservationRepository
	Logger       *logrus.Logger
	Pub          *helpers.RabbitPublisher
	MailOn       bool
}

func NewRestaurantService(users repo.UserRepository, reservations repo.ReservationRepository, logger *logrus.Logger, pub *helpers.RabbitPublisher, mailOn bool) *RestaurantService {
	return &RestaurantService{Users: users, Reservations: reservations, Logger: logger, Pub: pub, MailOn: mailOn}
}

// SetFavourite appends the business id to the user's favourites. Duplicates
// are kept; favouriting the same business twice records it twice.
func (s *RestaurantService) SetFavourite(ctx context.Context, userID, businessID string) error {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	u.FavouriteIDs = append(u.FavouriteIDs, businessID)
	return s.Users.Update(u)
}

// UnsetFavourite removes every occurrence of the business id from the user's
// favourites. Removing an id that was never favourited is not an error.
func (s *RestaurantService) UnsetFavourite(ctx context.Context, userID, businessID string) error {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	kept := make([]string, 0, len(u.FavouriteIDs))
	for _, id := range u.FavouriteIDs {
		if id != businessID {
			kept = append(kept, id)
		}
	}
	u.FavouriteIDs = kept
	return s.Users.Update(u)
}

// Reserve creates a PENDING reservation for the user and appends its id to
// the user's reservation back-references.
func (s *RestaurantService) Reserve(ctx context.Context, userID, businessID string) (*entity.Reservation, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	res := &entity.Reservation{
		UserID:     u.ID,
		BusinessID: businessID,
		Status:     entity.ReservationPending,
	}
	if err := s.Reservations.Create(res); err != nil {
		return nil, err
	}

	u.ReservationIDs = append(u.ReservationIDs, res.ID)
	if err := s.Users.Update(u); err != nil {
		// The reservation row exists with no back-reference on the user.
		if s.Logger != nil {
			s.Logger.WithError(err).WithFields(logrus.Fields{
				"user_id":        u.ID,
				"reservation_id": res.ID,
			}).Warn("reservation created but user back-reference write failed")
		}
		return nil, err
	}

	s.notify(ctx, u.Email, "Reservation received",
		"Your reservation request for business "+businessID+" is pending confirmation.")
	return res, nil
}

// ListUsers dumps the whole users collection. Debug use only.
func (s *RestaurantService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return s.Users.List()
}

// ListReservations dumps the whole reservations collection. Debug use only.
func (s *RestaurantService) ListReservations(ctx context.Context) ([]*entity.Reservation, error) {
	return s.Reservations.List()
}

func (s *RestaurantService) notify(ctx context.Context, to, subject, text string) {
	if !s.MailOn || s.Pub == nil {
		return
	}
	job := mailer.EmailJob{To: to, Subject: subject, Text: text}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("failed to publish email job")
	}
}
