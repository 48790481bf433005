package handlers_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oksasatya/go-restaurant-api/internal/domain/entity"
	"github.com/oksasatya/go-restaurant-api/internal/domain/repository"
	"github.com/oksasatya/go-restaurant-api/internal/infrastructure/yelp"
	"github.com/oksasatya/go-restaurant-api/pkg/helpers"
)

type userRepoFake struct {
	mu    sync.Mutex
	seq   int
	users map[string]*entity.User
}

func newUserRepoFake() *userRepoFake {
	return &userRepoFake{users: make(map[string]*entity.User)}
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.FavouriteIDs = append([]string(nil), u.FavouriteIDs...)
	c.ReservationIDs = append([]string(nil), u.ReservationIDs...)
	return &c
}

func (r *userRepoFake) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	if u.FavouriteIDs == nil {
		u.FavouriteIDs = []string{}
	}
	if u.ReservationIDs == nil {
		u.ReservationIDs = []string{}
	}
	r.users[u.ID] = cloneUser(u)
	return nil
}

func (r *userRepoFake) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, repository.ErrNotFound
}

func (r *userRepoFake) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepoFake) Update(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	r.users[u.ID] = cloneUser(u)
	return nil
}

func (r *userRepoFake) List() ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *userRepoFake) byEmail(email string) *entity.User {
	u, err := r.GetByEmail(email)
	if err != nil {
		return nil
	}
	return u
}

type reservationRepoFake struct {
	mu           sync.Mutex
	seq          int
	reservations []*entity.Reservation
}

func newReservationRepoFake() *reservationRepoFake {
	return &reservationRepoFake{}
}

func (r *reservationRepoFake) Create(res *entity.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	res.ID = fmt.Sprintf("res-%d", r.seq)
	res.CreatedAt = time.Now()
	c := *res
	r.reservations = append(r.reservations, &c)
	return nil
}

func (r *reservationRepoFake) List() ([]*entity.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		c := *res
		out = append(out, &c)
	}
	return out, nil
}

type sessionStoreFake struct {
	mu       sync.Mutex
	sessions map[string]helpers.Session
}

func newSessionStoreFake() *sessionStoreFake {
	return &sessionStoreFake{sessions: make(map[string]helpers.Session)}
}

func (s *sessionStoreFake) Save(ctx context.Context, sess helpers.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.UserID] = sess
	return nil
}

func (s *sessionStoreFake) Get(ctx context.Context, userID string) (*helpers.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[userID]; ok {
		out := sess
		return &out, nil
	}
	return nil, nil
}

func (s *sessionStoreFake) Delete(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}

// searcherFake records the last forwarded criteria and answers with a canned
// upstream body or error.
type searcherFake struct {
	mu       sync.Mutex
	calls    int
	lastCrit yelp.SearchCriteria
	body     []byte
	err      error
}

func (s *searcherFake) SearchBusinesses(ctx context.Context, crit yelp.SearchCriteria) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.lastCrit = crit
	if s.err != nil {
		return nil, s.err
	}
	return s.body, nil
}
