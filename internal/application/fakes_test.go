package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oksasatya/go-restaurant-api/internal/domain/entity"
	"github.com/oksasatya/go-restaurant-api/internal/domain/repository"
	"github.com/oksasatya/go-restaurant-api/pkg/helpers"
)

// userRepoFake is an in-memory UserRepository. Reads return copies, matching
// the real repository where every query scans a fresh row.
type userRepoFake struct {
	mu      sync.Mutex
	seq     int
	users   map[string]*entity.User
	getHook func()
	updHook func()
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
	u, ok := r.users[id]
	var out *entity.User
	if ok {
		out = cloneUser(u)
	}
	r.mu.Unlock()
	if r.getHook != nil {
		r.getHook()
	}
	if !ok {
		return nil, repository.ErrNotFound
	}
	return out, nil
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
	if r.updHook != nil {
		r.updHook()
	}
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

func (r *userRepoFake) stored(id string) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return cloneUser(u)
	}
	return nil
}

type reservationRepoFake struct {
	mu           sync.Mutex
	seq          int
	reservations []*entity.Reservation
	failCreate   error
}

func newReservationRepoFake() *reservationRepoFake {
	return &reservationRepoFake{}
}

func (r *reservationRepoFake) Create(res *entity.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate != nil {
		return r.failCreate
	}
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

// sessionStoreFake is an in-memory SessionStore.
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
