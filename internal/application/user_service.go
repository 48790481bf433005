package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-restaurant-api/internal/domain/entity"
	repo "github.com/oksasatya/go-restaurant-api/internal/domain/repository"
	"github.com/oksasatya/go-restaurant-api/pkg/helpers"
	"github.com/oksasatya/go-restaurant-api/pkg/mailer"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoActiveSession    = errors.New("no active session")
)

// UserService is the credential service: it registers accounts, verifies
// passwords, and establishes/invalidates the session identity.
type UserService struct {
	Repo     repo.UserRepository
	JWT      *helpers.JWTManager
	Sessions helpers.SessionStore
	Logger   *logrus.Logger
	Pub      *helpers.RabbitPublisher
	MailOn   bool
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, sessions helpers.SessionStore, logger *logrus.Logger, pub *helpers.RabbitPublisher, mailOn bool) *UserService {
	return &UserService{Repo: r, JWT: jwt, Sessions: sessions, Logger: logger, Pub: pub, MailOn: mailOn}
}

// Register creates a user with a bcrypt-hashed credential. The email unique
// index is the only uniqueness check; a duplicate surfaces as
// repository.ErrDuplicateEmail.
func (s *UserService) Register(ctx context.Context, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, PasswordHash: hash}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}

	s.notify(ctx, u.Email, "Welcome", "Your account is ready. Log in to start discovering restaurants.")
	return u, nil
}

// Authenticate validates email/password. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login verifies credentials, records a session, and returns the signed
// session token to be set as a cookie.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	sid := uuid.NewString()
	token, exp, err := s.JWT.GenerateSessionToken(u.ID, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		}
		return nil, "", time.Time{}, err
	}

	sess := helpers.Session{ID: sid, UserID: u.ID, Email: u.Email}
	if err := s.Sessions.Save(ctx, sess, s.JWT.SessionTTL); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("save session failed")
		}
		return nil, "", time.Time{}, err
	}

	return u, token, exp, nil
}

// Logout invalidates the current session. Calling it without a live session
// is an error the handler reports, not a silent no-op.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	sess, err := s.Sessions.Get(ctx, userID)
	if err != nil {
		return err
	}
	if sess == nil {
		return ErrNoActiveSession
	}
	return s.Sessions.Delete(ctx, userID)
}

// notify enqueues a plain-text email job, fire-and-forget. Email must never
// block or fail the request path.
func (s *UserService) notify(ctx context.Context, to, subject, text string) {
	if !s.MailOn || s.Pub == nil {
		return
	}
	job := mailer.EmailJob{To: to, Subject: subject, Text: text}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("failed to publish email job")
	}
}
