package auth

import (
	"context"

	"go.uber.org/zap"

	domain "ecommerce-auth-service/internal/domain/user"
	pkgerrors "ecommerce-auth-service/pkg/errors"
	"ecommerce-auth-service/pkg/security"
	"ecommerce-auth-service/pkg/token"
)

// Repository defines the persistence contract consumed by the service.
// It abstracts the data layer, allowing different backings (PostgreSQL,
// in-memory, etc.) to be used interchangeably.
type Repository interface {
	// AddUser persists a new user, assigns its id and returns the stored
	// row. A rejected write, such as a duplicate email, yields a nil user
	// without an error.
	AddUser(ctx context.Context, u *domain.User) (*domain.User, error)

	// GetUserByCredentials resolves an email/password pair against the
	// stored credential hash. No match yields a nil user without an error.
	GetUserByCredentials(ctx context.Context, email, password string) (*domain.User, error)
}

// Service implements the authentication workflows. It is stateless: each
// invocation issues at most one store call and shares nothing with
// concurrent invocations except the store itself.
//
// Business-level failure (credentials not found, write rejected) is a nil
// response, never an error. Only infrastructure faults travel as errors.
type Service struct {
	repo   Repository
	issuer token.Issuer
	log    *zap.Logger
}

// New creates a Service with its collaborators passed explicitly.
func New(r Repository, issuer token.Issuer, log *zap.Logger) *Service {
	return &Service{repo: r, issuer: issuer, log: log}
}

// Register creates a new account from an already-validated request. The
// password is hashed before it reaches the store; the plaintext is never
// persisted. A nil response means the store rejected the write.
func (s *Service) Register(ctx context.Context, in RegisterRequest) (*AuthenticationResponse, error) {
	s.log.Info("registering user", zap.String("email", in.Email))

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		s.log.Error("failed to hash password", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to hash password", err)
	}

	candidate := userFromRegister(in)
	candidate.Password = hash

	created, err := s.repo.AddUser(ctx, candidate)
	if err != nil {
		s.log.Error("failed to add user", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if created == nil {
		s.log.Warn("registration rejected by store", zap.String("email", in.Email))
		return nil, nil
	}

	return s.respond(created)
}

// Login authenticates an already-validated request. A nil response means
// the credentials matched no stored user; the caller must treat that as
// unauthorized, distinct from a malformed request or a server fault.
func (s *Service) Login(ctx context.Context, in LoginRequest) (*AuthenticationResponse, error) {
	u, err := s.repo.GetUserByCredentials(ctx, in.Email, in.Password)
	if err != nil {
		s.log.Error("failed to look up credentials", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if u == nil {
		s.log.Warn("login failed", zap.String("email", in.Email))
		return nil, nil
	}

	s.log.Info("user logged in", zap.String("user_id", u.ID))
	return s.respond(u)
}

// respond maps the stored user to the response and stamps the fields only
// the service owns: Success and a freshly issued token.
func (s *Service) respond(u *domain.User) (*AuthenticationResponse, error) {
	tok, err := s.issuer.Issue(u.ID)
	if err != nil {
		s.log.Error("failed to issue token", zap.String("user_id", u.ID), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to issue token", err)
	}

	resp := responseFromUser(u)
	resp.Success = true
	resp.Token = tok
	return resp, nil
}
