package auth

import "context"

// Usecase defines the authentication workflows exposed to transport
// adapters. Both operations expect requests that already passed
// RequestValidator; a nil response signals business-level failure.
type Usecase interface {
	Register(ctx context.Context, in RegisterRequest) (*AuthenticationResponse, error)
	Login(ctx context.Context, in LoginRequest) (*AuthenticationResponse, error)
}
