package auth

import (
	domain "ecommerce-auth-service/internal/domain/user"
)

// userFromRegister projects a register request onto a candidate User.
// Email, name and password are copied verbatim; the gender member is
// projected to its string label. ID is deliberately left empty because the
// store assigns it at insert time. The projection is total and never fails;
// validation happened upstream.
func userFromRegister(in RegisterRequest) *domain.User {
	return &domain.User{
		Email:    in.Email,
		Name:     in.Name,
		Gender:   in.Gender.String(),
		Password: in.Password,
	}
}

// responseFromUser projects a stored user onto the wire response. Success
// and Token are owned by the service and are never derived here.
func responseFromUser(u *domain.User) *AuthenticationResponse {
	return &AuthenticationResponse{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Gender: domain.GenderFromString(u.Gender).String(),
	}
}
