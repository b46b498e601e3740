package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "ecommerce-auth-service/internal/domain/user"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Email:    "a@b.com",
		Password: "p1",
		Name:     "Alice",
		Gender:   domain.GenderFemale,
	}
}

func TestValidate_LoginRequest_Valid(t *testing.T) {
	rv := NewRequestValidator()

	failures := rv.Validate(LoginRequest{Email: "a@b.com", Password: "p1"})

	assert.Empty(t, failures)
}

func TestValidate_LoginRequest_EmptyEmail(t *testing.T) {
	rv := NewRequestValidator()

	failures := rv.Validate(LoginRequest{Email: "", Password: "p1"})

	require.Len(t, failures, 1)
	assert.Equal(t, "email", failures[0].Field)
	// The chain stops at the first failing rule: an empty email is
	// reported as missing, not also as malformed
	assert.Equal(t, "is required", failures[0].Message)
}

func TestValidate_LoginRequest_MalformedEmail(t *testing.T) {
	rv := NewRequestValidator()

	failures := rv.Validate(LoginRequest{Email: "not-an-address", Password: "p1"})

	require.Len(t, failures, 1)
	assert.Equal(t, "email", failures[0].Field)
	assert.Equal(t, "must be a valid email address", failures[0].Message)
}

func TestValidate_LoginRequest_EmptyPassword(t *testing.T) {
	rv := NewRequestValidator()

	failures := rv.Validate(LoginRequest{Email: "a@b.com", Password: ""})

	require.Len(t, failures, 1)
	assert.Equal(t, "password", failures[0].Field)
	assert.Equal(t, "is required", failures[0].Message)
}

func TestValidate_LoginRequest_AllFailuresReported(t *testing.T) {
	rv := NewRequestValidator()

	failures := rv.Validate(LoginRequest{})

	// Both fields fail and both are reported, in declaration order
	require.Len(t, failures, 2)
	assert.Equal(t, "email", failures[0].Field)
	assert.Equal(t, "password", failures[1].Field)
}

func TestValidate_RegisterRequest_Valid(t *testing.T) {
	rv := NewRequestValidator()

	failures := rv.Validate(validRegisterRequest())

	assert.Empty(t, failures)
}

func TestValidate_RegisterRequest_EmptyName(t *testing.T) {
	rv := NewRequestValidator()

	req := validRegisterRequest()
	req.Name = ""

	failures := rv.Validate(req)

	require.Len(t, failures, 1)
	assert.Equal(t, "name", failures[0].Field)
	assert.Equal(t, "is required", failures[0].Message)
}

func TestValidate_RegisterRequest_NameTooLong(t *testing.T) {
	rv := NewRequestValidator()

	req := validRegisterRequest()
	req.Name = strings.Repeat("a", 51)

	failures := rv.Validate(req)

	require.Len(t, failures, 1)
	assert.Equal(t, "name", failures[0].Field)
	assert.Equal(t, "must be at most 50 characters", failures[0].Message)
}

func TestValidate_RegisterRequest_NameAtBoundary(t *testing.T) {
	rv := NewRequestValidator()

	req := validRegisterRequest()
	req.Name = strings.Repeat("a", 50)

	assert.Empty(t, rv.Validate(req))

	req.Name = "a"
	assert.Empty(t, rv.Validate(req))
}

func TestValidate_RegisterRequest_InvalidGender(t *testing.T) {
	rv := NewRequestValidator()

	req := validRegisterRequest()
	req.Gender = "Unknown"

	failures := rv.Validate(req)

	require.Len(t, failures, 1)
	assert.Equal(t, "gender", failures[0].Field)
	assert.Equal(t, "must be one of Male, Female, Other", failures[0].Message)
}

func TestValidate_RegisterRequest_MultipleFailures(t *testing.T) {
	rv := NewRequestValidator()

	failures := rv.Validate(RegisterRequest{Email: "bad", Gender: "X"})

	require.Len(t, failures, 4)
	assert.Equal(t, "email", failures[0].Field)
	assert.Equal(t, "password", failures[1].Field)
	assert.Equal(t, "name", failures[2].Field)
	assert.Equal(t, "gender", failures[3].Field)
}
