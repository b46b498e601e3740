package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecommerce-auth-service/internal/usecase/auth"
	pkgerrors "ecommerce-auth-service/pkg/errors"
	"ecommerce-auth-service/pkg/logger"
)

// AuthHandler handles HTTP requests for the register and login use cases.
// It runs request validation before the service is invoked and translates
// a nil service result into the per-use-case status: 400 for register,
// 401 for login.
type AuthHandler struct {
	uc        auth.Usecase
	validator *auth.RequestValidator
	log       *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(uc auth.Usecase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		uc:        uc,
		validator: auth.NewRequestValidator(),
		log:       log,
	}
}

// ValidationErrorResponse is the 400 body for structurally invalid requests
type ValidationErrorResponse struct {
	Error  string                      `json:"error"`
	Fields []pkgerrors.ValidationError `json:"fields"`
}

// ErrorResponse represents a non-field error response. RequestID lets a
// caller quote the failing request when reporting a 500.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// stampUserID records the authenticated user on the request context so the
// request-log middleware, which runs after the handler, tags its line with
// user_id.
func stampUserID(c *gin.Context, userID string) {
	ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, userID)
	c.Request = c.Request.WithContext(ctx)
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid register payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_payload",
			Message: "request body must be valid JSON",
		})
		return
	}

	if failures := h.validator.Validate(req); len(failures) > 0 {
		h.log.Warn("register request failed validation",
			zap.String("email", req.Email),
			zap.Int("failures", len(failures)),
		)
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation_error",
			Fields: failures,
		})
		return
	}

	resp, err := h.uc.Register(c.Request.Context(), req)
	if err != nil {
		h.log.Error("register failed", zap.Error(err))
		h.handleFault(c, err)
		return
	}
	if resp == nil {
		c.JSON(http.StatusBadRequest, auth.AuthenticationResponse{Success: false})
		return
	}

	stampUserID(c, resp.ID)
	c.JSON(http.StatusOK, resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid login payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_payload",
			Message: "request body must be valid JSON",
		})
		return
	}

	if failures := h.validator.Validate(req); len(failures) > 0 {
		h.log.Warn("login request failed validation",
			zap.String("email", req.Email),
			zap.Int("failures", len(failures)),
		)
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation_error",
			Fields: failures,
		})
		return
	}

	resp, err := h.uc.Login(c.Request.Context(), req)
	if err != nil {
		h.log.Error("login failed", zap.Error(err))
		h.handleFault(c, err)
		return
	}
	if resp == nil {
		c.JSON(http.StatusUnauthorized, auth.AuthenticationResponse{Success: false})
		return
	}

	stampUserID(c, resp.ID)
	c.JSON(http.StatusOK, resp)
}

// handleFault translates an infrastructure fault into a generic response.
// Internal details stay in the log; the body carries only a type and a
// safe message.
func (h *AuthHandler) handleFault(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var statuser pkgerrors.HTTPStatuser
	if errors.As(err, &statuser) {
		status = statuser.HTTPStatus()
	}

	c.JSON(status, ErrorResponse{
		Error:     "internal_error",
		Message:   "An internal error occurred",
		RequestID: logger.GetRequestID(c.Request.Context()),
	})
}
