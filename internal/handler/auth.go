package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookdesk/internal/auth"
	"github.com/snnyvrz/bookdesk/internal/validation"
)

type AuthHandler struct {
	authenticator *auth.PasswordAuthenticator
	jwtManager    *auth.JWTManager
}

func NewAuthHandler(authenticator *auth.PasswordAuthenticator, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		jwtManager:    jwtManager,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	a := r.Group("/auth")
	{
		a.POST("/register", h.Register)
		a.POST("/login", h.Login)
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// Register godoc
// @Summary      Register a user
// @Description  Create a user account and return a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      RegisterRequest  true  "Account details"
// @Success      201      {object}  TokenResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      409      {object}  validation.ErrorResponse   "Email already registered"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authenticator.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			writeError(c, http.StatusConflict,
				"EMAIL_EXISTS",
				err.Error(),
			)
		case errors.Is(err, auth.ErrWeakPassword):
			writeError(c, http.StatusBadRequest,
				"WEAK_PASSWORD",
				err.Error(),
			)
		default:
			writeError(c, http.StatusInternalServerError,
				"REGISTER_FAILED",
				"failed to register user",
			)
		}
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"TOKEN_GENERATION_FAILED",
			"failed to generate token",
		)
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{Token: token})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with email and password and return a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  TokenResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      401      {object}  validation.ErrorResponse   "Invalid credentials"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authenticator.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, http.StatusUnauthorized,
			"INVALID_CREDENTIALS",
			auth.ErrInvalidCredentials.Error(),
		)
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"TOKEN_GENERATION_FAILED",
			"failed to generate token",
		)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}
