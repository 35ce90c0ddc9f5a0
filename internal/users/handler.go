package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"airesume-backend/internal/shared/server/middleware"
	"airesume-backend/internal/shared/server/respond"
)

const sessionCookieMaxAge = 7 * 24 * 60 * 60 // matches token TTL

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc          *Service
	SecureCookie bool
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, secureCookie bool) *Handler {
	return &Handler{Svc: svc, SecureCookie: secureCookie}
}

// RegisterRoutes attaches account routes to the router group. Signup and
// login must be listed as public prefixes on the auth middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", h.signup)
	rg.POST("/auth/login", h.login)
	rg.POST("/auth/logout", h.logout)
	rg.GET("/me", h.me)
	rg.PUT("/me/name", h.changeName)
	rg.PUT("/me/password", h.changePassword)
}

type signupRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	u, token, err := h.Svc.Signup(c.Request.Context(), req.Email, req.FullName, req.Password)
	if err != nil {
		h.writeError(c, err, "failed to sign up")
		return
	}

	h.setSessionCookie(c, token)
	respond.JSON(c, http.StatusCreated, gin.H{"user": toResponse(u), "token": token})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	u, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err, "failed to log in")
		return
	}

	h.setSessionCookie(c, token)
	respond.OK(c, gin.H{"user": toResponse(u), "token": token})
}

func (h *Handler) logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", h.SecureCookie, true)
	respond.OK(c, gin.H{"loggedOut": true})
}

func (h *Handler) me(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)

	u, err := h.Svc.Get(c.Request.Context(), email)
	if err != nil {
		h.writeError(c, err, "failed to fetch account")
		return
	}
	respond.OK(c, toResponse(u))
}

type changeNameRequest struct {
	FullName string `json:"fullName"`
}

func (h *Handler) changeName(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)

	var req changeNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Svc.ChangeName(c.Request.Context(), email, req.FullName); err != nil {
		h.writeError(c, err, "failed to update name")
		return
	}
	respond.OK(c, gin.H{"updated": true})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) changePassword(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Svc.ChangePassword(c.Request.Context(), email, req.CurrentPassword, req.NewPassword); err != nil {
		h.writeError(c, err, "failed to update password")
		return
	}
	respond.OK(c, gin.H{"updated": true})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, sessionCookieMaxAge, "/", "", h.SecureCookie, true)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrEmailTaken):
		respond.Error(c, http.StatusConflict, "conflict", "this email is already registered", nil)
	case errors.Is(err, ErrInvalidCredentials):
		respond.Error(c, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "account not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
