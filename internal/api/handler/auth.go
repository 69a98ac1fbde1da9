package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/forgeline/content-studio/internal/api/middleware"
	"github.com/forgeline/content-studio/internal/api/response"
	"github.com/forgeline/content-studio/internal/domain"
	"github.com/forgeline/content-studio/internal/service"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles user registration
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input domain.UserSignup
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if input.Email == "" || input.Password == "" || input.FullName == "" {
		response.BadRequest(w, "Missing required fields")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	auth, err := h.authService.Signup(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			response.BadRequest(w, "User already exists")
			return
		}
		log.Error().Err(err).Msg("signup failed")
		response.InternalError(w)
		return
	}

	response.Created(w, auth)
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.UserLogin
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if input.Email == "" || input.Password == "" {
		response.BadRequest(w, "Missing email or password")
		return
	}

	auth, err := h.authService.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			response.Unauthorized(w, "Invalid credentials")
			return
		}
		log.Error().Err(err).Msg("login failed")
		response.InternalError(w)
		return
	}

	response.OK(w, auth)
}

// Validate checks the presented bearer token and returns its identity
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if token == "" {
		response.Unauthorized(w, "missing or invalid authorization header")
		return
	}

	user, err := h.authService.Validate(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			response.Unauthorized(w, "invalid or expired token")
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(w, "User not found")
		default:
			log.Error().Err(err).Msg("token validation failed")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, user)
}
