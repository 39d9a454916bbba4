package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-travel-planner/internal/models"
	"github.com/sbilibin2017/gw-travel-planner/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, username, password, firstName, lastName string) (*models.User, string, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new account with a unique email and username and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.AuthResponse "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "Missing fields / user already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, token, err := svc.Register(r.Context(), req.Email, req.Username, req.Password, req.FirstName, req.LastName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, http.StatusBadRequest, validationMessage(err))
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusBadRequest, "User already exists")
			default:
				writeInternalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.AuthResponse{User: user, Token: token})
	}
}
