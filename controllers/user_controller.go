package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"playerhub_server/apperror"
	"playerhub_server/middleware"
	"playerhub_server/models"
	"playerhub_server/services"
)

// UserController handles registration, login and profile requests.
type UserController struct {
	Users *services.UserService
}

// NewUserController creates a new instance of UserController.
func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

// Register handles POST /api/users.
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.Validation("Invalid request payload"))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, apperror.Validation(err.Error()))
		return
	}

	user, err := c.Users.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	log.Printf("User %s registered", user.ID)
	writeJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/users/login.
func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.Validation("Invalid request payload"))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, apperror.Validation(err.Error()))
		return
	}

	result, err := c.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetProfile handles GET /api/users/profile for the authenticated caller.
func (c *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("Missing identity"))
		return
	}

	user, err := c.Users.GetByID(r.Context(), identity.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PUT /api/users/profile for the authenticated caller.
func (c *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("Missing identity"))
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.Validation("Invalid request payload"))
		return
	}

	if err := c.Users.Update(r.Context(), identity.ID, req); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteProfile handles DELETE /api/users/profile for the authenticated
// caller.
func (c *UserController) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("Missing identity"))
		return
	}

	if err := c.Users.Delete(r.Context(), identity.ID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// List handles GET /api/users with limit and next query parameters.
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	page, err := c.Users.List(r.Context(), parseLimit(r), r.URL.Query().Get("next"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}
