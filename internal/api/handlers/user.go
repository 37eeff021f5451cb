package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/collabmatch/backend/internal/api/middleware"
	"github.com/collabmatch/backend/internal/domain"
	"github.com/collabmatch/backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type UserHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewUserHandler(userService *service.UserService, authService *service.AuthService) *UserHandler {
	return &UserHandler{userService: userService, authService: authService}
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid user id", domain.ErrValidation))
		return
	}

	user, err := h.userService.GetByID(r.Context(), claims, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "OK", toUserResponse(user))
}

// List is admin-only; the password hash never leaves the domain layer.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())

	users, err := h.userService.List(r.Context(), claims)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, "OK", resp)
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid user id", domain.ErrValidation))
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	user, err := h.userService.Update(r.Context(), claims, id, service.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "User updated successfully", toUserResponse(user))
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid user id", domain.ErrValidation))
		return
	}

	if err := h.userService.Delete(r.Context(), claims, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid user id", domain.ErrValidation))
		return
	}

	// Password changes are strictly self-service.
	if claims == nil || claims.UserID != id {
		writeError(w, domain.ErrForbidden)
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		writeError(w, fmt.Errorf("%w: current and new passwords are required", domain.ErrValidation))
		return
	}

	if err := h.authService.ChangePassword(r.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Password changed successfully", nil)
}

func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid user id", domain.ErrValidation))
		return
	}

	if err := h.userService.Deactivate(r.Context(), claims, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "User account deactivated successfully", nil)
}
