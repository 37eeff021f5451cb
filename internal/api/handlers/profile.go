package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/collabmatch/backend/internal/api/middleware"
	"github.com/collabmatch/backend/internal/domain"
	"github.com/collabmatch/backend/internal/repository"
	"github.com/collabmatch/backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type ProfileRequest struct {
	Age          int      `json:"age"`
	Gender       string   `json:"gender"`
	Location     string   `json:"location"`
	Followers    int      `json:"followers"`
	Languages    []string `json:"languages"`
	Categories   []string `json:"categories"`
	ProfilePhoto string   `json:"profilePhoto"`
}

func (req ProfileRequest) toInput() service.ProfileInput {
	return service.ProfileInput{
		Age:          req.Age,
		Gender:       domain.Gender(req.Gender),
		Location:     req.Location,
		Followers:    req.Followers,
		Languages:    req.Languages,
		Categories:   req.Categories,
		ProfilePhoto: req.ProfilePhoto,
	}
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	profile, err := h.profileService.Create(r.Context(), claims, req.toInput())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, "Profile created successfully", profile)
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid profile id", domain.ErrValidation))
		return
	}

	profile, err := h.profileService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "OK", profile)
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "OK", profiles)
}

func (h *ProfileHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid user id", domain.ErrValidation))
		return
	}

	profiles, err := h.profileService.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "OK", profiles)
}

func (h *ProfileHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter := repository.ProfileFilter{
		Location: r.URL.Query().Get("location"),
		Category: r.URL.Query().Get("category"),
	}
	if raw := r.URL.Query().Get("minFollowers"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, fmt.Errorf("%w: minFollowers must be a non-negative integer", domain.ErrValidation))
			return
		}
		filter.MinFollowers = n
	}

	profiles, err := h.profileService.Search(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "OK", profiles)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid profile id", domain.ErrValidation))
		return
	}

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	profile, err := h.profileService.Update(r.Context(), claims, id, req.toInput())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, "Profile updated successfully", profile)
}

func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaims(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid profile id", domain.ErrValidation))
		return
	}

	if err := h.profileService.Delete(r.Context(), claims, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
