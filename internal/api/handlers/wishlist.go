package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/collabmatch/backend/internal/api/middleware"
	"github.com/collabmatch/backend/internal/auth"
	"github.com/collabmatch/backend/internal/domain"
	"github.com/collabmatch/backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// WishlistHandler serves the caller's own wishlist; the owning user
// always comes from the verified claims.
type WishlistHandler struct {
	wishlistService *service.WishlistService
}

func NewWishlistHandler(wishlistService *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

func callerID(r *http.Request) (*auth.Claims, error) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

type AddWishlistRequest struct {
	ProfileID string `json:"profileId"`
}

func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req AddWishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}
	profileID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid profile id", domain.ErrValidation))
		return
	}

	item, err := h.wishlistService.Add(r.Context(), claims.UserID, profileID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, "Profile added to wishlist", item)
}

func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	items, err := h.wishlistService.List(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "OK", items)
}

func (h *WishlistHandler) Count(w http.ResponseWriter, r *http.Request) {
	claims, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	count, err := h.wishlistService.Count(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "OK", map[string]int64{"count": count})
}

func (h *WishlistHandler) Contains(w http.ResponseWriter, r *http.Request) {
	claims, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	profileID, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid profile id", domain.ErrValidation))
		return
	}

	inWishlist, err := h.wishlistService.Contains(r.Context(), claims.UserID, profileID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "OK", map[string]bool{"inWishlist": inWishlist})
}

func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	claims, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	profileID, err := uuid.Parse(chi.URLParam(r, "profileID"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: invalid profile id", domain.ErrValidation))
		return
	}

	if err := h.wishlistService.Remove(r.Context(), claims.UserID, profileID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	claims, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.wishlistService.Clear(r.Context(), claims.UserID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
