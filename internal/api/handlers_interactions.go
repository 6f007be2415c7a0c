// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/larder/internal/logging"
	"github.com/tomtom215/larder/internal/metrics"
	"github.com/tomtom215/larder/internal/middleware"
	"github.com/tomtom215/larder/internal/recommend"
	"github.com/tomtom215/larder/internal/validation"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

type recipePath struct {
	RecipeID string `json:"id" validate:"recipe_id"`
}

type ratingRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

type preferencesRequest struct {
	FavoriteCuisines    []string `json:"favorite_cuisines" validate:"max=20,dive,min=1,max=64"`
	DietaryRestrictions []string `json:"dietary_restrictions" validate:"max=20,dive,min=1,max=64"`
	CookingTime         int      `json:"cooking_time" validate:"gte=0,lte=1440"`
	MealTypes           []string `json:"meal_types" validate:"max=20,dive,min=1,max=64"`
}

type viewResponse struct {
	RecipeID string    `json:"recipe_id"`
	ViewedAt time.Time `json:"viewed_at"`
}

type ratingResponse struct {
	RecipeID string    `json:"recipe_id"`
	Rating   int       `json:"rating"`
	RatedAt  time.Time `json:"rated_at"`
}

// requireUser writes a 400 and returns "" for anonymous requests.
func requireUser(rw *ResponseWriter, r *http.Request) string {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		rw.BadRequest(middleware.UserIDHeader + " header is required")
	}
	return userID
}

// recipeIDParam validates the {id} path segment.
func recipeIDParam(rw *ResponseWriter, r *http.Request) (string, bool) {
	p := recipePath{RecipeID: chi.URLParam(r, "id")}
	if verr := validation.ValidateStruct(&p); verr != nil {
		rw.ValidationError(verr)
		return "", false
	}
	return p.RecipeID, true
}

// decodeBody decodes a size-limited JSON body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// RecordView handles POST /api/v1/recipes/{id}/views.
func (h *Handler) RecordView(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID := requireUser(rw, r)
	if userID == "" {
		return
	}
	recipeID, ok := recipeIDParam(rw, r)
	if !ok {
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	at := h.now()
	if err := h.store.RecordView(ctx, userID, recipeID, at); err != nil {
		h.writeStoreError(rw, r, err, "Recipe not found")
		return
	}
	metrics.RecordInteraction("view")

	rw.Created(viewResponse{RecipeID: recipeID, ViewedAt: at})
}

// Rate handles POST /api/v1/recipes/{id}/ratings.
func (h *Handler) Rate(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID := requireUser(rw, r)
	if userID == "" {
		return
	}
	recipeID, ok := recipeIDParam(rw, r)
	if !ok {
		return
	}

	var req ratingRequest
	if err := decodeBody(w, r, &req); err != nil {
		rw.BadRequest("Invalid JSON body")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	at := h.now()
	if err := h.store.Rate(ctx, userID, recipeID, req.Rating, at); err != nil {
		h.writeStoreError(rw, r, err, "Recipe not found")
		return
	}
	metrics.RecordInteraction("rating")

	logging.Ctx(r.Context()).Debug().
		Str("user_id", userID).
		Str("recipe_id", recipeID).
		Int("rating", req.Rating).
		Msg("Recipe rated")

	rw.Created(ratingResponse{RecipeID: recipeID, Rating: req.Rating, RatedAt: at})
}

// SetPreferences handles PUT /api/v1/preferences. The body replaces the
// user's preferences; omitted fields are cleared.
func (h *Handler) SetPreferences(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	userID := requireUser(rw, r)
	if userID == "" {
		return
	}

	var req preferencesRequest
	if err := decodeBody(w, r, &req); err != nil {
		rw.BadRequest("Invalid JSON body")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	prefs := recommend.Preferences{
		FavoriteCuisines:    req.FavoriteCuisines,
		DietaryRestrictions: req.DietaryRestrictions,
		CookingTime:         req.CookingTime,
		MealTypes:           req.MealTypes,
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.store.SetPreferences(ctx, userID, prefs, h.now()); err != nil {
		h.writeStoreError(rw, r, err, "")
		return
	}
	metrics.RecordInteraction("preferences")

	rw.Success(prefs)
}
