// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/larder/internal/catalog"
	"github.com/tomtom215/larder/internal/logging"
	"github.com/tomtom215/larder/internal/metrics"
	"github.com/tomtom215/larder/internal/middleware"
	"github.com/tomtom215/larder/internal/recommend"
	"github.com/tomtom215/larder/internal/validation"
)

// Recommendation types accepted by the type query parameter.
const (
	TypePersonalized = "personalized"
	TypeSimilar      = "similar"
	TypeTrending     = "trending"
	TypeOccasion     = "occasion"
	TypeCategory     = "category"
	TypeNewUsers     = "new_users"
)

type recommendationQuery struct {
	Type          string   `query:"type" validate:"oneof=personalized similar trending occasion category new_users"`
	Limit         int      `query:"limit" validate:"gte=0"`
	Exclude       []string `query:"exclude" validate:"max=200,dive,recipe_id"`
	ExcludeViewed bool     `query:"exclude_viewed"`
	BaseRecipeID  string   `query:"baseRecipeId" validate:"required_if=Type similar,omitempty,recipe_id"`
	Occasion      string   `query:"occasion" validate:"required_if=Type occasion"`
	Category      string   `query:"category" validate:"required_if=Type category"`
	Period        string   `query:"period" validate:"omitempty,period"`
}

// parseRecommendationQuery reads the query string. Malformed numbers and
// booleans are reported as bad requests before validation runs.
func parseRecommendationQuery(r *http.Request) (recommendationQuery, string) {
	q := r.URL.Query()
	p := recommendationQuery{
		Type:         strings.TrimSpace(q.Get("type")),
		BaseRecipeID: strings.TrimSpace(q.Get("baseRecipeId")),
		Occasion:     strings.TrimSpace(q.Get("occasion")),
		Category:     strings.TrimSpace(q.Get("category")),
		Period:       strings.ToLower(strings.TrimSpace(q.Get("period"))),
		Exclude:      splitList(q.Get("exclude")),
	}
	if p.Type == "" {
		p.Type = TypePersonalized
	}

	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return p, "limit must be an integer"
		}
		p.Limit = n
	}
	if s := q.Get("exclude_viewed"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return p, "exclude_viewed must be true or false"
		}
		p.ExcludeViewed = b
	}
	return p, ""
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Recommendations handles GET /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	start := time.Now()

	params, msg := parseRecommendationQuery(r)
	if msg != "" {
		rw.BadRequest(msg)
		return
	}
	if verr := validation.ValidateStruct(&params); verr != nil {
		rw.ValidationError(verr)
		return
	}
	limit := h.cfg.Recommend.ClampLimit(params.Limit)

	ctx, cancel := h.requestContext(r)
	defer cancel()

	recipes, err := h.store.Recipes(ctx)
	if err != nil {
		metrics.RecordRecommendation(params.Type, 0, time.Since(start), err)
		h.writeStoreError(rw, r, err, "")
		return
	}

	userID := middleware.GetUserID(r.Context())
	var profile catalog.Profile
	if params.Type == TypePersonalized || params.ExcludeViewed {
		profile, err = h.store.Profile(ctx, userID)
		if err != nil {
			metrics.RecordRecommendation(params.Type, 0, time.Since(start), err)
			h.writeStoreError(rw, r, err, "")
			return
		}
	}

	engine := recommend.NewEngine(recommend.Input{
		Recipes:     recipes,
		Preferences: profile.Preferences,
		ViewHistory: profile.ViewHistory,
		Ratings:     profile.Ratings,
		Now:         h.now(),
	}, h.engineCfg, *logging.Ctx(r.Context()))

	exclude := params.Exclude
	if params.ExcludeViewed {
		exclude = append(append([]string(nil), exclude...), engine.ViewHistory()...)
	}

	results := h.rank(engine, &params, exclude, limit)
	metrics.RecordRecommendation(params.Type, len(results), time.Since(start), nil)

	logging.Ctx(r.Context()).Debug().
		Str("type", params.Type).
		Str("user_id", userID).
		Bool("new_user", engine.IsNewUser()).
		Int("published", engine.PublishedCount()).
		Int("limit", limit).
		Int("results", len(results)).
		Msg("Recommendations served")

	rw.SuccessList(results, len(results))
}

// rank runs the selected ranking. Only the personalized ranking excludes
// natively; the others over-fetch by len(exclude) and filter.
func (h *Handler) rank(e *recommend.Engine, p *recommendationQuery, exclude []string, limit int) []recommend.ScoredRecipe {
	if p.Type == TypePersonalized {
		if e.IsNewUser() {
			return newUserFirst(e, exclude, limit)
		}
		return e.Recommendations(exclude, limit)
	}

	fetch := limit + len(exclude)
	var ranked []recommend.ScoredRecipe
	switch p.Type {
	case TypeSimilar:
		ranked = e.Similar(p.BaseRecipeID, fetch)
	case TypeTrending:
		period := recommend.PeriodWeekly
		if p.Period != "" {
			period = recommend.Period(p.Period)
		}
		ranked = e.Trending(fetch, period)
	case TypeOccasion:
		ranked = e.ForOccasion(p.Occasion, fetch)
	case TypeCategory:
		ranked = e.TrendingByCategory(p.Category, fetch)
	case TypeNewUsers:
		ranked = e.TrendingForNewUsers(fetch)
	default:
		ranked = []recommend.ScoredRecipe{}
	}
	return filterExcluded(ranked, exclude, limit)
}

// newUserFirst leads with the new-user ranking and fills the remaining
// slots from the personalized ranking.
func newUserFirst(e *recommend.Engine, exclude []string, limit int) []recommend.ScoredRecipe {
	picks := filterExcluded(e.TrendingForNewUsers(limit+len(exclude)), exclude, limit)
	if len(picks) >= limit {
		return picks
	}

	seen := append([]string(nil), exclude...)
	for i := range picks {
		seen = append(seen, picks[i].Recipe.ID)
	}
	return append(picks, e.Recommendations(seen, limit-len(picks))...)
}

func filterExcluded(ranked []recommend.ScoredRecipe, exclude []string, limit int) []recommend.ScoredRecipe {
	if len(exclude) == 0 {
		if len(ranked) > limit {
			ranked = ranked[:limit]
		}
		return ranked
	}

	skip := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}
	out := make([]recommend.ScoredRecipe, 0, limit)
	for i := range ranked {
		if len(out) == limit {
			break
		}
		if _, ok := skip[ranked[i].Recipe.ID]; ok {
			continue
		}
		out = append(out, ranked[i])
	}
	return out
}

// Occasions handles GET /api/v1/recommendations/occasions.
func (h *Handler) Occasions(w http.ResponseWriter, r *http.Request) {
	tags := recommend.Occasions()
	NewResponseWriter(w, r).SuccessList(tags, len(tags))
}

// Categories handles GET /api/v1/recommendations/categories.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	tags := recommend.Categories()
	NewResponseWriter(w, r).SuccessList(tags, len(tags))
}
