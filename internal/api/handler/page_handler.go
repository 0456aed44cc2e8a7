package handler

import (
	"errors"
	"net/http"
	"sort"

	"nerine_frontend/internal/app/service"
	"nerine_frontend/internal/common"
	"nerine_frontend/internal/common/security"
	"nerine_frontend/internal/domain/model"
	"nerine_frontend/internal/platform/backend"
	"nerine_frontend/internal/platform/config"

	"github.com/go-chi/chi/v5"
	"github.com/gosimple/slug"
)

// PageHandler serves the page-data endpoints the browser shell hydrates
// from. Every path resolves to content, a placeholder, a redirect or an
// explicit error payload; never to an unclassified failure.
type PageHandler struct {
	client   *backend.Client
	sessions *service.SessionService
	gate     *service.GateService
}

func NewPageHandler(client *backend.Client, sessions *service.SessionService, gate *service.GateService) *PageHandler {
	return &PageHandler{client: client, sessions: sessions, gate: gate}
}

func (h *PageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/layout", h.layout)
	r.Get("/login", h.login)
	r.Get("/challenges", h.challenges)
	r.Get("/challenges/{challenge}/solves", h.challengeSolves)
	r.Get("/leaderboard", h.leaderboard)
	r.Get("/leaderboard/{division}", h.leaderboard)
	r.Get("/profile/{team}", h.profile)
}

// sessionToken pulls the team session cookie; "" means anonymous.
func sessionToken(r *http.Request) string {
	c, err := r.Cookie("token")
	if err != nil {
		return ""
	}
	return c.Value
}

// respondFault handles errors that are fatal to the page: backend-reported
// ones keep their wire shape and status, transport faults become a 502.
func respondFault(w http.ResponseWriter, err error) {
	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		common.RespondWithAPIError(w, apiErr)
		return
	}
	common.RespondWithJSON(w, http.StatusBadGateway, map[string]string{
		"error":   string(common.ErrGeneric),
		"message": "backend unreachable",
	})
}

type layoutData struct {
	TeamID        *string        `json:"team_id"`
	AuthedProfile *model.Profile `json:"authed_profile"`
	Event         *model.Event   `json:"event"`
	APIBase       string         `json:"api_base"`
}

func (h *PageHandler) layout(w http.ResponseWriter, r *http.Request) {
	ev, err := h.client.Event(r.Context())
	if err != nil {
		respondFault(w, err)
		return
	}

	data := layoutData{Event: ev, APIBase: config.BrowserAPIBase}
	session, err := h.sessions.Resolve(r.Context(), sessionToken(r))
	if err != nil {
		respondFault(w, err)
		return
	}
	if session != nil {
		data.TeamID = &session.TeamID
		data.AuthedProfile = session.Profile
	}

	common.RespondWithJSON(w, http.StatusOK, data)
}

type loginData struct {
	TeamName *string          `json:"team_name"`
	Token    string           `json:"token,omitempty"`
	Error    *common.APIError `json:"error,omitempty"`
}

// login resolves a token handed over as a query parameter (the link from the
// login mail) into the team name shown on the confirmation screen. Errors
// render on the login page itself, never as a page failure.
func (h *PageHandler) login(w http.ResponseWriter, r *http.Request) {
	urlToken := r.URL.Query().Get("token")
	if urlToken == "" {
		common.RespondWithJSON(w, http.StatusOK, loginData{})
		return
	}

	teamID, err := security.TeamIDFromToken(urlToken)
	if err != nil {
		common.RespondWithJSON(w, http.StatusOK, loginData{
			Error: &common.APIError{Kind: common.ErrInvalidToken, Message: err.Error()},
		})
		return
	}

	prof, err := h.client.Profile(r.Context(), teamID, urlToken)
	if err != nil {
		var apiErr *common.APIError
		if errors.As(err, &apiErr) {
			common.RespondWithJSON(w, http.StatusOK, loginData{Error: apiErr})
			return
		}
		respondFault(w, err)
		return
	}

	common.RespondWithJSON(w, http.StatusOK, loginData{TeamName: &prof.Name, Token: urlToken})
}

type categoryGroup struct {
	Name       string            `json:"name"`
	Slug       string            `json:"slug"`
	Challenges []model.Challenge `json:"challenges"`
}

func groupByCategory(challs []model.Challenge) []categoryGroup {
	index := map[string]int{}
	var groups []categoryGroup
	for _, c := range challs {
		i, ok := index[c.Category]
		if !ok {
			i = len(groups)
			index[c.Category] = i
			groups = append(groups, categoryGroup{Name: c.Category, Slug: slug.Make(c.Category)})
		}
		groups[i].Challenges = append(groups[i].Challenges, c)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups
}

func (h *PageHandler) challenges(w http.ResponseWriter, r *http.Request) {
	ev, err := h.client.Event(r.Context())
	if err != nil {
		respondFault(w, err)
		return
	}

	page, err := h.gate.Challenges(r.Context(), ev, sessionToken(r))
	if err != nil {
		respondFault(w, err)
		return
	}

	switch page.Outcome {
	case service.OutcomePlaceholder:
		common.RespondWithJSON(w, http.StatusOK, map[string]any{
			"state":     "not_started",
			"starts_at": model.NewUTCTime(page.StartsAt),
		})
	case service.OutcomeLogin:
		http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
	default:
		common.RespondWithJSON(w, http.StatusOK, map[string]any{
			"state":      "ok",
			"categories": groupByCategory(page.Challenges),
		})
	}
}

// challengeSolves backs the solver list shown when a challenge is opened.
// Fetched on demand rather than with the challenge list.
func (h *PageHandler) challengeSolves(w http.ResponseWriter, r *http.Request) {
	solves, err := h.client.ChallengeSolves(r.Context(), chi.URLParam(r, "challenge"), sessionToken(r))
	if err != nil {
		respondFault(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, solves)
}

func (h *PageHandler) leaderboard(w http.ResponseWriter, r *http.Request) {
	division := chi.URLParam(r, "division")

	ev, err := h.client.Event(r.Context())
	if err != nil {
		respondFault(w, err)
		return
	}

	page, err := h.gate.Leaderboard(r.Context(), ev, division)
	if err != nil {
		respondFault(w, err)
		return
	}

	switch page.Outcome {
	case service.OutcomePlaceholder:
		common.RespondWithJSON(w, http.StatusOK, map[string]any{
			"state":     "not_started",
			"starts_at": model.NewUTCTime(page.StartsAt),
		})
	case service.OutcomeLogin:
		http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
	case service.OutcomeNotFound:
		common.RespondWithJSON(w, http.StatusNotFound, map[string]string{
			"state":   "not_found",
			"message": "no such division",
		})
	default:
		common.RespondWithJSON(w, http.StatusOK, map[string]any{
			"state":     "ok",
			"entries":   page.Entries,
			"badges":    badgeInfoFor(page.Entries),
			"divisions": ev.Divisions,
		})
	}
}

func (h *PageHandler) profile(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")

	prof, err := h.client.Profile(r.Context(), team, sessionToken(r))
	if err != nil {
		var apiErr *common.APIError
		if errors.As(err, &apiErr) {
			if apiErr.Kind == common.ErrInvalidToken {
				http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
				return
			}
			common.RespondWithJSON(w, http.StatusNotFound, map[string]string{
				"state":   "not_found",
				"message": "profile not found",
			})
			return
		}
		respondFault(w, err)
		return
	}

	common.RespondWithJSON(w, http.StatusOK, map[string]any{
		"state":   "ok",
		"profile": prof,
	})
}
