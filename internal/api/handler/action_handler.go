package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"nerine_frontend/internal/common"
	"nerine_frontend/internal/domain/model"
	"nerine_frontend/internal/platform/backend"

	"github.com/go-chi/chi/v5"
)

// ActionHandler forwards browser-initiated mutations to the backend. These
// are pass-throughs: the backend owns all authorization and re-checks the
// session token on every call.
type ActionHandler struct {
	client *backend.Client
}

func NewActionHandler(client *backend.Client) *ActionHandler {
	return &ActionHandler{client: client}
}

func (h *ActionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Post("/verify_email", h.verifyEmail)
	r.Post("/verification_details", h.verificationDetails)
	r.Post("/resend_token", h.resendToken)
	r.Get("/gen_token", h.genToken)
	r.Post("/update_profile", h.updateProfile)
	r.Post("/verify_email_update", h.verifyEmailUpdate)
	r.Post("/submit", h.submitFlag)
	r.Post("/deploy/{challengeID}", h.deployChallenge)
	r.Delete("/deploy/{challengeID}", h.destroyChallenge)
	r.Get("/deployment/{deploymentID}", h.getDeployment)
}

func decodeBody[T any](w http.ResponseWriter, r *http.Request, req *T) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		common.RespondWithJSON(w, http.StatusBadRequest, map[string]string{
			"error":   string(common.ErrValidation),
			"message": "invalid request payload: " + err.Error(),
		})
		return false
	}
	return true
}

func (h *ActionHandler) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	team, err := h.client.Register(r.Context(), req.Email, req.Name)
	if err != nil {
		respondFault(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, team)
}

// login exchanges a mailed login token for a session: the backend validates
// it, and on success the token becomes the session cookie. The cookie is
// host-only and outlives the browser session; the backend enforces expiry.
func (h *ActionHandler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	id, err := h.client.Login(r.Context(), req.Token)
	if err != nil {
		respondFault(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:   "token",
		Value:  req.Token,
		Path:   "/",
		MaxAge: 30 * 24 * 60 * 60,
	})
	common.RespondWithJSON(w, http.StatusOK, id)
}

func (h *ActionHandler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	id, err := h.client.VerifyEmail(r.Context(), req.Token)
	if err != nil {
		respondFault(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, id)
}

func (h *ActionHandler) verificationDetails(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	details, err := h.client.VerificationDetails(r.Context(), req.Token)
	if err != nil {
		respondFault(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, details)
}

func (h *ActionHandler) resendToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.client.ResendToken(r.Context(), req.Email); err != nil {
		respondFault(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *ActionHandler) genToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.client.GenToken(r.Context(), sessionToken(r))
	if err != nil {
		respondFault(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, token)
}

func (h *ActionHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string  `json:"email"`
		Name     string  `json:"name"`
		Division *string `json:"division"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	upd, err := h.client.UpdateProfile(r.Context(), sessionToken(r), req.Email, req.Name, req.Division)
	if err != nil {
		respondFault(w, err)
		return
	}
	if upd.Team != nil {
		common.RespondWithJSON(w, http.StatusOK, upd.Team)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, upd.PendingEmail)
}

func (h *ActionHandler) verifyEmailUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	team, err := h.client.VerifyEmailUpdate(r.Context(), req.Token)
	if err != nil {
		respondFault(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, team)
}

// submitFlag special-cases wrong_flag: it renders as an in-place rejection
// on the submission form, not as a page-level failure.
func (h *ActionHandler) submitFlag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChallengeID string `json:"challenge_id"`
		Flag        string `json:"flag"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.client.SubmitFlag(r.Context(), req.ChallengeID, req.Flag, sessionToken(r))
	if err != nil {
		var apiErr *common.APIError
		if errors.As(err, &apiErr) && apiErr.Kind == common.ErrWrongFlag {
			common.RespondWithJSON(w, http.StatusOK, map[string]any{
				"accepted": false,
				"message":  apiErr.Message,
			})
			return
		}
		respondFault(w, err)
		return
	}

	common.RespondWithJSON(w, http.StatusOK, map[string]any{"accepted": true})
}

type connection struct {
	Port    uint16 `json:"port"`
	Kind    string `json:"kind"`
	Address string `json:"address"`
}

// connections flattens a deployment's port mappings for display. Both
// mapping variants must render; there is deliberately no fallback arm to
// swallow one. Nothing renders once the deployment is unreachable.
func connections(d *model.ChallengeDeployment) []connection {
	if !d.Reachable() {
		return nil
	}
	var out []connection
	for _, data := range d.Data {
		for port, mapping := range data.Ports {
			switch m := mapping.(type) {
			case model.TCPMapping:
				addr := strconv.Itoa(int(m.Port))
				if m.Base != "" {
					addr = m.Base + ":" + addr
				}
				out = append(out, connection{Port: port, Kind: model.MappingTCP, Address: addr})
			case model.HTTPMapping:
				out = append(out, connection{Port: port, Kind: model.MappingHTTP, Address: "https://" + m.Subdomain + "." + m.Base})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Port < out[j].Port })
	return out
}

type deploymentView struct {
	*model.ChallengeDeployment
	State       model.DeploymentState `json:"state"`
	Reachable   bool                  `json:"reachable"`
	Connections []connection          `json:"connections"`
}

func respondDeployment(w http.ResponseWriter, d *model.ChallengeDeployment) {
	common.RespondWithJSON(w, http.StatusOK, deploymentView{
		ChallengeDeployment: d,
		State:               d.State(),
		Reachable:           d.Reachable(),
		Connections:         connections(d),
	})
}

func (h *ActionHandler) deployChallenge(w http.ResponseWriter, r *http.Request) {
	deployment, err := h.client.DeployChallenge(r.Context(), chi.URLParam(r, "challengeID"), sessionToken(r))
	if err != nil {
		respondFault(w, err)
		return
	}
	respondDeployment(w, deployment)
}

func (h *ActionHandler) destroyChallenge(w http.ResponseWriter, r *http.Request) {
	if err := h.client.DestroyChallenge(r.Context(), chi.URLParam(r, "challengeID"), sessionToken(r)); err != nil {
		respondFault(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *ActionHandler) getDeployment(w http.ResponseWriter, r *http.Request) {
	deployment, err := h.client.GetChallengeDeployment(r.Context(), chi.URLParam(r, "deploymentID"), sessionToken(r))
	if err != nil {
		respondFault(w, err)
		return
	}
	respondDeployment(w, deployment)
}

// Logout clears the session cookie and bounces back to the referring page.
// The token itself stays valid server-side until it expires; logout is
// purely a local forget.
func (h *ActionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:   "token",
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
