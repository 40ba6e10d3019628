// Package httpapi exposes the codex service as a JSON API and serves
// the static browser front end.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/arcdex/arcdex/internal/errors"
	"github.com/arcdex/arcdex/internal/query"
	"github.com/arcdex/arcdex/internal/render/htmlfmt"
	"github.com/arcdex/arcdex/internal/services/codex"
)

// Config holds the dependencies for the HTTP handler
type Config struct {
	Service codex.Service

	// StaticDir is the directory served at the site root. Empty
	// disables static serving, leaving only the API.
	StaticDir string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Service == nil {
		vb.RequiredField("Service")
	}

	return vb.Build()
}

// Handler routes API and static requests
type Handler struct {
	service   codex.Service
	staticDir string
	mux       *http.ServeMux
}

// New creates a new HTTP handler with its routes registered
func New(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	h := &Handler{
		service:   cfg.Service,
		staticDir: cfg.StaticDir,
		mux:       http.NewServeMux(),
	}
	h.routes()
	return h, nil
}

// ServeHTTP implements http.Handler with the middleware chain applied
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	withRecovery(withRequestID(withAccessLog(h.mux))).ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.mux.HandleFunc("GET /healthz", h.handleHealth)

	h.mux.HandleFunc("GET /api/items", h.handleListItems)
	h.mux.HandleFunc("GET /api/items/{id}", h.handleGetItem)

	h.mux.HandleFunc("GET /api/weapons", h.handleListWeapons)
	h.mux.HandleFunc("GET /api/weapons/{token}", h.handleGetWeapon)

	h.mux.HandleFunc("GET /api/enemies", h.handleListEnemies)
	h.mux.HandleFunc("GET /api/enemies/{token}", h.handleGetEnemy)

	h.mux.HandleFunc("GET /api/builds", h.handleListBuilds)
	h.mux.HandleFunc("GET /api/builds/{token}", h.handleGetBuild)

	h.mux.HandleFunc("GET /api/gadgets", h.handleListGadgets)
	h.mux.HandleFunc("GET /api/gadgets/{token}", h.handleGetGadget)

	h.mux.HandleFunc("GET /api/guides", h.handleListGuides)
	h.mux.HandleFunc("GET /api/guides/{topic}", h.handleGetGuide)

	h.mux.HandleFunc("GET /api/search", h.handleSearch)
	h.mux.HandleFunc("GET /api/suggest", h.handleSuggest)
	h.mux.HandleFunc("GET /api/tip", h.handleTip)

	if h.staticDir != "" {
		h.mux.Handle("GET /", http.FileServer(http.Dir(h.staticDir)))
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	output, err := h.service.ListItems(r.Context(), &codex.ListItemsInput{
		Spec: query.Spec{
			SearchText: q.Get("search"),
			Category:   q.Get("category"),
			Tier:       q.Get("tier"),
			Rarity:     q.Get("rarity"),
		},
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) handleGetItem(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetItem(r.Context(), &codex.GetItemInput{Token: r.PathValue("id")})
	if err != nil {
		writeError(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(htmlfmt.Detail(output.Sections)))
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) handleListWeapons(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListWeapons(r.Context(), &codex.ListWeaponsInput{
		Filter: r.URL.Query().Get("filter"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) handleGetWeapon(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetWeapon(r.Context(), &codex.GetWeaponInput{Token: r.PathValue("token")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) handleListEnemies(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListEnemies(r.Context(), &codex.ListEnemiesInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) handleGetEnemy(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetEnemy(r.Context(), &codex.GetEnemyInput{Token: r.PathValue("token")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) handleListBuilds(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListBuilds(r.Context(), &codex.ListBuildsInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) handleGetBuild(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetBuild(r.Context(), &codex.GetBuildInput{Token: r.PathValue("token")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) handleListGadgets(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListGadgets(r.Context(), &codex.ListGadgetsInput{
		Category: r.URL.Query().Get("category"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) handleGetGadget(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetGadget(r.Context(), &codex.GetGadgetInput{Token: r.PathValue("token")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) handleListGuides(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.ListGuides(r.Context(), &codex.ListGuidesInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) handleGetGuide(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetGuide(r.Context(), &codex.GetGuideInput{Topic: r.PathValue("topic")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.Search(r.Context(), &codex.SearchInput{
		Query: r.URL.Query().Get("q"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) handleSuggest(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.Suggest(r.Context(), &codex.SuggestInput{
		Domain:  codex.Domain(r.URL.Query().Get("domain")),
		Partial: r.URL.Query().Get("q"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *Handler) handleTip(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.RandomTip(r.Context(), &codex.RandomTipInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encode response", "error", err)
	}
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// genericServerMessage replaces the error message on every 5xx
// response. The real error only ever reaches the log.
const genericServerMessage = "An internal error occurred."

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	message := errors.GetMessage(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path,
			"code", code.String(),
			"error", err,
		)
		message = genericServerMessage
	}

	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:    code.String(),
		Message: message,
	}})
}
