package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/c-semaan/daterange/internal/cache"
	"github.com/c-semaan/daterange/internal/config"
	"github.com/c-semaan/daterange/internal/humanize"
	"github.com/c-semaan/daterange/internal/period"
)

type handlers struct {
	cfg *config.Config

	offsetCache *cache.TTL[int]
}

func InitRoutes(cfg *config.Config) http.Handler {
	h := handlers{cfg, cache.NewTTL[int](cfg.OffsetTTL())}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /range/{preset}", h.rangeHandler)
	mux.HandleFunc("GET /past/{days}", h.pastHandler)
	mux.HandleFunc("GET /ago", h.agoHandler)
	// timezone names contain slashes, so the route takes the rest of the path
	mux.HandleFunc("GET /offset/{timezone...}", h.offsetHandler)

	return h.loggingMiddleware(mux)
}

// newPeriod builds a Period from query overrides, falling back to config.
func (h *handlers) newPeriod(r *http.Request) (*period.Period, error) {
	timezone := r.URL.Query().Get("timezone")
	if timezone == "" {
		timezone = h.cfg.Timezone
	}

	formatText := r.URL.Query().Get("format")
	if formatText == "" {
		formatText = h.cfg.Format
	}
	format, err := period.ParseFormat(formatText)
	if err != nil {
		return nil, err
	}

	return period.New(format, timezone)
}

func (h *handlers) rangeHandler(w http.ResponseWriter, r *http.Request) {
	preset, err := period.ParsePreset(r.PathValue("preset"))
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}

	p, err := h.newPeriod(r)
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}

	rng, err := p.DefinedRange(preset)
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}
	h.writeJSON(w, rng)
}

func (h *handlers) pastHandler(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(r.PathValue("days"))
	if err != nil {
		h.writeBadRequest(w, fmt.Errorf("days must be an integer: %w", err))
		return
	}

	p, err := h.newPeriod(r)
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}

	includingToday := r.URL.Query().Get("include-today") != "false"
	h.writeJSON(w, p.PastRange(days, includingToday))
}

func (h *handlers) agoHandler(w http.ResponseWriter, r *http.Request) {
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = h.cfg.Locale
	}

	at := humanize.ParseInstant(r.URL.Query().Get("date"))
	h.writeJSON(w, map[string]string{
		"phrase": humanize.TimeAgo(at, locale),
	})
}

func (h *handlers) offsetHandler(w http.ResponseWriter, r *http.Request) {
	timezone := r.PathValue("timezone")
	offset, err := h.offsetCache.GetOrCompute(timezone, func() (int, error) {
		return period.GetOffset(timezone)
	})
	if err != nil {
		h.writeBadRequest(w, err)
		return
	}

	h.writeJSON(w, map[string]any{
		"timezone":      timezone,
		"offsetMinutes": offset,
	})
}
