package handler

import (
	"fxconvert/internal/flag"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type GetFlagResponse struct {
	Code        string `json:"code" example:"EUR"`
	CountryCode string `json:"country_code" example:"eu"`
	URL         string `json:"url" example:"https://flagcdn.com/w40/eu.png"`
}

// GetFlag godoc
// @Summary Resolve a flag image
// @Description Flag image URL for a currency code. Any code resolves, unknown ones may 404 at the image host
// @Tags Currencies
// @Produce json
// @Param code path string true "Currency code"
// @Success 200 {object} GetFlagResponse
// @Router /flags/{code} [get]
func (h *Handler) GetFlag(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	writeJSON(w, http.StatusOK, GetFlagResponse{
		Code:        code,
		CountryCode: flag.CountryCode(code),
		URL:         h.flags.ResolveFlagURL(code),
	})
}
