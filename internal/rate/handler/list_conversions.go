package handler

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

type ListConversionsResponse struct {
	Conversions []ConversionResponse `json:"conversions"`
}

// ListConversions godoc
// @Summary List recent conversions
// @Description Most recent conversions first. Empty when history is not persisted
// @Tags Conversions
// @Produce json
// @Param limit query int false "Max number of conversions (1-100)"
// @Success 200 {object} ListConversionsResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /conversions [get]
func (h *Handler) ListConversions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	conversions, err := h.service.ListRecent(r.Context(), limit)
	if err != nil {
		msg := "ups, couldn't list conversions this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListConversions", "limit": limit}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := ListConversionsResponse{Conversions: make([]ConversionResponse, 0, len(conversions))}
	for _, c := range conversions {
		res.Conversions = append(res.Conversions, toConversionResponse(c))
	}
	writeJSON(w, http.StatusOK, res)
}
