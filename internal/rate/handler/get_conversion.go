package handler

import (
	"errors"
	"fxconvert/internal/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GetConversion godoc
// @Summary Get conversion by ID
// @Description Get a previously completed conversion
// @Tags Conversions
// @Produce json
// @Param id path string true "Conversion ID"
// @Success 200 {object} ConversionResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /conversions/{id} [get]
func (h *Handler) GetConversion(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid conversion ID format")
		return
	}

	conversion, err := h.service.GetConversion(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrConversionNotFound) {
			writeError(w, http.StatusNotFound, "conversion not found")
			return
		}
		msg := "ups, couldn't get conversion this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetConversion", "conversion_id": id}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, toConversionResponse(conversion))
}
