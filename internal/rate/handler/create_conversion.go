package handler

import (
	"encoding/json"
	"errors"
	"fxconvert/internal/domain"
	"fxconvert/internal/rate"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

type CreateConversionRequest struct {
	Source string `json:"source" example:"USD"`
	Target string `json:"target" example:"EUR"`
	Amount string `json:"amount" example:"100"`
}

// CreateConversion godoc
// @Summary Convert an amount
// @Description Convert amount from source to target using the live rate of source
// @Tags Conversions
// @Accept json
// @Produce json
// @Param request body CreateConversionRequest true "Conversion request"
// @Success 201 {object} ConversionResponse
// @Failure 400 {object} errorResponse
// @Failure 422 {object} errorResponse "unsupported currency pair"
// @Failure 502 {object} errorResponse
// @Router /conversions [post]
func (h *Handler) CreateConversion(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 512)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req CreateConversionRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	source := strings.ToUpper(strings.TrimSpace(req.Source))
	target := strings.ToUpper(strings.TrimSpace(req.Target))

	conversion, err := h.service.Convert(r.Context(), source, target, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, rate.ErrInvalidAmount),
			errors.Is(err, rate.ErrSourceRequired),
			errors.Is(err, rate.ErrTargetRequired),
			errors.Is(err, rate.ErrSourceUnsupported),
			errors.Is(err, rate.ErrTargetUnsupported):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, rate.ErrUnsupportedPair):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrRatesUnavailable):
			msg := "exchange rates are unavailable, try again later"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateConversion", "source": source, "target": target}).Error(msg)
			writeError(w, http.StatusBadGateway, msg)
		default:
			msg := "ups, couldn't convert this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateConversion", "source": source, "target": target}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	writeJSON(w, http.StatusCreated, toConversionResponse(conversion))
}
