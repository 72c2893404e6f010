package handler

import (
	"net/http"
)

type GetSupportedCodesResponse struct {
	Codes []string `json:"codes" example:"USD,EUR,JPY"`
}

// GetSupportedCodes godoc
// @Summary List supported currencies
// @Description Currency codes offered for conversion, in the order the rate provider lists them
// @Tags Currencies
// @Produce json
// @Success 200 {object} GetSupportedCodesResponse
// @Router /currencies [get]
func (h *Handler) GetSupportedCodes(w http.ResponseWriter, _ *http.Request) {
	codes := h.catalog.SupportedCodes()
	if codes == nil {
		codes = []string{}
	}
	writeJSON(w, http.StatusOK, GetSupportedCodesResponse{Codes: codes})
}
