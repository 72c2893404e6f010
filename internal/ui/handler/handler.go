package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fxconvert/internal/domain"
	"fxconvert/internal/ui"
	"net/http"
	"strings"
)

type pageController interface {
	LoadCurrencies(ctx context.Context)
	SelectSource(code string) error
	SelectTarget(code string) error
	Selection() domain.CurrencySelection
	Convert(ctx context.Context, selection domain.CurrencySelection, amountText string)
}

type pageReader interface {
	Snapshot() ui.PageState
}

type Handler struct {
	controller pageController
	page       pageReader
}

func NewPageHandler(controller pageController, page pageReader) *Handler {
	return &Handler{controller: controller, page: page}
}

type errorResponse struct {
	Error string `json:"error"`
}

type SelectRequest struct {
	Code string `json:"code" example:"JPY"`
}

type ConvertRequest struct {
	Amount string `json:"amount" example:"100"`
}

// GetPage godoc
// @Summary Get page state
// @Description Selector options, selection, flag URLs and result text. Pending notifications are returned once
// @Tags Page
// @Produce json
// @Success 200 {object} ui.PageState
// @Router /page [get]
func (h *Handler) GetPage(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.page.Snapshot())
}

// SelectSource godoc
// @Summary Change the source currency
// @Tags Page
// @Accept json
// @Produce json
// @Param request body SelectRequest true "Currency code"
// @Success 200 {object} ui.PageState
// @Failure 400 {object} errorResponse
// @Router /page/source [put]
func (h *Handler) SelectSource(w http.ResponseWriter, r *http.Request) {
	h.selectCode(w, r, h.controller.SelectSource)
}

// SelectTarget godoc
// @Summary Change the target currency
// @Tags Page
// @Accept json
// @Produce json
// @Param request body SelectRequest true "Currency code"
// @Success 200 {object} ui.PageState
// @Failure 400 {object} errorResponse
// @Router /page/target [put]
func (h *Handler) SelectTarget(w http.ResponseWriter, r *http.Request) {
	h.selectCode(w, r, h.controller.SelectTarget)
}

func (h *Handler) selectCode(w http.ResponseWriter, r *http.Request, selectFn func(string) error) {
	var req SelectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := selectFn(strings.ToUpper(strings.TrimSpace(req.Code))); err != nil {
		if errors.Is(err, ui.ErrOptionNotOffered) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "ups, couldn't change currency this time")
		return
	}
	writeJSON(w, http.StatusOK, h.page.Snapshot())
}

// Convert godoc
// @Summary Click convert
// @Description Converts the amount with the current selection. Failures show up as notifications
// @Tags Page
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Amount"
// @Success 200 {object} ui.PageState
// @Failure 400 {object} errorResponse
// @Router /page/convert [post]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.controller.Convert(r.Context(), h.controller.Selection(), req.Amount)
	writeJSON(w, http.StatusOK, h.page.Snapshot())
}

// Reload godoc
// @Summary Reload the page
// @Description Fetches the currency list again and resets the page
// @Tags Page
// @Produce json
// @Success 200 {object} ui.PageState
// @Router /page/reload [post]
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	h.controller.LoadCurrencies(r.Context())
	writeJSON(w, http.StatusOK, h.page.Snapshot())
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 256)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}
