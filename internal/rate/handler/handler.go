package handler

import (
	"context"
	"encoding/json"
	"fxconvert/internal/domain"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type conversionService interface {
	Convert(ctx context.Context, source, target, amountText string) (domain.Conversion, error)
	GetConversion(ctx context.Context, id uuid.UUID) (domain.Conversion, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Conversion, error)
}

type codeLister interface {
	SupportedCodes() []string
}

type flagResolver interface {
	ResolveFlagURL(currencyCode string) string
}

type Handler struct {
	service conversionService
	catalog codeLister
	flags   flagResolver
}

func NewRateHandler(service conversionService, catalog codeLister, flags flagResolver) *Handler {
	return &Handler{service: service, catalog: catalog, flags: flags}
}

type errorResponse struct {
	Error string `json:"error"`
}

type ConversionResponse struct {
	ID        string    `json:"id" example:"77b5d9f5-0569-47e3-aee2-f659d59fbd97"`
	Source    string    `json:"source" example:"USD"`
	Target    string    `json:"target" example:"EUR"`
	Amount    string    `json:"amount" example:"100"`
	Rate      float64   `json:"rate" example:"0.9"`
	Converted string    `json:"converted" example:"90.00"`
	Result    string    `json:"result" example:"100 USD = 90.00 EUR"`
	CreatedAt time.Time `json:"created_at" example:"2025-01-02T15:04:05Z"`
}

func toConversionResponse(c domain.Conversion) ConversionResponse {
	return ConversionResponse{
		ID:        c.ID.String(),
		Source:    c.Source,
		Target:    c.Target,
		Amount:    c.Amount,
		Rate:      c.Rate,
		Converted: c.Converted,
		Result:    c.Text(),
		CreatedAt: c.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}
