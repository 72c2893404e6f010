package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fxconvert/internal/domain"
	"fxconvert/internal/flag"
	"fxconvert/internal/rate"
	ratehandler "fxconvert/internal/rate/handler"
	"fxconvert/internal/ui"
	pagehandler "fxconvert/internal/ui/handler"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type tableClient map[string]map[string]float64

func (c tableClient) GetRateTable(_ context.Context, base string) (*domain.RateTable, error) {
	rates, ok := c[base]
	if !ok {
		return nil, domain.ErrRatesUnavailable
	}
	table := domain.NewRateTable(base)
	for _, code := range []string{"USD", "EUR", "JPY"} {
		if r, found := rates[code]; found {
			table.Put(code, r)
		}
	}
	return table, nil
}

type mapCache map[uuid.UUID]domain.Conversion

func (m mapCache) Get(id uuid.UUID) (domain.Conversion, bool) {
	c, ok := m[id]
	return c, ok
}

func (m mapCache) Set(c domain.Conversion) { m[c.ID] = c }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	client := tableClient{
		"USD": {"USD": 1, "EUR": 0.9, "JPY": 150},
		"EUR": {"USD": 1.1, "EUR": 1},
	}
	catalog := rate.NewCatalog()
	loader := rate.NewLoader(client, catalog, "USD")
	service := rate.NewService(rate.NewConverter(client, catalog), nil, mapCache{})
	flags := flag.NewResolver(flag.DefaultHost)

	page := ui.NewMemoryPage()
	controller := ui.NewController(loader, flags, service, page.Page(), domain.CurrencySelection{Source: "USD", Target: "EUR"}, nil)
	controller.LoadCurrencies(context.Background())

	return NewRouter(ratehandler.NewRateHandler(service, catalog, flags), pagehandler.NewPageHandler(controller, page))
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_CurrenciesInLoadOrder(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"codes":["USD","EUR","JPY"]}`, rr.Body.String())
}

func TestRouter_ConversionRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	body := `{"source":"USD","target":"EUR","amount":"100"}`
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/conversions", bytes.NewBufferString(body)))
	require.Equal(t, http.StatusCreated, rr.Code)

	var created ratehandler.ConversionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.Equal(t, "100 USD = 90.00 EUR", created.Result)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/conversions/"+created.ID, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var fetched ratehandler.ConversionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fetched))
	require.Equal(t, created.ID, fetched.ID)
}

func TestRouter_UnsupportedPair(t *testing.T) {
	router := newTestRouter(t)

	body := `{"source":"EUR","target":"JPY","amount":"1"}`
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/conversions", bytes.NewBufferString(body)))
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestRouter_PageFlow(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/v1/page/target", bytes.NewBufferString(`{"code":"JPY"}`)))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/page/convert", bytes.NewBufferString(`{"amount":"2"}`)))
	require.Equal(t, http.StatusOK, rr.Code)

	var state ui.PageState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	require.Equal(t, "2 USD = 300.00 JPY", state.Result)
	require.Equal(t, "https://flagcdn.com/w40/us.png", state.SourceFlag)
	require.Equal(t, "https://flagcdn.com/w40/jp.png", state.TargetFlag)
	require.Empty(t, state.Notifications)
}
