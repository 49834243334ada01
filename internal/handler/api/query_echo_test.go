package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"RegimeCast/internal/domain/models"
	"RegimeCast/internal/engine"
	"RegimeCast/internal/library"
	"RegimeCast/internal/repository"
	"RegimeCast/internal/router"
	"RegimeCast/internal/service/ratelimit"
	"RegimeCast/internal/usecase"
	xlogger "RegimeCast/pkg/logger"

	"github.com/labstack/echo/v4"
)

type apiEnvelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestHandler(t *testing.T, limiter *ratelimit.Limiter, rate RateConfig) *echo.Echo {
	t.Helper()

	log, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	eng := engine.New(
		router.NewKeywordRouter(),
		engine.NewRegistry(library.Functions()),
		engine.NewAssetResolver(repository.NewSyntheticPriceSource(42)),
		engine.WithSmoother(library.SmoothRegime, 3),
	)
	orch := usecase.NewOrchestrator(eng, log)

	e := echo.New()
	NewQueryEchoHandler(log, orch, limiter, rate).RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, apiEnvelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env apiEnvelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestQueryEndpoint(t *testing.T) {
	e := newTestHandler(t, nil, RateConfig{})

	rec, env := doJSON(e, http.MethodPost, "/api/query", `{"query":"trend for btc"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("http code %d, want 200", rec.Code)
	}
	if env.Status != http.StatusOK {
		t.Fatalf("envelope status %d, want 200", env.Status)
	}

	var res models.QueryResponse
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(res.Regime) != 100 {
		t.Fatalf("regime length %d, want 100", len(res.Regime))
	}
	if res.Provenance != "Executed via RegimeCast orchestrator v1.0" {
		t.Fatalf("unexpected provenance %q", res.Provenance)
	}
	if res.Iterations != nil {
		t.Fatal("plain execution must not report iterations")
	}
	if res.Blueprint.Steps[0].FunctionName != "sma_crossover" {
		t.Fatalf("unexpected blueprint step %q", res.Blueprint.Steps[0].FunctionName)
	}
}

func TestQueryEndpointRecursive(t *testing.T) {
	e := newTestHandler(t, nil, RateConfig{})

	_, env := doJSON(e, http.MethodPost, "/api/query",
		`{"query":"trend for btc","recursive_stability":true,"max_iterations":5}`)
	if env.Status != http.StatusOK {
		t.Fatalf("envelope status %d, want 200", env.Status)
	}

	var res models.QueryResponse
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if res.Iterations == nil {
		t.Fatal("recursive execution must report iterations")
	}
	if *res.Iterations < 1 || *res.Iterations > 5 {
		t.Fatalf("iterations %d outside [1,5]", *res.Iterations)
	}
	if len(res.InitialRegime) != 100 {
		t.Fatalf("initial regime length %d, want 100", len(res.InitialRegime))
	}
	if !strings.Contains(res.Provenance, "stable after") {
		t.Fatalf("unexpected provenance %q", res.Provenance)
	}
}

func TestQueryEndpointValidation(t *testing.T) {
	e := newTestHandler(t, nil, RateConfig{})

	rec, env := doJSON(e, http.MethodPost, "/api/query", `{"query":""}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("http code %d, want 200 envelope", rec.Code)
	}
	if env.Status != http.StatusBadRequest {
		t.Fatalf("envelope status %d, want 400", env.Status)
	}
	if !strings.Contains(string(env.Data), "ERR_REQUIRED") {
		t.Fatalf("expected ERR_REQUIRED detail, got %s", env.Data)
	}
}

func TestQueryEndpointMaxIterationsBounds(t *testing.T) {
	e := newTestHandler(t, nil, RateConfig{})

	_, env := doJSON(e, http.MethodPost, "/api/query",
		`{"query":"trend","recursive_stability":true,"max_iterations":500}`)
	if env.Status != http.StatusBadRequest {
		t.Fatalf("envelope status %d, want 400", env.Status)
	}
	if !strings.Contains(string(env.Data), "ERR_LTE") {
		t.Fatalf("expected ERR_LTE detail, got %s", env.Data)
	}
}

func TestQueryEndpointRateLimit(t *testing.T) {
	e := newTestHandler(t, ratelimit.New(), RateConfig{Capacity: 1, RefillPerSec: 0})

	if _, env := doJSON(e, http.MethodPost, "/api/query", `{"query":"trend"}`); env.Status != http.StatusOK {
		t.Fatalf("first request: envelope status %d, want 200", env.Status)
	}
	_, env := doJSON(e, http.MethodPost, "/api/query", `{"query":"trend"}`)
	if env.Status != http.StatusTooManyRequests {
		t.Fatalf("second request: envelope status %d, want 429", env.Status)
	}
}

func TestFunctionsEndpoint(t *testing.T) {
	e := newTestHandler(t, nil, RateConfig{})

	rec, env := doJSON(e, http.MethodGet, "/api/functions", "")
	if rec.Code != http.StatusOK || env.Status != http.StatusOK {
		t.Fatalf("codes %d/%d, want 200/200", rec.Code, env.Status)
	}

	var data map[string][]string
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(data["functions"]) != 6 {
		t.Fatalf("expected 6 functions, got %v", data["functions"])
	}
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestHandler(t, nil, RateConfig{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("http code %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
