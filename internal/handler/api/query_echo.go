package api

import (
	"errors"
	"net/http"

	models "RegimeCast/internal/domain/models"
	"RegimeCast/internal/engine"
	"RegimeCast/internal/service/ratelimit"
	"RegimeCast/internal/usecase"
	xhttp "RegimeCast/pkg/http"
	xlogger "RegimeCast/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RateConfig bounds query throughput per client.
type RateConfig struct {
	Capacity     float64
	RefillPerSec float64
}

// QueryEchoHandler exposes the orchestrator over Echo.
type QueryEchoHandler struct {
	logger  *xlogger.Logger
	orch    *usecase.Orchestrator
	limiter *ratelimit.Limiter
	rate    RateConfig
}

func NewQueryEchoHandler(logger *xlogger.Logger, orch *usecase.Orchestrator, limiter *ratelimit.Limiter, rate RateConfig) *QueryEchoHandler {
	return &QueryEchoHandler{logger: logger, orch: orch, limiter: limiter, rate: rate}
}

func (h *QueryEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)

	g := e.Group("/api")
	g.POST("/query", h.Query)
	g.GET("/query/stream", h.Stream)
	g.GET("/functions", h.Functions)
}

func (h *QueryEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy", "version": "1.0.0"})
}

// Query executes a blueprint for the query, optionally through the
// stability loop.
func (h *QueryEchoHandler) Query(c echo.Context) error {
	if !h.allow(c, "/api/query") {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limit exceeded")
	}

	req := &models.QueryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if req.RecursiveStability {
		res, err := h.orch.RunUntilStable(c.Request().Context(), req.Query, req.MaxIterations)
		if err != nil {
			h.logger.Error("stability usecase error", xlogger.Error(err))
			return xhttp.AppErrorResponse(c, engineAppError(err))
		}
		iterations := res.Iterations
		return xhttp.SuccessResponse(c, models.QueryResponse{
			Regime:        res.Regime,
			Blueprint:     res.Blueprint,
			Provenance:    res.Provenance,
			Iterations:    &iterations,
			InitialRegime: res.InitialRegime,
		})
	}

	res, err := h.orch.Execute(c.Request().Context(), req.Query)
	if err != nil {
		h.logger.Error("query usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, engineAppError(err))
	}
	return xhttp.SuccessResponse(c, models.QueryResponse{
		Regime:     res.Regime,
		Blueprint:  res.Blueprint,
		Provenance: res.Provenance,
	})
}

// Functions lists the frozen registry's function names.
func (h *QueryEchoHandler) Functions(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string][]string{"functions": h.orch.FunctionNames()})
}

func (h *QueryEchoHandler) allow(c echo.Context, route string) bool {
	if h.limiter == nil {
		return true
	}
	key := ratelimit.RouteKey(route, c.RealIP())
	return h.limiter.Allow(key, h.rate.Capacity, h.rate.RefillPerSec)
}

// engineAppError maps the engine's error taxonomy onto HTTP application
// errors; anything unrecognized stays a 500.
func engineAppError(err error) error {
	switch {
	case errors.Is(err, engine.ErrConfiguration):
		return xhttp.NewAppError("ERR_CONFIGURATION", "", err.Error(), http.StatusBadRequest).WithError(err)
	case errors.Is(err, engine.ErrValidation):
		return xhttp.NewAppError("ERR_VALIDATION", "", err.Error(), http.StatusUnprocessableEntity).WithError(err)
	case errors.Is(err, engine.ErrDataUnavailable):
		return xhttp.NewAppError("ERR_DATA_UNAVAILABLE", "", err.Error(), http.StatusNotFound).WithError(err)
	case errors.Is(err, engine.ErrExecution):
		return xhttp.NewAppError("ERR_EXECUTION", "", err.Error(), http.StatusInternalServerError).WithError(err)
	default:
		return err
	}
}
