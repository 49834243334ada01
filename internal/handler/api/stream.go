package api

import (
	"net/http"

	models "RegimeCast/internal/domain/models"
	xhttp "RegimeCast/pkg/http"
	xlogger "RegimeCast/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type streamFrame struct {
	Type      string                    `json:"type"`
	Iteration *models.IterationSnapshot `json:"iteration,omitempty"`
	Result    *models.QueryResponse     `json:"result,omitempty"`
	Error     string                    `json:"error,omitempty"`
}

// Stream runs the stability loop for a query and pushes one frame per
// smoothing round over a WebSocket, followed by the final result. Query
// parameters: query (required), max_iterations (default 10).
func (h *QueryEchoHandler) Stream(c echo.Context) error {
	if !h.allow(c, "/api/query/stream") {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limit exceeded")
	}

	query := c.QueryParam("query")
	if query == "" {
		return xhttp.BadRequestResponse(c, []xhttp.ValidationError{{
			Code: "ERR_REQUIRED", Field: "query", Message: "query is required",
		}})
	}
	maxIterations := xhttp.ParseIntDefault(c.QueryParam("max_iterations"), 10)
	if maxIterations < 1 || maxIterations > 100 {
		maxIterations = 10
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	// All writes happen on this goroutine: the observer fires synchronously
	// inside the stability loop.
	observe := func(snap models.IterationSnapshot) {
		if werr := conn.WriteJSON(streamFrame{Type: "iteration", Iteration: &snap}); werr != nil {
			h.logger.Warn("stream write failed", xlogger.Error(werr))
		}
	}

	res, err := h.orch.RunUntilStableObserved(c.Request().Context(), query, maxIterations, observe)
	if err != nil {
		h.logger.Error("stream usecase error", xlogger.Error(err))
		_ = conn.WriteJSON(streamFrame{Type: "error", Error: err.Error()})
		return nil
	}

	iterations := res.Iterations
	_ = conn.WriteJSON(streamFrame{Type: "result", Result: &models.QueryResponse{
		Regime:        res.Regime,
		Blueprint:     res.Blueprint,
		Provenance:    res.Provenance,
		Iterations:    &iterations,
		InitialRegime: res.InitialRegime,
	}})
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
	return nil
}
