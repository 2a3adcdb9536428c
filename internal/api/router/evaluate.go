package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/DjordjeVuckovic/booltable/internal/history"
	"github.com/DjordjeVuckovic/booltable/internal/truthtable"
	"github.com/DjordjeVuckovic/booltable/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Evaluator is satisfied by *booltable.Engine.
type Evaluator interface {
	EvaluateLine(line string) (*truthtable.TruthTable, error)
}

type EvaluateRequest struct {
	Line string `json:"line" example:"a AND b = out"`
}

type EvaluateResponse struct {
	ID        uuid.UUID        `json:"id"`
	Variables []string         `json:"variables"`
	Output    string           `json:"output"`
	Rows      []truthtable.Row `json:"rows"`
}

type HistoryResponse struct {
	Records []history.Record `json:"records"`
}

type EvaluateRouter struct {
	e         *echo.Echo
	evaluator Evaluator
	history   history.Storer
}

func NewEvaluateRouter(e *echo.Echo, evaluator Evaluator, storer history.Storer) *EvaluateRouter {
	return &EvaluateRouter{
		e:         e,
		evaluator: evaluator,
		history:   storer,
	}
}

func (r *EvaluateRouter) Bind() {
	r.e.POST("/evaluate", r.evaluateHandler)
	r.e.GET("/history", r.historyHandler)
}

// evaluateHandler godoc
// @Summary Evaluate an equation
// @Description Parses `<expression> = <name>` and returns its full truth table
// @Tags evaluate
// @Accept json
// @Produce json
// @Param request body EvaluateRequest true "Equation line"
// @Success 200 {object} EvaluateResponse
// @Failure 400 {object} map[string]any
// @Failure 422 {object} map[string]any
// @Router /evaluate [post]
func (r *EvaluateRouter) evaluateHandler(c echo.Context) error {
	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Line) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "line is required")
	}

	table, err := r.evaluator.EvaluateLine(req.Line)
	if err != nil {
		return err
	}

	record := history.NewRecord(req.Line, table)
	if r.history != nil {
		if _, err := r.history.Save(c.Request().Context(), record); err != nil {
			slog.Error("Failed to save evaluation history", "id", record.ID, "error", err)
		}
	}

	return c.JSON(http.StatusOK, EvaluateResponse{
		ID:        record.ID,
		Variables: table.Variables,
		Output:    table.Output,
		Rows:      table.Rows,
	})
}

// historyHandler godoc
// @Summary Recent evaluations
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of records" default(20)
// @Success 200 {object} HistoryResponse
// @Router /history [get]
func (r *EvaluateRouter) historyHandler(c echo.Context) error {
	if r.history == nil {
		return c.JSON(http.StatusOK, HistoryResponse{Records: []history.Record{}})
	}

	var req pagination.LimitRequest
	if err := echo.QueryParamsBinder(c).Int("limit", &req.Limit).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
	}
	if err := req.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	records, err := r.history.List(c.Request().Context(), req.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, HistoryResponse{Records: records})
}
