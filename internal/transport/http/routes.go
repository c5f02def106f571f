// Package http exposes internal/core's solver over a gin HTTP API.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nurikabe/internal/applog"
	"nurikabe/internal/core"
	"nurikabe/internal/puzzles"
	"nurikabe/pkg/config"
	"nurikabe/pkg/constants"
)

var cfg *config.Config

// RegisterRoutes wires the API's routes onto r.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)
	r.GET("/puzzles/:seed", puzzleHandler)
	r.POST("/solve", solveHandler)
	r.POST("/solve/trace", solveTraceHandler)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

func puzzleHandler(c *gin.Context) {
	seed := c.Param("seed")

	loader := puzzles.Global()
	if loader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "puzzles not loaded"})
		return
	}

	g, p, index, err := loader.GetPuzzleBySeed(seed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"seed":         seed,
		"puzzle_index": index,
		"name":         p.Name,
		"source":       p.Source,
		"difficulty":   p.Difficulty,
		"grid":         g.ToInputString(),
	})
}

// SolveRequest is the body of POST /solve and POST /solve/trace: a textual
// grid in the format core.ParseGrid accepts.
type SolveRequest struct {
	Grid string `json:"grid" binding:"required"`
}

func solveHandler(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := core.ParseGrid(req.Grid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solveErr, timedOut := solveWithTimeout(c.Request.Context(), func() error {
		return core.Solve(g)
	})
	if timedOut {
		applog.Warn("solve request timed out", "timeout", constants.SolveTimeout.String())
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "solve timed out"})
		return
	}
	applog.Info("solve request", "status", outcomeStatus(solveErr))

	if solveErr != nil && !errors.Is(solveErr, core.ErrContradiction) && !errors.Is(solveErr, core.ErrNoStrategyApplies) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": solveErr.Error()})
		return
	}

	resp := gin.H{
		"status": outcomeStatus(solveErr),
		"grid":   g.ToInputString(),
	}
	if solveErr != nil {
		resp["detail"] = solveErr.Error()
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func solveTraceHandler(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := core.ParseGrid(req.Grid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	tracer := core.NewTraceLogger(g)
	solver := core.NewSolver(core.DefaultStrategies())
	logger := applog.NewMultiLogger(tracer, applog.NewSolverLogger())

	solveErr, timedOut := solveWithTimeout(c.Request.Context(), func() error {
		return solver.SolveWithLogger(g, logger)
	})
	if timedOut {
		applog.Warn("solve/trace request timed out", "timeout", constants.SolveTimeout.String())
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "solve timed out"})
		return
	}
	applog.Info("solve/trace request", "status", outcomeStatus(solveErr), "steps", len(tracer.Steps), "elapsed", time.Since(start).String())

	if solveErr != nil && !errors.Is(solveErr, core.ErrContradiction) && !errors.Is(solveErr, core.ErrNoStrategyApplies) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": solveErr.Error()})
		return
	}

	resp := gin.H{
		"status": outcomeStatus(solveErr),
		"grid":   g.ToInputString(),
		"steps":  tracer.Steps,
	}
	if solveErr != nil {
		resp["detail"] = solveErr.Error()
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// solveWithTimeout runs solve in its own goroutine and waits for it to
// finish, the request's deadline, or constants.SolveTimeout, whichever
// comes first. The goroutine is left to finish on its own time when the
// deadline wins, since core's strategies are synchronous and carry no
// cancellation of their own; the buffered channel ensures it never blocks
// forever trying to report a result nobody is waiting for.
func solveWithTimeout(ctx context.Context, solve func() error) (err error, timedOut bool) {
	ctx, cancel := context.WithTimeout(ctx, constants.SolveTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- solve()
	}()

	select {
	case err := <-done:
		return err, false
	case <-ctx.Done():
		return nil, true
	}
}

func outcomeStatus(err error) string {
	switch {
	case err == nil:
		return constants.StatusSolved
	case errors.Is(err, core.ErrContradiction):
		return constants.StatusContradiction
	case errors.Is(err, core.ErrNoStrategyApplies):
		return constants.StatusNoStrategyApplies
	default:
		return "error"
	}
}
