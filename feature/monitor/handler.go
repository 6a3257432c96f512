package monitor

import (
	"context"

	"requirement-monitor/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the file monitor.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the monitor routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/monitor")
	group.Post("/run", h.HandleRun)
	group.Get("/status", h.HandleStatus)
	group.Get("/snapshot", h.HandleSnapshot)
}

// HandleRun triggers a file reconciliation run.
// @Summary Run File Reconciliation
// @Description Diffs the storage tree against the last snapshot, relocates or deletes requirement file records and saves the new snapshot. Concurrent requests share one run.
// @Tags monitor
// @Accept json
// @Produce json
// @Param dry_run query boolean false "Plan only; no record changes and no snapshot write"
// @Success 200 {object} reconcile.RunReport "Run Report"
// @Failure 500 {object} map[string]interface{} "Run Failed"
// @Security ApiKeyAuth
// @Router /monitor/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	dryRun := c.QueryBool("dry_run", false)
	l.Info("Triggering file reconciliation", zap.Bool("dry_run", dryRun))

	// Runs are shared between callers, so they must not die with this request
	report, err := h.service.Run(context.WithoutCancel(c.UserContext()), dryRun)
	if err != nil {
		l.Error("File reconciliation failed", zap.Error(err))
		body := fiber.Map{"error": err.Error()}
		if report != nil {
			body["report"] = report
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}

	return c.JSON(report)
}

// HandleStatus returns the last run report.
// @Summary Monitor Status
// @Description Returns whether a run is in progress and the report of the last run.
// @Tags monitor
// @Accept json
// @Produce json
// @Success 200 {object} reconcile.Status "Status"
// @Security ApiKeyAuth
// @Router /monitor/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandleSnapshot returns the last saved snapshot.
// @Summary Get Snapshot
// @Description Returns the entry paths recorded by the last run, as JSON or as a rendered tree.
// @Tags monitor
// @Accept json
// @Produce json
// @Produce plain
// @Param tree query boolean false "Render as a text tree"
// @Success 200 {object} map[string]interface{} "Snapshot"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /monitor/snapshot [get]
func (h *Handler) HandleSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if c.QueryBool("tree", false) {
		tree, err := h.service.SnapshotTree(c.UserContext())
		if err != nil {
			l.Error("Loading snapshot failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendString(tree)
	}

	snap, location, err := h.service.Snapshot(c.UserContext())
	if err != nil {
		l.Error("Loading snapshot failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"location": location,
		"count":    len(snap),
		"paths":    snap,
	})
}
