package integrity

import (
	"requirement-monitor/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/tree", h.HandleTreeCheck)
	group.Get("/snapshot", h.HandleSnapshotCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Tree, Snapshot, Schema) without fixing anything.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Security ApiKeyAuth
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.UserContext()
	report := make(map[string]interface{})

	// Tree
	if missing, err := h.service.CheckTree(); err != nil {
		report["tree"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["tree"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	// Snapshot
	if snapReport, err := h.service.CheckSnapshot(ctx, false); err != nil {
		report["snapshot"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["snapshot"] = snapReport
	}

	// Schema
	if schemaReport, err := h.service.CheckSchema(ctx); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schemaReport
	}

	return c.JSON(report)
}

// HandleTreeCheck checks and optionally fixes the storage tree.
// @Summary Check Storage Tree
// @Description Checks that the storage base, the monitored root and the local snapshot directory exist. Optionally creates missing directories.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Create missing directories"
// @Success 200 {object} map[string]interface{} "Tree Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /integrity/tree [get]
func (h *Handler) HandleTreeCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckTree()
	if err != nil {
		l.Error("Tree check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing directories detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing directories")
			if err := h.service.FixTree(missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix tree",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleSnapshotCheck checks and optionally fixes the snapshot.
// @Summary Check Snapshot
// @Description Checks that the last snapshot is loadable and, for the s3 backend, that its bucket exists. Optionally creates the bucket and resets a malformed snapshot.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Create the bucket and reset a malformed snapshot"
// @Success 200 {object} SnapshotResult "Snapshot Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /integrity/snapshot [get]
func (h *Handler) HandleSnapshotCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	result, err := h.service.CheckSnapshot(c.UserContext(), fix)
	if err != nil {
		l.Error("Snapshot check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}

// HandleSchemaCheck checks and optionally migrates the database schema.
// @Summary Check Database Schema
// @Description Checks that the requirement_files table matches the expected model (columns, types). Optionally runs the migration.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Migrate the schema"
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckSchema(c.UserContext())
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if !report.Matched && fix {
		if err := h.service.FixSchema(c.UserContext()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to fix schema",
				"details": err.Error(),
			})
		}
		if report, err = h.service.CheckSchema(c.UserContext()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(report)
}
