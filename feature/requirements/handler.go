package requirements

import (
	"errors"

	"requirement-monitor/core/logger"
	"requirement-monitor/feature/requirements/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for requirement files.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the requirement file routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/requirement-files")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
}

// HandleList lists requirement files.
// @Summary List Requirement Files
// @Description Lists requirement file records, optionally filtered by path prefix.
// @Tags requirements
// @Accept json
// @Produce json
// @Param path query string false "Path prefix relative to the monitored root"
// @Param limit query int false "Page size (default 50, max 500)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} models.ListResult "Requirement Files"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /requirement-files [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	q := models.ListQuery{
		PathPrefix: c.Query("path"),
		Limit:      c.QueryInt("limit", 0),
		Offset:     c.QueryInt("offset", 0),
	}

	result, err := h.service.List(c.Context(), q)
	if err != nil {
		l.Error("Listing requirement files failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}

// HandleGet returns one requirement file.
// @Summary Get Requirement File
// @Description Returns a requirement file record by ID.
// @Tags requirements
// @Accept json
// @Produce json
// @Param id path int true "Requirement File ID"
// @Success 200 {object} models.RequirementFile "Requirement File"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /requirement-files/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	file, err := h.service.Get(c.Context(), uint(id))
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Fetching requirement file failed", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(file)
}
