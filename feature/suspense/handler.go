package suspense

import (
	"errors"
	"strconv"

	"finledger/core/logger"
	"finledger/core/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for suspense entries.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validate: utils.NewValidator()}
}

// AssignRequest hands an entry to someone.
type AssignRequest struct {
	AssignedTo string `json:"assigned_to" validate:"required"`
}

// ResolveRequest closes an entry.
type ResolveRequest struct {
	Notes      string `json:"notes" validate:"required"`
	WriteOff   bool   `json:"write_off"`
	ResolvedBy string `json:"resolved_by"`
}

// RegisterRoutes registers the suspense routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/suspense")
	group.Get("/", h.HandleListOpen)
	group.Post("/:id/assign", h.HandleAssign)
	group.Post("/:id/resolve", h.HandleResolve)
}

// HandleListOpen lists open suspense entries of a user.
// @Summary List Open Suspense
// @Description Open and in-progress entries, highest priority first, then oldest first.
// @Tags suspense
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} models.Suspense "Open entries"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /suspense [get]
func (h *Handler) HandleListOpen(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	rows, err := h.service.GetOpenSuspense(c.Context(), userID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(rows)
}

// HandleAssign assigns an entry.
// @Summary Assign Suspense
// @Tags suspense
// @Accept json
// @Produce json
// @Param id path int true "Suspense ID"
// @Param request body AssignRequest true "Assignee"
// @Success 200 {object} models.Suspense "Assigned entry"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Entry already closed"
// @Router /suspense/{id}/assign [post]
func (h *Handler) HandleAssign(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid suspense id"})
	}

	var req AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": utils.ValidationMessage(err)})
	}

	row, err := h.service.Assign(c.Context(), uint(id), req.AssignedTo)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(row)
}

// HandleResolve resolves or writes off an entry.
// @Summary Resolve Suspense
// @Description Close an entry as RESOLVED, or WRITTEN_OFF when write_off is set. The linked event is resolved too.
// @Tags suspense
// @Accept json
// @Produce json
// @Param id path int true "Suspense ID"
// @Param request body ResolveRequest true "Resolution"
// @Success 200 {object} models.Suspense "Closed entry"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Entry already closed"
// @Router /suspense/{id}/resolve [post]
func (h *Handler) HandleResolve(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid suspense id"})
	}

	var req ResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": utils.ValidationMessage(err)})
	}

	row, err := h.service.Resolve(c.Context(), uint(id), req.Notes, req.WriteOff, req.ResolvedBy)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(row)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrAlreadyClosed):
		status = fiber.StatusConflict
	case errors.Is(err, ErrNotesRequired), errors.Is(err, ErrAssigneeRequired):
		status = fiber.StatusBadRequest
	default:
		logger.WithRayID(h.service.logger, c).Error("Suspense request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
