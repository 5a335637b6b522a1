package reconciliation

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"finledger/core/logger"
	"finledger/core/reconcile"
	"finledger/core/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation runs.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validate: utils.NewValidator()}
}

// HoldingsRequest starts a run for one asset class.
type HoldingsRequest struct {
	AssetClass  reconcile.AssetClass `json:"asset_class" validate:"required,enum"`
	GoldenRefID string               `json:"golden_ref_id" validate:"required"`
	// AsOfDate is YYYY-MM-DD; the statement date is used when empty.
	AsOfDate string `json:"as_of_date" validate:"omitempty,datetime=2006-01-02"`
}

// ReferenceRequest starts runs for every enabled asset class of a reference.
type ReferenceRequest struct {
	AsOfDate string `json:"as_of_date" validate:"omitempty,datetime=2006-01-02"`
}

// ResolveRequest manually resolves an event.
type ResolveRequest struct {
	Notes      string `json:"notes" validate:"required"`
	ResolvedBy string `json:"resolved_by"`
}

// RunQuery selects a run by key.
type RunQuery struct {
	UserID      string `query:"user_id" validate:"required"`
	Date        string `query:"date" validate:"required,datetime=2006-01-02"`
	AssetClass  string `query:"asset_class" validate:"required"`
	GoldenRefID string `query:"golden_ref_id" validate:"required"`
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconciliation")
	group.Post("/holdings", h.HandleReconcileHoldings)
	group.Post("/references/:ref", h.HandleReconcileReference)
	group.Get("/events", h.HandleGetEvents)
	group.Get("/summary", h.HandleGetSummary)
	group.Post("/events/:id/resolve", h.HandleResolveEvent)
}

// HandleReconcileHoldings runs a reconciliation for one asset class.
// @Summary Reconcile Holdings
// @Description Correlate golden holdings against system holdings and persist the events, replacing any previous run of the same key.
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param request body HoldingsRequest true "Run parameters"
// @Success 200 {object} RunSummary "Run summary"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Golden reference not found"
// @Failure 409 {object} map[string]string "Asset class disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconciliation/holdings [post]
func (h *Handler) HandleReconcileHoldings(c *fiber.Ctx) error {
	var req HoldingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": utils.ValidationMessage(err)})
	}

	summary, err := h.service.ReconcileHoldings(c.Context(), req.AssetClass, req.GoldenRefID, parseAsOf(req.AsOfDate))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(summary)
}

// HandleReconcileReference runs a reconciliation for every enabled asset class.
// @Summary Reconcile Reference
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param ref path string true "Golden reference ID"
// @Param request body ReferenceRequest false "Run parameters"
// @Success 200 {array} RunSummary "Run summaries"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Golden reference not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconciliation/references/{ref} [post]
func (h *Handler) HandleReconcileReference(c *fiber.Ctx) error {
	var req ReferenceRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": utils.ValidationMessage(err)})
	}

	summaries, err := h.service.ReconcileReference(c.Context(), c.Params("ref"), parseAsOf(req.AsOfDate))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(summaries)
}

// HandleGetEvents lists the live events of a run.
// @Summary List Run Events
// @Tags reconciliation
// @Produce json
// @Param user_id query string true "User ID"
// @Param date query string true "Reconciliation date (YYYY-MM-DD)"
// @Param asset_class query string true "Asset class"
// @Param golden_ref_id query string true "Golden reference ID"
// @Success 200 {array} models.Event "Events"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconciliation/events [get]
func (h *Handler) HandleGetEvents(c *fiber.Ctx) error {
	key, err := h.runKey(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	events, err := h.service.Events(c.Context(), key)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(events)
}

// HandleGetSummary rebuilds the summary of a stored run.
// @Summary Get Run Summary
// @Tags reconciliation
// @Produce json
// @Param user_id query string true "User ID"
// @Param date query string true "Reconciliation date (YYYY-MM-DD)"
// @Param asset_class query string true "Asset class"
// @Param golden_ref_id query string true "Golden reference ID"
// @Success 200 {object} RunSummary "Run summary"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Run not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconciliation/summary [get]
func (h *Handler) HandleGetSummary(c *fiber.Ctx) error {
	key, err := h.runKey(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	summary, err := h.service.Summary(c.Context(), key)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(summary)
}

// HandleResolveEvent manually resolves a discrepancy.
// @Summary Resolve Event
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body ResolveRequest true "Resolution"
// @Success 200 {object} models.Event "Resolved event"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 409 {object} map[string]string "Event cannot be resolved"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconciliation/events/{id}/resolve [post]
func (h *Handler) HandleResolveEvent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event id"})
	}

	var req ResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": utils.ValidationMessage(err)})
	}

	event, err := h.service.ResolveMismatch(c.Context(), uint(id), req.Notes, req.ResolvedBy)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(event)
}

func (h *Handler) runKey(c *fiber.Ctx) (RunKey, error) {
	var q RunQuery
	if err := c.QueryParser(&q); err != nil {
		return RunKey{}, err
	}
	if err := h.validate.Struct(q); err != nil {
		return RunKey{}, errors.New(utils.ValidationMessage(err))
	}

	asset, err := reconcile.ParseAssetClass(q.AssetClass)
	if err != nil {
		return RunKey{}, err
	}
	date, _ := time.Parse("2006-01-02", q.Date)
	return RunKey{UserID: q.UserID, Date: date, AssetClass: asset, GoldenRefID: q.GoldenRefID}, nil
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case IsNotFound(err):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrAssetClassDisabled), errors.Is(err, ErrInvalidTransition):
		status = fiber.StatusConflict
	case errors.Is(err, ErrNotesRequired), errors.Is(err, ErrInvalidRunKey),
		errors.Is(err, reconcile.ErrInvalidEnum), errors.Is(err, reconcile.ErrInvalidConfig):
		status = fiber.StatusBadRequest
	}
	if status == fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error("Reconciliation request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func parseAsOf(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
