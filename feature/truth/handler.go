package truth

import (
	"errors"

	"finledger/core/logger"
	"finledger/core/reconcile"
	"finledger/core/utils"
	"finledger/feature/truth/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for truth sources.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validate: utils.NewValidator()}
}

// PriorityResponse is the resolved source priority for one scope.
type PriorityResponse struct {
	UserID      string                 `json:"user_id"`
	MetricType  reconcile.MetricType   `json:"metric_type"`
	AssetClass  reconcile.AssetClass   `json:"asset_class"`
	Sources     []reconcile.SourceType `json:"sources"`
	TruthSource reconcile.SourceType   `json:"truth_source"`
}

// OverrideRequest sets a user's priority list.
type OverrideRequest struct {
	UserID    string                 `json:"user_id" validate:"required"`
	Sources   []reconcile.SourceType `json:"sources" validate:"required,min=1,dive,enum"`
	Rationale string                 `json:"rationale"`
}

// RegisterRoutes registers the truth routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/truth")
	group.Get("/:metric/:asset", h.HandleGetPriority)
	group.Put("/:metric/:asset", h.HandleSetOverride)
}

// HandleGetPriority returns the source priority for a metric and asset class.
// @Summary Get Source Priority
// @Description Resolve the ordered truth sources for a user, falling back to the global default and then SYSTEM.
// @Tags truth
// @Produce json
// @Param metric path string true "Metric type (e.g. NET_WORTH)"
// @Param asset path string true "Asset class (e.g. MUTUAL_FUND)"
// @Param user_id query string false "User ID"
// @Success 200 {object} PriorityResponse "Resolved priority"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /truth/{metric}/{asset} [get]
func (h *Handler) HandleGetPriority(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	metric, asset, err := scope(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := c.Query("user_id")
	sources, err := h.service.Resolver(userID).GetSourcePriority(c.Context(), metric, asset)
	if err != nil {
		l.Error("Source priority lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(PriorityResponse{
		UserID:      userID,
		MetricType:  metric,
		AssetClass:  asset,
		Sources:     sources,
		TruthSource: sources[0],
	})
}

// HandleSetOverride stores a user's override.
// @Summary Set User Override
// @Description Replace a user's truth-source priority list for a metric and asset class.
// @Tags truth
// @Accept json
// @Produce json
// @Param metric path string true "Metric type"
// @Param asset path string true "Asset class"
// @Param request body OverrideRequest true "Override"
// @Success 200 {object} models.TruthSourceConfig "Stored override"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /truth/{metric}/{asset} [put]
func (h *Handler) HandleSetOverride(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	metric, asset, err := scope(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req OverrideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": utils.ValidationMessage(err)})
	}

	entry, err := h.service.Resolver(req.UserID).SetUserOverride(c.Context(), metric, asset, req.Sources, req.Rationale)
	if err != nil {
		if errors.Is(err, models.ErrInvalidSources) || errors.Is(err, reconcile.ErrInvalidEnum) || errors.Is(err, ErrUserRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Saving override failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(entry)
}

func scope(c *fiber.Ctx) (reconcile.MetricType, reconcile.AssetClass, error) {
	metric, err := reconcile.ParseMetricType(c.Params("metric"))
	if err != nil {
		return "", "", err
	}
	asset, err := reconcile.ParseAssetClass(c.Params("asset"))
	if err != nil {
		return "", "", err
	}
	return metric, asset, nil
}
