package golden

import (
	"errors"

	"finledger/core/logger"
	"finledger/core/reconcile"
	"finledger/core/storage"
	"finledger/core/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for golden references.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validate: utils.NewValidator()}
}

// IngestRequest names the statement to ingest.
type IngestRequest struct {
	ObjectKey string `json:"object_key" validate:"required"`
}

// RegisterRoutes registers the golden routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/golden")
	group.Post("/ingest", h.HandleIngest)
	group.Get("/:ref", h.HandleGetReference)
	group.Get("/:ref/holdings", h.HandleGetHoldings)
}

// HandleIngest ingests a statement from object storage.
// @Summary Ingest Statement
// @Description Parse a statement document from object storage and store it as a new golden reference.
// @Tags golden
// @Accept json
// @Produce json
// @Param request body IngestRequest true "Statement location"
// @Success 201 {object} IngestResult "Ingested reference"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Statement not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /golden/ingest [post]
func (h *Handler) HandleIngest(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req IngestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": utils.ValidationMessage(err)})
	}

	result, err := h.service.Ingest(c.Context(), req.ObjectKey)
	switch {
	case err == nil:
		return c.Status(fiber.StatusCreated).JSON(result)
	case errors.Is(err, storage.ErrObjectNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrInvalidStatement), errors.Is(err, storage.ErrObjectTooLarge):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Statement ingestion failed", zap.String("object_key", req.ObjectKey), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// HandleGetReference returns a golden reference.
// @Summary Get Golden Reference
// @Tags golden
// @Produce json
// @Param ref path string true "Golden reference ID"
// @Success 200 {object} models.GoldenReference "Golden reference"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /golden/{ref} [get]
func (h *Handler) HandleGetReference(c *fiber.Ctx) error {
	ref, err := h.service.Reference(c.Context(), c.Params("ref"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(ref)
}

// HandleGetHoldings returns the holdings of a golden reference for one asset class.
// @Summary Get Golden Holdings
// @Tags golden
// @Produce json
// @Param ref path string true "Golden reference ID"
// @Param asset_class query string true "Asset class"
// @Success 200 {array} models.GoldenHolding "Holdings"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /golden/{ref}/holdings [get]
func (h *Handler) HandleGetHoldings(c *fiber.Ctx) error {
	asset, err := reconcile.ParseAssetClass(c.Query("asset_class"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ref, err := h.service.Reference(c.Context(), c.Params("ref"))
	if err != nil {
		return h.fail(c, err)
	}

	holdings, err := h.service.Holdings(c.Context(), ref.ID, asset)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(holdings)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Golden reference lookup failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
