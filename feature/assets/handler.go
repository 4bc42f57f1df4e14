package assets

import (
	"asset-audit/core/apperror"
	"asset-audit/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for registry lookups and ad-hoc verification.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// VerifyRequest is the body of POST /assets/verify.
type VerifyRequest struct {
	Code             string `json:"code"`
	DeclaredLocation string `json:"declaredLocation"`
}

// ReconcileRequest is the body of POST /assets/reconcile.
type ReconcileRequest struct {
	Location string   `json:"location"`
	Codes    []string `json:"codes"`
}

// RegisterRoutes registers the asset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/assets")
	group.Post("/verify", h.HandleVerify)
	group.Post("/reconcile", h.HandleReconcile)
	group.Get("/:code", h.HandleLookup)
}

// HandleLookup returns a single asset wherever it is registered.
// @Summary Look Up Asset
// @Description Returns the registry entry of an asset code, including its canonical location.
// @Tags assets
// @Produce json
// @Param code path string true "Asset code"
// @Success 200 {object} reconcile.Asset
// @Failure 404 {object} map[string]string "Unknown asset"
// @Failure 503 {object} map[string]string "Registry unavailable"
// @Router /assets/{code} [get]
func (h *Handler) HandleLookup(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	code := c.Params("code")

	asset, err := h.service.Lookup(c.UserContext(), code)
	if err != nil {
		l.Debug("Asset lookup failed", zap.String("code", code), zap.Error(err))
		return apperror.Respond(c, err)
	}
	return c.JSON(asset)
}

// HandleVerify checks one code against a declared location.
// @Summary Verify Asset
// @Description Checks whether an asset belongs to the declared location. When it does not, the canonical location is returned.
// @Tags assets
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Code and declared location"
// @Success 200 {object} reconcile.Verification
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Unknown asset"
// @Failure 503 {object} map[string]string "Registry unavailable"
// @Router /assets/verify [post]
func (h *Handler) HandleVerify(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Respond(c, apperror.Validation("invalid request body"))
	}

	result, err := h.service.Verify(c.UserContext(), req.Code, req.DeclaredLocation)
	if err != nil {
		l.Debug("Asset verification failed", zap.String("code", req.Code), zap.Error(err))
		return apperror.Respond(c, err)
	}
	return c.JSON(result)
}

// HandleReconcile reconciles a list of scanned codes against a location.
// @Summary Reconcile Location
// @Description Classifies scanned codes into verified, missing and foreign assets for a location. Unknown codes are ignored.
// @Tags assets
// @Accept json
// @Produce json
// @Param request body ReconcileRequest true "Location and scanned codes"
// @Success 200 {object} reconcile.Result
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 503 {object} map[string]string "Registry unavailable"
// @Router /assets/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Respond(c, apperror.Validation("invalid request body"))
	}

	result, err := h.service.Reconcile(c.UserContext(), req.Location, req.Codes)
	if err != nil {
		l.Error("Reconciliation failed", zap.String("location", req.Location), zap.Error(err))
		return apperror.Respond(c, err)
	}

	l.Info("Location reconciled",
		zap.String("location", result.Location),
		zap.Int("verified", result.VerifiedCount),
		zap.Int("missing", result.MissingCount),
		zap.Int("foreign", result.ForeignCount),
	)
	return c.JSON(result)
}
