package users

import (
	"strconv"

	"asset-audit/core/apperror"
	"asset-audit/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the user directory.
type Handler struct {
	directory *Directory
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(directory *Directory, logger *zap.Logger) *Handler {
	return &Handler{directory: directory, logger: logger}
}

// RegisterRoutes registers the user routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/users")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
}

// HandleList lists the directory.
// @Summary List Users
// @Description Returns every user that can take part in an audit.
// @Tags users
// @Produce json
// @Success 200 {array} User
// @Failure 503 {object} map[string]string "Database unavailable"
// @Router /users [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	users, err := h.directory.List(c.UserContext())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to list users", zap.Error(err))
		return apperror.Respond(c, err)
	}
	return c.JSON(users)
}

// HandleGet returns one user.
// @Summary Get User
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} User
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Unknown user"
// @Router /users/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := ParseID(c.Params("id"))
	if err != nil {
		return apperror.Respond(c, err)
	}

	user, err := h.directory.FindByID(c.UserContext(), id)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return c.JSON(user)
}

// ParseID parses a user id path parameter.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.Validation("invalid user id %q", raw)
	}
	return uint(id), nil
}
