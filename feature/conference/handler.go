package conference

import (
	"asset-audit/core/apperror"
	"asset-audit/core/logger"
	"asset-audit/feature/users"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for conferences.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ParticipantRequest is the body of POST /conferences/:id/participants.
type ParticipantRequest struct {
	// Identifier is an e-mail address or a badge number.
	Identifier string `json:"identifier"`
}

// RegisterRoutes registers the conference routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/conferences")
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Post("/:id/participants", h.HandleAddParticipant)
	group.Post("/:id/items", h.HandleSubmitItem)
	group.Get("/:id/status", h.HandleStatus)
	group.Post("/:id/finalize", h.HandleFinalize)

	app.Get("/users/:id/conferences", h.HandleHistory)
}

// HandleCreate creates a conference.
// @Summary Create Conference
// @Description Opens a new audit of a target location. The creator becomes its owner.
// @Tags conferences
// @Accept json
// @Produce json
// @Param request body CreateInput true "Conference"
// @Success 201 {object} Conference
// @Failure 400 {object} map[string]string "Missing field"
// @Failure 503 {object} map[string]string "Database unavailable"
// @Router /conferences [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in CreateInput
	if err := c.BodyParser(&in); err != nil {
		return apperror.Respond(c, apperror.Validation("invalid request body"))
	}

	conf, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Debug("Create conference failed", zap.Error(err))
		return apperror.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(conf)
}

// HandleGet returns a conference with participants and items.
// @Summary Get Conference
// @Tags conferences
// @Produce json
// @Param id path string true "Conference ID"
// @Success 200 {object} Detail
// @Failure 404 {object} map[string]string "Unknown conference"
// @Router /conferences/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	detail, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return apperror.Respond(c, err)
	}
	return c.JSON(detail)
}

// HandleAddParticipant adds a participant.
// @Summary Add Participant
// @Description Resolves the identifier by e-mail or badge and adds the user. Repeating the call returns the same participation.
// @Tags conferences
// @Accept json
// @Produce json
// @Param id path string true "Conference ID"
// @Param request body ParticipantRequest true "E-mail or badge"
// @Success 200 {object} Participant
// @Failure 400 {object} map[string]string "Missing identifier"
// @Failure 404 {object} map[string]string "Unknown conference or user"
// @Failure 409 {object} map[string]string "Conference finalized"
// @Router /conferences/{id}/participants [post]
func (h *Handler) HandleAddParticipant(c *fiber.Ctx) error {
	var req ParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Respond(c, apperror.Validation("invalid request body"))
	}

	p, err := h.service.AddParticipant(c.UserContext(), c.Params("id"), req.Identifier)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return c.JSON(p)
}

// HandleSubmitItem submits a scanned item.
// @Summary Submit Item
// @Description Verifies a code against the declared location, which defaults to the conference location, and stores it. Each user can submit a code once per conference.
// @Tags conferences
// @Accept json
// @Produce json
// @Param id path string true "Conference ID"
// @Param request body SubmitItemInput true "Scanned item"
// @Success 201 {object} Item
// @Failure 400 {object} map[string]string "Missing field"
// @Failure 404 {object} map[string]string "Unknown conference or asset"
// @Failure 409 {object} map[string]string "Duplicate item or conference finalized"
// @Failure 503 {object} map[string]string "Registry or database unavailable"
// @Router /conferences/{id}/items [post]
func (h *Handler) HandleSubmitItem(c *fiber.Ctx) error {
	var in SubmitItemInput
	if err := c.BodyParser(&in); err != nil {
		return apperror.Respond(c, apperror.Validation("invalid request body"))
	}
	in.ConferenceID = c.Params("id")

	item, err := h.service.SubmitItem(c.UserContext(), in)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Debug("Submit item failed",
			zap.String("conference_id", in.ConferenceID),
			zap.String("code", in.Code),
			zap.Error(err),
		)
		return apperror.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleStatus returns the current counts.
// @Summary Conference Status
// @Tags conferences
// @Produce json
// @Param id path string true "Conference ID"
// @Success 200 {object} StatusSummary
// @Failure 404 {object} map[string]string "Unknown conference"
// @Failure 503 {object} map[string]string "Registry or database unavailable"
// @Router /conferences/{id}/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	summary, err := h.service.Status(c.UserContext(), c.Params("id"))
	if err != nil {
		return apperror.Respond(c, err)
	}
	return c.JSON(summary)
}

// HandleFinalize finalizes a conference.
// @Summary Finalize Conference
// @Description Closes the conference and sends the report to its participants. Delivery is best effort and reported in the response.
// @Tags conferences
// @Produce json
// @Param id path string true "Conference ID"
// @Success 200 {object} FinalizeResult
// @Failure 404 {object} map[string]string "Unknown conference"
// @Failure 409 {object} map[string]string "Already finalized"
// @Router /conferences/{id}/finalize [post]
func (h *Handler) HandleFinalize(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.Finalize(c.UserContext(), c.Params("id"))
	if err != nil {
		l.Info("Finalize rejected", zap.String("conference_id", c.Params("id")), zap.Error(err))
		return apperror.Respond(c, err)
	}
	return c.JSON(result)
}

// HandleHistory lists the conferences of a user.
// @Summary User Conferences
// @Description Conferences the user owns or takes part in, newest first.
// @Tags conferences
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} HistoryEntry
// @Failure 400 {object} map[string]string "Invalid ID"
// @Router /users/{id}/conferences [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	userID, err := users.ParseID(c.Params("id"))
	if err != nil {
		return apperror.Respond(c, err)
	}

	history, err := h.service.History(c.UserContext(), userID)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return c.JSON(history)
}
