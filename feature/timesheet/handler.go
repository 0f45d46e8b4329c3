package timesheet

import (
	"errors"
	"fmt"

	"workforce-manager/core/logger"
	"workforce-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for timesheets.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the timesheet routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/timesheets")
	group.Get("/", h.HandleListTimesheets)
	group.Get("/:id", h.HandleGetTimesheet)
	group.Put("/:id", h.HandleUpdateTimesheet)
	group.Post("/:id/plan", h.HandlePlanUpdate)
	group.Get("/:id/changelogs", h.HandleListChangeLogs)
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, reconcile.ErrDuplicateIdentifier):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrEditorNotPermitted):
		return fiber.StatusForbidden
	case errors.Is(err, ErrTimesheetNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrStaleEdit):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := statusFor(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err), zap.Int("status", status))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func timesheetID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, ErrInvalidRequest
	}
	return uint(id), nil
}

// bindUpdate parses the request body and takes the timesheet id from the path.
func bindUpdate(c *fiber.Ctx) (UpdateRequest, error) {
	var req UpdateRequest
	id, err := timesheetID(c)
	if err != nil {
		return req, err
	}
	if err := c.BodyParser(&req); err != nil {
		return req, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	req.TimesheetID = id
	return req, nil
}

// HandleUpdateTimesheet applies an edit to a timesheet.
// @Summary Update Timesheet
// @Description Reconciles a timesheet and its child logs against an edited snapshot in one transaction.
// @Tags timesheets
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Timesheet ID"
// @Param request body UpdateRequest true "Edit"
// @Success 200 {object} ChangeSummary "Change Summary"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 403 {object} map[string]string "Editor Not Permitted"
// @Failure 404 {object} map[string]string "Timesheet Not Found"
// @Failure 409 {object} map[string]string "Stale Edit"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /timesheets/{id} [put]
func (h *Handler) HandleUpdateTimesheet(c *fiber.Ctx) error {
	req, err := bindUpdate(c)
	if err != nil {
		return h.fail(c, "Invalid timesheet update", err)
	}

	summary, err := h.service.UpdateTimesheet(c.Context(), req)
	if err != nil {
		return h.fail(c, "Timesheet update failed", err)
	}
	return c.JSON(summary)
}

// HandlePlanUpdate reports what an edit would change without applying it.
// @Summary Plan Timesheet Update
// @Description Dry run of an update: returns per-kind actions without writing.
// @Tags timesheets
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Timesheet ID"
// @Param request body UpdateRequest true "Edit"
// @Success 200 {array} reconcile.Report "Plan"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 404 {object} map[string]string "Timesheet Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /timesheets/{id}/plan [post]
func (h *Handler) HandlePlanUpdate(c *fiber.Ctx) error {
	req, err := bindUpdate(c)
	if err != nil {
		return h.fail(c, "Invalid timesheet update", err)
	}

	reports, err := h.service.PlanUpdate(c.Context(), req)
	if err != nil {
		return h.fail(c, "Timesheet plan failed", err)
	}
	return c.JSON(reports)
}

// HandleGetTimesheet returns one timesheet with its child logs.
// @Summary Get Timesheet
// @Tags timesheets
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Timesheet ID"
// @Success 200 {object} models.Timesheet "Timesheet"
// @Failure 404 {object} map[string]string "Timesheet Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /timesheets/{id} [get]
func (h *Handler) HandleGetTimesheet(c *fiber.Ctx) error {
	id, err := timesheetID(c)
	if err != nil {
		return h.fail(c, "Invalid timesheet id", err)
	}

	ts, err := h.service.GetTimesheet(c.Context(), id)
	if err != nil {
		return h.fail(c, "Timesheet lookup failed", err)
	}
	return c.JSON(ts)
}

// HandleListTimesheets lists timesheets.
// @Summary List Timesheets
// @Tags timesheets
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Timesheet "Timesheets"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /timesheets [get]
func (h *Handler) HandleListTimesheets(c *fiber.Ctx) error {
	list, err := h.service.ListTimesheets(c.Context())
	if err != nil {
		return h.fail(c, "Timesheet listing failed", err)
	}
	return c.JSON(list)
}

// HandleListChangeLogs lists the audit history of a timesheet.
// @Summary List Change Logs
// @Tags timesheets
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Timesheet ID"
// @Success 200 {array} models.ChangeLog "Change Logs"
// @Failure 404 {object} map[string]string "Timesheet Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /timesheets/{id}/changelogs [get]
func (h *Handler) HandleListChangeLogs(c *fiber.Ctx) error {
	id, err := timesheetID(c)
	if err != nil {
		return h.fail(c, "Invalid timesheet id", err)
	}

	logs, err := h.service.ListChangeLogs(c.Context(), id)
	if err != nil {
		return h.fail(c, "Change log listing failed", err)
	}
	return c.JSON(logs)
}
