package controller

import (
	"strconv"

	"clinical-notes-be/internal/dto"
	"clinical-notes-be/internal/pkg/serverutils"
	"clinical-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	ProcessSession(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ListByPatient(ctx *fiber.Ctx) error
	FindSimilar(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/clinical/v1")
	h.Post("process-session", c.ProcessSession)
	h.Get("session-notes/:id", c.Show)
	h.Get("session-notes/:id/similar", c.FindSimilar)
	h.Get("patients/:patientId/session-notes", c.ListByPatient)
	h.Get("process-status/:id", c.Status)
}

func (c *sessionController) ProcessSession(ctx *fiber.Ctx) error {
	var req dto.ProcessSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Missing required fields: sessionInput and patientId"))
	}

	res, err := c.sessionService.ProcessSession(ctx.Context(), &req)
	if err != nil {
		if res != nil {
			// Upstream generation failed: reply with the fully-defaulted
			// payload so the caller still gets the complete schema.
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.BaseResponse[*dto.ProcessSessionResponse]{
				Code:    500,
				Status:  "error",
				Message: "Failed to process session",
				Data:    res,
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Session processed", res))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid session note ID"))
	}

	res, err := c.sessionService.Show(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Session note not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Session note", res))
}

func (c *sessionController) ListByPatient(ctx *fiber.Ctx) error {
	patientId := ctx.Params("patientId")
	if patientId == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "patientId is required"))
	}

	res, err := c.sessionService.ListByPatient(ctx.Context(), patientId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Patient session notes", res))
}

func (c *sessionController) FindSimilar(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid session note ID"))
	}

	limit := 5
	if v := ctx.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	res, err := c.sessionService.FindSimilar(ctx.Context(), id, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Similar sessions", res))
}

func (c *sessionController) Status(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, found := c.sessionService.Status(id)
	if !found {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No processing status for this ID"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Processing status", res))
}
