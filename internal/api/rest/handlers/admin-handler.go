package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhortijuddho/admission-svc/internal/api/rest/middleware"
	"github.com/bhortijuddho/admission-svc/internal/domain"
	"github.com/bhortijuddho/admission-svc/internal/dto"
	"github.com/bhortijuddho/admission-svc/internal/helper"
	"github.com/bhortijuddho/admission-svc/internal/helper/utils"
	"github.com/bhortijuddho/admission-svc/internal/services"
)

type AdminHandler struct {
	svc  services.AdminService
	auth helper.Auth
}

func NewAdminHandler(svc services.AdminService, a helper.Auth) *AdminHandler {
	return &AdminHandler{svc: svc, auth: a}
}

func (h *AdminHandler) SetupRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.AuthMiddleware(h.auth), middleware.AdminOnly())

	admin.Get("/students", h.ListStudents)
	admin.Delete("/students/:studentID", h.DeleteStudent)

	admin.Post("/universities", h.CreateUniversity)
	admin.Put("/universities/:universityID", h.UpdateUniversity)
	admin.Delete("/universities/:universityID", h.DeleteUniversity)

	admin.Post("/programs", h.CreateProgram)
	admin.Put("/programs/:programID", h.UpdateProgram)
	admin.Delete("/programs/:programID", h.DeleteProgram)

	admin.Get("/applications", h.ListApplications)
	admin.Patch("/applications/:applicationID/status", h.SetApplicationStatus)
	admin.Get("/applications/:applicationID/audit", h.ListStatusAudit)
	admin.Post("/applications/:applicationID/update-email", h.ComposeUpdateEmail)
}

func (h *AdminHandler) ListStudents(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	students, err := h.svc.ListStudents(limit, offset)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, students)
}

func (h *AdminHandler) DeleteStudent(ctx *fiber.Ctx) error {
	if err := h.svc.DeleteStudent(ctx.Params("studentID")); err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Student deleted")
}

func (h *AdminHandler) CreateUniversity(ctx *fiber.Ctx) error {
	var uni domain.University
	if err := ctx.BodyParser(&uni); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.CreateUniversity(&uni); err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, uni)
}

func (h *AdminHandler) UpdateUniversity(ctx *fiber.Ctx) error {
	var uni domain.University
	if err := ctx.BodyParser(&uni); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	updated, err := h.svc.UpdateUniversity(ctx.Params("universityID"), &uni)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, updated)
}

func (h *AdminHandler) DeleteUniversity(ctx *fiber.Ctx) error {
	if err := h.svc.DeleteUniversity(ctx.Params("universityID")); err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "University deleted")
}

func (h *AdminHandler) CreateProgram(ctx *fiber.Ctx) error {
	var program domain.Program
	if err := ctx.BodyParser(&program); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.CreateProgram(&program); err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, program)
}

func (h *AdminHandler) UpdateProgram(ctx *fiber.Ctx) error {
	var program domain.Program
	if err := ctx.BodyParser(&program); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	updated, err := h.svc.UpdateProgram(ctx.Params("programID"), &program)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, updated)
}

func (h *AdminHandler) DeleteProgram(ctx *fiber.Ctx) error {
	if err := h.svc.DeleteProgram(ctx.Params("programID")); err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Program deleted")
}

func (h *AdminHandler) ListApplications(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	apps, err := h.svc.ListApplications(limit, offset)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, apps)
}

func (h *AdminHandler) SetApplicationStatus(ctx *fiber.Ctx) error {
	var requestBody dto.SetStatusRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	res, err := h.svc.SetApplicationStatus(claims.UserID, ctx.Params("applicationID"), requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, res)
}

func (h *AdminHandler) ListStatusAudit(ctx *fiber.Ctx) error {
	entries, err := h.svc.ListStatusAudit(ctx.Params("applicationID"))
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, entries)
}

func (h *AdminHandler) ComposeUpdateEmail(ctx *fiber.Ctx) error {
	preview, err := h.svc.ComposeUpdateEmail(ctx.Params("applicationID"))
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, preview)
}
