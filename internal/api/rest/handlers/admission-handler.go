package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhortijuddho/admission-svc/internal/api/rest/middleware"
	"github.com/bhortijuddho/admission-svc/internal/dto"
	"github.com/bhortijuddho/admission-svc/internal/helper"
	"github.com/bhortijuddho/admission-svc/internal/helper/utils"
	"github.com/bhortijuddho/admission-svc/internal/services"
)

type AdmissionHandler struct {
	svc  services.AdmissionService
	auth helper.Auth
}

func NewAdmissionHandler(svc services.AdmissionService, a helper.Auth) *AdmissionHandler {
	return &AdmissionHandler{svc: svc, auth: a}
}

func (h *AdmissionHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Catalog browsing is open; no account needed to look around.
	api.Get("/universities", h.ListUniversities)
	api.Get("/universities/:universityID/programs", h.ListUniversityPrograms)
	api.Get("/programs", h.ListPrograms)

	protected := api.Group("", middleware.AuthMiddleware(h.auth))
	protected.Post("/programs/:programID/eligibility", h.CheckEligibility)
	protected.Post("/programs/:programID/apply", h.Apply)
	protected.Get("/applications", h.ListApplications)
	protected.Patch("/applications/:applicationID", h.UpdateApplication)
	protected.Delete("/applications/:applicationID", h.DeleteApplication)
}

func (h *AdmissionHandler) ListUniversities(ctx *fiber.Ctx) error {
	unis, err := h.svc.ListUniversities()
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, unis)
}

func (h *AdmissionHandler) ListUniversityPrograms(ctx *fiber.Ctx) error {
	programs, err := h.svc.ListProgramsByUniversity(ctx.Params("universityID"))
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, programs)
}

func (h *AdmissionHandler) ListPrograms(ctx *fiber.Ctx) error {
	programs, err := h.svc.ListPrograms()
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, programs)
}

func (h *AdmissionHandler) CheckEligibility(ctx *fiber.Ctx) error {
	var requestBody dto.EligibilityCheckRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	result, err := h.svc.CheckEligibility(h.userID(ctx), ctx.Params("programID"), requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, result)
}

func (h *AdmissionHandler) Apply(ctx *fiber.Ctx) error {
	var requestBody dto.ApplyRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	app, err := h.svc.Apply(h.userID(ctx), ctx.Params("programID"), requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, app)
}

func (h *AdmissionHandler) ListApplications(ctx *fiber.Ctx) error {
	apps, err := h.svc.ListApplications(h.userID(ctx))
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, apps)
}

func (h *AdmissionHandler) UpdateApplication(ctx *fiber.Ctx) error {
	var requestBody dto.UpdateApplicationRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	app, err := h.svc.UpdateApplication(h.userID(ctx), ctx.Params("applicationID"), requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, app)
}

func (h *AdmissionHandler) DeleteApplication(ctx *fiber.Ctx) error {
	if err := h.svc.DeleteApplication(h.userID(ctx), ctx.Params("applicationID")); err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Application deleted")
}

func (h *AdmissionHandler) userID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals("userID").(string)
	return id
}
