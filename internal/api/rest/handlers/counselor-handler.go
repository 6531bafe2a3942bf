package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhortijuddho/admission-svc/internal/api/rest/middleware"
	"github.com/bhortijuddho/admission-svc/internal/dto"
	"github.com/bhortijuddho/admission-svc/internal/helper"
	"github.com/bhortijuddho/admission-svc/internal/helper/utils"
	"github.com/bhortijuddho/admission-svc/internal/services"
)

type CounselorHandler struct {
	svc  services.CounselorService
	auth helper.Auth
}

func NewCounselorHandler(svc services.CounselorService, a helper.Auth) *CounselorHandler {
	return &CounselorHandler{svc: svc, auth: a}
}

func (h *CounselorHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api", middleware.AuthMiddleware(h.auth))
	api.Post("/counselor/ask", h.Ask)
}

func (h *CounselorHandler) Ask(ctx *fiber.Ctx) error {
	var requestBody dto.CounselorAskRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "message is required")
	}

	userID, _ := ctx.Locals("userID").(string)
	reply, err := h.svc.Ask(ctx.Context(), userID, requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, reply)
}
