package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bhortijuddho/admission-svc/internal/api/rest/middleware"
	"github.com/bhortijuddho/admission-svc/internal/auth"
	"github.com/bhortijuddho/admission-svc/internal/dto"
	"github.com/bhortijuddho/admission-svc/internal/helper"
	"github.com/bhortijuddho/admission-svc/internal/helper/utils"
	"github.com/bhortijuddho/admission-svc/internal/services"
)

type AuthHandler struct {
	provider auth.Provider
	auth     helper.Auth
	adminSvc services.AdminService
}

func NewAuthHandler(provider auth.Provider, a helper.Auth, adminSvc services.AdminService) *AuthHandler {
	return &AuthHandler{provider: provider, auth: a, adminSvc: adminSvc}
}

func (h *AuthHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", h.Signup)
	authGroup.Post("/login", h.Login)
	authGroup.Get("/me", middleware.AuthMiddleware(h.auth), h.Me)

	api.Post("/admin/login", h.AdminLogin)
}

func (h *AuthHandler) Signup(ctx *fiber.Ctx) error {
	var requestBody dto.SignupRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	profile, err := h.provider.SignUp(requestBody.Email, requestBody.Password, requestBody.FullName)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}

	return h.issueToken(ctx, profile.ID, profile.Email, "student")
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	profile, err := h.provider.SignIn(requestBody.Email, requestBody.Password)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return h.issueToken(ctx, profile.ID, profile.Email, "student")
}

// AdminLogin trades the shared passcode for an admin token. There is no admin
// account record; the role lives only in the token.
func (h *AuthHandler) AdminLogin(ctx *fiber.Ctx) error {
	var requestBody dto.AdminLoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "passcode is required")
	}

	if err := h.adminSvc.VerifyPasscode(requestBody.Passcode); err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid passcode")
	}

	return h.issueToken(ctx, "admin", "", "admin")
}

func (h *AuthHandler) Me(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, claims)
}

func (h *AuthHandler) issueToken(ctx *fiber.Ctx, userID, email, role string) error {
	token, err := h.auth.GenerateToken(userID, email, role)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not generate token")
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.TokenResponse{
		Token:  token,
		UserID: userID,
	})
}
