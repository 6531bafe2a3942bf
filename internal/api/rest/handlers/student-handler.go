package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhortijuddho/admission-svc/internal/api/rest/middleware"
	"github.com/bhortijuddho/admission-svc/internal/dto"
	"github.com/bhortijuddho/admission-svc/internal/helper"
	"github.com/bhortijuddho/admission-svc/internal/helper/utils"
	"github.com/bhortijuddho/admission-svc/internal/services"
	pkgutils "github.com/bhortijuddho/admission-svc/pkg/utils"
)

const (
	maxAvatarBytes   = 5 << 20
	maxDocumentBytes = 10 << 20
)

type StudentHandler struct {
	svc  services.StudentService
	auth helper.Auth
}

func NewStudentHandler(svc services.StudentService, a helper.Auth) *StudentHandler {
	return &StudentHandler{svc: svc, auth: a}
}

func (h *StudentHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api", middleware.AuthMiddleware(h.auth))

	// Profile
	api.Get("/profile", h.GetProfile)
	api.Put("/profile", h.UpdateProfile)
	api.Post("/profile/avatar", h.UploadAvatar)

	// Academic records
	api.Get("/academic-records", h.ListAcademicRecords)
	api.Post("/academic-records", h.AddAcademicRecord)
	api.Put("/academic-records/:recordID", h.UpdateAcademicRecord)
	api.Delete("/academic-records/:recordID", h.DeleteAcademicRecord)

	// Documents
	api.Get("/documents", h.ListDocuments)
	api.Post("/documents", h.UploadDocument)
	api.Delete("/documents/:documentID", h.DeleteDocument)

	// Essays
	api.Get("/applications/:applicationID/essays", h.ListEssays)
	api.Post("/applications/:applicationID/essays", h.AddEssay)
	api.Put("/essays/:essayID", h.UpdateEssay)
	api.Delete("/essays/:essayID", h.DeleteEssay)
}

func (h *StudentHandler) GetProfile(ctx *fiber.Ctx) error {
	profile, err := h.svc.GetProfile(h.userID(ctx))
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

func (h *StudentHandler) UpdateProfile(ctx *fiber.Ctx) error {
	var requestBody dto.UpdateProfileRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	profile, err := h.svc.UpdateProfile(h.userID(ctx), requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

func (h *StudentHandler) UploadAvatar(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "could not read file")
	}
	defer f.Close()

	data, err := pkgutils.ReadAllLimit(f, maxAvatarBytes)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	url, err := h.svc.UploadAvatar(ctx.Context(), h.userID(ctx), fileHeader.Filename, data)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"avatar_url": url})
}

func (h *StudentHandler) ListAcademicRecords(ctx *fiber.Ctx) error {
	records, err := h.svc.ListAcademicRecords(h.userID(ctx))
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, records)
}

func (h *StudentHandler) AddAcademicRecord(ctx *fiber.Ctx) error {
	var requestBody dto.AcademicRecordRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	record, err := h.svc.AddAcademicRecord(h.userID(ctx), requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, record)
}

func (h *StudentHandler) UpdateAcademicRecord(ctx *fiber.Ctx) error {
	var requestBody dto.AcademicRecordRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	record, err := h.svc.UpdateAcademicRecord(h.userID(ctx), ctx.Params("recordID"), requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, record)
}

func (h *StudentHandler) DeleteAcademicRecord(ctx *fiber.Ctx) error {
	if err := h.svc.DeleteAcademicRecord(h.userID(ctx), ctx.Params("recordID")); err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Academic record deleted")
}

func (h *StudentHandler) ListDocuments(ctx *fiber.Ctx) error {
	docs, err := h.svc.ListDocuments(h.userID(ctx))
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, docs)
}

func (h *StudentHandler) UploadDocument(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file is required")
	}

	docType := ctx.FormValue("doc_type")
	if docType == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "doc_type is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "could not read file")
	}
	defer f.Close()

	data, err := pkgutils.ReadAllLimit(f, maxDocumentBytes)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	doc, err := h.svc.UploadDocument(
		ctx.Context(),
		h.userID(ctx),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		docType,
		data,
	)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, doc)
}

func (h *StudentHandler) DeleteDocument(ctx *fiber.Ctx) error {
	if err := h.svc.DeleteDocument(h.userID(ctx), ctx.Params("documentID")); err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Document deleted")
}

func (h *StudentHandler) ListEssays(ctx *fiber.Ctx) error {
	essays, err := h.svc.ListEssays(h.userID(ctx), ctx.Params("applicationID"))
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, essays)
}

func (h *StudentHandler) AddEssay(ctx *fiber.Ctx) error {
	var requestBody dto.EssayRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	essay, err := h.svc.AddEssay(h.userID(ctx), ctx.Params("applicationID"), requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, essay)
}

func (h *StudentHandler) UpdateEssay(ctx *fiber.Ctx) error {
	var requestBody dto.EssayRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	essay, err := h.svc.UpdateEssay(h.userID(ctx), ctx.Params("essayID"), requestBody)
	if err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, essay)
}

func (h *StudentHandler) DeleteEssay(ctx *fiber.Ctx) error {
	if err := h.svc.DeleteEssay(h.userID(ctx), ctx.Params("essayID")); err != nil {
		return utils.ResponseFromError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Essay deleted")
}

func (h *StudentHandler) userID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals("userID").(string)
	return id
}
