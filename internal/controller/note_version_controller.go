package controller

import (
	"strconv"

	"notevault-be/internal/dto"
	"notevault-be/internal/pkg/serverutils"
	"notevault-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteVersionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
}

type noteVersionController struct {
	versionService service.INoteVersionService
}

func NewNoteVersionController(versionService service.INoteVersionService) INoteVersionController {
	return &noteVersionController{
		versionService: versionService,
	}
}

func (c *noteVersionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1/:noteId/versions")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Get(":version", c.Show)
	h.Post(":version/restore", c.Restore)
}

func (c *noteVersionController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteId, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	res, err := c.versionService.List(ctx.Context(), userId, noteId)
	if err != nil {
		return lockError(err)
	}
	if res == nil {
		return serverutils.NewError(fiber.StatusNotFound, "Note not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show versions", res))
}

func (c *noteVersionController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteId, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	versionNum, err := strconv.Atoi(ctx.Params("version"))
	if err != nil || versionNum < 1 {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid version number")
	}

	res, err := c.versionService.Show(ctx.Context(), userId, noteId, versionNum)
	if err != nil {
		return lockError(err)
	}
	if res == nil {
		return serverutils.NewError(fiber.StatusNotFound, "Version not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show version", res))
}

func (c *noteVersionController) Restore(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteId, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	versionNum, err := strconv.Atoi(ctx.Params("version"))
	if err != nil || versionNum < 1 {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid version number")
	}

	req := dto.RestoreVersionRequest{NoteId: noteId, Version: versionNum}

	res, err := c.versionService.Restore(ctx.Context(), userId, &req)
	if err != nil {
		return lockError(err)
	}
	if res == nil {
		return serverutils.NewError(fiber.StatusNotFound, "Note not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success restore version", res))
}
