package controller

import (
	"notevault-be/internal/dto"
	"notevault-be/internal/pkg/serverutils"
	"notevault-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITagController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Attach(ctx *fiber.Ctx) error
	Detach(ctx *fiber.Ctx) error
}

type tagController struct {
	tagService service.ITagService
}

func NewTagController(tagService service.ITagService) ITagController {
	return &tagController{
		tagService: tagService,
	}
}

func (c *tagController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tag/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post("note/:noteId/attach", c.Attach)
	h.Delete("note/:noteId/tag/:tagId", c.Detach)
}

func (c *tagController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateTagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.tagService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create tag", res))
}

func (c *tagController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.tagService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show tags", res))
}

func (c *tagController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid tag id")
	}

	var req dto.UpdateTagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := c.tagService.Update(ctx.Context(), userId, &req); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update tag", nil))
}

func (c *tagController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid tag id")
	}

	if err := c.tagService.Delete(ctx.Context(), userId, id); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete tag", nil))
}

func (c *tagController) Attach(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteId, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	var req dto.AttachTagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.NoteId = noteId

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := c.tagService.Attach(ctx.Context(), userId, &req); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success attach tag", nil))
}

func (c *tagController) Detach(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteId, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	tagId, err := uuid.Parse(ctx.Params("tagId"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid tag id")
	}

	if err := c.tagService.Detach(ctx.Context(), userId, noteId, tagId); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success detach tag", nil))
}
