package controller

import (
	"notevault-be/internal/dto"
	"notevault-be/internal/pkg/serverutils"
	"notevault-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICommentController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type commentController struct {
	commentService service.ICommentService
}

func NewCommentController(commentService service.ICommentService) ICommentController {
	return &commentController{
		commentService: commentService,
	}
}

func (c *commentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/comment/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("note/:noteId", c.List)
	h.Post("note/:noteId", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *commentController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteId, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	var req dto.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.NoteId = noteId

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.commentService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return lockError(err)
	}
	if res == nil {
		return serverutils.NewError(fiber.StatusNotFound, "Note not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create comment", res))
}

func (c *commentController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteId, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	res, err := c.commentService.List(ctx.Context(), userId, noteId)
	if err != nil {
		return lockError(err)
	}
	if res == nil {
		return serverutils.NewError(fiber.StatusNotFound, "Note not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show comments", res))
}

func (c *commentController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid comment id")
	}

	var req dto.UpdateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := c.commentService.Update(ctx.Context(), userId, &req); err != nil {
		return lockError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update comment", nil))
}

func (c *commentController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid comment id")
	}

	if err := c.commentService.Delete(ctx.Context(), userId, id); err != nil {
		return lockError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete comment", nil))
}
