package controller

import (
	"errors"

	"notevault-be/internal/dto"
	"notevault-be/internal/pkg/serverutils"
	"notevault-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	ListTrash(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Move(ctx *fiber.Ctx) error
	Pin(ctx *fiber.Ctx) error
	Trash(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	Purge(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("search", c.Search)
	h.Get("trash", c.ListTrash)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Put(":id/move", c.Move)
	h.Put(":id/pin", c.Pin)
	h.Post(":id/restore", c.Restore)
	h.Get(":id/export", c.Export)
	h.Delete(":id/purge", c.Purge)
	h.Delete(":id", c.Trash)
}

// lockError maps the lock sentinel onto a 403 so clients can prompt for the
// note password instead of showing a generic failure.
func lockError(err error) error {
	if errors.Is(err, service.ErrNoteLocked) {
		return serverutils.NewError(fiber.StatusForbidden, "Note is locked")
	}
	return err
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var folderId *uuid.UUID
	if raw := ctx.Query("folder_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return serverutils.NewError(fiber.StatusBadRequest, "Invalid folder id")
		}
		folderId = &id
	}

	var tagId *uuid.UUID
	if raw := ctx.Query("tag_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return serverutils.NewError(fiber.StatusBadRequest, "Invalid tag id")
		}
		tagId = &id
	}

	res, err := c.noteService.List(ctx.Context(), userId, folderId, tagId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show notes", res))
}

func (c *noteController) Search(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	query := ctx.Query("q")
	if query == "" {
		return serverutils.NewError(fiber.StatusBadRequest, "Missing search query")
	}

	res, err := c.noteService.Search(ctx.Context(), userId, query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search notes", res))
}

func (c *noteController) ListTrash(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.noteService.ListTrash(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show trash", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	res, err := c.noteService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewError(fiber.StatusNotFound, "Note not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.noteService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return lockError(err)
	}
	if res == nil {
		return serverutils.NewError(fiber.StatusNotFound, "Note not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) Move(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	var req dto.MoveNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.noteService.Move(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}
	if res == nil {
		return serverutils.NewError(fiber.StatusNotFound, "Note not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success move note", res))
}

func (c *noteController) Pin(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	var req dto.PinNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := c.noteService.Pin(ctx.Context(), userId, &req); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success pin note", nil))
}

func (c *noteController) Trash(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	if err := c.noteService.Trash(ctx.Context(), userId, id); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Note moved to trash", nil))
}

func (c *noteController) Restore(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	if err := c.noteService.Restore(ctx.Context(), userId, id); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success restore note", nil))
}

func (c *noteController) Purge(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	if err := c.noteService.Purge(ctx.Context(), userId, id); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Note permanently deleted", nil))
}

func (c *noteController) Export(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	res, err := c.noteService.Export(ctx.Context(), userId, id, ctx.Query("format"))
	if err != nil {
		return lockError(err)
	}
	if res == nil {
		return serverutils.NewError(fiber.StatusNotFound, "Note not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success export note", res))
}
