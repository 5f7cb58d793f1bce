package controller

import (
	"errors"

	"notevault-be/internal/dto"
	"notevault-be/internal/pkg/serverutils"
	"notevault-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILockController interface {
	RegisterRoutes(r fiber.Router)
	SetLock(ctx *fiber.Ctx) error
	Unlock(ctx *fiber.Ctx) error
	RemoveLock(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type lockController struct {
	lockService service.ILockService
}

func NewLockController(lockService service.ILockService) ILockController {
	return &lockController{
		lockService: lockService,
	}
}

func (c *lockController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1/:noteId/lock")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Status)
	h.Put("", c.SetLock)
	h.Post("unlock", c.Unlock)
	h.Delete("", c.RemoveLock)
}

func mapLockErr(err error) error {
	if errors.Is(err, service.ErrWrongLockPassword) {
		return serverutils.NewError(fiber.StatusForbidden, err.Error())
	}
	if errors.Is(err, service.ErrNoteLocked) {
		return serverutils.NewError(fiber.StatusForbidden, "Note is locked")
	}
	return serverutils.NewError(fiber.StatusBadRequest, err.Error())
}

func (c *lockController) SetLock(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteId, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	var req dto.SetNoteLockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.NoteId = noteId

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := c.lockService.SetLock(ctx.Context(), userId, &req); err != nil {
		return mapLockErr(err)
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Note locked", nil))
}

func (c *lockController) Unlock(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteId, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	var req dto.UnlockNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.NoteId = noteId

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.lockService.Unlock(ctx.Context(), userId, &req)
	if err != nil {
		return mapLockErr(err)
	}
	if res == nil {
		return serverutils.NewError(fiber.StatusNotFound, "Note not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Note unlocked", res))
}

func (c *lockController) RemoveLock(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteId, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	var req dto.RemoveNoteLockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.NoteId = noteId

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := c.lockService.RemoveLock(ctx.Context(), userId, &req); err != nil {
		return mapLockErr(err)
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Lock removed", nil))
}

func (c *lockController) Status(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	noteId, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, "Invalid note id")
	}

	res, err := c.lockService.Status(ctx.Context(), userId, noteId)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewError(fiber.StatusNotFound, "Note not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show lock status", res))
}
