package controller

import (
	"notevault-be/internal/pkg/serverutils"
	"notevault-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStatsController interface {
	RegisterRoutes(r fiber.Router)
	Overview(ctx *fiber.Ctx) error
	ActivityLog(ctx *fiber.Ctx) error
}

type statsController struct {
	statsService service.IStatsService
}

func NewStatsController(statsService service.IStatsService) IStatsController {
	return &statsController{
		statsService: statsService,
	}
}

func (c *statsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/stats/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("overview", c.Overview)
	h.Get("activity", c.ActivityLog)
}

func (c *statsController) Overview(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.statsService.Overview(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show stats", res))
}

func (c *statsController) ActivityLog(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	action := ctx.Query("action")
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.statsService.ActivityLog(ctx.Context(), userId, action, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show activity", res))
}
