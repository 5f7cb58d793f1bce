package controller

import (
	"fmt"
	"os"

	"notevault-be/internal/pkg/serverutils"
	"notevault-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
}

type oauthController struct {
	oauthService service.IOAuthService
}

func NewOAuthController(oauthService service.IOAuthService) IOAuthController {
	return &oauthController{oauthService: oauthService}
}

func (c *oauthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/oauth")
	h.Get(":provider", c.Login)
	h.Get(":provider/callback", c.Callback)
}

func (c *oauthController) Login(ctx *fiber.Ctx) error {
	provider := ctx.Params("provider")

	url, err := c.oauthService.GetLoginURL(provider)
	if err != nil {
		return serverutils.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.Redirect(url)
}

func (c *oauthController) Callback(ctx *fiber.Ctx) error {
	provider := ctx.Params("provider")
	code := ctx.Query("code")
	if code == "" {
		return serverutils.NewError(fiber.StatusBadRequest, "Missing code")
	}

	res, err := c.oauthService.HandleCallback(ctx.Context(), provider, code)
	if err != nil {
		return err
	}

	clientURL := os.Getenv("CLIENT_URL")
	if clientURL == "" {
		clientURL = "http://localhost:5173"
	}

	return ctx.Redirect(fmt.Sprintf("%s/oauth/callback?token=%s", clientURL, res.AccessToken))
}
