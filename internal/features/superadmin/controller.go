package superadmin

import (
	"time"

	common_api "go-temple/internal/common/api"
	"go-temple/internal/config"
	"go-temple/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SuperAdminController struct {
	SuperAdminService SuperAdminService
	Config            *config.Config
}

func NewSuperAdminController(superAdminService SuperAdminService, cfg *config.Config) *SuperAdminController {
	return &SuperAdminController{
		SuperAdminService: superAdminService,
		Config:            cfg,
	}
}

// setSessionCookie attaches the HTTP-only session cookie. The token never
// appears in a JSON body.
func (ctrl *SuperAdminController) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     ctrl.Config.CookieName,
		Value:    token,
		Expires:  time.Now().Add(ctrl.Config.TokenTTL),
		HTTPOnly: true,
	})
}

// CreateSuperAdmin godoc
// @Summary      Create super admin
// @Description  Register the single super admin of a temple and sign in
// @Tags         superadmin
// @Accept       json
// @Produce      json
// @Param        input body CreateSuperAdminRequest true "Super Admin Input"
// @Success      200  {object} map[string]interface{}
// @Failure      400  {string} string "A super admin already exists for this temple"
// @Failure      404  {string} string "Temple not found"
// @Router       /api/superadmin/create [post]
func (ctrl *SuperAdminController) CreateSuperAdmin(c *fiber.Ctx) error {
	var req CreateSuperAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	admin, token, err := ctrl.SuperAdminService.Create(c.Context(), req)
	if err != nil {
		return common_api.Error(c, err)
	}

	ctrl.setSessionCookie(c, token)
	return c.JSON(fiber.Map{"currUser": admin})
}

// SigninSuperAdmin godoc
// @Summary      Super admin signin
// @Tags         superadmin
// @Accept       json
// @Produce      json
// @Param        input body SigninRequest true "Signin Input"
// @Success      200  {object} map[string]interface{}
// @Failure      400  {string} string "Invalid Password."
// @Failure      404  {string} string "User not found."
// @Router       /api/superadmin/signin [post]
func (ctrl *SuperAdminController) SigninSuperAdmin(c *fiber.Ctx) error {
	var req SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	admin, token, err := ctrl.SuperAdminService.Signin(c.Context(), req)
	if err != nil {
		return common_api.Error(c, err)
	}

	ctrl.setSessionCookie(c, token)
	return c.JSON(fiber.Map{"currUser": admin})
}

// EditSuperAdmin godoc
// @Summary      Edit super admin profile
// @Tags         superadmin
// @Accept       json
// @Produce      json
// @Param        input body EditSuperAdminRequest true "Edit Input"
// @Success      200  {object} map[string]interface{}
// @Router       /api/superadmin/edit [put]
func (ctrl *SuperAdminController) EditSuperAdmin(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required.",
		})
	}

	var req EditSuperAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	admin, err := ctrl.SuperAdminService.Edit(c.Context(), claims.ID, req)
	if err != nil {
		return common_api.Error(c, err)
	}

	return c.JSON(fiber.Map{"currUser": admin})
}
