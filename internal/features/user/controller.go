package user

import (
	"time"

	common_api "go-temple/internal/common/api"
	"go-temple/internal/config"
	"go-temple/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserController struct {
	UserService UserService
	Config      *config.Config
}

func NewUserController(userService UserService, cfg *config.Config) *UserController {
	return &UserController{
		UserService: userService,
		Config:      cfg,
	}
}

func (ctrl *UserController) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     ctrl.Config.CookieName,
		Value:    token,
		Expires:  time.Now().Add(ctrl.Config.TokenTTL),
		HTTPOnly: true,
	})
}

// SigninUser godoc
// @Summary      User signin
// @Description  Authenticate a temple user and start a cookie session
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        input body SigninRequest true "Signin Input"
// @Success      200  {object} map[string]interface{}
// @Failure      400  {string} string "Invalid Password."
// @Failure      404  {string} string "User not found."
// @Router       /api/user/signin [post]
func (ctrl *UserController) SigninUser(c *fiber.Ctx) error {
	var req SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, token, err := ctrl.UserService.Signin(c.Context(), req)
	if err != nil {
		return common_api.Error(c, err)
	}

	ctrl.setSessionCookie(c, token)
	return c.JSON(fiber.Map{"currUser": user})
}

// CreateUser godoc
// @Summary      Create user
// @Description  Register a user under a temple with a set of roles
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        input body CreateUserRequest true "User Input"
// @Success      200  {object} View
// @Router       /api/user/create/{templeId} [post]
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, err := ctrl.UserService.Create(c.Context(), templeID, req)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(user)
}

// GetUsersByTemple godoc
// @Summary      List temple users
// @Tags         user
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Success      200  {array} View
// @Router       /api/user/get/{templeId} [get]
func (ctrl *UserController) GetUsersByTemple(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}

	users, err := ctrl.UserService.GetByTemple(c.Context(), templeID)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(users)
}

// EditUser godoc
// @Summary      Edit user
// @Description  Update a user; allowed for the user itself or the super admin
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        userId path string true "User ID"
// @Param        input body EditUserRequest true "Edit Input"
// @Success      200  {object} View
// @Router       /api/user/edit/{userId} [put]
func (ctrl *UserController) EditUser(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required.",
		})
	}

	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var req EditUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, err := ctrl.UserService.Edit(c.Context(), claims.ID, claims.TempleID, claims.SuperAdmin, userID, req)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(fiber.Map{"currUser": user})
}

// DeleteUser godoc
// @Summary      Delete user
// @Tags         user
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200  {object} map[string]interface{}
// @Router       /api/user/delete/{userId} [delete]
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromCtx(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required.",
		})
	}

	userID, err := primitive.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	if err := ctrl.UserService.Delete(c.Context(), claims.TempleID, userID); err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully."})
}
