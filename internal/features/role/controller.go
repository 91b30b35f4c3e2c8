package role

import (
	common_api "go-temple/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoleController struct {
	RoleService RoleService
}

func NewRoleController(roleService RoleService) *RoleController {
	return &RoleController{
		RoleService: roleService,
	}
}

// CreateRole godoc
// @Summary      Create role
// @Description  Create a role bundling permission references for a temple
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        input body CreateRoleRequest true "Role Input"
// @Success      200  {object} Role
// @Router       /api/role/create/{templeId} [post]
func (ctrl *RoleController) CreateRole(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID.",
		})
	}

	var req CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	role, err := ctrl.RoleService.Create(c.Context(), templeID, req)
	if err != nil {
		return common_api.Error(c, err)
	}

	return c.JSON(fiber.Map{"role": role})
}

// GetRoles godoc
// @Summary      List roles with permissions populated
// @Tags         roles
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Success      200  {object} map[string]interface{}
// @Router       /api/role/get/{templeId} [get]
func (ctrl *RoleController) GetRoles(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID.",
		})
	}

	roles, err := ctrl.RoleService.GetByTemple(c.Context(), templeID)
	if err != nil {
		return common_api.Error(c, err)
	}

	return c.JSON(fiber.Map{"roles": roles})
}

// UpdateRole godoc
// @Summary      Update role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        roleId path string true "Role ID"
// @Param        input body UpdateRoleRequest true "Update Input"
// @Success      200  {object} Role
// @Router       /api/role/edit/{templeId}/{roleId} [put]
func (ctrl *RoleController) UpdateRole(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID.",
		})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("roleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid role ID.",
		})
	}

	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	role, err := ctrl.RoleService.Update(c.Context(), id, templeID, req)
	if err != nil {
		return common_api.Error(c, err)
	}

	return c.JSON(fiber.Map{"role": role})
}

// DeleteRole godoc
// @Summary      Delete role
// @Tags         roles
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        roleId path string true "Role ID"
// @Success      200  {string} string "deleted"
// @Router       /api/role/delete/{templeId}/{roleId} [delete]
func (ctrl *RoleController) DeleteRole(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("roleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid role ID.",
		})
	}

	if err := ctrl.RoleService.Delete(c.Context(), id); err != nil {
		return common_api.Error(c, err)
	}

	return c.JSON("Role deleted successfully.")
}
