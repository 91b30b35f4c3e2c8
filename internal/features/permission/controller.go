package permission

import (
	common_api "go-temple/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PermissionController struct {
	PermissionService PermissionService
}

func NewPermissionController(permissionService PermissionService) *PermissionController {
	return &PermissionController{
		PermissionService: permissionService,
	}
}

// CreatePermission godoc
// @Summary      Create permission
// @Description  Create a permission for a temple from the fixed name/action vocabulary
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        input body CreatePermissionRequest true "Permission Input"
// @Success      200  {object} Permission
// @Failure      400  {string} string "Invalid permission name"
// @Router       /api/permission/create/{templeId} [post]
func (ctrl *PermissionController) CreatePermission(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID.",
		})
	}

	var req CreatePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	perm, err := ctrl.PermissionService.Create(c.Context(), templeID, req)
	if err != nil {
		return common_api.Error(c, err)
	}

	return c.JSON(fiber.Map{"permission": perm})
}

// GetPermissions godoc
// @Summary      List permissions
// @Tags         permissions
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Success      200  {object} map[string]interface{}
// @Router       /api/permission/get/{templeId} [get]
func (ctrl *PermissionController) GetPermissions(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID.",
		})
	}

	perms, err := ctrl.PermissionService.GetByTemple(c.Context(), templeID)
	if err != nil {
		return common_api.Error(c, err)
	}

	return c.JSON(fiber.Map{"permissions": perms})
}

// UpdatePermission godoc
// @Summary      Update permission
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        permissionId path string true "Permission ID"
// @Param        input body UpdatePermissionRequest true "Update Input"
// @Success      200  {object} Permission
// @Router       /api/permission/edit/{templeId}/{permissionId} [put]
func (ctrl *PermissionController) UpdatePermission(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID.",
		})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("permissionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid permission ID.",
		})
	}

	var req UpdatePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	perm, err := ctrl.PermissionService.Update(c.Context(), id, templeID, req)
	if err != nil {
		return common_api.Error(c, err)
	}

	return c.JSON(fiber.Map{"permission": perm})
}

// DeletePermission godoc
// @Summary      Delete permission
// @Tags         permissions
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        permissionId path string true "Permission ID"
// @Success      200  {string} string "deleted"
// @Router       /api/permission/delete/{templeId}/{permissionId} [delete]
func (ctrl *PermissionController) DeletePermission(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("permissionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid permission ID.",
		})
	}

	if err := ctrl.PermissionService.Delete(c.Context(), id); err != nil {
		return common_api.Error(c, err)
	}

	return c.JSON("Permission deleted successfully.")
}
