package tenant

import (
	common_api "go-temple/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TenantController struct {
	TenantService TenantService
}

func NewTenantController(tenantService TenantService) *TenantController {
	return &TenantController{
		TenantService: tenantService,
	}
}

// CreateTenant godoc
// @Summary      Create tenant
// @Tags         tenant
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        input body CreateTenantRequest true "Tenant Input"
// @Success      200  {object} Tenant
// @Router       /api/tenant/create/{templeId} [post]
func (ctrl *TenantController) CreateTenant(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}

	var req CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	tenant, err := ctrl.TenantService.Create(c.Context(), templeID, req)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(tenant)
}

// GetTenants godoc
// @Summary      List or search tenants
// @Tags         tenant
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        searchTerm query string false "Search name, contact, email, address, status"
// @Success      200  {array} Tenant
// @Router       /api/tenant/get/{templeId} [get]
func (ctrl *TenantController) GetTenants(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}

	tenants, err := ctrl.TenantService.Search(c.Context(), templeID, c.Query("searchTerm"))
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(tenants)
}

// UpdateTenant godoc
// @Summary      Update tenant
// @Tags         tenant
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        id path string true "Tenant ID"
// @Param        input body UpdateTenantRequest true "Update Input"
// @Success      200  {object} Tenant
// @Router       /api/tenant/edit/{templeId}/{id} [put]
func (ctrl *TenantController) UpdateTenant(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid tenant ID",
		})
	}

	var req UpdateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	tenant, err := ctrl.TenantService.Update(c.Context(), templeID, id, req)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(tenant)
}

// DeleteTenant godoc
// @Summary      Delete tenant
// @Tags         tenant
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        id path string true "Tenant ID"
// @Success      200  {object} map[string]interface{}
// @Router       /api/tenant/delete/{templeId}/{id} [delete]
func (ctrl *TenantController) DeleteTenant(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid tenant ID",
		})
	}

	if err := ctrl.TenantService.Delete(c.Context(), templeID, id); err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Tenant deleted successfully."})
}
