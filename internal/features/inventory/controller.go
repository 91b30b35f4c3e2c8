package inventory

import (
	common_api "go-temple/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InventoryController struct {
	InventoryService InventoryService
}

func NewInventoryController(inventoryService InventoryService) *InventoryController {
	return &InventoryController{
		InventoryService: inventoryService,
	}
}

// CreateItem godoc
// @Summary      Create inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        input body CreateItemRequest true "Item Input"
// @Success      200  {object} Item
// @Router       /api/inventory/create/{templeId} [post]
func (ctrl *InventoryController) CreateItem(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}

	var req CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := ctrl.InventoryService.Create(c.Context(), templeID, req)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(item)
}

// GetItems godoc
// @Summary      List inventory
// @Tags         inventory
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Success      200  {array} Item
// @Router       /api/inventory/get/{templeId} [get]
func (ctrl *InventoryController) GetItems(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}

	items, err := ctrl.InventoryService.GetByTemple(c.Context(), templeID)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(items)
}

// UpdateItem godoc
// @Summary      Update inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        id path string true "Item ID"
// @Param        input body UpdateItemRequest true "Update Input"
// @Success      200  {object} Item
// @Router       /api/inventory/edit/{templeId}/{id} [put]
func (ctrl *InventoryController) UpdateItem(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item ID",
		})
	}

	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := ctrl.InventoryService.Update(c.Context(), templeID, id, req)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(item)
}

// DeleteItem godoc
// @Summary      Delete inventory item
// @Tags         inventory
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        id path string true "Item ID"
// @Success      200  {object} map[string]interface{}
// @Router       /api/inventory/delete/{templeId}/{id} [delete]
func (ctrl *InventoryController) DeleteItem(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item ID",
		})
	}

	if err := ctrl.InventoryService.Delete(c.Context(), templeID, id); err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Inventory item deleted successfully."})
}
