package asset

import (
	common_api "go-temple/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AssetController struct {
	AssetService AssetService
}

func NewAssetController(assetService AssetService) *AssetController {
	return &AssetController{
		AssetService: assetService,
	}
}

// CreateAsset godoc
// @Summary      Create asset
// @Tags         asset
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        input body CreateAssetRequest true "Asset Input"
// @Success      200  {object} Asset
// @Router       /api/asset/create/{templeId} [post]
func (ctrl *AssetController) CreateAsset(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}

	var req CreateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	asset, err := ctrl.AssetService.Create(c.Context(), templeID, req)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(asset)
}

// GetAssets godoc
// @Summary      List assets
// @Tags         asset
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Success      200  {array} Asset
// @Router       /api/asset/get/{templeId} [get]
func (ctrl *AssetController) GetAssets(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}

	assets, err := ctrl.AssetService.GetByTemple(c.Context(), templeID)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(assets)
}

// UpdateAsset godoc
// @Summary      Update asset
// @Tags         asset
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        id path string true "Asset ID"
// @Param        input body UpdateAssetRequest true "Update Input"
// @Success      200  {object} Asset
// @Router       /api/asset/edit/{templeId}/{id} [put]
func (ctrl *AssetController) UpdateAsset(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid asset ID",
		})
	}

	var req UpdateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	asset, err := ctrl.AssetService.Update(c.Context(), templeID, id, req)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(asset)
}

// DeleteAsset godoc
// @Summary      Delete asset
// @Tags         asset
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        id path string true "Asset ID"
// @Success      200  {object} map[string]interface{}
// @Router       /api/asset/delete/{templeId}/{id} [delete]
func (ctrl *AssetController) DeleteAsset(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid asset ID",
		})
	}

	if err := ctrl.AssetService.Delete(c.Context(), templeID, id); err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Asset deleted successfully."})
}
