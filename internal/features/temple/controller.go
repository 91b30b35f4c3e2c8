package temple

import (
	common_api "go-temple/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TempleController struct {
	TempleService TempleService
}

func NewTempleController(templeService TempleService) *TempleController {
	return &TempleController{
		TempleService: templeService,
	}
}

// CreateTemple godoc
// @Summary      Register a temple
// @Description  Onboard a new temple; the super admin is created afterwards
// @Tags         temples
// @Accept       json
// @Produce      json
// @Param        input body CreateTempleRequest true "Temple Input"
// @Success      200  {object} Temple
// @Router       /api/temple/create [post]
func (ctrl *TempleController) CreateTemple(c *fiber.Ctx) error {
	var req CreateTempleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	t, err := ctrl.TempleService.Create(c.Context(), req)
	if err != nil {
		return common_api.Error(c, err)
	}

	return c.JSON(fiber.Map{"temple": t})
}

// GetTemple godoc
// @Summary      Get temple by ID
// @Tags         temples
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Success      200  {object} Temple
// @Failure      404  {string} string "Temple not found"
// @Router       /api/temple/get/{templeId} [get]
func (ctrl *TempleController) GetTemple(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID.",
		})
	}

	t, err := ctrl.TempleService.GetByID(c.Context(), id)
	if err != nil {
		return common_api.Error(c, err)
	}

	return c.JSON(fiber.Map{"temple": t})
}

// ListTemples godoc
// @Summary      List all temples
// @Tags         temples
// @Produce      json
// @Success      200  {object} map[string]interface{}
// @Router       /api/temple/all [get]
func (ctrl *TempleController) ListTemples(c *fiber.Ctx) error {
	temples, err := ctrl.TempleService.List(c.Context())
	if err != nil {
		return common_api.Error(c, err)
	}

	return c.JSON(fiber.Map{"temples": temples})
}

// UpdateTemple godoc
// @Summary      Update temple profile
// @Tags         temples
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        input body UpdateTempleRequest true "Update Input"
// @Success      200  {object} Temple
// @Router       /api/temple/edit/{templeId} [put]
func (ctrl *TempleController) UpdateTemple(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID.",
		})
	}

	var req UpdateTempleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	t, err := ctrl.TempleService.Update(c.Context(), id, req)
	if err != nil {
		return common_api.Error(c, err)
	}

	return c.JSON(fiber.Map{"temple": t})
}
