package export

import (
	common_api "go-temple/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExportController struct {
	ExportService ExportService
}

func NewExportController(exportService ExportService) *ExportController {
	return &ExportController{
		ExportService: exportService,
	}
}

// RunExport godoc
// @Summary      Run warehouse export
// @Description  Mirror the temple's donations and expenses into the reporting database
// @Tags         export
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Success      200  {object} RunResult
// @Router       /api/export/run/{templeId} [post]
func (ctrl *ExportController) RunExport(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}

	result, err := ctrl.ExportService.Run(c.Context(), templeID)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(result)
}
