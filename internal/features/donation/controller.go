package donation

import (
	"strconv"

	common_api "go-temple/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DonationController struct {
	DonationService DonationService
	Report          *ReportBuilder
}

func NewDonationController(donationService DonationService, report *ReportBuilder) *DonationController {
	return &DonationController{
		DonationService: donationService,
		Report:          report,
	}
}

func parseTempleID(c *fiber.Ctx) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Params("templeId"))
}

// CreateDonation godoc
// @Summary      Create donation
// @Tags         donation
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        input body CreateDonationRequest true "Donation Input"
// @Success      200  {object} map[string]interface{}
// @Router       /api/donation/create/{templeId} [post]
func (ctrl *DonationController) CreateDonation(c *fiber.Ctx) error {
	templeID, err := parseTempleID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}

	var req CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	donation, err := ctrl.DonationService.Create(c.Context(), templeID, req)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(fiber.Map{"newDaan": donation})
}

// ListDonations godoc
// @Summary      List donations
// @Description  Filtered, paged donation list with temple-wide totals
// @Tags         donation
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        paymentMethod query string false "Filter by payment method"
// @Param        tehsil query string false "Filter by tehsil"
// @Param        searchTerm query string false "Search donor, seva and village"
// @Param        startIndx query int false "Pagination offset"
// @Param        sortDirection query string false "asc or desc (default desc)"
// @Success      200  {object} ListResult
// @Router       /api/donation/get/{templeId} [get]
func (ctrl *DonationController) ListDonations(c *fiber.Ctx) error {
	templeID, err := parseTempleID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}

	startIndex, _ := strconv.ParseInt(c.Query("startIndx", "0"), 10, 64)
	query := ListQuery{
		PaymentMethod: c.Query("paymentMethod"),
		Tehsil:        c.Query("tehsil"),
		SearchTerm:    c.Query("searchTerm"),
		StartIndex:    startIndex,
		SortAsc:       c.Query("sortDirection") == "asc",
	}

	result, err := ctrl.DonationService.List(c.Context(), templeID, query)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(result)
}

// GetDonation godoc
// @Summary      Get one donation
// @Tags         donation
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        id path string true "Donation ID"
// @Success      200  {object} map[string]interface{}
// @Router       /api/donation/get/{templeId}/{id} [get]
func (ctrl *DonationController) GetDonation(c *fiber.Ctx) error {
	templeID, err := parseTempleID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid donation ID",
		})
	}

	donation, err := ctrl.DonationService.Get(c.Context(), templeID, id)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(fiber.Map{"daan": donation})
}

// UpdateDonation godoc
// @Summary      Update donation
// @Tags         donation
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        id path string true "Donation ID"
// @Param        input body UpdateDonationRequest true "Update Input"
// @Success      200  {object} map[string]interface{}
// @Router       /api/donation/edit/{templeId}/{id} [put]
func (ctrl *DonationController) UpdateDonation(c *fiber.Ctx) error {
	templeID, err := parseTempleID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid donation ID",
		})
	}

	var req UpdateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	donation, err := ctrl.DonationService.Update(c.Context(), templeID, id, req)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"message":         "Daan update successfully",
		"updatedDonation": donation,
	})
}

// DeleteDonation godoc
// @Summary      Delete donation
// @Tags         donation
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        id path string true "Donation ID"
// @Success      200  {object} map[string]interface{}
// @Router       /api/donation/delete/{templeId}/{id} [delete]
func (ctrl *DonationController) DeleteDonation(c *fiber.Ctx) error {
	templeID, err := parseTempleID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid donation ID",
		})
	}

	if err := ctrl.DonationService.Delete(c.Context(), templeID, id); err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Daan deleted successfully."})
}

// DownloadReport godoc
// @Summary      Download donation report
// @Description  Streams an XLSX workbook of the temple's donations
// @Tags         donation
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        templeId path string true "Temple ID"
// @Success      200  {file} file
// @Router       /api/donation/report/{templeId} [get]
func (ctrl *DonationController) DownloadReport(c *fiber.Ctx) error {
	templeID, err := parseTempleID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}

	buf, err := ctrl.Report.Build(c.Context(), templeID)
	if err != nil {
		return common_api.Error(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="donations.xlsx"`)
	return c.Send(buf.Bytes())
}
