package expense

import (
	common_api "go-temple/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExpenseController struct {
	ExpenseService ExpenseService
}

func NewExpenseController(expenseService ExpenseService) *ExpenseController {
	return &ExpenseController{
		ExpenseService: expenseService,
	}
}

// CreateExpense godoc
// @Summary      Create expense
// @Tags         expense
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        input body CreateExpenseRequest true "Expense Input"
// @Success      200  {object} map[string]interface{}
// @Router       /api/expense/create/{templeId} [post]
func (ctrl *ExpenseController) CreateExpense(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}

	var req CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	expense, err := ctrl.ExpenseService.Create(c.Context(), templeID, req)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Expense added successfully.",
		"expense": expense,
	})
}

// GetExpenses godoc
// @Summary      List expenses
// @Tags         expense
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Success      200  {array} Expense
// @Router       /api/expense/get/{templeId} [get]
func (ctrl *ExpenseController) GetExpenses(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}

	expenses, err := ctrl.ExpenseService.GetByTemple(c.Context(), templeID)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(expenses)
}

// UpdateExpense godoc
// @Summary      Update expense
// @Tags         expense
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        id path string true "Expense ID"
// @Param        input body UpdateExpenseRequest true "Update Input"
// @Success      200  {object} Expense
// @Router       /api/expense/edit/{templeId}/{id} [put]
func (ctrl *ExpenseController) UpdateExpense(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid expense ID",
		})
	}

	var req UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	expense, err := ctrl.ExpenseService.Update(c.Context(), templeID, id, req)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(expense)
}

// DeleteExpense godoc
// @Summary      Delete expense
// @Tags         expense
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        id path string true "Expense ID"
// @Success      200  {object} map[string]interface{}
// @Router       /api/expense/delete/{templeId}/{id} [delete]
func (ctrl *ExpenseController) DeleteExpense(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid expense ID",
		})
	}

	if err := ctrl.ExpenseService.Delete(c.Context(), templeID, id); err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Expense deleted successfully."})
}
