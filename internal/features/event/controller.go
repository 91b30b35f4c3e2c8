package event

import (
	common_api "go-temple/internal/common/api"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventController struct {
	EventService EventService
}

func NewEventController(eventService EventService) *EventController {
	return &EventController{
		EventService: eventService,
	}
}

// CreateEvent godoc
// @Summary      Create event
// @Tags         event
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        input body CreateEventRequest true "Event Input"
// @Success      200  {object} Event
// @Router       /api/event/create/{templeId} [post]
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}

	var req CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	event, err := ctrl.EventService.Create(c.Context(), templeID, req)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(event)
}

// GetEvents godoc
// @Summary      List events
// @Tags         event
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Success      200  {array} Event
// @Router       /api/event/get/{templeId} [get]
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}

	events, err := ctrl.EventService.GetByTemple(c.Context(), templeID)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(events)
}

// UpdateEvent godoc
// @Summary      Update event
// @Tags         event
// @Accept       json
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        id path string true "Event ID"
// @Param        input body UpdateEventRequest true "Update Input"
// @Success      200  {object} Event
// @Router       /api/event/edit/{templeId}/{id} [put]
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	var req UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	event, err := ctrl.EventService.Update(c.Context(), templeID, id, req)
	if err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(event)
}

// DeleteEvent godoc
// @Summary      Delete event
// @Tags         event
// @Produce      json
// @Param        templeId path string true "Temple ID"
// @Param        id path string true "Event ID"
// @Success      200  {object} map[string]interface{}
// @Router       /api/event/delete/{templeId}/{id} [delete]
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	templeID, err := primitive.ObjectIDFromHex(c.Params("templeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid temple ID",
		})
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	if err := ctrl.EventService.Delete(c.Context(), templeID, id); err != nil {
		return common_api.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Event deleted successfully."})
}
