package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/vyapaar-tech/orderbot-backend/internal/models"
	"github.com/vyapaar-tech/orderbot-backend/internal/storage"
)

// OrderHandler serves read access to finalized orders. Orders are
// append-only; there are no update or delete endpoints.
type OrderHandler struct {
	store storage.Store
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(store storage.Store) *OrderHandler {
	return &OrderHandler{store: store}
}

// orderResponse is an Order with the item lines decoded for JSON output.
type orderResponse struct {
	*models.Order
	ItemLines models.OrderItems `json:"items"`
}

func toResponse(order *models.Order) orderResponse {
	items, err := order.GetItems()
	if err != nil {
		log.Printf("Error decoding items for order %s: %v", order.OrderID, err)
	}
	return orderResponse{Order: order, ItemLines: items}
}

// ListOrders returns all finalized orders.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.store.GetAllOrders()
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list orders",
		})
	}

	out := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toResponse(order))
	}
	return c.JSON(fiber.Map{
		"count":  len(out),
		"orders": out,
	})
}

// GetOrder returns one order by its order ID.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.store.GetOrder(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}
	return c.JSON(toResponse(order))
}

// GetOrdersBySender returns all orders placed by one sender.
func (h *OrderHandler) GetOrdersBySender(c *fiber.Ctx) error {
	sender := c.Params("sender")
	orders, err := h.store.GetOrdersBySender(sender)
	if err != nil {
		log.Printf("Error listing orders for %s: %v", sender, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list orders",
		})
	}

	out := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toResponse(order))
	}
	return c.JSON(fiber.Map{
		"sender": sender,
		"count":  len(out),
		"orders": out,
	})
}
