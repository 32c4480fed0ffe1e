package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItem is one parsed "name quantity" line from the sender's message.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderItems keeps the lines in the order they first appeared in the
// message, which is also the order the summary renders them in.
type OrderItems []OrderItem

// Map returns the name→quantity view of the items.
func (items OrderItems) Map() map[string]int {
	m := make(map[string]int, len(items))
	for _, item := range items {
		m[item.Name] = item.Quantity
	}
	return m
}

// Order is a finalized order record. Write-once, append-only: there is no
// update or delete path.
type Order struct {
	gorm.Model

	OrderID      string    `json:"order_id" gorm:"uniqueIndex" validate:"required"`
	Sender       string    `json:"sender" gorm:"index" validate:"required"`
	Language     string    `json:"language" validate:"required"`
	Items        string    `json:"-" gorm:"column:items"` // JSON-encoded OrderItems
	DeliveryDays string    `json:"delivery_days"`
	Total        float64   `json:"total" validate:"gte=0"`
	PlacedAt     time.Time `json:"placed_at"`
}

// BeforeCreate assigns an order ID when none was set.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderID == "" {
		o.OrderID = uuid.NewString()
	}
	return nil
}

// SetItems stores the parsed lines as JSON.
func (o *Order) SetItems(items OrderItems) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	o.Items = string(data)
	return nil
}

// GetItems decodes the stored lines. An empty column decodes to no items.
func (o *Order) GetItems() (OrderItems, error) {
	if o.Items == "" {
		return nil, nil
	}
	var items OrderItems
	if err := json.Unmarshal([]byte(o.Items), &items); err != nil {
		return nil, err
	}
	return items, nil
}
