package storage

import (
	"github.com/vyapaar-tech/orderbot-backend/internal/models"
)

var storeInstance Store

// SetStore sets the global store instance (call from main.go)
func SetStore(s Store) {
	storeInstance = s
}

// GetStore returns the global store instance
func GetStore() Store {
	return storeInstance
}

// Store defines the interface for catalog reads and order persistence.
type Store interface {
	// Catalog operations
	ListProducts() ([]*models.Product, error)
	CreateProduct(product *models.Product) (*models.Product, error)

	// Order operations (append-only: no update or delete)
	AppendOrder(order *models.Order) (*models.Order, error)
	GetOrder(orderID string) (*models.Order, error)
	GetOrdersBySender(sender string) ([]*models.Order, error)
	GetAllOrders() ([]*models.Order, error)
}
