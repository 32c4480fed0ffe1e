package storage

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/vyapaar-tech/orderbot-backend/internal/models"
)

// DatabaseStore persists catalog and orders in PostgreSQL via GORM.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a database-backed storage
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Catalog operations

func (d *DatabaseStore) CreateProduct(product *models.Product) (*models.Product, error) {
	if err := d.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}
	return product, nil
}

func (d *DatabaseStore) ListProducts() ([]*models.Product, error) {
	var products []*models.Product
	if err := d.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

// Order operations

func (d *DatabaseStore) AppendOrder(order *models.Order) (*models.Order, error) {
	if err := d.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("appending order: %w", err)
	}
	return order, nil
}

func (d *DatabaseStore) GetOrder(orderID string) (*models.Order, error) {
	var order models.Order
	if err := d.db.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	return &order, nil
}

func (d *DatabaseStore) GetOrdersBySender(sender string) ([]*models.Order, error) {
	var orders []*models.Order
	if err := d.db.Where("sender = ?", sender).Order("id desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("listing orders for sender: %w", err)
	}
	return orders, nil
}

func (d *DatabaseStore) GetAllOrders() ([]*models.Order, error) {
	var orders []*models.Order
	if err := d.db.Order("id desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return orders, nil
}
