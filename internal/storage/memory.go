package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vyapaar-tech/orderbot-backend/internal/models"
)

// MemoryStore holds catalog and orders in memory for tests and development.
type MemoryStore struct {
	products map[string]*models.Product
	orders   map[string]*models.Order

	// Mutexes for thread safety
	productMu sync.RWMutex
	orderMu   sync.RWMutex

	productCounter uint
	orderCounter   uint

	// productNames preserves catalog insertion order for listings
	productNames []string
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[string]*models.Product),
		orders:   make(map[string]*models.Order),
	}
}

// Catalog operations

func (m *MemoryStore) CreateProduct(product *models.Product) (*models.Product, error) {
	m.productMu.Lock()
	defer m.productMu.Unlock()

	key := product.NormalizedName()
	if key == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if _, exists := m.products[key]; exists {
		return nil, fmt.Errorf("product already exists: %s", product.Name)
	}

	m.productCounter++
	product.ID = m.productCounter
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	m.products[key] = product
	m.productNames = append(m.productNames, key)
	return product, nil
}

func (m *MemoryStore) ListProducts() ([]*models.Product, error) {
	m.productMu.RLock()
	defer m.productMu.RUnlock()

	products := make([]*models.Product, 0, len(m.productNames))
	for _, key := range m.productNames {
		products = append(products, m.products[key])
	}
	return products, nil
}

// Order operations

func (m *MemoryStore) AppendOrder(order *models.Order) (*models.Order, error) {
	m.orderMu.Lock()
	defer m.orderMu.Unlock()

	if order.OrderID == "" {
		order.OrderID = uuid.NewString()
	}
	if _, exists := m.orders[order.OrderID]; exists {
		return nil, fmt.Errorf("order already exists: %s", order.OrderID)
	}

	m.orderCounter++
	order.ID = m.orderCounter
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	m.orders[order.OrderID] = order
	return order, nil
}

func (m *MemoryStore) GetOrder(orderID string) (*models.Order, error) {
	m.orderMu.RLock()
	defer m.orderMu.RUnlock()

	order, exists := m.orders[orderID]
	if !exists {
		return nil, fmt.Errorf("order not found")
	}
	return order, nil
}

func (m *MemoryStore) GetOrdersBySender(sender string) ([]*models.Order, error) {
	m.orderMu.RLock()
	defer m.orderMu.RUnlock()

	var orders []*models.Order
	for _, order := range m.orders {
		if order.Sender == sender {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (m *MemoryStore) GetAllOrders() ([]*models.Order, error) {
	m.orderMu.RLock()
	defer m.orderMu.RUnlock()

	orders := make([]*models.Order, 0, len(m.orders))
	for _, order := range m.orders {
		orders = append(orders, order)
	}
	return orders, nil
}
