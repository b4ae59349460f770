package repositories

import (
	"github.com/stretchr/testify/mock"

	"catalog/internal/models"
)

// MockProductStore is a testify mock implementation of ProductStore for
// service-level tests.
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) ListAll() []models.Product {
	args := m.Called()
	return args.Get(0).([]models.Product)
}

func (m *MockProductStore) FindByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductStore) FindIndexByID(id string) (int, error) {
	args := m.Called(id)
	return args.Int(0), args.Error(1)
}

func (m *MockProductStore) Insert(product models.Product) models.Product {
	args := m.Called(product)
	return args.Get(0).(models.Product)
}

func (m *MockProductStore) ReplaceAt(index int, product models.Product) error {
	args := m.Called(index, product)
	return args.Error(0)
}

func (m *MockProductStore) RemoveAt(index int) (models.Product, error) {
	args := m.Called(index)
	return args.Get(0).(models.Product), args.Error(1)
}
