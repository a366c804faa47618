package repository

import "github.com/jhoicas/boardgames-store/internal/domain/entity"

// InventoryRepository puerto de persistencia para Inventory (una fila por producto).
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	GetByProduct(productID string) (*entity.Inventory, error)
	ListByProducts(productIDs []string) (map[string]*entity.Inventory, error)
}
