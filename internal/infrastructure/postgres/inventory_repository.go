package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/boardgames-store/internal/domain/entity"
	"github.com/jhoicas/boardgames-store/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	db Querier
}

// NewInventoryRepository construye el adaptador de persistencia para inventario.
func NewInventoryRepository(db Querier) *InventoryRepo {
	return &InventoryRepo{db: db}
}

// Create persiste la fila de inventario de un producto (una por producto).
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, product_id, quantity, low_stock_threshold, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query,
		inv.ID, inv.ProductID, inv.Quantity, inv.LowStockThreshold, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByProduct obtiene el inventario de un producto.
func (r *InventoryRepo) GetByProduct(productID string) (*entity.Inventory, error) {
	query := `SELECT id, product_id, quantity, low_stock_threshold, updated_at FROM inventory WHERE product_id = $1`
	var inv entity.Inventory
	err := r.db.QueryRow(context.Background(), query, productID).Scan(
		&inv.ID, &inv.ProductID, &inv.Quantity, &inv.LowStockThreshold, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// ListByProducts obtiene el inventario de varios productos en una sola consulta,
// indexado por product_id.
func (r *InventoryRepo) ListByProducts(productIDs []string) (map[string]*entity.Inventory, error) {
	out := make(map[string]*entity.Inventory, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	query := `SELECT id, product_id, quantity, low_stock_threshold, updated_at FROM inventory WHERE product_id = ANY($1)`
	rows, err := r.db.Query(context.Background(), query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.Quantity, &inv.LowStockThreshold, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		out[inv.ProductID] = &inv
	}
	return out, rows.Err()
}
