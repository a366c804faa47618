package entity

import "time"

// Inventory existencia de un producto (una fila por producto).
type Inventory struct {
	ID                string
	ProductID         string
	Quantity          int
	LowStockThreshold int
	UpdatedAt         time.Time
}

// InStock indica si hay unidades disponibles.
func (i Inventory) InStock() bool {
	return i.Quantity > 0
}

// LowStock indica si la existencia está por debajo del umbral.
func (i Inventory) LowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}
