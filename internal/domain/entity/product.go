package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es un juego de mesa del catálogo. Slug es único y se deriva del nombre
// al crear el producto; se usa en URLs públicas.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Slug        string
	Description string
	Price       decimal.Decimal // NUMERIC en DB, codec pgx-shopspring-decimal
	MinPlayers  int
	MaxPlayers  int
	PlayTimeMin int // minutos
	PlayTimeMax int
	AgeRating   int
	Weight      decimal.Decimal // kg
	Dimensions  string
	Publisher   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
