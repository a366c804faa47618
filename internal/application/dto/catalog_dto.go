package dto

import "github.com/shopspring/decimal"

// CategoryResponse salida de una categoría del catálogo.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductResponse salida de un producto con su categoría y existencia.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	MinPlayers  int             `json:"min_players"`
	MaxPlayers  int             `json:"max_players"`
	PlayTimeMin int             `json:"play_time_min"`
	PlayTimeMax int             `json:"play_time_max"`
	AgeRating   int             `json:"age_rating"`
	Publisher   string          `json:"publisher"`
	InStock     bool            `json:"in_stock"`
}
