package entity

// Category clasifica productos del catálogo (Strategy, Family, Party, ...).
type Category struct {
	ID          string
	Name        string
	Description string
}
