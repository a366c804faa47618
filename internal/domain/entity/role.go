package entity

// Nombres de rol válidos (datos de referencia estáticos, sembrados en cmd/seed).
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Role agrupa permisos bajo un nombre. Referenciado por User.
type Role struct {
	ID          string
	Name        string // admin, customer
	Description string
}
