package repository

import "github.com/jhoicas/boardgames-store/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// La unicidad de email la garantiza el constraint de la DB; Create debe mapear
// la violación a domain.ErrEmailAlreadyExists.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// FindByEmail alias semántico para uso en auth.
	FindByEmail(email string) (*entity.User, error)
}
