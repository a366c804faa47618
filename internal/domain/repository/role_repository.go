package repository

import "github.com/jhoicas/boardgames-store/internal/domain/entity"

// RoleRepository puerto de persistencia para Role (datos de referencia).
type RoleRepository interface {
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	List() ([]*entity.Role, error)
	Upsert(role *entity.Role) error
}
