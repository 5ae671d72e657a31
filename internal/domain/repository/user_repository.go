package repository

import "github.com/jhoicas/Distribuidora-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndOrganization(email, organizationID string) (*entity.User, error)
}
