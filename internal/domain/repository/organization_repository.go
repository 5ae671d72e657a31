package repository

import "github.com/jhoicas/Distribuidora-api/internal/domain/entity"

// OrganizationRepository define el puerto de persistencia para Organization (DIP).
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
	GetBySlug(slug string) (*entity.Organization, error)
	List(limit, offset int) ([]*entity.Organization, error)
}
