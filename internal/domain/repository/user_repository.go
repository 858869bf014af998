package repository

import "github.com/gevp/gevp-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// No expone Delete: los usuarios nunca se borran, solo se desactivan.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	SetActive(id string, active bool) error
}
