package repository

import "github.com/jhoicas/foodforgood-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los usuarios nunca se actualizan ni se borran en este diseño.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
