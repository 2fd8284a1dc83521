package repository

import (
	"context"

	"github.com/jhoicas/Suministros-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateToken(ctx context.Context, id int64, token string) error
	UpdateProfileColor(ctx context.Context, id int64, color string) error
	List(ctx context.Context) ([]*entity.User, error)
	Delete(ctx context.Context, id int64) error
}
