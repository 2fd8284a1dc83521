package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/access"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/lifecycle"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// ResolveIdentity carga el usuario del token para confirmar que sigue existiendo.
// Rol y área se toman de la DB y no del token.
func (uc *UserUseCase) ResolveIdentity(ctx context.Context, id int64) (lifecycle.Actor, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return lifecycle.Actor{}, err
	}
	if u == nil {
		return lifecycle.Actor{}, domain.ErrUnauthorized
	}
	return lifecycle.Actor{UserID: u.ID, Role: u.Role, Area: u.Area}, nil
}

// Profile devuelve el perfil del caller.
func (uc *UserUseCase) Profile(ctx context.Context, a lifecycle.Actor) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, a.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return entityToUserResponse(u), nil
}

// List lista usuarios sin password ni token.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *entityToUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return entityToUserResponse(u), nil
}

// Create da de alta un usuario confirmado con color por defecto. Sólo superadmin.
func (uc *UserUseCase) Create(ctx context.Context, a lifecycle.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := access.Require(a.Role, access.ManageUsers); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.User)
	if name == "" || strings.TrimSpace(in.Area) == "" {
		return nil, fmt.Errorf("%w: user y area son requeridos", domain.ErrInvalidInput)
	}
	role := entity.RoleUser
	if in.Rol != "" {
		r, ok := entity.ParseRole(in.Rol)
		if !ok {
			return nil, fmt.Errorf("%w: rol %q inválido", domain.ErrInvalidInput, in.Rol)
		}
		role = r
	}
	existing, err := uc.repo.GetByUsername(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: el usuario ya está registrado", domain.ErrDuplicate)
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username:     name,
		PasswordHash: string(hash),
		Role:         role,
		Area:         strings.TrimSpace(in.Area),
		ProfileColor: entity.DefaultProfileColor,
		Confirmed:    true,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return entityToUserResponse(u), nil
}

// Update edita nombre, rol, área y opcionalmente password. Sólo superadmin.
func (uc *UserUseCase) Update(ctx context.Context, a lifecycle.Actor, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := access.Require(a.Role, access.ManageUsers); err != nil {
		return nil, err
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.User != nil {
		name := strings.TrimSpace(*in.User)
		if name == "" {
			return nil, fmt.Errorf("%w: user vacío", domain.ErrInvalidInput)
		}
		if name != u.Username {
			other, err := uc.repo.GetByUsername(ctx, name)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, fmt.Errorf("%w: el nombre de usuario ya está en uso", domain.ErrDuplicate)
			}
			u.Username = name
		}
	}
	if in.Rol != nil {
		r, ok := entity.ParseRole(*in.Rol)
		if !ok {
			return nil, fmt.Errorf("%w: rol %q inválido", domain.ErrInvalidInput, *in.Rol)
		}
		u.Role = r
	}
	if in.Area != nil && strings.TrimSpace(*in.Area) != "" {
		u.Area = strings.TrimSpace(*in.Area)
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return entityToUserResponse(u), nil
}

// Delete elimina un usuario. Sus solicitudes se conservan. Sólo superadmin y nunca a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, a lifecycle.Actor, id int64) error {
	if err := access.Require(a.Role, access.ManageUsers); err != nil {
		return err
	}
	if id == a.UserID {
		return domain.ErrSelfDelete
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// UpdateProfileColor cambia el color del perfil del caller.
func (uc *UserUseCase) UpdateProfileColor(ctx context.Context, a lifecycle.Actor, color string) error {
	if !entity.IsProfileColor(color) {
		return fmt.Errorf("%w: color de perfil no permitido", domain.ErrInvalidInput)
	}
	return uc.repo.UpdateProfileColor(ctx, a.UserID, color)
}

// hashPassword aplica bcrypt. bcrypt sólo admite 72 bytes.
func hashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: el password excede 72 bytes", domain.ErrInvalidInput)
	}
	return hash, err
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		User:        u.Username,
		Rol:         string(u.Role),
		Area:        u.Area,
		ColorPerfil: u.ProfileColor,
		Confirmado:  u.Confirmed,
	}
}
