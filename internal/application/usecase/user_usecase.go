package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vilamar/pousada-api/internal/application/dto"
	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
	"github.com/vilamar/pousada-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase casos de uso CRUD de funcionarios. El password se hashea con
// bcrypt al crear y al cambiarlo; el hash nunca sale en las respuestas.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// Create registra un funcionario. El username debe ser único (la violación
// sube como ErrDuplicate desde el repositorio) y las permissions deben
// pertenecer al conjunto conocido.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.FullName == "" || in.Username == "" || len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	if !validRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	perms, err := toPermissions(in.Permissions)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		FullName:     in.FullName,
		Role:         in.Role,
		Phone:        in.Phone,
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: string(hash),
		Permissions:  perms,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// GetByID obtiene un funcionario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return ToUserResponse(user), nil
}

// List lista todos los funcionarios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUserResponse(u))
	}
	return items, nil
}

// Update aplica un update parcial. Si viene password, se rehashea.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.FullName != nil {
		if *in.FullName == "" {
			return nil, domain.ErrInvalidInput
		}
		user.FullName = *in.FullName
	}
	if in.Role != nil {
		if !validRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Username != nil {
		if *in.Username == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Username = *in.Username
	}
	if in.Password != nil {
		if len(*in.Password) < 6 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Permissions != nil {
		perms, err := toPermissions(*in.Permissions)
		if err != nil {
			return nil, err
		}
		user.Permissions = perms
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Delete borra el funcionario.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	return uc.userRepo.Delete(id)
}

func validRole(role string) bool {
	switch role {
	case entity.RoleManager, entity.RoleReceptionist, entity.RoleStaff:
		return true
	}
	return false
}

func toPermissions(in []string) (entity.Permissions, error) {
	perms := make(entity.Permissions, 0, len(in))
	for _, p := range in {
		perm := entity.Permission(p)
		if !entity.ValidPermission(perm) {
			return nil, domain.ErrInvalidInput
		}
		perms = append(perms, perm)
	}
	return perms, nil
}

// ToUserResponse mapea el funcionario a su DTO de salida, sin el hash.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	perms := make([]string, 0, len(u.Permissions))
	for _, p := range u.Permissions {
		perms = append(perms, string(p))
	}
	return &dto.UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Role:        u.Role,
		Phone:       u.Phone,
		Email:       u.Email,
		Username:    u.Username,
		Permissions: perms,
		CreatedAt:   u.CreatedAt,
	}
}
