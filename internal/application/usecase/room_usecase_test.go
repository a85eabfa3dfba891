package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vilamar/pousada-api/internal/application/dto"
	"github.com/vilamar/pousada-api/internal/application/usecase"
	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeRoomRepo struct {
	items map[string]*entity.Room
}

func (f *fakeRoomRepo) Create(r *entity.Room) error { f.items[r.ID] = r; return nil }
func (f *fakeRoomRepo) GetByID(id string) (*entity.Room, error) { return f.items[id], nil }
func (f *fakeRoomRepo) GetForUpdate(id string) (*entity.Room, error) { return f.items[id], nil }
func (f *fakeRoomRepo) List() ([]*entity.Room, error) { return nil, nil }
func (f *fakeRoomRepo) ListAvailable() ([]*entity.Room, error) { return nil, nil }
func (f *fakeRoomRepo) Update(r *entity.Room) error { f.items[r.ID] = r; return nil }
func (f *fakeRoomRepo) UpdateStatus(id, status string) error {
	f.items[id].Status = status
	return nil
}
func (f *fakeRoomRepo) Delete(id string) error { delete(f.items, id); return nil }

type fakeProductRepo struct {
	items map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.items[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return f.items[id], nil }
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return f.items[id], nil }
func (f *fakeProductRepo) List() ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(p *entity.Product) error { f.items[p.ID] = p; return nil }
func (f *fakeProductRepo) AdjustStock(id string, delta int) error {
	f.items[id].CurrentStock += delta
	return nil
}
func (f *fakeProductRepo) Delete(id string) error { delete(f.items, id); return nil }

type fakeUserRepo struct {
	items map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.items[u.ID] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) { return f.items[id], nil }
func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.items {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(u *entity.User) error { f.items[u.ID] = u; return nil }
func (f *fakeUserRepo) Delete(id string) error { delete(f.items, id); return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Tests RoomUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestRoomUpdate_ParcialSoloCambiaLoEnviado(t *testing.T) {
	repo := &fakeRoomRepo{items: map[string]*entity.Room{
		"room-1": {
			ID:        "room-1",
			Number:    "101",
			Type:      entity.RoomTypeDouble,
			Capacity:  2,
			DailyRate: decimal.RequireFromString("150.00"),
			Status:    entity.RoomStatusAvailable,
		},
	}}
	uc := usecase.NewRoomUseCase(repo)

	rate := decimal.RequireFromString("180.00")
	out, err := uc.Update(context.Background(), "room-1", dto.UpdateRoomRequest{DailyRate: &rate})
	require.NoError(t, err)

	assert.True(t, out.DailyRate.Equal(rate))
	assert.Equal(t, "101", out.Number, "los campos no enviados no deben cambiar")
	assert.Equal(t, 2, out.Capacity)
	assert.Equal(t, entity.RoomStatusAvailable, out.Status)
}

func TestRoomUpdate_ValoresInvalidos(t *testing.T) {
	repo := &fakeRoomRepo{items: map[string]*entity.Room{
		"room-1": {ID: "room-1", Number: "101", Type: entity.RoomTypeDouble, Capacity: 2},
	}}
	uc := usecase.NewRoomUseCase(repo)

	badType := "penthouse"
	_, err := uc.Update(context.Background(), "room-1", dto.UpdateRoomRequest{Type: &badType})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	badCapacity := 0
	_, err = uc.Update(context.Background(), "room-1", dto.UpdateRoomRequest{Capacity: &badCapacity})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRoomCreate_EstadoPorDefectoAvailable(t *testing.T) {
	repo := &fakeRoomRepo{items: map[string]*entity.Room{}}
	uc := usecase.NewRoomUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateRoomRequest{
		Number:    "201",
		Type:      entity.RoomTypeSuite,
		Capacity:  4,
		DailyRate: decimal.RequireFromString("300.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoomStatusAvailable, out.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProductUseCase
// ──────────────────────────────────────────────────────────────────────────────

// El update genérico nunca toca el stock: eso es territorio de ventas y
// movimientos de estoque.
func TestProductUpdate_NoTocaElStock(t *testing.T) {
	repo := &fakeProductRepo{items: map[string]*entity.Product{
		"prod-1": {
			ID:           "prod-1",
			Name:         "Água mineral",
			Category:     "bebidas",
			Unit:         "un",
			SalePrice:    decimal.RequireFromString("5.00"),
			CurrentStock: 12,
		},
	}}
	uc := usecase.NewProductUseCase(repo)

	price := decimal.RequireFromString("6.50")
	out, err := uc.Update(context.Background(), "prod-1", dto.UpdateProductRequest{SalePrice: &price})
	require.NoError(t, err)

	assert.True(t, out.SalePrice.Equal(price))
	assert.Equal(t, 12, out.CurrentStock, "el update genérico no debe tocar el stock")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UserUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_HasheaElPassword(t *testing.T) {
	repo := &fakeUserRepo{items: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		FullName:    "João Pereira",
		Role:        entity.RoleStaff,
		Username:    "joao",
		Password:    "secreto123",
		Permissions: []string{"inventory", "point_of_sale"},
	})
	require.NoError(t, err)

	stored, err := repo.GetByUsername("joao")
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
	assert.ElementsMatch(t, []string{"inventory", "point_of_sale"}, out.Permissions)
}

func TestUserCreate_PermisoDesconocido(t *testing.T) {
	repo := &fakeUserRepo{items: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		FullName:    "João Pereira",
		Role:        entity.RoleStaff,
		Username:    "joao",
		Password:    "secreto123",
		Permissions: []string{"superpoderes"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserCreate_RolDesconocido(t *testing.T) {
	repo := &fakeUserRepo{items: map[string]*entity.User{}}
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		FullName: "João Pereira",
		Role:     "gerente-general",
		Username: "joao",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
