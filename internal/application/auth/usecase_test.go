package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vilamar/pousada-api/internal/application/auth"
	"github.com/vilamar/pousada-api/internal/application/dto"
	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
	pkgjwt "github.com/vilamar/pousada-api/pkg/jwt"
)

// fakeUserRepo fake en memoria indexado por username.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.Username] = u; return nil }

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return f.users[username], nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }

func (f *fakeUserRepo) Update(u *entity.User) error { f.users[u.Username] = u; return nil }

func (f *fakeUserRepo) Delete(id string) error { return nil }

func newTestAuthUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"maria": {
			ID:           "user-1",
			FullName:     "María Souza",
			Role:         entity.RoleReceptionist,
			Username:     "maria",
			PasswordHash: string(hash),
			Permissions:  entity.Permissions{entity.PermCheckIn, entity.PermCheckOut},
		},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "pousada-api-test",
	})
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newTestAuthUseCase(t)

	out, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "secreto123"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "user-1", out.User.ID)
	assert.Equal(t, entity.RoleReceptionist, out.User.Role)
	assert.ElementsMatch(t, []string{"check_in", "check_out"}, out.User.Permissions)

	// El token debe llevar el ID y el rol del usuario.
	userID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, entity.RoleReceptionist, role)
}

// Password incorrecto y usuario inexistente responden igual, para no
// filtrar qué usernames existen.
func TestLogin_CredencialesMalas_RespuestaUniforme(t *testing.T) {
	uc := newTestAuthUseCase(t)

	_, errBadPass := uc.Login(dto.LoginRequest{Username: "maria", Password: "equivocado"})
	_, errNoUser := uc.Login(dto.LoginRequest{Username: "nadie", Password: "equivocado"})

	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
}

func TestLogin_CredencialesVacias(t *testing.T) {
	uc := newTestAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
