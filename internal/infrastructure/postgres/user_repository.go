package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vilamar/pousada-api/internal/domain"
	"github.com/vilamar/pousada-api/internal/domain/entity"
	"github.com/vilamar/pousada-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
// Las permissions se guardan como text[] y se validan en la capa de aplicación.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, full_name, role, phone, email, username, password_hash, permissions, created_at`

// Create persiste un nuevo funcionario. El username es único.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, full_name, role, phone, email, username, password_hash, permissions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.FullName, user.Role, user.Phone, user.Email,
		user.Username, user.PasswordHash, permissionsToStrings(user.Permissions), user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un funcionario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByUsername obtiene un funcionario por username (login).
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UserRepo) getOne(query, arg string) (*entity.User, error) {
	var u entity.User
	var perms []string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.FullName, &u.Role, &u.Phone, &u.Email,
		&u.Username, &u.PasswordHash, &perms, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Permissions = stringsToPermissions(perms)
	return &u, nil
}

// List lista todos los funcionarios ordenados por nombre.
func (r *UserRepo) List() ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+userColumns+` FROM users ORDER BY full_name`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var perms []string
		if err := rows.Scan(&u.ID, &u.FullName, &u.Role, &u.Phone, &u.Email,
			&u.Username, &u.PasswordHash, &perms, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Permissions = stringsToPermissions(perms)
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza un funcionario existente.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET full_name = $2, role = $3, phone = $4, email = $5, username = $6,
			password_hash = $7, permissions = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		user.ID, user.FullName, user.Role, user.Phone, user.Email,
		user.Username, user.PasswordHash, permissionsToStrings(user.Permissions),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un funcionario por ID.
func (r *UserRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func permissionsToStrings(perms entity.Permissions) []string {
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		out = append(out, string(p))
	}
	return out
}

func stringsToPermissions(in []string) entity.Permissions {
	out := make(entity.Permissions, 0, len(in))
	for _, s := range in {
		out = append(out, entity.Permission(s))
	}
	return out
}
