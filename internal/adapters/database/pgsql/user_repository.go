package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_backoffice_app/internal/models"
	"github.com/SscSPs/bank_backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const userColumns = `user_id, username, password_hash, role, profile_picture, created_at, updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(base BaseRepository) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: base}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.PasswordHash,
		&m.Role,
		&m.ProfilePicture,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	return mapping.ToDomainUser(m), nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.UserID,
		m.Username,
		m.PasswordHash,
		m.Role,
		m.ProfilePicture,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return mapError(err, "failed to save user %s", m.Username)
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	user, err := scanUser(r.db(ctx).QueryRow(ctx, query, userID))
	if err != nil {
		return nil, mapError(err, "user %s", userID)
	}
	return &user, nil
}

// FindUserByUsername looks a login up by its (lowercased) username.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	user, err := scanUser(r.db(ctx).QueryRow(ctx, query, username))
	if err != nil {
		return nil, mapError(err, "user %s", username)
	}
	return &user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC, user_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db(ctx).Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapError(err, "failed to query users")
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan user row")
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating user rows")
	}
	return users, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET username = $2, role = $3, profile_picture = $4, updated_at = $5
		WHERE user_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query, m.UserID, m.Username, m.Role, m.ProfilePicture, m.UpdatedAt)
	if err != nil {
		return mapError(err, "failed to update user %s", m.UserID)
	}
	return expectOne(tag, "user %s", m.UserID)
}

func (r *PgxUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, now time.Time) error {
	query := `UPDATE users SET password_hash = $2, updated_at = $3 WHERE user_id = $1;`
	tag, err := r.db(ctx).Exec(ctx, query, userID, passwordHash, now)
	if err != nil {
		return mapError(err, "failed to update password of user %s", userID)
	}
	return expectOne(tag, "user %s", userID)
}

// DeleteUser removes the login. Customer and employee rows cascade; transactions and logs stay.
func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return mapError(err, "failed to delete user %s", userID)
	}
	return expectOne(tag, "user %s", userID)
}
