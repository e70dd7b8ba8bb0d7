package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	user "github.com/zhahittya/encrypto-backend/internal/pkg/user/application/domain"
)

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

func (r *PgUserRepository) CreateUser(ctx context.Context, u user.User) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgUserRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, user_name, first_name, last_name, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text
	`, u.Email, u.UserName, u.FirstName, u.LastName, u.PasswordHash).Scan(&id)
	return id, err
}

func (r *PgUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	var u user.User
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, email, user_name, first_name, last_name, password_hash, created_at
		FROM users
		WHERE id = $1::uuid
	`, id).Scan(&u.ID, &u.Email, &u.UserName, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgUserRepository) GetByLogin(ctx context.Context, login string) (*user.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	var u user.User
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, email, user_name, first_name, last_name, password_hash, created_at
		FROM users
		WHERE email = lower($1) OR user_name = $1
	`, login).Scan(&u.ID, &u.Email, &u.UserName, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgUserRepository: nil pool")
	}
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = lower($1))
	`, email).Scan(&exists)
	return exists, err
}

func (r *PgUserRepository) ExistsByUserName(ctx context.Context, userName string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgUserRepository: nil pool")
	}
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE user_name = $1)
	`, userName).Scan(&exists)
	return exists, err
}

func (r *PgUserRepository) UpdateProfile(ctx context.Context, id string, firstName, lastName, userName string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgUserRepository: nil pool")
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET first_name = $2, last_name = $3, user_name = $4
		WHERE id = $1::uuid
	`, id, firstName, lastName, userName)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgUserRepository) UpdatePasswordByEmail(ctx context.Context, email string, passwordHash string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgUserRepository: nil pool")
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET password_hash = $2
		WHERE email = lower($1)
	`, email, passwordHash)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgUserRepository) SearchUsers(ctx context.Context, prefix string, limit int) ([]user.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, email, user_name, first_name, last_name, created_at
		FROM users
		WHERE user_name ILIKE $1 || '%'
		   OR (first_name || ' ' || last_name) ILIKE $1 || '%'
		ORDER BY user_name
		LIMIT $2
	`, prefix, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Email, &u.UserName, &u.FirstName, &u.LastName, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return users, nil
}

func (r *PgUserRepository) SetAvatar(ctx context.Context, id string, data []byte, contentType string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgUserRepository: nil pool")
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET avatar = $2, avatar_type = $3
		WHERE id = $1::uuid
	`, id, data, contentType)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PgUserRepository) GetAvatar(ctx context.Context, id string) (*user.Avatar, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	var a user.Avatar
	err := r.pool.QueryRow(ctx, `
		SELECT avatar, avatar_type
		FROM users
		WHERE id = $1::uuid AND avatar IS NOT NULL
	`, id).Scan(&a.Data, &a.ContentType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
