package repository

import (
	"context"
	"database/sql"

	"catalog-services/catalog-service/internal/entity"
)

type UserRepository struct {
	q *QueryHelper
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{NewQueryHelper(db)}
}

// GetUsers returns every user ordered by id. An empty table yields an
// empty, non-nil slice.
func (r *UserRepository) GetUsers(ctx context.Context) ([]entity.User, error) {
	users := []entity.User{}
	query := `SELECT id, name, email FROM users ORDER BY id`
	err := r.q.Query(ctx, query, nil, func(row Scanner) error {
		var user entity.User
		if err := row.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return err
		}
		users = append(users, user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// GetUserByID returns nil, nil when no user has the given id.
func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	user := &entity.User{}
	query := `SELECT id, name, email FROM users WHERE id = ?`
	found, err := r.q.QueryOne(ctx, query, []any{id}, func(row Scanner) error {
		return row.Scan(&user.ID, &user.Name, &user.Email)
	})
	if err != nil || !found {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `INSERT INTO users (name, email) VALUES (?, ?)`
	id, _, err := r.q.Exec(ctx, query, []any{user.Name, user.Email})
	if err != nil {
		return nil, err
	}

	user.ID = int(id)
	return user, nil
}

// DeleteUser reports whether a row was removed.
func (r *UserRepository) DeleteUser(ctx context.Context, id int) (bool, error) {
	query := `DELETE FROM users WHERE id = ?`
	_, affected, err := r.q.Exec(ctx, query, []any{id})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
