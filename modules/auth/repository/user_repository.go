package repository

import (
	"context"
	"database/sql"
	"time"

	"event-portal/core/database"
	"event-portal/core/logger"
	"event-portal/modules/auth/entity"
)

// UserRepository handles users table operations
type UserRepository struct {
	DB database.IDatabase
}

func NewUserRepository(db database.IDatabase) *UserRepository {
	return &UserRepository{DB: db}
}

type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	UpdateProfile(ctx context.Context, id int64, fullName, phone string) error
}

var _ UserRepositoryInterface = (*UserRepository)(nil)

const userColumns = `id, username, email, password_hash, full_name, phone, created_at, updated_at`

// CreateUser inserts the user. A duplicate username surfaces as the driver's
// unique violation error.
func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.Touch(time.Now().UTC())

	query := `
		INSERT INTO users (username, email, password_hash, full_name, phone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	err := r.DB.GetContext(ctx, &user.ID, query,
		user.Username, user.Email, user.PasswordHash, user.FullName, user.Phone, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		logger.Error("UserRepository:CreateUser:Error", "error", err, "username", user.Username)
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`
	err := r.DB.GetContext(ctx, &user, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetUserByUsername:Error", "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetUserByID:Error", "error", err, "id", id)
		return nil, err
	}
	return &user, nil
}

// UpdateProfile overwrites the stored full name and phone.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, fullName, phone string) error {
	query := `UPDATE users SET full_name = ?, phone = ?, updated_at = ? WHERE id = ?`
	if err := r.DB.ExecContext(ctx, query, fullName, phone, time.Now().UTC(), id); err != nil {
		logger.Error("UserRepository:UpdateProfile:Error", "error", err, "id", id)
		return err
	}
	return nil
}
