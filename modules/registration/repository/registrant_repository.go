package repository

import (
	"context"
	"database/sql"
	"time"

	"event-portal/core/database"
	"event-portal/core/logger"
	"event-portal/modules/registration/entity"
)

// RegistrantRepository handles registrants table operations
type RegistrantRepository struct {
	DB database.IDatabase
}

func NewRegistrantRepository(db database.IDatabase) *RegistrantRepository {
	return &RegistrantRepository{DB: db}
}

type RegistrantRepositoryInterface interface {
	CreateRegistrant(ctx context.Context, registrant *entity.Registrant) (*entity.Registrant, error)
	GetRegistrantByID(ctx context.Context, id int64) (*entity.Registrant, error)
	GetRegistrantsByEventID(ctx context.Context, eventID int64) ([]entity.Registrant, error)
	GetRegistrants(ctx context.Context) ([]entity.Registrant, error)
	ExistsForUser(ctx context.Context, eventID, userID int64) (bool, error)
	UpdateRegistrant(ctx context.Context, registrant *entity.Registrant) (bool, error)
	DeleteRegistrant(ctx context.Context, id int64) (bool, error)
	DeleteByEventAndUser(ctx context.Context, eventID, userID int64) (int64, error)
}

var _ RegistrantRepositoryInterface = (*RegistrantRepository)(nil)

const registrantColumns = `id, event_id, user_id, name, email, phone, created_at, updated_at`

func (r *RegistrantRepository) CreateRegistrant(ctx context.Context, registrant *entity.Registrant) (*entity.Registrant, error) {
	registrant.Touch(time.Now().UTC())

	query := `
		INSERT INTO registrants (event_id, user_id, name, email, phone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	err := r.DB.GetContext(ctx, &registrant.ID, query,
		registrant.EventID, registrant.UserID, registrant.Name, registrant.Email, registrant.Phone,
		registrant.CreatedAt, registrant.UpdatedAt)
	if err != nil {
		logger.Error("RegistrantRepository:CreateRegistrant:Error", "error", err, "eventID", registrant.EventID)
		return nil, err
	}
	return registrant, nil
}

func (r *RegistrantRepository) GetRegistrantByID(ctx context.Context, id int64) (*entity.Registrant, error) {
	var registrant entity.Registrant
	query := `SELECT ` + registrantColumns + ` FROM registrants WHERE id = ?`
	err := r.DB.GetContext(ctx, &registrant, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RegistrantRepository:GetRegistrantByID:Error", "error", err, "id", id)
		return nil, err
	}
	return &registrant, nil
}

func (r *RegistrantRepository) GetRegistrantsByEventID(ctx context.Context, eventID int64) ([]entity.Registrant, error) {
	registrants := []entity.Registrant{}
	query := `SELECT ` + registrantColumns + ` FROM registrants WHERE event_id = ? ORDER BY id`
	if err := r.DB.SelectContext(ctx, &registrants, query, eventID); err != nil {
		logger.Error("RegistrantRepository:GetRegistrantsByEventID:Error", "error", err, "eventID", eventID)
		return nil, err
	}
	return registrants, nil
}

// GetRegistrants lists every registrant, ordered by id.
func (r *RegistrantRepository) GetRegistrants(ctx context.Context) ([]entity.Registrant, error) {
	registrants := []entity.Registrant{}
	query := `SELECT ` + registrantColumns + ` FROM registrants ORDER BY id`
	if err := r.DB.SelectContext(ctx, &registrants, query); err != nil {
		logger.Error("RegistrantRepository:GetRegistrants:Error", "error", err)
		return nil, err
	}
	return registrants, nil
}

func (r *RegistrantRepository) ExistsForUser(ctx context.Context, eventID, userID int64) (bool, error) {
	var count int
	query := `SELECT COUNT(1) FROM registrants WHERE event_id = ? AND user_id = ?`
	if err := r.DB.GetContext(ctx, &count, query, eventID, userID); err != nil {
		logger.Error("RegistrantRepository:ExistsForUser:Error", "error", err, "eventID", eventID, "userID", userID)
		return false, err
	}
	return count > 0, nil
}

func (r *RegistrantRepository) UpdateRegistrant(ctx context.Context, registrant *entity.Registrant) (bool, error) {
	registrant.UpdatedAt = time.Now().UTC()
	query := `UPDATE registrants SET name = ?, email = ?, phone = ?, updated_at = ? WHERE id = ?`
	result, err := r.DB.ExecResultContext(ctx, query,
		registrant.Name, registrant.Email, registrant.Phone, registrant.UpdatedAt, registrant.ID)
	if err != nil {
		logger.Error("RegistrantRepository:UpdateRegistrant:Error", "error", err, "id", registrant.ID)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *RegistrantRepository) DeleteRegistrant(ctx context.Context, id int64) (bool, error) {
	result, err := r.DB.ExecResultContext(ctx, `DELETE FROM registrants WHERE id = ?`, id)
	if err != nil {
		logger.Error("RegistrantRepository:DeleteRegistrant:Error", "error", err, "id", id)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// DeleteByEventAndUser removes a user's registration and returns the number
// of rows deleted.
func (r *RegistrantRepository) DeleteByEventAndUser(ctx context.Context, eventID, userID int64) (int64, error) {
	result, err := r.DB.ExecResultContext(ctx, `DELETE FROM registrants WHERE event_id = ? AND user_id = ?`, eventID, userID)
	if err != nil {
		logger.Error("RegistrantRepository:DeleteByEventAndUser:Error", "error", err, "eventID", eventID, "userID", userID)
		return 0, err
	}
	return result.RowsAffected()
}
