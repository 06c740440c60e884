package repository

import (
	"context"
	"database/sql"
	"time"

	"event-portal/core/database"
	"event-portal/core/logger"
	"event-portal/modules/event/entity"
)

// EventRepository handles events table operations
type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

type EventRepositoryInterface interface {
	CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetEventByID(ctx context.Context, id int64) (*entity.Event, error)
	GetEvents(ctx context.Context) ([]entity.Event, error)
	GetEventsByUserID(ctx context.Context, userID int64) ([]entity.Event, error)
	UpdateEvent(ctx context.Context, event *entity.Event) (bool, error)
	DeleteEventCascade(ctx context.Context, id int64) (bool, error)
}

var _ EventRepositoryInterface = (*EventRepository)(nil)

const eventColumns = `id, name, date, venue, description, created_at, updated_at`

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	event.Touch(time.Now().UTC())

	query := `
		INSERT INTO events (name, date, venue, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	err := r.DB.GetContext(ctx, &event.ID, query,
		event.Name, event.Date, event.Venue, event.Description, event.CreatedAt, event.UpdatedAt)
	if err != nil {
		logger.Error("EventRepository:CreateEvent:Error", "error", err)
		return nil, err
	}
	return event, nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, id int64) (*entity.Event, error) {
	var event entity.Event
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventByID:Error", "error", err, "id", id)
		return nil, err
	}
	return &event, nil
}

// GetEvents lists all events in insertion order.
func (r *EventRepository) GetEvents(ctx context.Context) ([]entity.Event, error) {
	events := []entity.Event{}
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY id`
	if err := r.DB.SelectContext(ctx, &events, query); err != nil {
		logger.Error("EventRepository:GetEvents:Error", "error", err)
		return nil, err
	}
	return events, nil
}

// GetEventsByUserID lists the events a user holds a registration for.
func (r *EventRepository) GetEventsByUserID(ctx context.Context, userID int64) ([]entity.Event, error) {
	events := []entity.Event{}
	query := `
		SELECT e.id, e.name, e.date, e.venue, e.description, e.created_at, e.updated_at
		FROM events e
		WHERE EXISTS (
			SELECT 1 FROM registrants r WHERE r.event_id = e.id AND r.user_id = ?
		)
		ORDER BY e.id
	`
	if err := r.DB.SelectContext(ctx, &events, query, userID); err != nil {
		logger.Error("EventRepository:GetEventsByUserID:Error", "error", err, "userID", userID)
		return nil, err
	}
	return events, nil
}

// UpdateEvent reports false when no row has the event's id.
func (r *EventRepository) UpdateEvent(ctx context.Context, event *entity.Event) (bool, error) {
	event.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE events
		SET name = ?, date = ?, venue = ?, description = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecResultContext(ctx, query,
		event.Name, event.Date, event.Venue, event.Description, event.UpdatedAt, event.ID)
	if err != nil {
		logger.Error("EventRepository:UpdateEvent:Error", "error", err, "id", event.ID)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("EventRepository:UpdateEvent:RowsAffected:Error", "error", err)
		return false, err
	}
	return rowsAffected > 0, nil
}

// DeleteEventCascade removes the event's registrants and then the event in
// one transaction. It reports false, with nothing deleted, when the event
// does not exist.
func (r *EventRepository) DeleteEventCascade(ctx context.Context, id int64) (bool, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("EventRepository:DeleteEventCascade:Begin:Error", "error", err)
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM registrants WHERE event_id = ?`), id); err != nil {
		logger.Error("EventRepository:DeleteEventCascade:Registrants:Error", "error", err, "id", id)
		return false, err
	}

	result, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM events WHERE id = ?`), id)
	if err != nil {
		logger.Error("EventRepository:DeleteEventCascade:Event:Error", "error", err, "id", id)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rowsAffected == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		logger.Error("EventRepository:DeleteEventCascade:Commit:Error", "error", err)
		return false, err
	}
	return true, nil
}
