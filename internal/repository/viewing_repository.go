package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"propview-backend/internal/domain"
)

// ViewingRepository is the persistence port for viewing records. Writes
// that advance the lifecycle are guarded by the status the caller read,
// so two racing transitions cannot both succeed.
type ViewingRepository interface {
	// Create inserts the viewing unless another viewing in a blocking
	// status already holds the same property/date slot. The check and
	// the insert run in one transaction.
	Create(ctx context.Context, v *domain.Viewing, blocking []domain.ViewingStatus) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Viewing, error)
	FindByProperty(ctx context.Context, propertyID uuid.UUID, status *domain.ViewingStatus, date *time.Time) ([]domain.Viewing, error)
	FindByUser(ctx context.Context, userID uuid.UUID, status *domain.ViewingStatus) ([]domain.Viewing, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, status *domain.ViewingStatus) ([]domain.Viewing, error)
	FindInDateRange(ctx context.Context, start, end time.Time) ([]domain.Viewing, error)
	CountByPropertyAndStatus(ctx context.Context, propertyID uuid.UUID, status domain.ViewingStatus) (int64, error)
	// ApplyTransition persists the viewing's current field values,
	// matching only while the row is still in the given status. It
	// returns false when a concurrent transition got there first.
	ApplyTransition(ctx context.Context, v *domain.Viewing, from domain.ViewingStatus) (bool, error)
	// Delete hard-removes the row regardless of status. Returns false
	// when no row matched.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type viewingRepository struct {
	db *sqlx.DB
}

func NewViewingRepository(db *sqlx.DB) ViewingRepository {
	return &viewingRepository{db: db}
}

// uniqueViolation is the Postgres error code raised by the partial
// unique index on (property_id, viewing_date) for blocking statuses.
const uniqueViolation = "23505"

func (r *viewingRepository) Create(ctx context.Context, v *domain.Viewing, blocking []domain.ViewingStatus) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	statuses := make([]string, len(blocking))
	for i, s := range blocking {
		statuses[i] = string(s)
	}

	var existing uuid.UUID
	checkQuery := `
		SELECT id FROM viewings
		WHERE property_id = $1 AND viewing_date = $2 AND status = ANY($3)
		LIMIT 1
		FOR UPDATE`
	err = tx.GetContext(ctx, &existing, checkQuery, v.PropertyID, v.ViewingDate, pq.Array(statuses))
	if err == nil {
		return domain.NewConflict("Property already has viewings scheduled for this date")
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	insertQuery := `
		INSERT INTO viewings (id, user_id, property_id, viewing_date, viewing_time, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`
	err = tx.QueryRowxContext(ctx, insertQuery,
		v.ID, v.UserID, v.PropertyID, v.ViewingDate, v.ViewingTime, v.Notes, v.Status,
	).Scan(&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.NewConflict("Property already has viewings scheduled for this date")
		}
		return err
	}

	return tx.Commit()
}

func (r *viewingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Viewing, error) {
	var v domain.Viewing
	query := `SELECT * FROM viewings WHERE id = $1`
	err := r.db.GetContext(ctx, &v, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *viewingRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID, status *domain.ViewingStatus, date *time.Time) ([]domain.Viewing, error) {
	query := `SELECT * FROM viewings WHERE property_id = $1`
	args := []interface{}{propertyID}

	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if date != nil {
		args = append(args, *date)
		query += fmt.Sprintf(" AND viewing_date = $%d", len(args))
	}
	query += ` ORDER BY viewing_date ASC, viewing_time ASC`

	viewings := []domain.Viewing{}
	err := r.db.SelectContext(ctx, &viewings, query, args...)
	return viewings, err
}

func (r *viewingRepository) FindByUser(ctx context.Context, userID uuid.UUID, status *domain.ViewingStatus) ([]domain.Viewing, error) {
	viewings := []domain.Viewing{}
	if status != nil {
		query := `SELECT * FROM viewings WHERE user_id = $1 AND status = $2 ORDER BY viewing_date ASC, viewing_time ASC`
		return viewings, r.db.SelectContext(ctx, &viewings, query, userID, *status)
	}
	query := `SELECT * FROM viewings WHERE user_id = $1 ORDER BY viewing_date ASC, viewing_time ASC`
	return viewings, r.db.SelectContext(ctx, &viewings, query, userID)
}

func (r *viewingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, status *domain.ViewingStatus) ([]domain.Viewing, error) {
	viewings := []domain.Viewing{}
	if status != nil {
		query := `
			SELECT v.* FROM viewings v
			JOIN properties p ON p.id = v.property_id
			WHERE p.owner_id = $1 AND v.status = $2
			ORDER BY v.viewing_date ASC, v.viewing_time ASC`
		return viewings, r.db.SelectContext(ctx, &viewings, query, ownerID, *status)
	}
	query := `
		SELECT v.* FROM viewings v
		JOIN properties p ON p.id = v.property_id
		WHERE p.owner_id = $1
		ORDER BY v.viewing_date ASC, v.viewing_time ASC`
	return viewings, r.db.SelectContext(ctx, &viewings, query, ownerID)
}

func (r *viewingRepository) FindInDateRange(ctx context.Context, start, end time.Time) ([]domain.Viewing, error) {
	viewings := []domain.Viewing{}
	query := `
		SELECT * FROM viewings
		WHERE viewing_date >= $1 AND viewing_date <= $2
		ORDER BY viewing_date ASC, viewing_time ASC`
	err := r.db.SelectContext(ctx, &viewings, query, start, end)
	return viewings, err
}

func (r *viewingRepository) CountByPropertyAndStatus(ctx context.Context, propertyID uuid.UUID, status domain.ViewingStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM viewings WHERE property_id = $1 AND status = $2`
	err := r.db.GetContext(ctx, &count, query, propertyID, status)
	return count, err
}

func (r *viewingRepository) ApplyTransition(ctx context.Context, v *domain.Viewing, from domain.ViewingStatus) (bool, error) {
	query := `
		UPDATE viewings
		SET status = $2,
		    rejection_reason = $3,
		    confirmed_at = $4,
		    rejected_at = $5,
		    completed_at = $6,
		    cancelled_at = $7,
		    updated_at = NOW()
		WHERE id = $1 AND status = $8`

	res, err := r.db.ExecContext(ctx, query,
		v.ID, v.Status, v.RejectionReason,
		v.ConfirmedAt, v.RejectedAt, v.CompletedAt, v.CancelledAt,
		from,
	)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *viewingRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM viewings WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
