package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-travel-planner/internal/models"
)

const tripColumns = `id, user_id, title, description, start_date, end_date,
	total_budget, currency, created_at, updated_at`

// TripWriteRepository handles trip write operations
type TripWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTripWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TripWriteRepository {
	return &TripWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a trip with its destination links and fills its timestamps.
// It joins the request transaction when one is present in ctx.
func (r *TripWriteRepository) Save(ctx context.Context, trip *models.TripDB) error {
	const query = `
		INSERT INTO trips (id, user_id, title, description, start_date, end_date, total_budget, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	args := []any{
		trip.TripID, trip.UserID, trip.Title, trip.Description,
		trip.StartDate, trip.EndDate, trip.TotalBudget, trip.Currency,
	}

	exec := executor(ctx, r.db, r.txGetter)

	row := exec.QueryRowxContext(ctx, query, args...)
	err := row.Scan(&trip.CreatedAt, &trip.UpdatedAt)

	logQuery(query, args, trip.CreatedAt, err)

	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrConflict
		}
		return err
	}

	const linkQuery = `INSERT INTO trip_destinations (trip_id, destination_id) VALUES ($1, $2)`
	for _, destinationID := range trip.DestinationIDs {
		_, err := exec.ExecContext(ctx, linkQuery, trip.TripID, destinationID)

		logQuery(linkQuery, []any{trip.TripID, destinationID}, nil, err)

		if err != nil {
			if isForeignKeyViolation(err) {
				return models.ErrReferenceNotFound
			}
			return err
		}
	}
	return nil
}

type tripDestinationRow struct {
	TripID        uuid.UUID `db:"trip_id"`
	DestinationID int64     `db:"destination_id"`
}

// TripReadRepository handles trip read operations
type TripReadRepository struct {
	db *sqlx.DB
}

func NewTripReadRepository(db *sqlx.DB) *TripReadRepository {
	return &TripReadRepository{db: db}
}

// ListByUserID returns the user's trips, newest first.
func (r *TripReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TripDB, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	trips := []models.TripDB{}
	err := r.db.SelectContext(ctx, &trips, query, userID)

	logQuery(query, []any{userID}, len(trips), err)

	if err != nil {
		return nil, err
	}
	if len(trips) == 0 {
		return trips, nil
	}

	const linkQuery = `
		SELECT td.trip_id, td.destination_id
		FROM trip_destinations td
		JOIN trips t ON t.id = td.trip_id
		WHERE t.user_id = $1
		ORDER BY td.destination_id
	`
	links := []tripDestinationRow{}
	err = r.db.SelectContext(ctx, &links, linkQuery, userID)

	logQuery(linkQuery, []any{userID}, len(links), err)

	if err != nil {
		return nil, err
	}

	byTrip := make(map[uuid.UUID][]int64, len(trips))
	for _, link := range links {
		byTrip[link.TripID] = append(byTrip[link.TripID], link.DestinationID)
	}
	for i := range trips {
		trips[i].DestinationIDs = byTrip[trips[i].TripID]
	}
	return trips, nil
}

// GetByID returns a trip only if it belongs to userID.
func (r *TripReadRepository) GetByID(ctx context.Context, userID, tripID uuid.UUID) (*models.TripDB, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE id = $1 AND user_id = $2
	`

	var trip models.TripDB
	err := r.db.GetContext(ctx, &trip, query, tripID, userID)

	logQuery(query, []any{tripID, userID}, trip.TripID, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	const linkQuery = `
		SELECT destination_id
		FROM trip_destinations
		WHERE trip_id = $1
		ORDER BY destination_id
	`
	err = r.db.SelectContext(ctx, &trip.DestinationIDs, linkQuery, tripID)

	logQuery(linkQuery, []any{tripID}, len(trip.DestinationIDs), err)

	if err != nil {
		return nil, err
	}
	return &trip, nil
}
